// Package store contains the application state layer for hirelink.
package store

// Job represents an open position candidates can apply to.
// Jobs are seeded at startup and never mutated.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Department  string `json:"department"`
}

// Application represents one candidate's submission to one Job.
// The JSON field names match the persisted collection exactly, so a
// previously stored array keeps round-tripping across versions.
type Application struct {
	ID                string   `json:"id"`
	JobID             string   `json:"jobId"`
	CandidateName     string   `json:"candidateName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Skills            []string `json:"skills"`
	PortfolioLink     string   `json:"portfolioLink"`
	ResumeFile        string   `json:"resumeFile"`
	ResumeFileName    string   `json:"resumeFileName"`
	AppliedAt         string   `json:"appliedAt"`
	Stage             Stage    `json:"stage"`
	Score             *int     `json:"score,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	InterviewDate     string   `json:"interviewDate,omitempty"`
	InterviewTime     string   `json:"interviewTime,omitempty"`
}

// CreateInput carries the immutable-at-creation fields of an Application.
// Identity, applied timestamp and initial stage are assigned by the store.
type CreateInput struct {
	JobID             string
	CandidateName     string
	Email             string
	Phone             string
	YearsOfExperience int
	Skills            []string
	PortfolioLink     string
	ResumeFile        string
	ResumeFileName    string
}

// Stage represents an application's position in the hiring pipeline.
type Stage string

const (
	StageApplied            Stage = "Applied"
	StageReviewed           Stage = "Reviewed"
	StageInterviewScheduled Stage = "Interview Scheduled"
	StageOfferSent          Stage = "Offer Sent"
)

// Stages lists all pipeline stages in display order.
var Stages = []Stage{StageApplied, StageReviewed, StageInterviewScheduled, StageOfferSent}

// IsValid reports whether s is one of the four pipeline stages.
func (s Stage) IsValid() bool {
	switch s {
	case StageApplied, StageReviewed, StageInterviewScheduled, StageOfferSent:
		return true
	}
	return false
}

// ParseStage maps user input to a Stage. It accepts the canonical display
// names plus the short forms used on the command line.
func ParseStage(s string) (Stage, bool) {
	switch s {
	case "Applied", "applied":
		return StageApplied, true
	case "Reviewed", "reviewed":
		return StageReviewed, true
	case "Interview Scheduled", "interview", "interview-scheduled":
		return StageInterviewScheduled, true
	case "Offer Sent", "offer", "offer-sent":
		return StageOfferSent, true
	}
	return "", false
}
