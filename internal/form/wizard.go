// Package form implements the multi-step application submission workflow:
// a three-step wizard that validates candidate input per step and produces
// exactly one application through the store on successful completion.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hirelink/internal/store"
)

// Step identifies one of the wizard's three steps.
type Step string

const (
	StepPersonal   Step = "personal"
	StepExperience Step = "experience"
	StepResume     Step = "resume"
)

// steps is the fixed step order.
var steps = []Step{StepPersonal, StepExperience, StepResume}

// MaxSkills caps the number of skills a candidate can list.
const MaxSkills = 15

// Data is the accumulated candidate-input draft. All fields exist from
// the start with zero defaults and nothing is persisted until Submit.
type Data struct {
	CandidateName     string
	Email             string
	Phone             string
	YearsOfExperience int
	Skills            []string
	PortfolioLink     string
	ResumeFile        string
	ResumeFileName    string
}

// ErrAlreadySubmitted is returned by Submit after a successful submission;
// the wizard is terminal at that point.
var ErrAlreadySubmitted = errors.New("form: application already submitted")

// ErrIncomplete is returned by Submit when the wizard has not reached the
// resume step yet.
var ErrIncomplete = errors.New("form: wizard has not reached the final step")

// ErrInvalid is returned by Submit when the final step fails validation;
// the field errors are available through Errors.
var ErrInvalid = errors.New("form: validation failed")

// Wizard sequences the submission workflow for one job. It holds no
// reference into the store beyond the single creation call: a producer,
// not a subscriber.
type Wizard struct {
	store       *store.Store
	jobID       string
	step        int
	data        Data
	errors      map[string]string
	submittedID string
}

// New creates a wizard for the given job, positioned at the personal step.
func New(s *store.Store, jobID string) (*Wizard, error) {
	if _, ok := s.Job(jobID); !ok {
		return nil, fmt.Errorf("new wizard: %w: %s", store.ErrJobNotFound, jobID)
	}
	return &Wizard{
		store:  s,
		jobID:  jobID,
		errors: map[string]string{},
	}, nil
}

// Step returns the current step.
func (w *Wizard) Step() Step { return steps[w.step] }

// Data returns a copy of the accumulated draft.
func (w *Wizard) Data() Data {
	d := w.data
	d.Skills = append([]string(nil), w.data.Skills...)
	return d
}

// Errors returns the field errors from the last validation of the current
// step. Errors are cleared whenever the step changes.
func (w *Wizard) Errors() map[string]string {
	out := make(map[string]string, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

// Submitted reports whether the wizard has reached its terminal state.
func (w *Wizard) Submitted() bool { return w.submittedID != "" }

// SubmittedID returns the created application id, or "" before submission.
func (w *Wizard) SubmittedID() string { return w.submittedID }

// SetPersonal fills the personal-step fields.
func (w *Wizard) SetPersonal(name, email, phone string) {
	w.data.CandidateName = name
	w.data.Email = email
	w.data.Phone = phone
}

// SetYearsOfExperience fills the experience field.
func (w *Wizard) SetYearsOfExperience(years int) {
	w.data.YearsOfExperience = years
}

// SetPortfolioLink fills the optional portfolio link.
func (w *Wizard) SetPortfolioLink(link string) {
	w.data.PortfolioLink = link
}

// AddSkill normalizes the skill to lowercase and appends it to the draft.
// Empty input, duplicates and additions past the cap are ignored; the
// return value reports whether the skill was added.
func (w *Wizard) AddSkill(skill string) bool {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == "" || len(w.data.Skills) >= MaxSkills {
		return false
	}
	for _, s := range w.data.Skills {
		if s == skill {
			return false
		}
	}
	w.data.Skills = append(w.data.Skills, skill)
	return true
}

// RemoveSkill drops the skill from the draft if present.
func (w *Wizard) RemoveSkill(skill string) {
	skill = strings.ToLower(strings.TrimSpace(skill))
	kept := w.data.Skills[:0]
	for _, s := range w.data.Skills {
		if s != skill {
			kept = append(kept, s)
		}
	}
	w.data.Skills = kept
}

// Next validates the current step and advances on success, clearing the
// error map. It reports whether the step advanced.
func (w *Wizard) Next() bool {
	w.errors = w.validateCurrent()
	if len(w.errors) > 0 {
		return false
	}
	if w.step < len(steps)-1 {
		w.step++
		w.errors = map[string]string{}
	}
	return true
}

// Previous steps back unconditionally and clears the error map.
func (w *Wizard) Previous() {
	if w.step > 0 {
		w.step--
	}
	w.errors = map[string]string{}
}

// Submit re-validates the resume step and creates the application from the
// full draft. On success the wizard enters its terminal state and returns
// the new application id.
func (w *Wizard) Submit(ctx context.Context) (string, error) {
	if w.submittedID != "" {
		return "", ErrAlreadySubmitted
	}
	if w.Step() != StepResume {
		return "", ErrIncomplete
	}
	w.errors = w.validateCurrent()
	if len(w.errors) > 0 {
		return "", ErrInvalid
	}

	id, err := w.store.Create(ctx, store.CreateInput{
		JobID:             w.jobID,
		CandidateName:     w.data.CandidateName,
		Email:             w.data.Email,
		Phone:             w.data.Phone,
		YearsOfExperience: w.data.YearsOfExperience,
		Skills:            w.data.Skills,
		PortfolioLink:     w.data.PortfolioLink,
		ResumeFile:        w.data.ResumeFile,
		ResumeFileName:    w.data.ResumeFileName,
	})
	if err != nil {
		return "", err
	}
	w.submittedID = id
	return id, nil
}

func (w *Wizard) validateCurrent() map[string]string {
	switch w.Step() {
	case StepPersonal:
		return validatePersonal(w.data)
	case StepExperience:
		return validateExperience(w.data)
	case StepResume:
		return validateResume(w.data)
	}
	return map[string]string{}
}
