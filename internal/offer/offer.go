// Package offer drafts and sends offer letters for candidates at the end
// of the pipeline.
package offer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/template"
	"time"

	"hirelink/internal/pipeline"
	"hirelink/internal/store"
)

// Draft holds the recruiter's offer terms.
type Draft struct {
	JobTitle   string
	Department string
	Salary     string
	StartDate  string
	Benefits   string // comma-separated list
}

// NewDraft returns a draft with the standard department and benefits
// package prefilled.
func NewDraft() Draft {
	return Draft{
		Department: "Engineering",
		Benefits:   "Health Insurance, 401(k), Remote Work Options, Professional Development",
	}
}

// Validate checks the required terms and returns field-name to message
// errors, empty when the draft can be sent.
func (d Draft) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.JobTitle) == "" {
		errs["jobTitle"] = "Job title is required"
	}
	if strings.TrimSpace(d.Salary) == "" {
		errs["salary"] = "Salary is required"
	}
	if strings.TrimSpace(d.StartDate) == "" {
		errs["startDate"] = "Start date is required"
	}
	return errs
}

// ErrInvalidDraft is returned by Send when required terms are missing.
var ErrInvalidDraft = errors.New("offer: draft is missing required fields")

// Send validates the draft and moves the application to Offer Sent. The
// letter itself is rendered separately; sending is a stage transition.
func Send(ctx context.Context, p *pipeline.Pipeline, appID string, d Draft) error {
	if errs := d.Validate(); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDraft, strings.Join(sortedKeys(errs), ", "))
	}
	p.MoveStage(ctx, appID, store.StageOfferSent)
	return nil
}

var letterTmpl = template.Must(template.New("offer").Parse(`OFFER LETTER

Date: {{.Date}}

Dear {{.CandidateName}},

We are pleased to extend an offer for the position of {{.JobTitle}} at our organization.

POSITION DETAILS:
- Position: {{.JobTitle}}
- Department: {{.Department}}
- Start Date: {{.StartDate}}
- Compensation: ${{.Salary}} per year

BENEFITS:
{{range .Benefits}}- {{.}}
{{end}}
We are excited about the possibility of you joining our team. Your qualifications and experience make you an ideal candidate for this role.

This offer is contingent upon:
1. Successful background check
2. Verification of educational credentials
3. Reference checks

Please confirm your acceptance of this offer by replying to this email within 5 business days.

If you have any questions or require clarification, please do not hesitate to contact us.

Sincerely,
Human Resources Department`))

// Letter renders the offer letter text for the candidate.
func Letter(app store.Application, d Draft, now time.Time) string {
	benefits := []string{}
	for _, b := range strings.Split(d.Benefits, ",") {
		if b = strings.TrimSpace(b); b != "" {
			benefits = append(benefits, b)
		}
	}
	var sb strings.Builder
	_ = letterTmpl.Execute(&sb, struct {
		Date          string
		CandidateName string
		JobTitle      string
		Department    string
		StartDate     string
		Salary        string
		Benefits      []string
	}{
		Date:          now.Format("January 2, 2006"),
		CandidateName: app.CandidateName,
		JobTitle:      d.JobTitle,
		Department:    d.Department,
		StartDate:     d.StartDate,
		Salary:        d.Salary,
		Benefits:      benefits,
	})
	return sb.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
