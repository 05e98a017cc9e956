package form

import (
	"regexp"
	"strings"
)

var (
	emailRe     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe     = regexp.MustCompile(`^[0-9\s()+-]+$`)
	portfolioRe = regexp.MustCompile(`^https?://.+`)
)

// validatePersonal checks the personal-step fields and returns field-name
// to message errors, empty when the step passes.
func validatePersonal(d Data) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(d.CandidateName)
	if name == "" {
		errs["candidateName"] = "Full name is required"
	} else if len(d.CandidateName) > 100 {
		errs["candidateName"] = "Name must be less than 100 characters"
	}

	if strings.TrimSpace(d.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(d.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !phoneRe.MatchString(d.Phone) {
		errs["phone"] = "Please enter a valid phone number"
	} else if len(stripPhoneSeparators(d.Phone)) < 10 {
		errs["phone"] = "Phone number must be at least 10 digits"
	}

	return errs
}

// validateExperience checks the experience-step fields.
func validateExperience(d Data) map[string]string {
	errs := map[string]string{}

	if d.YearsOfExperience < 0 {
		errs["yearsOfExperience"] = "Years of experience cannot be negative"
	} else if d.YearsOfExperience > 100 {
		errs["yearsOfExperience"] = "Please enter a valid number"
	}

	if len(d.Skills) == 0 {
		errs["skills"] = "Please add at least one skill"
	}

	if d.PortfolioLink != "" && !portfolioRe.MatchString(d.PortfolioLink) {
		errs["portfolioLink"] = "Please enter a valid URL"
	}

	return errs
}

// validateResume checks that a resume payload is attached.
func validateResume(d Data) map[string]string {
	errs := map[string]string{}
	if d.ResumeFile == "" {
		errs["resume"] = "Resume file is required"
	}
	return errs
}

func stripPhoneSeparators(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '+':
			return -1
		}
		return r
	}, phone)
}
