package cmd

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"hirelink/internal/form"
)

var applyCmd = &cobra.Command{
	Use:   "apply [job_id]",
	Short: "Submit an application for a job",
	Long: `Submit an application for an open position.

The submission runs the same three-step workflow as the application form:
personal information, experience and skills, then the resume upload. Each
step is validated before the next; validation failures are printed per
field and nothing is stored until the final step passes.

Example:
  hirelink apply 1 --name "Jane Doe" --email jane@x.com --phone 555-123-4567 \
    --years 3 --skills go,sql,kubernetes --portfolio https://jane.dev \
    --resume ./resume.pdf`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		name, _ := flags.GetString("name")
		email, _ := flags.GetString("email")
		phone, _ := flags.GetString("phone")
		years, _ := flags.GetInt("years")
		skills, _ := flags.GetStringSlice("skills")
		portfolio, _ := flags.GetString("portfolio")
		resumePath, _ := flags.GetString("resume")

		a, err := newApp(cmd.Context())
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer a.close()

		w, err := form.New(a.store, args[0])
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		// Step 1: personal information
		w.SetPersonal(name, email, phone)
		if !w.Next() {
			printFieldErrors(cmd, "personal information", w.Errors())
			return
		}

		// Step 2: experience and skills
		w.SetYearsOfExperience(years)
		for _, skill := range skills {
			w.AddSkill(skill)
		}
		w.SetPortfolioLink(portfolio)
		if !w.Next() {
			printFieldErrors(cmd, "experience", w.Errors())
			return
		}

		// Step 3: resume upload
		if resumePath != "" {
			f, err := os.Open(resumePath)
			if err != nil {
				cmd.Printf("Error: cannot open resume: %v\n", err)
				return
			}
			attachErr := w.AttachResume(filepath.Base(resumePath), f)
			f.Close()
			if attachErr != nil {
				printFieldErrors(cmd, "resume upload", w.Errors())
				return
			}
		}

		id, err := w.Submit(cmd.Context())
		if err != nil {
			printFieldErrors(cmd, "resume upload", w.Errors())
			return
		}

		cmd.Printf("✓ Application submitted!\nID: %s\n", id)
	},
}

func printFieldErrors(cmd *cobra.Command, step string, errs map[string]string) {
	cmd.Printf("Validation failed at the %s step:\n", step)
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		cmd.Printf("  %s: %s\n", field, errs[field])
	}
}

func init() {
	flags := applyCmd.Flags()
	flags.StringP("name", "n", "", "Candidate full name (required)")
	flags.StringP("email", "e", "", "Email address (required)")
	flags.StringP("phone", "p", "", "Phone number (required)")
	flags.IntP("years", "y", 0, "Years of experience")
	flags.StringSlice("skills", []string{}, "Skills, comma separated (at least one required)")
	flags.String("portfolio", "", "Portfolio URL (optional)")
	flags.StringP("resume", "r", "", "Path to resume file, PDF or DOC (required)")

	rootCmd.AddCommand(applyCmd)
}
