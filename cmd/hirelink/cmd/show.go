package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [application_id]",
	Short: "Show one application",
	Long:  `Show the full record of one application, including score, notes and interview slot when set.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp(cmd.Context())
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer a.close()

		app, ok := a.store.Get(args[0])
		if !ok {
			cmd.Printf("Application %s not found\n", args[0])
			return
		}

		job, _ := a.store.Job(app.JobID)
		cmd.Printf("ID:         %s\n", app.ID)
		cmd.Printf("Candidate:  %s\n", app.CandidateName)
		cmd.Printf("Position:   %s\n", job.Title)
		cmd.Printf("Email:      %s\n", app.Email)
		cmd.Printf("Phone:      %s\n", app.Phone)
		cmd.Printf("Experience: %d years\n", app.YearsOfExperience)
		cmd.Printf("Skills:     %s\n", strings.Join(app.Skills, ", "))
		if app.PortfolioLink != "" {
			cmd.Printf("Portfolio:  %s\n", app.PortfolioLink)
		}
		cmd.Printf("Resume:     %s\n", app.ResumeFileName)
		cmd.Printf("Applied:    %s\n", app.AppliedAt)
		cmd.Printf("Stage:      %s\n", app.Stage)
		if app.Score != nil {
			cmd.Printf("Score:      %d/5\n", *app.Score)
		}
		if app.Notes != "" {
			cmd.Printf("Notes:      %s\n", app.Notes)
		}
		if app.InterviewDate != "" {
			cmd.Printf("Interview:  %s %s\n", app.InterviewDate, app.InterviewTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
