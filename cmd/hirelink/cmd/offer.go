package cmd

import (
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"hirelink/internal/offer"
)

var offerCmd = &cobra.Command{
	Use:   "offer [application_id]",
	Short: "Draft and send an offer letter",
	Long: `Draft an offer letter for a candidate and mark the application as
Offer Sent. The rendered letter is printed, or written to a file with --out.

Example:
  hirelink offer APP_123 --job-title "Senior Frontend Engineer" \
    --salary 120000 --start-date 2026-10-01 --out offer_jane.txt`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		draft := offer.NewDraft()
		draft.JobTitle, _ = flags.GetString("job-title")
		draft.Salary, _ = flags.GetString("salary")
		draft.StartDate, _ = flags.GetString("start-date")
		if v, _ := flags.GetString("department"); v != "" {
			draft.Department = v
		}
		if v, _ := flags.GetString("benefits"); v != "" {
			draft.Benefits = v
		}

		if errs := draft.Validate(); len(errs) > 0 {
			fields := make([]string, 0, len(errs))
			for f := range errs {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			for _, f := range fields {
				cmd.Printf("Error: %s\n", errs[f])
			}
			return
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer a.close()

		app, found := a.store.Get(args[0])
		if !found {
			cmd.Printf("Application %s not found\n", args[0])
			return
		}

		if err := offer.Send(cmd.Context(), a.pipeline, app.ID, draft); err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		letter := offer.Letter(app, draft, time.Now())
		if out, _ := flags.GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(letter), 0o644); err != nil {
				cmd.Printf("Error: write letter: %v\n", err)
				return
			}
			cmd.Printf("✓ Offer sent to %s, letter written to %s\n", app.Email, out)
			return
		}

		cmd.Println(letter)
		cmd.Printf("\n✓ Offer sent to %s\n", app.Email)
	},
}

func init() {
	flags := offerCmd.Flags()
	flags.String("job-title", "", "Position title (required)")
	flags.String("salary", "", "Annual salary (required)")
	flags.String("start-date", "", "Start date (required)")
	flags.String("department", "", "Department (default: Engineering)")
	flags.String("benefits", "", "Comma-separated benefits list")
	flags.StringP("out", "o", "", "Write the letter to this file instead of printing it")

	rootCmd.AddCommand(offerCmd)
}
