package cmd

import (
	"sort"
	"time"

	"github.com/spf13/cobra"

	"hirelink/internal/pipeline"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule [application_id]",
	Short: "Schedule an interview",
	Long: `Schedule an interview for a candidate. Setting the slot moves the
application to the Interview Scheduled stage in the same write.

Example:
  hirelink schedule APP_123 --date 2026-09-15 --time 14:00`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		date, _ := cmd.Flags().GetString("date")
		timeOfDay, _ := cmd.Flags().GetString("time")

		if errs := pipeline.ValidateSchedule(date, timeOfDay, time.Now()); len(errs) > 0 {
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

		if _, found := a.store.Get(args[0]); !found {
			cmd.Printf("Application %s not found\n", args[0])
			return
		}

		a.pipeline.ScheduleInterview(cmd.Context(), args[0], date, timeOfDay)
		cmd.Printf("✓ Interview scheduled for %s on %s at %s\n", args[0], date, timeOfDay)
	},
}

func init() {
	flags := scheduleCmd.Flags()
	flags.StringP("date", "d", "", "Interview date, YYYY-MM-DD (required)")
	flags.StringP("time", "t", "", "Interview time, e.g. 14:00 (required)")

	rootCmd.AddCommand(scheduleCmd)
}
