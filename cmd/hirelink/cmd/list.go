package cmd

import (
	"github.com/spf13/cobra"

	"hirelink/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	Long: `List submitted applications, optionally filtered by pipeline stage.

Example:
  hirelink list
  hirelink list --stage interview`,
	Run: func(cmd *cobra.Command, args []string) {
		stageFilter, _ := cmd.Flags().GetString("stage")

		var stage store.Stage
		if stageFilter != "" {
			parsed, ok := store.ParseStage(stageFilter)
			if !ok {
				cmd.Printf("Error: unknown stage %q (want applied, reviewed, interview or offer)\n", stageFilter)
				return
			}
			stage = parsed
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer a.close()

		apps := a.store.Applications()
		shown := 0
		for _, app := range apps {
			if stage != "" && app.Stage != stage {
				continue
			}
			shown++
			job, _ := a.store.Job(app.JobID)
			cmd.Printf("%s  %-24s %-26s %s\n", app.ID, app.CandidateName, job.Title, app.Stage)
		}
		if shown == 0 {
			cmd.Println("No applications found.")
		}
	},
}

func init() {
	listCmd.Flags().StringP("stage", "s", "", "Filter by stage: applied, reviewed, interview, offer")
	rootCmd.AddCommand(listCmd)
}
