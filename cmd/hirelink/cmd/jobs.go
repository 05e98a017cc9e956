package cmd

import (
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List open positions",
	Long:  `List the open positions candidates can apply to.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp(cmd.Context())
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer a.close()

		for _, job := range a.store.Jobs() {
			cmd.Printf("[%s] %s\n", job.ID, job.Title)
			cmd.Printf("    %s | %s\n", job.Department, job.Location)
			cmd.Printf("    %s\n", job.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}
