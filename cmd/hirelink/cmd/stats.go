package cmd

import (
	"github.com/spf13/cobra"

	"hirelink/internal/analytics"
	"hirelink/internal/observability"
	"hirelink/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show pipeline statistics",
	Long: `Show aggregate numbers over all applications: pipeline
distribution, score distribution, experience breakdown, top skills and the
application timeline. With --metrics, the session's Prometheus counters
are dumped in text exposition format instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		showMetrics, _ := cmd.Flags().GetBool("metrics")
		if showMetrics {
			if err := observability.WriteMetrics(cmd.OutOrStdout()); err != nil {
				cmd.Printf("Error: %v\n", err)
			}
			return
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		defer a.close()

		apps := a.store.Applications()
		cmd.Printf("Applications: %d\n\n", len(apps))

		cmd.Println("Pipeline:")
		stages := analytics.StageCounts(apps)
		for _, stage := range store.Stages {
			cmd.Printf("  %-20s %d\n", stage, stages[stage])
		}

		cmd.Println("\nScores:")
		scores := analytics.ScoreDistribution(apps)
		for n := 1; n <= 5; n++ {
			cmd.Printf("  %d stars  %d\n", n, scores[n])
		}

		cmd.Println("\nExperience:")
		experience := analytics.ExperienceBreakdown(apps)
		for _, band := range []string{analytics.BandEntry, analytics.BandJunior, analytics.BandMid, analytics.BandSenior} {
			cmd.Printf("  %-14s %d\n", band, experience[band])
		}

		if top := analytics.TopSkills(apps, 8); len(top) > 0 {
			cmd.Println("\nTop skills:")
			for _, sc := range top {
				cmd.Printf("  %-20s %d\n", sc.Skill, sc.Count)
			}
		}

		if timeline := analytics.Timeline(apps); len(timeline) > 0 {
			cmd.Println("\nTimeline:")
			for _, day := range timeline {
				cmd.Printf("  %s  %d\n", day.Date, day.Count)
			}
		}
	},
}

func init() {
	statsCmd.Flags().Bool("metrics", false, "Dump Prometheus counters for this session")
	rootCmd.AddCommand(statsCmd)
}
