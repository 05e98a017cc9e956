package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [application_id] [score]",
	Short: "Score a candidate from 1 to 5",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		score, err := strconv.Atoi(args[1])
		if err != nil || score < 1 || score > 5 {
			cmd.Printf("Error: score must be a number from 1 to 5\n")
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

		a.pipeline.Score(cmd.Context(), args[0], score)
		cmd.Printf("✓ Scored %s: %d/5\n", args[0], score)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
