package cmd

import (
	"github.com/spf13/cobra"

	"hirelink/internal/store"
)

var moveCmd = &cobra.Command{
	Use:   "move [application_id] [stage]",
	Short: "Move an application to another pipeline stage",
	Long: `Move an application to any pipeline stage: applied, reviewed,
interview or offer. There are no transition restrictions; a candidate can
always be moved back, for example to reset an offer to Applied.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		stage, ok := store.ParseStage(args[1])
		if !ok {
			cmd.Printf("Error: unknown stage %q (want applied, reviewed, interview or offer)\n", args[1])
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

		a.pipeline.MoveStage(cmd.Context(), args[0], stage)
		cmd.Printf("✓ Moved %s to %s\n", args[0], stage)
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
