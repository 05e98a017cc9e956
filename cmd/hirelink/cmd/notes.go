package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes [application_id] [text...]",
	Short: "Set recruiter notes on an application",
	Long:  `Set recruiter notes on an application. Notes are free text and replace any previous notes.`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
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

		a.pipeline.SetNotes(cmd.Context(), args[0], strings.Join(args[1:], " "))
		cmd.Printf("✓ Notes updated for %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
}
