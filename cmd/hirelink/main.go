// Package main is the entry point for the hirelink CLI.
// The CLI is the single-actor front end over the local application store.
package main

import (
	"os"

	"hirelink/cmd/hirelink/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
