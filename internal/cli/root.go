// Package cli holds the pantry command line tool.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pantry",
		Short: "Rank recipes against the ingredients you have",
		Long: `pantry ranks a recipe catalog against a list of pantry ingredients.

It uses the same matching and filtering as the HTTP API and can also map
vision labels or a photo onto pantry ingredients.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.AddCommand(newRankCmd())
	cmd.AddCommand(newConceptsCmd())
	cmd.AddCommand(newDetectCmd())

	return cmd
}
