package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/pantry-match/backend/internal/matching"
)

func newConceptsCmd() *cobra.Command {
	var minConfidence float64

	cmd := &cobra.Command{
		Use:   "concepts LABEL[:CONFIDENCE]...",
		Short: "Map vision labels onto pantry ingredients",
		Long: `Map free-text vision labels onto canonical pantry ingredients.

A label may carry a confidence suffix such as "ripe tomato:0.95"; labels whose
confidence is not above --min-confidence are dropped. Labels without a suffix
are always kept.`,
		Example: `  pantry concepts "ripe tomato" "cheddar cheese slice" plate
  pantry concepts "ripe tomato:0.95" "plate:0.40" --min-confidence 0.7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := confidentLabels(args, minConfidence)
			if err != nil {
				return err
			}
			for _, ing := range matching.MapFoodConcepts(labels) {
				fmt.Fprintln(cmd.OutOrStdout(), ing)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.7, "confidence a suffixed label must exceed")
	return cmd
}

func confidentLabels(args []string, minConfidence float64) ([]string, error) {
	labels := make([]string, 0, len(args))
	for _, arg := range args {
		idx := strings.LastIndex(arg, ":")
		if idx < 0 {
			labels = append(labels, arg)
			continue
		}
		value, err := strconv.ParseFloat(arg[idx+1:], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid confidence in %q: %w", arg, err)
		}
		if value > minConfidence {
			labels = append(labels, arg[:idx])
		}
	}
	return labels, nil
}
