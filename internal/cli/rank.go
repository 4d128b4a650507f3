package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pageza/pantry-match/backend/internal/catalog"
	"github.com/pageza/pantry-match/backend/internal/matching"
	"github.com/pageza/pantry-match/backend/internal/model"
)

type rankOptions struct {
	pantry      []string
	diets       []string
	maxTime     int
	difficulty  string
	sortBy      string
	minScore    int
	limit       int
	catalogPath string
	format      string
}

func newRankCmd() *cobra.Command {
	opts := &rankOptions{}

	cmd := &cobra.Command{
		Use:   "rank [INGREDIENT...]",
		Short: "Rank the catalog against pantry ingredients",
		Example: `  pantry rank tomato cheese basil
  pantry rank --pantry egg,butter --diet vegetarian --max-time 20 --sort time
  pantry rank egg --catalog recipes.yaml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.pantry = append(opts.pantry, args...)
			return runRank(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.pantry, "pantry", "p", nil, "pantry ingredients (comma separated)")
	cmd.Flags().StringSliceVar(&opts.diets, "diet", nil, "required dietary tags: vegetarian, vegan, gluten-free")
	cmd.Flags().IntVar(&opts.maxTime, "max-time", 0, "maximum cooking time in minutes (0 for no limit)")
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", "", "easy, medium or hard")
	cmd.Flags().StringVar(&opts.sortBy, "sort", "match", "match, time or difficulty")
	cmd.Flags().IntVar(&opts.minScore, "min-score", 0, "hide recipes scoring below this percentage")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "show at most this many recipes (0 for all)")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "catalog file (.json or .yaml); defaults to the built-in catalog")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format: text, json or yaml")

	return cmd
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Embedded()
	}
	return catalog.LoadFile(path)
}

func runRank(out io.Writer, opts *rankOptions) error {
	state := matching.NewSearchState().
		WithIngredients(opts.pantry).
		WithDifficulty(opts.difficulty).
		WithSortBy(opts.sortBy)
	for _, d := range opts.diets {
		if !slices.Contains(state.Dietary(), d) {
			state = state.ToggleDietary(d)
		}
	}
	if opts.maxTime != 0 {
		state = state.WithMaxTime(&opts.maxTime)
	}
	if !state.CanSearch() {
		return fmt.Errorf("no pantry ingredients given")
	}

	filters, err := state.Filters()
	if err != nil {
		return err
	}
	if opts.minScore < 0 || opts.minScore > 100 {
		return fmt.Errorf("min-score must be between 0 and 100")
	}

	c, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}

	matches := matching.ApplyMinScore(matching.RankRecipes(state.Pantry(), c.All(), filters), opts.minScore)
	if opts.limit > 0 && len(matches) > opts.limit {
		matches = matches[:opts.limit]
	}

	switch opts.format {
	case "text":
		return printMatches(out, matches)
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(matches)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		defer encoder.Close()
		return encoder.Encode(toYAML(matches))
	default:
		return fmt.Errorf("unsupported format: %s", opts.format)
	}
}

func printMatches(out io.Writer, matches []model.RecipeMatch) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(out, "No recipes match these filters.")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMATCH\tTIME\tDIFFICULTY\tTITLE\tMISSING")
	for _, m := range matches {
		fmt.Fprintf(w, "%d\t%d%%\t%dm\t%s\t%s\t%s\n",
			m.ID, m.MatchScore, m.CookingTime, m.Difficulty, m.Title, strings.Join(m.MissingIngredients, ", "))
	}
	return w.Flush()
}

type yamlMatch struct {
	ID      int      `yaml:"id"`
	Title   string   `yaml:"title"`
	Score   int      `yaml:"matchScore"`
	Matched []string `yaml:"matchedIngredients"`
	Missing []string `yaml:"missingIngredients"`
	Time    int      `yaml:"cookingTime"`
	Level   string   `yaml:"difficulty"`
}

func toYAML(matches []model.RecipeMatch) []yamlMatch {
	out := make([]yamlMatch, len(matches))
	for i, m := range matches {
		out[i] = yamlMatch{
			ID:      m.ID,
			Title:   m.Title,
			Score:   m.MatchScore,
			Matched: m.MatchedIngredients,
			Missing: m.MissingIngredients,
			Time:    m.CookingTime,
			Level:   string(m.Difficulty),
		}
	}
	return out
}
