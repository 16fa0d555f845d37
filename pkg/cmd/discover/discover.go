package discover

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notesmith/notesmith/internal/config"
	"github.com/notesmith/notesmith/internal/discovery"
	"github.com/notesmith/notesmith/pkg/cmd"
)

func NewCmdDiscover(c *config.Config) *cobra.Command {
	command := &cobra.Command{
		Use:     "discover [description]",
		Aliases: []string{"disc"},
		Short:   "Find vault notes related to an expense.",
		Long: heredoc.Doc(`
			Derives search terms from an expense description and category,
			scores every note in the vault for relevance, and prints the
			notes above the configured threshold, strongest first.
		`),
		Example: `  notesmith discover "coffee at the corner cafe" --category Food
  notesmith discover "adobe license" --category Software --threshold 0.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			return run(command, args, c)
		},
	}

	command.Flags().StringP("category", "k", "Other", "Expense category")
	command.Flags().Float64P("threshold", "t", 0, "Minimum relevance score (overrides config)")
	command.Flags().IntP("max", "m", 0, "Maximum links to report (overrides config)")

	return command
}

func run(command *cobra.Command, args []string, c *config.Config) error {
	description := strings.Join(args, " ")
	category, _ := command.Flags().GetString("category")

	threshold := c.Discovery.Threshold
	if command.Flags().Changed("threshold") {
		threshold, _ = command.Flags().GetFloat64("threshold")
	}
	maxLinks := c.Discovery.MaxLinks
	if command.Flags().Changed("max") {
		maxLinks, _ = command.Flags().GetInt("max")
	}

	notes, err := cmd.LoadVault(c)
	if err != nil {
		return err
	}

	candidates := make([]discovery.Note, len(notes))
	for i, note := range notes {
		candidates[i] = discovery.Note{
			ID:      note.Path,
			Title:   note.Title,
			Content: note.Content,
		}
	}

	discoverer, err := discovery.NewDiscoverer(
		discovery.WithThreshold(threshold),
		discovery.WithMaxLinks(maxLinks),
	)
	if err != nil {
		return fmt.Errorf("creating discoverer: %w", err)
	}
	defer discoverer.Release()

	related := discoverer.DiscoverRelated(command.Context(), description, category, candidates)
	if len(related) == 0 {
		fmt.Printf("No notes related to %q (threshold %.2f).\n", description, threshold)
		return nil
	}

	for _, r := range related {
		fmt.Printf("  %.2f  %s\n", r.Score, r.Note.Title)
	}

	stats := discovery.Summarize(related)
	fmt.Printf("\n%d related note(s); average strength %.2f (%d strong, %d weak).\n",
		stats.Total, stats.AverageStrength, stats.Strong, stats.Weak)

	return nil
}
