package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notesmith/notesmith/internal/config"
	"github.com/notesmith/notesmith/internal/expense"
	"github.com/notesmith/notesmith/internal/ranking"
	"github.com/notesmith/notesmith/pkg/cmd"
)

func NewCmdSearch(c *config.Config) *cobra.Command {
	command := &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"s", "find"},
		Short:   "Rank vault notes and expenses against a query.",
		Long: heredoc.Doc(`
			Runs a TF-IDF ranked search across every note in the vault and
			every expense line-item found inside those notes. Recent
			documents get a mild boost; results are capped at the
			configured maximum.
		`),
		Example: `  notesmith search coffee budget
  notesmith search "adobe license"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			return run(command, args, c)
		},
	}

	return command
}

func run(_ *cobra.Command, args []string, c *config.Config) error {
	query := strings.Join(args, " ")

	vaultNotes, err := cmd.LoadVault(c)
	if err != nil {
		return err
	}

	now := time.Now()
	notes := make([]ranking.Note, len(vaultNotes))
	var expenses []ranking.Expense
	for i, note := range vaultNotes {
		notes[i] = ranking.Note{
			ID:        note.Path,
			Title:     note.Title,
			Content:   note.Content,
			CreatedAt: note.CreatedAt,
		}

		for j, exp := range expense.Parse(note.Content, now) {
			record := ranking.Expense{
				ID:          fmt.Sprintf("%s#%d", note.Path, j),
				Description: exp.Description,
				Category:    exp.Category,
				Amount:      exp.Amount,
			}
			if exp.Date != nil {
				record.Date = *exp.Date
			}
			expenses = append(expenses, record)
		}
	}

	results := ranking.Search(query, notes, expenses, now)
	if len(results) == 0 {
		fmt.Printf("No results for %q.\n", query)
		return nil
	}

	max := len(results)
	if c.Search.MaxResults < max {
		max = c.Search.MaxResults
	}

	for _, r := range results[:max] {
		header := fmt.Sprintf("%s  %s  %s",
			scoreStyle.Render(fmt.Sprintf("%5.3f", r.Score)),
			titleStyle.Render(r.Title),
			typeStyle.Render(r.Type),
		)
		fmt.Println(header)

		if excerpt := ranking.Excerpt(r.Content, r.MatchedTerms, ranking.DefaultExcerptLength); excerpt != "" {
			fmt.Println(excerptStyle.Render(excerpt))
		}
		if len(r.MatchedTerms) > 0 {
			fmt.Println(matchedStyle.Render("matched: " + strings.Join(r.MatchedTerms, ", ")))
		}
		fmt.Println()
	}

	fmt.Printf("%d result(s) for %q.\n", max, query)
	return nil
}
