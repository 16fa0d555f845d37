package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notesmith/notesmith/internal/config"
	"github.com/notesmith/notesmith/pkg/cmd/discover"
	"github.com/notesmith/notesmith/pkg/cmd/expenses"
	"github.com/notesmith/notesmith/pkg/cmd/links"
	"github.com/notesmith/notesmith/pkg/cmd/search"
)

func NewCmdRoot(c *config.Config) (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   "notesmith",
		Short: "Turn free-form notes into structured expenses, links, and search results.",
		Long: heredoc.Doc(`
			notesmith analyzes markdown note text: it extracts bracket-format
			expense line-items and [[wiki-style]] links, discovers notes
			related to an expense, and runs TF-IDF ranked search across a
			vault of notes and their expenses.
		`),
		SilenceUsage: true,
	}

	command.PersistentFlags().
		StringP("vault", "v", c.VaultDir, "Vault directory holding markdown notes")
	if err := viper.BindPFlag("vaultdir", command.PersistentFlags().Lookup("vault")); err != nil {
		return nil, err
	}

	command.AddCommand(
		expenses.NewCmdExpenses(c),
		links.NewCmdLinks(c),
		discover.NewCmdDiscover(c),
		search.NewCmdSearch(c),
	)

	return command, nil
}
