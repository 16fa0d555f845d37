package expenses

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notesmith/notesmith/internal/config"
	"github.com/notesmith/notesmith/internal/expense"
	"github.com/notesmith/notesmith/pkg/cmd"
)

func NewCmdExpenses(c *config.Config) *cobra.Command {
	command := &cobra.Command{
		Use:     "expenses [file]",
		Aliases: []string{"exp"},
		Short:   "Extract expense line-items from note text.",
		Long: heredoc.Doc(`
			Scans note text for bracket-format expenses and prints each
			detected line-item. Reads from a file argument, stdin, or the
			clipboard.

			An expense line looks like:

			  $25 Lunch [Food] @yesterday

			The category must come from the fixed vocabulary; anything else
			is recorded as Other and flagged. The @date token is optional.
		`),
		Example: `  notesmith expenses daily.md
  cat daily.md | notesmith expenses
  notesmith expenses --clipboard`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			return run(command, args, c)
		},
	}

	command.Flags().BoolP("clipboard", "c", false, "Read note text from the clipboard")

	return command
}

func run(command *cobra.Command, args []string, _ *config.Config) error {
	fromClipboard, _ := command.Flags().GetBool("clipboard")

	text, err := cmd.ReadSource(args, fromClipboard)
	if err != nil {
		return err
	}

	expenses := expense.Parse(text, time.Now())
	if len(expenses) == 0 {
		fmt.Println("No expenses found.")
		return nil
	}

	for _, exp := range expenses {
		date := "-"
		if exp.Date != nil {
			date = expense.FormatDate(*exp.Date)
		} else if exp.RawDate != "" {
			date = fmt.Sprintf("unparsed (%s)", exp.RawDate)
		}

		flag := ""
		if !exp.Valid {
			flag = " (unknown category)"
		}

		fmt.Printf("$%.2f  %-30s  %-13s  %s%s\n",
			exp.Amount, exp.Description, exp.Category, date, flag)
	}
	fmt.Printf("\n%d expense(s) detected.\n", len(expenses))

	return nil
}
