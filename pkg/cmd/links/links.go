package links

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/notesmith/notesmith/internal/config"
	"github.com/notesmith/notesmith/internal/links"
	"github.com/notesmith/notesmith/pkg/cmd"
)

func NewCmdLinks(c *config.Config) *cobra.Command {
	command := &cobra.Command{
		Use:   "links [file]",
		Short: "List the [[wiki-style]] link titles a note references.",
		Long: heredoc.Doc(`
			Extracts the unique [[Title]] references from note text, in
			order of first occurrence. Reads from a file argument, stdin,
			or the clipboard.
		`),
		Example: `  notesmith links meeting.md
  notesmith links --clipboard`,
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

	titles := links.Extract(text)
	if len(titles) == 0 {
		fmt.Println("No links found.")
		return nil
	}

	for _, title := range titles {
		fmt.Printf("  [[%s]]\n", title)
	}
	fmt.Printf("\n%d unique link(s).\n", len(titles))

	return nil
}
