package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlogkit/discolog/internal/logging"
	"github.com/chatlogkit/discolog/internal/ui/pretty"
	"github.com/chatlogkit/discolog/pkg/markdown"
)

func newExtractCommand(color *string) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "List the emoji and links used in a message",
		Long: `Parse a message and list the emoji and links it contains.

Examples:
  discolog extract message.md
  discolog extract --kind emoji message.md
  echo 'see https://example.com :fire:' | discolog extract`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, kind, color)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "all", "what to extract: emoji, links, all")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string, kind string, color *string) error {
	source, inputName, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var (
		emojis []markdown.EmojiNode
		links  []markdown.LinkNode
	)
	switch kind {
	case "emoji":
		emojis = markdown.ExtractEmojis(source)
	case "links":
		links = markdown.ExtractLinks(source)
	case "all":
		emojis = markdown.ExtractEmojis(source)
		links = markdown.ExtractLinks(source)
	default:
		return fmt.Errorf("unknown kind %q (expected emoji, links or all)", kind)
	}

	logging.Default().Debug("extracted",
		logging.FieldInput, inputName,
		logging.FieldEmojis, len(emojis),
		logging.FieldLinks, len(links),
	)

	styles := pretty.NewStyles(pretty.IsColorEnabled(*color, os.Stdout))
	styles.Width = pretty.TerminalWidth(os.Stdout)
	table := styles.FormatExtractTable(emojis, links)
	if table == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing found.")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), table)
	return nil
}
