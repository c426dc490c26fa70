package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chatlogkit/discolog/internal/logging"
	"github.com/chatlogkit/discolog/internal/ui/pretty"
	"github.com/chatlogkit/discolog/pkg/export"
	"github.com/chatlogkit/discolog/pkg/fsutil"
	"github.com/chatlogkit/discolog/pkg/langdetect"
	"github.com/chatlogkit/discolog/pkg/markdown"
)

type renderFlags struct {
	format     string
	guildData  string
	output     string
	noJumbo    bool
	detectLang bool
	utc        bool
}

func newRenderCommand(color *string) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a markdown message to HTML or plain text",
		Long:  renderLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags, color)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "html", "output format: html, text")
	cmd.Flags().StringVar(&flags.guildData, "guild-data", "",
		"YAML file with the guild's channels, roles and members")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&flags.noJumbo, "no-jumbo", false, "disable enlarged emoji-only messages")
	cmd.Flags().BoolVar(&flags.detectLang, "detect-lang", false, "detect the language of untagged code blocks")
	cmd.Flags().BoolVar(&flags.utc, "utc", false, "render timestamps in UTC instead of local time")

	return cmd
}

const renderLongDescription = `Render a Discord markdown message to HTML or plain text.

Reads the message from a file, or from stdin when no file (or "-") is
given. Mentions, custom emoji and timestamps resolve against the guild
metadata file passed with --guild-data; without it, unknown entities
render with their placeholder forms.

Examples:
  discolog render message.md                        # HTML to stdout
  discolog render --format text message.md          # plain text
  echo '**hi** <@123>' | discolog render            # from stdin
  discolog render --guild-data guild.yaml -o out.html message.md`

func runRender(cmd *cobra.Command, args []string, flags *renderFlags, color *string) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	source, inputName, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	exportCtx, err := buildExportContext(flags.guildData, flags.utc)
	if err != nil {
		return err
	}

	var out string
	switch flags.format {
	case "html":
		renderer := markdown.HTMLRenderer{
			Resolver:     exportCtx,
			JumboAllowed: !flags.noJumbo,
		}
		if flags.detectLang {
			renderer.DetectLanguage = langdetect.DetectString
		}
		out, err = renderer.Render(ctx, source)
	case "text":
		out, err = markdown.RenderPlainText(ctx, exportCtx, source)
	default:
		return fmt.Errorf("unknown format %q (expected html or text)", flags.format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", inputName, err)
	}

	logger.Debug("rendered",
		logging.FieldInput, inputName,
		logging.FieldFormat, flags.format,
		logging.FieldBytes, len(out),
	)

	if flags.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	if err := fsutil.WriteAtomic(ctx, flags.output, []byte(out), 0); err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(*color, os.Stdout))
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatRenderSummary(flags.format, len(out), flags.output))
	return nil
}

// buildExportContext seeds a resolver context from the optional guild
// metadata file.
func buildExportContext(guildData string, utc bool) (*export.Context, error) {
	exportCtx := export.NewContext()
	if guildData != "" {
		gd, err := export.LoadGuildData(guildData)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadGuildData, err)
		}
		gd.Apply(exportCtx)
	}
	exportCtx.NormalizeToUTC = utc
	return exportCtx, nil
}

// readInput returns the message source from the file argument, or
// from stdin when no argument (or "-") is given.
func readInput(cmd *cobra.Command, args []string) (source, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read input: %w", err)
	}
	return string(data), args[0], nil
}
