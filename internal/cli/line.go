package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdprefix/internal/ui/pretty"
	"github.com/yaklabco/mdprefix/pkg/blockprefix"
)

// escapeDecoder turns the escapes accepted on the command line into bytes.
//
//nolint:gochecknoglobals // Stateless replacer.
var escapeDecoder = strings.NewReplacer(`\\`, `\`, `\t`, "\t")

func newLineCommand() *cobra.Command {
	var noTasks bool
	var maxMarkers int

	cmd := &cobra.Command{
		Use:   "line TEXT",
		Short: "Analyze a single line",
		Long: `Analyze one literal line and print its markers with byte offsets and
tab-expanded columns. Write \t for a tab and \\ for a backslash.

Examples:
  mdprefix line '> - [x] done'
  mdprefix line '>\t-\tfoo'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := blockprefix.DefaultOptions()
			opts.TaskLists = !noTasks
			if maxMarkers > 0 {
				opts.MaxMarkers = maxMarkers
			}

			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

			fmt.Fprint(cmd.OutOrStdout(), formatLineAnalysis(styles, DecodeEscapes(args[0]), opts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noTasks, "no-tasks", false, "do not recognize task checkboxes")
	cmd.Flags().IntVar(&maxMarkers, "max-markers", 0, "limit the markers recorded (0 = default)")

	return cmd
}

// DecodeEscapes expands \t and \\ in text.
func DecodeEscapes(text string) string {
	return escapeDecoder.Replace(text)
}

func formatLineAnalysis(styles *pretty.Styles, text string, opts blockprefix.Options) string {
	line := []byte(text)
	prefix := blockprefix.Analyze(line, opts)

	var builder strings.Builder
	row := func(label, value string) {
		builder.WriteString(fmt.Sprintf("%-9s %s\n", label+":", value))
	}

	row("notation", styles.FormatNotation(prefix))
	row("indent", fmt.Sprintf("%d columns", prefix.Indent))
	if prefix.Structural() {
		row("markers", styles.FormatColumns(prefix))
		content := text[prefix.ContentOffset:]
		if prefix.ContentBlank {
			content = ""
		}
		row("content", fmt.Sprintf("@%d col %d %q",
			prefix.ContentOffset, blockprefix.ColumnAt(line, prefix.ContentOffset), content))
	}

	return builder.String()
}
