package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// helpHeadings are the section titles of cobra's default usage template.
//
//nolint:gochecknoglobals // Read-only lookup table.
var helpHeadings = []string{
	"Usage:",
	"Aliases:",
	"Examples:",
	"Available Commands:",
	"Flags:",
	"Global Flags:",
	"Additional help topics:",
}

// applyHelpStyles colors the section headings and command names of cobra's
// default help output. Subcommands inherit the templates from the root.
func applyHelpStyles(cmd *cobra.Command, colorEnabled bool) {
	heading := lipgloss.NewStyle()
	command := lipgloss.NewStyle()
	if colorEnabled {
		heading = heading.Foreground(lipgloss.Color("11")).Bold(true)
		command = command.Foreground(lipgloss.Color("14")).Bold(true)
	}

	cobra.AddTemplateFunc("styleHeading", heading.Render)
	cobra.AddTemplateFunc("styleCommand", command.Render)

	cmd.SetUsageTemplate(styleUsageTemplate(cmd.UsageTemplate()))
}

// styleUsageTemplate rewrites the plain headings of a usage template into
// styleHeading calls and styles the use line.
func styleUsageTemplate(tmpl string) string {
	pairs := make([]string, 0, len(helpHeadings)*4+2)
	pairs = append(pairs, "{{.UseLine}}", "{{styleCommand .UseLine}}")
	for _, title := range helpHeadings {
		pairs = append(pairs, title+"{{", `{{styleHeading "`+title+`"}}{{`)
		pairs = append(pairs, title+"\n", `{{styleHeading "`+title+`"}}`+"\n")
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
