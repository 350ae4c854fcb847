// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Marker styles
	Blockquote    lipgloss.Style
	Bullet        lipgloss.Style
	Ordered       lipgloss.Style
	TaskChecked   lipgloss.Style
	TaskUnchecked lipgloss.Style

	// Line components
	FilePath   lipgloss.Style
	LineNumber lipgloss.Style
	Content    lipgloss.Style

	// Verification styles
	Mismatch lipgloss.Style
	Warning  lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableErrorRow  lipgloss.Style
	TableLegend    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Blockquote:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Bullet:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Ordered:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		TaskChecked:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		TaskUnchecked: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

		FilePath:   lipgloss.NewStyle().Bold(true),
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Content:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		Mismatch: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableErrorRow:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")), // Red text
		TableLegend:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Blockquote:     plain,
		Bullet:         plain,
		Ordered:        plain,
		TaskChecked:    plain,
		TaskUnchecked:  plain,
		FilePath:       plain,
		LineNumber:     plain,
		Content:        plain,
		Mismatch:       plain,
		Warning:        plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableErrorRow:  plain,
		TableLegend:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
