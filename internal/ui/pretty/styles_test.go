package pretty_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdprefix/internal/ui/pretty"
)

// allStyles lists every style so new fields are covered by both tests below.
func allStyles(s *pretty.Styles) map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"Blockquote":     s.Blockquote,
		"Bullet":         s.Bullet,
		"Ordered":        s.Ordered,
		"TaskChecked":    s.TaskChecked,
		"TaskUnchecked":  s.TaskUnchecked,
		"FilePath":       s.FilePath,
		"LineNumber":     s.LineNumber,
		"Content":        s.Content,
		"Mismatch":       s.Mismatch,
		"Warning":        s.Warning,
		"SummaryTitle":   s.SummaryTitle,
		"SummaryValue":   s.SummaryValue,
		"Success":        s.Success,
		"Failure":        s.Failure,
		"TableHeader":    s.TableHeader,
		"TableErrorRow":  s.TableErrorRow,
		"TableLegend":    s.TableLegend,
		"TableSeparator": s.TableSeparator,
		"Dim":            s.Dim,
		"Bold":           s.Bold,
	}
}

func TestNewStyles_NoColorIsPlain(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	for name, style := range allStyles(styles) {
		assert.Equal(t, "> - [x]", style.Render("> - [x]"), "%s should render unmodified", name)
	}
}

func TestNewStyles_ColorKeepsText(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(true)
	require.NotNil(t, styles)

	// lipgloss drops ANSI codes when no terminal is attached, so only the
	// text itself can be asserted.
	for name, style := range allStyles(styles) {
		assert.Contains(t, style.Render("12."), "12.", name)
	}
}

func TestIsColorEnabled(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		noColor string
		writer  io.Writer
		want    bool
	}{
		{"always on a buffer", "always", "", &bytes.Buffer{}, true},
		{"always ignores NO_COLOR", "always", "1", &bytes.Buffer{}, true},
		{"never on stdout", "never", "", os.Stdout, false},
		{"auto on a buffer", "auto", "", &bytes.Buffer{}, false},
		{"auto with NO_COLOR", "auto", "1", os.Stdout, false},
		{"empty mode is auto", "", "", &bytes.Buffer{}, false},
		{"unknown mode is auto", "rainbow", "", &bytes.Buffer{}, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", testCase.noColor)

			assert.Equal(t, testCase.want, pretty.IsColorEnabled(testCase.mode, testCase.writer))
		})
	}
}
