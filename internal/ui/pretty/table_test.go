package pretty

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdprefix/pkg/blockprefix"
	"github.com/yaklabco/mdprefix/pkg/parser/goldmark"
	"github.com/yaklabco/mdprefix/pkg/runner"
)

func TestTruncateFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		maxLen int
		want   string
	}{
		{"fits", "docs/a.md", 20, "docs/a.md"},
		{"keeps filename", "very/long/path/to/readme.md", 12, "...readme.md"},
		{"tiny width", "readme.md", 3, ".md"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, truncateFilePath(testCase.path, testCase.maxLen))
		})
	}
}

func TestRowFor(t *testing.T) {
	t.Parallel()

	file := runner.FileOutcome{
		Path:    "a.md",
		Summary: blockprefix.Summary{Lines: 5, StructuralLines: 3, Blockquotes: 1, Bullets: 2, TasksChecked: 1, MaxDepth: 1},
		Verification: &goldmark.Comparison{
			Mismatches: []goldmark.Mismatch{{Line: 2, Kind: blockprefix.KindBullet}},
		},
	}

	row := RowFor("a.md", file, true)
	assert.Equal(t, []string{"5", "3", "1", "2", "0", "1", "1", "1"}, row.Cells)
	assert.True(t, row.Differs)
	assert.False(t, row.Failed)

	row = RowFor("a.md", file, false)
	assert.Equal(t, "-", row.Cells[len(row.Cells)-1])

	row = RowFor("b.md", runner.FileOutcome{Path: "b.md", Error: errors.New("boom")}, true)
	assert.True(t, row.Failed)
	assert.Equal(t, "error", row.Cells[0])
}

func TestFormatTable(t *testing.T) {
	t.Parallel()

	formatter := NewTableFormatter(NewStyles(false), false, 0)
	assert.Empty(t, formatter.FormatTable(nil, nil))
	assert.Empty(t, formatter.FormatTable(&runner.Result{}, nil))

	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/work/a.md", Summary: blockprefix.Summary{Lines: 4, StructuralLines: 2, Bullets: 2}},
		},
		Stats: runner.Stats{
			FilesProcessed: 1,
			Totals:         blockprefix.Summary{Lines: 4, StructuralLines: 2, Bullets: 2},
		},
	}

	out := formatter.FormatTable(result, func(path string) string {
		return strings.TrimPrefix(path, "/work/")
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], " FILE"))
	assert.Contains(t, lines[0], "MISMATCH")
	assert.True(t, strings.HasPrefix(lines[2], " a.md "))
	assert.Contains(t, lines[4], "TOTAL (1 file)")
	assert.Contains(t, lines[6], "MISMATCH needs --verify")
	assert.Equal(t, len(lines[1]), calculateTotalWidth(minFileWidth))
}

func TestCalculateFileWidth_ShrinksToTerminal(t *testing.T) {
	t.Parallel()

	formatter := NewTableFormatter(NewStyles(false), false, 90)
	rows := []TableRow{{File: strings.Repeat("x", 60)}}

	width := formatter.calculateFileWidth(rows)
	assert.Equal(t, 90, calculateTotalWidth(width))

	formatter = NewTableFormatter(NewStyles(false), false, 10)
	assert.Equal(t, minFileWidth, formatter.calculateFileWidth(rows))
}
