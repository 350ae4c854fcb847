package reporter

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdprefix/pkg/analysis"
	"github.com/yaklabco/mdprefix/pkg/blockprefix"
)

func TestSummaryRenderer_EmptyReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewSummaryRenderer(Options{Writer: &buf, Color: "never"})

	err := renderer.Render(context.Background(), &analysis.Report{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No files to scan.")
}

func TestSummaryRenderer_NoMarkers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewSummaryRenderer(Options{Writer: &buf, Color: "never"})

	err := renderer.Render(context.Background(), &analysis.Report{
		Totals: analysis.Totals{Files: 1, Lines: 3},
	})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "No container markers found")
	assert.Contains(t, output, "Total: 0 markers on 0 of 3 lines in 1 file")
	assert.NotContains(t, output, "Markers Summary")
}

func TestSummaryRenderer_Tables(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderer := NewSummaryRenderer(Options{Writer: &buf, Color: "never"})

	report := &analysis.Report{
		Verified: true,
		ByKind: []analysis.KindAnalysis{
			{Kind: blockprefix.KindBullet, Count: 12, Files: 2},
			{Kind: blockprefix.KindBlockquote, Count: 3, Files: 1},
		},
		ByFile: []analysis.FileAnalysis{
			{Path: "docs/guide.md", StructuralLines: 10, Markers: 13, MaxDepth: 1},
			{Path: "README.md", StructuralLines: 2, Markers: 2, Mismatches: 1},
		},
		Totals: analysis.Totals{Files: 2, Lines: 40, StructuralLines: 12, Markers: 15, MaxDepth: 1, Mismatches: 1},
	}

	err := renderer.Render(context.Background(), report)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Markers Summary")
	assert.Contains(t, output, "Files Summary")
	assert.Contains(t, output, padRight("bullet", kindColWidth)+" "+padLeft("12", numColWidth))
	assert.Contains(t, output, padRight("docs/guide.md", fileColWidth)+" "+padLeft("10", numColWidth))
	assert.Contains(t, output, "Total: 15 markers on 12 of 40 lines in 2 files, 1 mismatch")
}

func TestPadding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "  ab", padLeft("ab", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 4))
	assert.Equal(t, "abcdef", padLeft("abcdef", 4))
}
