package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdprefix/internal/ui/pretty"
	"github.com/yaklabco/mdprefix/pkg/blockprefix"
	"github.com/yaklabco/mdprefix/pkg/runner"
)

func sampleStats() runner.Stats {
	return runner.Stats{
		FilesDiscovered: 3,
		FilesProcessed:  3,
		Totals: blockprefix.Summary{
			Lines:           120,
			BlankLines:      30,
			StructuralLines: 42,
			Blockquotes:     10,
			Bullets:         25,
			Ordered:         7,
			TasksChecked:    2,
			TasksUnchecked:  1,
			MaxDepth:        3,
		},
	}
}

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(sampleStats(), false)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files scanned:     3")
	assert.Contains(t, result, "Lines:             120")
	assert.Contains(t, result, "Structural lines:  42")
	assert.Contains(t, result, "Bullet items:      25")
	assert.Contains(t, result, "Tasks:             2 done, 1 open")
	assert.Contains(t, result, "Max depth:         3")
	assert.NotContains(t, result, "Files failed")
	assert.NotContains(t, result, "Verification")
}

func TestFormatSummary_Verified(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := sampleStats()
	assert.Contains(t, styles.FormatSummary(stats, true), "Verification passed")

	stats.MismatchesTotal = 2
	stats.FilesWithMismatches = 1
	result := styles.FormatSummary(stats, true)
	assert.Contains(t, result, "Mismatches:        2")
	assert.Contains(t, result, "Verification failed")
}

func TestFormatSummary_NoTasks(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := sampleStats()
	stats.Totals.TasksChecked = 0
	stats.Totals.TasksUnchecked = 0

	assert.NotContains(t, styles.FormatSummary(stats, false), "Tasks:")
}

func TestFormatSummary_Errors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := sampleStats()
	stats.FilesErrored = 1

	assert.Contains(t, styles.FormatSummary(stats, false), "Files failed:      1")
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name     string
		mutate   func(*runner.Stats)
		verified bool
		want     string
	}{
		{
			name: "plain scan",
			want: "42 structural lines in 3 files (120 lines)\n",
		},
		{
			name:     "verified clean",
			verified: true,
			want:     "42 structural lines in 3 files (120 lines), verified\n",
		},
		{
			name: "single file with mismatch",
			mutate: func(stats *runner.Stats) {
				stats.FilesProcessed = 1
				stats.MismatchesTotal = 1
				stats.FilesWithMismatches = 1
			},
			verified: true,
			want:     "42 structural lines in 1 file (120 lines), 1 mismatch in 1 file\n",
		},
		{
			name: "failed files",
			mutate: func(stats *runner.Stats) {
				stats.FilesErrored = 2
			},
			want: "42 structural lines in 3 files (120 lines), 2 files failed\n",
		},
		{
			name: "empty run",
			mutate: func(stats *runner.Stats) {
				*stats = runner.Stats{}
			},
			want: "0 structural lines in 0 files (0 lines)\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			stats := sampleStats()
			if testCase.mutate != nil {
				testCase.mutate(&stats)
			}
			assert.Equal(t, testCase.want, styles.FormatSummaryOneLine(stats, testCase.verified))
		})
	}
}
