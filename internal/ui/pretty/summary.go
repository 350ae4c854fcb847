package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdprefix/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(count int, singular, many string) string {
	if count == 1 {
		return singular
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "42 structural lines in 3 files (120 lines), 2 mismatches in 1 file".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, verified bool) string {
	totals := stats.Totals

	parts := []string{fmt.Sprintf("%d structural %s in %d %s",
		totals.StructuralLines, plural(totals.StructuralLines, "line", "lines"),
		stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles),
	) + s.Dim.Render(fmt.Sprintf(" (%d lines)", totals.Lines))}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed",
			stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles))))
	}

	if verified {
		if stats.MismatchesTotal == 0 {
			parts = append(parts, s.Success.Render("verified"))
		} else {
			parts = append(parts, s.Mismatch.Render(fmt.Sprintf("%d %s in %d %s",
				stats.MismatchesTotal, plural(stats.MismatchesTotal, "mismatch", "mismatches"),
				stats.FilesWithMismatches, plural(stats.FilesWithMismatches, wordFile, wordFiles))))
		}
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, verified bool) string {
	var builder strings.Builder
	totals := stats.Totals

	row := func(label string, value string) {
		builder.WriteString(fmt.Sprintf("  %-19s%s\n", label+":", value))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files scanned", s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)))
	if stats.FilesErrored > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
	}
	row("Lines", s.SummaryValue.Render(strconv.Itoa(totals.Lines)))
	row("Blank lines", s.SummaryValue.Render(strconv.Itoa(totals.BlankLines)))
	row("Structural lines", s.SummaryValue.Render(strconv.Itoa(totals.StructuralLines)))

	builder.WriteString("\n")

	row("Blockquotes", s.Blockquote.Render(strconv.Itoa(totals.Blockquotes)))
	row("Bullet items", s.Bullet.Render(strconv.Itoa(totals.Bullets)))
	row("Ordered items", s.Ordered.Render(strconv.Itoa(totals.Ordered)))
	if totals.Tasks() > 0 {
		row("Tasks", fmt.Sprintf("%s done, %s open",
			s.TaskChecked.Render(strconv.Itoa(totals.TasksChecked)),
			s.TaskUnchecked.Render(strconv.Itoa(totals.TasksUnchecked))))
	}
	row("Max depth", s.SummaryValue.Render(strconv.Itoa(totals.MaxDepth)))

	if verified {
		builder.WriteString("\n")
		row("Mismatches", s.SummaryValue.Render(strconv.Itoa(stats.MismatchesTotal)))
		builder.WriteString("\n")
		if stats.MismatchesTotal > 0 {
			builder.WriteString(s.Failure.Render("Verification failed"))
		} else {
			builder.WriteString(s.Success.Render("Verification passed"))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
