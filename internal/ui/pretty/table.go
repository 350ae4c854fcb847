package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdprefix/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	numberWidth      = 8
	minFileWidth     = 20
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	errorCell        = "error"
	notVerifiedCell  = "-"
)

// tableColumns are the numeric columns after FILE.
//
//nolint:gochecknoglobals // Read-only header list.
var tableColumns = []string{"LINES", "STRUCT", "QUOTES", "BULLETS", "ORDERED", "TASKS", "DEPTH", "MISMATCH"}

// TableRow represents a single file in the table.
type TableRow struct {
	File    string
	Cells   []string
	Failed  bool
	Differs bool
}

// TableFormatter formats per-file scan results as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// RowFor converts one file outcome to a table row.
func RowFor(path string, file runner.FileOutcome, verified bool) TableRow {
	if file.Error != nil {
		cells := make([]string, len(tableColumns))
		for i := range cells {
			cells[i] = notVerifiedCell
		}
		cells[0] = errorCell
		return TableRow{File: path, Cells: cells, Failed: true}
	}

	summary := file.Summary
	mismatch := notVerifiedCell
	if verified {
		mismatch = strconv.Itoa(len(file.Mismatches()))
	}

	return TableRow{
		File: path,
		Cells: []string{
			strconv.Itoa(summary.Lines),
			strconv.Itoa(summary.StructuralLines),
			strconv.Itoa(summary.Blockquotes),
			strconv.Itoa(summary.Bullets),
			strconv.Itoa(summary.Ordered),
			strconv.Itoa(summary.Tasks()),
			strconv.Itoa(summary.MaxDepth),
			mismatch,
		},
		Differs: len(file.Mismatches()) > 0,
	}
}

// FormatTable formats runner results as a styled table.
// displayPath maps a file path to the string shown in the FILE column.
func (t *TableFormatter) FormatTable(result *runner.Result, displayPath func(string) string) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(result.Files))
	for _, file := range result.Files {
		path := file.Path
		if displayPath != nil {
			path = displayPath(path)
		}
		rows = append(rows, RowFor(path, file, result.Verified))
	}

	fileWidth := t.calculateFileWidth(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(fileWidth))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(fileWidth, heavySeparator))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, fileWidth))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(fileWidth, lightSeparator))
	builder.WriteString("\n")
	builder.WriteString(t.formatTotals(result, fileWidth))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(fileWidth, heavySeparator))
	builder.WriteString("\n")

	builder.WriteString(t.formatLegend(result.Verified))
	builder.WriteString("\n")

	return builder.String()
}

// calculateFileWidth sizes the FILE column to its content, then shrinks it
// to fit the terminal.
func (t *TableFormatter) calculateFileWidth(rows []TableRow) int {
	width := minFileWidth
	for _, row := range rows {
		width = max(width, len(row.File))
	}

	if total := calculateTotalWidth(width); total > t.termWidth {
		width = max(minFileWidth, width-(total-t.termWidth))
	}
	return width
}

// calculateTotalWidth calculates the total table width from the FILE width.
func calculateTotalWidth(fileWidth int) int {
	return 1 + fileWidth + len(tableColumns)*(numberWidth+tablePadding)
}

func (t *TableFormatter) formatHeader(fileWidth int) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(" %-*s", fileWidth, "FILE"))
	for _, column := range tableColumns {
		builder.WriteString(fmt.Sprintf("%*s", numberWidth+tablePadding, column))
	}
	return t.styles.TableHeader.Render(builder.String())
}

func (t *TableFormatter) formatSeparator(fileWidth int, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, calculateTotalWidth(fileWidth)))
}

func (t *TableFormatter) formatCells(file string, cells []string, fileWidth int) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf(" %-*s", fileWidth, truncateFilePath(file, fileWidth)))
	for _, cell := range cells {
		builder.WriteString(fmt.Sprintf("%*s", numberWidth+tablePadding, cell))
	}
	return builder.String()
}

// formatRow formats a single table row; failed and mismatching rows are highlighted.
func (t *TableFormatter) formatRow(row TableRow, fileWidth int) string {
	content := t.formatCells(row.File, row.Cells, fileWidth)
	if row.Failed || row.Differs {
		return t.styles.TableErrorRow.Render(content)
	}
	return content
}

func (t *TableFormatter) formatTotals(result *runner.Result, fileWidth int) string {
	stats := result.Stats
	totals := stats.Totals

	mismatch := notVerifiedCell
	if result.Verified {
		mismatch = strconv.Itoa(stats.MismatchesTotal)
	}

	label := fmt.Sprintf("TOTAL (%d %s)", len(result.Files), plural(len(result.Files), wordFile, wordFiles))
	return t.styles.Bold.Render(t.formatCells(label, []string{
		strconv.Itoa(totals.Lines),
		strconv.Itoa(totals.StructuralLines),
		strconv.Itoa(totals.Blockquotes),
		strconv.Itoa(totals.Bullets),
		strconv.Itoa(totals.Ordered),
		strconv.Itoa(totals.Tasks()),
		strconv.Itoa(totals.MaxDepth),
		mismatch,
	}, fileWidth))
}

// formatLegend explains the columns and row highlighting.
func (t *TableFormatter) formatLegend(verified bool) string {
	legend := " Legend: STRUCT = lines with markers | DEPTH = max blockquote nesting"
	if !verified {
		legend += " | MISMATCH needs --verify"
	} else if t.colorEnabled {
		legend += " | " + t.styles.TableErrorRow.Render("red") + " = mismatch or error"
	}
	return t.styles.TableLegend.Render(legend)
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
