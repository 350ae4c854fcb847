package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/mdprefix/internal/ui/pretty"
	"github.com/yaklabco/mdprefix/pkg/analysis"
)

// Table layout constants for summary output.
const (
	tableWidth        = 90 // Width of table separators (same for both tables).
	kindColWidth      = 30 // Width of the marker kind column.
	fileColWidth      = 50 // Width of the file path column.
	numColWidth       = 9  // Width of numeric columns.
	maxFilePathLength = 48 // Maximum characters for file path before truncation.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Files == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No files to scan."))
		return nil
	}

	if report.Totals.Markers == 0 {
		fmt.Fprintln(r.out, r.styles.Dim.Render("No container markers found"))
	} else {
		r.renderKindTable(report.ByKind)
		fmt.Fprintln(r.out)
		r.renderFileTable(report.ByFile)
	}

	fmt.Fprintln(r.out)
	r.renderTotals(report)

	return nil
}

func (r *SummaryRenderer) separator() {
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))
}

func (r *SummaryRenderer) renderKindTable(kinds []analysis.KindAnalysis) {
	if len(kinds) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Markers Summary"))
	r.separator()

	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("Kind", kindColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Files", numColWidth)),
	)
	r.separator()

	for _, kind := range kinds {
		fmt.Fprintf(r.out, "%s %s %s\n",
			padRight(string(kind.Kind), kindColWidth),
			padLeft(strconv.Itoa(kind.Count), numColWidth),
			padLeft(strconv.Itoa(kind.Files), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	r.separator()

	fmt.Fprintf(r.out, "%s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Struct", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Markers", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Depth", numColWidth)),
	)
	r.separator()

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		// Pad first, then style
		paddedPath := padRight(path, fileColWidth)
		if file.Error != "" || file.Mismatches > 0 {
			paddedPath = r.styles.TableErrorRow.Render(paddedPath)
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			paddedPath,
			padLeft(strconv.Itoa(file.StructuralLines), numColWidth),
			padLeft(strconv.Itoa(file.Markers), numColWidth),
			padLeft(strconv.Itoa(file.MaxDepth), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderTotals(report *analysis.Report) {
	totals := report.Totals

	fileWord := "files"
	if totals.Files == 1 {
		fileWord = "file"
	}
	line := fmt.Sprintf("%d markers on %d of %d lines in %d %s",
		totals.Markers, totals.StructuralLines, totals.Lines, totals.Files, fileWord)

	if totals.FilesErrored > 0 {
		line += ", " + r.styles.Failure.Render(fmt.Sprintf("%d failed", totals.FilesErrored))
	}
	if report.Verified {
		if totals.Mismatches > 0 {
			word := "mismatches"
			if totals.Mismatches == 1 {
				word = "mismatch"
			}
			line += ", " + r.styles.Mismatch.Render(fmt.Sprintf("%d %s", totals.Mismatches, word))
		} else {
			line += ", " + r.styles.Success.Render("verified")
		}
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+line)
}
