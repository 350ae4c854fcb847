package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdprefix/internal/ui/pretty"
	"github.com/yaklabco/mdprefix/pkg/runner"
)

// TextReporter prints one line per structural line: "path:line  > > - [x]".
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to scan."))
		}
		return 0, nil
	}

	var mismatches int
	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return mismatches, fmt.Errorf("report: %w", err)
		}
		mismatches += r.reportFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, result.Verified))
	}

	return mismatches, nil
}

// reportFile writes one file's lines and mismatches and returns the mismatch count.
func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := r.opts.displayPath(file.Path)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Failure.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return 0
	}

	for _, prefix := range file.Prefixes {
		if !prefix.Structural() && !r.opts.ShowBlank {
			continue
		}
		fmt.Fprint(r.bw, r.styles.FormatLine(path, prefix, ""))
	}

	mismatches := file.Mismatches()
	for _, mismatch := range mismatches {
		fmt.Fprint(r.bw, r.styles.FormatMismatch(path, mismatch))
	}
	return len(mismatches)
}
