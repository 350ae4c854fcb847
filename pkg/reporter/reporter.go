// Package reporter renders scan results as text, tables, JSON or summaries.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdprefix/pkg/analysis"
	"github.com/yaklabco/mdprefix/pkg/runner"
)

var _ Reporter = (*reporterFacade)(nil)

// Reporter formats and writes scan results.
type Reporter interface {
	// Report writes output for result and returns the number of
	// verification mismatches.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// Renderer writes an aggregated analysis.Report. Renderers hold no state
// between calls.
type Renderer interface {
	Render(ctx context.Context, report *analysis.Report) error
}

// reporterFacade aggregates a runner.Result and hands it to a Renderer.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Mismatches, nil
}

func newRendererFacade(renderer Renderer, opts Options) *reporterFacade {
	analysisOpts := analysis.DefaultOptions()
	analysisOpts.WorkingDir = opts.WorkingDir
	return &reporterFacade{
		renderer:     renderer,
		analysisOpts: analysisOpts,
	}
}

// New creates a Reporter for opts.Format. JSON and summary output go
// through analysis.Analyze; text and table read the per-line results.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if !opts.Format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}

	if opts.Format.aggregated() {
		var renderer Renderer
		if opts.Format == FormatJSON {
			renderer = NewJSONRenderer(opts)
		} else {
			renderer = NewSummaryRenderer(opts)
		}
		return newRendererFacade(renderer, opts), nil
	}

	if opts.Format == FormatTable {
		return NewTableReporter(opts), nil
	}
	return NewTextReporter(opts), nil
}
