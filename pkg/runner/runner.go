package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/yaklabco/mdprefix/internal/logging"
	"github.com/yaklabco/mdprefix/pkg/blockprefix"
	"github.com/yaklabco/mdprefix/pkg/mdast"
	"github.com/yaklabco/mdprefix/pkg/parser/goldmark"
)

// Runner scans files with a worker pool.
type Runner struct {
	// Verifier parses files with goldmark when Options.Verify is set.
	// Nil means a parser for Options.Flavor is created per run.
	Verifier *goldmark.Parser
}

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers files under opts.Paths and scans them concurrently.
// It returns outcomes in path order and aggregate stats. On cancellation
// the partial result is returned together with the context error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files:    make([]FileOutcome, 0, len(files)),
		Verified: opts.Verify,
	}
	result.Stats.FilesDiscovered = len(files)
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	verifier := r.Verifier
	if opts.Verify && verifier == nil {
		verifier = goldmark.New(opts.Flavor)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))
	logger.Debug("starting workers", logging.FieldJobs, jobs, logging.FieldVerify, opts.Verify)

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh, opts, verifier)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers finish out of order; collect by path, then emit in discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldMismatchesTotal, result.Stats.MismatchesTotal,
	)

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts Options,
	verifier *goldmark.Parser,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := ProcessFile(ctx, path, opts, verifier)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ProcessFile reads and scans one file. A nil verifier skips verification.
func ProcessFile(ctx context.Context, path string, opts Options, verifier *goldmark.Parser) FileOutcome {
	ctx = logging.WithFile(ctx, path)
	logger := logging.FromContext(ctx)
	started := time.Now()

	outcome := FileOutcome{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		logger.Warn("read failed", logging.FieldError, err)
		return outcome
	}

	outcome, err = ProcessContent(ctx, path, content, opts, verifier)
	if err != nil {
		logger.Warn("scan failed", logging.FieldError, err)
		return outcome
	}

	logger.Debug("scanned file",
		logging.FieldLines, outcome.Summary.Lines,
		logging.FieldStructural, outcome.Summary.StructuralLines,
		logging.FieldDigest, outcome.Digest,
		logging.FieldMismatches, len(outcome.Mismatches()),
		logging.FieldDuration, time.Since(started),
	)
	return outcome
}

// ProcessContent scans content already in memory. The returned error is
// also recorded in the outcome.
func ProcessContent(
	ctx context.Context,
	path string,
	content []byte,
	opts Options,
	verifier *goldmark.Parser,
) (FileOutcome, error) {
	outcome := FileOutcome{
		Path:   path,
		Digest: Digest(content),
	}

	snap := mdast.NewFileSnapshot(path, content)

	prefixes, err := blockprefix.AnalyzeSnapshot(ctx, snap, opts.Analyze)
	if err != nil {
		outcome.Error = fmt.Errorf("analyze %s: %w", path, err)
		return outcome, outcome.Error
	}
	outcome.Prefixes = prefixes
	outcome.Summary = blockprefix.Summarize(prefixes)

	if verifier != nil {
		outline, err := verifier.Outline(ctx, snap)
		if err != nil {
			outcome.Error = fmt.Errorf("verify %s: %w", path, err)
			return outcome, outcome.Error
		}
		comparison := goldmark.Compare(prefixes, outline)
		comparison.Quote(snap)
		outcome.Verification = &comparison
	}

	return outcome, nil
}

// Digest returns the xxhash64 of content as 16 hex digits.
func Digest(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
