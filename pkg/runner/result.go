package runner

import (
	"github.com/yaklabco/mdprefix/pkg/blockprefix"
	"github.com/yaklabco/mdprefix/pkg/parser/goldmark"
)

// FileOutcome is the scan of one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string `json:"path"`

	// Digest is the xxhash64 of the file content in hex.
	Digest string `json:"digest,omitempty"`

	// Prefixes holds one entry per line.
	Prefixes []blockprefix.LinePrefix `json:"-"`

	// Summary aggregates Prefixes.
	Summary blockprefix.Summary `json:"summary"`

	// Verification is set when the run verified against goldmark.
	Verification *goldmark.Comparison `json:"verification,omitempty"`

	// Error is set if the file could not be processed.
	Error error `json:"-"`
}

// Mismatches returns the verification mismatches, if any.
func (o FileOutcome) Mismatches() []goldmark.Mismatch {
	if o.Verification == nil {
		return nil
	}
	return o.Verification.Mismatches
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int `json:"filesDiscovered"`

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int `json:"filesProcessed"`

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int `json:"filesErrored"`

	// FilesWithMismatches counts files whose verification failed.
	FilesWithMismatches int `json:"filesWithMismatches"`

	// MismatchesTotal is the number of verification mismatches.
	MismatchesTotal int `json:"mismatchesTotal"`

	// Totals sums the per-file summaries.
	Totals blockprefix.Summary `json:"totals"`
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Verified is set when files were checked against goldmark.
	Verified bool
}

// HasMismatches reports whether verification disagreed on any file.
func (r *Result) HasMismatches() bool {
	if r == nil {
		return false
	}
	return r.Stats.MismatchesTotal > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Totals.Add(outcome.Summary)

	if mismatches := len(outcome.Mismatches()); mismatches > 0 {
		r.Stats.FilesWithMismatches++
		r.Stats.MismatchesTotal += mismatches
	}
}
