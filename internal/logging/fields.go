// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldSource     = "source"

	// Configuration fields.
	FieldFlavor    = "flavor"
	FieldJobs      = "jobs"
	FieldVerify    = "verify"
	FieldTaskLists = "task_lists"

	// Per-file fields.
	FieldLines      = "lines"
	FieldStructural = "structural"
	FieldDigest     = "digest"
	FieldMismatches = "mismatches"
	FieldDuration   = "duration"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesFailed     = "files_failed"
	FieldMismatchesTotal = "mismatches_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
