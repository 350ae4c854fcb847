// Package mdast provides the line model that feeds the line-start scanner.
// A FileSnapshot holds a file's raw bytes and an index of where each line
// begins and ends, so callers can hand the scanner one line at a time
// without copying.
package mdast

// FileSnapshot is an immutable view of a Markdown file's content and lines.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// HasNewline reports whether the line is terminated by LF or CRLF.
func (l LineInfo) HasNewline() bool {
	return l.NewlineStart < l.EndOffset
}

// NewFileSnapshot creates a FileSnapshot and indexes its lines.
// The content slice is retained, not copied.
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}
