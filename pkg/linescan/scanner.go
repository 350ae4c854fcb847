// Package linescan recognizes the block markers that may open a Markdown line.
//
// A Scanner walks the leading bytes of a single line and answers questions a
// block parser asks before it commits to an interpretation: is there a
// blockquote marker, a bullet or ordered list marker, a task-list checkbox,
// and how many columns of indentation come first. Columns are virtual: a tab
// advances to the next multiple of four.
//
// Every recognizer is speculative. When it does not match, the scanner is
// left exactly as it was, so callers can chain recognizers in whatever order
// their grammar prefers.
package linescan

import "fmt"

const (
	// TabStop is the column width of a tab stop.
	TabStop = 4

	// MaxIndent is the number of columns of indentation permitted before a
	// block marker. Four or more columns start an indented code block instead.
	MaxIndent = 3

	// MaxOrdinalDigits is the longest digit run accepted in an ordered list
	// marker.
	MaxOrdinalDigits = 9
)

// Scanner is a cursor over the bytes of one line.
//
// The zero value scans an empty line. Scanner is a small value type: copying
// it is how speculative attempts are undone, and the copy shares the
// underlying bytes. A Scanner must not be used from more than one goroutine.
type Scanner struct {
	line []byte

	// pos is the byte offset of the next byte to consume.
	pos int

	// tabStart is the byte offset the next tab's width is measured from.
	tabStart int

	// pending holds columns of a tab that were consumed by pos but not yet
	// handed out by ScanSpace. Always less than TabStop.
	pending int

	// hruleFloor is carried for thematic-break scanning done by callers.
	hruleFloor int
}

// State is a snapshot of the mutable parts of a Scanner.
type State struct {
	Offset     int
	Pending    int
	TabOrigin  int
	HRuleFloor int
}

// New returns a Scanner positioned at the first byte of line.
// The slice is borrowed; the Scanner never modifies or retains a copy of it.
func New(line []byte) Scanner {
	return Scanner{line: line}
}

// State returns the current cursor state.
func (s *Scanner) State() State {
	return State{
		Offset:     s.pos,
		Pending:    s.pending,
		TabOrigin:  s.tabStart,
		HRuleFloor: s.hruleFloor,
	}
}

// Offset returns the byte offset of the cursor within the line.
func (s *Scanner) Offset() int {
	return s.pos
}

// Pending returns the columns of a partially consumed tab that are still
// available to ScanSpace.
func (s *Scanner) Pending() int {
	return s.pending
}

// HRuleFloor returns the minimum offset recorded for thematic-break scanning.
func (s *Scanner) HRuleFloor() int {
	return s.hruleFloor
}

// Remaining returns the unconsumed bytes of the line.
func (s *Scanner) Remaining() []byte {
	return s.line[s.pos:]
}

// HasMore reports whether any bytes remain.
func (s *Scanner) HasMore() bool {
	return s.pos < len(s.line)
}

// Peek returns the byte under the cursor without consuming it.
// The boolean is false at the end of the line.
func (s *Scanner) Peek() (byte, bool) {
	if s.pos >= len(s.line) {
		return 0, false
	}
	return s.line[s.pos], true
}

// Next consumes and returns the byte under the cursor.
// It panics if no bytes remain; check HasMore or AtLineEnd first.
func (s *Scanner) Next() byte {
	if s.pos >= len(s.line) {
		panic(fmt.Sprintf("linescan: Next at offset %d past end of %d-byte line", s.pos, len(s.line)))
	}
	b := s.line[s.pos]
	s.pos++
	return b
}

// AtLineEnd reports whether the cursor sits at the end of the line's
// content: no bytes remain, or the next byte is a carriage return or newline.
func (s *Scanner) AtLineEnd() bool {
	b, ok := s.Peek()
	return !ok || b == '\r' || b == '\n'
}

// ScanByte consumes the next byte if it equals b.
func (s *Scanner) ScanByte(b byte) bool {
	if next, ok := s.Peek(); ok && next == b {
		s.pos++
		return true
	}
	return false
}

// Try runs attempt against s. If attempt reports false, s is restored to
// the state it had before the call.
func (s *Scanner) Try(attempt func(*Scanner) bool) bool {
	saved := *s
	if attempt(s) {
		return true
	}
	*s = saved
	return false
}
