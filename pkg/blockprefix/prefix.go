// Package blockprefix drives the line-start scanner over whole lines and
// files. For every line it records the container markers a block parser
// would see (blockquotes, list items, task checkboxes) in the order they
// appear, together with their byte offsets and tab-expanded columns.
//
// The policy is deliberately line-local: no indentation context is carried
// from one line to the next, so lazy continuation lines and list items
// nested by indentation alone are reported as plain text.
package blockprefix

import (
	"strconv"
	"strings"

	"github.com/yaklabco/mdprefix/pkg/linescan"
)

// Kind identifies the kind of a recognized marker.
type Kind string

// Marker kinds.
const (
	KindBlockquote Kind = "blockquote"
	KindBullet     Kind = "bullet"
	KindOrdered    Kind = "ordered"
	KindTask       Kind = "task"
)

// Marker is one structural marker found at the start of a line.
type Marker struct {
	Kind Kind

	// Char is '>' for blockquotes, the bullet byte, the ordered terminator
	// ('.' or ')'), or 'x'/' ' for tasks.
	Char byte

	// Ordinal is the number of an ordered list marker.
	Ordinal uint64

	// Checked is set for checked task boxes.
	Checked bool

	// Offset is the byte offset of the marker's first byte within the line.
	Offset int

	// Column is the 0-based tab-expanded column of the marker.
	Column int
}

// String renders the marker the way it is written in Markdown.
func (m Marker) String() string {
	switch m.Kind {
	case KindBlockquote:
		return ">"
	case KindBullet:
		return string(m.Char)
	case KindOrdered:
		return strconv.FormatUint(m.Ordinal, 10) + string(m.Char)
	case KindTask:
		if m.Checked {
			return "[x]"
		}
		return "[ ]"
	default:
		return "?"
	}
}

// LinePrefix is the analysis of one line.
type LinePrefix struct {
	// Line is the 1-based line number, or 0 when analyzed in isolation.
	Line int

	// Indent is the number of columns of leading whitespace.
	Indent int

	// Markers lists the recognized markers from left to right.
	Markers []Marker

	// ContentOffset is the byte offset where content begins after the
	// last marker (0 when there are no markers).
	ContentOffset int

	// ContentBlank is set when only whitespace follows the last marker.
	ContentBlank bool

	// Blank is set for lines containing only spaces and tabs.
	Blank bool
}

// Structural reports whether any marker was recognized.
func (p LinePrefix) Structural() bool {
	return len(p.Markers) > 0
}

// Depth returns the number of blockquote markers on the line.
func (p LinePrefix) Depth() int {
	depth := 0
	for _, marker := range p.Markers {
		if marker.Kind == KindBlockquote {
			depth++
		}
	}
	return depth
}

// Has reports whether the line carries a marker of the given kind.
func (p LinePrefix) Has(kind Kind) bool {
	for _, marker := range p.Markers {
		if marker.Kind == kind {
			return true
		}
	}
	return false
}

// Notation renders the markers space-separated, e.g. "> > 1. [x]".
func (p LinePrefix) Notation() string {
	parts := make([]string, len(p.Markers))
	for i, marker := range p.Markers {
		parts[i] = marker.String()
	}
	return strings.Join(parts, " ")
}

// Options controls the per-line policy.
type Options struct {
	// TaskLists enables task checkbox recognition after list markers.
	TaskLists bool

	// MaxMarkers bounds the number of markers recorded per line.
	// Zero or negative means DefaultMaxMarkers.
	MaxMarkers int
}

// DefaultMaxMarkers is the marker limit used when Options.MaxMarkers is unset.
const DefaultMaxMarkers = 32

// DefaultOptions returns the GitHub Flavored Markdown policy.
func DefaultOptions() Options {
	return Options{
		TaskLists:  true,
		MaxMarkers: DefaultMaxMarkers,
	}
}

func (o Options) maxMarkers() int {
	if o.MaxMarkers <= 0 {
		return DefaultMaxMarkers
	}
	return o.MaxMarkers
}

// Analyze recognizes the container markers at the start of line.
//
// Blockquote and list markers are tried repeatedly, blockquote first, until
// neither matches. A task checkbox is tried only directly after a list marker.
// A marker more than MaxIndent columns past the end of the previous one
// starts indented code, and a bullet that begins a thematic break ("* * *")
// is not a list item; either ends the scan.
func Analyze(line []byte, opts Options) LinePrefix {
	scanner := linescan.New(line)
	prefix := LinePrefix{
		Indent: scanner.Indent(),
		Blank:  isBlank(line),
	}

	limit := opts.maxMarkers()
	for len(prefix.Markers) < limit {
		start := scanner

		if scanner.ScanBlockquoteMarker() {
			marker := newMarker(line, start, KindBlockquote, '>')
			if indentedCode(line, start, marker) {
				scanner = start
				break
			}
			prefix.Markers = append(prefix.Markers, marker)
			continue
		}

		listMarker, ok := scanner.ScanListMarker()
		if !ok {
			break
		}

		kind := KindBullet
		if listMarker.Ordered() {
			kind = KindOrdered
		}
		marker := newMarker(line, start, kind, listMarker.Char)
		if indentedCode(line, start, marker) ||
			thematicBreak(line, max(marker.Offset, scanner.HRuleFloor())) {
			scanner = start
			break
		}
		marker.Ordinal = listMarker.Ordinal
		prefix.Markers = append(prefix.Markers, marker)

		if !opts.TaskLists || len(prefix.Markers) >= limit {
			continue
		}

		taskStart := scanner
		if checked, ok := scanner.ScanTaskMarker(); ok {
			char := byte(' ')
			if checked {
				char = 'x'
			}
			task := newMarker(line, taskStart, KindTask, char)
			if indentedCode(line, taskStart, task) {
				scanner = taskStart
				continue
			}
			task.Checked = checked
			prefix.Markers = append(prefix.Markers, task)
		}
	}

	if prefix.Structural() {
		prefix.ContentOffset = scanner.Offset()
		rest := scanner
		rest.SkipSpaces()
		prefix.ContentBlank = rest.AtLineEnd()
	}

	return prefix
}

// indentedCode reports whether marker sits more than MaxIndent columns past
// the column where the attempt at start began. Columns of a tab still
// pending at start count from where that tab's unused part begins.
func indentedCode(line []byte, start linescan.Scanner, marker Marker) bool {
	from := ColumnAt(line, start.Offset()) - start.Pending()
	return marker.Column-from > linescan.MaxIndent
}

// thematicBreak reports whether the rest of line from offset is a thematic
// break: three or more of the same '-', '*' or '_', with only spaces and
// tabs between them.
func thematicBreak(line []byte, offset int) bool {
	if offset >= len(line) {
		return false
	}
	char := line[offset]
	if char != '-' && char != '*' && char != '_' {
		return false
	}

	count := 0
	for _, b := range line[offset:] {
		switch b {
		case char:
			count++
		case ' ', '\t':
		case '\r', '\n':
			return count >= 3
		default:
			return false
		}
	}
	return count >= 3
}

// newMarker places a marker whose attempt started at start. The marker byte
// follows at most MaxIndent columns of whitespace.
func newMarker(line []byte, start linescan.Scanner, kind Kind, char byte) Marker {
	start.ScanSpace(linescan.MaxIndent)
	offset := start.Offset()
	return Marker{
		Kind:   kind,
		Char:   char,
		Offset: offset,
		Column: ColumnAt(line, offset),
	}
}

// ColumnAt returns the 0-based tab-expanded column of the byte at offset.
func ColumnAt(line []byte, offset int) int {
	offset = min(offset, len(line))
	col := 0
	for _, b := range line[:offset] {
		if b == '\t' {
			col += linescan.TabStop - col%linescan.TabStop
		} else {
			col++
		}
	}
	return col
}

func isBlank(line []byte) bool {
	scanner := linescan.New(line)
	scanner.SkipSpaces()
	return scanner.AtLineEnd()
}
