package linescan

// ListMarker describes a recognized list item marker.
type ListMarker struct {
	// Char is the bullet byte ('-', '+', '*') or, for ordered lists, the
	// terminator byte ('.' or ')').
	Char byte

	// Ordinal is the number written before an ordered marker's terminator.
	// It is zero for bullets.
	Ordinal uint64
}

// Ordered reports whether the marker belongs to an ordered list.
func (m ListMarker) Ordered() bool {
	return m.Char == '.' || m.Char == ')'
}

// ScanBlockquoteMarker consumes a blockquote marker: up to three columns of
// indentation, '>', and one optional column of whitespace.
func (s *Scanner) ScanBlockquoteMarker() bool {
	return s.Try(func(s *Scanner) bool {
		s.scanIndent()
		if !s.ScanByte('>') {
			return false
		}
		s.ScanSpace(1)
		return true
	})
}

// ScanListMarker consumes a bullet ("-", "+", "*") or ordered ("1.", "7)")
// list marker after up to three columns of indentation. The marker must be
// followed by one column of whitespace or the end of the line.
func (s *Scanner) ScanListMarker() (ListMarker, bool) {
	var marker ListMarker

	ok := s.Try(func(s *Scanner) bool {
		s.scanIndent()

		b, ok := s.Peek()
		switch {
		case !ok:
			return false
		case b == '-' || b == '+' || b == '*':
			s.pos++
			marker = ListMarker{Char: b}
		case isDigit(b):
			ordinal, term, ok := s.scanOrdinal()
			if !ok {
				return false
			}
			marker = ListMarker{Char: term, Ordinal: ordinal}
		default:
			return false
		}

		return s.scanMarkerGap()
	})

	if !ok {
		return ListMarker{}, false
	}
	return marker, true
}

// ScanTaskMarker consumes a task-list checkbox ("[ ]", "[x]" or "[X]") after
// up to three columns of indentation. The checkbox must be followed by one
// column of whitespace or the end of the line. The first result reports
// whether the box is checked.
func (s *Scanner) ScanTaskMarker() (bool, bool) {
	var checked bool

	ok := s.Try(func(s *Scanner) bool {
		s.scanIndent()
		if !s.ScanByte('[') {
			return false
		}

		switch b, _ := s.Peek(); b {
		case ' ':
			checked = false
		case 'x', 'X':
			checked = true
		default:
			return false
		}
		s.pos++

		return s.ScanByte(']') && s.scanMarkerGap()
	})

	return checked && ok, ok
}

// scanIndent consumes up to MaxIndent columns of indentation. A tab that
// reaches past the third column is consumed with its remaining columns left
// pending; the marker byte may follow it directly.
func (s *Scanner) scanIndent() {
	s.ScanSpace(MaxIndent)
}

// scanMarkerGap consumes the single column of whitespace that must follow a
// list or task marker, or accepts the end of the line in its place.
func (s *Scanner) scanMarkerGap() bool {
	return s.ScanSpace(1) == 1 || s.AtLineEnd()
}

// scanOrdinal consumes a run of digits and its '.' or ')' terminator.
func (s *Scanner) scanOrdinal() (uint64, byte, bool) {
	var ordinal uint64

	digits := 0
	for s.pos < len(s.line) && isDigit(s.line[s.pos]) {
		if digits == MaxOrdinalDigits {
			return 0, 0, false
		}
		ordinal = ordinal*10 + uint64(s.line[s.pos]-'0')
		digits++
		s.pos++
	}

	term, ok := s.Peek()
	if !ok || (term != '.' && term != ')') {
		return 0, 0, false
	}
	s.pos++

	return ordinal, term, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
