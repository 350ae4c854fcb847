package linescan

// SkipSpaces consumes every space and tab under the cursor without counting
// columns. Any columns left over from a partially consumed tab are dropped.
func (s *Scanner) SkipSpaces() {
	s.pending = 0
	for s.pos < len(s.line) && isSpaceOrTab(s.line[s.pos]) {
		s.pos++
	}
}

// ScanSpace consumes up to n columns of whitespace and returns the number of
// columns consumed.
//
// Columns left over from a tab split by an earlier call are used first. A
// space is one column. A tab runs to the next tab stop; when fewer columns
// are requested than the tab covers, the tab byte is consumed and the rest of
// its columns stay pending for the next call. Scanning stops at the first
// byte that is neither.
func (s *Scanner) ScanSpace(n int) int {
	if n <= 0 {
		return 0
	}
	want := n

	carried := min(s.pending, n)
	s.pending -= carried
	n -= carried

	for n > 0 && s.pos < len(s.line) {
		switch s.line[s.pos] {
		case ' ':
			s.pos++
			n--
		case '\t':
			width := TabStop - (s.pos-s.tabStart)%TabStop
			used := min(n, width)
			n -= used
			s.pending = width - used
			s.pos++
			s.tabStart = s.pos
		default:
			return want - n
		}
	}

	return want - n
}

// Indent reports the columns of whitespace under the cursor, including
// pending tab columns, without consuming anything.
func (s *Scanner) Indent() int {
	ahead := *s
	cols := 0
	for {
		got := ahead.ScanSpace(TabStop)
		cols += got
		if got < TabStop {
			return cols
		}
	}
}

func isSpaceOrTab(b byte) bool {
	return b == ' ' || b == '\t'
}
