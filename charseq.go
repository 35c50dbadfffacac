package linediff

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Position is a zero-based (line, column) pair. Columns count characters
// (code points), not bytes.
type Position struct {
	Line int
	Col  int
}

func (p Position) isBefore(o Position) bool {
	return p.Line < o.Line || (p.Line == o.Line && p.Col < o.Col)
}

// CharSequence views a contiguous line range [start,end) as a sequence of
// characters, concatenating line contents with \n separators. Each line may
// have its surrounding whitespace excluded from the element stream; the
// per-line metadata needed to translate element offsets back to (line,
// column) positions is retained either way.
type CharSequence struct {
	elements  []rune
	startLine int

	// Per line of the range:
	firstOffsets  []int // element offset of the line's first element
	startCols     []int // original starting column of the line's content
	trimmedWsLens []int // leading whitespace characters excluded by trimming
}

// newCharSequence builds a character sequence over lines[start:end).
// When trimWhitespace is set, each line's leading and trailing whitespace is
// excluded from the element stream but still accounted for in translation.
func newCharSequence(lines []string, start, end int, trimWhitespace bool) *CharSequence {
	s := &CharSequence{startLine: start}
	if start == end {
		// An empty range still anchors translation at the start of the line
		// it points at.
		s.firstOffsets = []int{0}
		s.startCols = []int{0}
		s.trimmedWsLens = []int{0}
		return s
	}
	for i := start; i < end; i++ {
		s.firstOffsets = append(s.firstOffsets, len(s.elements))
		s.startCols = append(s.startCols, 0)
		line := lines[i]
		trimmed := 0
		if trimWhitespace {
			stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
			trimmed = utf8.RuneCountInString(line) - utf8.RuneCountInString(stripped)
			line = strings.TrimRightFunc(stripped, unicode.IsSpace)
		}
		s.trimmedWsLens = append(s.trimmedWsLens, trimmed)
		s.elements = append(s.elements, []rune(line)...)
		if i < end-1 {
			s.elements = append(s.elements, '\n')
		}
	}
	return s
}

func (s *CharSequence) Len() int {
	return len(s.elements)
}

func (s *CharSequence) ElementAt(i int) uint32 {
	return uint32(s.elements[i])
}

func (s *CharSequence) StronglyEqual(i, j int) bool {
	return s.elements[i] == s.elements[j]
}

// Character categories for boundary scoring, in priority order.
type charCategory int

const (
	catWordLower charCategory = iota
	catWordUpper
	catWordDigit
	catEnd
	catOther
	catSeparator
	catSpace
	catLineBreakCR
	catLineBreakLF
)

var categoryScores = [...]int{
	catWordLower:   0,
	catWordUpper:   0,
	catWordDigit:   0,
	catEnd:         10,
	catOther:       2,
	catSeparator:   30,
	catSpace:       3,
	catLineBreakCR: 10,
	catLineBreakLF: 10,
}

func categoryOf(r rune) charCategory {
	switch {
	case r == '\n':
		return catLineBreakLF
	case r == '\r':
		return catLineBreakCR
	case unicode.IsSpace(r):
		return catSpace
	case r >= 'a' && r <= 'z':
		return catWordLower
	case r >= 'A' && r <= 'Z':
		return catWordUpper
	case r >= '0' && r <= '9':
		return catWordDigit
	case r == ',' || r == ';':
		return catSeparator
	default:
		return catOther
	}
}

func (s *CharSequence) categoryAt(i int) charCategory {
	if i < 0 || i >= len(s.elements) {
		return catEnd
	}
	return categoryOf(s.elements[i])
}

// BoundaryScore scores the boundary between offset-1 and offset. Line
// breaks score highest, then separators; a CRLF pair is never split.
func (s *CharSequence) BoundaryScore(offset int) int {
	prev := s.categoryAt(offset - 1)
	next := s.categoryAt(offset)
	if prev == catLineBreakCR && next == catLineBreakLF {
		return 0
	}
	if prev == catLineBreakLF {
		// Prefer placing the boundary just after the line break.
		return 150
	}
	score := 0
	if prev != next {
		score += 10
		if prev == catWordLower && next == catWordUpper {
			score++
		}
	}
	score += categoryScores[prev]
	score += categoryScores[next]
	return score
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// subwordBoundary reports a camelCase boundary between prev and next.
func subwordBoundary(prev, next rune) bool {
	return unicode.IsLower(prev) && unicode.IsUpper(next)
}

// wordCutBefore returns how many characters the start boundary at offset
// cuts off the enclosing word (or camelCase subword): the distance back to
// the word's start, or 0 when the boundary does not split a word.
func (s *CharSequence) wordCutBefore(offset int, subwords bool) int {
	if offset <= 0 || offset >= len(s.elements) {
		return 0
	}
	if !isWordChar(s.elements[offset]) || !isWordChar(s.elements[offset-1]) {
		return 0
	}
	start := offset
	for start > 0 && isWordChar(s.elements[start-1]) {
		if subwords && subwordBoundary(s.elements[start-1], s.elements[start]) {
			break
		}
		start--
	}
	return offset - start
}

// wordCutAfter is the mirror of wordCutBefore for the end boundary at
// offset (exclusive): the distance forward to the word's end.
func (s *CharSequence) wordCutAfter(offset int, subwords bool) int {
	if offset <= 0 || offset >= len(s.elements) {
		return 0
	}
	if !isWordChar(s.elements[offset-1]) || !isWordChar(s.elements[offset]) {
		return 0
	}
	end := offset
	for end < len(s.elements) && isWordChar(s.elements[end]) {
		if subwords && subwordBoundary(s.elements[end-1], s.elements[end]) {
			break
		}
		end++
	}
	return end - offset
}

// translateOffset maps a linear element offset to a (line, column) position.
// The column sums the line's original starting column, the characters
// consumed within the trimmed element stream, and the trimmed leading
// whitespace - the last only when rounding right or when the offset is not
// exactly at the line's start: a boundary sitting at the start of trimmed
// content should not retroactively claim the stripped whitespace.
func (s *CharSequence) translateOffset(offset int, roundLeft bool) Position {
	i := sort.Search(len(s.firstOffsets), func(i int) bool {
		return s.firstOffsets[i] > offset
	}) - 1
	lineOffset := offset - s.firstOffsets[i]
	col := s.startCols[i] + lineOffset
	if !(lineOffset == 0 && roundLeft) {
		col += s.trimmedWsLens[i]
	}
	return Position{Line: s.startLine + i, Col: col}
}

// translateRange maps the element range [start,end) to positions, rounding
// the start right and the end left. A degenerate result (end before start)
// collapses to a zero-width range at the end position.
func (s *CharSequence) translateRange(start, end int) (Position, Position) {
	p1 := s.translateOffset(start, false)
	p2 := s.translateOffset(end, true)
	if p2.isBefore(p1) {
		return p2, p2
	}
	return p1, p2
}
