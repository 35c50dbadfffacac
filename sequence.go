package linediff

import "strings"

// Sequence is a uniform, 0-indexed view over comparable elements: lines,
// characters, or anything else with a cheap integer identity.
type Sequence interface {
	// Len returns the number of elements.
	Len() int
	// ElementAt returns a compact identity for element i: a perfect-hash id
	// for lines, a code point for characters. Equal identities mean the
	// elements compare equal for alignment purposes.
	ElementAt(i int) uint32
	// StronglyEqual reports exact equality of elements i and j, beyond what
	// the compact identity represents (e.g. raw text including whitespace).
	StronglyEqual(i, j int) bool
}

// BoundaryScorer is an optional Sequence capability. A higher score marks a
// more desirable place to put a diff boundary. Sequences that do not
// implement it are excluded from boundary alignment.
type BoundaryScorer interface {
	BoundaryScore(offset int) int
}

// hashTable assigns collision-free, densely increasing integer ids to
// strings. It lives for exactly one diff computation and is explicitly
// passed to both sides so they draw ids from the same namespace.
type hashTable struct {
	ids map[string]uint32
}

func newHashTable() *hashTable {
	return &hashTable{ids: make(map[string]uint32)}
}

// getOrCreate returns the id previously assigned to text, or assigns the
// next sequential id on first occurrence.
func (t *hashTable) getOrCreate(text string) uint32 {
	if id, ok := t.ids[text]; ok {
		return id
	}
	id := uint32(len(t.ids))
	t.ids[text] = id
	return id
}

func (t *hashTable) size() int {
	return len(t.ids)
}

// LineSequence views a slice of lines as a Sequence. Element identity is the
// perfect-hash id of the line's trimmed content, so lines differing only in
// surrounding whitespace align as equal; StronglyEqual compares raw text.
// The sequence borrows the caller's line storage and never copies it.
type LineSequence struct {
	hashes []uint32
	lines  []string
}

// NewLineSequences builds the two line sequences for a diff computation.
// Both draw ids from one shared hash table scoped to this call.
func NewLineSequences(a, b []string) (*LineSequence, *LineSequence) {
	table := newHashTable()
	return newLineSequence(a, table), newLineSequence(b, table)
}

func newLineSequence(lines []string, table *hashTable) *LineSequence {
	hashes := make([]uint32, len(lines))
	for i, line := range lines {
		hashes[i] = table.getOrCreate(strings.TrimSpace(line))
	}
	return &LineSequence{hashes: hashes, lines: lines}
}

func (s *LineSequence) Len() int {
	return len(s.hashes)
}

func (s *LineSequence) ElementAt(i int) uint32 {
	return s.hashes[i]
}

func (s *LineSequence) StronglyEqual(i, j int) bool {
	return s.lines[i] == s.lines[j]
}

const lineBoundaryBase = 1000

// BoundaryScore scores the boundary before line offset. Boundaries next to
// blank or unindented lines score higher, so diffs settle against them.
func (s *LineSequence) BoundaryScore(offset int) int {
	before := 0
	if offset > 0 {
		before = indentation(s.lines[offset-1])
	}
	after := 0
	if offset < len(s.lines) {
		after = indentation(s.lines[offset])
	}
	return lineBoundaryBase - (before + after)
}

// text joins the lines of the half-open range [start,end).
func (s *LineSequence) text(start, end int) string {
	return strings.Join(s.lines[start:end], "\n")
}

func indentation(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}
