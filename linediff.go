// Package linediff computes a structured, human-readable difference between
// two ordered sequences of text lines: which line ranges were inserted,
// deleted, or modified, and - within modified ranges - which exact character
// spans changed.
//
// Unlike minimal-edit-script diff implementations, linediff includes:
//   - Perfect hashing: lines are deduplicated through a collision-free,
//     per-computation hash table before alignment
//   - A weighted dynamic-programming aligner for small inputs that prefers
//     human-meaningful alignments over merely minimal ones
//   - Postprocessing: shift/join/merge passes that turn a minimal edit
//     script into a readable one
//   - Character-level refinement with word and camelCase subword extension
package linediff

import "math"

// SequenceDiff maps the half-open index range [AStart,AEnd) in one sequence
// to [BStart,BEnd) in another. At most one side is empty (pure insertion or
// deletion); never both. A list of SequenceDiffs is kept sorted ascending by
// AStart with non-overlapping, non-touching ranges.
type SequenceDiff struct {
	AStart int // start index in sequence A (inclusive)
	AEnd   int // end index in sequence A (exclusive)
	BStart int // start index in sequence B (inclusive)
	BEnd   int // end index in sequence B (exclusive)
}

// Join returns the smallest diff covering both d and other.
// The receiver must precede other.
func (d SequenceDiff) Join(other SequenceDiff) SequenceDiff {
	return SequenceDiff{d.AStart, other.AEnd, d.BStart, other.BEnd}
}

// delta shifts both ranges by n positions.
func (d SequenceDiff) delta(n int) SequenceDiff {
	return SequenceDiff{d.AStart + n, d.AEnd + n, d.BStart + n, d.BEnd + n}
}

// lineSmallInputThreshold selects the weighted dynamic-programming aligner
// over Myers when the combined line count is below it.
const lineSmallInputThreshold = 1700

// ComputeLineAlignments diffs two slices of lines and returns the line-level
// differences plus whether the computation hit its timeout. timeoutMS of 0
// means unbounded.
//
// Line identity ignores leading and trailing whitespace: lines that differ
// only in surrounding whitespace align as equal. (Character-level refinement
// can still surface those differences, see RefineToCharacterLevel.)
//
// On timeout the result degrades to a single diff spanning both inputs
// entirely, with the timeout flag set; a partial diff is never returned.
func ComputeLineAlignments(a, b []string, timeoutMS int) ([]SequenceDiff, bool) {
	if len(a) == 0 && len(b) == 0 {
		return nil, false
	}

	table := newHashTable()
	seq1 := newLineSequence(a, table)
	seq2 := newLineSequence(b, table)

	var diffs []SequenceDiff
	var hitTimeout bool
	if seq1.Len()+seq2.Len() < lineSmallInputThreshold {
		// The weighted aligner prefers matching long identical lines over
		// empty ones when several alignments tie on edit count.
		diffs = dynamicProgDiff(seq1, seq2, func(i, j int) float64 {
			if a[i] != b[j] {
				// Same trimmed content, different whitespace.
				return 0.99
			}
			if len(b[j]) == 0 {
				return 0.1
			}
			return 1 + math.Log(1+float64(len(b[j])))
		})
	} else {
		diffs, hitTimeout = myersDiff(seq1, seq2, newTimeoutGuard(timeoutMS))
	}

	diffs = optimizeDiffs(seq1, seq2, diffs)
	diffs = removeVeryShortMatchingLines(seq1, diffs)
	return diffs, hitTimeout
}
