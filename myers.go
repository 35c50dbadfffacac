package linediff

import (
	"errors"
	"time"
)

// The core algorithm is from:
// - Myers 1986: "An O(ND) Difference Algorithm and Its Variations"
//
// This is the forward-only variant: it tracks, per edit distance d, the
// furthest-reaching x-coordinate on every reachable diagonal k = x - y, and
// records each diagonal run of matches ("snake") in an arena so the full
// path can be reconstructed backward once a diagonal reaches the terminal
// corner.

// ErrNilSequence is returned when a nil sequence reaches a public aligner.
var ErrNilSequence = errors.New("linediff: nil sequence")

// MyersDiff computes the shortest edit script between two sequences.
// timeoutMS of 0 means unbounded; on expiry the result degrades to a single
// diff spanning both sequences entirely, with the timeout flag set.
func MyersDiff(seq1, seq2 Sequence, timeoutMS int) ([]SequenceDiff, bool, error) {
	if seq1 == nil || seq2 == nil {
		return nil, false, ErrNilSequence
	}
	diffs, hitTimeout := myersDiff(seq1, seq2, newTimeoutGuard(timeoutMS))
	return diffs, hitTimeout, nil
}

// timeoutGuard is a cooperative wall-clock cancellation point. A zero
// deadline never expires.
type timeoutGuard struct {
	deadline time.Time
}

func newTimeoutGuard(ms int) timeoutGuard {
	if ms <= 0 {
		return timeoutGuard{}
	}
	return timeoutGuard{deadline: time.Now().Add(time.Duration(ms) * time.Millisecond)}
}

func (g timeoutGuard) expired() bool {
	return !g.deadline.IsZero() && !time.Now().Before(g.deadline)
}

// diagArray stores one value per diagonal k, indexed k+offset so every
// reachable diagonal in [-lenB-1, lenA+1] maps to a non-negative index.
type diagArray struct {
	values []int
	offset int
}

func newDiagArray(lenA, lenB, fill int) diagArray {
	values := make([]int, lenA+lenB+3)
	if fill != 0 {
		for i := range values {
			values[i] = fill
		}
	}
	return diagArray{values: values, offset: lenB + 1}
}

func (d diagArray) get(k int) int    { return d.values[k+d.offset] }
func (d diagArray) set(k int, v int) { d.values[k+d.offset] = v }

// snakePath records one diagonal run of matches and links to its
// predecessor by arena index, so backtracking walks indices instead of
// chasing heap pointers.
type snakePath struct {
	prev int // arena index of the previous path node, -1 for none
	x, y int // start of the match run
	len  int
}

func myersDiff(seq1, seq2 Sequence, guard timeoutGuard) ([]SequenceDiff, bool) {
	lenA, lenB := seq1.Len(), seq2.Len()
	if lenA == 0 && lenB == 0 {
		return nil, false
	}
	if lenA == 0 {
		return []SequenceDiff{{0, 0, 0, lenB}}, false
	}
	if lenB == 0 {
		return []SequenceDiff{{0, lenA, 0, 0}}, false
	}

	followSnake := func(x, y int) int {
		for x < lenA && y < lenB && seq1.ElementAt(x) == seq2.ElementAt(y) {
			x++
			y++
		}
		return x
	}

	v := newDiagArray(lenA, lenB, 0)
	pathIdx := newDiagArray(lenA, lenB, -1)
	arena := make([]snakePath, 0, 64)

	// d = 0: the initial snake from the origin.
	x0 := followSnake(0, 0)
	v.set(0, x0)
	if x0 > 0 {
		arena = append(arena, snakePath{prev: -1, x: 0, y: 0, len: x0})
		pathIdx.set(0, 0)
	}
	if x0 == lenA && x0 == lenB {
		return nil, false
	}

	for d := 1; ; d++ {
		// One cooperative cancellation check per edit distance increment.
		if guard.expired() {
			return []SequenceDiff{{0, lenA, 0, lenB}}, true
		}

		lower := -min(d, lenB+d%2)
		upper := min(d, lenA+d%2)
		for k := lower; k <= upper; k += 2 {
			// Extend from the diagonal above (k+1, consuming from B) or the
			// left (k-1, consuming from A), whichever reaches further.
			maxTop := -1
			if k != upper {
				maxTop = v.get(k + 1)
			}
			maxLeft := -1
			if k != lower {
				maxLeft = v.get(k-1) + 1
			}
			x := min(max(maxTop, maxLeft), lenA)
			y := x - k
			if x < 0 || y < 0 || y > lenB {
				continue
			}

			newMaxX := followSnake(x, y)
			v.set(k, newMaxX)

			from := k - 1
			if maxTop >= maxLeft {
				from = k + 1
			}
			prev := pathIdx.get(from)
			if newMaxX != x {
				arena = append(arena, snakePath{prev: prev, x: x, y: y, len: newMaxX - x})
				pathIdx.set(k, len(arena)-1)
			} else {
				pathIdx.set(k, prev)
			}

			if k == lenA-lenB && newMaxX == lenA {
				return backtrackSnakes(arena, pathIdx.get(k), lenA, lenB), false
			}
		}
	}
}

// backtrackSnakes walks the snake path backward from the terminal corner and
// emits a SequenceDiff wherever the path's endpoint does not abut the next
// snake's start. The list is built in reverse and flipped before returning.
func backtrackSnakes(arena []snakePath, idx, lenA, lenB int) []SequenceDiff {
	var diffs []SequenceDiff
	lastX, lastY := lenA, lenB
	for {
		endX, endY := 0, 0
		if idx >= 0 {
			p := arena[idx]
			endX, endY = p.x+p.len, p.y+p.len
		}
		if endX != lastX || endY != lastY {
			diffs = append(diffs, SequenceDiff{endX, lastX, endY, lastY})
		}
		if idx < 0 {
			break
		}
		p := arena[idx]
		lastX, lastY = p.x, p.y
		idx = p.prev
	}
	for i, j := 0, len(diffs)-1; i < j; i, j = i+1, j-1 {
		diffs[i], diffs[j] = diffs[j], diffs[i]
	}
	return diffs
}
