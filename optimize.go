package linediff

// Heuristic postprocessing.
//
// A minimal edit script is rarely the most readable one: insertions inside
// repeated runs can sit at any of several edit-distance-equivalent
// positions, and tiny unchanged islands between changes fragment the
// output. These passes rewrite the diff list in place of the raw result.
// The list stays sorted with non-overlapping, non-touching ranges
// throughout.

// optimizeDiffs is the general-purpose pass: join-by-shifting (twice, since
// one merge can enable another), then boundary alignment.
func optimizeDiffs(seq1, seq2 Sequence, diffs []SequenceDiff) []SequenceDiff {
	diffs = joinByShifting(seq1, seq2, diffs)
	diffs = joinByShifting(seq1, seq2, diffs)
	diffs = shiftToBoundaries(seq1, seq2, diffs)
	return diffs
}

// joinByShifting slides insertions and deletions left under loose equality,
// merging any diff that can slide the whole gap into its predecessor; then
// slides right under strong equality, merging into the successor.
func joinByShifting(seq1, seq2 Sequence, diffs []SequenceDiff) []SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}

	result := make([]SequenceDiff, 0, len(diffs))
	result = append(result, diffs[0])
	for i := 1; i < len(diffs); i++ {
		prev := result[len(result)-1]
		cur := diffs[i]
		if cur.AStart == cur.AEnd || cur.BStart == cur.BEnd {
			gap := cur.AStart - prev.AEnd
			var d int
			for d = 1; d <= gap; d++ {
				if seq1.ElementAt(cur.AStart-d) != seq1.ElementAt(cur.AEnd-d) ||
					seq2.ElementAt(cur.BStart-d) != seq2.ElementAt(cur.BEnd-d) {
					break
				}
			}
			d--
			if d == gap {
				result[len(result)-1] = SequenceDiff{prev.AStart, cur.AEnd - gap, prev.BStart, cur.BEnd - gap}
				continue
			}
			cur = cur.delta(-d)
		}
		result = append(result, cur)
	}

	result2 := make([]SequenceDiff, 0, len(result))
	for i := 0; i < len(result)-1; i++ {
		next := result[i+1]
		cur := result[i]
		if cur.AStart == cur.AEnd || cur.BStart == cur.BEnd {
			gap := next.AStart - cur.AEnd
			var d int
			for d = 0; d < gap; d++ {
				if !seq1.StronglyEqual(cur.AStart+d, cur.AEnd+d) ||
					!seq2.StronglyEqual(cur.BStart+d, cur.BEnd+d) {
					break
				}
			}
			if d == gap {
				result[i+1] = SequenceDiff{cur.AStart + gap, next.AEnd, cur.BStart + gap, next.BEnd}
				continue
			}
			if d > 0 {
				cur = cur.delta(d)
			}
		}
		result2 = append(result2, cur)
	}
	result2 = append(result2, result[len(result)-1])
	return result2
}

// maxBoundaryShift bounds the slide window scanned per diff, for cost.
const maxBoundaryShift = 100

// shiftToBoundaries moves each insertion or deletion to the position with
// the best boundary score among all edit-distance-equivalent placements.
// Skipped entirely when either sequence cannot score boundaries.
func shiftToBoundaries(seq1, seq2 Sequence, diffs []SequenceDiff) []SequenceDiff {
	score1, ok1 := seq1.(BoundaryScorer)
	score2, ok2 := seq2.(BoundaryScorer)
	if !ok1 || !ok2 {
		return diffs
	}
	for i := range diffs {
		cur := diffs[i]
		if cur.AStart != cur.AEnd && cur.BStart != cur.BEnd {
			continue
		}
		// Stay clear of the neighboring diffs on both sides.
		aMin, bMin := 0, 0
		if i > 0 {
			aMin = diffs[i-1].AEnd + 1
			bMin = diffs[i-1].BEnd + 1
		}
		aMax, bMax := seq1.Len(), seq2.Len()
		if i+1 < len(diffs) {
			aMax = diffs[i+1].AStart - 1
			bMax = diffs[i+1].BStart - 1
		}
		diffs[i] = shiftDiffToBetterPosition(cur, seq1, seq2, score1, score2, aMin, aMax, bMin, bMax)
	}
	return diffs
}

func shiftDiffToBetterPosition(d SequenceDiff, seq1, seq2 Sequence, score1, score2 BoundaryScorer, aMin, aMax, bMin, bMax int) SequenceDiff {
	before := 1
	for d.AStart-before >= aMin && d.BStart-before >= bMin &&
		seq1.StronglyEqual(d.AStart-before, d.AEnd-before) &&
		seq2.StronglyEqual(d.BStart-before, d.BEnd-before) &&
		before < maxBoundaryShift {
		before++
	}
	before--

	after := 0
	for d.AEnd+after < aMax && d.BEnd+after < bMax &&
		seq1.StronglyEqual(d.AStart+after, d.AEnd+after) &&
		seq2.StronglyEqual(d.BStart+after, d.BEnd+after) &&
		after < maxBoundaryShift {
		after++
	}

	if before == 0 && after == 0 {
		return d
	}

	bestDelta, bestScore := 0, -1
	for delta := -before; delta <= after; delta++ {
		s := score1.BoundaryScore(d.AStart+delta) +
			score2.BoundaryScore(d.BStart+delta) +
			score2.BoundaryScore(d.BEnd+delta)
		if s > bestScore {
			bestScore = s
			bestDelta = delta
		}
	}
	return d.delta(bestDelta)
}

// removeVeryShortMatchingLines merges adjacent line-level diffs separated by
// nearly empty unchanged spans (at most 4 non-whitespace characters), when
// at least one of the two diffs already spans more than 5 lines in total.
// Repeats until a full pass makes no merges, capped at 10 passes.
func removeVeryShortMatchingLines(seq1 *LineSequence, diffs []SequenceDiff) []SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}
	for pass := 0; pass < 10; pass++ {
		merged := false
		result := make([]SequenceDiff, 0, len(diffs))
		result = append(result, diffs[0])
		for i := 1; i < len(diffs); i++ {
			cur := diffs[i]
			last := result[len(result)-1]
			unchanged := seq1.text(last.AEnd, cur.AStart)
			if countNonWhitespace(unchanged) <= 4 &&
				(last.AEnd-last.AStart+last.BEnd-last.BStart > 5 ||
					cur.AEnd-cur.AStart+cur.BEnd-cur.BStart > 5) {
				result[len(result)-1] = last.Join(cur)
				merged = true
			} else {
				result = append(result, cur)
			}
		}
		diffs = result
		if !merged {
			break
		}
	}
	return diffs
}

func countNonWhitespace(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			n++
		}
	}
	return n
}

// removeShortMatches merges adjacent diffs whose unchanged gap is at most 2
// elements on either side, regardless of content. Used at character
// granularity, where such gaps read as noise.
func removeShortMatches(diffs []SequenceDiff) []SequenceDiff {
	var result []SequenceDiff
	for _, cur := range diffs {
		if len(result) == 0 {
			result = append(result, cur)
			continue
		}
		last := &result[len(result)-1]
		if cur.AStart-last.AEnd <= 2 || cur.BStart-last.BEnd <= 2 {
			*last = last.Join(cur)
		} else {
			result = append(result, cur)
		}
	}
	return result
}
