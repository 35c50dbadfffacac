package linediff

// Bounded dynamic-programming aligner.
//
// A weighted global alignment used instead of Myers when the combined input
// is small. For every index pair it computes the best cumulative score
// reachable by matching the pair or skipping one element from either side.
// Matched pairs earn a caller-controlled positive score, so alignments that
// tie on edit count can still be ranked: the line-level scorer, for example,
// makes matching a long identical line worth more than matching an empty
// one. Consecutive matches on one diagonal earn an extra run-length bonus,
// which keeps blocks together.

// DynamicProgDiff aligns two sequences with the weighted DP aligner.
// score is called for element-equal index pairs and returns the reward for
// matching them; nil means plain equality scoring (1 per match). With plain
// scoring the result agrees with MyersDiff.
func DynamicProgDiff(seq1, seq2 Sequence, score func(i, j int) float64) ([]SequenceDiff, error) {
	if seq1 == nil || seq2 == nil {
		return nil, ErrNilSequence
	}
	return dynamicProgDiff(seq1, seq2, score), nil
}

// Backtracking directions.
const (
	dirSkipA uint8 = 1 // best score came from (i-1, j): element i of A unmatched
	dirSkipB uint8 = 2 // best score came from (i, j-1): element j of B unmatched
	dirMatch uint8 = 3 // best score came from matching (i, j)
)

func dynamicProgDiff(seq1, seq2 Sequence, score func(i, j int) float64) []SequenceDiff {
	n, m := seq1.Len(), seq2.Len()
	if n == 0 && m == 0 {
		return nil
	}
	if n == 0 {
		return []SequenceDiff{{0, 0, 0, m}}
	}
	if m == 0 {
		return []SequenceDiff{{0, n, 0, 0}}
	}

	scores := make([]float64, n*m)
	directions := make([]uint8, n*m)
	runLengths := make([]int, n*m)
	at := func(i, j int) int { return i*m + j }

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			skipA := 0.0
			if i > 0 {
				skipA = scores[at(i-1, j)]
			}
			skipB := 0.0
			if j > 0 {
				skipB = scores[at(i, j-1)]
			}

			matched := -1.0
			if seq1.ElementAt(i) == seq2.ElementAt(j) {
				matched = 0
				if i > 0 && j > 0 {
					matched = scores[at(i-1, j-1)]
					if directions[at(i-1, j-1)] == dirMatch {
						// Reward extending a diagonal run.
						matched += float64(runLengths[at(i-1, j-1)])
					}
				}
				if score != nil {
					matched += score(i, j)
				} else {
					matched++
				}
			}

			idx := at(i, j)
			best := max(skipA, skipB, matched)
			scores[idx] = best
			switch {
			case matched >= 0 && best == matched:
				directions[idx] = dirMatch
				run := 1
				if i > 0 && j > 0 && directions[at(i-1, j-1)] == dirMatch {
					run = runLengths[at(i-1, j-1)] + 1
				}
				runLengths[idx] = run
			case best == skipA:
				directions[idx] = dirSkipA
			default:
				directions[idx] = dirSkipB
			}
		}
	}

	// Backtrack the score table, emitting a diff for every gap between
	// consecutive matched pairs.
	var diffs []SequenceDiff
	lastX, lastY := n, m
	report := func(i, j int) {
		if i+1 != lastX || j+1 != lastY {
			diffs = append(diffs, SequenceDiff{i + 1, lastX, j + 1, lastY})
		}
		lastX, lastY = i, j
	}
	i, j := n-1, m-1
	for i >= 0 && j >= 0 {
		switch directions[at(i, j)] {
		case dirMatch:
			report(i, j)
			i--
			j--
		case dirSkipA:
			i--
		default:
			j--
		}
	}
	report(-1, -1)
	for lo, hi := 0, len(diffs)-1; lo < hi; lo, hi = lo+1, hi-1 {
		diffs[lo], diffs[hi] = diffs[hi], diffs[lo]
	}
	return diffs
}
