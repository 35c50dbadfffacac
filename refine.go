package linediff

// Range is a half-open character range between two positions.
type Range struct {
	Start Position
	End   Position
}

// RangeMapping maps a character range in A to its replacement in B. It is
// always produced inside a parent line-level diff.
type RangeMapping struct {
	A Range
	B Range
}

// DetailedLineRangeMapping is a line-level diff plus its nested
// character-level mappings. An empty Inner means the whole line range is an
// opaque insert or delete with no fine-grained highlighting.
type DetailedLineRangeMapping struct {
	Lines SequenceDiff
	Inner []RangeMapping
}

// RefineOptions controls character-level refinement.
type RefineOptions struct {
	// IgnoreTrimWhitespace excludes each line's leading and trailing
	// whitespace from character comparison.
	IgnoreTrimWhitespace bool
	// ExtendToSubwords extends changed ranges to camelCase subword
	// boundaries instead of whole-word boundaries.
	ExtendToSubwords bool
	// MaxComputationTimeMS bounds the refinement wall-clock time.
	// 0 means unbounded.
	MaxComputationTimeMS int
}

// charSmallInputThreshold selects the DP aligner over Myers at character
// granularity. Larger than the line threshold: per-element comparisons are
// much cheaper here.
const charSmallInputThreshold = 3000

// RefineToCharacterLevel re-runs the diff pipeline inside each line-level
// diff at character granularity and returns the diffs with nested character
// mappings attached.
//
// When whitespace is significant (IgnoreTrimWhitespace false), lines inside
// unchanged regions that differ only in whitespace each get their own
// refined mapping; line-level alignment treats them as equal, so they are
// recovered here.
func RefineToCharacterLevel(lineDiffs []SequenceDiff, a, b []string, opts RefineOptions) []DetailedLineRangeMapping {
	guard := newTimeoutGuard(opts.MaxComputationTimeMS)
	var result []DetailedLineRangeMapping

	aOff, bOff := 0, 0
	scanUnchanged := func(until int) {
		if opts.IgnoreTrimWhitespace {
			return
		}
		for k := 0; aOff+k < until; k++ {
			if a[aOff+k] != b[bOff+k] {
				ws := SequenceDiff{aOff + k, aOff + k + 1, bOff + k, bOff + k + 1}
				result = append(result, refineDiff(ws, a, b, opts, guard))
			}
		}
	}

	for _, d := range lineDiffs {
		scanUnchanged(d.AStart)
		result = append(result, refineDiff(d, a, b, opts, guard))
		aOff, bOff = d.AEnd, d.BEnd
	}
	scanUnchanged(len(a))
	return result
}

// refineDiff computes the nested character mappings for one line-level diff.
func refineDiff(d SequenceDiff, a, b []string, opts RefineOptions, guard timeoutGuard) DetailedLineRangeMapping {
	if d.AStart == d.AEnd || d.BStart == d.BEnd {
		// Pure insertion or deletion: nothing to pair up character-wise,
		// the whole range is opaque.
		return DetailedLineRangeMapping{Lines: d}
	}

	slice1 := newCharSequence(a, d.AStart, d.AEnd, opts.IgnoreTrimWhitespace)
	slice2 := newCharSequence(b, d.BStart, d.BEnd, opts.IgnoreTrimWhitespace)

	var diffs []SequenceDiff
	if slice1.Len()+slice2.Len() < charSmallInputThreshold {
		diffs = dynamicProgDiff(slice1, slice2, nil)
	} else {
		diffs, _ = myersDiff(slice1, slice2, guard)
	}

	diffs = optimizeDiffs(slice1, slice2, diffs)
	diffs = removeShortMatches(diffs)
	diffs = extendDiffsToWords(slice1, slice2, diffs, opts.ExtendToSubwords)

	inner := make([]RangeMapping, 0, len(diffs))
	for _, cd := range diffs {
		aStart, aEnd := slice1.translateRange(cd.AStart, cd.AEnd)
		bStart, bEnd := slice2.translateRange(cd.BStart, cd.BEnd)
		inner = append(inner, RangeMapping{
			A: Range{Start: aStart, End: aEnd},
			B: Range{Start: bStart, End: bEnd},
		})
	}
	return DetailedLineRangeMapping{Lines: d, Inner: inner}
}

// extendDiffsToWords widens each character diff to the boundaries of the
// enclosing word (or camelCase subword), so a highlighted change does not
// split a word awkwardly. The context next to a diff is an aligned equal
// run, so extending both sides by the same amount keeps the mapping exact;
// extension is clamped to the gap so neighbors are never overrun, and diffs
// that meet after extension are merged.
func extendDiffsToWords(seq1, seq2 *CharSequence, diffs []SequenceDiff, subwords bool) []SequenceDiff {
	if len(diffs) == 0 {
		return diffs
	}
	out := make([]SequenceDiff, 0, len(diffs))
	for i, d := range diffs {
		prevAEnd, prevBEnd := 0, 0
		if i > 0 {
			prevAEnd, prevBEnd = diffs[i-1].AEnd, diffs[i-1].BEnd
		}
		nextAStart, nextBStart := seq1.Len(), seq2.Len()
		if i+1 < len(diffs) {
			nextAStart, nextBStart = diffs[i+1].AStart, diffs[i+1].BStart
		}

		extL := max(
			seq1.wordCutBefore(d.AStart, subwords),
			seq2.wordCutBefore(d.BStart, subwords),
		)
		extL = min(extL, d.AStart-prevAEnd, d.BStart-prevBEnd)

		extR := max(
			seq1.wordCutAfter(d.AEnd, subwords),
			seq2.wordCutAfter(d.BEnd, subwords),
		)
		extR = min(extR, nextAStart-d.AEnd, nextBStart-d.BEnd)

		d = SequenceDiff{d.AStart - extL, d.AEnd + extR, d.BStart - extL, d.BEnd + extR}
		if len(out) > 0 && d.AStart <= out[len(out)-1].AEnd {
			out[len(out)-1] = out[len(out)-1].Join(d)
		} else {
			out = append(out, d)
		}
	}
	return out
}
