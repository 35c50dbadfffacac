package linediff

import (
	"reflect"
	"testing"
)

func TestJoinByShifting_MergeLeft(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		diffs []SequenceDiff
		want  []SequenceDiff
	}{
		{
			// Two single-element insertions into a repeated run collapse
			// into one once the second slides left across the run.
			name:  "insertions into repeated run",
			a:     "ab",
			b:     "aaab",
			diffs: []SequenceDiff{{0, 0, 0, 1}, {1, 1, 2, 3}},
			want:  []SequenceDiff{{0, 0, 0, 2}},
		},
		{
			name:  "insertion slides across equal element",
			a:     "ab",
			b:     "aXbb",
			diffs: []SequenceDiff{{1, 1, 1, 2}, {2, 2, 3, 4}},
			want:  []SequenceDiff{{1, 1, 1, 3}},
		},
		{
			name:  "blocked by unequal gap content",
			a:     "ab",
			b:     "aXbY",
			diffs: []SequenceDiff{{1, 1, 1, 2}, {2, 2, 3, 4}},
			want:  []SequenceDiff{{1, 1, 1, 2}, {2, 2, 3, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := joinByShifting(seqOf(tt.a), seqOf(tt.b), tt.diffs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("joinByShifting() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJoinByShifting_ShiftRightWithoutMerge(t *testing.T) {
	// The leading insertion can slide one element right but cannot bridge
	// the whole gap to the next diff, so it shifts and stays separate.
	got := joinByShifting(seqOf("ab"), seqOf("aabX"),
		[]SequenceDiff{{0, 0, 0, 1}, {2, 2, 3, 4}})
	want := []SequenceDiff{{1, 1, 1, 2}, {2, 2, 3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("joinByShifting() = %v, want %v", got, want)
	}
}

func TestJoinByShifting_MergeRight(t *testing.T) {
	// The leading insertion slides right across the full "aa" run and
	// merges into the substitution that follows.
	got := joinByShifting(seqOf("aaX"), seqOf("aaaY"),
		[]SequenceDiff{{0, 0, 0, 1}, {2, 3, 3, 4}})
	want := []SequenceDiff{{2, 3, 2, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("joinByShifting() = %v, want %v", got, want)
	}
}

func TestShiftToBoundaries_Lines(t *testing.T) {
	// The inserted blank line can sit before or after the existing blank
	// line; the position flanked by unindented lines scores higher.
	seq1, seq2 := NewLineSequences(
		[]string{"  foo", "", "bar"},
		[]string{"  foo", "", "", "bar"},
	)
	got := shiftToBoundaries(seq1, seq2, []SequenceDiff{{1, 1, 1, 2}})
	want := []SequenceDiff{{2, 2, 2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("shiftToBoundaries() = %v, want %v", got, want)
	}
}

func TestShiftToBoundaries_SkippedWithoutScorer(t *testing.T) {
	diffs := []SequenceDiff{{1, 1, 1, 2}}
	got := shiftToBoundaries(seqOf("ab"), seqOf("aab"), diffs)
	if !reflect.DeepEqual(got, diffs) {
		t.Errorf("shiftToBoundaries() = %v, want unchanged %v", got, diffs)
	}
}

func TestOptimizeDiffs_Idempotent(t *testing.T) {
	pairs := [][2][]string{
		{
			{"  foo", "", "bar"},
			{"  foo", "", "", "bar"},
		},
		{
			{"a", "b", "c", "d"},
			{"a", "x", "c", "y", "d"},
		},
		{
			{"func main() {", "\told()", "}"},
			{"func main() {", "\tnew()", "\tmore()", "}"},
		},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		once, _ := ComputeLineAlignments(a, b, 0)
		seq1, seq2 := NewLineSequences(a, b)
		twice := optimizeDiffs(seq1, seq2, append([]SequenceDiff(nil), once...))
		if !reflect.DeepEqual(twice, once) {
			t.Errorf("re-optimizing diffs of %q %q changed %v to %v", a, b, once, twice)
		}
	}
}

func TestRemoveVeryShortMatchingLines(t *testing.T) {
	lines := []string{"x1", "x2", "x3", "}", "y1", "y2", "y3"}
	seq := newLineSequence(lines, newHashTable())

	tests := []struct {
		name  string
		diffs []SequenceDiff
		want  []SequenceDiff
	}{
		{
			name:  "bridges near-empty gap",
			diffs: []SequenceDiff{{0, 3, 0, 3}, {4, 7, 4, 7}},
			want:  []SequenceDiff{{0, 7, 0, 7}},
		},
		{
			name:  "both diffs too small",
			diffs: []SequenceDiff{{2, 3, 2, 3}, {4, 5, 4, 5}},
			want:  []SequenceDiff{{2, 3, 2, 3}, {4, 5, 4, 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := removeVeryShortMatchingLines(seq, tt.diffs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("removeVeryShortMatchingLines() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoveVeryShortMatchingLines_KeepsWideGap(t *testing.T) {
	lines := []string{"x1", "x2", "x3", "keepThisLine", "y1", "y2", "y3"}
	seq := newLineSequence(lines, newHashTable())
	diffs := []SequenceDiff{{0, 3, 0, 3}, {4, 7, 4, 7}}
	got := removeVeryShortMatchingLines(seq, diffs)
	if !reflect.DeepEqual(got, diffs) {
		t.Errorf("removeVeryShortMatchingLines() = %v, want unchanged %v", got, diffs)
	}
}

func TestRemoveShortMatches(t *testing.T) {
	tests := []struct {
		name  string
		diffs []SequenceDiff
		want  []SequenceDiff
	}{
		{
			name:  "short gap on a side",
			diffs: []SequenceDiff{{0, 1, 0, 1}, {3, 4, 3, 4}},
			want:  []SequenceDiff{{0, 4, 0, 4}},
		},
		{
			name:  "short gap on b side only",
			diffs: []SequenceDiff{{0, 1, 0, 1}, {9, 10, 3, 4}},
			want:  []SequenceDiff{{0, 10, 0, 4}},
		},
		{
			name:  "wide gaps kept",
			diffs: []SequenceDiff{{0, 1, 0, 1}, {4, 5, 9, 10}},
			want:  []SequenceDiff{{0, 1, 0, 1}, {4, 5, 9, 10}},
		},
		{
			name:  "empty",
			diffs: nil,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := removeShortMatches(tt.diffs)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("removeShortMatches() = %v, want %v", got, tt.want)
			}
		})
	}
}
