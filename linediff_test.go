package linediff

import (
	"fmt"
	"reflect"
	"testing"
)

func TestComputeLineAlignments(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []SequenceDiff
	}{
		{
			name: "both empty",
			a:    nil,
			b:    nil,
			want: nil,
		},
		{
			name: "equal",
			a:    []string{"one", "two"},
			b:    []string{"one", "two"},
			want: nil,
		},
		{
			name: "pure insertion",
			a:    []string{"line1", "line3"},
			b:    []string{"line1", "line2", "line3"},
			want: []SequenceDiff{{1, 1, 1, 2}},
		},
		{
			name: "two separate changes",
			a:    []string{"a", "b", "c", "d", "e"},
			b:    []string{"a", "B", "c", "D", "e"},
			want: []SequenceDiff{{1, 2, 1, 2}, {3, 4, 3, 4}},
		},
		{
			name: "whitespace-only difference aligns as equal",
			a:    []string{"  x", "y"},
			b:    []string{"x", "y  "},
			want: nil,
		},
		{
			name: "delete all",
			a:    []string{"a", "b"},
			b:    nil,
			want: []SequenceDiff{{0, 2, 0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hitTimeout := ComputeLineAlignments(tt.a, tt.b, 0)
			if hitTimeout {
				t.Error("unexpected timeout")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComputeLineAlignments() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeLineAlignments_BoundaryShift(t *testing.T) {
	// The inserted blank line could go before or after the existing one;
	// optimization places it against the unindented boundary.
	a := []string{"  foo", "", "bar"}
	b := []string{"  foo", "", "", "bar"}

	got, _ := ComputeLineAlignments(a, b, 0)
	want := []SequenceDiff{{2, 2, 2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeLineAlignments() = %v, want %v", got, want)
	}
}

func TestComputeLineAlignments_MergesAcrossBraceLine(t *testing.T) {
	a := []string{
		"old1", "old2", "old3",
		"}",
		"old4", "old5", "old6",
	}
	b := []string{
		"new1", "new2", "new3",
		"}",
		"new4", "new5", "new6",
	}

	got, _ := ComputeLineAlignments(a, b, 0)
	want := []SequenceDiff{{0, 7, 0, 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeLineAlignments() = %v, want %v", got, want)
	}
}

func TestComputeLineAlignments_Timeout(t *testing.T) {
	// Large enough to route past the DP aligner, divergent enough that the
	// Myers search cannot finish within a millisecond.
	const n = 2000
	a := make([]string, n)
	b := make([]string, n)
	for i := range a {
		a[i] = fmt.Sprintf("left %d", i)
		b[i] = fmt.Sprintf("right %d", i)
	}

	got, hitTimeout := ComputeLineAlignments(a, b, 1)
	if !hitTimeout {
		t.Fatal("expected timeout")
	}
	want := []SequenceDiff{{0, n, 0, n}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeLineAlignments() = %v, want %v", got, want)
	}
}

// applyLineDiffs reconstructs B from A and the diff list.
func applyLineDiffs(a, b []string, diffs []SequenceDiff) []string {
	var out []string
	aOff := 0
	for _, d := range diffs {
		out = append(out, a[aOff:d.AStart]...)
		out = append(out, b[d.BStart:d.BEnd]...)
		aOff = d.AEnd
	}
	out = append(out, a[aOff:]...)
	return out
}

func TestComputeLineAlignments_Properties(t *testing.T) {
	pairs := [][2][]string{
		{
			{"a", "b", "c", "d"},
			{"a", "x", "c", "y", "d"},
		},
		{
			{"func main() {", "\told()", "}"},
			{"func main() {", "\tnew()", "\tmore()", "}"},
		},
		{
			{"only", "in", "a"},
			{"totally", "different", "lines", "here"},
		},
		{
			{"shared", "", "shared", "tail"},
			{"shared", "", "inserted", "shared", "tail"},
		},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		diffs, _ := ComputeLineAlignments(a, b, 0)

		prev := SequenceDiff{-1, -1, -1, -1}
		for _, d := range diffs {
			if d.AStart > d.AEnd || d.BStart > d.BEnd {
				t.Errorf("inverted range %v in diff of %q %q", d, a, b)
			}
			if d.AStart == d.AEnd && d.BStart == d.BEnd {
				t.Errorf("empty diff %v in diff of %q %q", d, a, b)
			}
			if prev.AEnd >= 0 && (d.AStart <= prev.AEnd || d.BStart <= prev.BEnd) {
				t.Errorf("diffs %v and %v touch or overlap", prev, d)
			}
			prev = d
		}

		if got := applyLineDiffs(a, b, diffs); !reflect.DeepEqual(got, b) {
			t.Errorf("applying diffs of %q %q = %q, want %q", a, b, got, b)
		}
	}
}
