package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/fenwick/linediff"
)

// renderUnified prints each diff as a hunk with removed and added lines,
// annotating modified lines with their changed character spans.
func renderUnified(w io.Writer, a, b []string, detailed []linediff.DetailedLineRangeMapping) {
	for _, m := range detailed {
		d := m.Lines
		fmt.Fprintf(w, "@@ -%d,%d +%d,%d @@\n", d.AStart+1, d.AEnd-d.AStart, d.BStart+1, d.BEnd-d.BStart)
		for i := d.AStart; i < d.AEnd; i++ {
			fmt.Fprintf(w, "-%s\n", a[i])
		}
		for i := d.BStart; i < d.BEnd; i++ {
			fmt.Fprintf(w, "+%s\n", b[i])
		}
		for _, inner := range m.Inner {
			fmt.Fprintf(w, "  ~ %d:%d-%d:%d -> %d:%d-%d:%d\n",
				inner.A.Start.Line+1, inner.A.Start.Col,
				inner.A.End.Line+1, inner.A.End.Col,
				inner.B.Start.Line+1, inner.B.Start.Col,
				inner.B.End.Line+1, inner.B.End.Col)
		}
	}
}

// renderSideBySide prints a two-column view. Columns are padded by display
// width, so East Asian wide characters stay aligned.
func renderSideBySide(w io.Writer, a, b []string, detailed []linediff.DetailedLineRangeMapping, width int) {
	col := width / 2
	if col < 8 {
		col = 8
	}

	pad := func(s string) string {
		s = runewidth.Truncate(s, col, "…")
		return s + strings.Repeat(" ", col-runewidth.StringWidth(s))
	}

	aOff, bOff := 0, 0
	emit := func(left, right, sep string) {
		fmt.Fprintf(w, "%s %s %s\n", pad(left), sep, right)
	}
	for _, m := range detailed {
		d := m.Lines
		for aOff < d.AStart {
			emit(a[aOff], b[bOff], " ")
			aOff++
			bOff++
		}
		i, j := d.AStart, d.BStart
		for i < d.AEnd || j < d.BEnd {
			switch {
			case i < d.AEnd && j < d.BEnd:
				emit(a[i], b[j], "|")
				i++
				j++
			case i < d.AEnd:
				emit(a[i], "", "<")
				i++
			default:
				emit("", b[j], ">")
				j++
			}
		}
		aOff, bOff = d.AEnd, d.BEnd
	}
	for aOff < len(a) && bOff < len(b) {
		emit(a[aOff], b[bOff], " ")
		aOff++
		bOff++
	}
}
