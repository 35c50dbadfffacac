package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	godiff "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/fenwick/linediff"
)

// compareEngines runs both this engine and go-diff's diffmatchpatch over
// the same input and reports timing and fragmentation stats side by side.
func compareEngines(w io.Writer, a, b []string, timeoutMS int) {
	fmt.Fprintf(w, "A: %d lines, B: %d lines\n", len(a), len(b))

	start := time.Now()
	diffs, hitTimeout := linediff.ComputeLineAlignments(a, b, timeoutMS)
	ourTime := time.Since(start)

	dmp := godiff.New()
	start = time.Now()
	goDiffs := dmp.DiffMain(strings.Join(a, "\n"), strings.Join(b, "\n"), true)
	goDiffTime := time.Since(start)

	changedA, changedB := 0, 0
	for _, d := range diffs {
		changedA += d.AEnd - d.AStart
		changedB += d.BEnd - d.BStart
	}
	fmt.Fprintf(w, "\nlinediff: %v\n", ourTime)
	fmt.Fprintf(w, "  Change regions: %d (lines touched: -%d +%d)\n", len(diffs), changedA, changedB)
	if hitTimeout {
		fmt.Fprintln(w, "  (hit timeout, whole-range fallback)")
	}

	inserts, deletes, equals := 0, 0, 0
	for _, d := range goDiffs {
		switch d.Type {
		case godiff.DiffInsert:
			inserts++
		case godiff.DiffDelete:
			deletes++
		case godiff.DiffEqual:
			equals++
		}
	}
	fmt.Fprintf(w, "\ngo-diff:  %v\n", goDiffTime)
	fmt.Fprintf(w, "  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
		len(goDiffs), equals, deletes, inserts)
}
