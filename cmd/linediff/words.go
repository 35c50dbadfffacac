package main

import (
	"fmt"
	"io"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/fenwick/linediff"
)

// tokenSeq adapts a token stream to the engine's Sequence interface, with
// ids drawn from a table shared by both sides.
type tokenSeq struct {
	ids  []uint32
	toks []string
}

func newTokenSeqs(a, b string) (*tokenSeq, *tokenSeq) {
	table := make(map[string]uint32)
	intern := func(tok string) uint32 {
		if id, ok := table[tok]; ok {
			return id
		}
		id := uint32(len(table))
		table[tok] = id
		return id
	}
	build := func(text string) *tokenSeq {
		s := &tokenSeq{}
		iter := words.FromString(text)
		for iter.Next() {
			tok := iter.Value()
			s.toks = append(s.toks, tok)
			s.ids = append(s.ids, intern(tok))
		}
		return s
	}
	return build(a), build(b)
}

func (s *tokenSeq) Len() int                    { return len(s.ids) }
func (s *tokenSeq) ElementAt(i int) uint32      { return s.ids[i] }
func (s *tokenSeq) StronglyEqual(i, j int) bool { return s.toks[i] == s.toks[j] }

// diffWords segments both inputs into Unicode words and diffs the token
// streams, printing deletions as [-tok-] and insertions as {+tok+}.
func diffWords(w io.Writer, a, b string) {
	seq1, seq2 := newTokenSeqs(a, b)
	diffs, _, err := linediff.MyersDiff(seq1, seq2, 0)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	aOff := 0
	for _, d := range diffs {
		for ; aOff < d.AStart; aOff++ {
			fmt.Fprint(w, seq1.toks[aOff])
		}
		for i := d.AStart; i < d.AEnd; i++ {
			fmt.Fprintf(w, "[-%s-]", seq1.toks[i])
		}
		for j := d.BStart; j < d.BEnd; j++ {
			fmt.Fprintf(w, "{+%s+}", seq2.toks[j])
		}
		aOff = d.AEnd
	}
	for ; aOff < seq1.Len(); aOff++ {
		fmt.Fprint(w, seq1.toks[aOff])
	}
	fmt.Fprintln(w)
}
