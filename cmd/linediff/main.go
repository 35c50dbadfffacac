// Command linediff compares two text files with the linediff engine and
// prints the result. It also bundles a word-level mode and a comparison
// mode that validates output quality against go-diff's diffmatchpatch.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fenwick/linediff"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file (defaults applied if absent)")
		timeoutMS  = flag.Int("timeout", 0, "max computation time in milliseconds, 0 = unbounded")
		ignoreWS   = flag.Bool("ignore-ws", false, "ignore leading/trailing whitespace in character comparison")
		subwords   = flag.Bool("subwords", false, "extend changed ranges to camelCase subwords instead of whole words")
		sideBySide = flag.Bool("side-by-side", false, "render a two-column view")
		wordMode   = flag.Bool("words", false, "diff word tokens instead of lines")
		compare    = flag.Bool("compare", false, "compare against go-diff's diffmatchpatch and report stats")
	)
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: linediff [flags] fileA fileB")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "linediff: %v\n", err)
		os.Exit(1)
	}
	// Flags override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "timeout":
			cfg.TimeoutMS = *timeoutMS
		case "ignore-ws":
			cfg.IgnoreWhitespace = *ignoreWS
		case "subwords":
			cfg.Subwords = *subwords
		case "side-by-side":
			cfg.SideBySide = *sideBySide
		}
	})

	a, err := readLines(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "linediff: %v\n", err)
		os.Exit(1)
	}
	b, err := readLines(flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "linediff: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *wordMode:
		diffWords(os.Stdout, strings.Join(a, "\n"), strings.Join(b, "\n"))
	case *compare:
		compareEngines(os.Stdout, a, b, cfg.TimeoutMS)
	default:
		diffs, hitTimeout := linediff.ComputeLineAlignments(a, b, cfg.TimeoutMS)
		detailed := linediff.RefineToCharacterLevel(diffs, a, b, linediff.RefineOptions{
			IgnoreTrimWhitespace: cfg.IgnoreWhitespace,
			ExtendToSubwords:     cfg.Subwords,
			MaxComputationTimeMS: cfg.TimeoutMS,
		})
		if hitTimeout {
			fmt.Fprintln(os.Stderr, "linediff: timeout exceeded, showing whole-range diff")
		}
		if cfg.SideBySide {
			renderSideBySide(os.Stdout, a, b, detailed, cfg.Width)
		} else {
			renderUnified(os.Stdout, a, b, detailed)
		}
	}
}

// readLines loads a file as a slice of lines without trailing newlines.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
