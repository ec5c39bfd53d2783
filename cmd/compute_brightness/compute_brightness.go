package main

import (
	"flag"
	"fmt"
	"github.com/wbrown/txtpic"
	"golang.org/x/text/unicode/runenames"
	"io"
	"log"
	"log/slog"
	"os"
	"time"
	"unicode"
)

// selectRunes resolves the -chars and -set flags to the runes to score.
func selectRunes(chars, set string) ([]rune, error) {
	if chars != "" {
		return []rune(chars), nil
	}
	runes, ok := txtpic.CharacterSet(set)
	if !ok {
		return nil, fmt.Errorf("unknown character set %q, options are ascii, blocks, box, or all", set)
	}
	return runes, nil
}

// printTable writes one line per rune, darkest first.
func printTable(w io.Writer, bt *txtpic.BrightnessTable) {
	for _, r := range bt.SortedByBrightness() {
		v, _ := bt.Lookup(r)
		glyph := string(r)
		if !unicode.IsPrint(r) {
			glyph = " "
		}
		fmt.Fprintf(w, "%U\t%s\t%3d\t%s\n", r, glyph, v, runenames.Name(r))
	}
}

func main() {
	set := flag.String("set", "ascii",
		"Character set to score: ascii, blocks, box, or all")
	chars := flag.String("chars", "",
		"Explicit characters to score (overrides -set)")
	outputFile := flag.String("output", "",
		"Path to save the brightness table (if not specified, prints to stdout)")
	verbose := flag.Bool("verbose", false,
		"Enable debug logging")
	flag.Parse()

	if *verbose {
		txtpic.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	runes, err := selectRunes(*chars, *set)
	if err != nil {
		fmt.Println(err)
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Printf("Scoring %d characters with %s", len(runes), txtpic.FontName())
	begin := time.Now()
	bt := txtpic.NewBrightnessTable()
	bt.Compute(runes)
	log.Printf("Computed %d scores in %v", bt.Len(), time.Since(begin))

	if *outputFile == "" {
		printTable(os.Stdout, bt)
		return
	}

	if err := bt.Save(*outputFile); err != nil {
		log.Fatalf("Failed to save brightness table: %v", err)
	}
	if fileInfo, err := os.Stat(*outputFile); err == nil {
		log.Printf("Saved brightness table to %s (%.2f KB)",
			*outputFile, float64(fileInfo.Size())/1024)
	}
}
