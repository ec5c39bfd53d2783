package main

import (
	"bytes"
	"github.com/wbrown/txtpic"
	"strings"
	"testing"
)

// TestSelectRunes tests flag resolution
func TestSelectRunes(t *testing.T) {
	runes, err := selectRunes("#@", "ascii")
	if err != nil || string(runes) != "#@" {
		t.Errorf("selectRunes(\"#@\", ascii) = %q, %v; want explicit chars", string(runes), err)
	}

	runes, err = selectRunes("", "blocks")
	if err != nil {
		t.Fatalf("selectRunes(\"\", blocks) failed: %v", err)
	}
	if len(runes) != len(txtpic.BlockChars)+1 {
		t.Errorf("blocks set has %d runes, want %d", len(runes), len(txtpic.BlockChars)+1)
	}

	if _, err := selectRunes("", "emoji"); err == nil {
		t.Error("expected error for unknown set")
	}
}

// TestPrintTable tests output is sorted darkest first and named
func TestPrintTable(t *testing.T) {
	bt := txtpic.NewBrightnessTable()
	bt.Compute([]rune("@ ."))

	var buf bytes.Buffer
	printTable(&buf, bt)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("printTable wrote %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "U+0020") || !strings.Contains(lines[0], "SPACE") {
		t.Errorf("first line %q, want the space character", lines[0])
	}
	if !strings.HasPrefix(lines[2], "U+0040") || !strings.Contains(lines[2], "COMMERCIAL AT") {
		t.Errorf("last line %q, want the commercial at", lines[2])
	}
}
