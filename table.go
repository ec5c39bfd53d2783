package txtpic

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
)

// BrightnessTable memoizes CharacterBrightness per rune. Runes are kept in
// the order they were first scored. It is safe for concurrent use.
type BrightnessTable struct {
	runes  []rune
	scores map[rune]int
	mu     sync.RWMutex
}

// BrightnessData is the serialized form of a BrightnessTable.
type BrightnessData struct {
	FontName string
	Runes    []rune
	Scores   map[rune]int
}

// NewBrightnessTable creates an empty table.
func NewBrightnessTable() *BrightnessTable {
	return &BrightnessTable{
		runes:  make([]rune, 0),
		scores: make(map[rune]int),
	}
}

// Get returns the brightness of r, computing and caching it on first use.
func (bt *BrightnessTable) Get(r rune) int {
	if v, ok := bt.Lookup(r); ok {
		return v
	}
	v := CharacterBrightness(r)
	bt.set(r, v)
	return v
}

// Lookup returns the cached brightness of r without computing it.
func (bt *BrightnessTable) Lookup(r rune) (int, bool) {
	bt.mu.RLock()
	defer bt.mu.RUnlock()

	v, ok := bt.scores[r]
	return v, ok
}

func (bt *BrightnessTable) set(r rune, v int) {
	bt.mu.Lock()
	defer bt.mu.Unlock()

	if _, exists := bt.scores[r]; !exists {
		bt.runes = append(bt.runes, r)
	}
	bt.scores[r] = v
}

// Compute scores every rune not already in the table, spreading the work
// across GOMAXPROCS goroutines. Runes are recorded in the order given.
func (bt *BrightnessTable) Compute(runes []rune) {
	var missing []rune
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		if seen[r] {
			continue
		}
		seen[r] = true
		if _, ok := bt.Lookup(r); !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 {
		return
	}

	results := make([]int, len(missing))
	workers := min(runtime.GOMAXPROCS(0), len(missing))
	next := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				results[i] = CharacterBrightness(missing[i])
			}
		}()
	}
	for i := range missing {
		next <- i
	}
	close(next)
	wg.Wait()

	for i, r := range missing {
		bt.set(r, results[i])
	}
}

// Len returns the number of scored runes.
func (bt *BrightnessTable) Len() int {
	bt.mu.RLock()
	defer bt.mu.RUnlock()

	return len(bt.runes)
}

// Runes returns the scored runes in the order they were added.
func (bt *BrightnessTable) Runes() []rune {
	bt.mu.RLock()
	defer bt.mu.RUnlock()

	return append([]rune{}, bt.runes...)
}

// SortedByBrightness returns the scored runes from darkest to brightest,
// ties ordered by code point.
func (bt *BrightnessTable) SortedByBrightness() []rune {
	bt.mu.RLock()
	defer bt.mu.RUnlock()

	sorted := append([]rune{}, bt.runes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := bt.scores[sorted[i]], bt.scores[sorted[j]]
		if a != b {
			return a < b
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

// Save writes the table to path as gzip-compressed gob.
func (bt *BrightnessTable) Save(path string) error {
	bt.mu.RLock()
	data := BrightnessData{
		FontName: FontName(),
		Runes:    append([]rune{}, bt.runes...),
		Scores:   make(map[rune]int, len(bt.scores)),
	}
	for r, v := range bt.scores {
		data.Scores[r] = v
	}
	bt.mu.RUnlock()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := gob.NewEncoder(gz).Encode(&data); err != nil {
		gz.Close()
		return fmt.Errorf("failed to encode brightness table: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to close gzip: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write brightness table: %w", err)
	}

	Logger().Info("brightness table saved", "path", path, "runes", len(data.Runes))
	return nil
}

// LoadBrightnessTable reads a table written by Save. Tables measured with a
// different font are rejected, since their scores do not compare.
func LoadBrightnessTable(path string) (*BrightnessTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brightness table: %w", err)
	}

	gr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gr.Close()

	var data BrightnessData
	if err := gob.NewDecoder(gr).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode brightness table: %w", err)
	}
	if name := FontName(); data.FontName != name {
		return nil, fmt.Errorf("brightness table %s was measured with font %q, want %q",
			path, data.FontName, name)
	}

	bt := NewBrightnessTable()
	for _, r := range data.Runes {
		v, ok := data.Scores[r]
		if !ok {
			return nil, fmt.Errorf("brightness table %s has no score for %U", path, r)
		}
		bt.set(r, v)
	}

	Logger().Info("brightness table loaded", "path", path, "runes", bt.Len())
	return bt, nil
}
