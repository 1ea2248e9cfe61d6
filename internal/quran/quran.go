// Package quran loads verse texts from Tanzil-style files.
package quran

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Key identifies a verse.
type Key struct {
	Surah int
	Ayah  int
}

// String formats the key as "surah:ayah".
func (k Key) String() string {
	return fmt.Sprintf("%d:%d", k.Surah, k.Ayah)
}

// Verse is one verse of reference text.
type Verse struct {
	Key
	Text string
}

// Ref returns the verse reference, e.g. "2:255".
func (v Verse) Ref() string {
	return v.Key.String()
}

// LoadVerses reads "surah|ayah|text" lines from the provided file path.
func LoadVerses(path string) ([]Verse, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only verse file.
			_ = cerr
		}
	}()
	return Parse(file)
}

// Parse reads verses from r. Blank lines and lines starting with '#' are
// skipped.
func Parse(r io.Reader) ([]Verse, error) {
	var verses []Verse
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		verses = append(verses, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(verses) == 0 {
		return nil, fmt.Errorf("verse file is empty")
	}
	return verses, nil
}

func parseLine(line string) (Verse, error) {
	parts := strings.SplitN(line, "|", 3)
	if len(parts) != 3 {
		return Verse{}, fmt.Errorf("expected surah|ayah|text, got %q", line)
	}
	surah, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || surah <= 0 {
		return Verse{}, fmt.Errorf("invalid surah %q", parts[0])
	}
	ayah, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || ayah <= 0 {
		return Verse{}, fmt.Errorf("invalid ayah %q", parts[1])
	}
	text := strings.TrimSpace(parts[2])
	if text == "" {
		return Verse{}, fmt.Errorf("verse %d:%d has no text", surah, ayah)
	}
	return Verse{Key: Key{Surah: surah, Ayah: ayah}, Text: text}, nil
}

// Index looks verses up by key.
type Index struct {
	byKey map[Key]Verse
}

// NewIndex indexes verses. Later duplicates replace earlier ones.
func NewIndex(verses []Verse) *Index {
	idx := &Index{byKey: make(map[Key]Verse, len(verses))}
	for _, v := range verses {
		idx.byKey[v.Key] = v
	}
	return idx
}

// Lookup returns the verse at surah:ayah.
func (idx *Index) Lookup(surah, ayah int) (Verse, bool) {
	v, ok := idx.byKey[Key{Surah: surah, Ayah: ayah}]
	return v, ok
}

// FilterSurah keeps only verses of the given surah; zero keeps everything.
func FilterSurah(verses []Verse, surah int) []Verse {
	if surah <= 0 {
		return verses
	}
	var out []Verse
	for _, v := range verses {
		if v.Surah == surah {
			out = append(out, v)
		}
	}
	return out
}
