package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxLineLen caps a single dictionary line.
const maxLineLen = 1 << 20

// LoadDictionary reads a hunspell .dic file and returns its qualifying words
// in file order. Anything from the first '/' on (affix flags) is dropped; a
// word qualifies if it has at least MinWordLen characters, all alphabetic.
func LoadDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for sc.Scan() {
		w, _, _ := strings.Cut(sc.Text(), "/")
		if isWord(w) {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// isWord reports whether w is long enough and purely alphabetic.
func isWord(w string) bool {
	if utf8.RuneCountInString(w) < MinWordLen {
		return false
	}
	for _, r := range w {
		if !isAlphabetic(r) {
			return false
		}
	}
	return true
}

// isAlphabetic follows the Unicode Alphabetic property, which also covers
// the combining vowel signs of Indic scripts.
func isAlphabetic(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_Alphabetic, r)
}
