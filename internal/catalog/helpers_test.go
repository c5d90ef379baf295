package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDict creates root/dir/file with one line per entry.
func writeDict(t *testing.T, root, dir, file string, lines []string) string {
	t.Helper()
	d := filepath.Join(root, filepath.FromSlash(dir))
	if err := os.MkdirAll(d, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", d, err)
	}
	p := filepath.Join(d, file)
	body := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

// wordLines returns a hunspell-style list: a count line, then n flagged words.
func wordLines(prefix string, n int) []string {
	lines := []string{fmt.Sprint(n)}
	for i := 0; i < n; i++ {
		lines = append(lines, prefix+string(rune('a'+i%26))+string(rune('a'+i/26))+"/N")
	}
	return lines
}

// fixedLookup is a small alias table for tests.
func fixedLookup(m map[string]string) AliasLookup {
	return func(code string) (string, bool) {
		n, ok := m[code]
		return n, ok
	}
}

func numberedWords(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("word%c%c", 'a'+i%26, 'a'+(i/26)%26)
	}
	return out
}
