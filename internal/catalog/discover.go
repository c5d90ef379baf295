package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// DictExt is the extension of hunspell word lists.
	DictExt = ".dic"
	// MaxDiscoverDepth bounds how far below the corpus root Discover looks.
	MaxDiscoverDepth = 3
)

// Bundle is a discovered dictionary directory. It only lives until Load
// has turned it into a Language (or dropped it).
type Bundle struct {
	Code     string
	Base     string
	DictPath string
}

// Discover walks root (up to MaxDiscoverDepth levels, root excluded) and
// returns one Bundle per directory holding a dictionary file. Directories
// without one are skipped. Only an unreadable root is reported as an error.
func Discover(root string) ([]Bundle, error) {
	var out []Bundle
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Debug().Err(err).Str("path", path).Msg("skip unreadable dir")
			return filepath.SkipDir
		}
		if !d.IsDir() || path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if depth := strings.Count(rel, string(filepath.Separator)) + 1; depth > MaxDiscoverDepth {
			return filepath.SkipDir
		}

		dict, ok := firstDict(path)
		if !ok {
			return nil
		}
		code := strings.ToLower(d.Name())
		base, _, _ := strings.Cut(code, "_")
		out = append(out, Bundle{Code: code, Base: base, DictPath: dict})
		return nil
	})
	return out, err
}

// firstDict returns the first *.dic entry of dir in name order.
func firstDict(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != DictExt {
			continue
		}
		return filepath.Join(dir, e.Name()), true
	}
	return "", false
}
