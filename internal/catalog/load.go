package catalog

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// AliasLookup resolves a lowercase code to a display name.
type AliasLookup func(code string) (string, bool)

// Load discovers every bundle under root and assembles the catalog.
//
// Bundles are dropped, never fatal, when:
//   - neither code nor base is known to lookup,
//   - the dictionary cannot be read (logged as a warning),
//   - fewer than WordsPerRound words qualify.
//
// The only error is an unreadable root.
func Load(root string, lookup AliasLookup) (*Catalog, error) {
	start := time.Now()
	bundles, err := Discover(root)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", root, err)
	}

	var (
		langs                       []Language
		unknown, unreadable, sparse int
	)
	for _, b := range bundles {
		name, ok := lookup(b.Code)
		if !ok {
			name, ok = lookup(b.Base)
		}
		if !ok {
			unknown++
			continue
		}

		words, err := LoadDictionary(b.DictPath)
		if err != nil {
			unreadable++
			log.Warn().Err(err).Str("code", b.Code).Str("path", b.DictPath).Msg("skip unreadable dictionary")
			continue
		}
		if len(words) < WordsPerRound {
			sparse++
			log.Debug().Str("code", b.Code).Int("words", len(words)).Msg("skip sparse dictionary")
			continue
		}

		langs = append(langs, Language{
			Code:         b.Code,
			Base:         b.Base,
			Name:         name,
			Words:        words,
			ValidAnswers: buildValidAnswers(name, name),
		})
	}

	log.Info().
		Int("bundles", len(bundles)).
		Int("languages", len(langs)).
		Int("unknown", unknown).
		Int("unreadable", unreadable).
		Int("sparse", sparse).
		Dur("took", time.Since(start)).
		Msg("catalog loaded")
	return New(langs), nil
}

// buildValidAnswers returns {lower(code), base of lower(code), lower(name)},
// sorted. Load passes the display name as code, so for names without an
// underscore the result is just the lowercase name.
func buildValidAnswers(code, name string) []string {
	lc := strings.ToLower(code)
	base, _, _ := strings.Cut(lc, "_")
	set := []string{lc, base, strings.ToLower(name)}
	slices.Sort(set)
	return slices.Compact(set)
}
