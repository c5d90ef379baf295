// internal/catalog/catalog.go
//
// In-memory catalog of playable languages.
//
// A Catalog is built once at startup (see Load) and never mutated afterwards.
// Handlers share a single *Catalog by pointer; since nothing writes after
// construction, concurrent reads need no locking.

package catalog

import (
	"math/rand/v2"
	"slices"
	"strings"
)

const (
	// WordsPerRound is the size of one round or hint, and the minimum word
	// count for a language to be playable.
	WordsPerRound = 10
	// MinWordLen is the minimum word length in characters.
	MinWordLen = 3
)

// Language is one playable catalog entry.
type Language struct {
	Code         string   // lowercased bundle directory name, e.g. "pt_br"
	Base         string   // Code up to the first underscore, e.g. "pt"
	Name         string   // display name from the alias table
	Words        []string // qualifying words in file order; read-only
	ValidAnswers []string // accepted lowercase guesses, sorted, unique
}

// Stat is a per-language summary used by diagnostics and the CLI.
type Stat struct {
	Code  string `json:"code"`
	Base  string `json:"base"`
	Name  string `json:"name"`
	Words int    `json:"words"`
}

// Catalog is an immutable, ordered list of languages.
type Catalog struct {
	langs []Language
}

// New wraps langs in a Catalog. The caller must not modify langs afterwards.
func New(langs []Language) *Catalog {
	return &Catalog{langs: langs}
}

// Len returns the number of languages.
func (c *Catalog) Len() int { return len(c.langs) }

// Languages returns the entries in catalog order. Word slices are shared
// with the catalog and must be treated as read-only.
func (c *Catalog) Languages() []Language { return slices.Clone(c.langs) }

// Random picks one language uniformly. ok is false when the catalog is empty.
func (c *Catalog) Random() (lang Language, ok bool) {
	if len(c.langs) == 0 {
		return Language{}, false
	}
	return c.langs[rand.IntN(len(c.langs))], true
}

// Find returns the first language whose Code or Base equals the lowercased code.
func (c *Catalog) Find(code string) (Language, bool) {
	code = strings.ToLower(code)
	for _, l := range c.langs {
		if l.Code == code || l.Base == code {
			return l, true
		}
	}
	return Language{}, false
}

// Stats summarises every language in catalog order.
func (c *Catalog) Stats() []Stat {
	out := make([]Stat, 0, len(c.langs))
	for _, l := range c.langs {
		out = append(out, Stat{Code: l.Code, Base: l.Base, Name: l.Name, Words: len(l.Words)})
	}
	return out
}
