// internal/corpus/corpus.go
//
// One-time acquisition of the dictionary corpus.
// Responsibilities:
//   - Shallow-clone the corpus repository into the data dir when it is missing.
//   - Strip VCS metadata and non-dictionary folders after a successful clone.
//   - Leave an existing directory untouched (no freshness check, no update).
//
// Notes:
//   - Ensure is the only startup step allowed to abort the process; callers
//     treat any returned error as fatal.
//   - The VCS tool sits behind Cloner so tests never touch the network.

package corpus

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCloneFailed wraps any failure of the initial clone.
var ErrCloneFailed = errors.New("corpus: clone failed")

// DefaultPrune lists top-level folders removed after cloning.
var DefaultPrune = []string{".git", ".github", "util"}

// Cloner fetches a repository into dir with history limited to depth commits.
type Cloner interface {
	Clone(ctx context.Context, url, dir string, depth int) error
}

// Acquirer ensures a local corpus exists at Dir.
type Acquirer struct {
	Dir     string        // clone target, e.g. $HOME/.langgame/dictionaries
	RepoURL string        // remote to clone from
	Depth   int           // shallow clone depth; <= 0 means 1
	Timeout time.Duration // overall clone deadline; 0 disables it
	Prune   []string      // folders removed after clone, relative to Dir
	Cloner  Cloner
}

// NewAcquirer returns an Acquirer using git with the default prune list.
func NewAcquirer(dir, repoURL string, depth int, timeout time.Duration) *Acquirer {
	return &Acquirer{
		Dir:     dir,
		RepoURL: repoURL,
		Depth:   depth,
		Timeout: timeout,
		Prune:   DefaultPrune,
		Cloner:  GitCloner{},
	}
}

// Ensure clones the corpus if Dir does not exist. It is idempotent.
func (a *Acquirer) Ensure(ctx context.Context) error {
	_, err := os.Stat(a.Dir)
	if err == nil {
		log.Info().Str("dir", a.Dir).Msg("reusing cached corpus")
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat corpus dir %s: %w", a.Dir, err)
	}

	parent := filepath.Dir(a.Dir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", parent, err)
	}

	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	depth := a.Depth
	if depth <= 0 {
		depth = 1
	}

	start := time.Now()
	log.Info().Str("repo", a.RepoURL).Str("dir", a.Dir).Int("depth", depth).Msg("cloning corpus")
	if err := a.Cloner.Clone(ctx, a.RepoURL, a.Dir, depth); err != nil {
		// Don't leave a half-written tree behind; the next start would reuse it.
		_ = os.RemoveAll(a.Dir)
		return fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}
	log.Info().Dur("took", time.Since(start)).Msg("corpus cloned")

	a.prune()
	return nil
}

// prune removes non-dictionary folders. Failures are logged and ignored.
func (a *Acquirer) prune() {
	for _, name := range a.Prune {
		p := filepath.Join(a.Dir, name)
		if err := os.RemoveAll(p); err != nil {
			log.Debug().Err(err).Str("path", p).Msg("prune failed")
		}
	}
}
