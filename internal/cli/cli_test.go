package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/robalobadob/langgame/internal/catalogdb"
)

// setupHome points HOME at a temp dir holding a ready-made corpus, so no
// command ever tries to clone.
func setupHome(t *testing.T, bundles map[string]int) string {
	t.Helper()
	for _, k := range []string{
		"HOST", "PORT", "CLIENT_ORIGIN", "LOG_LEVEL", "LOG_FORMAT", "LANGGAME_CONFIG",
		"LANGGAME_REPO_URL", "LANGGAME_CLONE_DEPTH", "LANGGAME_CLONE_TIMEOUT",
		"LANGGAME_REQUEST_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)

	corpus := filepath.Join(home, ".langgame", "dictionaries")
	if err := os.MkdirAll(corpus, 0o755); err != nil {
		t.Fatal(err)
	}
	for dir, n := range bundles {
		d := filepath.Join(corpus, dir)
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
		var b strings.Builder
		fmt.Fprintln(&b, n)
		for i := 0; i < n; i++ {
			fmt.Fprintf(&b, "mot%c%c/S\n", 'a'+i%26, 'a'+i/26)
		}
		if err := os.WriteFile(filepath.Join(d, dir+".dic"), []byte(b.String()), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return home
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCatalogCommand(t *testing.T) {
	setupHome(t, map[string]int{"fr": 15, "xx": 15, "de_DE": 5})

	out, err := run(t, "catalog", "--log-level", "error")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if !strings.Contains(out, "French") {
		t.Errorf("output lacks French:\n%s", out)
	}
	if strings.Contains(out, "German") {
		t.Errorf("sparse German bundle should be dropped:\n%s", out)
	}
	if !strings.Contains(out, "1 languages") {
		t.Errorf("output lacks count:\n%s", out)
	}
}

func TestCatalogExportCommand(t *testing.T) {
	setupHome(t, map[string]int{"fr": 15, "pt_BR": 12})
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	if _, err := run(t, "catalog", "export", "--db", dbPath, "--log-level", "error"); err != nil {
		t.Fatalf("export: %v", err)
	}

	db, err := catalogdb.Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	stats, err := catalogdb.Summaries(context.Background(), db)
	if err != nil {
		t.Fatalf("Summaries: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats %+v, want 2 languages", stats)
	}
}

func TestCatalogExportCommand_RequiresDB(t *testing.T) {
	setupHome(t, map[string]int{"fr": 15})
	if _, err := run(t, "catalog", "export"); err == nil {
		t.Fatal("expected error without --db")
	}
}

func TestPrepareCatalog_Empty(t *testing.T) {
	setupHome(t, map[string]int{"xx": 15})
	cfg, err := bootstrap(globalFlags{logLevel: "error"})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if _, err := prepareCatalog(context.Background(), cfg); !errors.Is(err, ErrNoLanguages) {
		t.Fatalf("err %v, want ErrNoLanguages", err)
	}
}

func TestBootstrap_FlagOverrides(t *testing.T) {
	setupHome(t, nil)
	t.Setenv("PORT", "9000")

	cfg, err := bootstrap(globalFlags{port: "9999", logLevel: "warn"})
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if cfg.Port != "9999" {
		t.Errorf("Port %q, want flag value 9999", cfg.Port)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel %q, want warn", cfg.LogLevel)
	}
}
