package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"HOST", "PORT", "CLIENT_ORIGIN", "LOG_LEVEL", "LOG_FORMAT", "LANGGAME_CONFIG",
		"LANGGAME_REPO_URL", "LANGGAME_CLONE_DEPTH", "LANGGAME_CLONE_TIMEOUT",
		"LANGGAME_REQUEST_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:8000" {
		t.Errorf("Addr %q, want 0.0.0.0:8000", cfg.Addr())
	}
	if cfg.RepoURL != DefaultRepoURL {
		t.Errorf("RepoURL %q", cfg.RepoURL)
	}
	if cfg.CloneDepth != 1 {
		t.Errorf("CloneDepth %d, want 1", cfg.CloneDepth)
	}
	if want := filepath.Join(home, ".langgame", "dictionaries"); cfg.CorpusDir != want {
		t.Errorf("CorpusDir %q, want %q", cfg.CorpusDir, want)
	}
	if want := filepath.Join(home, ".langgame"); cfg.BaseDir != want {
		t.Errorf("BaseDir %q, want %q", cfg.BaseDir, want)
	}
}

func TestLoad_MissingHome(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", "")

	_, err := Load("")
	if !errors.Is(err, ErrNoHome) {
		t.Fatalf("err %v, want ErrNoHome", err)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "langgame.yaml")
	yml := `server:
  port: "9000"
  request_timeout: 3s
  client_origin: http://localhost:5173
log:
  level: debug
corpus:
  repo_url: https://example.com/dicts.git
  clone_depth: 5
  clone_timeout: 2m
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PORT", "9100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9100" {
		t.Errorf("Port %q, want env override 9100", cfg.Port)
	}
	if cfg.ClientOrigin != "http://localhost:5173" {
		t.Errorf("ClientOrigin %q", cfg.ClientOrigin)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel %q, want debug", cfg.LogLevel)
	}
	if cfg.RepoURL != "https://example.com/dicts.git" {
		t.Errorf("RepoURL %q", cfg.RepoURL)
	}
	if cfg.CloneDepth != 5 {
		t.Errorf("CloneDepth %d, want 5", cfg.CloneDepth)
	}
	if cfg.CloneTimeout != 2*time.Minute {
		t.Errorf("CloneTimeout %v, want 2m", cfg.CloneTimeout)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("RequestTimeout %v, want 3s", cfg.RequestTimeout)
	}
}

func TestLoad_ConfigFromEnvPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "c.yaml")
	if err := os.WriteFile(path, []byte("server:\n  host: 127.0.0.1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LANGGAME_CONFIG", path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host %q, want 127.0.0.1", cfg.Host)
	}
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("corpus:\n  clone_timeout: soon\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for invalid duration")
	}

	t.Setenv("LANGGAME_CLONE_DEPTH", "one")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric clone depth")
	}
}
