// internal/config/config.go
//
// Runtime configuration for the langgame server.
//
// Sources, lowest to highest precedence:
//   1. Built-in defaults (Default).
//   2. Optional YAML file (path from --config or LANGGAME_CONFIG).
//   3. Environment variables (a .env file is loaded by the caller via godotenv).
//   4. Command-line flags, applied by the cli package after Load returns.
//
// Environment variables:
//   HOST, PORT                     listen address (default 0.0.0.0:8000)
//   CLIENT_ORIGIN                  enables CORS for one foreign origin
//   LOG_LEVEL, LOG_FORMAT          zerolog level; "json" or "console"
//   LANGGAME_REPO_URL              dictionary corpus remote
//   LANGGAME_CLONE_DEPTH           shallow clone depth (default 1)
//   LANGGAME_CLONE_TIMEOUT         clone deadline (default 10m)
//   LANGGAME_REQUEST_TIMEOUT       per-request handler deadline (default 10s)
//
// HOME must be set; the corpus lives under $HOME/.langgame.

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRepoURL = "https://github.com/LibreOffice/dictionaries.git"

	baseDirName   = ".langgame"
	corpusDirName = "dictionaries"
)

// ErrNoHome is returned when the HOME environment variable is unset.
var ErrNoHome = errors.New("config: HOME is not set")

// Config holds everything main needs to boot the service.
type Config struct {
	Host           string
	Port           string
	LogLevel       string
	LogFormat      string
	RepoURL        string
	CloneDepth     int
	CloneTimeout   time.Duration
	RequestTimeout time.Duration
	ClientOrigin   string

	// Derived from HOME.
	BaseDir   string
	CorpusDir string
}

// Default returns the built-in configuration without any directory fields.
func Default() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           "8000",
		LogLevel:       "info",
		LogFormat:      "json",
		RepoURL:        DefaultRepoURL,
		CloneDepth:     1,
		CloneTimeout:   10 * time.Minute,
		RequestTimeout: 10 * time.Second,
	}
}

// Addr returns host:port for http.Server.
func (c Config) Addr() string { return net.JoinHostPort(c.Host, c.Port) }

// Load builds a Config from defaults, an optional YAML file and the environment.
// An empty path falls back to LANGGAME_CONFIG; if both are empty no file is read.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("LANGGAME_CONFIG")
	}
	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	home := os.Getenv("HOME")
	if home == "" {
		return cfg, ErrNoHome
	}
	cfg.BaseDir = filepath.Join(home, baseDirName)
	cfg.CorpusDir = filepath.Join(cfg.BaseDir, corpusDirName)
	return cfg, nil
}

// fileConfig mirrors the YAML layout; nil/empty fields keep the current value.
type fileConfig struct {
	Server struct {
		Host           string `yaml:"host"`
		Port           string `yaml:"port"`
		RequestTimeout string `yaml:"request_timeout"`
		ClientOrigin   string `yaml:"client_origin"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Corpus struct {
		RepoURL      string `yaml:"repo_url"`
		CloneDepth   *int   `yaml:"clone_depth"`
		CloneTimeout string `yaml:"clone_timeout"`
	} `yaml:"corpus"`
}

func applyFile(cfg *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.Host, fc.Server.Host)
	setString(&cfg.Port, fc.Server.Port)
	setString(&cfg.ClientOrigin, fc.Server.ClientOrigin)
	setString(&cfg.LogLevel, fc.Log.Level)
	setString(&cfg.LogFormat, fc.Log.Format)
	setString(&cfg.RepoURL, fc.Corpus.RepoURL)
	if fc.Corpus.CloneDepth != nil {
		cfg.CloneDepth = *fc.Corpus.CloneDepth
	}
	if err := setDuration(&cfg.CloneTimeout, fc.Corpus.CloneTimeout); err != nil {
		return fmt.Errorf("config %s: corpus.clone_timeout: %w", path, err)
	}
	if err := setDuration(&cfg.RequestTimeout, fc.Server.RequestTimeout); err != nil {
		return fmt.Errorf("config %s: server.request_timeout: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Host, os.Getenv("HOST"))
	setString(&cfg.Port, os.Getenv("PORT"))
	setString(&cfg.ClientOrigin, os.Getenv("CLIENT_ORIGIN"))
	setString(&cfg.LogLevel, os.Getenv("LOG_LEVEL"))
	setString(&cfg.LogFormat, os.Getenv("LOG_FORMAT"))
	setString(&cfg.RepoURL, os.Getenv("LANGGAME_REPO_URL"))

	if v := os.Getenv("LANGGAME_CLONE_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LANGGAME_CLONE_DEPTH: %w", err)
		}
		cfg.CloneDepth = n
	}
	if err := setDuration(&cfg.CloneTimeout, os.Getenv("LANGGAME_CLONE_TIMEOUT")); err != nil {
		return fmt.Errorf("LANGGAME_CLONE_TIMEOUT: %w", err)
	}
	if err := setDuration(&cfg.RequestTimeout, os.Getenv("LANGGAME_REQUEST_TIMEOUT")); err != nil {
		return fmt.Errorf("LANGGAME_REQUEST_TIMEOUT: %w", err)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
