// Package cli wires configuration, corpus acquisition, the catalog and the
// HTTP server into the langgame command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/langgame/internal/aliases"
	"github.com/robalobadob/langgame/internal/catalog"
	"github.com/robalobadob/langgame/internal/config"
	"github.com/robalobadob/langgame/internal/corpus"
	"github.com/robalobadob/langgame/internal/httpserver"
)

// ErrNoLanguages is returned when the corpus yields no playable language.
var ErrNoLanguages = errors.New("no playable languages in corpus")

// Execute runs the root command. Startup failures are fatal.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("langgame")
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	port       string
}

func newRootCmd() *cobra.Command {
	var gf globalFlags

	cmd := &cobra.Command{
		Use:           "langgame",
		Short:         "Guess-the-language word game server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap(gf)
			if err != nil {
				return err
			}
			cat, err := prepareCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, cat)
		},
	}

	cmd.PersistentFlags().StringVar(&gf.configPath, "config", "", "YAML config file (default $LANGGAME_CONFIG)")
	cmd.PersistentFlags().StringVar(&gf.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().StringVarP(&gf.port, "port", "p", "", "listen port (default $PORT or 8000)")

	cmd.AddCommand(catalogCmd(&gf))
	return cmd
}

// bootstrap loads configuration and configures the global logger.
func bootstrap(gf globalFlags) (config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(gf.configPath)
	if err != nil {
		return cfg, err
	}
	if gf.logLevel != "" {
		cfg.LogLevel = gf.logLevel
	}
	if gf.port != "" {
		cfg.Port = gf.port
	}
	setupLogging(cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}

func setupLogging(level, format string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// prepareCatalog ensures the corpus is on disk and builds the catalog.
// It must finish before any listener is opened.
func prepareCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, error) {
	acq := corpus.NewAcquirer(cfg.CorpusDir, cfg.RepoURL, cfg.CloneDepth, cfg.CloneTimeout)
	if err := acq.Ensure(ctx); err != nil {
		return nil, err
	}

	log.Info().Str("dir", cfg.CorpusDir).Msg("loading dictionaries")
	cat, err := catalog.Load(cfg.CorpusDir, aliases.Lookup)
	if err != nil {
		return nil, err
	}
	if cat.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoLanguages, cfg.CorpusDir)
	}
	return cat, nil
}

func serve(ctx context.Context, cfg config.Config, cat *catalog.Catalog) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.New(cat, httpserver.Options{
		RequestTimeout: cfg.RequestTimeout,
		ClientOrigin:   cfg.ClientOrigin,
		LanguageNames:  aliases.Names(),
	})
	log.Info().Str("addr", cfg.Addr()).Int("languages", cat.Len()).Msg("starting langgame")
	return srv.Start(ctx, cfg.Addr())
}
