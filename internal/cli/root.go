package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/everforgeworks/galaxies-exolog/internal/config"
	"github.com/everforgeworks/galaxies-exolog/internal/game"
	"github.com/everforgeworks/galaxies-exolog/internal/journal"
	"github.com/everforgeworks/galaxies-exolog/internal/trip"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exolog",
		Short: "Exploration ledger - live valuation of scanned and mapped bodies",
		Long: `exolog reads the game journals, reconciles scans, mappings and
biological signals into one record per body, and values the current trip.

Examples:
  exolog serve
  exolog summary --system
  exolog values --class "High metal content body" --terraformable`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./exolog.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewSummaryCommand())
	rootCmd.AddCommand(NewValuesCommand())

	return rootCmd
}

// Execute runs the root command
func Execute(ctx context.Context) {
	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is what every command builds from the configuration.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	galaxy *game.Galaxy
}

func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logging.NewLogger(cmd.ErrOrStderr(), verbose)

	tables, err := game.LoadTablesFile(cfg.Data.TablesPath)
	if err != nil {
		return nil, err
	}
	catalog, err := game.EmbeddedCatalog(cfg.Data.SpeciesRoster)
	if err != nil {
		return nil, err
	}
	if cfg.Data.SpeciesPath != "" {
		if catalog, err = game.LoadCatalogFile(cfg.Data.SpeciesPath); err != nil {
			return nil, err
		}
	}

	return &app{cfg: cfg, logger: logger, galaxy: game.NewGalaxy(tables, catalog)}, nil
}

// replay reads the journal directory into a fresh engine.
func (a *app) replay() (*trip.Engine, *journal.Reader, journal.Offsets, error) {
	reader := journal.NewReader(a.cfg.Journal.Dir, a.logger)
	events, offsets, err := reader.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if a.cfg.Journal.SinceLastSale {
		events = journal.SinceLastSale(events)
	}

	engine := trip.NewEngine(a.galaxy, a.logger)
	engine.AddEntries(events)
	a.logger.Debug("journals replayed", "events", len(events))
	return engine, reader, offsets, nil
}
