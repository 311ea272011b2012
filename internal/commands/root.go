package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/moodlog/internal/catalog"
	"github.com/balkashynov/moodlog/internal/config"
	"github.com/balkashynov/moodlog/internal/db"
	"github.com/balkashynov/moodlog/internal/logging"
	"github.com/balkashynov/moodlog/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what one command invocation needs. It is built per invocation,
// never shared through package state.
type app struct {
	configPath string

	cfg   *config.Config
	log   *zap.Logger
	store *db.Store
}

// NewRootCmd builds the moodlog command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "moodlog",
		Short: "Log emotions and see how long they lasted",
		Long: `moodlog records emotions with a date, a duration and a reason,
and shows statistics grouped by date and emotion.

Run without a subcommand to open the interactive interface.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.withStore(a.runInteractive),
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ./"+config.DefaultFile+" if present)")

	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newStatsCmd(a))
	rootCmd.AddCommand(newClearCmd(a))
	rootCmd.AddCommand(newEmotionsCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.SetHelpCommand(newHelpCmd())

	return rootCmd
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads config and the logger. Failures here are fatal to startup.
func (a *app) setup() error {
	if a.cfg != nil {
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.cfg = cfg
	a.log = logger
	return nil
}

// withStore wraps a command so it runs with an open store that is always released afterwards
func (a *app) withStore(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.setup(); err != nil {
			return err
		}
		defer a.log.Sync()

		store, err := db.Open(a.cfg.DatabasePath)
		if err != nil {
			a.log.Error("failed to open database", zap.String("path", a.cfg.DatabasePath), zap.Error(err))
			return fmt.Errorf("failed to open database: %w", err)
		}
		a.store = store
		a.log.Debug("database opened", zap.String("path", a.cfg.DatabasePath))

		defer func() {
			if err := store.Close(); err != nil {
				a.log.Warn("failed to close database", zap.Error(err))
			}
			a.store = nil
		}()

		return fn(cmd, args)
	}
}

// loadEmotions reads the catalogue. A failure is only a warning; the list is then empty.
func (a *app) loadEmotions() ([]string, string) {
	emotions, err := catalog.Load(a.cfg.EmotionsFile)
	if err == nil {
		return emotions, ""
	}

	a.log.Warn("emotions file unavailable", zap.String("path", a.cfg.EmotionsFile), zap.Error(err))
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return emotions, fmt.Sprintf("Emotions file %s not found.", a.cfg.EmotionsFile)
	case errors.Is(err, catalog.ErrMalformed):
		return emotions, fmt.Sprintf("Emotions file %s is malformed.", a.cfg.EmotionsFile)
	default:
		return emotions, fmt.Sprintf("Failed to load emotions: %v", err)
	}
}

func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	emotions, warning := a.loadEmotions()
	a.log.Info("starting interface", zap.Int("emotions", len(emotions)))

	return tui.Run(a.store, emotions, tui.Options{
		Animations: a.cfg.UI.Animations,
		Logger:     a.log,
		Warning:    warning,
	})
}
