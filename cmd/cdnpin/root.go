package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/cdnpin/cmd/cdnpin/commands"
	"github.com/walteh/cdnpin/cmd/cdnpin/opts"
	"github.com/walteh/cdnpin/pkg/config"
	"github.com/walteh/cdnpin/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile  string
	debug       bool
	store       string
	concurrency int
)

func newRootCmd() *cobra.Command {
	ropts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "cdnpin",
		Short: "Pin stale CDN asset references across a fleet of repositories",
		Long: `cdnpin finds files that reference outdated versioned asset URLs using
code search, keeps a local mirror of every repository they live in, and
rewrites the stale references to a pinned version.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(debug)

			if err := loadRootOpts(cmd, ropts); err != nil {
				return err
			}

			cmd.SetContext(log.NewContext(cmd.Context(), ropts.Console))
			return nil
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewRunCmd(ropts),
		commands.NewSyncCmd(ropts),
		commands.NewRewriteCmd(ropts),
		commands.NewSearchCmd(ropts),
	)

	return rootCmd
}

// loadRootOpts loads the config, applies flag overrides and fills in ropts
func loadRootOpts(cmd *cobra.Command, ropts *opts.RootOpts) error {
	ctx := cmd.Context()

	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(ctx, configFile)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
	}

	if cmd.Flags().Changed("store") {
		cfg.Store = store
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = concurrency
	}
	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating config: %w", err)
	}

	abs, err := filepath.Abs(cfg.Store)
	if err != nil {
		return errors.Errorf("getting absolute store path: %w", err)
	}
	cfg.Store = abs

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	ropts.Config = cfg
	ropts.Console = log.New(cmd.ErrOrStderr(), level)
	ropts.Debug = debug

	zerolog.Ctx(ctx).Debug().Stringer("config", cfg).Msg("configuration loaded")

	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (.yaml, .json, .hcl or .toml); built-in auth0 defaults when empty")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&store, "store", config.DefaultStore, "directory holding the repository mirrors")
	cmd.PersistentFlags().IntVar(&concurrency, "concurrency", 0, "maximum concurrent tasks per phase, 0 for no limit")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}
