package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rdraksharam/portfolio/internal/config"
	"github.com/rdraksharam/portfolio/internal/content"
	"github.com/rdraksharam/portfolio/internal/logger"
)

type rootFlags struct {
	configPath  string
	contentPath string
	logLevel    string
}

// app is what every command needs once flags and config are resolved.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	content *content.Model
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve or export the portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand serves the site
			return runServe(cmd.Context(), flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flags.contentPath, "content", "", "Path to a YAML content file replacing the built-in content")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newBuildCmd(flags))

	return cmd
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

func newBuildCmd(flags *rootFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the rendered site to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(flags)
			if err != nil {
				return err
			}
			s, err := newServer(a)
			if err != nil {
				return err
			}
			if err := s.export(out); err != nil {
				return err
			}
			a.log.WithFields(map[string]any{"dir": out}).Info("site exported")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "Output directory")
	return cmd
}

func runServe(ctx context.Context, flags *rootFlags) error {
	a, err := setup(flags)
	if err != nil {
		return err
	}
	s, err := newServer(a)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return s.run(ctx, a.cfg.Addr())
}

// setup resolves config, logger and content; flags win over config values.
func setup(flags *rootFlags) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.contentPath != "" {
		cfg.ContentPath = flags.contentPath
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, HumanReadable: cfg.LogHuman})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	m, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, err
	}
	if cfg.ContentPath != "" {
		log.WithFields(map[string]any{"path": cfg.ContentPath}).Info("loaded content")
	}

	return &app{cfg: cfg, log: log, content: m}, nil
}
