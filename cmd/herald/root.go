package main

import (
	"errors"
	"fmt"
	"io"

	"herald/internal/app"
	"herald/internal/channel"
	hcfg "herald/internal/config"
	"herald/internal/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	lang       string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:           "herald",
		Short:         "Send a message through a channel chosen at the prompt",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (default $"+hcfg.EnvConfigPath+")")
	rootCmd.Flags().StringVar(&opts.lang, "lang", "", "Dialogue language (en, ru)")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")

	return rootCmd
}

func run(cmd *cobra.Command, opts rootOptions) error {
	cfg, err := hcfg.Resolve(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("lang") {
		cfg.App.Lang = opts.lang
	}
	if cmd.Flags().Changed("log-level") {
		cfg.App.LogLevel = opts.logLevel
	}

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(cfg.App.LogLevel)
	closer, err := logger.SetupFile(cmd.ErrOrStderr(), logger.FileOptions{
		Path:       cfg.App.LogPath,
		MaxSizeMB:  cfg.App.LogMaxSizeMB,
		MaxBackups: cfg.App.LogMaxBackups,
	})
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if closer != nil {
		defer closeQuietly(closer)
	}

	a, err := app.NewApp(cfg, app.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()})
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	if err := a.Run(cmd.Context()); err != nil {
		var selErr *channel.SelectionError
		if errors.As(err, &selErr) {
			return fmt.Errorf("%s: %d", a.Catalog().InvalidSelection, selErr.Value)
		}
		return err
	}
	return nil
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Warnf("close log file: %v", err)
	}
}
