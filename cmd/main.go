package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"focusguard/internal/app"
	"focusguard/internal/core/monitor"
	"focusguard/internal/storage"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	options := &rootOptions{}

	root := &cobra.Command{
		Use:           "focusguard",
		Short:         "Pomodoro focus timer with distraction blocking",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(contextOrBackground(cmd), options)
		},
	}
	root.PersistentFlags().StringVar(&options.configPath, "config", "", "settings file (default: user config dir)")
	root.PersistentFlags().StringVar(&options.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newRunCmd(options))
	root.AddCommand(newTUICmd(options))
	root.AddCommand(newStatsCmd(options))
	root.AddCommand(newCheckCmd(options))
	return root
}

func (options *rootOptions) appOptions() app.Options {
	return app.Options{
		ConfigPath: options.configPath,
		LogLevel:   options.logLevel,
		ConsoleLog: true,
	}
}

func newRunCmd(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the desktop timer (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(contextOrBackground(cmd), options)
		},
	}
}

func newTUICmd(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(contextOrBackground(cmd), options)
		},
	}
}

func newStatsCmd(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print completed session statistics",
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			application, err := app.New(contextOrBackground(cmd), options.appOptions())
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, application.Close())
			}()

			stats := application.Ledger.Stats()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "completed sessions: %d\n", stats.CompletedSessions)
			_, _ = fmt.Fprintf(out, "total minutes:      %d\n", stats.TotalMinutes)
			_, _ = fmt.Fprintf(out, "streak:             %d\n", stats.Streak)
			return nil
		},
	}
}

func newCheckCmd(options *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <destination>",
		Short: "Test a window title or URL against the block list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := app.ResolveConfigPath(options.configPath)
			if err != nil {
				return err
			}
			settings, err := storage.LoadSettings(configPath)
			if err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v (using default block list)\n", err)
			}

			match, found := monitor.NewBlockList(settings.BlockList).Match(args[0])
			if !found {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "allowed: %s\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "blocked: %s (matches %s)\n", args[0], match)
			return nil
		},
	}
}

func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
