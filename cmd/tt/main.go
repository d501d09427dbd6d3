// Command tt converts timed-text documents between TTML/IMSC, SCC, SRT,
// and WebVTT through a single canonical document model.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/sandflow/ttconv/internal/appconfig"
	"github.com/sandflow/ttconv/internal/logging"
	"github.com/sandflow/ttconv/state"
)

func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error
	env := state.EnvFromContext(ctx)

	inline := cmd.String("config")
	path := cmd.String("config_file")
	if env.Cfg, err = appconfig.Load(inline, path); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}

	logFile := ""
	if cmd.Bool("debug") {
		logFile = "tt-debug.log"
	}
	if env.Log, err = logging.New(logging.Options{Level: env.Cfg.General.LogLevel, File: logFile}); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	for _, w := range env.Cfg.Warnings() {
		env.Log.Warn("unrecognized configuration key, ignoring", zap.String("key", w))
	}

	env.Log.Debug("program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	return ctx, nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if env.Log != nil {
		env.Log.Debug("program ended", zap.Duration("elapsed", env.Uptime()))
	}
	env.RestoreStdLog()
	return nil
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return usageError{err}
}

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)
	if env.Log != nil {
		env.Log.Error("program ended with error", zap.Error(err))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:            "tt",
		Usage:           "convert timed-text documents between TTML/IMSC, SCC, SRT, and WebVTT",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "inline configuration (JSON or YAML)"},
			&cli.StringFlag{Name: "config_file", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Usage: "dump a debug log and the resolved CDM tree alongside the output"},
		},
		Commands: []*cli.Command{
			{
				Name:         "convert",
				Usage:        "convert INPUT to OUTPUT",
				OnUsageError: usageErrorHandler,
				Action:       runConvert,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "path to the input document"},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "path to the output document"},
					&cli.StringFlag{Name: "itype", Usage: "input format: TTML, SCC, STL, SRT, VTT (inferred from extension if omitted)"},
					&cli.StringFlag{Name: "otype", Usage: "output format: TTML, SRT, VTT (inferred from extension if omitted)"},
					&cli.StringSliceFlag{Name: "filter", Usage: "apply a named filter (repeatable); only `lcd` is recognized"},
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// usageError marks an error as a CLI usage violation, as opposed to any other conversion failure (exit code 1).
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func exitCode(err error) int {
	var u usageError
	if errors.As(err, &u) {
		return 2
	}
	return 1
}
