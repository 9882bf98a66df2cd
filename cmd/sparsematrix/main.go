// SPDX-License-Identifier: MIT

// Command sparsematrix adds, subtracts or multiplies two sparse matrix files
// and writes the result in the same text format.
//
// Usage:
//
//	sparsematrix [-config file.yaml] [-input dir] [-output dir]
//	             [-op add|subtract|multiply] [-left a.txt -right b.txt]
//	             [-strategy naive|grouped] [-workers n] [-log-level info] [-dev]
//
// Without -left/-right the first two *.txt files of the input directory
// (sorted by name) are used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/sparsemat/internal/cli"
	"github.com/katalvlaran/sparsemat/internal/config"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without process exit, so it can be driven from tests.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	setupLog := logger.WithName("setup")
	setupLog.V(1).Info("configuration", "inputDir", cfg.InputDir, "outputDir", cfg.OutputDir,
		"operation", cfg.Operation, "strategy", cfg.Strategy, "workers", cfg.Workers)

	out, err := cli.New(cfg, logger).Run(ctx)
	if err != nil {
		setupLog.Error(err, "operation failed")
		return exitFailure
	}
	setupLog.Info("done", "result", out)

	return exitOK
}

// parseConfig resolves defaults, then the optional YAML file, then flags
// that were set explicitly on the command line.
func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("sparsematrix", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	var (
		cfgPath = fs.String("config", "", "YAML configuration file.")
		flagCfg config.Config
	)
	fs.StringVar(&flagCfg.InputDir, "input", def.InputDir, "Directory holding the input matrices.")
	fs.StringVar(&flagCfg.OutputDir, "output", def.OutputDir, "Directory for the result file.")
	fs.StringVar(&flagCfg.Operation, "op", def.Operation, "Operation: add, subtract or multiply.")
	fs.StringVar(&flagCfg.Left, "left", "", "Left operand file name inside the input directory.")
	fs.StringVar(&flagCfg.Right, "right", "", "Right operand file name inside the input directory.")
	fs.StringVar(&flagCfg.Strategy, "strategy", def.Strategy, "Multiplication kernel: naive or grouped.")
	fs.IntVar(&flagCfg.Workers, "workers", def.Workers, "Goroutines used by multiply.")
	fs.StringVar(&flagCfg.LogLevel, "log-level", def.LogLevel, "Log level: debug, info or error.")
	fs.BoolVar(&flagCfg.Development, "dev", def.Development, "Human-readable development logging.")
	if err := fs.Parse(args); err != nil {
		return def, err
	}
	if fs.NArg() > 0 {
		return def, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := def
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return def, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputDir = flagCfg.InputDir
		case "output":
			cfg.OutputDir = flagCfg.OutputDir
		case "op":
			cfg.Operation = flagCfg.Operation
		case "left":
			cfg.Left = flagCfg.Left
		case "right":
			cfg.Right = flagCfg.Right
		case "strategy":
			cfg.Strategy = flagCfg.Strategy
		case "workers":
			cfg.Workers = flagCfg.Workers
		case "log-level":
			cfg.LogLevel = flagCfg.LogLevel
		case "dev":
			cfg.Development = flagCfg.Development
		}
	})

	return cfg, cfg.Validate()
}

// newLogger builds a zap logger writing to w and exposes it through logr.
func newLogger(cfg config.Config, w io.Writer) (logr.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return logr.Discard(), err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)
	if cfg.Development {
		encCfg = zap.NewDevelopmentEncoderConfig()
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	zl := zap.New(core, zap.AddStacktrace(zapcore.DPanicLevel))

	return zapr.NewLogger(zl).WithName("sparsematrix"), nil
}
