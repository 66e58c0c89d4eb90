// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package main implements the intmap CLI, which builds a sequence of
// integers, transforms every element in place and prints the result.
//
// Usage:
//
//	intmap                              Print "2, 3, 4, 5, 6, " (increment over 1..5)
//	intmap --values -1,0,5 -t negate    Print "1, 0, -5, "
//	intmap -t increment,double --json   Emit the result as JSON
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/kraklabs/intmap/internal/config"
	"github.com/kraklabs/intmap/internal/errors"
	"github.com/kraklabs/intmap/internal/metrics"
	"github.com/kraklabs/intmap/internal/output"
	"github.com/kraklabs/intmap/internal/ui"
	"github.com/kraklabs/intmap/pkg/sequence"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// GlobalFlags holds the parsed command-line flags.
type GlobalFlags struct {
	Values      string
	Transform   string
	ConfigPath  string
	MetricsFile string
	JSON        bool
	NoColor     bool
	Verbose     bool
	Version     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newFlagSet(stderr io.Writer, globals *GlobalFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("intmap", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&globals.Values, "values", "", "Comma-separated integers to map (default 1,2,3,4,5)")
	fs.StringVarP(&globals.Transform, "transform", "t", config.DefaultTransform,
		"Comma-separated transforms applied left to right: "+strings.Join(sequence.Names(), ", "))
	fs.StringVar(&globals.ConfigPath, "config", "", "Path to a YAML config file")
	fs.StringVar(&globals.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file")
	fs.BoolVar(&globals.JSON, "json", false, "Output the result as JSON")
	fs.BoolVar(&globals.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&globals.Verbose, "verbose", "v", false, "Enable debug logging")
	fs.BoolVar(&globals.Version, "version", false, "Show version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `intmap - map a transform over a sequence of integers

Usage:
  intmap [options]

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(stderr, `
Environment Variables:
  %s     Comma-separated integers (overrides the config file)
  %s  Transform list (overrides the config file)
  NO_COLOR          Disable colored output

Examples:
  intmap
  intmap --values -1,0,5 --transform negate
  intmap -t increment,double --json
`, config.EnvValues, config.EnvTransform)
	}
	return fs
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var globals GlobalFlags
	fs := newFlagSet(stderr, &globals)

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return errors.ExitSuccess
		}
		return errors.Report(stderr, errors.NewInputError(
			"Invalid command-line arguments",
			err.Error(),
			"Run 'intmap --help' for usage",
		), false, true)
	}

	if globals.Version {
		fmt.Fprintf(stdout, "intmap version %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		return errors.ExitSuccess
	}

	noColor := globals.NoColor
	if f, ok := stderr.(*os.File); ok {
		noColor = !ui.ColorEnabled(noColor, f)
	} else {
		noColor = true
	}
	ui.InitColors(noColor)
	ui.Out = stderr

	level := slog.LevelInfo
	if globals.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if n := fs.NArg(); n > 0 {
		ui.Warningf("Ignoring %d positional argument(s)", n)
	}

	cfg, err := resolveConfig(fs, globals)
	if err != nil {
		return errors.Report(stderr, err, globals.JSON, noColor)
	}

	transform, err := sequence.Parse(cfg.Transform)
	if err != nil {
		return errors.Report(stderr, errors.FromError("Cannot build transform", err), globals.JSON, noColor)
	}

	met := metrics.New()
	seq := sequence.New(cfg.Values...)

	start := time.Now()
	err = sequence.Map(transform, seq)
	met.ObserveMap(seq.Len(), time.Since(start), err)
	if err != nil {
		return errors.Report(stderr, errors.FromError("Cannot map sequence", err), globals.JSON, noColor)
	}
	logger.Debug("intmap.map.done",
		"transform", cfg.Transform,
		"length", seq.Len(),
		"elapsed", time.Since(start),
	)

	sink := sequence.NewSink(stdout)
	if globals.JSON {
		err = output.SequenceTo(sink, seq, cfg.Transform)
	} else {
		err = sequence.Print(sink, seq)
	}
	if err != nil {
		return errors.Report(stderr, errors.FromError("Cannot print sequence", err), globals.JSON, noColor)
	}

	if globals.MetricsFile != "" {
		if err := met.WriteFile(globals.MetricsFile); err != nil {
			return errors.Report(stderr, errors.NewIOError(
				"Cannot write metrics",
				err.Error(),
				"Check that the directory exists and is writable",
				err,
			), globals.JSON, noColor)
		}
		logger.Debug("intmap.metrics.written", "path", globals.MetricsFile)
		if globals.Verbose {
			ui.Successf("Metrics written to %s", globals.MetricsFile)
		}
	}

	if globals.Verbose {
		ui.Infof("Mapped %s elements with %s", ui.CountText(seq.Len()), ui.Label(cfg.Transform))
	}
	return errors.ExitSuccess
}

// resolveConfig layers defaults, the config file, the environment and flags.
func resolveConfig(fs *pflag.FlagSet, globals GlobalFlags) (config.Config, error) {
	cfg := config.Default()
	if globals.ConfigPath != "" {
		loaded, err := config.Load(globals.ConfigPath)
		if err != nil {
			return cfg, errors.NewConfigError(
				"Cannot load configuration",
				err.Error(),
				"Check the --config path and its YAML syntax",
				err,
			)
		}
		cfg = loaded
	}

	if err := cfg.FromEnv(); err != nil {
		return cfg, errors.NewInputError("Invalid environment", err.Error(), "Use a list like 1,2,3")
	}

	if fs.Changed("values") {
		values, err := config.ParseValues(globals.Values)
		if err != nil {
			return cfg, errors.NewInputError("Invalid --values", err.Error(), "Use a list like --values 1,2,3")
		}
		cfg.Values = values
	}
	if fs.Changed("transform") {
		cfg.Transform = globals.Transform
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.NewInputError(
			"Invalid configuration",
			err.Error(),
			"Set a transform and keep the values under the configured limit",
		)
	}
	return cfg, nil
}
