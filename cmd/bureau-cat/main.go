// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/cat/lib/bufsize"
	"github.com/bureau-foundation/cat/lib/config"
	"github.com/bureau-foundation/cat/lib/cook"
	"github.com/bureau-foundation/cat/lib/dispatch"
	"github.com/bureau-foundation/cat/lib/kcopy"
	"github.com/bureau-foundation/cat/lib/options"
	"github.com/bureau-foundation/cat/lib/output"
	"github.com/bureau-foundation/cat/lib/process"
	"github.com/bureau-foundation/cat/lib/rawcopy"
	"github.com/bureau-foundation/cat/lib/source"
	"github.com/bureau-foundation/cat/lib/version"
)

const programName = "bureau-cat"

const debugVariable = "BUREAU_CAT_DEBUG"

type params struct {
	options.Options

	Config  string `flag:"config" desc:"load tuning from this YAML or JSONC file"`
	Version bool   `flag:"version" desc:"print version information and exit"`
}

// environment is the process state run works against.
type environment struct {
	stdin  int
	stdout int
	stderr *os.File
	getenv func(string) string
}

func main() {
	code, err := run(os.Args[1:], environment{
		stdin:  0,
		stdout: 1,
		stderr: os.Stderr,
		getenv: os.Getenv,
	})
	if err != nil {
		// A reader that went away is not worth a diagnostic.
		if errors.Is(err, unix.EPIPE) {
			os.Exit(process.FailureStatus)
		}
		process.Fatal(programName, err)
	}
	os.Exit(code)
}

// run returns the exit status for a completed run, or an error that
// aborted it.
func run(arguments []string, env environment) (int, error) {
	var p params
	flagSet := options.NewFlagSet(programName, &p)
	flagSet.SetOutput(env.stderr)
	flagSet.Usage = func() { printUsage(env.stderr, flagSet) }

	if err := flagSet.Parse(arguments); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0, nil
		}
		process.Report(env.stderr, programName, err)
		printUsage(env.stderr, flagSet)
		return process.FailureStatus, nil
	}

	if p.Version {
		line := fmt.Sprintf("%s %s\n", programName, version.Current())
		if _, err := rawcopy.WriteFull(rawcopy.FD(env.stdout), []byte(line)); err != nil {
			return 0, err
		}
		return 0, nil
	}

	cfg, err := loadConfig(p.Config)
	if err != nil {
		return 0, err
	}
	level, _ := cfg.Level()
	if env.getenv(debugVariable) != "" {
		level = slog.LevelDebug
	}
	logger := newLogger(env.stderr, level)

	stream := output.New(env.stdout, "stdout", p.Unbuffered)
	dispatcher, err := dispatch.New(dispatch.Config{
		Options:   p.Options,
		Output:    stream,
		Opener:    source.NewOpener(source.NewStdin(env.stdin)),
		Decoder:   cook.DecoderForLocale(env.getenv),
		Sizer:     bufsize.NewPolicy(env.stdout, bufsize.SystemFacts{}, cfg.Tuning()),
		CopyRange: kcopy.System,
		Logger:    logger,
	})
	if err != nil {
		return 0, err
	}

	result, err := dispatcher.Run(flagSet.Args())
	if err != nil {
		return 0, err
	}
	logger.Debug("run complete", "inputs", result.Inputs, "failures", result.Failures)
	return result.ExitCode(), nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "usage: %s [-belnstuv] [file ...]\n\n", programName)
	fmt.Fprint(w, flagSet.FlagUsages())
}
