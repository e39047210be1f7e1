package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/multimediallc/aoc2023/internal/answers"
	"github.com/multimediallc/aoc2023/internal/app"
	_ "github.com/multimediallc/aoc2023/internal/days"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const version = "v0.5.0"

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(arg), "day"))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		days = append(days, n)
	}
	return days, nil
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Value:   "./",
			Usage:   "Directory holding aoc.toml",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "default",
			Usage:   "Output format.  Allowed values are: default, one-line, and json",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Log debug output to stderr",
		},
	}
}

func solveFlags() []cli.Flag {
	return append(commonFlags(),
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "Read the input from this file (single day only)",
		},
		&cli.BoolFlag{
			Name:    "sample",
			Aliases: []string{"s"},
			Usage:   "Use the embedded sample inputs",
		},
		&cli.IntFlag{
			Name:    "part",
			Aliases: []string{"p"},
			Value:   0,
			Usage:   "Part to solve (1 or 2, 0 for both)",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Value:   0,
			Usage:   "Worker limit for parallel stages (0 uses the config)",
		},
	)
}

// session wires an App from the command line and flushes its warnings to
// stderr once the action finishes.
func session(cCtx *cli.Context, stdin io.Reader, action func(a *app.App, format OutputFormat) error) error {
	days, err := parseDays(cCtx.Args().Slice())
	if err != nil {
		return err
	}
	verbose := cCtx.Bool("verbose")
	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	warningBuffer := bytes.NewBuffer([]byte{})
	defer func() { _, _ = warningBuffer.WriteTo(cCtx.App.ErrWriter) }()

	cfg := app.Config{
		Root:          cCtx.String("root"),
		Days:          days,
		Part:          cCtx.Int("part"),
		Sample:        cCtx.Bool("sample"),
		InputPath:     cCtx.String("input"),
		Workers:       cCtx.Int("workers"),
		Verbose:       verbose,
		Logger:        logger,
		WarningBuffer: warningBuffer,
	}
	if cfg.InputPath == "" && !cfg.Sample && len(days) == 1 {
		cfg.Stdin = stdin
	}
	a, err := app.New(cfg)
	if err != nil {
		return err
	}

	format := a.Conf.Output.Format
	if cCtx.IsSet("format") || format == "" {
		format = cCtx.String("format")
	}
	outputFormat, err := validateFormat(format)
	if err != nil {
		return err
	}
	return action(a, outputFormat)
}

func newCLI(stdout, stderr io.Writer, stdin io.Reader) *cli.App {
	return &cli.App{
		Name:      "aoc",
		Usage:     "Advent of Code 2023 solvers",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:        "run",
				Aliases:     []string{"r"},
				Usage:       "Solve one or more days",
				UsageText:   "aoc run [options] [day1] [day2]...",
				Description: "Solve the given days, or every registered day if none are given. Inputs are read from --input, piped stdin, the embedded samples, or the input directory configured in aoc.toml.",
				Flags:       solveFlags(),
				Action: func(cCtx *cli.Context) error {
					return session(cCtx, stdin, func(a *app.App, format OutputFormat) error {
						out, err := a.Run(cCtx.Context)
						if err != nil {
							return err
						}
						return writeResults(cCtx.App.Writer, out.Results, format, a.Conf.Output.Timing)
					})
				},
			},
			{
				Name:        "list",
				Aliases:     []string{"l"},
				Usage:       "List registered days and their inputs",
				UsageText:   "aoc list [options]",
				Description: "List every registered day with the input file found for it. Input files for days without a solver are reported as warnings.",
				Flags:       commonFlags(),
				Action: func(cCtx *cli.Context) error {
					return session(cCtx, nil, func(a *app.App, format OutputFormat) error {
						listings, err := a.List()
						if err != nil {
							return err
						}
						return writeListings(cCtx.App.Writer, listings, format)
					})
				},
			},
			{
				Name:        "verify",
				Aliases:     []string{"c"},
				Usage:       "Check answers against the answers file",
				UsageText:   "aoc verify [options] [day1] [day2]...",
				Description: "Solve the given days and compare the answers with the answers file named in aoc.toml. Mismatches are printed as a unified diff.",
				Flags:       solveFlags(),
				Action: func(cCtx *cli.Context) error {
					return session(cCtx, stdin, func(a *app.App, format OutputFormat) error {
						report, _, err := a.Verify(cCtx.Context)
						if err != nil {
							return err
						}
						if report.OK() {
							_, _ = fmt.Fprintln(cCtx.App.Writer, report.Summary())
							return nil
						}
						d, err := report.Diff()
						if err != nil {
							return err
						}
						_, _ = cCtx.App.Writer.Write(d)
						return fmt.Errorf("%w: %s", answers.ErrMismatch, report.Summary())
					})
				},
			},
		},
	}
}

func main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print version",
	}
	cli.VersionPrinter = func(cCtx *cli.Context) {
		_, _ = fmt.Fprintln(cCtx.App.Writer, cCtx.App.Version)
	}

	err := newCLI(os.Stdout, os.Stderr, puzzleStdin()).RunContext(context.Background(), os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
