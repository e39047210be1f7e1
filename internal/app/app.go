package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/multimediallc/aoc2023/internal/answers"
	"github.com/multimediallc/aoc2023/internal/config"
	"github.com/multimediallc/aoc2023/internal/input"
	"github.com/multimediallc/aoc2023/internal/puzzle"
	f "github.com/multimediallc/aoc2023/pkg/functional"
	"go.uber.org/zap"
)

// OutputData holds the results of a run in the order they were solved
type OutputData struct {
	Results []puzzle.Result `json:"results"`
	Skipped []int           `json:"skipped"`
}

// Answers returns the answers of day in part order.
func (od *OutputData) Answers(day int) []int64 {
	return f.Map(f.Filtered(od.Results, func(r puzzle.Result) bool {
		return r.Day == day
	}), func(r puzzle.Result) int64 { return r.Answer })
}

// Config holds the application configuration
type Config struct {
	Root          string
	Days          []int
	Part          int
	Sample        bool
	InputPath     string
	Stdin         io.Reader
	Workers       int
	Verbose       bool
	Logger        *zap.Logger
	WarningBuffer io.Writer
	Reader        input.FileReader
}

// App represents the application with its dependencies
type App struct {
	Conf    *config.Config
	config  *Config
	days    []puzzle.Day
	parts   []int
	locator *input.Locator
	reader  input.FileReader
	log     *zap.Logger
	stdin   *string
}

// New creates a new App instance with the given configuration
func New(cfg Config) (*App, error) {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.WarningBuffer == nil {
		cfg.WarningBuffer = io.Discard
	}
	if cfg.Reader == nil {
		cfg.Reader = input.OSFileReader{}
	}
	parts, err := puzzle.Parts(cfg.Part)
	if err != nil {
		return nil, err
	}

	app := &App{
		config: &cfg,
		parts:  parts,
		reader: cfg.Reader,
		log:    cfg.Logger,
	}

	conf, err := config.ReadConfig(cfg.Root)
	if err != nil {
		app.printWarn("WARNING: Error reading %s - using default config: %v\n", config.FileName, err)
	}
	app.Conf = conf
	if cfg.Workers <= 0 {
		cfg.Workers = conf.Workers
	}
	app.locator = input.NewLocator(config.Resolve(cfg.Root, conf.InputDir), conf.InputGlob)

	numbers := cfg.Days
	if len(numbers) == 0 {
		numbers = conf.Days
	}
	if len(numbers) == 0 {
		numbers = puzzle.Numbers()
	}
	numbers = f.RemoveDuplicates(numbers)
	for _, n := range numbers {
		d, err := puzzle.Lookup(n)
		if err != nil {
			return nil, err
		}
		app.days = append(app.days, d)
	}

	if cfg.InputPath != "" && len(app.days) != 1 {
		return nil, fmt.Errorf("an explicit input needs exactly one day, got %d", len(app.days))
	}
	if cfg.Stdin != nil && len(app.days) != 1 {
		app.printWarn("WARNING: Ignoring stdin: %d days selected\n", len(app.days))
		cfg.Stdin = nil
	}

	app.printDebug("Days: %v, parts: %v, workers: %d\n", numbers, parts, cfg.Workers)
	return app, nil
}

func (a *App) printDebug(format string, args ...interface{}) {
	if a.config.Verbose {
		a.log.Sugar().Debugf(format, args...)
	}
}

func (a *App) printWarn(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(a.config.WarningBuffer, format, args...)
}

// Days returns the selected days in run order.
func (a *App) Days() []puzzle.Day {
	return slices.Clone(a.days)
}

var errNoInput = errors.New("no input")

// load picks the input for one part: an explicit path, then stdin, then the
// embedded sample, then the input directory.
func (a *App) load(d puzzle.Day, part int) (string, error) {
	switch {
	case a.config.InputPath != "":
		if !a.reader.PathExists(a.config.InputPath) {
			return "", fmt.Errorf("input is not a file: %s", a.config.InputPath)
		}
		data, err := a.reader.ReadFile(a.config.InputPath)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case a.config.Stdin != nil:
		if a.stdin == nil {
			text, err := input.ReadAll(a.config.Stdin)
			if err != nil {
				return "", err
			}
			a.stdin = &text
		}
		return *a.stdin, nil
	case a.config.Sample:
		return d.Sample(part)
	}
	path, err := a.locator.Find(d.Number)
	if errors.Is(err, input.ErrNotFound) {
		return "", fmt.Errorf("%w: %v", errNoInput, err)
	}
	if err != nil {
		return "", err
	}
	a.printDebug("Day %d input: %s\n", d.Number, path)
	data, err := a.reader.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Run solves every selected part. Days without an input file are skipped with
// a warning; any solver error stops the run.
func (a *App) Run(ctx context.Context) (*OutputData, error) {
	out := &OutputData{}
	opts := puzzle.Options{Workers: a.config.Workers}
	for _, d := range a.days {
		skipped := false
		for _, part := range a.parts {
			if err := ctx.Err(); err != nil {
				return out, err
			}
			text, err := a.load(d, part)
			if errors.Is(err, errNoInput) {
				a.printWarn("WARNING: No input for day %d: %v\n", d.Number, err)
				skipped = true
				break
			}
			if err != nil {
				return out, fmt.Errorf("day %d: %w", d.Number, err)
			}
			res, err := puzzle.Run(ctx, d, part, text, opts)
			if err != nil {
				return out, err
			}
			a.log.Debug("solved",
				zap.Int("day", res.Day),
				zap.Int("part", res.Part),
				zap.Int64("answer", res.Answer),
				zap.Duration("elapsed", res.Elapsed),
			)
			out.Results = append(out.Results, res)
		}
		if skipped {
			out.Skipped = append(out.Skipped, d.Number)
		}
	}
	return out, nil
}

// Verify runs the selected days and compares the answers with the answers
// file named in aoc.toml.
func (a *App) Verify(ctx context.Context) (*answers.Report, *OutputData, error) {
	out, err := a.Run(ctx)
	if err != nil {
		return nil, out, err
	}
	path := config.Resolve(a.config.Root, a.Conf.Answers)
	a.printDebug("Answers file: %s\n", path)
	expected, err := answers.ReadAnswers(path)
	if err != nil {
		return nil, out, err
	}
	report := answers.Compare(expected, out.Results)
	for _, c := range report.Checks {
		if c.Status == answers.StatusUnknown {
			a.printWarn("WARNING: No expected answer for day %d part %d\n", c.Day, c.Part)
		}
	}
	return &report, out, nil
}

// Listing is one row of the list command.
type Listing struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Input string `json:"input"`
}

// List pairs every registered day with its input file. Input files for days
// that have no solver are reported as warnings.
func (a *App) List() ([]Listing, error) {
	numbers := puzzle.Numbers()
	files, err := a.locator.Discover()
	if err != nil {
		a.printWarn("WARNING: %v\n", err)
	}
	byDay := make(map[int]string)
	for _, file := range files {
		if !slices.Contains(numbers, file.Day) {
			a.printWarn("WARNING: Input without a solver: %s\n", file.Path)
			continue
		}
		if _, seen := byDay[file.Day]; !seen {
			byDay[file.Day] = file.Path
		}
	}
	listings := make([]Listing, 0, len(numbers))
	for _, n := range numbers {
		d, err := puzzle.Lookup(n)
		if err != nil {
			return nil, err
		}
		listings = append(listings, Listing{Day: n, Title: d.Title, Input: byDay[n]})
	}
	return listings, nil
}
