// Package day05 follows seeds through the almanac's chain of mapping tables.
package day05

import (
	"context"
	_ "embed"
	"errors"
	"math"
	"strings"

	"github.com/multimediallc/aoc2023/internal/puzzle"
	"github.com/multimediallc/aoc2023/pkg/rangemap"
)

//go:embed sample.txt
var sample string

func init() {
	puzzle.Register(puzzle.Day{
		Number:  5,
		Title:   "If You Give A Seed A Fertilizer",
		Parts:   [2]puzzle.SolveFunc{Part1, Part2},
		Samples: [2]string{sample, sample},
	})
}

type Almanac struct {
	Seeds  []int64
	Stages []*rangemap.Stage
}

// SeedRanges pairs the seed numbers as (start, length).
func (a Almanac) SeedRanges() ([]rangemap.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, puzzle.Malformedf("odd number of seed values (%d)", len(a.Seeds))
	}
	ranges := make([]rangemap.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		if err := checkSpan(a.Seeds[i], a.Seeds[i+1]); err != nil {
			return nil, puzzle.Malformedf("seed range %d %d: %v", a.Seeds[i], a.Seeds[i+1], err)
		}
		ranges = append(ranges, rangemap.Span(a.Seeds[i], a.Seeds[i+1]))
	}
	return ranges, nil
}

// checkSpan reports a negative length or an end past math.MaxInt64.
func checkSpan(start, length int64) error {
	if length < 0 {
		return errors.New("negative length")
	}
	if start > math.MaxInt64-length {
		return errors.New("range end overflows int64")
	}
	return nil
}

func checkOffset(dest, source int64) error {
	if (source < 0 && dest > math.MaxInt64+source) || (source > 0 && dest < math.MinInt64+source) {
		return errors.New("offset overflows int64")
	}
	return nil
}

func parseStage(block []string) (*rangemap.Stage, error) {
	label, ok := strings.CutSuffix(strings.TrimSpace(block[0]), " map:")
	if !ok {
		return nil, puzzle.Malformedf("expected '<label> map:' header, got %q", block[0])
	}
	rules := make([]rangemap.Rule, 0, len(block)-1)
	for _, line := range block[1:] {
		nums, err := puzzle.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(nums) != 3 {
			return nil, puzzle.Malformedf("%s: expected 'dest source length', got %q", label, line)
		}
		for _, err := range []error{checkSpan(nums[1], nums[2]), checkSpan(nums[0], nums[2]), checkOffset(nums[0], nums[1])} {
			if err != nil {
				return nil, puzzle.Malformedf("%s: %v in %q", label, err, line)
			}
		}
		rules = append(rules, rangemap.NewRule(nums[0], nums[1], nums[2]))
	}
	stage, err := rangemap.NewStage(label, rules...)
	if err != nil {
		return nil, puzzle.Malformedf("%v", err)
	}
	return stage, nil
}

func Parse(input string) (Almanac, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) == 0 {
		return Almanac{}, puzzle.Malformedf("empty almanac")
	}
	label, rest, err := puzzle.Labeled(blocks[0][0])
	if err != nil {
		return Almanac{}, err
	}
	if label != "seeds" || len(blocks[0]) != 1 {
		return Almanac{}, puzzle.Malformedf("expected a single 'seeds:' line, got %q", blocks[0])
	}
	var a Almanac
	if a.Seeds, err = puzzle.Ints(rest); err != nil {
		return Almanac{}, err
	}
	for _, block := range blocks[1:] {
		stage, err := parseStage(block)
		if err != nil {
			return Almanac{}, err
		}
		a.Stages = append(a.Stages, stage)
	}
	return a, nil
}

func emptyResult(err error) error {
	if errors.Is(err, rangemap.ErrEmptyResult) {
		return puzzle.ErrEmptyResult
	}
	return err
}

// Part1 maps each seed on its own and returns the lowest location.
func Part1(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	loc, err := rangemap.NewPipeline(a.Stages).MinValue(a.Seeds)
	return loc, emptyResult(err)
}

// Part2 treats the seeds as ranges and splits them at every rule boundary.
func Part2(ctx context.Context, input string, opts puzzle.Options) (int64, error) {
	a, err := Parse(input)
	if err != nil {
		return 0, err
	}
	seeds, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	p := rangemap.NewPipeline(a.Stages, rangemap.WithWorkers(opts.Workers))
	loc, err := p.MinStart(ctx, seeds)
	return loc, emptyResult(err)
}
