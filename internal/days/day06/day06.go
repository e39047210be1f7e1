package day06

import (
	"context"
	_ "embed"
	"math"
	"strings"

	"github.com/multimediallc/aoc2023/internal/puzzle"
	f "github.com/multimediallc/aoc2023/pkg/functional"
)

//go:embed sample.txt
var sample string

func init() {
	puzzle.Register(puzzle.Day{
		Number:  6,
		Title:   "Wait For It",
		Parts:   [2]puzzle.SolveFunc{Part1, Part2},
		Samples: [2]string{sample, sample},
	})
}

type Race struct {
	Time     int64
	Distance int64
}

func (r Race) beats(hold int64) bool {
	return hold*(r.Time-hold) > r.Distance
}

// WaysToWin counts hold times h in [0, Time] with h*(Time-h) > Distance.
// The winning holds form one interval centred on Time/2; its lower edge is
// estimated from the quadratic and then corrected exactly.
func (r Race) WaysToWin() int64 {
	mid := r.Time / 2
	if !r.beats(mid) {
		return 0
	}
	disc := float64(r.Time*r.Time) - 4*float64(r.Distance)
	lo := max(int64((float64(r.Time)-math.Sqrt(disc))/2), 0)
	for lo > 0 && r.beats(lo - 1) {
		lo--
	}
	for !r.beats(lo) {
		lo++
	}
	// symmetric around Time/2
	return r.Time - 2*lo + 1
}

func parseRows(input string, join bool) ([]int64, []int64, error) {
	lines := puzzle.Lines(input)
	if len(lines) != 2 {
		return nil, nil, puzzle.Malformedf("expected Time and Distance rows, got %d lines", len(lines))
	}
	rows := make([][]int64, 2)
	for i, want := range []string{"Time", "Distance"} {
		label, rest, err := puzzle.Labeled(lines[i])
		if err != nil {
			return nil, nil, err
		}
		if label != want {
			return nil, nil, puzzle.Malformedf("expected %s row, got %q", want, label)
		}
		if join {
			rest = strings.Join(strings.Fields(rest), "")
		}
		if rows[i], err = puzzle.Ints(rest); err != nil {
			return nil, nil, err
		}
	}
	if len(rows[0]) != len(rows[1]) {
		return nil, nil, puzzle.Malformedf("%d times but %d distances", len(rows[0]), len(rows[1]))
	}
	return rows[0], rows[1], nil
}

func parse(input string, join bool) ([]Race, error) {
	times, distances, err := parseRows(input, join)
	if err != nil {
		return nil, err
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Distance: distances[i]}
	}
	return races, nil
}

func solve(input string, join bool) (int64, error) {
	races, err := parse(input, join)
	if err != nil {
		return 0, err
	}
	if len(races) == 0 {
		return 0, puzzle.ErrEmptyResult
	}
	return f.Product(f.Map(races, Race.WaysToWin)), nil
}

func Part1(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	return solve(input, false)
}

// Part2 reads each row as a single number with the spaces removed.
func Part2(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	return solve(input, true)
}
