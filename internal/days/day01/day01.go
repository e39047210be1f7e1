// Package day01 recovers calibration values from lines of text.
package day01

import (
	"context"
	_ "embed"
	"strings"

	"github.com/multimediallc/aoc2023/internal/puzzle"
	f "github.com/multimediallc/aoc2023/pkg/functional"
)

var (
	//go:embed sample1.txt
	sample1 string
	//go:embed sample2.txt
	sample2 string
)

func init() {
	puzzle.Register(puzzle.Day{
		Number:  1,
		Title:   "Trebuchet?!",
		Parts:   [2]puzzle.SolveFunc{Part1, Part2},
		Samples: [2]string{sample1, sample2},
	})
}

var spelled = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at line[i]. Spelled digits only count
// when words is set.
func digitAt(line string, i int, words bool) (int64, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int64(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for n, word := range spelled {
		if strings.HasPrefix(line[i:], word) {
			return int64(n), true
		}
	}
	return 0, false
}

func calibration(line string, words bool) (int64, error) {
	first, last := int64(-1), int64(-1)
	for i := range len(line) {
		if d, ok := digitAt(line, i, words); ok {
			first = d
			break
		}
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, words); ok {
			last = d
			break
		}
	}
	if first < 0 {
		return 0, puzzle.Malformedf("no digit in %q", line)
	}
	return first*10 + last, nil
}

func solve(input string, words bool) (int64, error) {
	lines := puzzle.Lines(input)
	values := make([]int64, 0, len(lines))
	for _, line := range lines {
		v, err := calibration(line, words)
		if err != nil {
			return 0, err
		}
		values = append(values, v)
	}
	return f.Sum(values), nil
}

func Part1(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	return solve(input, false)
}

func Part2(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	return solve(input, true)
}
