package day01

import (
	"context"
	"errors"
	"testing"

	"github.com/multimediallc/aoc2023/internal/puzzle"
)

func TestCalibration(t *testing.T) {
	tt := []struct {
		line  string
		words bool
		want  int64
	}{
		{"1abc2", false, 12},
		{"treb7uchet", false, 77},
		{"two1nine", false, 11},
		{"two1nine", true, 29},
		{"eightwothree", true, 83},
		{"xtwone3four", true, 24},
		{"zoneight234", true, 14},
		{"oneight", true, 18},
	}
	for _, tc := range tt {
		got, err := calibration(tc.line, tc.words)
		if err != nil {
			t.Errorf("calibration(%q) unexpected error: %v", tc.line, err)
			continue
		}
		if got != tc.want {
			t.Errorf("calibration(%q, %v) = %d, want %d", tc.line, tc.words, got, tc.want)
		}
	}
}

func TestSamples(t *testing.T) {
	tt := []struct {
		name  string
		solve puzzle.SolveFunc
		input string
		want  int64
	}{
		{"part 1", Part1, sample1, 142},
		{"part 2", Part2, sample2, 281},
		{"part 2 on digits only", Part2, sample1, 142},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.solve(context.Background(), tc.input, puzzle.Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestNoDigit(t *testing.T) {
	_, err := Part1(context.Background(), sample2, puzzle.Options{})
	if !errors.Is(err, puzzle.ErrMalformedInput) {
		t.Errorf("expected malformed input error, got %v", err)
	}
}
