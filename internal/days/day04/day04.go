package day04

import (
	"context"
	_ "embed"
	"strings"

	"github.com/multimediallc/aoc2023/internal/puzzle"
	f "github.com/multimediallc/aoc2023/pkg/functional"
)

//go:embed sample.txt
var sample string

func init() {
	puzzle.Register(puzzle.Day{
		Number:  4,
		Title:   "Scratchcards",
		Parts:   [2]puzzle.SolveFunc{Part1, Part2},
		Samples: [2]string{sample, sample},
	})
}

type Card struct {
	Winning []int64
	Have    []int64
}

// Matches counts the distinct numbers on the card that are winning numbers.
func (c Card) Matches() int {
	return len(f.Intersection(f.RemoveDuplicates(c.Have), f.RemoveDuplicates(c.Winning)))
}

func parse(input string) ([]Card, error) {
	var cards []Card
	for _, line := range puzzle.Lines(input) {
		_, rest, err := puzzle.Labeled(line)
		if err != nil {
			return nil, err
		}
		winning, have, ok := strings.Cut(rest, "|")
		if !ok {
			return nil, puzzle.Malformedf("missing '|' in %q", line)
		}
		var c Card
		if c.Winning, err = puzzle.Ints(winning); err != nil {
			return nil, err
		}
		if c.Have, err = puzzle.Ints(have); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func Part1(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	cards, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range cards {
		if m := c.Matches(); m > 0 {
			total += 1 << (m - 1)
		}
	}
	return total, nil
}

// Part2 counts cards once every card has won copies of the cards below it.
// won[i] is the number of cards card i produces including itself, filled
// from the bottom up.
func Part2(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	cards, err := parse(input)
	if err != nil {
		return 0, err
	}
	won := make([]int64, len(cards))
	var total int64
	for i := len(cards) - 1; i >= 0; i-- {
		won[i] = 1
		for j := i + 1; j <= i+cards[i].Matches() && j < len(cards); j++ {
			won[i] += won[j]
		}
		total += won[i]
	}
	return total, nil
}
