// Package day07 ranks Camel Cards hands.
package day07

import (
	"cmp"
	"context"
	_ "embed"
	"slices"
	"strconv"
	"strings"

	"github.com/multimediallc/aoc2023/internal/puzzle"
)

//go:embed sample.txt
var sample string

func init() {
	puzzle.Register(puzzle.Day{
		Number:  7,
		Title:   "Camel Cards",
		Parts:   [2]puzzle.SolveFunc{Part1, Part2},
		Samples: [2]string{sample, sample},
	})
}

type HandType int

const (
	HighCard HandType = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (t HandType) String() string {
	switch t {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case FiveOfAKind:
		return "five of a kind"
	}
	return "HandType(" + strconv.Itoa(int(t)) + ")"
}

const (
	handSize = 5
	joker    = 'J'
)

// Rules decides card strength and whether jokers are wild.
type Rules struct {
	order  string
	jokers bool
}

var (
	Standard = Rules{order: "23456789TJQKA"}
	Wild     = Rules{order: "J23456789TQKA", jokers: true}
)

func (r Rules) strength(c byte) int {
	return strings.IndexByte(r.order, c)
}

// Classify returns the best hand type. With wild jokers the joker count is
// added to the most frequent other card: every hand type is determined by
// its sorted count multiset, and topping up the largest group always gives
// the strongest multiset.
func (r Rules) Classify(cards string) HandType {
	counts := map[byte]int{}
	jokers := 0
	for i := range len(cards) {
		if r.jokers && cards[i] == joker {
			jokers++
			continue
		}
		counts[cards[i]]++
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return cmp.Compare(b, a) })
	for len(groups) < 2 {
		groups = append(groups, 0)
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

type Hand struct {
	Cards string
	Bid   int64
	Type  HandType
}

// Compare orders hands by type, then card by card from the left.
func (r Rules) Compare(a, b Hand) int {
	if c := cmp.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	for i := range handSize {
		if c := cmp.Compare(r.strength(a.Cards[i]), r.strength(b.Cards[i])); c != 0 {
			return c
		}
	}
	return 0
}

func (r Rules) parse(input string) ([]Hand, error) {
	lines := puzzle.Lines(input)
	hands := make([]Hand, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, puzzle.Malformedf("expected 'cards bid', got %q", line)
		}
		cards := fields[0]
		if len(cards) != handSize {
			return nil, puzzle.Malformedf("hand %q does not have %d cards", cards, handSize)
		}
		for i := range len(cards) {
			if r.strength(cards[i]) < 0 {
				return nil, puzzle.Malformedf("unknown card %q in %q", cards[i], cards)
			}
		}
		bid, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, puzzle.Malformedf("bad bid %q", fields[1])
		}
		hands = append(hands, Hand{Cards: cards, Bid: bid, Type: r.Classify(cards)})
	}
	return hands, nil
}

// Winnings sums bid × rank with the weakest hand ranked 1.
func (r Rules) Winnings(input string) (int64, error) {
	hands, err := r.parse(input)
	if err != nil {
		return 0, err
	}
	slices.SortFunc(hands, r.Compare)
	var total int64
	for i, h := range hands {
		total += h.Bid * int64(i+1)
	}
	return total, nil
}

func Part1(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	return Standard.Winnings(input)
}

func Part2(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	return Wild.Winnings(input)
}
