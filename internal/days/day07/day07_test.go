package day07

import (
	"context"
	"errors"
	"testing"

	"github.com/multimediallc/aoc2023/internal/puzzle"
)

func TestClassifyStandard(t *testing.T) {
	tt := []struct {
		cards string
		want  HandType
	}{
		{"22222", FiveOfAKind},
		{"22223", FourOfAKind},
		{"22333", FullHouse},
		{"22234", ThreeOfAKind},
		{"22334", TwoPair},
		{"22345", OnePair},
		{"25346", HighCard},
		{"KTJJT", TwoPair},
		{"JJJJJ", FiveOfAKind},
	}
	for _, tc := range tt {
		if got := Standard.Classify(tc.cards); got != tc.want {
			t.Errorf("Standard.Classify(%s) = %s, want %s", tc.cards, got, tc.want)
		}
	}
}

func TestClassifyWild(t *testing.T) {
	tt := []struct {
		cards string
		want  HandType
	}{
		{"JJJJJ", FiveOfAKind},
		{"JJJJ2", FiveOfAKind},
		{"QJJQ2", FourOfAKind},
		{"T55J5", FourOfAKind},
		{"KTJJT", FourOfAKind},
		{"QQQJA", FourOfAKind},
		{"2233J", FullHouse},
		{"234JJ", ThreeOfAKind},
		{"2345J", OnePair},
		{"32T3K", OnePair},
		{"KK677", TwoPair},
	}
	for _, tc := range tt {
		if got := Wild.Classify(tc.cards); got != tc.want {
			t.Errorf("Wild.Classify(%s) = %s, want %s", tc.cards, got, tc.want)
		}
	}
}

// Every substitution of the jokers must do no better than Classify.
func TestClassifyWildMatchesEnumeration(t *testing.T) {
	hands := []string{"J2345", "JJ234", "J2234", "JJ223", "J2233", "JJJ23", "2J3J4", "AJKJQ"}
	for _, hand := range hands {
		best := HighCard
		var enumerate func(prefix string, rest string)
		enumerate = func(prefix, rest string) {
			if rest == "" {
				best = max(best, Standard.Classify(prefix))
				return
			}
			if rest[0] != joker {
				enumerate(prefix+rest[:1], rest[1:])
				return
			}
			for i := range len(Wild.order) {
				enumerate(prefix+string(Wild.order[i]), rest[1:])
			}
		}
		enumerate("", hand)
		if got := Wild.Classify(hand); got != best {
			t.Errorf("Wild.Classify(%s) = %s, enumeration found %s", hand, got, best)
		}
	}
}

func TestCompare(t *testing.T) {
	hand := func(r Rules, cards string) Hand {
		return Hand{Cards: cards, Type: r.Classify(cards)}
	}
	tt := []struct {
		rules Rules
		a, b  string
		want  int
	}{
		{Standard, "22222", "22222", 0},
		{Standard, "22222", "22223", 1},
		{Standard, "22223", "22233", 1},
		{Standard, "33332", "2AAAA", 1},
		{Standard, "KK677", "KTJJT", 1},
		{Wild, "JKKK2", "QQQQ2", -1},
		{Wild, "KTJJT", "QQQJA", 1},
	}
	for _, tc := range tt {
		if got := tc.rules.Compare(hand(tc.rules, tc.a), hand(tc.rules, tc.b)); got != tc.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSamples(t *testing.T) {
	p1, err := Part1(context.Background(), sample, puzzle.Options{})
	if err != nil || p1 != 6440 {
		t.Errorf("Part1 = %d, %v; want 6440", p1, err)
	}
	p2, err := Part2(context.Background(), sample, puzzle.Options{})
	if err != nil || p2 != 5905 {
		t.Errorf("Part2 = %d, %v; want 5905", p2, err)
	}
}

func TestMalformed(t *testing.T) {
	tt := []string{
		"32T3K",
		"32T3 765",
		"32T3X 765",
		"32T3K many",
	}
	for _, input := range tt {
		if _, err := Part1(context.Background(), input, puzzle.Options{}); !errors.Is(err, puzzle.ErrMalformedInput) {
			t.Errorf("Part1(%q) expected malformed input error, got %v", input, err)
		}
	}
}
