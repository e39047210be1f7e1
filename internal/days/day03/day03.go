package day03

import (
	"context"
	_ "embed"

	"github.com/multimediallc/aoc2023/internal/puzzle"
)

//go:embed sample.txt
var sample string

func init() {
	puzzle.Register(puzzle.Day{
		Number:  3,
		Title:   "Gear Ratios",
		Parts:   [2]puzzle.SolveFunc{Part1, Part2},
		Samples: [2]string{sample, sample},
	})
}

// Number is a run of digits on row Y spanning columns [X, X+Len).
type Number struct {
	Value int64
	X, Y  int
	Len   int
}

// Touches reports whether the cell (x, y) is in the number's 8-neighbourhood.
func (n Number) Touches(x, y int) bool {
	return y >= n.Y-1 && y <= n.Y+1 && x >= n.X-1 && x <= n.X+n.Len
}

type schematic struct {
	grid    []string
	numbers []Number
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c byte) bool {
	if c == '.' || isDigit(c) {
		return false
	}
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') || (c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}

func parse(input string) (schematic, error) {
	s := schematic{grid: puzzle.Lines(input)}
	for y, row := range s.grid {
		for x := 0; x < len(row); {
			c := row[x]
			if c > '~' || (c < '!' && c != ' ') {
				return s, puzzle.Malformedf("unexpected byte %q at %d,%d", c, x, y)
			}
			if !isDigit(c) {
				x++
				continue
			}
			n := Number{X: x, Y: y}
			for x < len(row) && isDigit(row[x]) {
				n.Value = n.Value*10 + int64(row[x]-'0')
				x++
			}
			n.Len = x - n.X
			s.numbers = append(s.numbers, n)
		}
	}
	return s, nil
}

func (s schematic) nextToSymbol(n Number) bool {
	for y := max(n.Y-1, 0); y <= min(n.Y+1, len(s.grid)-1); y++ {
		row := s.grid[y]
		for x := max(n.X-1, 0); x <= min(n.X+n.Len, len(row)-1); x++ {
			if isSymbol(row[x]) {
				return true
			}
		}
	}
	return false
}

func Part1(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, n := range s.numbers {
		if s.nextToSymbol(n) {
			total += n.Value
		}
	}
	return total, nil
}

// Part2 sums the gear ratios: products of the two numbers around each '*'
// that touches exactly two numbers.
func Part2(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for y, row := range s.grid {
		for x := range len(row) {
			if row[x] != '*' {
				continue
			}
			var adjacent []int64
			for _, n := range s.numbers {
				if n.Touches(x, y) {
					adjacent = append(adjacent, n.Value)
				}
			}
			if len(adjacent) == 2 {
				total += adjacent[0] * adjacent[1]
			}
		}
	}
	return total, nil
}
