package day02

import (
	"context"
	_ "embed"
	"strconv"
	"strings"

	"github.com/multimediallc/aoc2023/internal/puzzle"
)

//go:embed sample.txt
var sample string

func init() {
	puzzle.Register(puzzle.Day{
		Number:  2,
		Title:   "Cube Conundrum",
		Parts:   [2]puzzle.SolveFunc{Part1, Part2},
		Samples: [2]string{sample, sample},
	})
}

// Cubes counts cubes by color.
type Cubes struct {
	Red, Green, Blue int64
}

var bag = Cubes{Red: 12, Green: 13, Blue: 14}

func (c Cubes) Fits(limit Cubes) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

func (c Cubes) Max(o Cubes) Cubes {
	return Cubes{Red: max(c.Red, o.Red), Green: max(c.Green, o.Green), Blue: max(c.Blue, o.Blue)}
}

func (c Cubes) Power() int64 {
	return c.Red * c.Green * c.Blue
}

type Game struct {
	ID    int64
	Draws []Cubes
}

func parseDraw(s string) (Cubes, error) {
	var c Cubes
	for _, part := range strings.Split(s, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return c, puzzle.Malformedf("bad draw %q", part)
		}
		n, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return c, puzzle.Malformedf("bad count %q", fields[0])
		}
		switch fields[1] {
		case "red":
			c.Red += n
		case "green":
			c.Green += n
		case "blue":
			c.Blue += n
		default:
			return c, puzzle.Malformedf("unknown color %q", fields[1])
		}
	}
	return c, nil
}

func parseGame(line string) (Game, error) {
	label, rest, err := puzzle.Labeled(line)
	if err != nil {
		return Game{}, err
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(label, "Game "), 10, 64)
	if err != nil {
		return Game{}, puzzle.Malformedf("bad game label %q", label)
	}
	g := Game{ID: id}
	for _, draw := range strings.Split(rest, ";") {
		c, err := parseDraw(draw)
		if err != nil {
			return Game{}, err
		}
		g.Draws = append(g.Draws, c)
	}
	return g, nil
}

func parse(input string) ([]Game, error) {
	var games []Game
	for _, line := range puzzle.Lines(input) {
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

func Part1(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	games, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range games {
		possible := true
		for _, d := range g.Draws {
			if !d.Fits(bag) {
				possible = false
				break
			}
		}
		if possible {
			total += g.ID
		}
	}
	return total, nil
}

func Part2(_ context.Context, input string, _ puzzle.Options) (int64, error) {
	games, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, g := range games {
		var least Cubes
		for _, d := range g.Draws {
			least = least.Max(d)
		}
		total += least.Power()
	}
	return total, nil
}
