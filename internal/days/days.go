// Package days registers every solver with the puzzle registry. Import it for
// its side effects.
package days

import (
	_ "github.com/multimediallc/aoc2023/internal/days/day01"
	_ "github.com/multimediallc/aoc2023/internal/days/day02"
	_ "github.com/multimediallc/aoc2023/internal/days/day03"
	_ "github.com/multimediallc/aoc2023/internal/days/day04"
	_ "github.com/multimediallc/aoc2023/internal/days/day05"
	_ "github.com/multimediallc/aoc2023/internal/days/day06"
	_ "github.com/multimediallc/aoc2023/internal/days/day07"
	_ "github.com/multimediallc/aoc2023/internal/days/day08"
)
