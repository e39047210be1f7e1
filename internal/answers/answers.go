package answers

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/multimediallc/aoc2023/internal/puzzle"
	"github.com/pelletier/go-toml/v2"
	"github.com/sourcegraph/go-diff/diff"
)

var ErrMismatch = errors.New("answers do not match")

// Expected holds the known answers of one day. A nil part is unknown.
type Expected struct {
	Part1 *int64 `toml:"part1"`
	Part2 *int64 `toml:"part2"`
}

func (e Expected) Part(n int) *int64 {
	if n == 1 {
		return e.Part1
	}
	return e.Part2
}

// Answers maps day numbers to their expected answers.
type Answers map[int]Expected

// ReadAnswers parses an answers file with one table per day:
//
//	[day05]
//	part1 = 35
//	part2 = 46
func ReadAnswers(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading answers file: %w", err)
	}
	return ParseAnswers(data)
}

func ParseAnswers(data []byte) (Answers, error) {
	raw := map[string]Expected{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing answers: %w", err)
	}
	answers := make(Answers, len(raw))
	for key, exp := range raw {
		num, found := strings.CutPrefix(key, "day")
		n, err := strconv.Atoi(num)
		if !found || err != nil {
			return nil, fmt.Errorf("invalid answers table %q: expected dayNN", key)
		}
		answers[n] = exp
	}
	return answers, nil
}

type Status string

const (
	StatusOK       Status = "ok"
	StatusMismatch Status = "mismatch"
	StatusUnknown  Status = "unknown"
)

type Check struct {
	Day      int
	Part     int
	Expected *int64
	Actual   int64
	Status   Status
}

func (c Check) expectedLine() string {
	if c.Expected == nil {
		return fmt.Sprintf("day%02d part %d: ?", c.Day, c.Part)
	}
	return fmt.Sprintf("day%02d part %d: %d", c.Day, c.Part, *c.Expected)
}

func (c Check) actualLine() string {
	return fmt.Sprintf("day%02d part %d: %d", c.Day, c.Part, c.Actual)
}

// Report is the outcome of comparing results to the answers file.
type Report struct {
	Checks []Check
}

// Compare checks every result against the expected answers.
func Compare(expected Answers, results []puzzle.Result) Report {
	var r Report
	for _, res := range results {
		c := Check{Day: res.Day, Part: res.Part, Actual: res.Answer, Status: StatusUnknown}
		if exp, ok := expected[res.Day]; ok {
			c.Expected = exp.Part(res.Part)
		}
		if c.Expected != nil {
			c.Status = StatusOK
			if *c.Expected != res.Answer {
				c.Status = StatusMismatch
			}
		}
		r.Checks = append(r.Checks, c)
	}
	slices.SortStableFunc(r.Checks, func(a, b Check) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return a.Part - b.Part
	})
	return r
}

func (r Report) count(s Status) int {
	n := 0
	for _, c := range r.Checks {
		if c.Status == s {
			n++
		}
	}
	return n
}

func (r Report) OK() bool {
	return r.count(StatusMismatch) == 0
}

func (r Report) Summary() string {
	return fmt.Sprintf("%d ok, %d mismatched, %d unknown", r.count(StatusOK), r.count(StatusMismatch), r.count(StatusUnknown))
}

// Diff renders the mismatched parts as a unified diff from the expected
// answers to the actual ones. It returns nil when nothing mismatched.
func (r Report) Diff() ([]byte, error) {
	if r.OK() {
		return nil, nil
	}
	var body bytes.Buffer
	var origLines, newLines int32
	for _, c := range r.Checks {
		if c.Status == StatusMismatch {
			fmt.Fprintf(&body, "-%s\n+%s\n", c.expectedLine(), c.actualLine())
			origLines++
			newLines++
			continue
		}
		fmt.Fprintf(&body, " %s\n", c.actualLine())
		origLines++
		newLines++
	}
	fd := &diff.FileDiff{
		OrigName: "expected",
		NewName:  "actual",
		Hunks: []*diff.Hunk{{
			OrigStartLine: 1,
			OrigLines:     origLines,
			NewStartLine:  1,
			NewLines:      newLines,
			Body:          body.Bytes(),
		}},
	}
	out, err := diff.PrintFileDiff(fd)
	if err != nil {
		return nil, fmt.Errorf("error rendering answer diff: %w", err)
	}
	return out, nil
}
