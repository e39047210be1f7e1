package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrEmptyResult    = errors.New("empty result")
	ErrUnknownDay     = errors.New("unknown day")
	ErrInvalidPart    = errors.New("invalid part")
)

// Malformedf returns an error wrapping ErrMalformedInput.
func Malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// Options are runtime knobs passed to every solver.
type Options struct {
	Workers int
}

type SolveFunc func(ctx context.Context, input string, opts Options) (int64, error)

// Day is one puzzle. Samples holds the worked example for each part; the two
// entries are often the same text.
type Day struct {
	Number  int
	Title   string
	Parts   [2]SolveFunc
	Samples [2]string
}

// Sample returns the embedded example input for part (1 or 2).
func (d Day) Sample(part int) (string, error) {
	if part != 1 && part != 2 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPart, part)
	}
	return d.Samples[part-1], nil
}

var (
	registryMu sync.RWMutex
	registry   = map[int]Day{}
)

// Register adds a day to the registry. It is meant to be called from init and
// panics when the day number is taken.
func Register(d Day) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[d.Number]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", d.Number))
	}
	registry[d.Number] = d
}

func Lookup(n int) (Day, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[n]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
	}
	return d, nil
}

// Numbers returns the registered day numbers in ascending order.
func Numbers() []int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ns := make([]int, 0, len(registry))
	for n := range registry {
		ns = append(ns, n)
	}
	sort.Ints(ns)
	return ns
}

// Result is the timed answer of one part.
type Result struct {
	Day     int           `json:"day"`
	Part    int           `json:"part"`
	Answer  int64         `json:"answer"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

func (r Result) String() string {
	return fmt.Sprintf("Part %d: %d [%v]", r.Part, r.Answer, r.Elapsed)
}

// Run solves one part of d and times it.
func Run(ctx context.Context, d Day, part int, input string, opts Options) (Result, error) {
	if part != 1 && part != 2 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidPart, part)
	}
	solve := d.Parts[part-1]
	if solve == nil {
		return Result{}, fmt.Errorf("day %d part %d: not implemented", d.Number, part)
	}
	start := time.Now()
	answer, err := solve(ctx, input, opts)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("day %d part %d: %w", d.Number, part, err)
	}
	return Result{Day: d.Number, Part: part, Answer: answer, Elapsed: elapsed}, nil
}

// Parts expands a part selector: 0 means both.
func Parts(selector int) ([]int, error) {
	switch selector {
	case 0:
		return []int{1, 2}, nil
	case 1, 2:
		return []int{selector}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrInvalidPart, selector)
}
