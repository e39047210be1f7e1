package day08

import (
	"context"
	_ "embed"
	"strings"

	"github.com/multimediallc/aoc2023/internal/puzzle"
	f "github.com/multimediallc/aoc2023/pkg/functional"
	"golang.org/x/sync/errgroup"
)

var (
	//go:embed sample1.txt
	sample1 string
	//go:embed sample2.txt
	sample2 string
)

func init() {
	puzzle.Register(puzzle.Day{
		Number:  8,
		Title:   "Haunted Wasteland",
		Parts:   [2]puzzle.SolveFunc{Part1, Part2},
		Samples: [2]string{sample1, sample2},
	})
}

// Network holds nodes by index; Left and Right index into Names.
type Network struct {
	Steps []byte
	Names []string
	Left  []int
	Right []int
	index map[string]int
}

func parseNode(line string) (string, string, string, error) {
	name, rest, ok := strings.Cut(line, "=")
	if !ok {
		return "", "", "", puzzle.Malformedf("expected 'NAME = (L, R)', got %q", line)
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", "", "", puzzle.Malformedf("expected '(L, R)', got %q", rest)
	}
	left, right, ok := strings.Cut(rest[1:len(rest)-1], ",")
	if !ok {
		return "", "", "", puzzle.Malformedf("expected '(L, R)', got %q", rest)
	}
	return strings.TrimSpace(name), strings.TrimSpace(left), strings.TrimSpace(right), nil
}

func Parse(input string) (*Network, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, puzzle.Malformedf("expected instructions, a blank line and nodes")
	}
	n := &Network{Steps: []byte(strings.TrimSpace(blocks[0][0])), index: map[string]int{}}
	for _, s := range n.Steps {
		if s != 'L' && s != 'R' {
			return nil, puzzle.Malformedf("invalid step %q", s)
		}
	}

	type edge struct{ left, right string }
	edges := make([]edge, 0, len(blocks[1]))
	for _, line := range blocks[1] {
		name, left, right, err := parseNode(line)
		if err != nil {
			return nil, err
		}
		if _, dup := n.index[name]; dup {
			return nil, puzzle.Malformedf("node %q defined twice", name)
		}
		n.index[name] = len(n.Names)
		n.Names = append(n.Names, name)
		edges = append(edges, edge{left, right})
	}
	n.Left = make([]int, len(edges))
	n.Right = make([]int, len(edges))
	for i, e := range edges {
		var ok bool
		if n.Left[i], ok = n.index[e.left]; !ok {
			return nil, puzzle.Malformedf("unknown node %q", e.left)
		}
		if n.Right[i], ok = n.index[e.right]; !ok {
			return nil, puzzle.Malformedf("unknown node %q", e.right)
		}
	}
	return n, nil
}

// Walk follows the instructions from start until done reports true and
// returns the number of steps taken. A walk longer than one full pass over
// every (node, instruction) pair is a cycle that never arrives.
func (n *Network) Walk(ctx context.Context, start int, done func(string) bool) (int64, error) {
	limit := int64(len(n.Names)) * int64(len(n.Steps))
	node := start
	var steps int64
	for !done(n.Names[node]) {
		if steps > limit {
			return 0, puzzle.ErrEmptyResult
		}
		if steps%(1<<16) == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		if n.Steps[steps%int64(len(n.Steps))] == 'L' {
			node = n.Left[node]
		} else {
			node = n.Right[node]
		}
		steps++
	}
	return steps, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}

func Part1(ctx context.Context, input string, _ puzzle.Options) (int64, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	start, ok := n.index["AAA"]
	if !ok {
		return 0, puzzle.Malformedf("no AAA node")
	}
	return n.Walk(ctx, start, func(name string) bool { return name == "ZZZ" })
}

// Part2 walks every node ending in A at once until all stand on a node
// ending in Z. Each ghost's walk is independent and periodic, so the answer
// is the LCM of the first arrival times.
func Part2(ctx context.Context, input string, opts puzzle.Options) (int64, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	starts := f.Filtered(n.Names, func(name string) bool { return strings.HasSuffix(name, "A") })
	if len(starts) == 0 {
		return 0, puzzle.ErrEmptyResult
	}
	atZ := func(name string) bool { return strings.HasSuffix(name, "Z") }

	arrivals := make([]int64, len(starts))
	g, gctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, name := range starts {
		g.Go(func() error {
			steps, err := n.Walk(gctx, n.index[name], atZ)
			arrivals[i] = steps
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := int64(1)
	for _, a := range arrivals {
		total = lcm(total, a)
	}
	return total, nil
}
