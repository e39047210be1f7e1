package rangemap

import (
	"context"
	"slices"

	f "github.com/multimediallc/aoc2023/pkg/functional"
	"golang.org/x/sync/errgroup"
)

// Pipeline applies stages left to right.
type Pipeline struct {
	stages  []*Stage
	workers int
}

type PipelineOption func(*Pipeline)

// WithWorkers bounds the number of goroutines used to map one stage's
// intervals. n <= 1 maps sequentially.
func WithWorkers(n int) PipelineOption {
	return func(p *Pipeline) {
		p.workers = n
	}
}

func NewPipeline(stages []*Stage, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{stages: slices.Clone(stages), workers: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) Stages() []*Stage {
	return slices.Clone(p.stages)
}

// MapValue passes a single value through every stage.
func (p *Pipeline) MapValue(v int64) int64 {
	for _, s := range p.stages {
		v = s.MapValue(v)
	}
	return v
}

// MinValue maps every seed and returns the smallest result.
func (p *Pipeline) MinValue(seeds []int64) (int64, error) {
	best, ok := f.MinOf(f.Map(seeds, p.MapValue))
	if !ok {
		return 0, ErrEmptyResult
	}
	return best, nil
}

// MapIntervals passes the interval set through every stage. Each stage is
// fully gathered before the next one starts; the output order does not
// depend on the worker count. Overlapping output intervals are not merged.
func (p *Pipeline) MapIntervals(ctx context.Context, set []Interval) ([]Interval, error) {
	current := slices.DeleteFunc(slices.Clone(set), Interval.Empty)
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := p.mapStage(ctx, stage, current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

func (p *Pipeline) mapStage(ctx context.Context, stage *Stage, set []Interval) ([]Interval, error) {
	if p.workers <= 1 || len(set) < 2 {
		out := make([]Interval, 0, len(set))
		for _, r := range set {
			out = append(out, stage.MapInterval(r)...)
		}
		return out, nil
	}

	pieces := make([][]Interval, len(set))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, r := range set {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pieces[i] = stage.MapInterval(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(pieces...), nil
}

// MinStart maps the interval set and returns the smallest start.
func (p *Pipeline) MinStart(ctx context.Context, set []Interval) (int64, error) {
	out, err := p.MapIntervals(ctx, set)
	if err != nil {
		return 0, err
	}
	best, ok := f.MinOf(f.Map(out, func(r Interval) int64 { return r.Start }))
	if !ok {
		return 0, ErrEmptyResult
	}
	return best, nil
}
