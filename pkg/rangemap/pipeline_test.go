package rangemap

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// examplePipeline is the seven-stage almanac from the day 5 worked example.
func examplePipeline(t *testing.T, opts ...PipelineOption) *Pipeline {
	t.Helper()
	tables := [][][3]int64{
		{{50, 98, 2}, {52, 50, 48}},
		{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}},
		{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}},
		{{88, 18, 7}, {18, 25, 70}},
		{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}},
		{{0, 69, 1}, {1, 0, 69}},
		{{60, 56, 37}, {56, 93, 4}},
	}
	stages := make([]*Stage, 0, len(tables))
	for _, table := range tables {
		rules := make([]Rule, 0, len(table))
		for _, triple := range table {
			rules = append(rules, NewRule(triple[0], triple[1], triple[2]))
		}
		stages = append(stages, mustStage(t, rules...))
	}
	return NewPipeline(stages, opts...)
}

func TestMapValue(t *testing.T) {
	single := NewPipeline([]*Stage{mustStage(t, NewRule(50, 98, 2), NewRule(52, 50, 48))})
	assert.Equal(t, int64(81), single.MapValue(79))
	assert.Equal(t, int64(14), single.MapValue(14))

	p := examplePipeline(t)
	tt := map[int64]int64{79: 82, 14: 43, 55: 86, 13: 35}
	for seed, want := range tt {
		assert.Equal(t, want, p.MapValue(seed), "seed %d", seed)
	}
}

func TestMinValue(t *testing.T) {
	p := examplePipeline(t)
	got, err := p.MinValue([]int64{79, 14, 55, 13})
	require.NoError(t, err)
	assert.Equal(t, int64(35), got)

	_, err = p.MinValue(nil)
	assert.True(t, errors.Is(err, ErrEmptyResult))
}

func TestMinStartSingleStage(t *testing.T) {
	p := NewPipeline([]*Stage{mustStage(t, NewRule(52, 50, 48))})
	out, err := p.MapIntervals(context.Background(), []Interval{Span(79, 14)})
	require.NoError(t, err)
	assert.Equal(t, []Interval{{81, 95}}, out)

	got, err := p.MinStart(context.Background(), []Interval{Span(79, 14)})
	require.NoError(t, err)
	assert.Equal(t, int64(81), got)
}

func TestMinStartExample(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 8} {
		p := examplePipeline(t, WithWorkers(workers))
		got, err := p.MinStart(context.Background(), []Interval{Span(79, 14), Span(55, 13)})
		require.NoError(t, err)
		assert.Equal(t, int64(46), got, "workers=%d", workers)
	}
}

func TestMinStartOrderIndependent(t *testing.T) {
	p := examplePipeline(t)
	set := []Interval{Span(79, 14), Span(55, 13), Span(0, 5), Span(200, 30)}
	want, err := p.MinStart(context.Background(), set)
	require.NoError(t, err)

	reversed := slices.Clone(set)
	slices.Reverse(reversed)
	got, err := p.MinStart(context.Background(), reversed)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMapIntervalsWorkersKeepOrder(t *testing.T) {
	set := make([]Interval, 0, 50)
	for i := int64(0); i < 50; i++ {
		set = append(set, Span(i*3, 2))
	}
	sequential, err := examplePipeline(t).MapIntervals(context.Background(), set)
	require.NoError(t, err)
	parallel, err := examplePipeline(t, WithWorkers(4)).MapIntervals(context.Background(), set)
	require.NoError(t, err)
	assert.Equal(t, sequential, parallel)
}

// Every input value must show up exactly once, at its scalar image.
func TestMapIntervalsMatchesScalar(t *testing.T) {
	p := examplePipeline(t, WithWorkers(3))
	set := []Interval{Span(79, 14), Span(55, 13), Span(0, 10)}
	out, err := p.MapIntervals(context.Background(), set)
	require.NoError(t, err)

	var total int64
	for _, r := range out {
		total += r.Len()
	}
	var inputTotal int64
	for _, r := range set {
		inputTotal += r.Len()
		for v := r.Start; v < r.End; v++ {
			mapped := p.MapValue(v)
			hits := 0
			for _, o := range out {
				if o.Contains(mapped) {
					hits++
				}
			}
			assert.GreaterOrEqual(t, hits, 1, "value %d mapped to %d is missing", v, mapped)
		}
	}
	assert.Equal(t, inputTotal, total)
}

func TestMapIntervalsDropsEmptyInput(t *testing.T) {
	p := examplePipeline(t)
	_, err := p.MinStart(context.Background(), []Interval{{5, 5}})
	assert.True(t, errors.Is(err, ErrEmptyResult))
}

func TestMapIntervalsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := examplePipeline(t, WithWorkers(2)).MapIntervals(ctx, []Interval{Span(1, 2)})
	assert.True(t, errors.Is(err, context.Canceled))
}
