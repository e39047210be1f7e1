package rangemap

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"
)

var (
	ErrOverlappingRules = errors.New("overlapping rules")
	ErrEmptyResult      = errors.New("empty result")
)

// Rule maps every value inside Interval to value+Offset.
type Rule struct {
	Interval
	Offset int64
}

// NewRule builds the rule for a "dest source length" triple.
func NewRule(dest, source, length int64) Rule {
	return Rule{Interval: Span(source, length), Offset: dest - source}
}

// Stage is an immutable set of disjoint rules sorted by start. Values not
// covered by any rule map to themselves.
type Stage struct {
	Label string
	rules []Rule
}

// NewStage sorts the rules and drops empty ones. Rules whose intervals
// intersect are rejected.
func NewStage(label string, rules ...Rule) (*Stage, error) {
	sorted := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if !r.Empty() {
			sorted = append(sorted, r)
		}
	}
	slices.SortFunc(sorted, func(a, b Rule) int { return cmp.Compare(a.Start, b.Start) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Overlaps(sorted[i].Interval) {
			return nil, fmt.Errorf("stage %q: %w: %s and %s", label, ErrOverlappingRules, sorted[i-1].Interval, sorted[i].Interval)
		}
	}
	return &Stage{Label: label, rules: sorted}, nil
}

// Rules returns a copy of the stage's rules in ascending order.
func (s *Stage) Rules() []Rule {
	return slices.Clone(s.rules)
}

// first returns the index of the first rule ending after v. Since rules are
// disjoint and sorted by start, ends are sorted too.
func (s *Stage) first(v int64) int {
	return sort.Search(len(s.rules), func(i int) bool { return s.rules[i].End > v })
}

// Lookup returns the offset of the rule containing v, or 0 when none does.
func (s *Stage) Lookup(v int64) int64 {
	i := s.first(v)
	if i < len(s.rules) && s.rules[i].Start <= v {
		return s.rules[i].Offset
	}
	return 0
}

// Overlapping yields every rule intersecting q in ascending order.
func (s *Stage) Overlapping(q Interval) iter.Seq[Rule] {
	return func(yield func(Rule) bool) {
		if q.Empty() {
			return
		}
		for i := s.first(q.Start); i < len(s.rules) && s.rules[i].Start < q.End; i++ {
			if !yield(s.rules[i]) {
				return
			}
		}
	}
}

// Gaps yields the non-empty parts of q not covered by any rule, ascending.
func (s *Stage) Gaps(q Interval) iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		if q.Empty() {
			return
		}
		cursor := q.Start
		for r := range s.Overlapping(q) {
			if r.Start > cursor {
				if !yield(Interval{Start: cursor, End: r.Start}) {
					return
				}
			}
			cursor = max(cursor, r.End)
		}
		if cursor < q.End {
			yield(Interval{Start: cursor, End: q.End})
		}
	}
}

// MapValue applies the stage to a single value.
func (s *Stage) MapValue(v int64) int64 {
	return v + s.Lookup(v)
}

// MapInterval splits r at rule boundaries: covered pieces are shifted by
// their rule's offset, gaps pass through unchanged. Mapped pieces come
// first, then gaps.
func (s *Stage) MapInterval(r Interval) []Interval {
	var out []Interval
	for rule := range s.Overlapping(r) {
		piece := r.Intersect(rule.Interval)
		if piece.Empty() {
			continue
		}
		out = append(out, piece.Shift(rule.Offset))
	}
	for gap := range s.Gaps(r) {
		out = append(out, gap)
	}
	return out
}
