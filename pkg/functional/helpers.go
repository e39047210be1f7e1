package f

import "cmp"

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type Set[T comparable] struct {
	items map[T]struct{}
}

func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s *Set[T]) Add(item T) {
	s.items[item] = struct{}{}
}

func (s *Set[T]) Remove(item T) {
	delete(s.items, item)
}

func (s *Set[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

func Map[T any, U any](ts []T, fn func(T) U) []U {
	us := make([]U, len(ts))
	for i, t := range ts {
		us[i] = fn(t)
	}
	return us
}

func Filtered[T any](ts []T, keep func(T) bool) []T {
	out := make([]T, 0, len(ts))
	for _, t := range ts {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// RemoveDuplicates keeps the first occurrence of each item, preserving order.
func RemoveDuplicates[T comparable](ts []T) []T {
	seen := NewSet[T]()
	out := make([]T, 0, len(ts))
	for _, t := range ts {
		if seen.Contains(t) {
			continue
		}
		seen.Add(t)
		out = append(out, t)
	}
	return out
}

// Intersection returns the items present in both slices. Duplicates are kept
// as many times as they appear in both.
func Intersection[T comparable](ts1 []T, ts2 []T) []T {
	counts := make(map[T]int, len(ts2))
	for _, t := range ts2 {
		counts[t]++
	}
	out := make([]T, 0)
	for _, t := range ts1 {
		if counts[t] > 0 {
			counts[t]--
			out = append(out, t)
		}
	}
	return out
}

// SlicesItemsMatch reports whether both slices hold the same items with the
// same multiplicity, in any order.
func SlicesItemsMatch[T comparable](s1 []T, s2 []T) bool {
	if len(s1) != len(s2) {
		return false
	}
	return len(Intersection(s1, s2)) == len(s1)
}

func Sum[T Number](ts []T) T {
	var total T
	for _, t := range ts {
		total += t
	}
	return total
}

func Product[T Number](ts []T) T {
	total := T(1)
	for _, t := range ts {
		total *= t
	}
	return total
}

// MinOf returns the smallest item and false for an empty slice.
func MinOf[T cmp.Ordered](ts []T) (T, bool) {
	var zero T
	if len(ts) == 0 {
		return zero, false
	}
	best := ts[0]
	for _, t := range ts[1:] {
		best = min(best, t)
	}
	return best, true
}
