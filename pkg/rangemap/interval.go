package rangemap

import "fmt"

// Interval is the half-open range [Start, End).
type Interval struct {
	Start int64
	End   int64
}

// Span returns the interval starting at start covering length values.
func Span(start, length int64) Interval {
	return Interval{Start: start, End: start + length}
}

func (i Interval) Len() int64 {
	if i.End <= i.Start {
		return 0
	}
	return i.End - i.Start
}

func (i Interval) Empty() bool {
	return i.End <= i.Start
}

func (i Interval) Contains(v int64) bool {
	return i.Start <= v && v < i.End
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End && !i.Empty() && !o.Empty()
}

// Intersect clips i to o. The result may be empty.
func (i Interval) Intersect(o Interval) Interval {
	return Interval{Start: max(i.Start, o.Start), End: min(i.End, o.End)}
}

func (i Interval) Shift(offset int64) Interval {
	return Interval{Start: i.Start + offset, End: i.End + offset}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Start, i.End)
}
