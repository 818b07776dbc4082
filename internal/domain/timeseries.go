package domain

import (
	"sort"
	"time"
)

// SeriesPoint is one change point of a step function.
type SeriesPoint struct {
	At  time.Time
	Val Value
}

// TimeSeries is a date-indexed step function with last-known-value
// semantics: At(t) returns the value of the greatest change point not after
// t, and Unset before the first change point. A series is an immutable
// snapshot; combination returns a new series and never mutates either input.
type TimeSeries struct {
	points []SeriesPoint
}

// NewTimeSeries builds a series from change points. Points are copied and
// sorted by time; a later duplicate timestamp wins.
func NewTimeSeries(points ...SeriesPoint) *TimeSeries {
	ps := make([]SeriesPoint, len(points))
	copy(ps, points)
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].At.Before(ps[j].At) })

	dedup := ps[:0]
	for _, p := range ps {
		if n := len(dedup); n > 0 && dedup[n-1].At.Equal(p.At) {
			dedup[n-1] = p
			continue
		}
		dedup = append(dedup, p)
	}
	return &TimeSeries{points: dedup}
}

func (ts *TimeSeries) Len() int { return len(ts.points) }

// Points returns a copy of the change points in ascending time order.
func (ts *TimeSeries) Points() []SeriesPoint {
	out := make([]SeriesPoint, len(ts.points))
	copy(out, ts.points)
	return out
}

// At returns the step value at t: the value of the greatest change point
// not after t, or Unset if the series has not started yet.
func (ts *TimeSeries) At(t time.Time) Value {
	i := sort.Search(len(ts.points), func(i int) bool {
		return ts.points[i].At.After(t)
	})
	if i == 0 {
		return NewUnset(1)
	}
	return ts.points[i-1].Val
}

// Combine evaluates f against the step values of both series at every
// change point present in either, returning a new series over the union of
// change points. Where one side has not started, its step value is Unset
// and f sees that Unset.
func (ts *TimeSeries) Combine(other *TimeSeries, f func(a, b Value) Value) *TimeSeries {
	times := make([]time.Time, 0, len(ts.points)+len(other.points))
	for _, p := range ts.points {
		times = append(times, p.At)
	}
	for _, p := range other.points {
		times = append(times, p.At)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	out := make([]SeriesPoint, 0, len(times))
	for _, t := range times {
		if n := len(out); n > 0 && out[n-1].At.Equal(t) {
			continue
		}
		out = append(out, SeriesPoint{At: t, Val: f(ts.At(t), other.At(t))})
	}
	return &TimeSeries{points: out}
}

// Map applies f to every change point value, returning a new series with
// the same change points.
func (ts *TimeSeries) Map(f func(Value) Value) *TimeSeries {
	out := make([]SeriesPoint, len(ts.points))
	for i, p := range ts.points {
		out[i] = SeriesPoint{At: p.At, Val: f(p.Val)}
	}
	return &TimeSeries{points: out}
}
