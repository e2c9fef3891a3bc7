package stats

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
	}
}

func TestExtremes(t *testing.T) {
	s := &Statistic{}
	for _, v := range []float64{5, -2, 9, 3} {
		s.Push(v)
	}
	assert.Equal(t, -2.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
	assert.Equal(t, 3.0, s.Last())
	assert.Equal(t, 4, s.Iterations())
}

func TestMerge(t *testing.T) {
	is := is.New(t)
	all, a, b := &Statistic{}, &Statistic{}, &Statistic{}
	vals := []float64{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}
	for i, v := range vals {
		all.Push(v)
		if i < 4 {
			a.Push(v)
		} else {
			b.Push(v)
		}
	}
	a.Merge(b)
	is.Equal(a.Iterations(), all.Iterations())
	is.True(FuzzyEqual(a.Mean(), all.Mean()))
	is.True(FuzzyEqual(a.Variance(), all.Variance()))
	is.Equal(a.Max(), 124.0)

	empty := &Statistic{}
	empty.Merge(all)
	is.True(FuzzyEqual(empty.Mean(), all.Mean()))
}

func TestZVal(t *testing.T) {
	assert.InDelta(t, 1.959964, ZVal(95), 1e-5)
	assert.InDelta(t, 2.575829, ZVal(99), 1e-5)

	s := &Statistic{}
	for _, v := range []float64{10, 12, 23, 23, 16, 23, 21, 16} {
		s.Push(v)
	}
	lo, hi := s.ConfidenceInterval(95)
	assert.InDelta(t, s.Mean(), (lo+hi)/2, 1e-9)
	assert.InDelta(t, 2*1.959964*s.StandardError(), hi-lo, 1e-4)
}
