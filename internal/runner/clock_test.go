package runner

import (
	"math"
	"testing"
	"time"
)

func TestClampDelta(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{-5, 0},
		{0, 0},
		{16, 16},
		{32, 32},
		{250, 32},
	}
	for _, tt := range tests {
		if got := ClampDelta(tt.in, 32); got != tt.expected {
			t.Errorf("ClampDelta(%g, 32) = %g, expected %g", tt.in, got, tt.expected)
		}
	}
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(32)
	start := time.Unix(1000, 0)

	if got := c.Tick(start); got != 0 {
		t.Errorf("first Tick() = %g, expected 0", got)
	}
	if got := c.Tick(start.Add(16 * time.Millisecond)); got != 16 {
		t.Errorf("Tick() = %g, expected 16", got)
	}
	if got := c.Tick(start.Add(2 * time.Second)); got != 32 {
		t.Errorf("Tick() after a stall = %g, expected 32", got)
	}

	c.Reset()
	if got := c.Tick(start.Add(5 * time.Second)); got != 0 {
		t.Errorf("Tick() after Reset() = %g, expected 0", got)
	}
}

func TestPickWeighted(t *testing.T) {
	type item struct {
		name string
		w    float64
	}
	weight := func(i item) float64 { return i.w }
	items := []item{{"a", 1}, {"b", 0}, {"c", 3}}

	tests := []struct {
		draw     float64
		expected string
	}{
		{0, "a"},
		{0.2, "a"},
		{0.25, "c"},
		{0.99, "c"},
	}
	for _, tt := range tests {
		got, ok := pickWeighted(&seqRand{vals: []float64{tt.draw}}, items, weight)
		if !ok || got.name != tt.expected {
			t.Errorf("pickWeighted(draw %g) = %q, expected %q", tt.draw, got.name, tt.expected)
		}
	}

	zero := []item{{"x", 0}, {"y", -1}}
	if got, _ := pickWeighted(&seqRand{}, zero, weight); got.name != "y" {
		t.Errorf("all non-positive weights should return the last item, got %q", got.name)
	}
	if _, ok := pickWeighted(&seqRand{}, []item(nil), weight); ok {
		t.Error("empty input should report no pick")
	}
}

func TestPickWeightedDistribution(t *testing.T) {
	weights := []float64{3, 2, 1}
	counts := make([]int, len(weights))
	r := NewRand(99)
	const n = 60000

	for i := 0; i < n; i++ {
		idx, _ := pickWeighted(r, []int{0, 1, 2}, func(i int) float64 { return weights[i] })
		counts[idx]++
	}
	for i, w := range weights {
		got := float64(counts[i]) / n
		if math.Abs(got-w/6) > 0.02 {
			t.Errorf("item %d frequency = %.3f, expected %.3f", i, got, w/6)
		}
	}
}
