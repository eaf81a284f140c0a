package runner

import "math/rand"

// Rand is the random source consumed by the simulation.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform value in [min, max).
func between(r Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float64()*(max-min)
}

// pickWeighted selects an item with probability proportional to its weight.
// The draw is scaled by the total weight and the first cumulative bucket
// containing it wins. Items with non-positive weight are never chosen unless
// every weight is non-positive, in which case the last item is returned.
func pickWeighted[T any](r Rand, items []T, weight func(T) float64) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}

	total := 0.0
	for _, it := range items {
		if w := weight(it); w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return items[len(items)-1], true
	}

	draw := r.Float64() * total
	cumulative := 0.0
	for _, it := range items {
		w := weight(it)
		if w <= 0 {
			continue
		}
		cumulative += w
		if draw < cumulative {
			return it, true
		}
	}
	return items[len(items)-1], true
}
