package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// PowerUpSpec is the static definition of one power-up kind.
type PowerUpSpec struct {
	Kind            Kind
	Label           string
	Size            float64
	DurationMs      float64
	Altitude        float64 // Height of the pickup's bottom above the ground line
	Hits            int     // Shield hits granted
	SpeedScale      float64 // Slow-mo world speed factor
	ScoreMultiplier float64 // Frenzy score factor
	FirstScore      int     // Score at which the first pickup appears
	Interval        int     // Score between later appearances
}

var powerUpSpecs = [KindCount]PowerUpSpec{
	KindShield: {
		Kind: KindShield, Label: "Shield", Size: 28, DurationMs: 8000, Altitude: 50,
		Hits: 1, FirstScore: 4000, Interval: 6000,
	},
	KindSlowMo: {
		Kind: KindSlowMo, Label: "Slow-Mo", Size: 30, DurationMs: 5000, Altitude: 110,
		SpeedScale: 0.55, FirstScore: 6500, Interval: 6000,
	},
	KindDoubleJump: {
		Kind: KindDoubleJump, Label: "Air Dash", Size: 28, DurationMs: 6000, Altitude: 90,
		FirstScore: 2500, Interval: 5500,
	},
	KindPhase: {
		Kind: KindPhase, Label: "Phase Shift", Size: 34, DurationMs: 4000, Altitude: 70,
		FirstScore: 5200, Interval: 7000,
	},
	KindFrenzy: {
		Kind: KindFrenzy, Label: "Score Frenzy", Size: 30, DurationMs: 5000, Altitude: 120,
		ScoreMultiplier: 2.2, FirstScore: 3200, Interval: 6200,
	},
}

// Spec returns the definition of a power-up kind.
func Spec(k Kind) PowerUpSpec {
	if k < 0 || k >= KindCount {
		return PowerUpSpec{}
	}
	return powerUpSpecs[k]
}

// Pickup is a collectible power-up scrolling toward the actor.
type Pickup struct {
	Kind    Kind
	X, Y    float64 // Top-left corner
	Size    float64
	PulseMs float64 // Visual pulse phase only
}

// Box returns the pickup's collision box (its full visual box).
func (p Pickup) Box() core.Box {
	return core.BoxAt(p.X, p.Y, p.Size, p.Size)
}

// PowerUpScheduler spawns pickups at recurring per-kind score thresholds and
// moves them across the world. It runs independently of the spawn director.
type PowerUpScheduler struct {
	cfg     config.PowerUpConfig
	world   config.WorldConfig
	next    [KindCount]int
	pickups []Pickup
}

// NewPowerUpScheduler creates a scheduler with thresholds at their first scores.
func NewPowerUpScheduler(cfg config.PowerUpConfig, world config.WorldConfig) *PowerUpScheduler {
	s := &PowerUpScheduler{
		cfg:     cfg,
		world:   world,
		pickups: make([]Pickup, 0, KindCount),
	}
	s.ResetSchedule()
	return s
}

// ResetSchedule restores every threshold to its first-appearance score.
func (s *PowerUpScheduler) ResetSchedule() {
	for k := range s.next {
		s.next[k] = powerUpSpecs[k].FirstScore
	}
}

// ClearPickups removes every pickup in flight.
func (s *PowerUpScheduler) ClearPickups() {
	s.pickups = s.pickups[:0]
}

// NextThreshold returns the score at which a kind next appears.
func (s *PowerUpScheduler) NextThreshold(k Kind) int {
	return s.next[k]
}

// Update spawns a pickup for every kind whose threshold the score has reached.
// The threshold advances by one interval per crossing even when a pickup of
// that kind is already present; in that case no second pickup appears.
func (s *PowerUpScheduler) Update(score int) []Kind {
	var spawned []Kind
	for k := range s.next {
		kind := Kind(k)
		if score < s.next[k] {
			continue
		}
		if s.spawn(kind) {
			spawned = append(spawned, kind)
		}
		s.next[k] += powerUpSpecs[k].Interval
	}
	return spawned
}

func (s *PowerUpScheduler) spawn(k Kind) bool {
	for _, p := range s.pickups {
		if p.Kind == k {
			return false
		}
	}
	spec := powerUpSpecs[k]
	s.pickups = append(s.pickups, Pickup{
		Kind: k,
		X:    s.world.Width + spec.Size + s.cfg.SpawnLead,
		Y:    s.world.GroundY() - spec.Size - spec.Altitude,
		Size: spec.Size,
	})
	return true
}

// Move scrolls pickups at a fraction of the world speed and drops the ones
// that left the screen.
func (s *PowerUpScheduler) Move(deltaMs, worldSpeed float64) {
	dt := deltaMs / 1000
	kept := s.pickups[:0]
	for _, p := range s.pickups {
		p.X -= worldSpeed * s.cfg.ScrollFactor * dt
		p.PulseMs += deltaMs
		if p.X+p.Size < -s.cfg.CullMargin {
			continue
		}
		kept = append(kept, p)
	}
	s.pickups = kept
}

// Collect removes every pickup overlapping box and returns their kinds.
func (s *PowerUpScheduler) Collect(box core.Box) []Kind {
	var collected []Kind
	kept := s.pickups[:0]
	for _, p := range s.pickups {
		if box.Overlaps(p.Box()) {
			collected = append(collected, p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	s.pickups = kept
	return collected
}

// Pickups returns a copy of the pickups in flight.
func (s *PowerUpScheduler) Pickups() []Pickup {
	out := make([]Pickup, len(s.pickups))
	copy(out, s.pickups)
	return out
}
