package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// Snapshot is an immutable copy of everything the renderer needs for one frame.
// Slices are freshly allocated; mutating them never touches the Sim.
type Snapshot struct {
	Run        RunState
	Actor      Actor
	Obstacles  []Obstacle
	Pickups    []Pickup
	Effects    [KindCount]Effect
	Events     []Event
	Difficulty int
	Speed      float64 // Effective speed multiplier
	SpeedKmh   float64
	NowMs      float64
	Player     string
	World      config.WorldConfig
}

// Snapshot returns the current state without advancing the simulation.
func (s *Sim) Snapshot() Snapshot {
	return s.snapshot()
}

func (s *Sim) snapshot() Snapshot {
	events := make([]Event, len(s.events))
	copy(events, s.events)

	return Snapshot{
		Run:        s.run,
		Actor:      s.actor,
		Obstacles:  s.obstacles.All(),
		Pickups:    s.powerups.Pickups(),
		Effects:    s.effects.Slots(),
		Events:     events,
		Difficulty: s.Difficulty(),
		Speed:      s.EffectiveSpeedMultiplier(),
		SpeedKmh:   s.SpeedKmh(),
		NowMs:      s.nowMs,
		Player:     s.player,
		World:      s.cfg.World,
	}
}

// ActiveEffects lists the running effects in kind order.
func (sn Snapshot) ActiveEffects() []Kind {
	var kinds []Kind
	for k, e := range sn.Effects {
		if e.Active {
			kinds = append(kinds, Kind(k))
		}
	}
	return kinds
}

// GameOver reports whether the game ended and waits for a restart.
func (sn Snapshot) GameOver() bool {
	return !sn.Run.Running && sn.Run.Crashed
}

// Idle reports whether no game has started yet.
func (sn Snapshot) Idle() bool {
	return !sn.Run.Running && !sn.Run.Crashed
}
