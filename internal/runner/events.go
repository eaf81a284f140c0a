package runner

// EventKind identifies a transition emitted during a tick.
type EventKind int

const (
	EventJump EventKind = iota
	EventAirJump
	EventLand
	EventDust
	EventSpeedUp
	EventBonusLife
	EventPowerUpSpawned
	EventPickup
	EventEffectExpired
	EventShieldHit
	EventLifeLost
	EventGameOver
	EventPatternStarted
	EventRunStarted
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventAirJump:
		return "air-jump"
	case EventLand:
		return "land"
	case EventDust:
		return "dust"
	case EventSpeedUp:
		return "speed-up"
	case EventBonusLife:
		return "bonus-life"
	case EventPowerUpSpawned:
		return "powerup-spawned"
	case EventPickup:
		return "pickup"
	case EventEffectExpired:
		return "effect-expired"
	case EventShieldHit:
		return "shield-hit"
	case EventLifeLost:
		return "life-lost"
	case EventGameOver:
		return "game-over"
	case EventPatternStarted:
		return "pattern-started"
	case EventRunStarted:
		return "run-started"
	default:
		return "unknown"
	}
}

// Event is a transition the renderer or platform may react to
// (sound, particles, leaderboard refresh). The simulation never depends on them.
type Event struct {
	Kind  EventKind
	Power Kind    // Pickup, PowerUpSpawned, EffectExpired
	Name  string  // Pattern name or obstacle type
	X, Y  float64 // World position for particle effects
	Score int     // GameOver
}

// HasEvent reports whether events contains kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// CountEvents returns how many events of kind occurred.
func CountEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
