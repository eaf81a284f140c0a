package runner

// Kind identifies a power-up and the timed effect it grants.
type Kind int

const (
	KindShield     Kind = iota // Absorbs hazard hits
	KindSlowMo                 // Scales world speed down
	KindDoubleJump             // Arms one air jump per landing
	KindPhase                  // Skips hazard collision entirely
	KindFrenzy                 // Multiplies score gain
	KindCount                  // Sentinel for counting kinds
)

// String returns the identifier used in logs and config.
func (k Kind) String() string {
	switch k {
	case KindShield:
		return "shield"
	case KindSlowMo:
		return "slowmo"
	case KindDoubleJump:
		return "doublejump"
	case KindPhase:
		return "phase"
	case KindFrenzy:
		return "frenzy"
	default:
		return "unknown"
	}
}

// Label returns the display name for the HUD.
func (k Kind) Label() string {
	if k < 0 || k >= KindCount {
		return "?"
	}
	return powerUpSpecs[k].Label
}

// Glyph returns the display character for a pickup of this kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindShield:
		return '◈'
	case KindSlowMo:
		return '◷'
	case KindDoubleJump:
		return '⇈'
	case KindPhase:
		return '◌'
	case KindFrenzy:
		return '✦'
	default:
		return '?'
	}
}

// Effect is the timer state of one effect kind.
// Active is true exactly when RemainingMs > 0; deactivation clears both.
type Effect struct {
	Active      bool
	RemainingMs float64
	HitsLeft    int // Shield only
}

// Effects is the bank of independent effect timers, one slot per kind.
type Effects struct {
	slots [KindCount]Effect
}

// Activate starts or refreshes an effect. Refreshing resets the duration
// instead of stacking it.
func (e *Effects) Activate(k Kind, durationMs float64, hits int) {
	if k < 0 || k >= KindCount || durationMs <= 0 {
		return
	}
	e.slots[k] = Effect{Active: true, RemainingMs: durationMs, HitsLeft: hits}
}

// Deactivate clears an effect.
func (e *Effects) Deactivate(k Kind) {
	if k < 0 || k >= KindCount {
		return
	}
	e.slots[k] = Effect{}
}

// Active reports whether an effect is running.
func (e *Effects) Active(k Kind) bool {
	if k < 0 || k >= KindCount {
		return false
	}
	return e.slots[k].Active
}

// Get returns a copy of an effect slot.
func (e *Effects) Get(k Kind) Effect {
	if k < 0 || k >= KindCount {
		return Effect{}
	}
	return e.slots[k]
}

// Tick counts every active effect down and returns the kinds that expired.
func (e *Effects) Tick(deltaMs float64) []Kind {
	var expired []Kind
	for k := range e.slots {
		slot := &e.slots[k]
		if !slot.Active {
			continue
		}
		slot.RemainingMs -= deltaMs
		if slot.RemainingMs <= 0 {
			*slot = Effect{}
			expired = append(expired, Kind(k))
		}
	}
	return expired
}

// AbsorbHit consumes one shield hit if the shield is up.
// The shield deactivates when its last hit is used.
func (e *Effects) AbsorbHit() bool {
	shield := &e.slots[KindShield]
	if !shield.Active || shield.HitsLeft <= 0 {
		return false
	}
	shield.HitsLeft--
	if shield.HitsLeft <= 0 {
		e.Deactivate(KindShield)
	}
	return true
}

// Reset clears every effect.
func (e *Effects) Reset() {
	e.slots = [KindCount]Effect{}
}

// ActiveKinds lists running effects in kind order.
func (e *Effects) ActiveKinds() []Kind {
	var kinds []Kind
	for k, slot := range e.slots {
		if slot.Active {
			kinds = append(kinds, Kind(k))
		}
	}
	return kinds
}

// Slots returns a copy of all effect slots.
func (e *Effects) Slots() [KindCount]Effect {
	return e.slots
}
