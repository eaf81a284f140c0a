package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// ActorEvent is a set of transitions produced by one actor update.
type ActorEvent uint8

const (
	ActorJumped ActorEvent = 1 << iota
	ActorAirJumped
	ActorBuffered
	ActorLanded
)

// Has reports whether the set contains e.
func (s ActorEvent) Has(e ActorEvent) bool {
	return s&e != 0
}

// Actor is the single controllable runner. Y is the feet line, so a grounded
// actor has Y equal to the ground line.
type Actor struct {
	X, Y               float64
	Width, Height      float64
	VY                 float64 // px/s, negative is up
	Grounded           bool
	ExtraJumpAvailable bool
	CoyoteMs           float64
	JumpBufferMs       float64
	AnimMs             float64
}

// NewActor creates a grounded actor from config.
func NewActor(cfg config.RunnerConfig) Actor {
	a := Actor{
		X:      cfg.Actor.X,
		Width:  cfg.Actor.Width,
		Height: cfg.Actor.Height,
	}
	a.Reset(cfg.World.GroundY())
	return a
}

// Reset puts the actor back on the ground with every timer cleared.
func (a *Actor) Reset(groundY float64) {
	a.Y = groundY
	a.VY = 0
	a.Grounded = true
	a.ExtraJumpAvailable = false
	a.CoyoteMs = 0
	a.JumpBufferMs = 0
	a.AnimMs = 0
}

// Box returns the actor's visual box.
func (a Actor) Box() core.Box {
	return core.BoxAt(a.X, a.Y-a.Height, a.Width, a.Height)
}

// RequestJump handles one jump press.
// A press that may jump from the ground is buffered and fires on the next
// integration. Airborne outside coyote time, an armed air jump fires at once;
// otherwise the press is buffered so it fires as soon as jumping is legal.
func (a *Actor) RequestJump(p config.PhysicsConfig, airJumpActive bool) ActorEvent {
	if a.Grounded || a.CoyoteMs > 0 {
		a.JumpBufferMs = p.JumpBufferMs
		return ActorBuffered
	}
	if airJumpActive && a.ExtraJumpAvailable {
		a.jump(p.JumpVelocity * p.AirJumpScale)
		a.ExtraJumpAvailable = false
		return ActorAirJumped
	}
	a.JumpBufferMs = p.JumpBufferMs
	return ActorBuffered
}

func (a *Actor) jump(velocity float64) {
	a.VY = velocity
	a.Grounded = false
	a.CoyoteMs = 0
}

// Integrate advances the actor by deltaMs.
// Gravity uses semi-implicit Euler. A buffered press still live on the tick
// the actor lands fires on that same tick; the landing re-arms the air jump
// while airJumpActive.
func (a *Actor) Integrate(deltaMs float64, p config.PhysicsConfig, groundY float64, airJumpActive bool) ActorEvent {
	var ev ActorEvent

	if a.Grounded {
		a.CoyoteMs = p.CoyoteMs
	} else {
		a.CoyoteMs = max(0, a.CoyoteMs-deltaMs)
	}

	if a.JumpBufferMs > 0 && a.CoyoteMs > 0 {
		a.jump(p.JumpVelocity)
		a.JumpBufferMs = 0
		ev |= ActorJumped
	}

	wasGrounded := a.Grounded
	dt := deltaMs / 1000
	a.VY += p.Gravity * dt
	a.Y += a.VY * dt

	if a.Y >= groundY {
		a.Y = groundY
		a.VY = 0
		a.Grounded = true
	} else {
		a.Grounded = false
	}

	if !wasGrounded && a.Grounded {
		ev |= ActorLanded
		if airJumpActive {
			a.ExtraJumpAvailable = true
		}
		if a.JumpBufferMs > 0 {
			a.jump(p.JumpVelocity)
			a.JumpBufferMs = 0
			ev |= ActorJumped
		}
	}

	a.JumpBufferMs = max(0, a.JumpBufferMs-deltaMs)
	return ev
}
