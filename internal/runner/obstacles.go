package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Obstacle is a live hazard owned by the registry.
type Obstacle struct {
	Type          string
	Lane          Lane
	X, Y          float64 // Top-left corner
	Width, Height float64
	Hitbox        core.Insets
	Behavior      Behavior
	SpeedOffset   float64 // px/s added to world speed
	VY            float64 // Falling only
	Gravity       float64 // Falling only
	DropDelayMs   float64 // Falling only
	VerticalSpeed float64 // Meteor only, px/s, positive is down
	RollScale     float64 // Rolling only
	Rotation      float64 // Rolling only, radians, visual
	AgeMs         float64
	Passed        bool
}

// Box returns the obstacle's visual box.
func (o Obstacle) Box() core.Box {
	return core.BoxAt(o.X, o.Y, o.Width, o.Height)
}

// HitBox returns the box used for collision, shrunk by the per-type insets.
func (o Obstacle) HitBox() core.Box {
	return o.Box().Inset(o.Hitbox)
}

// RightEdge returns the x of the obstacle's trailing visual edge.
func (o Obstacle) RightEdge() float64 {
	return o.X + o.Width
}

// update advances one obstacle. It returns true the first time the obstacle
// fully passes actorX.
func (o *Obstacle) update(deltaMs, worldSpeed, actorX, groundY float64) bool {
	dt := deltaMs / 1000
	o.X -= (worldSpeed + o.SpeedOffset) * dt
	o.AgeMs += deltaMs

	passed := false
	if !o.Passed && o.X+o.Width < actorX {
		o.Passed = true
		passed = true
	}

	rest := groundY - o.Height
	switch o.Behavior {
	case BehaviorRolling:
		o.Rotation = math.Mod(o.Rotation+worldSpeed*dt*o.RollScale/math.Max(o.Width, 1), 2*math.Pi)
		o.Y = rest
	case BehaviorFalling:
		if o.DropDelayMs > 0 {
			o.DropDelayMs = math.Max(0, o.DropDelayMs-deltaMs)
			break
		}
		o.VY += o.Gravity * dt
		o.Y += o.VY * dt
		if o.Y > rest {
			o.Y = rest
			o.VY = 0
		}
	case BehaviorMeteor:
		// Meteors keep their rate through the ground line until culled.
		o.Y += o.VerticalSpeed * dt
	}
	return passed
}

// Registry is the ordered collection of live obstacles.
type Registry struct {
	world config.WorldConfig
	items []Obstacle
}

// NewRegistry creates an empty registry for a world.
func NewRegistry(world config.WorldConfig) *Registry {
	return &Registry{
		world: world,
		items: make([]Obstacle, 0, 8),
	}
}

// Add appends an obstacle.
func (r *Registry) Add(o Obstacle) {
	r.items = append(r.items, o)
}

// Len returns the number of live obstacles.
func (r *Registry) Len() int {
	return len(r.items)
}

// Clear removes every obstacle.
func (r *Registry) Clear() {
	r.items = r.items[:0]
}

// Remove deletes the obstacle at index i.
func (r *Registry) Remove(i int) {
	if i < 0 || i >= len(r.items) {
		return
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
}

// At returns a copy of the obstacle at index i.
func (r *Registry) At(i int) Obstacle {
	return r.items[i]
}

// All returns a copy of the live obstacles.
func (r *Registry) All() []Obstacle {
	out := make([]Obstacle, len(r.items))
	copy(out, r.items)
	return out
}

// ActiveCount returns the number of obstacles not yet passed.
func (r *Registry) ActiveCount() int {
	n := 0
	for _, o := range r.items {
		if !o.Passed {
			n++
		}
	}
	return n
}

// ActiveInLane returns the number of not-yet-passed obstacles in a lane.
func (r *Registry) ActiveInLane(lane Lane) int {
	n := 0
	for _, o := range r.items {
		if o.Lane == lane && !o.Passed {
			n++
		}
	}
	return n
}

// FurthestEdge returns the largest right edge among live obstacles.
func (r *Registry) FurthestEdge() (float64, bool) {
	if len(r.items) == 0 {
		return 0, false
	}
	edge := math.Inf(-1)
	for _, o := range r.items {
		edge = math.Max(edge, o.RightEdge())
	}
	return edge, true
}

// Update moves every obstacle, culls the ones that left the world and
// returns how many were passed for the first time this tick.
func (r *Registry) Update(deltaMs, worldSpeed, actorX float64) int {
	groundY := r.world.GroundY()
	passed := 0
	for i := range r.items {
		if r.items[i].update(deltaMs, worldSpeed, actorX, groundY) {
			passed++
		}
	}

	kept := r.items[:0]
	for _, o := range r.items {
		if r.offWorld(o) {
			continue
		}
		kept = append(kept, o)
	}
	r.items = kept
	return passed
}

func (r *Registry) offWorld(o Obstacle) bool {
	return o.X+o.Width < -r.world.CullMarginX ||
		o.Y > r.world.Height+r.world.CullMarginY ||
		o.Y+o.Height < -r.world.CullMarginY
}

// FirstHit returns the index of the first obstacle whose hit box overlaps box, or -1.
func (r *Registry) FirstHit(box core.Box) int {
	for i, o := range r.items {
		if box.Overlaps(o.HitBox()) {
			return i
		}
	}
	return -1
}
