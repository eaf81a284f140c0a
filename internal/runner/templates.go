package runner

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

var (
	// ErrUnknownTemplate is returned when a name is not in the catalog.
	ErrUnknownTemplate = errors.New("runner: unknown obstacle template")
	// ErrInvalidTemplate is returned when a template fails validation.
	ErrInvalidTemplate = errors.New("runner: invalid obstacle template")
)

// Lane is a logical spawn channel with its own occupancy and cooldown limits.
type Lane string

const (
	LaneGround   Lane = "ground"
	LaneAerial   Lane = "aerial"
	LaneVertical Lane = "vertical"
)

// Behavior selects how an obstacle moves besides scrolling.
type Behavior int

const (
	BehaviorNone    Behavior = iota // Scrolls in a straight line
	BehaviorRolling                 // Rolls along the ground
	BehaviorFalling                 // Hangs, then drops onto the ground
	BehaviorMeteor                  // Descends at a constant rate
)

// String returns the behavior name.
func (b Behavior) String() string {
	switch b {
	case BehaviorNone:
		return "none"
	case BehaviorRolling:
		return "rolling"
	case BehaviorFalling:
		return "falling"
	case BehaviorMeteor:
		return "meteor"
	default:
		return "unknown"
	}
}

// Span is an inclusive range sampled uniformly. A zero span always yields 0.
type Span struct {
	Min, Max float64
}

// Fixed returns a span that always yields v.
func Fixed(v float64) Span {
	return Span{Min: v, Max: v}
}

func (s Span) sample(r Rand) float64 {
	return between(r, s.Min, s.Max)
}

// RollingParams configures a rolling obstacle.
type RollingParams struct {
	RollScale float64
}

// FallingParams configures an obstacle that drops after a delay.
type FallingParams struct {
	Gravity   float64 // px/s²
	DropDelay Span    // ms before the drop starts
}

// MeteorParams configures a descending obstacle.
type MeteorParams struct {
	DescentSpeed float64 // px/s, positive is down
}

// Template is the static, read-only definition of an obstacle type.
// At most one of Rolling, Falling and Meteor is set; none means a plain
// scrolling obstacle.
type Template struct {
	Name               string
	Weight             float64
	Lane               Lane
	Width, Height      Span
	Hitbox             core.Insets
	MinGap             float64 // Zero means the configured default
	MinDifficulty      int
	MinSpeedMultiplier float64
	SpeedOffset        Span    // Added to world speed, px/s
	Elevation          *Span   // Lift above the ground, sampled unless a start Y is given
	SpawnElevation     float64 // Fixed lift above the ground at spawn

	Rolling *RollingParams
	Falling *FallingParams
	Meteor  *MeteorParams
}

// Behavior returns the movement behavior implied by the set parameter block.
func (t Template) Behavior() Behavior {
	switch {
	case t.Rolling != nil:
		return BehaviorRolling
	case t.Falling != nil:
		return BehaviorFalling
	case t.Meteor != nil:
		return BehaviorMeteor
	default:
		return BehaviorNone
	}
}

// Eligible reports whether the template may spawn at the given speed and difficulty.
func (t Template) Eligible(speedMultiplier float64, difficulty int) bool {
	return t.MinSpeedMultiplier <= speedMultiplier && t.MinDifficulty <= difficulty
}

// Validate checks the template's schema.
func (t Template) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w %q: %s", ErrInvalidTemplate, t.Name, fmt.Sprintf(format, args...))
	}

	if t.Name == "" {
		return fail("missing name")
	}
	if t.Weight <= 0 {
		return fail("weight must be positive")
	}
	switch t.Lane {
	case LaneGround, LaneAerial, LaneVertical:
	default:
		return fail("unknown lane %q", t.Lane)
	}
	if t.Width.Min <= 0 || t.Width.Max < t.Width.Min {
		return fail("bad width range %v", t.Width)
	}
	if t.Height.Min <= 0 || t.Height.Max < t.Height.Min {
		return fail("bad height range %v", t.Height)
	}
	if t.Hitbox.Left+t.Hitbox.Right >= t.Width.Min || t.Hitbox.Top+t.Hitbox.Bottom >= t.Height.Min {
		return fail("hitbox insets swallow the smallest size")
	}
	if t.Hitbox.Left < 0 || t.Hitbox.Right < 0 || t.Hitbox.Top < 0 || t.Hitbox.Bottom < 0 {
		return fail("hitbox insets must not be negative")
	}
	if t.SpeedOffset.Max < t.SpeedOffset.Min {
		return fail("bad speed offset range %v", t.SpeedOffset)
	}
	if t.Elevation != nil && (t.Elevation.Min < 0 || t.Elevation.Max < t.Elevation.Min) {
		return fail("bad elevation range %v", *t.Elevation)
	}

	blocks := 0
	if t.Rolling != nil {
		blocks++
		if t.Rolling.RollScale <= 0 {
			return fail("roll scale must be positive")
		}
	}
	if t.Falling != nil {
		blocks++
		if t.Falling.Gravity <= 0 {
			return fail("falling gravity must be positive")
		}
		if t.Falling.DropDelay.Min < 0 || t.Falling.DropDelay.Max < t.Falling.DropDelay.Min {
			return fail("bad drop delay range %v", t.Falling.DropDelay)
		}
	}
	if t.Meteor != nil {
		blocks++
	}
	if blocks > 1 {
		return fail("more than one behavior block set")
	}
	return nil
}

// DefaultTemplates returns the winter course obstacles.
func DefaultTemplates() []Template {
	return []Template{
		{
			Name:   "tree-single",
			Weight: 3,
			Lane:   LaneGround,
			Width:  Span{Min: 24, Max: 32},
			Height: Span{Min: 36, Max: 56},
			Hitbox: core.Insets{Left: 4, Right: 4, Top: 2, Bottom: 2},
			MinGap: 180,
		},
		{
			Name:   "tree-double",
			Weight: 2,
			Lane:   LaneGround,
			Width:  Span{Min: 44, Max: 58},
			Height: Span{Min: 44, Max: 68},
			Hitbox: core.Insets{Left: 6, Right: 6, Top: 4, Bottom: 2},
			MinGap: 220,
		},
		{
			Name:               "pterodactyl",
			Weight:             1,
			Lane:               LaneAerial,
			Width:              Fixed(54),
			Height:             Fixed(26),
			Hitbox:             core.Uniform(4),
			MinSpeedMultiplier: 1.1,
			SpeedOffset:        Span{Min: -30, Max: 20},
			Elevation:          &Span{Min: 32, Max: 90},
		},
		{
			Name:          "snowball",
			Weight:        2,
			Lane:          LaneGround,
			Width:         Fixed(46),
			Height:        Fixed(46),
			Hitbox:        core.Uniform(4),
			MinGap:        240,
			MinDifficulty: 1,
			Rolling:       &RollingParams{RollScale: 1.2},
		},
		{
			Name:           "icicle",
			Weight:         1.5,
			Lane:           LaneVertical,
			Width:          Fixed(26),
			Height:         Fixed(70),
			Hitbox:         core.Insets{Left: 6, Right: 6, Top: 10, Bottom: 6},
			MinDifficulty:  1,
			SpawnElevation: 140,
			Falling:        &FallingParams{Gravity: 2400, DropDelay: Span{Min: 120, Max: 420}},
		},
		{
			Name:           "meteor",
			Weight:         1,
			Lane:           LaneVertical,
			Width:          Fixed(38),
			Height:         Fixed(24),
			Hitbox:         core.Insets{Left: 6, Right: 6, Top: 4, Bottom: 8},
			MinDifficulty:  2,
			SpawnElevation: 180,
			Meteor:         &MeteorParams{DescentSpeed: 220},
		},
	}
}

// Catalog is a validated, name-indexed set of templates.
type Catalog struct {
	templates []Template
	byName    map[string]int
}

// NewCatalog validates every template and indexes them by name.
func NewCatalog(templates []Template) (*Catalog, error) {
	c := &Catalog{
		templates: make([]Template, 0, len(templates)),
		byName:    make(map[string]int, len(templates)),
	}
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byName[t.Name]; dup {
			return nil, fmt.Errorf("%w %q: duplicate name", ErrInvalidTemplate, t.Name)
		}
		c.byName[t.Name] = len(c.templates)
		c.templates = append(c.templates, t)
	}
	return c, nil
}

// Lookup returns the template with the given name.
func (c *Catalog) Lookup(name string) (Template, error) {
	i, ok := c.byName[name]
	if !ok {
		return Template{}, fmt.Errorf("%w %q", ErrUnknownTemplate, name)
	}
	return c.templates[i], nil
}

// Eligible returns the templates whose speed and difficulty gates are met, in catalog order.
func (c *Catalog) Eligible(speedMultiplier float64, difficulty int) []Template {
	out := make([]Template, 0, len(c.templates))
	for _, t := range c.templates {
		if t.Eligible(speedMultiplier, difficulty) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}
