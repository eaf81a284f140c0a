package runner

import (
	"errors"
	"fmt"
)

// Optional is a float override that may be absent.
type Optional struct {
	V  float64
	Ok bool
}

// Some returns a present override.
func Some(v float64) Optional {
	return Optional{V: v, Ok: true}
}

// Or returns the override, or def when absent.
func (o Optional) Or(def float64) float64 {
	if o.Ok {
		return o.V
	}
	return def
}

// SpawnOptions override template defaults for one spawn.
// Every present field wins over the template.
type SpawnOptions struct {
	StartX        Optional
	StartY        Optional
	MinGap        Optional
	SpeedOffset   Optional
	DropDelayMs   Optional
	VerticalSpeed Optional
}

// PatternView is the registry state a placement sees when its step is
// materialized, not when the pattern was enqueued.
type PatternView struct {
	Template      Template
	GroundY       float64
	WorldWidth    float64
	Lead          float64
	DefaultMinGap float64
	FurthestEdge  float64
	HasEdge       bool
}

// Origin returns the x where a pattern step with the given spacing starts:
// past the right edge of the world, and at least spacing beyond the furthest obstacle.
func (v PatternView) Origin(spacing float64) float64 {
	origin := v.WorldWidth + v.Lead
	if v.HasEdge {
		origin = max(origin, v.FurthestEdge+spacing)
	}
	return origin
}

// TemplateGap returns the template's own minimum gap or the configured default.
func (v PatternView) TemplateGap() float64 {
	if v.Template.MinGap > 0 {
		return v.Template.MinGap
	}
	return v.DefaultMinGap
}

// Placement computes spawn options for a step. It must be a pure function of
// its arguments.
type Placement func(v PatternView, step PatternStep) SpawnOptions

// PatternStep is one queued spawn of a pattern.
type PatternStep struct {
	Pattern  string
	Template string
	Index    int
	Spacing  float64
	WaitMs   float64 // Delay before the next step is attempted
	Place    Placement
}

// Options resolves the step against the current view.
func (s PatternStep) Options(v PatternView) SpawnOptions {
	if s.Place == nil {
		return SpawnOptions{StartX: Some(v.Origin(s.Spacing) + float64(s.Index)*s.Spacing)}
	}
	return s.Place(v, s)
}

// Pattern is a named, declarative multi-step spawn sequence.
type Pattern struct {
	Name          string
	Weight        float64
	MinDifficulty int
	Templates     []string // Step i uses Templates[i % len]
	Count         int
	Spacing       float64
	WaitMs        float64
	Place         Placement
}

// Steps expands the pattern into queue entries.
func (p Pattern) Steps() []PatternStep {
	if len(p.Templates) == 0 {
		return nil
	}
	steps := make([]PatternStep, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		steps = append(steps, PatternStep{
			Pattern:  p.Name,
			Template: p.Templates[i%len(p.Templates)],
			Index:    i,
			Spacing:  p.Spacing,
			WaitMs:   p.WaitMs,
			Place:    p.Place,
		})
	}
	return steps
}

// ErrInvalidPattern is returned when a pattern fails validation.
var ErrInvalidPattern = errors.New("runner: invalid pattern")

// Validate checks the pattern's shape. Template names are resolved lazily;
// a step naming an unknown template is dropped when it reaches the queue head.
func (p Pattern) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidPattern)
	case p.Weight <= 0:
		return fmt.Errorf("%w %q: weight must be positive", ErrInvalidPattern, p.Name)
	case p.Count <= 0:
		return fmt.Errorf("%w %q: count must be positive", ErrInvalidPattern, p.Name)
	case len(p.Templates) == 0:
		return fmt.Errorf("%w %q: no templates", ErrInvalidPattern, p.Name)
	case p.Spacing < 0 || p.WaitMs < 0:
		return fmt.Errorf("%w %q: negative spacing or wait", ErrInvalidPattern, p.Name)
	}
	return nil
}

// PatternLibrary is the validated set of patterns the director draws from.
type PatternLibrary struct {
	patterns []Pattern
}

// NewPatternLibrary validates the patterns and rejects duplicate names.
func NewPatternLibrary(patterns []Pattern) (*PatternLibrary, error) {
	seen := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w %q: duplicate name", ErrInvalidPattern, p.Name)
		}
		seen[p.Name] = true
	}
	return &PatternLibrary{patterns: append([]Pattern(nil), patterns...)}, nil
}

// Eligible returns the patterns whose difficulty gate is met.
func (l *PatternLibrary) Eligible(difficulty int) []Pattern {
	out := make([]Pattern, 0, len(l.patterns))
	for _, p := range l.patterns {
		if p.MinDifficulty <= difficulty {
			out = append(out, p)
		}
	}
	return out
}

// Choose draws an eligible pattern by weight.
func (l *PatternLibrary) Choose(r Rand, difficulty int) (Pattern, bool) {
	return pickWeighted(r, l.Eligible(difficulty), func(p Pattern) float64 { return p.Weight })
}

// DefaultPatterns returns the winter course patterns.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:      "tree-volley",
			Weight:    3,
			Templates: []string{"tree-double", "tree-single"},
			Count:     2,
			Spacing:   320,
			WaitMs:    320,
			Place:     placeTreeVolley,
		},
		{
			Name:          "ptera-chase",
			Weight:        2,
			MinDifficulty: 1,
			Templates:     []string{"pterodactyl"},
			Count:         2,
			Spacing:       280,
			WaitMs:        260,
			Place:         placePteraChase,
		},
		{
			Name:          "snowball-rush",
			Weight:        2,
			MinDifficulty: 1,
			Templates:     []string{"snowball"},
			Count:         2,
			Spacing:       360,
			WaitMs:        320,
			Place:         placeSnowballRush,
		},
		{
			Name:          "icicle-storm",
			Weight:        1.5,
			MinDifficulty: 1,
			Templates:     []string{"icicle"},
			Count:         3,
			Spacing:       220,
			WaitMs:        220,
			Place:         placeIcicleStorm,
		},
		{
			Name:          "meteor-rain",
			Weight:        1,
			MinDifficulty: 2,
			Templates:     []string{"meteor"},
			Count:         3,
			Spacing:       260,
			WaitMs:        220,
			Place:         placeMeteorRain,
		},
	}
}

func stepX(v PatternView, s PatternStep) float64 {
	return v.Origin(s.Spacing) + float64(s.Index)*s.Spacing
}

func placeTreeVolley(v PatternView, s PatternStep) SpawnOptions {
	return SpawnOptions{
		StartX: Some(stepX(v, s)),
		MinGap: Some(v.TemplateGap()),
	}
}

func placePteraChase(v PatternView, s PatternStep) SpawnOptions {
	lift := 40.0
	if v.Template.Elevation != nil {
		lift = v.Template.Elevation.Min
	}
	i := float64(s.Index)
	return SpawnOptions{
		StartX:      Some(stepX(v, s)),
		StartY:      Some(v.GroundY - v.Template.Height.Min - lift - i*12),
		SpeedOffset: Some(-40 + i*20),
	}
}

func placeSnowballRush(v PatternView, s PatternStep) SpawnOptions {
	return SpawnOptions{
		StartX:      Some(stepX(v, s)),
		SpeedOffset: Some(-20 + float64(s.Index)*10),
		MinGap:      Some(v.TemplateGap()),
	}
}

func placeIcicleStorm(v PatternView, s PatternStep) SpawnOptions {
	return SpawnOptions{
		StartX:      Some(stepX(v, s)),
		DropDelayMs: Some(120 + float64(s.Index)*70),
		MinGap:      Some(v.TemplateGap()),
	}
}

func placeMeteorRain(v PatternView, s PatternStep) SpawnOptions {
	i := float64(s.Index)
	return SpawnOptions{
		StartX:        Some(stepX(v, s)),
		StartY:        Some(60 + i*20),
		VerticalSpeed: Some(180 + i*20),
		MinGap:        Some(v.TemplateGap()),
	}
}
