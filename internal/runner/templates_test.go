package runner

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := NewCatalog(DefaultTemplates())
	if err != nil {
		t.Fatalf("NewCatalog(defaults) error: %v", err)
	}
	if c.Len() != 6 {
		t.Errorf("Len() = %d, expected 6", c.Len())
	}

	snowball, err := c.Lookup("snowball")
	if err != nil || snowball.Behavior() != BehaviorRolling {
		t.Errorf("Lookup(snowball) = %v, %v", snowball.Behavior(), err)
	}
	if _, err := c.Lookup("yeti"); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("Lookup(yeti) error = %v, expected ErrUnknownTemplate", err)
	}

	tests := []struct {
		speed      float64
		difficulty int
		expected   int
	}{
		{1, 0, 2},
		{1.15, 0, 3},
		{1.15, 1, 5},
		{3, 2, 6},
	}
	for _, tt := range tests {
		if got := len(c.Eligible(tt.speed, tt.difficulty)); got != tt.expected {
			t.Errorf("Eligible(%g, %d) = %d templates, expected %d", tt.speed, tt.difficulty, got, tt.expected)
		}
	}
}

func TestTemplateValidate(t *testing.T) {
	valid := blockTemplate("rock", LaneGround)

	tests := []struct {
		name   string
		modify func(*Template)
	}{
		{"no name", func(t *Template) { t.Name = "" }},
		{"zero weight", func(t *Template) { t.Weight = 0 }},
		{"bad lane", func(t *Template) { t.Lane = "tunnel" }},
		{"inverted width", func(t *Template) { t.Width = Span{Min: 20, Max: 10} }},
		{"zero height", func(t *Template) { t.Height = Fixed(0) }},
		{"hitbox too large", func(t *Template) { t.Hitbox = core.Insets{Left: 10, Right: 10} }},
		{"negative hitbox", func(t *Template) { t.Hitbox = core.Insets{Left: -1} }},
		{"bad elevation", func(t *Template) { t.Elevation = &Span{Min: -5, Max: 5} }},
		{"bad roll", func(t *Template) { t.Rolling = &RollingParams{} }},
		{"two behaviors", func(t *Template) {
			t.Rolling = &RollingParams{RollScale: 1}
			t.Meteor = &MeteorParams{DescentSpeed: 100}
		}},
	}
	for _, tt := range tests {
		tpl := valid
		tt.modify(&tpl)
		if err := tpl.Validate(); !errors.Is(err, ErrInvalidTemplate) {
			t.Errorf("%s: Validate() = %v, expected ErrInvalidTemplate", tt.name, err)
		}
	}

	if _, err := NewCatalog([]Template{valid, valid}); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("duplicate names error = %v, expected ErrInvalidTemplate", err)
	}
}

func TestPatternLibrary(t *testing.T) {
	lib, err := NewPatternLibrary(DefaultPatterns())
	if err != nil {
		t.Fatalf("NewPatternLibrary(defaults) error: %v", err)
	}
	if got := len(lib.Eligible(0)); got != 1 {
		t.Errorf("Eligible(0) = %d patterns, expected 1", got)
	}
	if got := len(lib.Eligible(2)); got != 5 {
		t.Errorf("Eligible(2) = %d patterns, expected 5", got)
	}

	bad := []Pattern{
		{Weight: 1, Templates: []string{"a"}, Count: 1},
		{Name: "p", Templates: []string{"a"}, Count: 1},
		{Name: "p", Weight: 1, Templates: []string{"a"}},
		{Name: "p", Weight: 1, Count: 1},
		{Name: "p", Weight: 1, Templates: []string{"a"}, Count: 1, Spacing: -1},
	}
	for i, p := range bad {
		if _, err := NewPatternLibrary([]Pattern{p}); !errors.Is(err, ErrInvalidPattern) {
			t.Errorf("bad pattern #%d: error = %v, expected ErrInvalidPattern", i, err)
		}
	}
}

func TestPatternSteps(t *testing.T) {
	var volley Pattern
	for _, p := range DefaultPatterns() {
		if p.Name == "tree-volley" {
			volley = p
		}
	}
	steps := volley.Steps()
	if len(steps) != 2 || steps[0].Template != "tree-double" || steps[1].Template != "tree-single" {
		t.Fatalf("tree-volley steps = %+v", steps)
	}
	if steps[1].Index != 1 || steps[1].WaitMs != 320 {
		t.Errorf("step 1 = %+v", steps[1])
	}
}

func TestPteraChasePlacement(t *testing.T) {
	catalog, _ := NewCatalog(DefaultTemplates())
	ptera, _ := catalog.Lookup("pterodactyl")
	view := PatternView{
		Template:      ptera,
		GroundY:       250,
		WorldWidth:    960,
		Lead:          160,
		DefaultMinGap: 120,
	}
	step := PatternStep{Pattern: "ptera-chase", Template: "pterodactyl", Index: 1, Spacing: 280, Place: placePteraChase}

	opts := step.Options(view)
	if opts.StartX.V != 1400 {
		t.Errorf("StartX = %g, expected 1400", opts.StartX.V)
	}
	if opts.StartY.V != 180 {
		t.Errorf("StartY = %g, expected 180", opts.StartY.V)
	}
	if opts.SpeedOffset.V != -20 {
		t.Errorf("SpeedOffset = %g, expected -20", opts.SpeedOffset.V)
	}

	view.FurthestEdge, view.HasEdge = 1500, true
	if got := step.Options(view).StartX.V; got != 2060 {
		t.Errorf("StartX behind an obstacle = %g, expected 2060", got)
	}
}
