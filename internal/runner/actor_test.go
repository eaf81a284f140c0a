package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestActorGroundJump(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	groundY := cfg.World.GroundY()
	a := NewActor(cfg)

	if ev := a.RequestJump(cfg.Physics, false); !ev.Has(ActorBuffered) {
		t.Fatalf("grounded press should buffer, got %v", ev)
	}
	ev := a.Integrate(16, cfg.Physics, groundY, false)
	if !ev.Has(ActorJumped) || a.Grounded {
		t.Fatalf("buffered press should jump on integration, ev=%v actor=%+v", ev, a)
	}
	if want := -950 + 2600*0.016; math.Abs(a.VY-want) > 1e-9 {
		t.Errorf("VY = %g, expected %g", a.VY, want)
	}

	landed := false
	for i := 0; i < 200 && !landed; i++ {
		landed = a.Integrate(16, cfg.Physics, groundY, false).Has(ActorLanded)
	}
	if !landed || a.Y != groundY || a.VY != 0 {
		t.Errorf("actor should land back on the ground, got %+v", a)
	}
}

func TestActorCoyoteTime(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	groundY := cfg.World.GroundY()

	tests := []struct {
		name     string
		coyoteMs float64
		wantJump bool
	}{
		{"within coyote window", 100, true},
		{"after coyote window", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActor(cfg)
			a.Grounded = false
			a.Y = groundY - 5
			a.CoyoteMs = tt.coyoteMs

			a.RequestJump(cfg.Physics, false)
			ev := a.Integrate(16, cfg.Physics, groundY, false)
			if got := ev.Has(ActorJumped); got != tt.wantJump {
				t.Errorf("jumped = %v, expected %v", got, tt.wantJump)
			}
		})
	}
}

func TestActorAirJump(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	groundY := cfg.World.GroundY()

	a := NewActor(cfg)
	a.Grounded = false
	a.Y = groundY - 100
	a.ExtraJumpAvailable = true

	if ev := a.RequestJump(cfg.Physics, false); ev.Has(ActorAirJumped) {
		t.Fatal("air jump should need the effect")
	}
	a.JumpBufferMs = 0

	ev := a.RequestJump(cfg.Physics, true)
	if !ev.Has(ActorAirJumped) {
		t.Fatalf("expected air jump, got %v", ev)
	}
	if math.Abs(a.VY-(-874)) > 1e-9 {
		t.Errorf("air jump VY = %g, expected -874", a.VY)
	}
	if a.ExtraJumpAvailable {
		t.Error("air jump should be consumed")
	}

	if ev := a.RequestJump(cfg.Physics, true); !ev.Has(ActorBuffered) {
		t.Errorf("second air press should buffer, got %v", ev)
	}
}

func TestActorLandingRearmsAirJump(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	groundY := cfg.World.GroundY()

	tests := []struct {
		name   string
		active bool
		want   bool
	}{
		{"effect active", true, true},
		{"effect inactive", false, false},
	}
	for _, tt := range tests {
		a := NewActor(cfg)
		a.Grounded = false
		a.Y = groundY - 1
		a.VY = 100

		ev := a.Integrate(16, cfg.Physics, groundY, tt.active)
		if !ev.Has(ActorLanded) {
			t.Fatalf("%s: expected landing", tt.name)
		}
		if a.ExtraJumpAvailable != tt.want {
			t.Errorf("%s: ExtraJumpAvailable = %v, expected %v", tt.name, a.ExtraJumpAvailable, tt.want)
		}
	}
}

func TestActorBox(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	a := NewActor(cfg)
	b := a.Box()
	if b.Left != 120 || b.Top != 200 || b.Right != 166 || b.Bottom != 250 {
		t.Errorf("Box() = %+v", b)
	}
}
