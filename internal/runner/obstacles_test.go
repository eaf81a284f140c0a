package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestObstacleBehaviors(t *testing.T) {
	groundY := config.DefaultRunnerConfig().World.GroundY()

	t.Run("falling waits then settles", func(t *testing.T) {
		o := Obstacle{X: 500, Height: 70, Width: 26, Behavior: BehaviorFalling, Gravity: 2400, DropDelayMs: 100}
		o.update(50, 0, 0, groundY)
		o.update(50, 0, 0, groundY)
		if o.Y != 0 || o.VY != 0 {
			t.Fatalf("icicle moved during its drop delay: y=%g vy=%g", o.Y, o.VY)
		}
		o.update(100, 0, 0, groundY)
		if o.Y <= 0 {
			t.Fatalf("icicle should be falling, y=%g", o.Y)
		}
		for i := 0; i < 100; i++ {
			o.update(16, 0, 0, groundY)
		}
		if o.Y != groundY-70 || o.VY != 0 {
			t.Errorf("icicle should rest on the ground, y=%g vy=%g", o.Y, o.VY)
		}
	})

	t.Run("meteor descends at a constant rate", func(t *testing.T) {
		o := Obstacle{X: 500, Y: 60, Height: 24, Width: 38, Behavior: BehaviorMeteor, VerticalSpeed: 220}
		o.update(100, 0, 0, groundY)
		if math.Abs(o.Y-82) > 1e-9 {
			t.Fatalf("meteor y = %g, expected 82", o.Y)
		}
		for i := 0; i < 100; i++ {
			o.update(16, 0, 0, groundY)
		}
		if o.Y <= groundY || o.VerticalSpeed != 220 {
			t.Errorf("meteor should fall through the ground line, y=%g speed=%g", o.Y, o.VerticalSpeed)
		}
	})

	t.Run("rolling stays on the ground", func(t *testing.T) {
		o := Obstacle{X: 500, Y: 10, Height: 46, Width: 46, Behavior: BehaviorRolling, RollScale: 1.2}
		for i := 0; i < 200; i++ {
			o.update(16, 360, 0, groundY)
			if o.Rotation < 0 || o.Rotation >= 2*math.Pi {
				t.Fatalf("rotation %g out of range", o.Rotation)
			}
		}
		if o.Y != groundY-46 {
			t.Errorf("snowball y = %g, expected %g", o.Y, groundY-46)
		}
	})

	t.Run("speed offset", func(t *testing.T) {
		o := Obstacle{X: 500, Width: 10, Height: 10, SpeedOffset: -40}
		o.update(1000, 360, 0, groundY)
		if o.X != 180 {
			t.Errorf("x = %g, expected 180", o.X)
		}
	})
}

func TestRegistryPassAndCull(t *testing.T) {
	world := config.DefaultRunnerConfig().World
	r := NewRegistry(world)
	r.Add(Obstacle{Type: "a", X: 115, Width: 10, Height: 10})
	r.Add(Obstacle{Type: "b", X: -85, Width: 10, Height: 10})
	r.Add(Obstacle{Type: "c", X: 500, Y: world.Height + world.CullMarginY - 1, Width: 10, Height: 10})

	if passed := r.Update(16, 360, 120); passed != 2 {
		t.Errorf("Update() passed = %d, expected 2", passed)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 after culling b", r.Len())
	}
	if passed := r.Update(16, 360, 120); passed != 0 {
		t.Errorf("second Update() passed = %d, obstacles pass once", passed)
	}
	if r.ActiveCount() != 1 {
		t.Errorf("ActiveCount() = %d, expected 1", r.ActiveCount())
	}

	r.items[1].Y = world.Height + world.CullMarginY + 1
	r.Update(0, 0, 120)
	if r.Len() != 1 || r.At(0).Type != "a" {
		t.Errorf("obstacle below the world should be culled, got %+v", r.All())
	}
}

func TestRegistryFurthestEdgeAndHits(t *testing.T) {
	r := NewRegistry(config.DefaultRunnerConfig().World)
	if _, ok := r.FurthestEdge(); ok {
		t.Fatal("empty registry should have no edge")
	}

	r.Add(Obstacle{X: 100, Y: 100, Width: 20, Height: 20})
	r.Add(Obstacle{X: 300, Y: 100, Width: 50, Height: 20})
	if edge, _ := r.FurthestEdge(); edge != 350 {
		t.Errorf("FurthestEdge() = %g, expected 350", edge)
	}

	tests := []struct {
		name string
		x    float64
		want int
	}{
		{"miss", 200, -1},
		{"first", 110, 0},
		{"second", 320, 1},
		{"touching edge", 120, -1},
	}
	for _, tt := range tests {
		box := Obstacle{X: tt.x, Y: 100, Width: 10, Height: 10}.Box()
		if got := r.FirstHit(box); got != tt.want {
			t.Errorf("%s: FirstHit() = %d, expected %d", tt.name, got, tt.want)
		}
	}

	all := r.All()
	all[0].X = -1
	if r.At(0).X != 100 {
		t.Error("All() should return a copy")
	}
	r.Remove(0)
	if r.Len() != 1 || r.At(0).X != 300 {
		t.Error("Remove(0) should drop the first obstacle")
	}
}

func TestRegistryCullsFallenMeteor(t *testing.T) {
	world := config.DefaultRunnerConfig().World
	r := NewRegistry(world)
	r.Add(Obstacle{Type: "meteor", X: 400, Y: 60, Width: 38, Height: 24, Behavior: BehaviorMeteor, VerticalSpeed: 220})

	// 220 px/s from y=60 clears the bottom margin well inside five seconds.
	for i := 0; i < 300 && r.Len() > 0; i++ {
		r.Update(16, 0, 0)
	}
	if r.Len() != 0 {
		t.Errorf("meteor below the world should be culled, got %+v", r.All())
	}
}
