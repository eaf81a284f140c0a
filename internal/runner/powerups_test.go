package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func newTestScheduler() *PowerUpScheduler {
	cfg := config.DefaultRunnerConfig()
	return NewPowerUpScheduler(cfg.PowerUps, cfg.World)
}

func TestPowerUpThresholds(t *testing.T) {
	s := newTestScheduler()

	if got := s.Update(2499); len(got) != 0 {
		t.Fatalf("Update(2499) = %v, expected nothing", got)
	}

	got := s.Update(2500)
	if len(got) != 1 || got[0] != KindDoubleJump {
		t.Fatalf("Update(2500) = %v, expected [doublejump]", got)
	}
	p := s.Pickups()[0]
	if p.X != 1008 || p.Y != 132 {
		t.Errorf("pickup at (%g, %g), expected (1008, 132)", p.X, p.Y)
	}
	if s.NextThreshold(KindDoubleJump) != 8000 {
		t.Errorf("NextThreshold() = %d, expected 8000", s.NextThreshold(KindDoubleJump))
	}

	got = s.Update(8000)
	for _, k := range got {
		if k == KindDoubleJump {
			t.Error("a kind already on screen must not spawn twice")
		}
	}
	if len(got) != 4 {
		t.Errorf("Update(8000) spawned %v, expected the four other kinds", got)
	}
	if s.NextThreshold(KindDoubleJump) != 13500 {
		t.Errorf("threshold should advance even without a spawn, got %d", s.NextThreshold(KindDoubleJump))
	}

	s.ResetSchedule()
	s.ClearPickups()
	if s.NextThreshold(KindShield) != 4000 || len(s.Pickups()) != 0 {
		t.Error("ResetSchedule() and ClearPickups() should restore the start state")
	}
}

func TestPowerUpMoveAndCull(t *testing.T) {
	s := newTestScheduler()
	s.Update(2500)

	s.Move(1000, 400)
	if got := s.Pickups()[0].X; got != 668 {
		t.Errorf("pickup x = %g, expected 668", got)
	}

	s.Move(10000, 400)
	if len(s.Pickups()) != 0 {
		t.Error("pickup past the cull margin should be removed")
	}
}

func TestPowerUpCollect(t *testing.T) {
	s := newTestScheduler()
	s.Update(2500)
	p := s.Pickups()[0]

	if got := s.Collect(core.BoxAt(0, 0, 10, 10)); len(got) != 0 {
		t.Fatalf("Collect() far away = %v", got)
	}
	got := s.Collect(core.BoxAt(p.X+5, p.Y+5, 10, 10))
	if len(got) != 1 || got[0] != KindDoubleJump {
		t.Fatalf("Collect() = %v, expected [doublejump]", got)
	}
	if len(s.Pickups()) != 0 {
		t.Error("collected pickup should be removed")
	}
}
