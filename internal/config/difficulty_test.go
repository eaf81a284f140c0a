package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	s := DefaultRunnerConfig().Scoring
	tests := []struct {
		score int
		want  int
	}{
		{0, 0},
		{2499, 0},
		{2500, 1},
		{7499, 2},
		{25000, 10},
		{-10, 0},
	}
	for _, tt := range tests {
		if got := s.DifficultyLevel(tt.score); got != tt.want {
			t.Errorf("DifficultyLevel(%d) = %d, expected %d", tt.score, got, tt.want)
		}
	}

	s.DifficultyStep = 0
	if got := s.DifficultyLevel(1_000_000); got != 0 {
		t.Errorf("disabled progression gave level %d", got)
	}
}

func TestLifeMilestone(t *testing.T) {
	s := DefaultRunnerConfig().Scoring
	if got := s.LifeMilestone(14999); got != 0 {
		t.Errorf("LifeMilestone(14999) = %d, expected 0", got)
	}
	if got := s.LifeMilestone(15000); got != 1 {
		t.Errorf("LifeMilestone(15000) = %d, expected 1", got)
	}
	if got := s.MilestoneCount(10001); got != 2 {
		t.Errorf("MilestoneCount(10001) = %d, expected 2", got)
	}
}

func TestDynamicMinGapNeverBelowFloor(t *testing.T) {
	s := DefaultRunnerConfig().Spawn

	if got := s.DynamicMinGap(0, 0); got != 240 {
		t.Errorf("default gap at level 0 = %g, expected the 240 floor", got)
	}
	if got := s.DynamicMinGap(300, 4); got != 280 {
		t.Errorf("DynamicMinGap(300, 4) = %g, expected 280", got)
	}
	for level := 0; level < 200; level++ {
		if got := s.DynamicMinGap(300, level); got < s.SafeMinGap {
			t.Fatalf("level %d gap %g below floor %g", level, got, s.SafeMinGap)
		}
	}
}

func TestSpawnIntervalBounds(t *testing.T) {
	s := DefaultRunnerConfig().Spawn

	if got := s.SpawnInterval(0, 0.5); got != 1500 {
		t.Errorf("midpoint draw at level 0 = %g, expected 1500", got)
	}
	if got := s.SpawnInterval(0, 0); math.Abs(got-1125) > 1e-9 {
		t.Errorf("low draw at level 0 = %g, expected 1125", got)
	}
	for level := 0; level < 100; level += 7 {
		for _, u := range []float64{0, 0.25, 0.5, 0.999} {
			if got := s.SpawnInterval(level, u); got < s.MinIntervalMs {
				t.Fatalf("SpawnInterval(%d, %g) = %g below min", level, u, got)
			}
		}
	}
}

func TestLaneLookups(t *testing.T) {
	s := DefaultRunnerConfig().Spawn
	if s.LaneCooldown("aerial") != 520 || s.LaneLimit("vertical") != 1 {
		t.Error("lane lookups returned wrong values")
	}
	if s.LaneCooldown("sky") != 0 || s.LaneLimit("sky") != 0 {
		t.Error("unknown lane should yield zero")
	}
}
