package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-runner/internal/core"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// GetDefaultYAML returns the embedded default configuration file.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        960,
			Height:       320,
			GroundHeight: 70,
			CullMarginX:  80,
			CullMarginY:  120,
		},
		Physics: PhysicsConfig{
			BaseSpeed:    360,
			Gravity:      2600,
			JumpVelocity: -950,
			AirJumpScale: 0.92,
			CoyoteMs:     120,
			JumpBufferMs: 150,
			MaxDeltaMs:   32,
		},
		Actor: ActorConfig{
			X:           120,
			Width:       46,
			Height:      50,
			Hitbox:      core.Insets{Left: 6, Right: 6, Top: 6, Bottom: 2},
			PickupInset: 4,
		},
		Scoring: ScoringConfig{
			ScoreRate:          0.25,
			PassBonus:          125,
			MilestoneScore:     5000,
			MilestoneIncrement: 0.15,
			MaxSpeedMultiplier: 3,
			MaxLives:           3,
			LifeBonusInterval:  3,
			DifficultyStep:     2500,
			PixelsPerMeter:     100,
			DustIntervalMs:     70,
		},
		Spawn: SpawnConfig{
			InitialDelayMs:    600,
			BaseIntervalMs:    1500,
			MinIntervalMs:     850,
			IntervalVariance:  0.25,
			DifficultyRampMs:  45,
			DefaultMinGap:     120,
			SafeMinGap:        240,
			GapDecay:          5,
			MaxGapShift:       480,
			MaxSameTypeStreak: 2,
			MaxActive:         2,
			GlobalCooldownMs:  320,
			LaneCooldownMs:    LaneTimings{Ground: 420, Aerial: 520, Vertical: 560},
			LaneLimits:        LaneCounts{Ground: 1, Aerial: 1, Vertical: 1},
			RetryBackoffMs:    90,
			PatternScoreGap:   Range{Min: 2400, Max: 4200},
			PatternCooldownMs: 1800,
			PatternLead:       160,
		},
		PowerUps: PowerUpConfig{
			ScrollFactor: 0.85,
			SpawnLead:    20,
			CullMargin:   40,
		},
	}
}
