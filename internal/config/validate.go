package config

import (
	"errors"
	"fmt"
)

// Validate reports every setting that would make the simulation misbehave.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world: size must be positive, got %gx%g", c.World.Width, c.World.Height)
	check(c.World.GroundHeight >= 0 && c.World.GroundHeight < c.World.Height, "world: ground_height %g out of range", c.World.GroundHeight)

	check(c.Physics.BaseSpeed > 0, "physics: base_speed must be positive")
	check(c.Physics.Gravity > 0, "physics: gravity must be positive")
	check(c.Physics.JumpVelocity < 0, "physics: jump_velocity must be negative (up)")
	check(c.Physics.MaxDeltaMs > 0, "physics: max_delta_ms must be positive")
	check(c.Physics.CoyoteMs >= 0 && c.Physics.JumpBufferMs >= 0, "physics: coyote_ms and jump_buffer_ms must not be negative")

	check(c.Actor.Width > 0 && c.Actor.Height > 0, "actor: size must be positive")
	check(c.Actor.Hitbox.Left+c.Actor.Hitbox.Right < c.Actor.Width, "actor: hitbox insets exceed width")
	check(c.Actor.Hitbox.Top+c.Actor.Hitbox.Bottom < c.Actor.Height, "actor: hitbox insets exceed height")

	check(c.Scoring.ScoreRate >= 0, "scoring: score_rate must not be negative")
	check(c.Scoring.MaxSpeedMultiplier >= 1, "scoring: max_speed_multiplier must be at least 1")
	check(c.Scoring.MaxLives >= 1, "scoring: max_lives must be at least 1")
	check(c.Scoring.MilestoneScore > 0, "scoring: milestone_score must be positive")
	check(c.Scoring.PixelsPerMeter > 0, "scoring: pixels_per_meter must be positive")

	check(c.Spawn.MinIntervalMs > 0, "spawn: min_interval_ms must be positive")
	check(c.Spawn.BaseIntervalMs >= c.Spawn.MinIntervalMs, "spawn: base_interval_ms below min_interval_ms")
	check(c.Spawn.IntervalVariance >= 0 && c.Spawn.IntervalVariance < 1, "spawn: interval_variance must be in [0, 1)")
	check(c.Spawn.SafeMinGap >= 0, "spawn: safe_min_gap must not be negative")
	check(c.Spawn.MaxActive >= 1, "spawn: max_active must be at least 1")
	check(c.Spawn.MaxSameTypeStreak >= 1, "spawn: max_same_type_streak must be at least 1")
	check(c.Spawn.PatternScoreGap.Min > 0 && c.Spawn.PatternScoreGap.Max >= c.Spawn.PatternScoreGap.Min,
		"spawn: pattern_score_gap must satisfy 0 < min <= max")

	check(c.PowerUps.ScrollFactor > 0, "powerups: scroll_factor must be positive")

	return errors.Join(errs...)
}
