package config

import "math"

// DifficultyLevel returns floor(score / difficulty step).
// A non-positive step disables progression and the level stays at zero.
func (s ScoringConfig) DifficultyLevel(score int) int {
	if s.DifficultyStep <= 0 || score <= 0 {
		return 0
	}
	return score / s.DifficultyStep
}

// MilestoneCount returns how many speed milestones a score has crossed.
func (s ScoringConfig) MilestoneCount(score int) int {
	if s.MilestoneScore <= 0 || score <= 0 {
		return 0
	}
	return score / s.MilestoneScore
}

// LifeMilestone returns the coarse milestone index used for bonus lives.
func (s ScoringConfig) LifeMilestone(score int) int {
	step := s.MilestoneScore * s.LifeBonusInterval
	if step <= 0 || score <= 0 {
		return 0
	}
	return score / step
}

// DynamicMinGap shrinks a template's base gap linearly with difficulty but
// never below the safety floor.
func (s SpawnConfig) DynamicMinGap(baseGap float64, difficulty int) float64 {
	if baseGap <= 0 {
		baseGap = s.DefaultMinGap
	}
	return math.Max(s.SafeMinGap, baseGap-float64(difficulty)*s.GapDecay)
}

// SpawnInterval returns the procedural spawn countdown for a difficulty level.
// u is a uniform draw in [0, 1) that selects the variance factor.
func (s SpawnConfig) SpawnInterval(difficulty int, u float64) float64 {
	base := math.Max(s.MinIntervalMs, s.BaseIntervalMs-float64(difficulty)*s.DifficultyRampMs)
	factor := 1 - s.IntervalVariance + 2*s.IntervalVariance*u
	return math.Max(s.MinIntervalMs, base*factor)
}

// LaneCooldown returns the cooldown for a lane name, or zero for an unknown lane.
func (s SpawnConfig) LaneCooldown(lane string) float64 {
	switch lane {
	case "ground":
		return s.LaneCooldownMs.Ground
	case "aerial":
		return s.LaneCooldownMs.Aerial
	case "vertical":
		return s.LaneCooldownMs.Vertical
	default:
		return 0
	}
}

// LaneLimit returns the occupancy limit for a lane name, or zero for an unknown lane.
func (s SpawnConfig) LaneLimit(lane string) int {
	switch lane {
	case "ground":
		return s.LaneLimits.Ground
	case "aerial":
		return s.LaneLimits.Aerial
	case "vertical":
		return s.LaneLimits.Vertical
	default:
		return 0
	}
}
