// Package config provides YAML-based tuning for the runner simulation and
// difficulty presets.
package config

import "github.com/vovakirdan/tui-runner/internal/core"

// RunnerConfig contains all tuning for the runner simulation.
type RunnerConfig struct {
	World    WorldConfig   `yaml:"world"`
	Physics  PhysicsConfig `yaml:"physics"`
	Actor    ActorConfig   `yaml:"actor"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Spawn    SpawnConfig   `yaml:"spawn"`
	PowerUps PowerUpConfig `yaml:"powerups"`
}

// WorldConfig defines the playfield in world pixels.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Height of the ground strip below the ground line
	CullMarginX  float64 `yaml:"cull_margin_x"` // Distance past the left edge before an obstacle is dropped
	CullMarginY  float64 `yaml:"cull_margin_y"` // Distance above/below the world before an obstacle is dropped
}

// GroundY returns the y coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// PhysicsConfig defines actor motion and tick clamping.
type PhysicsConfig struct {
	BaseSpeed    float64 `yaml:"base_speed"`     // World scroll speed at multiplier 1, px/s
	Gravity      float64 `yaml:"gravity"`        // px/s²
	JumpVelocity float64 `yaml:"jump_velocity"`  // Negative is up, px/s
	AirJumpScale float64 `yaml:"air_jump_scale"` // Fraction of jump velocity used by the air jump
	CoyoteMs     float64 `yaml:"coyote_ms"`
	JumpBufferMs float64 `yaml:"jump_buffer_ms"`
	MaxDeltaMs   float64 `yaml:"max_delta_ms"`
}

// ActorConfig defines the controllable actor's geometry.
type ActorConfig struct {
	X           float64     `yaml:"x"`
	Width       float64     `yaml:"width"`
	Height      float64     `yaml:"height"`
	Hitbox      core.Insets `yaml:"hitbox"`       // Insets used against hazards
	PickupInset float64     `yaml:"pickup_inset"` // Uniform inset used against pickups
}

// ScoringConfig defines score accrual, speed milestones and lives.
type ScoringConfig struct {
	ScoreRate          float64 `yaml:"score_rate"` // Points per millisecond at multiplier 1
	PassBonus          int     `yaml:"pass_bonus"`
	MilestoneScore     int     `yaml:"milestone_score"`
	MilestoneIncrement float64 `yaml:"milestone_increment"`
	MaxSpeedMultiplier float64 `yaml:"max_speed_multiplier"`
	MaxLives           int     `yaml:"max_lives"`
	LifeBonusInterval  int     `yaml:"life_bonus_interval"` // Speed milestones per bonus life
	DifficultyStep     int     `yaml:"difficulty_step"`     // Score per difficulty level, 0 disables
	PixelsPerMeter     float64 `yaml:"pixels_per_meter"`
	DustIntervalMs     float64 `yaml:"dust_interval_ms"`
}

// SpawnConfig defines the spawn director's timing, gating and spacing.
type SpawnConfig struct {
	InitialDelayMs    float64     `yaml:"initial_delay_ms"`
	BaseIntervalMs    float64     `yaml:"base_interval_ms"`
	MinIntervalMs     float64     `yaml:"min_interval_ms"`
	IntervalVariance  float64     `yaml:"interval_variance"` // Fraction, interval is scaled by U(1-v, 1+v)
	DifficultyRampMs  float64     `yaml:"difficulty_ramp_ms"`
	DefaultMinGap     float64     `yaml:"default_min_gap"`
	SafeMinGap        float64     `yaml:"safe_min_gap"`
	GapDecay          float64     `yaml:"gap_decay"` // Gap shrink per difficulty level
	MaxGapShift       float64     `yaml:"max_gap_shift"`
	MaxSameTypeStreak int         `yaml:"max_same_type_streak"`
	MaxActive         int         `yaml:"max_active"`
	GlobalCooldownMs  float64     `yaml:"global_cooldown_ms"`
	LaneCooldownMs    LaneTimings `yaml:"lane_cooldown_ms"`
	LaneLimits        LaneCounts  `yaml:"lane_limits"`
	RetryBackoffMs    float64     `yaml:"retry_backoff_ms"`
	PatternScoreGap   Range       `yaml:"pattern_score_gap"`
	PatternCooldownMs float64     `yaml:"pattern_cooldown_ms"`
	PatternLead       float64     `yaml:"pattern_lead"` // Distance past the right edge where patterns start
}

// LaneTimings holds one duration per lane.
type LaneTimings struct {
	Ground   float64 `yaml:"ground"`
	Aerial   float64 `yaml:"aerial"`
	Vertical float64 `yaml:"vertical"`
}

// LaneCounts holds one occupancy limit per lane.
type LaneCounts struct {
	Ground   int `yaml:"ground"`
	Aerial   int `yaml:"aerial"`
	Vertical int `yaml:"vertical"`
}

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PowerUpConfig defines how pickups move across the world.
type PowerUpConfig struct {
	ScrollFactor float64 `yaml:"scroll_factor"` // Fraction of world speed
	SpawnLead    float64 `yaml:"spawn_lead"`    // Distance past the right edge at spawn
	CullMargin   float64 `yaml:"cull_margin"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset, defaulting to normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return DifficultyNormal, false
	}
}
