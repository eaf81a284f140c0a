package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig():\n got %+v\nwant %+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if got := DefaultRunnerConfig().World.GroundY(); got != 250 {
		t.Errorf("GroundY() = %g, expected 250", got)
	}
}

func TestLoadRunnerPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := "physics:\n  base_speed: 500\nspawn:\n  max_active: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() error: %v", err)
	}
	if cfg.Physics.BaseSpeed != 500 {
		t.Errorf("BaseSpeed = %g, expected 500", cfg.Physics.BaseSpeed)
	}
	if cfg.Spawn.MaxActive != 4 {
		t.Errorf("MaxActive = %d, expected 4", cfg.Spawn.MaxActive)
	}
	if cfg.Physics.Gravity != 2600 {
		t.Errorf("Gravity = %g, unspecified keys should keep defaults", cfg.Physics.Gravity)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunner(invalid)
	if err == nil || !strings.Contains(err.Error(), "gravity") {
		t.Errorf("expected validation error mentioning gravity, got %v", err)
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.World.Width = 0
	cfg.Spawn.IntervalVariance = 1.5
	cfg.Scoring.MaxLives = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"world", "interval_variance", "max_lives"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		increment float64
		step      int
	}{
		{DifficultyEasy, 5, 0.15, 2500},
		{DifficultyNormal, 3, 0.15, 2500},
		{DifficultyHard, 2, 0.15, 2500},
		{DifficultyFixed, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, tt.preset)
			if cfg.Scoring.MaxLives != tt.lives {
				t.Errorf("MaxLives = %d, expected %d", cfg.Scoring.MaxLives, tt.lives)
			}
			if cfg.Scoring.MilestoneIncrement != tt.increment {
				t.Errorf("MilestoneIncrement = %g, expected %g", cfg.Scoring.MilestoneIncrement, tt.increment)
			}
			if cfg.Scoring.DifficultyStep != tt.step {
				t.Errorf("DifficultyStep = %d, expected %d", cfg.Scoring.DifficultyStep, tt.step)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should not parse")
	}
}
