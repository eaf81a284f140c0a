package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const runnerConfigFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded on top of DefaultRunnerConfig, so a partial file only
// overrides the keys it names.
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(runnerConfigFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", runnerConfigFile)); ok {
		return loaded, nil
	}

	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unreadable or invalid
// files are skipped so the next location in the search order is used.
func tryLoad(path string) (RunnerConfig, bool) {
	cfg := DefaultRunnerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.MaxLives = 5
		cfg.Physics.BaseSpeed = 300
		cfg.Physics.CoyoteMs = 160
		cfg.Spawn.BaseIntervalMs = 1800
		cfg.Spawn.SafeMinGap = 300
	case DifficultyHard:
		cfg.Scoring.MaxLives = 2
		cfg.Physics.BaseSpeed = 420
		cfg.Spawn.BaseIntervalMs = 1250
		cfg.Spawn.MinIntervalMs = 700
		cfg.Spawn.MaxActive = 3
	case DifficultyFixed:
		cfg.Scoring.MilestoneIncrement = 0
		cfg.Scoring.DifficultyStep = 0
		cfg.Spawn.DifficultyRampMs = 0
	}
}
