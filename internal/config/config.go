package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines engine configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
	Engine  EngineConfig  `yaml:"engine"`
	Scoring ScoringConfig `yaml:"scoring"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Transport is "stdio" or "http".
	Transport string `yaml:"transport"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// EngineConfig holds calibration and detection parameters.
type EngineConfig struct {
	// BaselineWindowDays is the observation window used to learn a team's norm.
	BaselineWindowDays int `yaml:"baseline_window_days"`
	// RecentWindowDays is the rolling window compared against the baseline.
	RecentWindowDays int `yaml:"recent_window_days"`
	// MinGroupSize is the privacy floor; teams below it never receive scores.
	MinGroupSize int `yaml:"min_group_size"`
	// DriftThresholds maps signal name to the fractional deviation from
	// baseline that triggers a drift event (0.15 means 15%).
	DriftThresholds map[string]float64 `yaml:"drift_thresholds"`
	// MaxRecommendations caps the recommendation list per run.
	MaxRecommendations int `yaml:"max_recommendations"`
}

// ScoringConfig holds composite-index parameters.
type ScoringConfig struct {
	// AvgHourlyCost is the blended per-hour cost used by the cost estimator.
	AvgHourlyCost float64 `yaml:"avg_hourly_cost"`
	// WorkweekHours converts ratio-based signals into hour estimates.
	WorkweekHours float64 `yaml:"workweek_hours"`
	// ReworkFactor scales excess after-hours activity into rework hours.
	ReworkFactor float64 `yaml:"rework_factor"`
	// MinMemberSamples is the minimum anonymized sample count required by
	// the load-balance index.
	MinMemberSamples int `yaml:"min_member_samples"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("TEAMPULSE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("TEAMPULSE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("TEAMPULSE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TEAMPULSE_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if transport := os.Getenv("TEAMPULSE_TRANSPORT"); transport != "" {
		cfg.Server.Transport = transport
	}
	if dbPath := os.Getenv("TEAMPULSE_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("TEAMPULSE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if costStr := os.Getenv("TEAMPULSE_HOURLY_COST"); costStr != "" {
		cost, err := strconv.ParseFloat(costStr, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TEAMPULSE_HOURLY_COST: %w", err)
		}
		cfg.Scoring.AvgHourlyCost = cost
	}

	return cfg, nil
}

// Default returns the engine defaults. Thresholds and cost factors mirror the
// original deployment's tuning; they are configuration, not business logic.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			Transport: "stdio",
		},
		DB: DBConfig{
			Path: "teampulse.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Engine: EngineConfig{
			BaselineWindowDays: 30,
			RecentWindowDays:   7,
			MinGroupSize:       5,
			DriftThresholds: map[string]float64{
				"meeting_load_index":   0.15,
				"after_hours_rate":     0.25,
				"focus_time_ratio":     0.20,
				"response_median_mins": 0.40,
				"bdi":                  0.20,
			},
			MaxRecommendations: 4,
		},
		Scoring: ScoringConfig{
			AvgHourlyCost:    75,
			WorkweekHours:    40,
			ReworkFactor:     0.3,
			MinMemberSamples: 3,
		},
	}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
