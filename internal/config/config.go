package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Field   FieldConfig   `toml:"field"`
	Laser   LaserConfig   `toml:"laser"`
	Miner   MinerConfig   `toml:"miner"`
	Cooler  CoolerConfig  `toml:"cooler"`
	Display DisplayConfig `toml:"display"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type SimConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	Seed     int64         `toml:"seed"` // 0 means time-seeded
}

type FieldConfig struct {
	XRange        float64 `toml:"x_range"`
	MaxLevel      int     `toml:"max_level"`
	MinCountdown  int     `toml:"min_countdown"` // spawn interval floor in ticks
	AsteroidSpeed float64 `toml:"asteroid_speed"`
	AsteroidHP    int     `toml:"asteroid_hp"`
}

type LaserConfig struct {
	Damage             int     `toml:"damage"`
	Radius             float64 `toml:"radius"`
	HeatPerShot        float64 `toml:"heat_per_shot"`
	RequireLineOfSight bool    `toml:"require_line_of_sight"`
}

type MinerConfig struct {
	ChargeTicks   int     `toml:"charge_ticks"`
	MissileSpeed  float64 `toml:"missile_speed"`
	MissileDamage int     `toml:"missile_damage"`
	MissileRadius float64 `toml:"missile_radius"`
}

type CoolerConfig struct {
	Rate float64 `toml:"rate"`
}

type DisplayConfig struct {
	Enabled  bool    `toml:"enabled"`
	ViewHalf float64 `toml:"view_half"` // world units mapped to half the screen width
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Sim: SimConfig{
			TickRate: 16 * time.Millisecond,
		},
		Field: FieldConfig{
			XRange:        15,
			MaxLevel:      30,
			MinCountdown:  20,
			AsteroidSpeed: 1.5,
			AsteroidHP:    20,
		},
		Laser: LaserConfig{
			Damage:             1,
			Radius:             0.35,
			HeatPerShot:        0.3,
			RequireLineOfSight: false,
		},
		Miner: MinerConfig{
			ChargeTicks:   120,
			MissileSpeed:  8,
			MissileDamage: 5,
			MissileRadius: 0.2,
		},
		Cooler: CoolerConfig{
			Rate: 0.13,
		},
		Display: DisplayConfig{
			Enabled:  true,
			ViewHalf: 20,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.7,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
