package moebius

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable simulation parameters.
type Config struct {
	// TickInterval is the wall-clock period between scheduler rounds.
	TickInterval time.Duration `yaml:"tick_interval"`
	// Workers is the size of the scheduler's tick-worker pool.
	Workers int `yaml:"workers"`
	// Gravity acceleration applied to every object (m/s²).
	Gravity [3]float64 `yaml:"gravity"`
	// AirDensity is the ambient fluid density (kg/m³).
	AirDensity float64 `yaml:"air_density"`
}

func DefaultConfig() Config {
	return Config{
		TickInterval: 50 * time.Millisecond,
		Workers:      1,
		Gravity:      [3]float64{0, -9.8, 0},
		AirDensity:   1.225,
	}
}

// GravityVec returns the configured gravity as a vector.
func (c Config) GravityVec() mgl64.Vec3 {
	return mgl64.Vec3{c.Gravity[0], c.Gravity[1], c.Gravity[2]}
}

func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("config: tick_interval %v, want > 0", c.TickInterval)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("config: workers %d, want > 0", c.Workers)
	}
	if c.AirDensity < 0 {
		return fmt.Errorf("config: air_density %v, want >= 0", c.AirDensity)
	}
	return nil
}

// UnmarshalYAML accepts tick_interval both as a duration string
// ("50ms") and as an integer number of milliseconds.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type rawConfig struct {
		TickInterval yaml.Node   `yaml:"tick_interval"`
		Workers      *int        `yaml:"workers"`
		Gravity      *[3]float64 `yaml:"gravity"`
		AirDensity   *float64    `yaml:"air_density"`
	}

	var raw rawConfig
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if !raw.TickInterval.IsZero() {
		// A bare integer scalar would also decode as a string, so
		// dispatch on the node's resolved tag.
		if raw.TickInterval.Tag == "!!int" {
			var ms int64
			if err := raw.TickInterval.Decode(&ms); err != nil {
				return fmt.Errorf("config: bad tick_interval: %w", err)
			}
			c.TickInterval = time.Duration(ms) * time.Millisecond
		} else {
			var s string
			if err := raw.TickInterval.Decode(&s); err != nil {
				return fmt.Errorf("config: bad tick_interval: %w", err)
			}
			interval, err := time.ParseDuration(s)
			if err != nil {
				return fmt.Errorf("config: bad tick_interval %q: %w", s, err)
			}
			c.TickInterval = interval
		}
	}
	if raw.Workers != nil {
		c.Workers = *raw.Workers
	}
	if raw.Gravity != nil {
		c.Gravity = *raw.Gravity
	}
	if raw.AirDensity != nil {
		c.AirDensity = *raw.AirDensity
	}
	return nil
}

// LoadConfig reads a YAML config file, applying defaults for omitted
// fields and validating the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
