package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable simulation constants. The defaults reproduce the
// reference lander; a YAML file can override any subset of them.
type Config struct {
	// ScreenWidth is the window width in pixels.
	ScreenWidth int `yaml:"screenWidth"`

	// ScreenHeight is the window height in pixels. World coordinates are
	// Y-up with the ground at 0 and the top of the screen at ScreenHeight.
	ScreenHeight int `yaml:"screenHeight"`

	// TickRate is the target number of simulation ticks per second.
	TickRate int `yaml:"tickRate"`

	// MaxDeltaTime caps the wall-clock dt of a single tick, in seconds,
	// so a frame hitch cannot destabilize the integration.
	MaxDeltaTime float64 `yaml:"maxDeltaTime"`

	// Gravity is the downward acceleration in m/s^2.
	Gravity float64 `yaml:"gravity"`

	// EmptyMass is the ship's dry mass in kilograms.
	EmptyMass float64 `yaml:"emptyMass"`

	// FuelMass is the starting fuel load in kilograms.
	FuelMass float64 `yaml:"fuelMass"`

	// ExhaustVelocity is the exhaust speed in m/s, used both for thrust
	// momentum and as the base speed of exhaust sparks.
	ExhaustVelocity float64 `yaml:"exhaustVelocity"`

	// MaxBurnRate is the fuel consumption at full throttle, in kg/s.
	MaxBurnRate float64 `yaml:"maxBurnRate"`

	// TurnRate is the rotation speed in radians per second.
	TurnRate float64 `yaml:"turnRate"`

	// ThrottleStep is the throttle change per throttle command.
	ThrottleStep float64 `yaml:"throttleStep"`

	// MaxSafeLandingVelocity is the descent speed in m/s above which the
	// HUD flags the velocity readout. Display only.
	MaxSafeLandingVelocity float64 `yaml:"maxSafeLandingVelocity"`

	// SparksPerKG is the number of exhaust sparks spawned per kilogram of
	// fuel burned.
	SparksPerKG float64 `yaml:"sparksPerKG"`

	// SparkLifetime is how long a spark lives, in seconds.
	SparkLifetime float64 `yaml:"sparkLifetime"`

	// SparkDirectionVariability is the half-width of the uniform random
	// spread added to a spark's direction, in radians.
	SparkDirectionVariability float64 `yaml:"sparkDirectionVariability"`

	// SparkVelocityVariability is the half-width of the uniform random
	// spread added to a spark's speed, in m/s.
	SparkVelocityVariability float64 `yaml:"sparkVelocityVariability"`
}

// DefaultConfig returns the reference constants.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:               1024,
		ScreenHeight:              768,
		TickRate:                  30,
		MaxDeltaTime:              0.1,
		Gravity:                   10.0,
		EmptyMass:                 5000,
		FuelMass:                  5000,
		ExhaustVelocity:           500,
		MaxBurnRate:               600,
		TurnRate:                  0.2,
		ThrottleStep:              0.1,
		MaxSafeLandingVelocity:    0.1,
		SparksPerKG:               0.5,
		SparkLifetime:             1.0,
		SparkDirectionVariability: 0.1,
		SparkVelocityVariability:  20,
	}
}

// LoadConfig reads a YAML file over the defaults, so a config file only
// needs to name the constants it changes.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects constants the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight)
	case c.TickRate <= 0:
		return fmt.Errorf("tick rate %d must be positive", c.TickRate)
	case c.MaxDeltaTime <= 0:
		return fmt.Errorf("max delta time %g must be positive", c.MaxDeltaTime)
	case c.Gravity < 0:
		return fmt.Errorf("gravity %g must be non-negative", c.Gravity)
	case c.EmptyMass <= 0:
		return fmt.Errorf("empty mass %g must be positive", c.EmptyMass)
	case c.FuelMass < 0:
		return fmt.Errorf("fuel mass %g must be non-negative", c.FuelMass)
	case c.ExhaustVelocity <= 0:
		return fmt.Errorf("exhaust velocity %g must be positive", c.ExhaustVelocity)
	case c.MaxBurnRate <= 0:
		return fmt.Errorf("max burn rate %g must be positive", c.MaxBurnRate)
	case c.TurnRate <= 0:
		return fmt.Errorf("turn rate %g must be positive", c.TurnRate)
	case c.ThrottleStep <= 0 || c.ThrottleStep > 1:
		return fmt.Errorf("throttle step %g must be in (0, 1]", c.ThrottleStep)
	case c.SparksPerKG < 0:
		return fmt.Errorf("sparks per kg %g must be non-negative", c.SparksPerKG)
	case c.SparkLifetime <= 0:
		return fmt.Errorf("spark lifetime %g must be positive", c.SparkLifetime)
	case c.SparkDirectionVariability < 0 || c.SparkVelocityVariability < 0:
		return fmt.Errorf("spark variability must be non-negative")
	}
	return nil
}
