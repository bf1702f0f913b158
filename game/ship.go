package game

import (
	"fmt"
	"math"
)

// Initial ship state, matching the reference scenario: drifting right at
// the top-left of the world with a full tank.
const (
	startSpeed     = 20.0 // m/s, initial rightward drift
	startDirection = 0.0
)

// Ship is the single controlled entity. It integrates its own motion under
// gravity and thrust and emits exhaust sparks into a SparkField while
// burning. Exported fields are read by the renderer and the HUD; mutation
// goes through Advance and the command methods.
type Ship struct {
	cfg Config

	Pos         Point
	Vel         Vector
	Orientation float64 // radians, 0 = upright, accumulates across full turns
	Throttle    float64 // clamped to [0, 1]
	Fuel        float64 // kilograms, never negative

	// rotation is the current-frame turn command in {-1, 0, 1}. It is not
	// remembered between frames; the driver re-issues it every tick.
	rotation float64
}

// NewShip creates a ship at the top of the world with the configured fuel
// load and the reference drift velocity.
func NewShip(cfg Config) *Ship {
	return &Ship{
		cfg:  cfg,
		Pos:  Point{X: 0, Y: float64(cfg.ScreenHeight)},
		Vel:  Vector{Direction: startDirection, Magnitude: startSpeed},
		Fuel: cfg.FuelMass,
	}
}

// Mass returns the total mass: remaining fuel plus dry mass.
func (s *Ship) Mass() float64 {
	return s.Fuel + s.cfg.EmptyMass
}

// Advance steps the ship by dt seconds. In order: integrate position by the
// current velocity, add gravity to velocity, apply thrust (burning fuel and
// spawning sparks into field), then rotate. Thrust is an impulse model: the
// burned fuel's momentum is converted to a velocity change in one step.
func (s *Ship) Advance(dt, now float64, field *SparkField) error {
	if dt < 0 {
		return fmt.Errorf("negative time step %g", dt)
	}
	if s.Fuel < 0 {
		return fmt.Errorf("negative fuel mass %g", s.Fuel)
	}

	s.Pos.X += s.Vel.HorizontalComponent() * dt
	s.Pos.Y += s.Vel.VerticalComponent() * dt

	s.Vel = s.Vel.Add(Vector{Direction: -halfPi, Magnitude: s.cfg.Gravity * dt})

	if s.Throttle > 0 {
		fuelBurned := s.Throttle * s.cfg.MaxBurnRate * dt
		if fuelBurned > s.Fuel {
			// Running dry truncates the burn and kills the throttle.
			fuelBurned = s.Fuel
			s.Fuel = 0
			s.Throttle = 0
		} else {
			s.Fuel -= fuelBurned
		}

		momentum := fuelBurned * s.cfg.ExhaustVelocity
		s.Vel = s.Vel.Add(Vector{
			Direction: s.Orientation + halfPi,
			Magnitude: momentum / s.Mass(),
		})

		if field != nil {
			// Exhaust leaves opposite to the thrust direction.
			count := int(math.Floor(fuelBurned * s.cfg.SparksPerKG))
			for i := 0; i < count; i++ {
				field.Spawn(s.Pos, s.Orientation-halfPi, now)
			}
		}
	}

	if s.rotation != 0 {
		s.Orientation += s.rotation * s.cfg.TurnRate * dt
	}
	return nil
}

// IncreaseThrottle raises the throttle one step, saturating at 1. It is a
// no-op with an empty tank.
func (s *Ship) IncreaseThrottle() {
	if s.Fuel == 0 {
		return
	}
	s.Throttle = math.Min(1.0, s.Throttle+s.cfg.ThrottleStep)
}

// DecreaseThrottle lowers the throttle one step, clamping at 0.
func (s *Ship) DecreaseThrottle() {
	s.Throttle = math.Max(0.0, s.Throttle-s.cfg.ThrottleStep)
}

// SetRotation stores the turn command for the next Advance. Expected domain
// is {-1, 0, 1}; callers must call this every frame, passing 0 when no
// rotation input is active. Rotation consumes no fuel.
func (s *Ship) SetRotation(r float64) {
	s.rotation = r
}
