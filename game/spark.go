package game

import (
	"fmt"
	"image/color"
	"math/rand"
)

// Spark render ramp: a spark starts small and bright and ends big and dim.
var (
	sparkStartColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	sparkEndColor   = color.NRGBA{R: 80, G: 40, B: 20, A: 20}
)

const (
	sparkStartRadius = 1.0 // pixels
	sparkEndRadius   = 8.0 // pixels
)

// Spark is one glowing exhaust fragment.
type Spark struct {
	Pos       Point
	Vel       Vector
	SpawnTime float64 // simulation time at creation, seconds

	// Age is the normalized lifetime fraction, recomputed every tick as
	// (now - SpawnTime) / SparkLifetime. Expiry removes a spark before
	// its age exceeds 1, so render interpolation never sees more.
	Age float64
}

// SparkField owns every live spark. The slice is ordered newest-first:
// Spawn always inserts at index 0, and Advance relies on that order to
// truncate everything past the first expired spark.
type SparkField struct {
	cfg    Config
	rng    *rand.Rand
	sparks []Spark
}

// NewSparkField creates an empty field. The random source drives the spawn
// variability and is injected so tests can seed it.
func NewSparkField(cfg Config, rng *rand.Rand) *SparkField {
	return &SparkField{cfg: cfg, rng: rng}
}

// Len returns the number of live sparks.
func (f *SparkField) Len() int {
	return len(f.sparks)
}

// Sparks returns the live sparks, newest first.
func (f *SparkField) Sparks() []Spark {
	return f.sparks
}

// Spawn creates one spark at pos. Its direction is baseDirection plus a
// uniform spread, its speed is the exhaust velocity plus a uniform spread.
func (f *SparkField) Spawn(pos Point, baseDirection, now float64) {
	dir := baseDirection + (f.rng.Float64()*2-1)*f.cfg.SparkDirectionVariability
	speed := f.cfg.ExhaustVelocity + (f.rng.Float64()*2-1)*f.cfg.SparkVelocityVariability

	// Newest spark goes to the front.
	f.sparks = append(f.sparks, Spark{})
	copy(f.sparks[1:], f.sparks)
	f.sparks[0] = Spark{
		Pos:       pos,
		Vel:       Vector{Direction: dir, Magnitude: speed},
		SpawnTime: now,
	}
}

// Advance recomputes every spark's age and integrates the survivors.
// Because all sparks share one lifetime and the slice is newest-first, the
// first expired spark means everything after it has expired too, so the
// scan truncates there and stops. Sparks are ballistic: gravity is added
// to their velocity every tick, never reset.
func (f *SparkField) Advance(dt, now float64) error {
	if dt < 0 {
		return fmt.Errorf("negative time step %g", dt)
	}
	for i := range f.sparks {
		s := &f.sparks[i]
		s.Age = (now - s.SpawnTime) / f.cfg.SparkLifetime
		if s.Age > 1 {
			f.sparks = f.sparks[:i]
			break
		}
		s.Pos.X += s.Vel.HorizontalComponent() * dt
		s.Pos.Y += s.Vel.VerticalComponent() * dt
		s.Vel = s.Vel.Add(Vector{Direction: -halfPi, Magnitude: f.cfg.Gravity * dt})
	}
	return nil
}

// SparkView is the render-facing state of one spark: its position and the
// age-interpolated color and radius. It carries no simulation state.
type SparkView struct {
	Pos    Point
	Color  color.NRGBA
	Radius float64
}

// View returns render parameters for every live spark, newest first.
func (f *SparkField) View() []SparkView {
	views := make([]SparkView, len(f.sparks))
	for i, s := range f.sparks {
		views[i] = SparkView{
			Pos:    s.Pos,
			Color:  lerpColor(sparkStartColor, sparkEndColor, s.Age),
			Radius: lerp(sparkStartRadius, sparkEndRadius, s.Age),
		}
	}
	return views
}

// lerp scales s in [0, 1] to the range [start, end].
func lerp(start, end, s float64) float64 {
	return s*(end-start) + start
}

func lerpColor(start, end color.NRGBA, s float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(lerp(float64(start.R), float64(end.R), s)),
		G: uint8(lerp(float64(start.G), float64(end.G), s)),
		B: uint8(lerp(float64(start.B), float64(end.B), s)),
		A: uint8(lerp(float64(start.A), float64(end.A), s)),
	}
}
