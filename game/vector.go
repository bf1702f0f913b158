package game

import "math"

const halfPi = math.Pi / 2

// Point is a position in world coordinates (meters, Y-up).
type Point struct {
	X float64
	Y float64
}

// Vector is a 2D vector in polar form. Direction is in radians and is not
// normalized to any range; Magnitude is non-negative after construction by
// Add, but the type itself does not enforce it.
type Vector struct {
	Direction float64
	Magnitude float64
}

// HorizontalComponent returns the Cartesian x component.
func (v Vector) HorizontalComponent() float64 {
	return v.Magnitude * math.Cos(v.Direction)
}

// VerticalComponent returns the Cartesian y component.
func (v Vector) VerticalComponent() float64 {
	return v.Magnitude * math.Sin(v.Direction)
}

// Add sums both vectors component-wise and rebuilds the polar form.
// Adding exactly opposing vectors yields magnitude 0 with whatever
// direction atan2(0, 0) produces.
func (v Vector) Add(other Vector) Vector {
	x := v.HorizontalComponent() + other.HorizontalComponent()
	y := v.VerticalComponent() + other.VerticalComponent()
	return Vector{
		Direction: math.Atan2(y, x),
		Magnitude: math.Hypot(x, y),
	}
}
