package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2D is used both as a position and as a velocity whose length is the speed.
type Vector2D struct {
	X float64
	Y float64
}

func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Length calculates the magnitude of a vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns the angle against the x axis in degrees, in (-180, 180]
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

func (v *Vector2D) MultiplyByAScalar(scalar float64) {
	v.X *= scalar
	v.Y *= scalar
}

func (v *Vector2D) Normalize() {
	length := v.Length()
	if length == 0 {
		v.X = 0
		v.Y = 0
		return
	}
	v.MultiplyByAScalar(1 / length)
}

// Rotate turns the vector counter-clockwise and snaps both components to
// hundredths, so bounce angles come out slightly discretized.
func (v *Vector2D) Rotate(degrees float64) {
	rotated := mgl64.Rotate2D(degrees * math.Pi / 180).Mul2x1(mgl64.Vec2{v.X, v.Y})
	v.X = quantize(rotated.X())
	v.Y = quantize(rotated.Y())
}

func quantize(value float64) float64 {
	rounded := Round(value * 100)
	if rounded == 0 {
		// no negative zero
		return 0
	}
	return rounded / 100
}

// Round rounds half-way values up, towards positive infinity.
func Round(value float64) float64 {
	return math.Floor(value + 0.5)
}
