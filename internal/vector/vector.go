// Package vector implements planar force-like vector math: decomposition of
// magnitude/angle pairs into Cartesian components, summation into a
// resultant, and the angle classification used by the solution narration.
//
// Angles are degrees at every exported boundary, measured counterclockwise
// from the positive x-axis; conversion to radians happens only inside this
// package.
package vector

import (
	"fmt"
	"math"
)

// ZeroThreshold is the tolerance below which a component or angle is treated
// as exactly zero for display and narration. Stored values are never snapped;
// only derived output (resultant angle, arc visibility) is.
const ZeroThreshold = 1e-6

// Vector2D is an immutable magnitude/angle pair with its precomputed
// Cartesian components. Construct one with New; the invariant
// mag = sqrt(x²+y²), angle = atan2(y, x) holds within floating tolerance.
type Vector2D struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Magnitude    float64 `json:"mag"`
	AngleDegrees float64 `json:"angle"`
}

// InvalidInputError reports a negative magnitude. It is the only validation
// failure the package produces; angles are unconstrained.
type InvalidInputError struct {
	Label string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s magnitude must be non-negative, got %g", e.Label, e.Value)
}

// New builds a Vector2D from a magnitude and an angle in degrees. The label
// names the vector in error messages ("Force 1", "Force 2", ...).
func New(label string, magnitude, angleDegrees float64) (Vector2D, error) {
	if magnitude < 0 {
		return Vector2D{}, &InvalidInputError{Label: label, Value: magnitude}
	}
	rad := Radians(angleDegrees)
	return Vector2D{
		X:            magnitude * math.Cos(rad),
		Y:            magnitude * math.Sin(rad),
		Magnitude:    magnitude,
		AngleDegrees: angleDegrees,
	}, nil
}

// Decompose converts a magnitude/angle pair into x and y components.
func Decompose(magnitude, angleDegrees float64) (x, y float64, err error) {
	v, err := New("vector", magnitude, angleDegrees)
	if err != nil {
		return 0, 0, err
	}
	return v.X, v.Y, nil
}

// Sum adds the components of vectors and returns the resultant. The
// resultant angle is atan2(Σy, Σx) in degrees, in (-180, 180]. An empty
// input yields the zero vector; when both component sums are within
// ZeroThreshold of zero the angle is 0 by convention rather than whatever
// atan2 makes of the residue.
func Sum(vectors []Vector2D) Vector2D {
	var sx, sy float64
	for _, v := range vectors {
		sx += v.X
		sy += v.Y
	}

	angle := 0.0
	if math.Abs(sx) >= ZeroThreshold || math.Abs(sy) >= ZeroThreshold {
		angle = Degrees(math.Atan2(sy, sx))
	}

	return Vector2D{
		X:            sx,
		Y:            sy,
		Magnitude:    math.Hypot(sx, sy),
		AngleDegrees: angle,
	}
}

// Quadrant classifies an angle into one of eight symbols: the four cardinal
// axes when within tolerance of 0/90/180/270, otherwise the open quadrant.
// Used only for narration, never for math.
func Quadrant(angleDegrees float64) string {
	a := math.Mod(angleDegrees, 360)
	if a < 0 {
		a += 360
	}
	switch {
	case a < ZeroThreshold || 360-a < ZeroThreshold:
		return "+x axis"
	case math.Abs(a-90) < ZeroThreshold:
		return "+y axis"
	case math.Abs(a-180) < ZeroThreshold:
		return "-x axis"
	case math.Abs(a-270) < ZeroThreshold:
		return "-y axis"
	case a < 90:
		return "Q1"
	case a < 180:
		return "Q2"
	case a < 270:
		return "Q3"
	default:
		return "Q4"
	}
}

// RelativeAngle returns the non-reflex separation between two angles in
// degrees, always in [0, 180].
func RelativeAngle(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d < 0 {
		d += 360
	}
	if d <= 180 {
		return d
	}
	return 360 - d
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
