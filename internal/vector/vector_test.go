package vector

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func mustNew(t *testing.T, label string, mag, angle float64) Vector2D {
	t.Helper()
	v, err := New(label, mag, angle)
	if err != nil {
		t.Fatalf("New(%s, %g, %g): %v", label, mag, angle, err)
	}
	return v
}

func TestDecomposeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		mag   float64
		angle float64
	}{
		{name: "first quadrant", mag: 50, angle: 30},
		{name: "second quadrant", mag: 40, angle: 120},
		{name: "negative angle", mag: 12.5, angle: -45},
		{name: "over a full turn", mag: 7, angle: 400},
		{name: "zero magnitude", mag: 0, angle: 75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, err := Decompose(tc.mag, tc.angle)
			if err != nil {
				t.Fatalf("Decompose: %v", err)
			}

			if got := math.Hypot(x, y); !approx(got, tc.mag) {
				t.Fatalf("reconstructed magnitude %.12f, want %.12f", got, tc.mag)
			}

			if tc.mag == 0 {
				return // angle is unrecoverable from a zero vector
			}

			got := Degrees(math.Atan2(y, x))
			want := math.Mod(tc.angle, 360)
			if want > 180 {
				want -= 360
			} else if want <= -180 {
				want += 360
			}
			if !approx(got, want) {
				t.Fatalf("reconstructed angle %.12f, want %.12f", got, want)
			}
		})
	}
}

func TestDecomposeRejectsNegativeMagnitude(t *testing.T) {
	_, _, err := Decompose(-1, 0)
	if err == nil {
		t.Fatal("expected error for negative magnitude")
	}

	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %T", err)
	}
	if invalid.Value != -1 {
		t.Fatalf("expected offending value -1, got %g", invalid.Value)
	}
}

func TestNewCarriesLabelInError(t *testing.T) {
	_, err := New("Force 1", -3, 45)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "Force 1 magnitude must be non-negative, got -3"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestSumExample(t *testing.T) {
	f1 := mustNew(t, "Force 1", 50, 30)
	f2 := mustNew(t, "Force 2", 40, 120)

	if math.Abs(f1.X-43.30) > 0.005 || math.Abs(f1.Y-25.00) > 0.005 {
		t.Fatalf("F1 components (%.2f, %.2f), want (43.30, 25.00)", f1.X, f1.Y)
	}
	if math.Abs(f2.X+20.00) > 0.005 || math.Abs(f2.Y-34.64) > 0.005 {
		t.Fatalf("F2 components (%.2f, %.2f), want (-20.00, 34.64)", f2.X, f2.Y)
	}

	r := Sum([]Vector2D{f1, f2})
	if math.Abs(r.X-23.30) > 0.005 || math.Abs(r.Y-59.64) > 0.005 {
		t.Fatalf("resultant components (%.2f, %.2f), want (23.30, 59.64)", r.X, r.Y)
	}
	// 50 and 40 at 90° apart: |R| = √(50²+40²) = √4100 ≈ 64.03, and the
	// direction is 30° + atan(40/50) ≈ 68.66°.
	if math.Abs(r.Magnitude-64.03) > 0.005 {
		t.Fatalf("resultant magnitude %.2f, want 64.03", r.Magnitude)
	}
	if math.Abs(r.AngleDegrees-68.66) > 0.005 {
		t.Fatalf("resultant angle %.2f, want 68.66", r.AngleDegrees)
	}
}

func TestSumEmptyIsZeroVector(t *testing.T) {
	r := Sum(nil)
	if r.X != 0 || r.Y != 0 || r.Magnitude != 0 || r.AngleDegrees != 0 {
		t.Fatalf("expected zero resultant, got %+v", r)
	}
}

func TestSumOppositeVectorsCancel(t *testing.T) {
	f1 := mustNew(t, "Force 1", 10, 0)
	f2 := mustNew(t, "Force 2", 10, 180)

	r := Sum([]Vector2D{f1, f2})
	if math.Abs(r.X) >= ZeroThreshold || math.Abs(r.Y) >= ZeroThreshold {
		t.Fatalf("expected near-zero components, got (%.12g, %.12g)", r.X, r.Y)
	}
	if r.Magnitude >= ZeroThreshold {
		t.Fatalf("expected near-zero magnitude, got %.12g", r.Magnitude)
	}
	if r.AngleDegrees != 0 {
		t.Fatalf("expected conventional angle 0 for a cancelled sum, got %g", r.AngleDegrees)
	}
}

func TestSumOrderIndependent(t *testing.T) {
	vs := []Vector2D{
		mustNew(t, "Force 1", 50, 30),
		mustNew(t, "Force 2", 40, 120),
		mustNew(t, "Force 3", 15, 275),
	}

	perms := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	base := Sum(vs)
	for _, p := range perms {
		shuffled := []Vector2D{vs[p[0]], vs[p[1]], vs[p[2]]}
		got := Sum(shuffled)
		if !approx(got.X, base.X) || !approx(got.Y, base.Y) ||
			!approx(got.Magnitude, base.Magnitude) || !approx(got.AngleDegrees, base.AngleDegrees) {
			t.Fatalf("order %v changed the resultant: %+v vs %+v", p, got, base)
		}
	}
}

func TestSumAngleRange(t *testing.T) {
	// Straight-left sum must report 180, not -180.
	r := Sum([]Vector2D{mustNew(t, "Force 1", 5, 180)})
	if !approx(r.AngleDegrees, 180) {
		t.Fatalf("expected angle 180, got %g", r.AngleDegrees)
	}
}

func TestQuadrant(t *testing.T) {
	tests := []struct {
		angle float64
		want  string
	}{
		{0, "+x axis"},
		{360, "+x axis"},
		{90, "+y axis"},
		{180, "-x axis"},
		{270, "-y axis"},
		{-90, "-y axis"},
		{45, "Q1"},
		{120, "Q2"},
		{200, "Q3"},
		{300, "Q4"},
		{-30, "Q4"},
		{405, "Q1"},
	}

	for _, tc := range tests {
		if got := Quadrant(tc.angle); got != tc.want {
			t.Errorf("Quadrant(%g) = %q, want %q", tc.angle, got, tc.want)
		}
	}
}

func TestRelativeAngle(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{30, 120, 90},
		{350, 10, 20},
		{0, 180, 180},
		{0, 270, 90},
		{120, 30, 90},
		{10, 10, 0},
	}

	for _, tc := range tests {
		if got := RelativeAngle(tc.a, tc.b); !approx(got, tc.want) {
			t.Errorf("RelativeAngle(%g, %g) = %g, want %g", tc.a, tc.b, got, tc.want)
		}
	}
}
