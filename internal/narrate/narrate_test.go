package narrate

import (
	"strings"
	"testing"

	"vector-forces/internal/vector"
)

func mustNew(t *testing.T, label string, mag, angle float64) vector.Vector2D {
	t.Helper()
	v, err := vector.New(label, mag, angle)
	if err != nil {
		t.Fatalf("New(%s, %g, %g): %v", label, mag, angle, err)
	}
	return v
}

func solvedExample(t *testing.T) (vector.Vector2D, vector.Vector2D, vector.Vector2D) {
	t.Helper()
	f1 := mustNew(t, "Force 1", 50, 30)
	f2 := mustNew(t, "Force 2", 40, 120)
	return f1, f2, vector.Sum([]vector.Vector2D{f1, f2})
}

func TestFormatMeasurement(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{12.500, "12.5"},
		{12.000, "12"},
		{12.345, "12.345"},
		{0, "0"},
		{6.402, "6.402"},
		{-3.100, "-3.1"},
	}

	for _, tc := range tests {
		if got := FormatMeasurement(tc.value); got != tc.want {
			t.Errorf("FormatMeasurement(%g) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestUnitFor(t *testing.T) {
	tests := []struct {
		quantity string
		want     string
	}{
		{"Force", "N"},
		{"Displacement", "m"},
		{"Velocity", "m/s"},
		{"Acceleration", "m/s²"},
		{"mystery", "N"},
	}

	for _, tc := range tests {
		if got := UnitFor(tc.quantity); got != tc.want {
			t.Errorf("UnitFor(%q) = %q, want %q", tc.quantity, got, tc.want)
		}
	}
}

func TestContributionNote(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		axis string
		want string
	}{
		{name: "first dominates", a: 10, b: 3, axis: "horizontal", want: "F₁ dominates horizontal"},
		{name: "second dominates", a: 2, b: -8, axis: "vertical", want: "F₂ dominates vertical"},
		{name: "tie by absolute value", a: 5, b: -5, axis: "horizontal", want: "F₁ and F₂ equally dominates horizontal"},
		{name: "no net component", a: 0, b: 0, axis: "horizontal", want: "No net horizontal component"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContributionNote(tc.a, tc.b, tc.axis); got != tc.want {
				t.Fatalf("ContributionNote(%g, %g, %q) = %q, want %q", tc.a, tc.b, tc.axis, got, tc.want)
			}
		})
	}
}

func TestRelationNote(t *testing.T) {
	tests := []struct {
		separation float64
		want       string
	}{
		{45, "reinforce each other"},
		{89.9, "reinforce each other"},
		{90, "are nearly perpendicular"},
		{94, "are nearly perpendicular"},
		{96, "partly cancel each other"},
		{180, "partly cancel each other"},
	}

	for _, tc := range tests {
		if got := relationNote(tc.separation); got != tc.want {
			t.Errorf("relationNote(%g) = %q, want %q", tc.separation, got, tc.want)
		}
	}
}

func TestDirectSolutionTranscript(t *testing.T) {
	f1, f2, r := solvedExample(t)

	got := DirectSolution(f1, f2, r, 10, "N")

	for _, want := range []string{
		"F₁: x = 43.30N, y = 25.00N",
		"F₂: x = -20.00N, y = 34.64N",
		"ΣFx = 43.30 + -20.00 = 23.30N",
		"ΣFy = 25.00 + 34.64 = 59.64N",
		"= 64.03N = 6.403 cm",
		"θR = atan2(ΣFy, ΣFx) = 68.66°",
		"Scale: 1 cm = 10N",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("direct solution missing %q:\n%s", want, got)
		}
	}

	if strings.Contains(got, "WHY?") {
		t.Fatal("direct solution must not contain explanatory prose")
	}
}

func TestDirectSolutionThreadsUnit(t *testing.T) {
	f1, f2, r := solvedExample(t)

	got := DirectSolution(f1, f2, r, 10, "m/s")
	if !strings.Contains(got, "64.03m/s") {
		t.Fatalf("expected unit label threaded into transcript:\n%s", got)
	}
	if strings.Contains(got, "64.03N") {
		t.Fatal("default unit leaked into transcript")
	}
}

func TestDetailedSolutionStructure(t *testing.T) {
	f1, f2, r := solvedExample(t)

	got := DetailedSolution(f1, f2, r, 10, "N")

	for _, want := range []string{
		"ANALYTICAL SOLUTION",
		"UNDERSTANDING THE PROBLEM",
		"F₁ points to Q1, F₂ points to Q2",
		"Angle between them: 90.0° → they are nearly perpendicular",
		"(≈ 90° means forces are perpendicular)",
		"F₁ dominates horizontal",
		"F₂ dominates vertical",
		"STEP 1: Break forces into x and y parts",
		"x-part: 50×cos(30°) = 43.30N",
		"STEP 2: Add all x's together, add all y's together",
		"Total x: 43.30 + -20.00 = 23.30N",
		"(positive = net push to the right)",
		"(positive = net push upward)",
		"STEP 3: Find the total strength (magnitude)",
		"= 6.403 cm (using scale: 1cm = 10N)",
		"STEP 4: Find which direction it points",
		"θ = atan2(59.64, 23.30) = 68.66°",
		"Result: FR points to Q1",
		"(up and to the right)",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("detailed solution missing %q:\n%s", want, got)
		}
	}
}

func TestDetailedSolutionSignAndHeadingNotes(t *testing.T) {
	f1 := mustNew(t, "Force 1", 10, 180)
	f2 := mustNew(t, "Force 2", 10, 225)
	r := vector.Sum([]vector.Vector2D{f1, f2})

	got := DetailedSolution(f1, f2, r, 10, "N")

	for _, want := range []string{
		"(negative = net push to the left)",
		"(negative = net push downward)",
		"(down and to the left)",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("detailed solution missing %q:\n%s", want, got)
		}
	}
}

func TestDetailedSolutionNearVerticalNote(t *testing.T) {
	f1 := mustNew(t, "Force 1", 10, 90)
	f2 := mustNew(t, "Force 2", 5, 90)
	r := vector.Sum([]vector.Vector2D{f1, f2})

	got := DetailedSolution(f1, f2, r, 10, "N")
	if !strings.Contains(got, "NOTE: x≈0, so force is nearly vertical") {
		t.Fatalf("expected near-vertical note:\n%s", got)
	}
}

func TestDetailedSolutionNearHorizontalNote(t *testing.T) {
	f1 := mustNew(t, "Force 1", 10, 0)
	f2 := mustNew(t, "Force 2", 5, 0)
	r := vector.Sum([]vector.Vector2D{f1, f2})

	got := DetailedSolution(f1, f2, r, 10, "N")
	if !strings.Contains(got, "NOTE: y≈0, so force is nearly horizontal") {
		t.Fatalf("expected near-horizontal note:\n%s", got)
	}
}
