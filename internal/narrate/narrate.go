// Package narrate renders solution text for a two-vector addition: a terse
// direct transcript and a long-form analytical walkthrough. Both are built
// from the same already-validated vector data; nothing here re-validates or
// does math beyond classification.
//
// Each narration rule (quadrant naming, relative-angle classification, sign
// interpretation, dominance note) is its own function so each is testable in
// isolation; the two solution builders only compose them.
package narrate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"vector-forces/internal/vector"
)

// PerpendicularThreshold is the tolerance, in degrees, within which two
// vectors separated by about 90° are narrated as "nearly perpendicular".
const PerpendicularThreshold = 5.0

const rightAngle = 90

// FormatMeasurement formats a centimeter-equivalent length: three decimals
// with trailing zeros and a trailing decimal point stripped, so 12.500
// becomes "12.5" and 12.000 becomes "12".
func FormatMeasurement(value float64) string {
	s := strconv.FormatFloat(value, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// UnitFor maps a physical quantity name to its unit label. Unknown
// quantities default to newtons; the unit never affects the math.
func UnitFor(quantity string) string {
	switch quantity {
	case "Displacement":
		return "m"
	case "Velocity":
		return "m/s"
	case "Acceleration":
		return "m/s²"
	default:
		return "N"
	}
}

// ContributionNote states which of the two vectors dominates an axis, that
// they contribute equally, or that neither contributes at all.
func ContributionNote(a, b float64, axis string) string {
	sa, sb := math.Abs(a), math.Abs(b)
	if sa+sb == 0 {
		return fmt.Sprintf("No net %s component", axis)
	}
	lead := "F₁"
	switch {
	case sb > sa:
		lead = "F₂"
	case sa == sb:
		lead = "F₁ and F₂ equally"
	}
	return fmt.Sprintf("%s dominates %s", lead, axis)
}

// relationNote classifies the angular separation between the two inputs.
func relationNote(separation float64) string {
	switch {
	case separation < rightAngle:
		return "reinforce each other"
	case math.Abs(separation-rightAngle) <= PerpendicularThreshold:
		return "are nearly perpendicular"
	default:
		return "partly cancel each other"
	}
}

// signNote interprets the sign of a resultant component as a push direction.
// It returns "" for an exactly zero component.
func signNote(value float64, positive, negative string) string {
	switch {
	case value > 0:
		return fmt.Sprintf("(positive = net push %s)", positive)
	case value < 0:
		return fmt.Sprintf("(negative = net push %s)", negative)
	default:
		return ""
	}
}

// headingNote buckets the resultant angle into a coarse compass phrase.
func headingNote(angleDegrees float64) string {
	switch {
	case angleDegrees >= 0 && angleDegrees < 90:
		return "(up and to the right)"
	case angleDegrees >= 90 && angleDegrees < 180:
		return "(up and to the left)"
	case angleDegrees >= -180 && angleDegrees < -90:
		return "(down and to the left)"
	default:
		return "(down and to the right)"
	}
}

// DirectSolution returns the concise calculation transcript: components,
// sums, magnitude, and angle, with no explanatory prose. The unit label and
// scale are cosmetic.
func DirectSolution(f1, f2, r vector.Vector2D, scale float64, unit string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "F₁: x = %.2f%s, y = %.2f%s\n", f1.X, unit, f1.Y, unit)
	fmt.Fprintf(&b, "F₂: x = %.2f%s, y = %.2f%s\n", f2.X, unit, f2.Y, unit)
	fmt.Fprintf(&b, "ΣFx = %.2f + %.2f = %.2f%s\n", f1.X, f2.X, r.X, unit)
	fmt.Fprintf(&b, "ΣFy = %.2f + %.2f = %.2f%s\n", f1.Y, f2.Y, r.Y, unit)
	fmt.Fprintf(&b, "|FR| = √(ΣFx² + ΣFy²) = %.2f%s = %s cm\n",
		r.Magnitude, unit, FormatMeasurement(r.Magnitude/scale))
	fmt.Fprintf(&b, "θR = atan2(ΣFy, ΣFx) = %.2f°\n", r.AngleDegrees)
	fmt.Fprintf(&b, "Scale: 1 cm = %g%s\n", scale, unit)

	return b.String()
}

// DetailedSolution returns the four-step analytical explanation: contextual
// framing, per-vector decomposition, component summation with sign
// interpretation, and magnitude plus direction.
func DetailedSolution(f1, f2, r vector.Vector2D, scale float64, unit string) string {
	separation := vector.RelativeAngle(f1.AngleDegrees, f2.AngleDegrees)

	var b strings.Builder

	b.WriteString("ANALYTICAL SOLUTION\n")
	b.WriteString(strings.Repeat("=", 70) + "\n\n")

	b.WriteString("UNDERSTANDING THE PROBLEM\n")
	fmt.Fprintf(&b, "  • F₁ points to %s, F₂ points to %s\n",
		vector.Quadrant(f1.AngleDegrees), vector.Quadrant(f2.AngleDegrees))
	fmt.Fprintf(&b, "  • Angle between them: %.1f° → they %s\n", separation, relationNote(separation))
	switch {
	case separation < rightAngle:
		b.WriteString("    (< 90° means forces pull in similar directions)\n")
	case math.Abs(separation-rightAngle) <= PerpendicularThreshold:
		b.WriteString("    (≈ 90° means forces are perpendicular)\n")
	default:
		b.WriteString("    (> 90° means forces pull in opposite directions)\n")
	}
	fmt.Fprintf(&b, "  • %s; %s\n\n",
		ContributionNote(f1.X, f2.X, "horizontal"),
		ContributionNote(f1.Y, f2.Y, "vertical"))

	b.WriteString("STEP 1: Break forces into x and y parts\n")
	b.WriteString("  WHY? Angled forces are hard to add. We split them into\n")
	b.WriteString("  horizontal (x) and vertical (y) parts first.\n\n")
	fmt.Fprintf(&b, "  F₁: %g%s at %g°\n", f1.Magnitude, unit, f1.AngleDegrees)
	fmt.Fprintf(&b, "    x-part: %g×cos(%g°) = %.2f%s (how much pushes right)\n",
		f1.Magnitude, f1.AngleDegrees, f1.X, unit)
	fmt.Fprintf(&b, "    y-part: %g×sin(%g°) = %.2f%s (how much pushes up)\n\n",
		f1.Magnitude, f1.AngleDegrees, f1.Y, unit)
	fmt.Fprintf(&b, "  F₂: %g%s at %g°\n", f2.Magnitude, unit, f2.AngleDegrees)
	fmt.Fprintf(&b, "    x-part: %g×cos(%g°) = %.2f%s\n", f2.Magnitude, f2.AngleDegrees, f2.X, unit)
	fmt.Fprintf(&b, "    y-part: %g×sin(%g°) = %.2f%s\n\n", f2.Magnitude, f2.AngleDegrees, f2.Y, unit)

	b.WriteString("STEP 2: Add all x's together, add all y's together\n")
	b.WriteString("  WHY? Now that forces are split, we can add same directions.\n")
	b.WriteString("  All horizontal forces combine to make total horizontal.\n")
	b.WriteString("  All vertical forces combine to make total vertical.\n\n")
	fmt.Fprintf(&b, "  Total x: %.2f + %.2f = %.2f%s\n", f1.X, f2.X, r.X, unit)
	if note := signNote(r.X, "to the right", "to the left"); note != "" {
		fmt.Fprintf(&b, "           %s\n", note)
	}
	fmt.Fprintf(&b, "  Total y: %.2f + %.2f = %.2f%s\n", f1.Y, f2.Y, r.Y, unit)
	if note := signNote(r.Y, "upward", "downward"); note != "" {
		fmt.Fprintf(&b, "           %s\n", note)
	}
	b.WriteString("\n")

	b.WriteString("STEP 3: Find the total strength (magnitude)\n")
	b.WriteString("  WHY? We have x and y parts, but need the actual force size.\n")
	b.WriteString("  Use Pythagorean theorem: diagonal of a right triangle.\n\n")
	fmt.Fprintf(&b, "  |FR| = √(x² + y²) = √(%.2f² + %.2f²)\n", r.X, r.Y)
	fmt.Fprintf(&b, "       = %.2f%s\n", r.Magnitude, unit)
	fmt.Fprintf(&b, "       = %s cm (using scale: 1cm = %g%s)\n\n",
		FormatMeasurement(r.Magnitude/scale), scale, unit)

	b.WriteString("STEP 4: Find which direction it points\n")
	b.WriteString("  WHY? We know the strength, but need to know where it points.\n")
	b.WriteString("  Use atan2(y,x) which gives angle from +x axis.\n")
	if math.Abs(r.X) < vector.ZeroThreshold {
		b.WriteString("  NOTE: x≈0, so force is nearly vertical (90° or 270°)\n")
	} else if math.Abs(r.Y) < vector.ZeroThreshold {
		b.WriteString("  NOTE: y≈0, so force is nearly horizontal (0° or 180°)\n")
	}
	fmt.Fprintf(&b, "\n  θ = atan2(%.2f, %.2f) = %.2f°\n", r.Y, r.X, r.AngleDegrees)
	fmt.Fprintf(&b, "  Result: FR points to %s\n", vector.Quadrant(r.AngleDegrees))
	fmt.Fprintf(&b, "         %s\n", headingNote(r.AngleDegrees))

	return b.String()
}
