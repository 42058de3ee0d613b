// Package layout computes resolution-independent placement geometry for a
// vector diagram: where measurement and name labels sit relative to each
// arrow, the radii of the nested angle arcs, parallelogram construction
// lines, tip-to-tail chaining, and the axis bounds of the drawable area.
//
// Every distance is derived from the largest absolute component in the
// calculation (MaxVal), so scaling the vectors uniformly scales all offsets
// uniformly. Output is in data-space units, never pixels; a renderer of any
// kind maps it onto its own surface.
package layout

import (
	"math"

	"vector-forces/internal/vector"
)

// Placement ratios, all relative to MaxVal unless noted.
const (
	// LabelPositionRatio places the measurement label along the vector,
	// biased past the midpoint so labels clear the origin cluster.
	LabelPositionRatio = 0.65

	// PerpendicularOffsetRatio lifts the measurement label off the vector
	// line, perpendicular to it.
	PerpendicularOffsetRatio = 0.04

	// TipOffsetRatio lifts the name label off the vector tip.
	TipOffsetRatio = 0.05

	// ArcBaseRadiusRatio anchors all shared-origin arc radii.
	ArcBaseRadiusRatio = 0.15

	// ArcLabelSweepRatio and ArcLabelRadiusRatio place the angle text just
	// beyond the arc tip.
	ArcLabelSweepRatio  = 1.15
	ArcLabelRadiusRatio = 1.08

	// PaddingRatio pads the axis bounds; MinNegativeSpaceRatio guarantees a
	// visible negative margin even for all-positive vector sets.
	PaddingRatio          = 0.3
	MinNegativeSpaceRatio = 0.15

	// Tip-to-tail arcs use a smaller base radius that grows by a fixed
	// increment per chain index so successive arcs nest.
	ChainArcBaseRatio        = 0.1
	ChainArcStartRatio       = 0.8
	ChainArcStepRatio        = 0.2
	ChainArcLabelRadiusRatio = 1.3
)

// Nested radius multipliers for shared-origin arcs: first input smallest,
// second larger, resultant largest and boldest.
const (
	firstArcRatio     = 0.7
	arcRatioStep      = 0.3
	ResultantArcRatio = 1.35
)

// Method selects the diagram construction.
type Method string

const (
	Parallelogram Method = "parallelogram"
	TipToTail     Method = "tip_to_tail"
)

// Valid reports whether m names a known construction.
func (m Method) Valid() bool {
	return m == Parallelogram || m == TipToTail
}

// Point is a position in data-space units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a construction line between two points.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Arc describes an angle arc swept counterclockwise from the +x direction at
// Center, plus the anchor for its angle label.
type Arc struct {
	Center       Point   `json:"center"`
	Radius       float64 `json:"radius"`
	SweepDegrees float64 `json:"sweep_degrees"`
	Label        Point   `json:"label"`
}

// Placement is the derived geometry for one vector.
type Placement struct {
	Origin Point `json:"origin"`
	Tip    Point `json:"tip"`

	// Label anchors the measurement text; TipLabel anchors the vector name.
	Label         Point   `json:"label"`
	LabelRotation float64 `json:"label_rotation"`
	TipLabel      Point   `json:"tip_label"`

	// Arc is nil when the vector's angle is within tolerance of zero: a
	// zero-length arc is visual noise, not information.
	Arc *Arc `json:"arc,omitempty"`
}

// Bounds is the drawable range on each axis.
type Bounds struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// Spec is the full placement output for one calculation.
type Spec struct {
	Method       Method      `json:"method"`
	MaxVal       float64     `json:"max_val"`
	Vectors      []Placement `json:"vectors"`
	Resultant    Placement   `json:"resultant"`
	Construction []Segment   `json:"construction,omitempty"`
	Bounds       Bounds      `json:"bounds"`
}

// MaxVal returns the largest absolute component across all input vectors and
// the resultant. It anchors every ratio in the package.
func MaxVal(vectors []vector.Vector2D, resultant vector.Vector2D) float64 {
	m := math.Max(math.Abs(resultant.X), math.Abs(resultant.Y))
	for _, v := range vectors {
		m = math.Max(m, math.Max(math.Abs(v.X), math.Abs(v.Y)))
	}
	return m
}

// Compute lays out vectors and their resultant using the given method.
func Compute(vectors []vector.Vector2D, resultant vector.Vector2D, method Method) Spec {
	maxVal := MaxVal(vectors, resultant)

	spec := Spec{
		Method:  method,
		MaxVal:  maxVal,
		Vectors: make([]Placement, 0, len(vectors)),
	}

	switch method {
	case TipToTail:
		var cx, cy float64
		xs := []float64{0, resultant.X}
		ys := []float64{0, resultant.Y}
		for i, v := range vectors {
			origin := Point{X: cx, Y: cy}
			spec.Vectors = append(spec.Vectors, chainPlacement(v, origin, maxVal, i))
			cx += v.X
			cy += v.Y
			xs = append(xs, cx)
			ys = append(ys, cy)
		}
		spec.Resultant = sharedPlacement(resultant, maxVal, ResultantArcRatio)
		spec.Bounds = axisBounds(xs, ys, maxVal)

	default: // Parallelogram
		xs := []float64{0, resultant.X}
		ys := []float64{0, resultant.Y}
		for i, v := range vectors {
			spec.Vectors = append(spec.Vectors, sharedPlacement(v, maxVal, inputArcRatio(i)))
			xs = append(xs, v.X)
			ys = append(ys, v.Y)
		}
		spec.Resultant = sharedPlacement(resultant, maxVal, resultantArcRatio(len(vectors)))
		spec.Construction = constructionLines(vectors, resultant)
		spec.Bounds = axisBounds(xs, ys, maxVal)
	}

	return spec
}

func inputArcRatio(i int) float64 {
	return firstArcRatio + arcRatioStep*float64(i)
}

// resultantArcRatio keeps the resultant arc outside every input arc. With
// the canonical two inputs it is the fixed 1.35 multiplier.
func resultantArcRatio(n int) float64 {
	if n <= 2 {
		return ResultantArcRatio
	}
	return inputArcRatio(n)
}

// sharedPlacement lays out a vector drawn from the origin, as in the
// parallelogram construction and for the resultant in both methods.
func sharedPlacement(v vector.Vector2D, maxVal, arcRatio float64) Placement {
	perp := vector.Radians(v.AngleDegrees - 90)
	offset := maxVal * PerpendicularOffsetRatio
	tipOffset := maxVal * TipOffsetRatio

	midX := v.X * LabelPositionRatio
	midY := v.Y * LabelPositionRatio

	p := Placement{
		Origin: Point{},
		Tip:    Point{X: v.X, Y: v.Y},
		Label: Point{
			X: midX + offset*math.Cos(perp),
			Y: midY + offset*math.Sin(perp),
		},
		LabelRotation: v.AngleDegrees,
		TipLabel: Point{
			X: v.X + tipOffset*math.Cos(perp),
			Y: v.Y + tipOffset*math.Sin(perp),
		},
	}

	if math.Abs(v.AngleDegrees) >= vector.ZeroThreshold {
		radius := maxVal * ArcBaseRadiusRatio * arcRatio
		labelAngle := vector.Radians(v.AngleDegrees * ArcLabelSweepRatio)
		labelRadius := radius * ArcLabelRadiusRatio
		p.Arc = &Arc{
			Radius:       radius,
			SweepDegrees: v.AngleDegrees,
			Label: Point{
				X: labelRadius * math.Cos(labelAngle),
				Y: labelRadius * math.Sin(labelAngle),
			},
		}
	}

	return p
}

// chainPlacement lays out the i-th vector of a tip-to-tail chain starting at
// origin. The measurement label sits on the midpoint, flipped upright for
// left-pointing vectors; the arc is centered on the vector's tail and its
// radius grows with the chain index so the arcs nest.
func chainPlacement(v vector.Vector2D, origin Point, maxVal float64, i int) Placement {
	p := Placement{
		Origin: origin,
		Tip:    Point{X: origin.X + v.X, Y: origin.Y + v.Y},
		Label: Point{
			X: origin.X + v.X*0.5,
			Y: origin.Y + v.Y*0.5,
		},
		TipLabel: Point{X: origin.X + v.X, Y: origin.Y + v.Y},
	}
	if a := math.Mod(v.AngleDegrees, 360); a > 90 && a < 270 {
		p.LabelRotation = 180
	}

	if math.Abs(v.AngleDegrees) >= vector.ZeroThreshold {
		radius := maxVal * ChainArcBaseRatio * (ChainArcStartRatio + ChainArcStepRatio*float64(i))
		labelAngle := vector.Radians(v.AngleDegrees * 0.5)
		labelRadius := radius * ChainArcLabelRadiusRatio
		p.Arc = &Arc{
			Center:       origin,
			Radius:       radius,
			SweepDegrees: v.AngleDegrees,
			Label: Point{
				X: origin.X + labelRadius*math.Cos(labelAngle),
				Y: origin.Y + labelRadius*math.Sin(labelAngle),
			},
		}
	}

	return p
}

// constructionLines returns the dashed parallelogram sides: from each input
// vector's tip to the resultant's tip.
func constructionLines(vectors []vector.Vector2D, resultant vector.Vector2D) []Segment {
	segs := make([]Segment, 0, len(vectors))
	for _, v := range vectors {
		segs = append(segs, Segment{
			From: Point{X: v.X, Y: v.Y},
			To:   Point{X: resultant.X, Y: resultant.Y},
		})
	}
	return segs
}

// axisBounds pads the observed extent and forces a minimum negative margin
// so the origin and axes never sit on the plot edge.
func axisBounds(xs, ys []float64, maxVal float64) Bounds {
	padding := maxVal * PaddingRatio
	minNeg := maxVal * MinNegativeSpaceRatio

	xMin, xMax := extent(xs)
	yMin, yMax := extent(ys)

	return Bounds{
		XMin: math.Min(xMin-padding, -minNeg),
		XMax: xMax + padding,
		YMin: math.Min(yMin-padding, -minNeg),
		YMax: yMax + padding,
	}
}

func extent(vals []float64) (min, max float64) {
	min, max = vals[0], vals[0]
	for _, v := range vals[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max
}
