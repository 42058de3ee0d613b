package forces

import (
	"vector-forces/internal/history"
	"vector-forces/internal/layout"
)

// VectorInput is one magnitude/angle pair as supplied by the caller. Angles
// are degrees counterclockwise from the +x axis.
type VectorInput struct {
	Magnitude    float64 `json:"magnitude"`
	AngleDegrees float64 `json:"angle_degrees"`
}

// VectorJSON is a fully decomposed vector in responses.
type VectorJSON struct {
	Magnitude    float64 `json:"magnitude"`
	AngleDegrees float64 `json:"angle_degrees"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

// DecomposeRequest is the JSON body for POST /forces/decompose.
type DecomposeRequest struct {
	Magnitude    float64 `json:"magnitude"`
	AngleDegrees float64 `json:"angle_degrees"`
}

// DecomposeResponse carries the Cartesian components.
type DecomposeResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SumRequest is the JSON body for POST /forces/sum. Order is preserved; it
// matters for tip-to-tail layout, never for the resultant.
type SumRequest struct {
	Vectors []VectorInput `json:"vectors"`
}

// SumResponse is the JSON response for POST /forces/sum.
type SumResponse struct {
	Vectors   []VectorJSON `json:"vectors"`
	Resultant VectorJSON   `json:"resultant"`
}

// LayoutRequest is the JSON body for POST /forces/layout. Method is
// "parallelogram" (default) or "tip_to_tail".
type LayoutRequest struct {
	Vectors []VectorInput `json:"vectors"`
	Method  string        `json:"method"`
}

// SolveRequest is the JSON body for POST /forces/solve. Scale and the unit
// are cosmetic: they thread through the narration but never touch the math.
// Unit may be given directly or derived from Quantity (Force, Displacement,
// Velocity, Acceleration).
type SolveRequest struct {
	Vectors  []VectorInput `json:"vectors"`
	Scale    float64       `json:"scale"`
	Unit     string        `json:"unit"`
	Quantity string        `json:"quantity"`
	Method   string        `json:"method"`
}

// SolveResponse bundles the numeric results, the placement geometry, and the
// two narration texts. Narration is present only for two-vector solves.
type SolveResponse struct {
	Vectors          []VectorJSON `json:"vectors"`
	Resultant        VectorJSON   `json:"resultant"`
	Layout           layout.Spec  `json:"layout"`
	DirectSolution   string       `json:"direct_solution,omitempty"`
	DetailedSolution string       `json:"detailed_solution,omitempty"`
}

// HistoryResponse is the JSON response for GET /forces/history.
type HistoryResponse struct {
	Entries []history.Entry `json:"entries"`
}
