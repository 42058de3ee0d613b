package forces

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"vector-forces/internal/handlers"
	"vector-forces/internal/history"
	"vector-forces/internal/layout"
	"vector-forces/internal/narrate"
	"vector-forces/internal/observability"
	"vector-forces/internal/vector"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is this domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("forces")

// API holds the per-session state behind the vector endpoints. The history
// log is unsynchronized by contract, so the API — as the session owner —
// serializes access with its own mutex.
type API struct {
	defaultScale float64
	defaultUnit  string

	mu  sync.Mutex
	log *history.Log
}

// NewAPI wires the handlers to a caller-owned history log and the cosmetic
// defaults applied when a solve request omits scale or unit.
func NewAPI(log *history.Log, defaultScale float64, defaultUnit string) *API {
	return &API{
		defaultScale: defaultScale,
		defaultUnit:  defaultUnit,
		log:          log,
	}
}

// ---------------------------------------------------------------------------
// Handlers — pure computation
// ---------------------------------------------------------------------------

// Decompose handles POST /forces/decompose.
func (api *API) Decompose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "forces.decompose",
		trace.WithAttributes(
			attribute.String("forces.operation", "decompose"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req DecomposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "decompose", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if !finite(req.Magnitude, req.AngleDegrees) {
		observability.RecordError(ctx, span, logger, errorCounter, "decompose", "invalid numeric input",
			fmt.Errorf("magnitude=%g angle=%g", req.Magnitude, req.AngleDegrees), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("forces.magnitude", req.Magnitude),
		attribute.Float64("forces.angle_degrees", req.AngleDegrees),
	)

	start := time.Now()
	x, y, err := vector.Decompose(req.Magnitude, req.AngleDegrees)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "decompose", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", "decompose"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("x", x),
		attribute.Float64("y", y),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("vector decomposed",
		zap.Float64("magnitude", req.Magnitude),
		zap.Float64("angle_degrees", req.AngleDegrees),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, DecomposeResponse{X: x, Y: y})
}

// Sum handles POST /forces/sum.
func (api *API) Sum(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "forces.sum",
		trace.WithAttributes(
			attribute.String("forces.operation", "sum"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req SumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "sum", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("forces.vector_count", len(req.Vectors)))

	start := time.Now()
	vs, err := buildVectors(req.Vectors)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "sum", err.Error(), err, http.StatusBadRequest, w)
		return
	}
	resultant := vector.Sum(vs)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	attrs := metric.WithAttributes(attribute.String("operation", "sum"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, resultant.Magnitude, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("resultant.magnitude", resultant.Magnitude),
		attribute.Float64("resultant.angle_degrees", resultant.AngleDegrees),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("vectors summed",
		zap.Int("vector_count", len(vs)),
		zap.Float64("resultant_magnitude", resultant.Magnitude),
		zap.Float64("resultant_angle", resultant.AngleDegrees),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, SumResponse{
		Vectors:   toJSON(vs),
		Resultant: vectorJSON(resultant),
	})
}

// Layout handles POST /forces/layout.
func (api *API) Layout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "forces.layout",
		trace.WithAttributes(
			attribute.String("forces.operation", "layout"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req LayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "layout", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	method, err := parseMethod(req.Method)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "layout", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Int("forces.vector_count", len(req.Vectors)),
		attribute.String("forces.method", string(method)),
	)

	start := time.Now()
	vs, err := buildVectors(req.Vectors)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "layout", err.Error(), err, http.StatusBadRequest, w)
		return
	}
	resultant := vector.Sum(vs)
	spec := layout.Compute(vs, resultant, method)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	attrs := metric.WithAttributes(attribute.String("operation", "layout"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("layout.max_val", spec.MaxVal),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("layout computed",
		zap.Int("vector_count", len(vs)),
		zap.String("method", string(method)),
		zap.Float64("max_val", spec.MaxVal),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, spec)
}

// ---------------------------------------------------------------------------
// Handler — full solve (compute + layout + narration + history)
// ---------------------------------------------------------------------------

// Solve handles POST /forces/solve. It is the one endpoint with a side
// effect: a successful solve appends an entry to the session history. A
// failed solve records nothing.
func (api *API) Solve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "forces.solve",
		trace.WithAttributes(
			attribute.String("forces.operation", "solve"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "solve", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Vectors) < 2 {
		observability.RecordError(ctx, span, logger, errorCounter, "solve", "at least two vectors required",
			fmt.Errorf("got %d vectors", len(req.Vectors)), http.StatusBadRequest, w)
		return
	}

	method, err := parseMethod(req.Method)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "solve", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	scale := req.Scale
	if !finite(scale) || scale <= 0 {
		scale = api.defaultScale
	}
	unit := req.Unit
	if unit == "" {
		if req.Quantity != "" {
			unit = narrate.UnitFor(req.Quantity)
		} else {
			unit = api.defaultUnit
		}
	}

	span.SetAttributes(
		attribute.Int("forces.vector_count", len(req.Vectors)),
		attribute.String("forces.method", string(method)),
		attribute.Float64("forces.scale", scale),
		attribute.String("forces.unit", unit),
	)

	start := time.Now()
	vs, err := buildVectors(req.Vectors)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "solve", err.Error(), err, http.StatusBadRequest, w)
		return
	}
	resultant := vector.Sum(vs)
	spec := layout.Compute(vs, resultant, method)

	resp := SolveResponse{
		Vectors:   toJSON(vs),
		Resultant: vectorJSON(resultant),
		Layout:    spec,
	}

	// The shipped narration is specialized to exactly two contributing
	// vectors; larger sets get numbers and layout only.
	if len(vs) == 2 {
		resp.DirectSolution = narrate.DirectSolution(vs[0], vs[1], resultant, scale, unit)
		resp.DetailedSolution = narrate.DetailedSolution(vs[0], vs[1], resultant, scale, unit)
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	entry := history.Entry{
		Timestamp: time.Now().UTC(),
		F1Mag:     vs[0].Magnitude,
		F1Angle:   vs[0].AngleDegrees,
		F2Mag:     vs[1].Magnitude,
		F2Angle:   vs[1].AngleDegrees,
		Scale:     scale,
		Result: history.Result{
			X:     resultant.X,
			Y:     resultant.Y,
			Mag:   resultant.Magnitude,
			Angle: resultant.AngleDegrees,
		},
	}
	for _, v := range vs[2:] {
		entry.Extra = append(entry.Extra, history.Input{
			Magnitude:    v.Magnitude,
			AngleDegrees: v.AngleDegrees,
		})
	}

	api.mu.Lock()
	api.log.Add(entry)
	logged := api.log.Len()
	api.mu.Unlock()

	attrs := metric.WithAttributes(attribute.String("operation", "solve"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, resultant.Magnitude, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("resultant.magnitude", resultant.Magnitude),
		attribute.Float64("resultant.angle_degrees", resultant.AngleDegrees),
		attribute.Int("history.size", logged),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("solve completed",
		zap.Int("vector_count", len(vs)),
		zap.String("method", string(method)),
		zap.Float64("resultant_magnitude", resultant.Magnitude),
		zap.Float64("resultant_angle", resultant.AngleDegrees),
		zap.Int("history_size", logged),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Handlers — session history
// ---------------------------------------------------------------------------

// History handles GET /forces/history. An optional ?n= query limits the
// response to the n most recent entries, oldest first.
func (api *API) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	ctx, span := tracer.Start(ctx, "forces.history",
		trace.WithAttributes(attribute.String("forces.operation", "history")),
	)
	defer span.End()

	n := 0
	if s := r.URL.Query().Get("n"); s != "" {
		var err error
		n, err = strconv.Atoi(s)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "history", "invalid n parameter", err, http.StatusBadRequest, w)
			return
		}
	}

	api.mu.Lock()
	var entries []history.Entry
	if n > 0 {
		entries = api.log.Last(n)
	} else {
		entries = api.log.All()
	}
	api.mu.Unlock()

	span.SetAttributes(attribute.Int("history.returned", len(entries)))
	span.SetStatus(codes.Ok, "")

	handlers.WriteJSON(w, http.StatusOK, HistoryResponse{Entries: entries})
}

// ClearHistory handles DELETE /forces/history.
func (api *API) ClearHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	_, span := tracer.Start(ctx, "forces.history.clear",
		trace.WithAttributes(attribute.String("forces.operation", "history.clear")),
	)
	defer span.End()

	api.mu.Lock()
	api.log.Clear()
	api.mu.Unlock()

	span.SetStatus(codes.Ok, "")
	logger.Info("history cleared",
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
	)

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// Snapshot returns a copy of the session history for persistence.
func (api *API) Snapshot() []history.Entry {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.log.All()
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// buildVectors validates and decomposes the request inputs in order. Labels
// follow the F₁/F₂ naming of the diagrams: "Force 1", "Force 2", ...
func buildVectors(inputs []VectorInput) ([]vector.Vector2D, error) {
	out := make([]vector.Vector2D, 0, len(inputs))
	for i, in := range inputs {
		label := fmt.Sprintf("Force %d", i+1)
		if !finite(in.Magnitude, in.AngleDegrees) {
			return nil, fmt.Errorf("%s: invalid numeric input (magnitude=%g angle=%g)", label, in.Magnitude, in.AngleDegrees)
		}
		v, err := vector.New(label, in.Magnitude, in.AngleDegrees)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseMethod(s string) (layout.Method, error) {
	if s == "" {
		return layout.Parallelogram, nil
	}
	m := layout.Method(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown method %q", s)
	}
	return m, nil
}

func vectorJSON(v vector.Vector2D) VectorJSON {
	return VectorJSON{
		Magnitude:    v.Magnitude,
		AngleDegrees: v.AngleDegrees,
		X:            v.X,
		Y:            v.Y,
	}
}

func toJSON(vs []vector.Vector2D) []VectorJSON {
	out := make([]VectorJSON, 0, len(vs))
	for _, v := range vs {
		out = append(out, vectorJSON(v))
	}
	return out
}
