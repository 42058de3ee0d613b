package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vector-forces/internal/forces"
	"vector-forces/internal/history"
	"vector-forces/internal/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	observability.Logger = zap.NewNop()
	if err := forces.InitMetrics(); err != nil {
		t.Fatalf("initializing forces metrics: %v", err)
	}
	api := forces.NewAPI(history.NewLog(0), 10, "N")
	return NewRouter(api)
}

func TestNewRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestNewRouterSumSetsHeaderAndOmitsRequestIDInBody(t *testing.T) {
	router := newTestRouter(t)

	body := []byte(`{"vectors":[{"magnitude":3,"angle_degrees":0},{"magnitude":4,"angle_degrees":0}]}`)
	req := httptest.NewRequest(http.MethodPost, "/forces/sum", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	var payload map[string]any
	if err := json.NewDecoder(w.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("decoding JSON response: %v", err)
	}

	if _, ok := payload["request_id"]; ok {
		t.Fatal("did not expect request_id field in success JSON body")
	}

	resultant, ok := payload["resultant"].(map[string]any)
	if !ok {
		t.Fatalf("expected resultant object, got %#v", payload["resultant"])
	}
	if got, ok := resultant["magnitude"].(float64); !ok || got != 7 {
		t.Fatalf("expected resultant magnitude 7, got %#v", resultant["magnitude"])
	}
}
