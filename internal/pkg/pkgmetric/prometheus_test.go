package pkgmetric

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveError(t *testing.T) {
	m := NewPrometheus()
	m.ObserveError(19, http.StatusTooManyRequests)
	m.ObserveError(19, http.StatusTooManyRequests)
	m.ObserveError(1, http.StatusBadRequest)

	if got := testutil.ToFloat64(m.errors.WithLabelValues("19", "429")); got != 2 {
		t.Fatalf("expected 2 rate limit errors, got %v", got)
	}
	if got := testutil.ToFloat64(m.errors.WithLabelValues("1", "400")); got != 1 {
		t.Fatalf("expected 1 required parameter error, got %v", got)
	}
}

func TestObserveDroppedIncident(t *testing.T) {
	m := NewPrometheus()
	m.ObserveDroppedIncident()

	if got := testutil.ToFloat64(m.incidents); got != 1 {
		t.Fatalf("expected 1 dropped incident, got %v", got)
	}
}

func TestHandlerExposesCounters(t *testing.T) {
	m := NewPrometheus()
	m.ObserveError(90, http.StatusInternalServerError)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `wsgate_errors_total{code="90",status="500"} 1`) {
		t.Fatalf("expected error counter in output:\n%s", body)
	}
}
