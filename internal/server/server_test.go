package server

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"

	"github.com/k-lessa/polyprops/internal/config"
	"github.com/k-lessa/polyprops/internal/metrics"
	"github.com/k-lessa/polyprops/pkg/geo"
	"github.com/k-lessa/polyprops/pkg/validation"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	ts := httptest.NewServer(New(config.Default(), log).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding %s response: %v", path, err)
	}
	return resp, out
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestArea(t *testing.T) {
	ts := newTestServer(t)
	resp, out := post(t, ts, "/api/area", `{"vertices":[0,0,10,0,10,10]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if a, _ := out["area"].(float64); !approxEqual(a, 50) {
		t.Errorf("area = %v, want 50", out["area"])
	}
}

func TestAreaValidationError(t *testing.T) {
	ts := newTestServer(t)
	before := testutil.ToFloat64(metrics.ValidationFailuresTotal.WithLabelValues(geo.KindInvalidShape))

	resp, out := post(t, ts, "/api/area", `{"vertices":[0,0,1,0,1]}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	if out["kind"] != geo.KindInvalidShape {
		t.Errorf("kind = %v, want %s", out["kind"], geo.KindInvalidShape)
	}
	after := testutil.ToFloat64(metrics.ValidationFailuresTotal.WithLabelValues(geo.KindInvalidShape))
	if after != before+1 {
		t.Errorf("validation failure counter = %v, want %v", after, before+1)
	}
}

func TestCentroid(t *testing.T) {
	ts := newTestServer(t)
	resp, out := post(t, ts, "/api/centroid", `{"vertices":[0,0,1,0,1,-1]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	x, _ := out["x"].(float64)
	y, _ := out["y"].(float64)
	if !approxEqual(x, 2.0/3.0) || !approxEqual(y, -1.0/3.0) {
		t.Errorf("centroid = (%v,%v), want (2/3,-1/3)", out["x"], out["y"])
	}
	if out["finite"] != true {
		t.Error("expected finite centroid")
	}
}

func TestCentroidWithArea(t *testing.T) {
	ts := newTestServer(t)
	_, out := post(t, ts, "/api/centroid", `{"vertices":[0,0,1,0,1,1],"area":0.5}`)
	x, _ := out["x"].(float64)
	if !approxEqual(x, 2.0/3.0) {
		t.Errorf("x = %v, want 2/3", out["x"])
	}
}

func TestCentroidDegenerate(t *testing.T) {
	ts := newTestServer(t)
	before := testutil.ToFloat64(metrics.NonFiniteResultsTotal)

	resp, out := post(t, ts, "/api/centroid", `{"vertices":[0,0,1,0,2,0]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if out["finite"] != false || out["x"] != nil || out["y"] != nil {
		t.Errorf("expected null non-finite centroid, got %v", out)
	}
	if got := testutil.ToFloat64(metrics.NonFiniteResultsTotal); got != before+1 {
		t.Errorf("non-finite counter = %v, want %v", got, before+1)
	}
}

func TestCentroidTooFew(t *testing.T) {
	ts := newTestServer(t)
	resp, out := post(t, ts, "/api/centroid", `{"vertices":[0,0,1,1]}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	if out["kind"] != geo.KindInsufficientVertices {
		t.Errorf("kind = %v, want %s", out["kind"], geo.KindInsufficientVertices)
	}
}

func TestProperties(t *testing.T) {
	ts := newTestServer(t)
	resp, out := post(t, ts, "/api/properties", `{"vertices":[0,0,1,0,1,1]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if a, _ := out["area"].(float64); !approxEqual(a, 0.5) {
		t.Errorf("area = %v, want 0.5", out["area"])
	}
	c, _ := out["centroid"].(map[string]any)
	if x, _ := c["x"].(float64); !approxEqual(x, 2.0/3.0) {
		t.Errorf("centroid = %v", out["centroid"])
	}
}

func TestValidate(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/validate", "application/json", strings.NewReader(`{"vertices":[0,0,1]}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var report validation.Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatal(err)
	}
	if report.Valid || len(report.Errors) != 1 || report.Errors[0].Kind != geo.KindInvalidShape {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestBadRequest(t *testing.T) {
	ts := newTestServer(t)
	for _, body := range []string{`not json`, `{"vertices":[0,0,1,0,1,1],"extra":1}`} {
		resp, _ := post(t, ts, "/api/area", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", body, resp.StatusCode)
		}
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/area")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "polyprops_non_finite_results_total") {
		t.Error("metrics output missing polyprops_non_finite_results_total")
	}
}

func TestMetricsPathWithoutSlash(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := config.Default()
	cfg.MetricsPath = "metrics"
	ts := httptest.NewServer(New(cfg, log).Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d, want 200", resp.StatusCode)
	}
}
