package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/k-lessa/polyprops/internal/config"
	"github.com/k-lessa/polyprops/internal/metrics"
	"github.com/k-lessa/polyprops/pkg/analytics"
	"github.com/k-lessa/polyprops/pkg/geo"
	"github.com/k-lessa/polyprops/pkg/validation"
)

const maxBodyBytes = 1 << 20

// Server exposes area and centroid computation over HTTP.
type Server struct {
	cfg config.Config
	log logrus.FieldLogger
}

// New creates a server with the given settings.
func New(cfg config.Config, log logrus.FieldLogger) *Server {
	return &Server{
		cfg: cfg,
		log: log,
	}
}

// Start launches the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.log.WithField("addr", addr).Info("polyprops server starting")

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// Handler returns the routed handler with access logging and metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/validate", s.handleValidate)
	mux.HandleFunc("POST /api/area", s.handleArea)
	mux.HandleFunc("POST /api/centroid", s.handleCentroid)
	mux.HandleFunc("POST /api/properties", s.handleProperties)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if strings.HasPrefix(s.cfg.MetricsPath, "/") {
		mux.Handle("GET "+s.cfg.MetricsPath, metrics.Handler())
	} else {
		s.log.WithField("path", s.cfg.MetricsPath).Warn("metrics endpoint disabled: path must start with /")
	}
	mux.HandleFunc("GET /{$}", s.handleIndex)

	return s.access(mux)
}

// polygonRequest is the body accepted by every POST endpoint.
type polygonRequest struct {
	Vertices []float64 `json:"vertices"`
	Area     *float64  `json:"area,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type areaResponse struct {
	Area analytics.Float `json:"area"`
}

type centroidResponse struct {
	X      analytics.Float `json:"x"`
	Y      analytics.Float `json:"y"`
	Finite bool            `json:"finite"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>polyprops</title></head>
<body style="font-family:system-ui">
<h1>polyprops</h1>
<p>POST {"vertices": [x1, y1, x2, y2, ...]} to
<code>/api/area</code>, <code>/api/centroid</code>, <code>/api/properties</code> or <code>/api/validate</code>.</p>
</body></html>`)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	report := validation.CheckPolygon("vertices", req.Vertices)
	for _, e := range report.Errors {
		metrics.ValidationFailuresTotal.WithLabelValues(e.Kind).Inc()
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleArea(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	if err := geo.ValidateVertices(req.Vertices); err != nil {
		s.writeValidationError(w, err)
		return
	}

	start := time.Now()
	area := geo.Area(req.Vertices)
	observe("area", start)

	if !analytics.Float(area).IsFinite() {
		metrics.NonFiniteResultsTotal.Inc()
	}
	s.writeJSON(w, http.StatusOK, areaResponse{Area: analytics.Float(area)})
}

func (s *Server) handleCentroid(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	p, err := geo.NewPolygon(req.Vertices)
	if err != nil {
		s.writeValidationError(w, err)
		return
	}

	start := time.Now()
	c := p.CentroidPoint(req.Area)
	observe("centroid", start)

	if !c.IsFinite() {
		metrics.NonFiniteResultsTotal.Inc()
	}
	s.writeJSON(w, http.StatusOK, centroidResponse{
		X:      analytics.Float(c.X),
		Y:      analytics.Float(c.Y),
		Finite: c.IsFinite(),
	})
}

func (s *Server) handleProperties(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	start := time.Now()
	props, err := analytics.Compute("request", req.Vertices, req.Area)
	if err != nil {
		s.writeValidationError(w, err)
		return
	}
	observe("properties", start)

	if !props.Finite {
		metrics.NonFiniteResultsTotal.Inc()
	}
	s.writeJSON(w, http.StatusOK, props)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (polygonRequest, bool) {
	var req polygonRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			status = http.StatusRequestEntityTooLarge
		}
		s.writeJSON(w, status, errorResponse{Error: fmt.Sprintf("decoding request: %v", err)})
		return req, false
	}
	return req, true
}

func (s *Server) writeValidationError(w http.ResponseWriter, err error) {
	kind := geo.Kind(err)
	metrics.ValidationFailuresTotal.WithLabelValues(kind).Inc()
	s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Kind: kind})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("encoding response")
	}
}

func observe(endpoint string, start time.Time) {
	ms := float64(time.Since(start).Microseconds()) / 1000
	metrics.ComputeDurationMs.WithLabelValues(endpoint).Observe(ms)
}

// statusWriter captures the status code for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (s *Server) access(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)

		endpoint := r.Pattern
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(sw.status)).Inc()
		s.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      sw.status,
			"bytes":       sw.bytes,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("http access")
	})
}
