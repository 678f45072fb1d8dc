// Package server exposes the linter over HTTP.
//
//	POST /lint     {"language": "java", "code": "..."} -> [{"line", "column", "message"}]
//	GET  /metrics  Prometheus text exposition
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dhamidi/jlint/lint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tliron/commonlog"
)

const maxRequestBytes = 10 << 20

var log = commonlog.GetLogger("jlint.server")

type LintRequest struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

type Server struct {
	linter   *lint.Linter
	mux      *http.ServeMux
	registry *prometheus.Registry
	metrics  *metrics
}

// New returns a server with its own metrics registry, so that several
// servers can live in one process.
func New(linter *lint.Linter) *Server {
	reg := prometheus.NewRegistry()
	s := &Server{
		linter:   linter,
		mux:      http.NewServeMux(),
		registry: reg,
		metrics:  newMetrics(reg),
	}

	s.mux.HandleFunc("POST /lint", s.handleLint)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", ln.Addr())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	var req LintRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.metrics.requests.Inc()
	s.metrics.byLanguage.WithLabelValues(languageLabel(req.Language)).Inc()

	start := time.Now()
	problems, err := s.linter.Lint(req.Language, []byte(req.Code))
	s.metrics.duration.Set(time.Since(start).Seconds())

	if err != nil {
		log.Warningf("lint %q: %s", req.Language, err)
		s.metrics.errors.Inc()
		problems = []lint.Problem{lint.ErrorProblem(err)}
	} else {
		s.metrics.errors.Add(float64(len(problems)))
		log.Debugf("lint %s: %d problems in %s", req.Language, len(problems), time.Since(start))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(problems); err != nil {
		log.Errorf("write response: %s", err)
	}
}

// languageLabel maps a requested language onto a bounded label set: the
// supported languages, lower-cased, and "other".
func languageLabel(language string) string {
	language = strings.ToLower(language)
	if slices.Contains(lint.Languages(), language) {
		return language
	}
	return "other"
}
