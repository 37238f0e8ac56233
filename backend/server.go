// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"

	"github.com/christman-ai/stamper/config"
	"github.com/christman-ai/stamper/o11y/metrics"
)

const (
	RouteRoot    = "/"
	RouteHealthz = "/healthz"

	readHeaderTimeout = 10 * time.Second
	allowHeader       = "GET, HEAD"
)

// MessageResponse is the payload served on the root route
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the payload served on the liveness route
type HealthResponse struct {
	Status string `json:"status"`
}

// Server is the placeholder web service. Its only state is the greeting message,
// which can be replaced while serving when the configuration is reloaded.
type Server struct {
	log             *zap.SugaredLogger
	metricsSink     metrics.Sink
	service         string
	bindAddr        string
	shutdownTimeout time.Duration

	mu      sync.RWMutex
	message string
}

// New creates a server from the given configuration
func New(cfg config.BackendConfig, service string, logger *zap.SugaredLogger, metricsSink metrics.Sink) *Server {
	return &Server{
		log:             logger,
		metricsSink:     metricsSink,
		service:         service,
		bindAddr:        cfg.BindAddr,
		shutdownTimeout: cfg.ShutdownTimeout,
		message:         cfg.Message,
	}
}

// Message returns the greeting currently served
func (s *Server) Message() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.message
}

// Reload applies the reloadable parts of a new configuration.
// Bind address and shutdown timeout changes need a restart.
func (s *Server) Reload(cfg config.BackendConfig) {
	s.mu.Lock()
	previous := s.message
	s.message = cfg.Message
	s.mu.Unlock()

	if cfg.BindAddr != s.bindAddr {
		s.log.Warnw("bind address changes are only applied on restart", "current", s.bindAddr, "configured", cfg.BindAddr)
	}

	s.log.Infow("configuration reloaded", "previousMessage", previous, "message", cfg.Message)

	if err := s.metricsSink.MetricConfigReloaded(); err != nil {
		s.log.Errorw("error sending config.reloaded metric", "error", err)
	}
}

// Handler returns the traced router serving every route, accepting HTTP/2 without TLS
func (s *Server) Handler() http.Handler {
	mux := httptrace.NewServeMux(httptrace.WithServiceName(s.service))
	mux.Handle(RouteRoot, s.instrument(RouteRoot, http.HandlerFunc(s.handleRoot)))
	mux.Handle(RouteHealthz, s.instrument(RouteHealthz, http.HandlerFunc(s.handleHealthz)))

	return h2c.NewHandler(mux, &http2.Server{})
}

// Run listens on the configured bind address and serves until ctx is done
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bindAddr)
	if err != nil {
		return fmt.Errorf("unable to listen on %s: %w", s.bindAddr, err)
	}

	return s.Serve(ctx, listener)
}

// Serve serves on the given listener until ctx is done, then gives in-flight
// requests up to the shutdown timeout to complete
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)

	go func() {
		errc <- srv.Serve(listener)
	}()

	s.log.Infow("web service started", "address", listener.Addr().String())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("web service stopped unexpectedly: %w", err)
	case <-ctx.Done():
	}

	s.log.Infow("shutting down web service", "timeout", s.shutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("unable to gracefully shut down web service: %w", err)
	}

	return nil
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != RouteRoot {
		http.NotFound(w, r)
		return
	}

	if !allowed(w, r) {
		return
	}

	s.writeJSON(w, http.StatusOK, MessageResponse{Message: s.Message()})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if !allowed(w, r) {
		return
	}

	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// allowed answers 405 to anything but GET and HEAD; HEAD bodies are dropped by net/http
func allowed(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}

	w.Header().Set("Allow", allowHeader)
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)

	return false
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Errorw("error writing response", "error", err)
	}
}

// instrument sends a request metric tagged with the route and the status code written by next
func (s *Server) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		// unknown paths fall through to the root handler
		metricRoute := route
		if rec.status == http.StatusNotFound {
			metricRoute = "unknown"
		}

		if err := s.metricsSink.MetricRequestServed(metricRoute, rec.status, nil); err != nil {
			s.log.Errorw("error sending requests metric", "error", err, "route", metricRoute)
		}

		s.log.Debugw("request served", "method", r.Method, "path", r.URL.Path, "status", rec.status)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
