// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware for the time service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"timeservice/internal/api/handler/v1handler"
	"timeservice/internal/config"
	"timeservice/pkg/controller"
	"timeservice/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server. Zero durations fall back
// to the net/http defaults where applicable.
type Options struct {
	// AuthEnabled turns bearer-token verification on for v1 endpoints.
	AuthEnabled bool
	// AuthPublicKey is the PEM-encoded RSA key used to verify tokens.
	AuthPublicKey string

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out response writes.
	WriteTimeout time.Duration
	// IdleTimeout is the keep-alive wait for the next request.
	IdleTimeout time.Duration
	// RequestTimeout is the global per-request timeout applied via
	// http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes caps the size of parsed request headers.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions maps HTTP and auth settings from the application configuration
// to server Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		AuthEnabled:   cfg.Auth.Enabled,
		AuthPublicKey: cfg.Auth.PublicKey,

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps bundles the dependencies handed down to the handlers.
type Deps struct {
	v1handler.Deps
}

// NewServer wires up and returns a configured *http.Server:
//   - Prometheus metrics endpoint (MetricsPath) with an OTel exporter
//   - embedded OpenAPI v1 spec and Swagger UI playground
//   - v1 API routes, optionally behind bearer-token auth
//   - pprof endpoints
//
// The mux is wrapped with CORS and logging middleware plus a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	r := chi.NewRouter()

	// prometheus metrics endpoint
	r.Handle(opts.MetricsPath, promhttp.Handler())

	// otel meter provider backed by the prometheus registry
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	if deps.Metrics == nil {
		ops, err := metrics.NewOperations(mp)
		if err != nil {
			return nil, fmt.Errorf("could not create operation metrics: %w", err)
		}
		deps.Metrics = ops
	}

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Mount("/v1/docs/", v5emb.New(
		"Time Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	var sec *v1handler.Sec
	if opts.AuthEnabled {
		sec, err = v1handler.NewSec(opts.AuthPublicKey)
		if err != nil {
			return nil, fmt.Errorf("could not create sec middleware: %w", err)
		}
	}
	h := v1handler.New(deps.Deps)
	r.Route("/v1", func(r chi.Router) {
		if sec != nil {
			r.Use(sec.Middleware)
		}
		h.Routes(r)
	})

	// pprof; chi strips the mount prefix before the pprof mux sees the path
	r.Mount("/debug/pprof", controller.PprofMux())

	handler := controller.WithCORS(r)
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
