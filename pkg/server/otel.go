package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "vellum"

// TracingConfig configures the OpenTelemetry middleware.
type TracingConfig struct {
	// TracerName names the tracer (default: "vellum").
	TracerName string

	// Filter decides which requests to trace. Nil traces everything.
	Filter func(r *http.Request) bool

	// AttributeExtractor adds custom attributes to each span.
	AttributeExtractor func(r *http.Request) []attribute.KeyValue
}

// TracingOption configures the OpenTelemetry middleware.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) { c.TracerName = name }
}

// WithTracingFilter sets a request filter.
func WithTracingFilter(filter func(r *http.Request) bool) TracingOption {
	return func(c *TracingConfig) { c.Filter = filter }
}

// WithTracingAttributes sets a custom attribute extractor.
func WithTracingAttributes(fn func(r *http.Request) []attribute.KeyValue) TracingOption {
	return func(c *TracingConfig) { c.AttributeExtractor = fn }
}

// WithTracing enables OpenTelemetry spans per request. Spans carry the
// route pattern, method, status code, and response size; a 5xx status
// marks the span as an error.
func WithTracing(opts ...TracingOption) Option {
	cfg := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	return func(s *Server) {
		s.tracer = &tracing{
			cfg:    cfg,
			tracer: otel.Tracer(cfg.TracerName),
		}
	}
}

type tracing struct {
	cfg    TracingConfig
	tracer trace.Tracer
}

func (t *tracing) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if t.cfg.Filter != nil && !t.cfg.Filter(r) {
			next.ServeHTTP(w, r)
			return
		}

		ctx, span := t.tracer.Start(r.Context(), "vellum.request",
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		if t.cfg.AttributeExtractor != nil {
			span.SetAttributes(t.cfg.AttributeExtractor(r)...)
		}

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r.WithContext(ctx))

		if route := chi.RouteContext(r.Context()).RoutePattern(); route != "" {
			span.SetName(route)
			span.SetAttributes(attribute.String("http.route", route))
		}
		span.SetAttributes(
			attribute.Int("http.status_code", sw.status),
			attribute.Int("http.response_size", sw.bytes),
		)
		if sw.status >= 500 {
			span.SetStatus(codes.Error, http.StatusText(sw.status))
		} else {
			span.SetStatus(codes.Ok, "")
		}
	})
}
