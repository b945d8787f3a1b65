// Copyright 2025 The Wren Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wren

import (
	"context"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Provider selects the metrics export backend for a Recorder.
type Provider string

const (
	// PrometheusProvider exports metrics through a Prometheus registry;
	// serve MetricsHandler to expose them.
	PrometheusProvider Provider = "prometheus"

	// OTLPProvider pushes metrics to an OTLP/HTTP collector endpoint.
	OTLPProvider Provider = "otlp"

	// StdoutProvider prints metrics to stdout. Useful in development.
	StdoutProvider Provider = "stdout"
)

// Recorder is the OpenTelemetry ObservabilityRecorder: a request counter
// and a duration histogram labelled by method, route pattern and status,
// plus an optional span per request.
type Recorder struct {
	provider     Provider
	otlpEndpoint string
	excluded     map[string]struct{}
	withTraces   bool

	meterProvider interface {
		Shutdown(context.Context) error
	}
	meter    metric.Meter
	requests metric.Int64Counter
	duration metric.Float64Histogram

	tracerProvider interface {
		Shutdown(context.Context) error
	}
	tracer trace.Tracer

	prometheusRegistry *promclient.Registry
	prometheusHandler  http.Handler
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithProvider selects the metrics backend. The default is Prometheus.
func WithProvider(p Provider) RecorderOption {
	return func(r *Recorder) { r.provider = p }
}

// WithOTLPEndpoint sets the collector endpoint for OTLPProvider, e.g.
// "http://localhost:4318". An http:// prefix selects an insecure
// connection.
func WithOTLPEndpoint(endpoint string) RecorderOption {
	return func(r *Recorder) { r.otlpEndpoint = endpoint }
}

// WithTraces enables a stdout-exported span per request. Production
// deployments usually install their own tracer provider instead.
func WithTraces() RecorderOption {
	return func(r *Recorder) { r.withTraces = true }
}

// WithExcludedPaths excludes exact request paths from recording. Typical
// use: the metrics and health endpoints themselves.
func WithExcludedPaths(paths ...string) RecorderOption {
	return func(r *Recorder) {
		for _, p := range paths {
			r.excluded[p] = struct{}{}
		}
	}
}

// NewRecorder creates an OpenTelemetry-backed recorder. It may fail when
// the selected exporter cannot be constructed.
func NewRecorder(opts ...RecorderOption) (*Recorder, error) {
	r := &Recorder{
		provider: PrometheusProvider,
		excluded: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.initializeProvider(); err != nil {
		return nil, err
	}

	var err error
	r.requests, err = r.meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of dispatched requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}
	r.duration, err = r.meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	if r.withTraces {
		if err := r.initTracing(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// requestState is the opaque token threaded from OnRequestStart to
// OnRequestEnd.
type requestState struct {
	start  time.Time
	method string
	span   trace.Span
}

// OnRequestStart implements ObservabilityRecorder.
func (r *Recorder) OnRequestStart(ctx context.Context, req *http.Request) (context.Context, any) {
	if _, skip := r.excluded[req.URL.Path]; skip {
		return ctx, nil
	}
	state := &requestState{start: time.Now(), method: req.Method}
	if r.tracer != nil {
		ctx, state.span = r.tracer.Start(ctx, req.Method+" "+req.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
		)
	}
	return ctx, state
}

// WrapResponseWriter implements ObservabilityRecorder.
func (r *Recorder) WrapResponseWriter(w http.ResponseWriter, state any) http.ResponseWriter {
	if state == nil {
		return w
	}
	return &observedWriter{ResponseWriter: w}
}

// OnRequestEnd implements ObservabilityRecorder.
func (r *Recorder) OnRequestEnd(ctx context.Context, state any, w http.ResponseWriter, routePattern string) {
	st, ok := state.(*requestState)
	if !ok {
		return
	}

	status := http.StatusOK
	if info, ok := w.(ResponseInfo); ok {
		status = info.StatusCode()
	}

	attrs := metric.WithAttributes(
		attribute.String("http.request.method", st.method),
		attribute.String("http.route", routePattern),
		attribute.Int("http.response.status_code", status),
	)
	r.requests.Add(ctx, 1, attrs)
	r.duration.Record(ctx, time.Since(st.start).Seconds(), attrs)

	if st.span != nil {
		st.span.SetAttributes(
			attribute.String("http.route", routePattern),
			attribute.Int("http.response.status_code", status),
		)
		st.span.End()
	}
}

// MetricsHandler returns the Prometheus scrape handler, or nil for other
// providers.
func (r *Recorder) MetricsHandler() http.Handler {
	return r.prometheusHandler
}

// Shutdown flushes and stops the underlying providers.
func (r *Recorder) Shutdown(ctx context.Context) error {
	var firstErr error
	if r.meterProvider != nil {
		if err := r.meterProvider.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if r.tracerProvider != nil {
		if err := r.tracerProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
