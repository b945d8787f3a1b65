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
	"strings"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const meterName = "github.com/wren-web/wren"

// initializeProvider builds the meter provider for the selected backend.
func (r *Recorder) initializeProvider() error {
	switch r.provider {
	case PrometheusProvider:
		return r.initPrometheusProvider()
	case OTLPProvider:
		return r.initOTLPProvider()
	case StdoutProvider:
		return r.initStdoutProvider()
	default:
		return fmt.Errorf("unsupported metrics provider: %s", r.provider)
	}
}

func (r *Recorder) initPrometheusProvider() error {
	// A dedicated registry avoids collisions with the global default
	// registry when several apps run in one process.
	r.prometheusRegistry = promclient.NewRegistry()

	exporter, err := prometheus.New(
		prometheus.WithRegisterer(r.prometheusRegistry),
	)
	if err != nil {
		return fmt.Errorf("creating Prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	r.meterProvider = provider
	r.meter = provider.Meter(meterName)

	r.prometheusHandler = promhttp.HandlerFor(
		r.prometheusRegistry,
		promhttp.HandlerOpts{},
	)
	return nil
}

func (r *Recorder) initOTLPProvider() error {
	var opts []otlpmetrichttp.Option
	if r.otlpEndpoint != "" {
		endpoint := r.otlpEndpoint
		insecure := strings.HasPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		if i := strings.Index(endpoint, "/"); i >= 0 {
			endpoint = endpoint[:i]
		}
		opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		if insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
	}

	exporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("creating OTLP exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	r.meterProvider = provider
	r.meter = provider.Meter(meterName)
	return nil
}

func (r *Recorder) initStdoutProvider() error {
	exporter, err := stdoutmetric.New()
	if err != nil {
		return fmt.Errorf("creating stdout exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)
	r.meterProvider = provider
	r.meter = provider.Meter(meterName)
	return nil
}

// initTracing installs a stdout span exporter. Production setups replace
// this by configuring a global tracer provider before dispatch.
func (r *Recorder) initTracing() error {
	exporter, err := stdouttrace.New()
	if err != nil {
		return fmt.Errorf("creating stdout trace exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
	)
	r.tracerProvider = provider
	r.tracer = provider.Tracer(meterName)
	return nil
}
