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
	"net/http"
)

// unmatchedPattern is the route label recorded for requests that matched
// no route. Using a sentinel instead of the raw path keeps metric
// cardinality bounded.
const unmatchedPattern = "_unmatched"

// ObservabilityRecorder provides lifecycle hooks around request dispatch.
// Implementations typically combine metrics and tracing; NewRecorder is
// the OpenTelemetry-backed implementation.
//
// Lifecycle:
//  1. OnRequestStart returns an enriched context and an opaque state
//     token. A nil token excludes the request from recording; the
//     enriched context still applies, so trace propagation keeps working
//     on excluded paths.
//  2. WrapResponseWriter wraps the writer to capture status and size. It
//     must return the writer unchanged when state is nil.
//  3. OnRequestEnd is called after the handler, only when state is
//     non-nil. routePattern is the matched pattern source, or the
//     unmatched sentinel.
//
// All methods must be safe for concurrent use.
type ObservabilityRecorder interface {
	OnRequestStart(ctx context.Context, req *http.Request) (context.Context, any)
	WrapResponseWriter(w http.ResponseWriter, state any) http.ResponseWriter
	OnRequestEnd(ctx context.Context, state any, w http.ResponseWriter, routePattern string)
}

// ResponseInfo is implemented by wrapped response writers so OnRequestEnd
// can read the response status and size.
type ResponseInfo interface {
	StatusCode() int
	Size() int64
}

// observedWriter captures response metadata for OnRequestEnd.
type observedWriter struct {
	http.ResponseWriter
	status int
	size   int64
}

func (w *observedWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *observedWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += int64(n)
	return n, err
}

// StatusCode returns the response status, defaulting to 200 when the
// handler never called WriteHeader.
func (w *observedWriter) StatusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Size returns the number of body bytes written.
func (w *observedWriter) Size() int64 { return w.size }
