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
	"log/slog"

	"github.com/wren-web/wren/render"
)

// WithLogger sets the logger used for registration and dispatch events.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRenderer sets the renderer used for route views.
//
// Example:
//
//	a := wren.MustNew(wren.WithRenderer(
//	    render.NewHTML(os.DirFS("views"), render.WithLayout("layout.html")),
//	))
func WithRenderer(r render.Renderer) Option {
	return func(a *App) { a.renderer = r }
}

// WithNotFound sets the handler run when no route matches. The default
// writes a plain 404.
func WithNotFound(h HandlerFunc) Option {
	return func(a *App) { a.notFound = h }
}

// WithRedirectStatus sets the status code used by Redirect when the caller
// passes zero. The default is 301 (Moved Permanently). Values outside the
// 3xx range fail validation in New.
func WithRedirectStatus(code int) Option {
	return func(a *App) { a.redirectStatus = code }
}

// WithObservability attaches an ObservabilityRecorder to the dispatch
// pipeline. See NewRecorder for the OpenTelemetry implementation.
func WithObservability(rec ObservabilityRecorder) Option {
	return func(a *App) { a.recorder = rec }
}
