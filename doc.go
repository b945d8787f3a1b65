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

// Package wren is a compact web micro-framework built around three pieces:
// an ordered route registry over an expressive pattern grammar, a nested
// per-request data container, and view rendering.
//
// # Routing
//
// Routes are registered by name with a pattern; the first registered route
// that matches a request wins:
//
//	a := wren.MustNew()
//
//	a.Route("home", "GET /").Handle(homeHandler)
//	a.Route("blog.show", `GET /blog/:id<\d+>[/:slug]`).
//	    View("blog/show.html").
//	    Handle(showPost)
//
//	http.ListenAndServe(":8080", a)
//
// Patterns support named parameters with regex constraints, nested
// optional groups, wildcards and HTTP-method prefixes; see package
// pattern. URL assembly is the exact inverse of matching:
//
//	url, err := a.URLFor("blog.show", pattern.Params{"id": "42"}, nil)
//	// "/blog/42"
//
// # Constructor pattern
//
// New returns (*App, error): the App itself cannot fail to initialize, but
// option combinations are validated up front so configuration mistakes
// stop the program at startup instead of mid-request. MustNew panics on
// the same errors.
//
// # Concurrency
//
// Registration belongs to a setup phase. Once serving starts the App is
// read-only and safe for concurrent requests; each request gets its own
// Context and data container, and matching annotates a returned Match
// value rather than any shared slot.
//
// # Observability
//
// An optional OpenTelemetry recorder measures dispatch by route pattern:
//
//	rec, err := wren.NewRecorder(wren.WithProvider(wren.PrometheusProvider))
//	a := wren.MustNew(wren.WithObservability(rec))
package wren
