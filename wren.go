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
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/wren-web/wren/container"
	"github.com/wren-web/wren/pattern"
	"github.com/wren-web/wren/render"
)

// App is the framework facade: an ordered route registry, URL assembly,
// redirects and the request dispatch pipeline.
//
// Registration (Route, options) belongs to a setup phase. After setup the
// App is read-only and safe for concurrent requests; every request gets its
// own Context and data container.
type App struct {
	mu     sync.RWMutex
	routes []*Route
	names  map[string]*Route

	logger         *slog.Logger
	renderer       render.Renderer
	notFound       HandlerFunc
	redirectStatus int
	recorder       ObservabilityRecorder
}

// Option configures an App.
type Option func(*App)

// New creates an App and applies the given options. Configuration is
// validated up front; an invalid option combination is returned as an
// error rather than surfacing mid-request.
func New(opts ...Option) (*App, error) {
	a := &App{
		names:          make(map[string]*Route),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		redirectStatus: http.StatusMovedPermanently,
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("wren configuration validation failed: %w", err)
	}
	return a, nil
}

// MustNew is like New but panics on invalid configuration. Intended for
// program start, where configuration errors should stop the process.
func MustNew(opts ...Option) *App {
	a, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *App) validate() error {
	if a.redirectStatus < 300 || a.redirectStatus > 399 {
		return fmt.Errorf("%w: %d", ErrRedirectStatusInvalid, a.redirectStatus)
	}
	return nil
}

// ServeHTTP dispatches a request: look the path and method up, run the
// matched route's handler with a fresh Context, then render the route's
// view when one is set and the handler has not already written a response.
// A miss runs the not-found handler (plain 404 by default).
func (a *App) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	var state any
	if a.recorder != nil {
		ctx, state = a.recorder.OnRequestStart(ctx, req)
		req = req.WithContext(ctx)
		w = a.recorder.WrapResponseWriter(w, state)
	}

	m, ok := a.Lookup(req.URL.Path, req.Method)
	if !ok {
		a.dispatchNotFound(w, req)
		if a.recorder != nil && state != nil {
			a.recorder.OnRequestEnd(ctx, state, w, unmatchedPattern)
		}
		return
	}

	c := a.newContext(w, req, m)
	for name, value := range m.Params {
		// Captured parameters land in the container for view templates.
		if err := c.Data.Set("params."+name, value); err != nil {
			a.logger.Error("storing captured parameter", "param", name, "error", err)
		}
	}

	if h := m.Route.handler; h != nil {
		h(c)
	}

	if view := m.Route.viewFile; view != "" && !c.wroteBody {
		if err := c.Render(view); err != nil {
			a.logger.Error("rendering view",
				"route", m.Route.name,
				"view", view,
				"error", err,
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}

	if a.recorder != nil && state != nil {
		a.recorder.OnRequestEnd(ctx, state, w, m.Route.compiled.String())
	}
}

func (a *App) dispatchNotFound(w http.ResponseWriter, req *http.Request) {
	if a.notFound != nil {
		a.notFound(a.newContext(w, req, nil))
		return
	}
	http.NotFound(w, req)
}

// Redirect writes a redirect to target. When target names a registered
// route it is assembled from params first; otherwise target is used
// verbatim as the URL. A zero code uses the app's configured default (301).
//
// Redirect only emits the response; it does not stop the caller's flow.
// Return from the handler after calling it.
func (a *App) Redirect(w http.ResponseWriter, target string, params pattern.Params, code int) error {
	a.mu.RLock()
	_, known := a.names[target]
	a.mu.RUnlock()

	location := target
	if known {
		u, err := a.URLFor(target, params, nil)
		if err != nil {
			return err
		}
		location = u
	}

	if code == 0 {
		code = a.redirectStatus
	}
	w.Header().Set("Location", location)
	w.WriteHeader(code)
	return nil
}

func (a *App) newContext(w http.ResponseWriter, req *http.Request, m *Match) *Context {
	c := &Context{
		Request:  req,
		Response: w,
		Data:     container.New(),
		app:      a,
	}
	if m != nil {
		c.route = m.Route
		c.params = m.Params
	}
	return c
}
