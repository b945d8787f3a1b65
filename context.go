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
	"net/http"

	"github.com/wren-web/wren/container"
	"github.com/wren-web/wren/pattern"
)

// Context carries one request through a handler: the request and response,
// the captured route parameters, and the per-request data container handed
// to templates. Each request gets its own Context; nothing here is shared.
type Context struct {
	Request  *http.Request
	Response http.ResponseWriter

	// Data is the per-request container. Captured parameters are stored
	// under "params.<name>" before the handler runs; handlers add view
	// data with Set.
	Data *container.Container

	app       *App
	route     *Route
	params    pattern.Params
	wroteBody bool
}

// Route returns the matched route, or nil on the not-found path.
func (c *Context) Route() *Route { return c.route }

// Param returns the captured value for the named route parameter, or "".
func (c *Context) Param(name string) string { return c.params[name] }

// Params returns all captured parameter values.
func (c *Context) Params() pattern.Params { return c.params }

// Set stores a value in the data container for the view.
func (c *Context) Set(path string, v any) error { return c.Data.Set(path, v) }

// Get reads a value from the data container.
func (c *Context) Get(path string) (any, bool) { return c.Data.Get(path) }

// String writes a plain-text response and marks the body as written, which
// suppresses the route's automatic view render.
func (c *Context) String(code int, format string, args ...any) error {
	c.Response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.Response.WriteHeader(code)
	c.wroteBody = true
	_, err := fmt.Fprintf(c.Response, format, args...)
	return err
}

// Render renders the named view with the container contents through the
// app's renderer and marks the body as written.
func (c *Context) Render(view string) error {
	if c.app.renderer == nil {
		return ErrNoRenderer
	}
	c.wroteBody = true
	return c.app.renderer.Render(c.Response, view, c.Data.All())
}

// URLFor assembles a URL for a named route; see App.URLFor.
func (c *Context) URLFor(name string, params pattern.Params) (string, error) {
	return c.app.URLFor(name, params, nil)
}

// Redirect redirects to a route name or literal URL; see App.Redirect.
// It does not halt the handler — return after calling it.
func (c *Context) Redirect(target string, params pattern.Params, code int) error {
	if err := c.app.Redirect(c.Response, target, params, code); err != nil {
		return err
	}
	c.wroteBody = true
	return nil
}
