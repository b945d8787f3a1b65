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
	"net/url"

	"github.com/wren-web/wren/pattern"
)

// HandlerFunc handles a matched request. Captured parameters and the data
// container are reached through the Context; handlers receive everything
// explicitly rather than through ambient state.
type HandlerFunc func(*Context)

// Route is a registered route. Registration happens through App.Route,
// which returns the Route for fluent configuration:
//
//	app.Route("blog.show", `GET /blog/:id<\d+>`).
//	    View("blog/show.html").
//	    Handle(showPost)
//
// A Route is immutable once the app starts serving; matching annotates a
// separate Match value, never the Route itself.
type Route struct {
	app         *App
	name        string
	compiled    *pattern.Pattern
	viewFile    string
	handler     HandlerFunc
	constraints map[string]string // added via Where, merged at recompile
}

// Match is the result of a successful lookup: the route that matched and
// the parameter values captured from the path.
type Match struct {
	Route  *Route
	Params pattern.Params
}

// Name returns the route's unique name.
func (r *Route) Name() string { return r.name }

// Pattern returns the compiled route pattern.
func (r *Route) Pattern() *pattern.Pattern { return r.compiled }

// ViewFile returns the view file rendered after the handler, or "".
func (r *Route) ViewFile() string { return r.viewFile }

// View sets the view file rendered after the handler runs. Returns the
// route for chaining.
func (r *Route) View(file string) *Route {
	r.viewFile = file
	return r
}

// Handle sets the route handler. Returns the route for chaining.
func (r *Route) Handle(h HandlerFunc) *Route {
	r.handler = h
	return r
}

// Where constrains a route parameter with a regular-expression fragment,
// equivalent to declaring :param<constraint> inline. An inline declaration
// for the same parameter wins. Returns the route for chaining.
//
// Example:
//
//	a.Route("blog.show", "GET /blog/:id").Where("id", `\d+`)
func (r *Route) Where(param, constraint string) *Route {
	if r.constraints == nil {
		r.constraints = make(map[string]string)
	}
	r.constraints[param] = constraint

	p, err := pattern.CompileWith(r.compiled.String(), r.constraints)
	if err != nil {
		// The source already compiled once; added constraints cannot
		// introduce grammar errors.
		panic(fmt.Sprintf("wren: route %q: %v", r.name, err))
	}
	r.compiled = p
	return r
}

// Route registers a route under a unique name. The pattern may carry an
// HTTP method prefix, parameters with constraints, nested optional groups
// and a wildcard; see package pattern for the grammar.
//
// Registration order is significant: lookup scans routes in insertion
// order and the first match wins. Route panics on a malformed pattern or a
// duplicate name, both programming errors caught at startup.
func (a *App) Route(name, src string) *Route {
	p, err := pattern.Compile(src)
	if err != nil {
		panic(fmt.Sprintf("wren: route %q: %v", name, err))
	}

	rt := &Route{app: a, name: name, compiled: p}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.names[name]; exists {
		panic(fmt.Sprintf("wren: %v: %q", ErrDuplicateRoute, name))
	}
	a.routes = append(a.routes, rt)
	a.names[name] = rt

	a.logger.Debug("route registered",
		"name", name,
		"pattern", src,
		"params", p.ParamNames(),
	)

	return rt
}

// Lookup tests path and method against the registered routes in insertion
// order and returns the first match. The query string is ignored for
// matching. A miss is a normal result, not an error.
func (a *App) Lookup(path, method string) (*Match, bool) {
	a.mu.RLock()
	routes := a.routes
	a.mu.RUnlock()

	for _, rt := range routes {
		if params, ok := rt.compiled.Match(path, method); ok {
			return &Match{Route: rt, Params: params}, true
		}
	}
	return nil, false
}

// URLFor assembles a URL for the named route from the supplied parameters,
// appending query when non-empty.
//
// It fails with *RouteNotFoundError for an unknown name, with
// *pattern.MissingParameterError when a required parameter is absent, and
// with *pattern.InvalidParameterError when a value violates its
// constraint; parameter errors carry the route name.
func (a *App) URLFor(name string, params pattern.Params, query url.Values) (string, error) {
	a.mu.RLock()
	rt, ok := a.names[name]
	a.mu.RUnlock()
	if !ok {
		return "", &RouteNotFoundError{Name: name}
	}

	u, err := rt.compiled.Assemble(params, query)
	if err != nil {
		// Parameter errors leave Route empty at the pattern layer; stamp
		// the route name here where it is known.
		switch e := err.(type) {
		case *pattern.MissingParameterError:
			e.Route = name
		case *pattern.InvalidParameterError:
			e.Route = name
		}
		return "", err
	}
	return u, nil
}

// Routes returns the registered routes in insertion order. Intended for
// introspection and tests.
func (a *App) Routes() []*Route {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]*Route(nil), a.routes...)
}
