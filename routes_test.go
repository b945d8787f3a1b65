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
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wren-web/wren/pattern"
)

func TestRouteRegistration(t *testing.T) {
	t.Parallel()

	a := MustNew()
	rt := a.Route("blog.show", `GET /blog/:id<\d+>`).View("blog/show.html")

	assert.Equal(t, "blog.show", rt.Name())
	assert.Equal(t, "blog/show.html", rt.ViewFile())
	assert.Equal(t, []string{"GET"}, rt.Pattern().Methods())
	assert.Len(t, a.Routes(), 1)
}

func TestRoutePanicsOnDuplicateName(t *testing.T) {
	t.Parallel()

	a := MustNew()
	a.Route("blog", "/blog")

	assert.Panics(t, func() { a.Route("blog", "/other") })
}

func TestRoutePanicsOnMalformedPattern(t *testing.T) {
	t.Parallel()

	a := MustNew()
	assert.Panics(t, func() { a.Route("broken", "/blog[") })
}

func TestRouteWhere(t *testing.T) {
	t.Parallel()

	a := MustNew()
	a.Route("user", "/users/:id").Where("id", `\d+`)

	_, ok := a.Lookup("/users/42", "GET")
	assert.True(t, ok)

	_, ok = a.Lookup("/users/ada", "GET")
	assert.False(t, ok)
}

// An inline constraint wins over one added with Where.
func TestRouteWhereInlineWins(t *testing.T) {
	t.Parallel()

	a := MustNew()
	a.Route("user", `/users/:id<\d+>`).Where("id", `[a-z]+`)

	_, ok := a.Lookup("/users/42", "GET")
	assert.True(t, ok)

	_, ok = a.Lookup("/users/ada", "GET")
	assert.False(t, ok)
}

func TestLookupInsertionOrder(t *testing.T) {
	t.Parallel()

	a := MustNew()
	a.Route("first", "/page/:name")
	a.Route("second", "/page/about")

	m, ok := a.Lookup("/page/about", "GET")
	require.True(t, ok)
	assert.Equal(t, "first", m.Route.Name())
	assert.Equal(t, "about", m.Params["name"])
}

func TestLookupMissIsNotAnError(t *testing.T) {
	t.Parallel()

	a := MustNew()
	a.Route("blog", "/blog")

	m, ok := a.Lookup("/nope", "GET")
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestURLFor(t *testing.T) {
	t.Parallel()

	a := MustNew()
	a.Route("blog.show", `GET /blog/:id<\d+>[/comments[/:page<\d+>]]`)

	u, err := a.URLFor("blog.show", pattern.Params{"id": "42"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "/blog/42/comments", u)

	u, err = a.URLFor("blog.show", pattern.Params{"id": "42", "page": "3"}, url.Values{"sort": {"new"}})
	require.NoError(t, err)
	assert.Equal(t, "/blog/42/comments/3?sort=new", u)
}

func TestURLForUnknownRoute(t *testing.T) {
	t.Parallel()

	a := MustNew()

	_, err := a.URLFor("nonexistent", nil, nil)

	var nf *RouteNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nonexistent", nf.Name)
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

// Parameter errors surfaced through URLFor carry the route name.
func TestURLForStampsRouteName(t *testing.T) {
	t.Parallel()

	a := MustNew()
	a.Route("help", "/help/:subject")
	a.Route("blog", `/blog/:page<\d+>`)

	_, err := a.URLFor("help", nil, nil)
	var miss *pattern.MissingParameterError
	require.ErrorAs(t, err, &miss)
	assert.Equal(t, "help", miss.Route)
	assert.Equal(t, "subject", miss.Param)

	_, err = a.URLFor("blog", pattern.Params{"page": "a"}, nil)
	var inv *pattern.InvalidParameterError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "blog", inv.Route)
	assert.Equal(t, "a", inv.Value)
	assert.Equal(t, `\d+`, inv.Constraint)
}

// Matching an assembled URL captures the same parameters back.
func TestURLForLookupRoundTrip(t *testing.T) {
	t.Parallel()

	a := MustNew()
	a.Route("blog.show", `GET /blog/:id<\d+>`)

	u, err := a.URLFor("blog.show", pattern.Params{"id": "5"}, nil)
	require.NoError(t, err)

	m, ok := a.Lookup(u, "GET")
	require.True(t, ok)
	assert.Equal(t, "blog.show", m.Route.Name())
	assert.Equal(t, "5", m.Params["id"])
}
