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

package render

import (
	"html/template"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPlainView(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"home.html": {Data: []byte(`<h1>{{.title}}</h1>`)},
	}
	r := NewHTML(fsys)

	var b strings.Builder
	require.NoError(t, r.Render(&b, "home.html", map[string]any{"title": "Home"}))
	assert.Equal(t, "<h1>Home</h1>", b.String())
}

func TestRenderWithLayout(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"layout.html": {Data: []byte(`<body>{{template "content" .}}</body>`)},
		"home.html":   {Data: []byte(`{{define "content"}}<h1>{{.title}}</h1>{{end}}`)},
	}
	r := NewHTML(fsys, WithLayout("layout.html"))

	var b strings.Builder
	require.NoError(t, r.Render(&b, "home.html", map[string]any{"title": "Home"}))
	assert.Equal(t, "<body><h1>Home</h1></body>", b.String())
}

func TestRenderFuncs(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"link.html": {Data: []byte(`<a href="{{url "blog"}}">blog</a>`)},
	}
	r := NewHTML(fsys, WithFuncs(template.FuncMap{
		"url": func(name string) string { return "/" + name },
	}))

	var b strings.Builder
	require.NoError(t, r.Render(&b, "link.html", nil))
	assert.Equal(t, `<a href="/blog">blog</a>`, b.String())
}

func TestRenderMissingView(t *testing.T) {
	t.Parallel()

	r := NewHTML(fstest.MapFS{})

	var b strings.Builder
	err := r.Render(&b, "nope.html", nil)
	assert.Error(t, err)
}

func TestRenderEscapes(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"v.html": {Data: []byte(`{{.v}}`)},
	}
	r := NewHTML(fsys)

	var b strings.Builder
	require.NoError(t, r.Render(&b, "v.html", map[string]any{"v": "<script>"}))
	assert.Equal(t, "&lt;script&gt;", b.String())
}
