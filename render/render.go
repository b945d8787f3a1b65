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

// Package render renders route views. The HTML renderer wraps each view in
// an optional layout template, the closest Go analogue of include-based
// view files.
package render

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
)

// Renderer renders a named view with the given data.
type Renderer interface {
	Render(w io.Writer, view string, data map[string]any) error
}

// HTMLRenderer renders html/template views from a filesystem. When a
// layout is configured, the view is parsed together with the layout and
// the layout executes first; the layout refers to the view's output via
// {{template "content" .}}.
type HTMLRenderer struct {
	fsys   fs.FS
	layout string
	funcs  template.FuncMap
}

// Option configures an HTMLRenderer.
type Option func(*HTMLRenderer)

// WithLayout sets the layout template file wrapping every view.
func WithLayout(file string) Option {
	return func(r *HTMLRenderer) { r.layout = file }
}

// WithFuncs adds template functions available to views and layout.
// Frameworks typically register a "url" helper here for reverse routing
// inside templates.
func WithFuncs(funcs template.FuncMap) Option {
	return func(r *HTMLRenderer) {
		for name, fn := range funcs {
			r.funcs[name] = fn
		}
	}
}

// NewHTML returns an HTMLRenderer reading view files from fsys.
func NewHTML(fsys fs.FS, opts ...Option) *HTMLRenderer {
	r := &HTMLRenderer{fsys: fsys, funcs: make(template.FuncMap)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render executes the named view file, wrapped in the layout when one is
// configured. Templates are parsed per call so view files can change
// between requests during development.
func (r *HTMLRenderer) Render(w io.Writer, view string, data map[string]any) error {
	files := []string{view}
	if r.layout != "" {
		files = []string{r.layout, view}
	}

	t, err := template.New("").Funcs(r.funcs).ParseFS(r.fsys, files...)
	if err != nil {
		return fmt.Errorf("render: parse %q: %w", view, err)
	}
	// ParseFS names templates by base filename.
	if err := t.ExecuteTemplate(w, path.Base(files[0]), data); err != nil {
		return fmt.Errorf("render: execute %q: %w", view, err)
	}
	return nil
}
