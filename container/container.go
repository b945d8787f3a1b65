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

// Package container provides a nested key-value store addressed by
// delimited paths. It backs the per-request view data handed to templates.
package container

import (
	"fmt"
	"strings"
)

// InvalidPathError reports a malformed container path: empty, or containing
// an empty segment, or traversing through a value that is not a nested map.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid data path %q: %s", e.Path, e.Reason)
}

// Container is a nested map addressed by paths. Path segments may be
// separated by '.', '/' or ':' interchangeably: "user.name", "user/name"
// and "user:name" address the same slot.
//
// A Container is not safe for concurrent mutation; each request works on
// its own instance.
type Container struct {
	data map[string]any
}

// New returns an empty Container.
func New() *Container {
	return &Container{data: make(map[string]any)}
}

// splitPath splits a path on any supported delimiter. An empty path or an
// empty segment is an error.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, &InvalidPathError{Path: path, Reason: "empty path"}
	}
	segs := strings.FieldsFunc(path, func(r rune) bool {
		return r == '.' || r == '/' || r == ':'
	})
	if len(segs) == 0 {
		return nil, &InvalidPathError{Path: path, Reason: "no segments"}
	}
	// FieldsFunc drops empty segments silently; detect them by comparing
	// against the expected count.
	if n := strings.Count(path, ".") + strings.Count(path, "/") + strings.Count(path, ":"); n != len(segs)-1 {
		return nil, &InvalidPathError{Path: path, Reason: "empty segment"}
	}
	return segs, nil
}

// Set stores v at path, creating intermediate maps as needed. Traversing
// through an existing non-map value is an InvalidPathError.
func (c *Container) Set(path string, v any) error {
	segs, err := splitPath(path)
	if err != nil {
		return err
	}
	m := c.data
	for _, seg := range segs[:len(segs)-1] {
		next, ok := m[seg]
		if !ok {
			child := make(map[string]any)
			m[seg] = child
			m = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return &InvalidPathError{Path: path, Reason: fmt.Sprintf("segment %q holds a non-map value", seg)}
		}
		m = child
	}
	m[segs[len(segs)-1]] = v
	return nil
}

// Get retrieves the value at path. The second result reports whether the
// slot exists; a malformed path also reads as absent.
func (c *Container) Get(path string) (any, bool) {
	segs, err := splitPath(path)
	if err != nil {
		return nil, false
	}
	m := c.data
	for _, seg := range segs[:len(segs)-1] {
		child, ok := m[seg].(map[string]any)
		if !ok {
			return nil, false
		}
		m = child
	}
	v, ok := m[segs[len(segs)-1]]
	return v, ok
}

// GetString retrieves the value at path as a string. Non-string values and
// absent slots read as "".
func (c *Container) GetString(path string) string {
	if v, ok := c.Get(path); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Delete removes the value at path. Deleting an absent slot is a no-op.
func (c *Container) Delete(path string) {
	segs, err := splitPath(path)
	if err != nil {
		return
	}
	m := c.data
	for _, seg := range segs[:len(segs)-1] {
		child, ok := m[seg].(map[string]any)
		if !ok {
			return
		}
		m = child
	}
	delete(m, segs[len(segs)-1])
}

// Len returns the number of top-level entries.
func (c *Container) Len() int { return len(c.data) }

// All returns the underlying nested map. The map is shared, not copied;
// callers hand it to template rendering and must not retain it across
// requests.
func (c *Container) All() map[string]any { return c.data }
