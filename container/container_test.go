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

package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Set("title", "home"))
	require.NoError(t, c.Set("user.name", "ada"))

	v, ok := c.Get("title")
	require.True(t, ok)
	assert.Equal(t, "home", v)

	assert.Equal(t, "ada", c.GetString("user.name"))
	assert.Equal(t, 2, c.Len())
}

// '.', '/' and ':' address the same slots.
func TestDelimiterEquivalence(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Set("a/b:c", 1))

	v, ok := c.Get("a.b.c")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestInvalidPaths(t *testing.T) {
	t.Parallel()

	c := New()

	var perr *InvalidPathError
	require.ErrorAs(t, c.Set("", 1), &perr)
	require.ErrorAs(t, c.Set("a..b", 1), &perr)
	assert.Equal(t, "a..b", perr.Path)

	_, ok := c.Get("a..b")
	assert.False(t, ok)
}

func TestSetThroughScalarFails(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Set("a", "scalar"))

	var perr *InvalidPathError
	require.ErrorAs(t, c.Set("a.b", 1), &perr)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Set("user.name", "ada"))

	c.Delete("user.name")
	_, ok := c.Get("user.name")
	assert.False(t, ok)

	c.Delete("missing.path") // no-op
}

func TestGetStringCoercion(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Set("n", 42))

	assert.Equal(t, "", c.GetString("n"))
	assert.Equal(t, "", c.GetString("absent"))
}

func TestAllSharesState(t *testing.T) {
	t.Parallel()

	c := New()
	require.NoError(t, c.Set("user.name", "ada"))

	all := c.All()
	user, ok := all["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada", user["name"])
}
