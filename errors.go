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
	"errors"
	"fmt"
)

var (
	// ErrRouteNotFound indicates that the specified route could not be found.
	ErrRouteNotFound = errors.New("route not found")

	// ErrDuplicateRoute indicates that a route name is already registered.
	ErrDuplicateRoute = errors.New("duplicate route name")

	// ErrNoRenderer indicates that a route declares a view file but the app
	// has no renderer configured.
	ErrNoRenderer = errors.New("no renderer configured")

	// ErrRedirectStatusInvalid indicates a configured redirect status
	// outside the 3xx range.
	ErrRedirectStatusInvalid = errors.New("redirect status must be a 3xx code")
)

// RouteNotFoundError reports an assemble or redirect target that names no
// registered route. It unwraps to ErrRouteNotFound so callers can test with
// errors.Is.
type RouteNotFoundError struct {
	Name string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("route not found: %q", e.Name)
}

func (e *RouteNotFoundError) Unwrap() error { return ErrRouteNotFound }
