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

package pattern

import "fmt"

// MissingParameterError is returned by Assemble when a required parameter —
// one not inside a collapsible optional group — has no supplied value.
type MissingParameterError struct {
	Route string // route name, filled in by the registry; may be empty
	Param string
}

func (e *MissingParameterError) Error() string {
	if e.Route == "" {
		return fmt.Sprintf("missing required parameter %q", e.Param)
	}
	return fmt.Sprintf("missing required parameter %q for route %q", e.Param, e.Route)
}

// InvalidParameterError is returned by Assemble when a supplied value fails
// its constraint. Constraint violations are hard errors even inside
// optional groups; only a missing value collapses a group.
type InvalidParameterError struct {
	Route      string // route name, filled in by the registry; may be empty
	Param      string
	Value      string
	Constraint string
}

func (e *InvalidParameterError) Error() string {
	if e.Route == "" {
		return fmt.Sprintf("value %q for parameter %q does not satisfy constraint %q",
			e.Value, e.Param, e.Constraint)
	}
	return fmt.Sprintf("value %q for parameter %q does not satisfy constraint %q on route %q",
		e.Value, e.Param, e.Constraint, e.Route)
}
