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

// Package pattern compiles route pattern strings into a form that supports
// both URL matching and its inverse, URL assembly.
//
// # Grammar
//
// A pattern is an optional HTTP method prefix followed by a path template:
//
//	[METHOD(|METHOD)* ]path
//
// The path template is built from:
//
//   - literal text, matched verbatim
//   - :name — a named parameter; one or more non-slash characters by default
//   - :name<regex> — a named parameter restricted by a regex fragment
//   - [ ... ] — an optional group; groups nest to arbitrary depth
//   - * — a wildcard matching any remaining characters, slashes included
//
// Examples:
//
//	/blog/:id<\d+>[/comments[/:page<\d+>]]
//	POST|DELETE /users/:name
//	/static*
//
// Constraints are route-global: a constraint declared for a parameter name
// applies wherever that name appears in the pattern, including inside nested
// optional groups.
//
// # Matching and assembly
//
// Match and Assemble agree on the grammar exactly. A path matches only when
// the entire path satisfies the pattern (no prefix matching; a trailing
// slash is significant). Assembly substitutes supplied parameter values and
// collapses any optional group containing a parameter with no supplied
// value. A supplied value that violates its constraint is an error in both
// directions: the route does not match, and assembly fails.
package pattern
