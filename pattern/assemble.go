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

import (
	"errors"
	"net/url"
	"strings"
)

// Assemble builds a concrete URL from the pattern and the supplied
// parameter values — the inverse of Match.
//
// Optional groups resolve inside out: a group's children render first, so a
// nested group has already collapsed (or rendered) by the time its parent
// is decided. A parameter with no supplied value collapses its nearest
// enclosing group to the empty string; at the top level it is a
// *MissingParameterError. A supplied value failing its constraint is a
// *InvalidParameterError wherever it occurs — an optional group does not
// soften a bad value. Parameters are checked left to right; the first
// failure wins.
//
// Wildcards contribute no text to the assembled URL. A non-empty query is
// appended in encoded form.
func (p *Pattern) Assemble(params Params, query url.Values) (string, error) {
	var b strings.Builder
	if err := renderNodes(&b, p.tree, params, p); err != nil {
		var miss *missingParam
		if errors.As(err, &miss) {
			return "", &MissingParameterError{Param: miss.name}
		}
		return "", err
	}
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(query.Encode())
	}
	return b.String(), nil
}

// missingParam signals an unsatisfied parameter during assembly. It is
// caught by the nearest enclosing optional group and never escapes
// Assemble as-is.
type missingParam struct {
	name string
}

func (e *missingParam) Error() string { return "unsatisfied parameter " + e.name }

func renderNodes(b *strings.Builder, nodes []node, params Params, p *Pattern) error {
	for _, n := range nodes {
		switch n.kind {
		case nodeLiteral:
			b.WriteString(n.text)
		case nodeWildcard:
			// No literal contribution.
		case nodeParam:
			v, ok := params[n.text]
			if !ok {
				return &missingParam{name: n.text}
			}
			if !p.checkParam(n.text, v) {
				return &InvalidParameterError{
					Param:      n.text,
					Value:      v,
					Constraint: p.constraintFor(n.text),
				}
			}
			b.WriteString(v)
		case nodeGroup:
			var inner strings.Builder
			err := renderNodes(&inner, n.children, params, p)
			var miss *missingParam
			switch {
			case err == nil:
				b.WriteString(inner.String())
			case errors.As(err, &miss):
				// Group unsatisfied: collapse to nothing. The signal stops
				// here; an outer group only collapses over its own
				// parameters.
			default:
				return err
			}
		}
	}
	return nil
}
