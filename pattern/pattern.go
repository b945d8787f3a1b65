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
	"fmt"
	"regexp"
	"strings"
)

// Params holds parameter values captured by Match or supplied to Assemble.
type Params map[string]string

// defaultConstraint is the fragment used for parameters without an explicit
// constraint: one or more non-slash characters.
const defaultConstraint = `[^/]+`

// nodeKind discriminates the parsed pattern tree.
type nodeKind uint8

const (
	nodeLiteral nodeKind = iota
	nodeParam
	nodeWildcard
	nodeGroup
)

// node is one element of the parsed pattern tree. Literal and param nodes
// carry text (the literal run or the parameter name); group nodes carry
// children.
type node struct {
	kind     nodeKind
	text     string
	children []node
}

// Pattern is a compiled route pattern. It is immutable after Compile and
// safe for concurrent use.
type Pattern struct {
	src     string              // original pattern as given to Compile
	methods []string            // uppercased method set; empty matches any
	tree    []node              // parsed path template
	raw     map[string]string   // constraint fragments by parameter name
	checks  map[string]*regexp.Regexp // compiled constraints; nil entry = malformed
	re      *regexp.Regexp      // anchored matching regexp; nil if unbuildable
	names   []string            // parameter names in pattern order, deduplicated
}

var methodPrefix = regexp.MustCompile(`^[A-Za-z]+(?:\|[A-Za-z]+)*$`)

// Compile parses a route pattern into a Pattern.
//
// Unbalanced optional-group brackets are a compile error. A malformed
// constraint regex is not: it surfaces at evaluation time, where the route
// simply never matches and assembly rejects the parameter value.
func Compile(src string) (*Pattern, error) {
	return CompileWith(src, nil)
}

// CompileWith is Compile with externally supplied constraints, as used by
// fluent route builders. A constraint declared inline in the pattern wins
// over an external one for the same name.
func CompileWith(src string, constraints map[string]string) (*Pattern, error) {
	p := &Pattern{src: src}

	rest := src
	if i := strings.IndexByte(rest, ' '); i > 0 {
		prefix, after := rest[:i], strings.TrimLeft(rest[i+1:], " ")
		if methodPrefix.MatchString(prefix) && (strings.HasPrefix(after, "/") || strings.HasPrefix(after, "*")) {
			for m := range strings.SplitSeq(prefix, "|") {
				p.methods = append(p.methods, strings.ToUpper(m))
			}
			rest = after
		}
	}

	rest = p.stripConstraints(rest)
	for name, frag := range constraints {
		if _, declared := p.raw[name]; !declared {
			if p.raw == nil {
				p.raw = make(map[string]string)
			}
			p.raw[name] = frag
		}
	}

	tree, n, err := parseNodes(rest, 0, false)
	if err != nil {
		return nil, err
	}
	if n != len(rest) {
		// parseNodes stopped at a ']' with no matching '['.
		return nil, fmt.Errorf("pattern: unbalanced ']' at offset %d in %q", n, src)
	}
	p.tree = tree

	p.checks = make(map[string]*regexp.Regexp)
	walk(p.tree, func(nd *node) {
		if nd.kind != nodeParam {
			return
		}
		name := nd.text
		if _, seen := p.checks[name]; !seen {
			p.names = append(p.names, name)
			frag, ok := p.raw[name]
			if !ok {
				frag = defaultConstraint
			}
			// A failed compile leaves a nil entry; checkParam treats nil
			// as always-failing so the error shows up where the value does.
			p.checks[name], _ = regexp.Compile(`\A(?:` + frag + `)\z`)
		}
	})

	p.re, _ = regexp.Compile(p.regexpSource())

	return p, nil
}

// MustCompile is like Compile but panics on a malformed pattern. Intended
// for patterns fixed at program start.
func MustCompile(src string) *Pattern {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

// stripConstraints removes :name<...> constraints from the template,
// recording each fragment by parameter name. Constraints are route-global:
// the last declaration for a name wins wherever the name appears.
func (p *Pattern) stripConstraints(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] != ':' || i+1 >= len(s) || !isAlpha(s[i+1]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i + 1
		for j < len(s) && isNameByte(s[j]) {
			j++
		}
		name := s[i+1 : j]
		b.WriteString(s[i:j])
		if j < len(s) && s[j] == '<' {
			// Scan to the matching '>', counting nesting so a fragment
			// may itself contain angle brackets.
			depth, k := 1, j+1
			for k < len(s) && depth > 0 {
				switch s[k] {
				case '<':
					depth++
				case '>':
					depth--
				}
				k++
			}
			if depth == 0 {
				if p.raw == nil {
					p.raw = make(map[string]string)
				}
				p.raw[name] = s[j+1 : k-1]
				j = k
			}
		}
		i = j
	}
	return b.String()
}

// parseNodes parses the template from offset i until the end of input or,
// when inGroup is set, the group's closing bracket. It returns the parsed
// nodes and the offset after the last byte consumed.
func parseNodes(s string, i int, inGroup bool) ([]node, int, error) {
	var nodes []node
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			nodes = append(nodes, node{kind: nodeLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	for i < len(s) {
		switch c := s[i]; c {
		case '[':
			flush()
			children, next, err := parseNodes(s, i+1, true)
			if err != nil {
				return nil, 0, err
			}
			if next >= len(s) || s[next] != ']' {
				return nil, 0, fmt.Errorf("pattern: unbalanced '[' at offset %d in %q", i, s)
			}
			nodes = append(nodes, node{kind: nodeGroup, children: children})
			i = next + 1
		case ']':
			// End of the enclosing group. At the top level this is a stray
			// bracket; the caller reports it from the returned offset.
			flush()
			return nodes, i, nil
		case '*':
			flush()
			nodes = append(nodes, node{kind: nodeWildcard})
			i++
		case ':':
			if i+1 < len(s) && isAlpha(s[i+1]) {
				flush()
				j := i + 1
				for j < len(s) && isNameByte(s[j]) {
					j++
				}
				nodes = append(nodes, node{kind: nodeParam, text: s[i+1 : j]})
				i = j
			} else {
				lit.WriteByte(c)
				i++
			}
		default:
			lit.WriteByte(c)
			i++
		}
	}
	if inGroup {
		return nil, 0, fmt.Errorf("pattern: unbalanced '[' in %q", s)
	}
	flush()
	return nodes, i, nil
}

// walk visits every node in the tree depth-first, in pattern order.
func walk(nodes []node, fn func(*node)) {
	for i := range nodes {
		fn(&nodes[i])
		if nodes[i].kind == nodeGroup {
			walk(nodes[i].children, fn)
		}
	}
}

// checkParam reports whether value satisfies the constraint for name.
// A parameter whose constraint failed to compile never validates.
func (p *Pattern) checkParam(name, value string) bool {
	re := p.checks[name]
	return re != nil && re.MatchString(value)
}

// constraintFor returns the constraint fragment for name, or the default
// fragment when none was declared.
func (p *Pattern) constraintFor(name string) string {
	if frag, ok := p.raw[name]; ok {
		return frag
	}
	return defaultConstraint
}

// String returns the pattern source as given to Compile.
func (p *Pattern) String() string { return p.src }

// Methods returns the uppercased HTTP methods this pattern is restricted
// to. An empty slice means the pattern matches any method.
func (p *Pattern) Methods() []string {
	return append([]string(nil), p.methods...)
}

// ParamNames returns the parameter names referenced by the pattern, in
// order of first appearance.
func (p *Pattern) ParamNames() []string {
	return append([]string(nil), p.names...)
}

// AllowsMethod reports whether the pattern accepts the given HTTP method.
// Comparison is case-insensitive; an unrestricted pattern accepts anything.
func (p *Pattern) AllowsMethod(method string) bool {
	if len(p.methods) == 0 {
		return true
	}
	method = strings.ToUpper(method)
	for _, m := range p.methods {
		if m == method {
			return true
		}
	}
	return false
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNameByte(c byte) bool {
	return isAlpha(c) || c >= '0' && c <= '9' || c == '_'
}
