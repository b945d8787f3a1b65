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
	"regexp"
	"strings"
)

// Match tests path and method against the pattern. The query string, if
// any, is stripped from path first. On success it returns the captured
// parameter values; parameters inside optional groups that did not
// participate in the match are absent from the result, not empty.
//
// Match never fails with an error: a pattern that cannot match — including
// one whose constraint regex is malformed — reports false.
func (p *Pattern) Match(path, method string) (Params, bool) {
	if !p.AllowsMethod(method) {
		return nil, false
	}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if p.re == nil {
		return nil, false
	}

	m := p.re.FindStringSubmatchIndex(path)
	if m == nil {
		return nil, false
	}

	params := make(Params)
	for i, name := range p.re.SubexpNames() {
		if name == "" || m[2*i] < 0 {
			continue
		}
		params[name] = path[m[2*i]:m[2*i+1]]
	}
	return params, true
}

// regexpSource renders the pattern tree as an anchored regexp. Optional
// groups become non-capturing optional groups, resolved from the innermost
// group outward; parameters become named capture groups wrapping their
// constraint fragment; a wildcard matches anything, slashes included.
func (p *Pattern) regexpSource() string {
	var b strings.Builder
	b.WriteString(`\A`)
	writeNodeRegexp(&b, p.tree, p)
	b.WriteString(`\z`)
	return b.String()
}

func writeNodeRegexp(b *strings.Builder, nodes []node, p *Pattern) {
	for _, n := range nodes {
		switch n.kind {
		case nodeLiteral:
			b.WriteString(regexp.QuoteMeta(n.text))
		case nodeParam:
			b.WriteString(`(?P<`)
			b.WriteString(n.text)
			b.WriteString(`>`)
			b.WriteString(p.constraintFor(n.text))
			b.WriteString(`)`)
		case nodeWildcard:
			b.WriteString(`.*`)
		case nodeGroup:
			b.WriteString(`(?:`)
			writeNodeRegexp(b, n.children, p)
			b.WriteString(`)?`)
		}
	}
}
