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

package pattern_test

import (
	"fmt"

	"github.com/wren-web/wren/pattern"
)

func ExamplePattern_Match() {
	p := pattern.MustCompile(`POST|DELETE /blog/:id<\d+>[/comments[/:page<\d+>]]`)

	params, ok := p.Match("/blog/42/comments/3", "POST")
	fmt.Println(ok, params["id"], params["page"])

	_, ok = p.Match("/blog/42", "GET")
	fmt.Println(ok)

	// Output:
	// true 42 3
	// false
}

func ExamplePattern_Assemble() {
	p := pattern.MustCompile(`/blog/:id<\d+>[/comments[/:page<\d+>]]`)

	// The inner group collapses without a page value; the outer group then
	// holds only literal text and still renders.
	url, _ := p.Assemble(pattern.Params{"id": "42"}, nil)
	fmt.Println(url)

	url, _ = p.Assemble(pattern.Params{"id": "42", "page": "3"}, nil)
	fmt.Println(url)

	// Output:
	// /blog/42/comments
	// /blog/42/comments/3
}
