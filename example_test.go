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

package wren_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	wren "github.com/wren-web/wren"
	"github.com/wren-web/wren/pattern"
)

func Example() {
	a := wren.MustNew()

	a.Route("blog.show", `GET /blog/:id<\d+>[/:slug]`).Handle(func(c *wren.Context) {
		//nolint:errcheck // Example handler
		c.String(http.StatusOK, "post %s", c.Param("id"))
	})

	req := httptest.NewRequest(http.MethodGet, "/blog/42/hello-world", nil)
	w := httptest.NewRecorder()
	a.ServeHTTP(w, req)

	fmt.Println(w.Body.String())
	// Output: post 42
}

func ExampleApp_URLFor() {
	a := wren.MustNew()
	a.Route("blog.show", `GET /blog/:id<\d+>[/:slug]`)

	u, _ := a.URLFor("blog.show", pattern.Params{"id": "42"}, nil)
	fmt.Println(u)

	u, _ = a.URLFor("blog.show", pattern.Params{"id": "42", "slug": "hello-world"}, nil)
	fmt.Println(u)

	// Output:
	// /blog/42
	// /blog/42/hello-world
}
