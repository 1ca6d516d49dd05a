// Copyright 2026 The symtab Authors
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

package interner_test

import (
	"fmt"

	"symtab.dev/go/interner"
)

func ExampleStrInterner() {
	x := interner.PrefillStr([]string{"if", "else"})

	v := x.Intern("v")
	tmp := x.Gensym("v")
	fmt.Println(v, tmp, x.Get(v) == x.Get(tmp))

	n, ok := x.Find("v")
	fmt.Println(n, ok)

	c := x.GensymCopy(v)
	fmt.Println(c, x.Get(c), x.Len())
	// Output:
	// 2 3 true
	// 2 true
	// 4 v 5
}
