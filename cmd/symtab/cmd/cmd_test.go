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

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/diff"
	"github.com/rogpeppe/go-internal/txtar"

	"symtab.dev/go/internal/runtime"
)

const golden = `
-- in.go --
package main

func main() {
	x := 1
	$t := x
	println(x, $t, $t)
}
-- intern.golden --
entries: 8
interned: 5
fresh: 3
occurrences: 11
0	package
1	main
2	func
3	x
4	t	(fresh)
5	println
6	t	(fresh)
7	t	(fresh)
-- find.golden --
x	3
t	not found
`

func TestGolden(t *testing.T) {
	files := map[string]string{}
	for _, f := range txtar.Parse([]byte(golden)).Files {
		files[f.Name] = string(f.Data)
	}

	testCases := []struct {
		name   string
		args   []string
		golden string
	}{
		{"intern", []string{"intern", "--list"}, "intern.golden"},
		{"find", []string{"find", "x", "t"}, "find.golden"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := New(tc.args)
			if err != nil {
				t.Fatal(err)
			}
			buf := &bytes.Buffer{}
			cmd.SetOutput(buf)
			cmd.SetInput(strings.NewReader(files["in.go"]))
			if err := cmd.Run(context.Background()); err != nil {
				t.Fatal(err)
			}
			if got, want := buf.String(), files[tc.golden]; got != want {
				t.Errorf("output differs (-got +want):\n%s", diff.Diff(got, want))
			}
		})
	}
}

// The command installs its own table and leaves the process-wide one
// untouched.
func TestRunDoesNotUseDefault(t *testing.T) {
	runtime.ResetDefault()
	defer runtime.ResetDefault()

	cmd, err := New([]string{"intern"})
	if err != nil {
		t.Fatal(err)
	}
	cmd.SetOutput(&bytes.Buffer{})
	cmd.SetInput(strings.NewReader("a b c"))
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := runtime.Default().Len(); n != 0 {
		t.Errorf("default table has %d entries; want 0", n)
	}
}

func TestGetReportsErrors(t *testing.T) {
	cmd, err := New([]string{"get", "0", "5"})
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	cmd.SetOutput(buf)
	cmd.SetInput(strings.NewReader("only"))
	if err := cmd.Run(context.Background()); err != ErrPrintedError {
		t.Fatalf("got error %v; want %v", err, ErrPrintedError)
	}
	want := "0\tonly\nget 5: invalid name 5 (table has 1 entries)\n"
	if got := buf.String(); got != want {
		t.Errorf("output differs (-got +want):\n%s", diff.Diff(got, want))
	}
}
