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

package interner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mpvl/unique"
	"golang.org/x/xerrors"

	"symtab.dev/go/name"
)

// A symbol is a pointer-like value: copying it is cheap and equality is
// by text.
type symbol struct{ text string }

func expectInvalid(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !xerrors.Is(err, ErrInvalidName) {
			t.Errorf("got panic %v; want invalid name", r)
		}
	}()
	f()
}

func TestGetOutOfRange(t *testing.T) {
	x := New[symbol]()
	expectInvalid(t, func() { x.Get(13) })

	x.Intern(symbol{"dog"})
	expectInvalid(t, func() { x.Get(1) })

	var e *InvalidNameError
	func() {
		defer func() {
			err, _ := recover().(error)
			if !xerrors.As(err, &e) {
				t.Fatalf("got %v; want *InvalidNameError", err)
			}
		}()
		x.Get(7)
	}()
	if e.Name != 7 || e.Len != 1 {
		t.Errorf("got %+v; want name 7 and len 1", e)
	}
	if got, want := e.Error(), "invalid name 7 (table has 1 entries)"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestInterner(t *testing.T) {
	x := New[symbol]()

	type step struct {
		op   string
		text string
		want name.Name
	}
	steps := []step{
		// first one is zero
		{"intern", "dog", 0},
		// re-use gets the same entry
		{"intern", "dog", 0},
		{"intern", "cat", 1},
		{"intern", "cat", 1},
		{"intern", "dog", 0},
		{"gensym", "zebra", 2},
		// gensym of the same text gets a new name
		{"gensym", "zebra", 3},
		// as does gensym of an interned text
		{"gensym", "dog", 4},
	}
	for i, s := range steps {
		var got name.Name
		switch s.op {
		case "intern":
			got = x.Intern(symbol{s.text})
		case "gensym":
			got = x.Gensym(symbol{s.text})
		}
		if got != s.want {
			t.Errorf("%d: %s(%q): got %v; want %v", i, s.op, s.text, got, s.want)
		}
	}

	var got []string
	for n := name.Name(0); n.Index() < x.Len(); n++ {
		got = append(got, x.Get(n).text)
	}
	want := []string{"dog", "cat", "zebra", "zebra", "dog"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
}

func TestPrefill(t *testing.T) {
	x := Prefill([]symbol{{"Alan"}, {"Bob"}, {"Carol"}})
	for i, want := range []string{"Alan", "Bob", "Carol"} {
		if got := x.Get(name.Name(i)).text; got != want {
			t.Errorf("Get(%d): got %q; want %q", i, got, want)
		}
	}
	if got := x.Intern(symbol{"Bob"}); got != 1 {
		t.Errorf("Intern(Bob): got %v; want 1", got)
	}
	if x.Len() != 3 {
		t.Errorf("Len: got %d; want 3", x.Len())
	}
}

func TestPrefillDuplicates(t *testing.T) {
	x := Prefill([]string{"a", "b", "a", "c", "b"})
	if x.Len() != 3 {
		t.Fatalf("Len: got %d; want 3", x.Len())
	}
	testCases := []struct {
		in   string
		want name.Name
	}{
		{"a", 0},
		{"b", 1},
		{"c", 2},
	}
	for _, tc := range testCases {
		if got, ok := x.Find(tc.in); !ok || got != tc.want {
			t.Errorf("Find(%q): got %v, %v; want %v", tc.in, got, ok, tc.want)
		}
	}
}

func TestFindIgnoresGensym(t *testing.T) {
	x := New[string]()
	g := x.Gensym("tmp")
	if _, ok := x.Find("tmp"); ok {
		t.Errorf("Find found gensym'd value")
	}
	n := x.Intern("tmp")
	if n == g {
		t.Errorf("Intern returned gensym'd name %v", g)
	}
	if got, ok := x.Find("tmp"); !ok || got != n {
		t.Errorf("Find: got %v, %v; want %v", got, ok, n)
	}
	if x.Get(g) != x.Get(n) {
		t.Errorf("gensym'd and interned texts differ")
	}
}

func TestClear(t *testing.T) {
	x := Prefill([]int{10, 20, 30})
	x.Gensym(40)
	x.Clear()
	if x.Len() != 0 {
		t.Errorf("Len after Clear: got %d; want 0", x.Len())
	}
	if _, ok := x.Find(10); ok {
		t.Errorf("Find found value after Clear")
	}
	expectInvalid(t, func() { x.Get(0) })
	if got := x.Intern(30); got != 0 {
		t.Errorf("first Intern after Clear: got %v; want 0", got)
	}
}

func TestZeroValue(t *testing.T) {
	var x Interner[string]
	if _, ok := x.Find("a"); ok {
		t.Error("found value in empty interner")
	}
	if _, ok := x.Lookup(0); ok {
		t.Error("Lookup(0) succeeded on empty interner")
	}
	if got := x.Intern("a"); got != 0 {
		t.Errorf("got %v; want 0", got)
	}
	if v, ok := x.Lookup(0); !ok || v != "a" {
		t.Errorf("Lookup(0): got %q, %v; want %q", v, ok, "a")
	}
}

func TestAll(t *testing.T) {
	x := Prefill([]string{"x", "y"})
	x.Gensym("x")

	type entry struct {
		N name.Name
		V string
	}
	var got []entry
	for n, v := range x.All() {
		got = append(got, entry{n, v})
	}
	want := []entry{{0, "x"}, {1, "y"}, {2, "x"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All (-want +got):\n%s", diff)
	}

	count := 0
	for range x.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("iteration did not stop: %d", count)
	}
}

// TestProperties checks the interning invariants over a corpus of words
// with repetitions, interleaving gensyms.
func TestProperties(t *testing.T) {
	words := strings.Fields(`
		the quick brown fox jumps over the lazy dog while the dog
		sleeps and the fox runs quick as a fox can run over a log`)

	x := New[string]()
	inserted := map[name.Name]string{}
	seen := map[name.Name]bool{}
	for i, w := range words {
		n := x.Intern(w)
		if again := x.Intern(w); again != n {
			t.Errorf("Intern(%q) not idempotent: %v then %v", w, n, again)
		}
		inserted[n] = w
		if i%3 == 0 {
			g := x.Gensym(w)
			if seen[g] {
				t.Errorf("Gensym(%q) reused name %v", w, g)
			}
			if g == n {
				t.Errorf("Gensym(%q) collided with interned name %v", w, g)
			}
			seen[g] = true
			inserted[g] = w
		}
	}

	distinct := append([]string(nil), words...)
	unique.Strings(&distinct)

	interned := 0
	for n, w := range inserted {
		if got := x.Get(n); got != w {
			t.Errorf("Get(%v): got %q; want %q", n, got, w)
		}
		if !seen[n] {
			interned++
		}
	}
	if interned != len(distinct) {
		t.Errorf("distinct interned names: got %d; want %d", interned, len(distinct))
	}
	if x.Len() != len(inserted) {
		t.Errorf("Len: got %d; want %d", x.Len(), len(inserted))
	}

	for i, a := range distinct {
		for _, b := range distinct[i+1:] {
			if x.Intern(a) == x.Intern(b) {
				t.Errorf("%q and %q share a name", a, b)
			}
		}
	}
}

func BenchmarkIntern(b *testing.B) {
	keys := make([]string, 1024)
	for i := range keys {
		keys[i] = fmt.Sprintf("ident%d", i)
	}
	x := New[string]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Intern(keys[i%len(keys)])
	}
}
