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
	"iter"
	"strings"

	"golang.org/x/xerrors"

	"symtab.dev/go/name"
)

// A StrInterner is an Interner for text. It differs from Interner[string] in
// that it only copies its input once the text is known to be new, so callers
// may pass substrings of a large buffer or a reused byte slice.
//
// Stored strings are never modified. Get returns the stored string itself,
// which shares its bytes with every entry created from it by GensymCopy.
//
// The zero value is an empty interner ready to use.
type StrInterner struct {
	index  map[string]name.Name
	values []string
}

// NewStr returns an empty string interner.
func NewStr() *StrInterner {
	return &StrInterner{}
}

// PrefillStr returns a string interner holding init, interned in order.
func PrefillStr(init []string) *StrInterner {
	x := &StrInterner{
		index:  make(map[string]name.Name, len(init)),
		values: make([]string, 0, len(init)),
	}
	for _, s := range init {
		x.Intern(s)
	}
	return x
}

// Intern returns the name of s, adding a copy of s if it is new.
func (x *StrInterner) Intern(s string) name.Name {
	if n, ok := x.index[s]; ok {
		return n
	}
	return x.add(strings.Clone(s))
}

// InternBytes is like Intern, but takes its input as a byte slice. It does
// not allocate if b is already present.
func (x *StrInterner) InternBytes(b []byte) name.Name {
	if n, ok := x.index[string(b)]; ok {
		return n
	}
	return x.add(string(b))
}

func (x *StrInterner) add(s string) name.Name {
	if x.index == nil {
		x.index = map[string]name.Name{}
	}
	n := checkOverflow(len(x.values))
	x.index[s] = n
	x.values = append(x.values, s)
	return n
}

// Gensym adds a copy of s under a fresh name that is not visible to Find.
func (x *StrInterner) Gensym(s string) name.Name {
	n := checkOverflow(len(x.values))
	x.values = append(x.values, strings.Clone(s))
	return n
}

// GensymCopy adds a fresh name that spells the same as n, sharing n's text.
// It panics with an *InvalidNameError if n is not valid.
func (x *StrInterner) GensymCopy(n name.Name) name.Name {
	s := x.Get(n)
	m := checkOverflow(len(x.values))
	x.values = append(x.values, s)
	return m
}

// Get returns the text of n. It panics with an *InvalidNameError if n was
// not issued by x since it was last cleared or reset.
func (x *StrInterner) Get(n name.Name) string {
	if int64(n) >= int64(len(x.values)) {
		invalidName(n, len(x.values))
	}
	return x.values[n]
}

// Lookup is like Get, but reports whether n is valid instead of panicking.
func (x *StrInterner) Lookup(n name.Name) (string, bool) {
	if int64(n) >= int64(len(x.values)) {
		return "", false
	}
	return x.values[n], true
}

// Len reports the number of entries, interned and gensym'd.
func (x *StrInterner) Len() int { return len(x.values) }

// Find returns the name under which s was interned.
func (x *StrInterner) Find(s string) (name.Name, bool) {
	n, ok := x.index[s]
	return n, ok
}

// FindBytes is like Find for a byte slice. It does not allocate.
func (x *StrInterner) FindBytes(b []byte) (name.Name, bool) {
	n, ok := x.index[string(b)]
	return n, ok
}

// Clear removes all entries. Names issued before are invalidated and
// numbering restarts at 0.
func (x *StrInterner) Clear() {
	x.index = nil
	x.values = nil
}

// Reset replaces the contents of x with those of other and leaves other
// empty. Names issued by x before the call must not be used afterwards.
func (x *StrInterner) Reset(other *StrInterner) {
	if other == x {
		return
	}
	x.index, x.values = other.index, other.values
	other.index, other.values = nil, nil
}

// All iterates over all entries in name order.
func (x *StrInterner) All() iter.Seq2[name.Name, string] {
	return func(yield func(name.Name, string) bool) {
		for i, s := range x.values {
			if !yield(name.Name(i), s) {
				return
			}
		}
	}
}

// StringToIndex interns s and returns its name as an integer.
func (x *StrInterner) StringToIndex(s string) int64 {
	return int64(x.Intern(s))
}

// IndexToString returns the text for index. It panics if index is not a
// valid name.
func (x *StrInterner) IndexToString(index int64) string {
	n, err := name.MakeName(index)
	if err != nil {
		panic(xerrors.Errorf("index %d: %w", index, ErrInvalidName))
	}
	return x.Get(n)
}

// GensymToIndex adds s under a fresh name and returns it as an integer.
func (x *StrInterner) GensymToIndex(s string) int64 {
	return int64(x.Gensym(s))
}
