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

// Package interner associates values with dense names and allows lookup in
// both directions.
//
// An interner keeps two indices: a value store, in which the position of a
// value is its name, and a dedup map from value to name. Intern consults and
// updates the dedup map. Gensym only appends to the value store, so the
// names it returns are never found by Find and never returned by a later
// Intern of an equal value.
//
// Interners are not safe for concurrent use. They are meant to be owned by a
// single compilation pass, which may reach the same interner through several
// pointers.
package interner

import (
	"iter"

	"symtab.dev/go/name"
)

// An Interner deduplicates values of type T behind names.
//
// The zero value is an empty interner ready to use.
type Interner[T comparable] struct {
	index  map[T]name.Name
	values []T
}

// New returns an empty interner.
func New[T comparable]() *Interner[T] {
	return &Interner[T]{}
}

// Prefill returns an interner holding init. Each value is interned in order,
// so a value that occurs more than once keeps the name of its first
// occurrence.
func Prefill[T comparable](init []T) *Interner[T] {
	x := &Interner[T]{
		index:  make(map[T]name.Name, len(init)),
		values: make([]T, 0, len(init)),
	}
	for _, v := range init {
		x.Intern(v)
	}
	return x
}

// Intern returns the name of v, adding v if it was not interned before.
func (x *Interner[T]) Intern(v T) name.Name {
	if n, ok := x.index[v]; ok {
		return n
	}
	if x.index == nil {
		x.index = map[T]name.Name{}
	}
	n := checkOverflow(len(x.values))
	x.index[v] = n
	x.values = append(x.values, v)
	return n
}

// Gensym adds v under a fresh name, even if an equal value is present.
func (x *Interner[T]) Gensym(v T) name.Name {
	n := checkOverflow(len(x.values))
	x.values = append(x.values, v)
	return n
}

// Get returns the value for n. It panics with an *InvalidNameError if n was
// not issued by x since it was last cleared.
func (x *Interner[T]) Get(n name.Name) T {
	if int64(n) >= int64(len(x.values)) {
		invalidName(n, len(x.values))
	}
	return x.values[n]
}

// Lookup is like Get, but reports whether n is valid instead of panicking.
func (x *Interner[T]) Lookup(n name.Name) (v T, ok bool) {
	if int64(n) >= int64(len(x.values)) {
		return v, false
	}
	return x.values[n], true
}

// Len reports the number of entries, interned and gensym'd.
func (x *Interner[T]) Len() int { return len(x.values) }

// Find returns the name under which v was interned. Values added only by
// Gensym are not found.
func (x *Interner[T]) Find(v T) (name.Name, bool) {
	n, ok := x.index[v]
	return n, ok
}

// Clear removes all entries. Names issued before are invalidated and
// numbering restarts at 0.
func (x *Interner[T]) Clear() {
	x.index = nil
	x.values = nil
}

// All iterates over all entries in name order.
func (x *Interner[T]) All() iter.Seq2[name.Name, T] {
	return func(yield func(name.Name, T) bool) {
		for i, v := range x.values {
			if !yield(name.Name(i), v) {
				return
			}
		}
	}
}
