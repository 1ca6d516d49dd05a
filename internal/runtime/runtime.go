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

// Package runtime holds the symbol table shared by the phases of a
// compilation.
//
// A Runtime is passed explicitly, either as a parameter or in a
// context.Context. A process-wide default is created on first use and can be
// torn down with ResetDefault. None of this makes the table itself safe for
// concurrent use.
package runtime

import (
	"context"
	"sync"

	"symtab.dev/go/interner"
	"symtab.dev/go/label"
)

// A Runtime is a string interner extended with label helpers.
type Runtime struct {
	*interner.StrInterner
}

// New returns a Runtime whose table is prefilled with the given names, in
// order.
func New(prefill []string) *Runtime {
	return &Runtime{
		StrInterner: interner.PrefillStr(prefill),
	}
}

// Ident returns the label of the identifier s.
func (r *Runtime) Ident(s string) label.Feature {
	return label.MakeIdentLabel(r.StrInterner, s)
}

// Fresh returns a new label spelled s that is distinct from all other labels.
func (r *Runtime) Fresh(s string) label.Feature {
	return label.MakeFreshLabel(r.StrInterner, s)
}

// LabelString returns the source representation of f.
func (r *Runtime) LabelString(f label.Feature) string {
	return f.ToString(r.StrInterner)
}

// Swap replaces the symbol universe of r with that of next, which is left
// empty. Labels and names obtained from r before the call are invalid
// afterwards.
func (r *Runtime) Swap(next *Runtime) {
	r.StrInterner.Reset(next.StrInterner)
}

var (
	sharedMu sync.Mutex
	shared   *Runtime
)

// Default returns the process-wide Runtime, creating an empty one on first
// use.
func Default() *Runtime {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		shared = New(nil)
	}
	return shared
}

// ResetDefault discards the process-wide Runtime. The next call to Default
// creates a new one.
func ResetDefault() {
	sharedMu.Lock()
	shared = nil
	sharedMu.Unlock()
}

type contextKey int

const runtimeKey contextKey = iota

// WithRuntime returns a context carrying r.
func WithRuntime(ctx context.Context, r *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey, r)
}

// FromContext returns the Runtime carried by ctx, or Default if there is
// none.
func FromContext(ctx context.Context) *Runtime {
	if r, ok := ctx.Value(runtimeKey).(*Runtime); ok {
		return r
	}
	return Default()
}
