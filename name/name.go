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

// Package name defines the handle type issued by interners.
//
// A Name is an opaque small integer. Two Names issued by the same table are
// equal if and only if they denote the same interning event, and Names are
// totally ordered by their integer value. A Name is only meaningful for the
// table that issued it, and only until that table is cleared or reset.
package name

import (
	"math"
	"strconv"

	"golang.org/x/xerrors"
)

// A Name is a dense index into an interner's value store.
type Name uint32

// MaxName is the largest representable Name.
const MaxName = math.MaxUint32

// MakeName converts a raw integer to a Name. It reports an error if i does
// not fit.
func MakeName(i int64) (Name, error) {
	if i < 0 || i > MaxName {
		return 0, xerrors.Errorf("name out of range (%d not >= 0 and <= %d)", i, int64(MaxName))
	}
	return Name(i), nil
}

// Index reports the position of n in the issuing table's value store.
func (n Name) Index() int { return int(n) }

// Less reports whether n sorts before m.
func (n Name) Less(m Name) bool { return n < m }

func (n Name) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// Compare returns -1, 0, or 1 depending on whether a sorts before, equal to,
// or after b.
func Compare(a, b Name) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
