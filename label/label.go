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

// Package label packs interned names into compact labels for use in syntax
// trees and other compiler data structures.
package label

import (
	"strconv"

	"golang.org/x/xerrors"

	"symtab.dev/go/internal/scan"
	"symtab.dev/go/name"
)

// A Feature is an encoded form of a label which comprises a compact
// representation of an integer or interned name as well as a label type.
type Feature uint32

// InvalidLabel is an encoding of an erroneous label.
const InvalidLabel Feature = 0x7 // 0b111

// MaxIndex indicates the maximum index that can be encoded in a label.
const MaxIndex int64 = 1<<28 - 1

// A StringIndexer converts strings to and from an index that is unique for
// a given string.
type StringIndexer interface {
	// StringToIndex returns a unique non-negative index for s.
	//
	// For each pair of strings s and t it must return the same index if and
	// only if s == t.
	StringToIndex(s string) (index int64)

	// IndexToString returns a string s for index such that
	// StringToIndex(s) == index.
	IndexToString(index int64) string
}

// A FreshIndexer can additionally mint indices that are never returned by
// StringToIndex.
type FreshIndexer interface {
	StringIndexer

	// GensymToIndex returns a new index for s, distinct from all indices
	// returned before.
	GensymToIndex(s string) (index int64)
}

// MakeIdentLabel creates a label for the given identifier.
func MakeIdentLabel(r StringIndexer, s string) Feature {
	return mustMake(r.StringToIndex(s), StringLabel)
}

// MakeFreshLabel creates a label for a generated identifier spelled s. The
// result differs from every other label created by r, including
// MakeIdentLabel(r, s).
func MakeFreshLabel(r FreshIndexer, s string) Feature {
	return mustMake(r.GensymToIndex(s), FreshLabel)
}

// MakeIntLabel creates a label for a non-negative integer.
func MakeIntLabel(i int64) (Feature, error) {
	return MakeLabel(i, IntLabel)
}

func mustMake(i int64, t Type) Feature {
	f, err := MakeLabel(i, t)
	if err != nil {
		panic("out of free string slots")
	}
	return f
}

// MakeLabel creates a label. It reports an error if the index is out of range.
func MakeLabel(index int64, t Type) (Feature, error) {
	if 0 > index || index > MaxIndex {
		return InvalidLabel,
			xerrors.Errorf("label index out of range (%d not >=0 and <= %d)",
				index, MaxIndex)
	}
	return Feature(index)<<indexShift | Feature(t), nil
}

// ToString returns the source representation of f. Identifiers that are
// not valid in source are quoted. Fresh labels are suffixed with their index
// so that they do not read as the identifier they were generated from.
func (f Feature) ToString(r StringIndexer) string {
	if !f.IsValid() {
		return "_|_"
	}
	x := f.Index()
	switch f.Typ() {
	case IntLabel:
		return strconv.Itoa(x)
	case FreshLabel:
		return r.IndexToString(int64(x)) + "_" + strconv.Itoa(x)
	}
	s := r.IndexToString(int64(x))
	if scan.IsIdent(s) {
		return s
	}
	return strconv.Quote(s)
}

// A Type indicates the type of label.
type Type int8

const (
	StringLabel Type = 0 // 0b000
	IntLabel    Type = 1 // 0b001
	FreshLabel  Type = 2 // 0b010

	fTypeMask Feature = 7 // 0b111

	indexShift = 3
)

// IsValid reports whether f is a valid label.
func (f Feature) IsValid() bool { return f != InvalidLabel }

// Typ reports the type of label.
func (f Feature) Typ() Type { return Type(f & fTypeMask) }

// IsString reports whether a label represents an interned identifier.
func (f Feature) IsString() bool { return f.Typ() == StringLabel }

// IsFresh reports whether a label represents a generated identifier.
func (f Feature) IsFresh() bool { return f.Typ() == FreshLabel }

// IsInt reports whether this is an integer index.
func (f Feature) IsInt() bool { return f.Typ() == IntLabel }

// Index reports the abstract index associated with f.
func (f Feature) Index() int { return int(f >> indexShift) }

// Name returns the interned name of f. It reports false for integer and
// invalid labels.
func (f Feature) Name() (name.Name, bool) {
	if !f.IsValid() || f.IsInt() {
		return 0, false
	}
	return name.Name(f.Index()), true
}
