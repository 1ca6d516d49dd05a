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

	"golang.org/x/xerrors"

	"symtab.dev/go/name"
)

// ErrInvalidName is matched by every *InvalidNameError.
var ErrInvalidName = xerrors.New("invalid name")

// An InvalidNameError is the panic value of an access with a name that was
// not issued by the table since its last Clear or Reset.
type InvalidNameError struct {
	Name name.Name
	Len  int
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %d (table has %d entries)", e.Name, e.Len)
}

// Is reports whether target is ErrInvalidName.
func (e *InvalidNameError) Is(target error) bool {
	return target == ErrInvalidName
}

func invalidName(n name.Name, length int) {
	panic(&InvalidNameError{Name: n, Len: length})
}

func checkOverflow(length int) name.Name {
	if int64(length) > name.MaxName {
		panic(fmt.Sprintf("interner: out of names (%d entries)", length))
	}
	return name.Name(length)
}
