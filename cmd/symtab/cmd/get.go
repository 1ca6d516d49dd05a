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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"symtab.dev/go/interner"
	"symtab.dev/go/name"
)

func newGetCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [-f file]... name...",
		Short: "print the identifiers of names",
		Long: `get builds a symbol table from the given files, or from standard
input, and prints the identifier of each name given as an argument.
Names that are not in the table are reported as errors.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: mkRunE(c, doGet),
	}
	addFileFlag(cmd.Flags())
	return cmd
}

func doGet(cmd *Command, args []string) error {
	r, _, err := buildTable(cmd, flagFile.StringArray(cmd))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, a := range args {
		i, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			exitOnErr(cmd, xerrors.Errorf("get %s: not a name", a), false)
			continue
		}
		n, err := name.MakeName(i)
		if err != nil {
			exitOnErr(cmd, xerrors.Errorf("get %s: %w", a, err), false)
			continue
		}
		s, ok := r.Lookup(n)
		if !ok {
			exitOnErr(cmd, xerrors.Errorf("get %s: %w", a,
				&interner.InvalidNameError{Name: n, Len: r.Len()}), false)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\n", n, s)
	}
	return nil
}
