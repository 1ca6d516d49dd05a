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

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

func newFindCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [-f file]... identifier...",
		Short: "look up the names of identifiers",
		Long: `find builds a symbol table from the given files, or from standard
input, and prints the name of each identifier given as an argument.

Generated names are never found: an identifier is only found if it
occurs in the input without the fresh prefix, or is a keyword.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: mkRunE(c, doFind),
	}
	addFileFlag(cmd.Flags())
	return cmd
}

func doFind(cmd *Command, args []string) error {
	r, _, err := buildTable(cmd, flagFile.StringArray(cmd))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, a := range args {
		if n, ok := r.Find(norm.NFC.String(a)); ok {
			fmt.Fprintf(w, "%s\t%d\n", a, n)
		} else {
			fmt.Fprintf(w, "%s\tnot found\n", a)
		}
	}
	return nil
}
