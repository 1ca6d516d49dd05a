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
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"symtab.dev/go/internal/runtime"
)

func newInternCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intern [--list] [-o format] [files]",
		Short: "build a symbol table and report its size",
		Long: `intern enters the identifiers of the given files, or of standard
input, in a symbol table and reports:

	entries      the number of names in the table
	interned     names entered by spelling, including keywords
	fresh        generated names
	occurrences  identifiers read

With --list, every entry is printed with its name. Generated names are
marked as fresh.
`,
		RunE: mkRunE(c, doIntern),
	}
	cmd.Flags().BoolP(string(flagList), "l", false, "list the entries of the table")
	flagOut.Add(cmd)
	return cmd
}

type report struct {
	Entries     int     `yaml:"entries"`
	Interned    int     `yaml:"interned"`
	Fresh       int     `yaml:"fresh"`
	Occurrences int     `yaml:"occurrences"`
	Table       []entry `yaml:"table,omitempty"`
}

type entry struct {
	Name  uint32 `yaml:"name"`
	Text  string `yaml:"text"`
	Fresh bool   `yaml:"fresh,omitempty"`
}

func doIntern(cmd *Command, args []string) error {
	r, st, err := buildTable(cmd, args)
	if err != nil {
		return err
	}

	rep := makeReport(r, st, flagList.Bool(cmd))

	w := cmd.OutOrStdout()
	switch out := flagOut.String(cmd); out {
	case "text":
		writeText(w, rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return xerrors.Errorf("writing report: %w", err)
		}
		return enc.Close()
	default:
		return xerrors.Errorf("unknown output format %q", out)
	}
	return nil
}

func makeReport(r *runtime.Runtime, st tableStats, list bool) *report {
	rep := &report{
		Entries:     r.Len(),
		Occurrences: st.occurrences,
	}
	for n, s := range r.All() {
		m, ok := r.Find(s)
		fresh := !ok || m != n
		if fresh {
			rep.Fresh++
		} else {
			rep.Interned++
		}
		if list {
			rep.Table = append(rep.Table, entry{Name: uint32(n), Text: s, Fresh: fresh})
		}
	}
	return rep
}

func writeText(w io.Writer, rep *report) {
	fmt.Fprintf(w, "entries: %d\n", rep.Entries)
	fmt.Fprintf(w, "interned: %d\n", rep.Interned)
	fmt.Fprintf(w, "fresh: %d\n", rep.Fresh)
	fmt.Fprintf(w, "occurrences: %d\n", rep.Occurrences)
	for _, e := range rep.Table {
		if e.Fresh {
			fmt.Fprintf(w, "%d\t%s\t(fresh)\n", e.Name, e.Text)
		} else {
			fmt.Fprintf(w, "%d\t%s\n", e.Name, e.Text)
		}
	}
}
