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
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"

	"symtab.dev/go/internal/runtime"
	"symtab.dev/go/internal/scan"
)

// tableStats counts what was entered in a symbol table.
type tableStats struct {
	occurrences int
	fresh       int
}

// buildTable enters the identifiers of the given files in the command's
// symbol table. It reads standard input if files is empty or for "-".
func buildTable(cmd *Command, files []string) (*runtime.Runtime, tableStats, error) {
	r := runtime.FromContext(cmd.Context())
	var st tableStats

	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		var in io.Reader
		if file == "-" {
			in = cmd.InOrStdin()
		} else {
			f, err := os.Open(file)
			if err != nil {
				return nil, st, xerrors.Errorf("reading input: %w", err)
			}
			defer f.Close()
			in = f
		}

		before := st
		if err := enter(r, in, cmd.cfg.FreshPrefix, &st); err != nil {
			return nil, st, xerrors.Errorf("scanning %s: %w", file, err)
		}
		cmd.log.WithFields(logrus.Fields{
			"file":        file,
			"identifiers": st.occurrences - before.occurrences,
			"fresh":       st.fresh - before.fresh,
			"entries":     r.Len(),
		}).Debug("scanned")
	}
	return r, st, nil
}

func enter(r *runtime.Runtime, in io.Reader, freshPrefix string, st *tableStats) error {
	sc := scan.NewScanner(in, freshPrefix)
	for sc.Scan() {
		st.occurrences++
		if rest, ok := scan.HasPrefix(sc.Bytes(), freshPrefix); ok {
			r.Gensym(string(rest))
			st.fresh++
			continue
		}
		r.InternBytes(sc.Bytes())
	}
	return sc.Err()
}
