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
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Common flags
const (
	flagVerbose     flagName = "verbose"
	flagConfig      flagName = "config"
	flagFreshPrefix flagName = "fresh-prefix"
	flagList        flagName = "list"
	flagFile        flagName = "file"
)

const defaultFreshPrefix = "$"

var flagOut = stringFlag{
	name:  "out",
	short: "o",
	text:  "output format (text or yaml)",
	def:   "text",
}

func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP(string(flagVerbose), "v", false,
		"print information about progress")
	f.String(string(flagConfig), "",
		"configuration file (default $SYMTAB_CONFIG)")
	f.String(string(flagFreshPrefix), defaultFreshPrefix,
		"runes that mark an identifier as a generated name")
}

func addFileFlag(f *pflag.FlagSet) {
	f.StringArrayP(string(flagFile), "f", nil,
		"file to read identifiers from (default stdin)")
}

type flagName string

func (f flagName) Bool(cmd *Command) bool {
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	v, _ := cmd.Flags().GetString(string(f))
	return v
}

func (f flagName) StringArray(cmd *Command) []string {
	v, _ := cmd.Flags().GetStringArray(string(f))
	return v
}

type stringFlag struct {
	name  string
	short string
	text  string
	def   string
}

func (f *stringFlag) Add(cmd *cobra.Command) {
	cmd.Flags().StringP(f.name, f.short, f.def, f.text)
}

func (f *stringFlag) String(cmd *Command) string {
	v, err := cmd.Flags().GetString(f.name)
	if err != nil {
		return f.def
	}
	return v
}
