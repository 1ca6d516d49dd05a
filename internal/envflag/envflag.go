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

// Package envflag reads the environment variables that configure the
// symtab tool.
package envflag

import "os"

func isEnabled(s string) bool {
	return s == "1"
}

// Flags holds the environment settings.
type Flags struct {
	// Debug forces debug logging (SYMTAB_DEBUG=1).
	Debug bool

	// LogLevel selects the log level (SYMTAB_LOG_LEVEL).
	LogLevel string

	// Config is the default configuration file (SYMTAB_CONFIG).
	Config string
}

// Load reads the flags using getenv, or os.Getenv if getenv is nil.
func Load(getenv func(string) string) Flags {
	if getenv == nil {
		getenv = os.Getenv
	}
	return Flags{
		Debug:    isEnabled(getenv("SYMTAB_DEBUG")),
		LogLevel: getenv("SYMTAB_LOG_LEVEL"),
		Config:   getenv("SYMTAB_CONFIG"),
	}
}
