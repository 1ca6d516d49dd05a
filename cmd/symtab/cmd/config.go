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
	"bytes"
	"io"
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// A Config holds the settings read from a configuration file.
type Config struct {
	// Keywords are entered in the symbol table, in order, before any input.
	Keywords []string `yaml:"keywords"`

	// FreshPrefix lists the runes that mark generated names.
	FreshPrefix string `yaml:"freshPrefix"`
}

// loadConfig reads the configuration at path. An empty path yields the
// default configuration.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, xerrors.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
