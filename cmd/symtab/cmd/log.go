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
	"github.com/sirupsen/logrus"
)

// newLogger returns a logger writing to the command's standard error.
// Log output does not affect the exit code.
//
// The level is warn, or debug with --verbose or SYMTAB_DEBUG=1.
// SYMTAB_LOG_LEVEL overrides both.
func newLogger(cmd *Command) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	log.SetLevel(logrus.WarnLevel)
	if flagVerbose.Bool(cmd) || cmd.env.Debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if s := cmd.env.LogLevel; s != "" {
		lvl, err := logrus.ParseLevel(s)
		if err != nil {
			log.WithField("SYMTAB_LOG_LEVEL", s).Warn("ignoring invalid log level")
		} else {
			log.SetLevel(lvl)
		}
	}
	return log
}
