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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"symtab.dev/go/internal/envflag"
	"symtab.dev/go/internal/runtime"
)

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		return f(c, args)
	}
}

// newRootCmd creates the base command when called without any subcommands
func newRootCmd() *Command {
	cmd := &cobra.Command{
		Use:   "symtab",
		Short: "symtab interns the identifiers of source files.",
		Long: `symtab reads identifiers from source files and enters them in a
symbol table, in which every distinct identifier is assigned a small
integer name. Names are assigned in order of first occurrence, starting
at 0.

Identifiers starting with the fresh prefix ('$' by default) are
generated names: each occurrence is entered under a new name, even if
an identifier with the same spelling is present, and is never found by
a lookup of that spelling.

A configuration file may list keywords that are entered, in order,
before any input is read:

	keywords: [if, else, for, return]
	freshPrefix: "$"

The file is taken from --config or from SYMTAB_CONFIG.`,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &Command{Command: cmd, root: cmd}

	subCommands := []*cobra.Command{
		newInternCmd(c),
		newFindCmd(c),
		newGetCmd(c),
	}

	addGlobalFlags(cmd.PersistentFlags())
	cmd.PersistentPreRunE = mkRunE(c, setup)

	for _, sub := range subCommands {
		cmd.AddCommand(sub)
	}

	return c
}

// Main runs the symtab tool and returns the code for passing to os.Exit.
func Main() int {
	err := mainErr(context.Background(), os.Args[1:])
	if err != nil {
		if err != ErrPrintedError {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}

func mainErr(ctx context.Context, args []string) error {
	cmd, err := New(args)
	if err != nil {
		return err
	}
	return cmd.Run(ctx)
}

type Command struct {
	// The currently active command.
	*cobra.Command

	root *cobra.Command

	env envflag.Flags
	cfg *Config
	log *logrus.Logger

	hasErr bool
}

type errWriter Command

func (w *errWriter) Write(b []byte) (int, error) {
	c := (*Command)(w)
	c.hasErr = true
	return c.Command.ErrOrStderr().Write(b)
}

// Stderr returns a writer that should be used for error messages. Writing
// to it causes a non-zero exit code.
func (c *Command) Stderr() io.Writer {
	return (*errWriter)(c)
}

// SetOutput directs both standard output and standard error to w.
func (c *Command) SetOutput(w io.Writer) {
	c.root.SetOut(w)
	c.root.SetErr(w)
}

func (c *Command) SetInput(r io.Reader) {
	c.root.SetIn(r)
}

// ErrPrintedError indicates error messages have been printed to stderr.
var ErrPrintedError = xerrors.New("terminating because of errors")

func (c *Command) Run(ctx context.Context) (err error) {
	defer recoverError(&err)

	if err := c.root.ExecuteContext(ctx); err != nil {
		return err
	}
	if c.hasErr {
		return ErrPrintedError
	}
	return nil
}

func recoverError(err *error) {
	switch e := recover().(type) {
	case nil:
	case panicError:
		*err = e.Err
	default:
		panic(e)
	}
	// We use panic to escape, instead of os.Exit
}

// New creates the symtab command for the given arguments.
func New(args []string) (cmd *Command, err error) {
	defer recoverError(&err)

	cmd = newRootCmd()
	cmd.env = envflag.Load(nil)
	cmd.root.SetArgs(args)
	return cmd, nil
}

// setup runs before every subcommand. It loads the configuration, sets up
// logging and installs a fresh symbol table in the command's context.
func setup(cmd *Command, args []string) error {
	cmd.log = newLogger(cmd)

	path := flagConfig.String(cmd)
	if path == "" {
		path = cmd.env.Config
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup(string(flagFreshPrefix)); f != nil && f.Changed {
		cfg.FreshPrefix = f.Value.String()
	}
	if cfg.FreshPrefix == "" {
		cfg.FreshPrefix = defaultFreshPrefix
	}
	cmd.cfg = cfg
	cmd.log.WithFields(logrus.Fields{
		"config":   path,
		"keywords": len(cfg.Keywords),
		"fresh":    cfg.FreshPrefix,
	}).Debug("configured")

	r := runtime.New(cfg.Keywords)
	cmd.SetContext(runtime.WithRuntime(cmd.Context(), r))
	return nil
}

func exitOnErr(cmd *Command, err error, fatal bool) {
	if err == nil {
		return
	}
	fmt.Fprintln(cmd.Stderr(), err)
	if fatal {
		exit()
	}
}

type panicError struct {
	Err error
}

func exit() {
	panic(panicError{ErrPrintedError})
}
