// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argsample declares one option of every kind, binds all of them to
// positional arguments and prints what it read.
//
//	argsample hello true 3.5 x y z
//	argsample --number 7 -a x -a y
//	argsample --help
//
// Defaults can come from a config file named by ARGSAMPLE_CONFIG and from
// ARGSAMPLE_<OPTION> variables; the command line overrides both. Set
// ARGSAMPLE_DEBUG to log parser events to stderr.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/yeetrun/argreader/pkg/argconfig"
	"github.com/yeetrun/argreader/pkg/argreader"
	"github.com/yeetrun/argreader/pkg/env"
	"github.com/yeetrun/argreader/pkg/tui"
	"go.uber.org/zap"
)

const envPrefix = "ARGSAMPLE"

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdout, os.Stderr))
}

func newLogger(lookup env.LookupFunc) *zap.Logger {
	if _, ok := lookup(envPrefix + "_DEBUG"); !ok {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Printf("failed to create logger: %v", err)
		return zap.NewNop()
	}
	return logger
}

func run(args []string, lookup env.LookupFunc, stdout, stderr io.Writer) int {
	logger := newLogger(lookup)
	defer func() { _ = logger.Sync() }()

	r := argreader.New("ArgReader Sample",
		argreader.WithLogger(logger),
		argreader.WithOutput(stdout, stderr))

	r.String("string", "s", "No input", "String option")
	r.Bool("boolean", "b", "Boolean Option")
	r.Number("number", "n", 0, "Number Option")
	r.Array("array", "a", "Array Option")

	if err := r.BindAll("string", "boolean", "number", "array"); err != nil {
		return fail(r, stderr, err)
	}
	if path, ok := lookup(envPrefix + "_CONFIG"); ok && path != "" {
		if err := argconfig.Load(r, path); err != nil {
			return fail(r, stderr, err)
		}
	}
	if err := env.ApplyFunc(r, envPrefix, lookup); err != nil {
		return fail(r, stderr, err)
	}

	if err := r.Read(args); err != nil {
		return r.HandleError(err)
	}
	defer r.Close()

	fmt.Fprintf(stdout, "String Option: %s\n", r.GetString("string"))
	fmt.Fprintf(stdout, "Boolean Option: %t\n", r.GetBool("boolean"))
	fmt.Fprintf(stdout, "Number Option: %g\n", r.GetNumber("number"))
	fmt.Fprintln(stdout, "Array Option:")
	for _, v := range r.GetArray("array") {
		fmt.Fprintf(stdout, "  %s\n", v)
	}
	return 0
}

// fail reports a setup error that happened before Read.
func fail(r *argreader.Reader, stderr io.Writer, err error) int {
	defer r.Close()
	red := color.New(color.FgRed)
	if tui.ForWriter(stderr).Enabled {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	red.Fprintf(stderr, "ERROR: %v\n", err)
	return 1
}
