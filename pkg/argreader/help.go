// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argreader

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/yeetrun/argreader/pkg/tui"
	"go.uber.org/zap"
)

// GenerateHelp returns the help text: the description, then one line per
// option in declaration order:
//
//	--name   -n : description
//
// Names and aliases are padded to the longest of each. Options without an
// alias get a blank instead of the dash.
func (r *Reader) GenerateHelp() string {
	return r.generateHelp(tui.Colorizer{})
}

func (r *Reader) generateHelp(c tui.Colorizer) string {
	var b strings.Builder

	b.WriteString(r.description)
	b.WriteString("\n\n")
	b.WriteString(c.Wrap(tui.ColorBold, "Options:"))
	b.WriteString("\n")

	nameWidth, shortWidth := 0, 0
	for _, o := range r.options {
		nameWidth = max(nameWidth, utf8.RuneCountInString(o.name))
		shortWidth = max(shortWidth, utf8.RuneCountInString(o.short))
	}
	nameWidth += 2
	shortWidth++

	for _, o := range r.options {
		dash := '-'
		if o.short == "" {
			dash = ' '
		}
		b.WriteString(fmt.Sprintf("--%-*s%c%-*s: %s\n", nameWidth, o.name, dash, shortWidth, o.short, o.description))
	}
	b.WriteString("\n")

	return b.String()
}

// WriteHelp writes the help text to w without colour.
func (r *Reader) WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, r.GenerateHelp())
	return err
}

// PrintHelp writes the help text to the Reader's stdout, colouring the
// heading when stdout is a terminal.
func (r *Reader) PrintHelp() error {
	_, err := io.WriteString(r.stdout, r.generateHelp(tui.ForWriter(r.stdout)))
	return err
}

// HandleError finishes a failed Read and returns the process exit code.
// ErrHelp prints the help text to stdout and yields 0; any other error is
// written to stderr and yields 1. The Reader is closed either way.
//
//	if err := r.Read(os.Args[1:]); err != nil {
//	    os.Exit(r.HandleError(err))
//	}
func (r *Reader) HandleError(err error) int {
	if err == nil {
		return 0
	}
	defer r.Close()

	if errors.Is(err, ErrHelp) {
		if werr := r.PrintHelp(); werr != nil {
			r.log.Debug("failed to print help", zap.Error(werr))
		}
		return 0
	}

	red := color.New(color.FgRed)
	if tui.ForWriter(r.stderr).Enabled {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	red.Fprintf(r.stderr, "ERROR: Failed to read parameter! (%s)\n", err)
	return 1
}
