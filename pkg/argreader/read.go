// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argreader

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const helpFlagLong = "--help"

// Read parses args (without the program name) into the declared options.
//
// Each token is classified in order:
//   - "--help" stops parsing and returns ErrHelp
//   - "--name" sets the named option; non-boolean options take the next token
//   - "-x" does the same for the option whose short alias is x
//   - anything else fills the next positional binding; an array binding
//     absorbs every remaining positional token
//
// Parsing stops at the first failure, leaving later tokens unprocessed. The
// returned error is an *Error (or ErrHelp) whose status is also available from
// Status. The cursors are not reset, so calling Read again resumes after the
// last consumed token.
func (r *Reader) Read(args []string) error {
	for r.nextArg < len(args) {
		word := args[r.nextArg]
		r.nextArg++

		var err error
		switch {
		case strings.HasPrefix(word, "--"):
			err = r.readLong(word, args)
		case strings.HasPrefix(word, "-"):
			err = r.readShort(word, args)
		default:
			err = r.readIndex(word)
		}
		if err != nil {
			return r.finish(err)
		}
	}
	return r.finish(nil)
}

func (r *Reader) finish(err error) error {
	r.status = StatusOf(err)
	if err != nil {
		r.log.Debug("read stopped",
			zap.Stringer("status", r.status),
			zap.Int("arg", r.nextArg),
			zap.Error(err))
	}
	return err
}

func (r *Reader) readLong(word string, args []string) error {
	if word == helpFlagLong {
		return ErrHelp
	}
	o, err := r.Lookup(strings.TrimPrefix(word, "--"))
	if err != nil {
		return err
	}
	return r.readFlagValue(o, word, args)
}

func (r *Reader) readShort(word string, args []string) error {
	o, ok := r.lookupShort(strings.TrimPrefix(word, "-"))
	if !ok {
		return r.fail(&Error{
			Status: StatusOptionNotExist,
			Token:  word,
			Msg:    fmt.Sprintf("short option '%s' not found", word),
		})
	}
	return r.readFlagValue(o, word, args)
}

// readFlagValue sets a boolean option, or feeds the next token to any other
// option.
func (r *Reader) readFlagValue(o *Option, word string, args []string) error {
	if o.kind == KindBool {
		o.value = BoolValue(true)
		return nil
	}
	if r.nextArg >= len(args) {
		return r.fail(&Error{
			Status: StatusInputNotCompleted,
			Token:  word,
			Msg:    fmt.Sprintf("'%s' expects a value", word),
		})
	}
	value := args[r.nextArg]
	r.nextArg++
	return r.set(o, value)
}

func (r *Reader) readIndex(word string) error {
	if r.nextIndex >= len(r.indexes) {
		return r.fail(&Error{
			Status: StatusIndexOverflow,
			Token:  word,
			Msg:    "too many positional arguments",
		})
	}
	o := r.indexes[r.nextIndex]
	switch o.kind {
	case KindArray:
		// An array slot keeps the cursor and takes everything that follows.
		return r.set(o, word)
	case KindBool:
		o.value = BoolValue(true)
	default:
		if err := r.set(o, word); err != nil {
			return err
		}
	}
	r.nextIndex++
	return nil
}

func (r *Reader) set(o *Option, text string) error {
	if err := o.Set(text); err != nil {
		if perr, ok := err.(*Error); ok {
			return r.fail(perr)
		}
		return err
	}
	return nil
}
