// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argreader

import (
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/zap"
)

// Reader holds the option registry, the positional binding table and the
// parse cursors for one command line. A Reader is not safe for concurrent
// use; independent Readers are.
type Reader struct {
	description string

	// options is the registry in declaration order.
	options []*Option
	// indexes are the options that receive positional arguments, in order.
	indexes []*Option

	// nextArg and nextIndex are never reset, so a second Read resumes.
	nextArg   int
	nextIndex int

	status  Status
	lastErr string

	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithLogger sets the logger used for debug events. The default discards
// everything.
func WithLogger(l *zap.Logger) ReaderOption {
	return func(r *Reader) {
		if l != nil {
			r.log = l.Named("argreader")
		}
	}
}

// WithOutput sets where help text and error lines are written. The defaults
// are os.Stdout and os.Stderr.
func WithOutput(stdout, stderr io.Writer) ReaderOption {
	return func(r *Reader) {
		if stdout != nil {
			r.stdout = stdout
		}
		if stderr != nil {
			r.stderr = stderr
		}
	}
}

// New creates a Reader. description is the first line of the help text.
func New(description string, opts ...ReaderOption) *Reader {
	r := &Reader{
		description: description,
		indexes:     make([]*Option, 0, arrayGrowth),
		log:         zap.NewNop(),
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Close releases the registry and the binding table. It is safe to call more
// than once.
func (r *Reader) Close() error {
	if r.options == nil && r.indexes == nil {
		return nil
	}
	r.log.Debug("closing reader", zap.Int("options", len(r.options)), zap.Int("indexes", len(r.indexes)))
	r.options = nil
	r.indexes = nil
	return nil
}

// Description returns the description given to New.
func (r *Reader) Description() string {
	return r.description
}

// Status returns the terminal status of the most recent Read.
func (r *Reader) Status() Status {
	return r.status
}

// LastError returns the message of the most recent failure. It is
// overwritten by every later failure.
func (r *Reader) LastError() string {
	return r.lastErr
}

func (r *Reader) fail(err *Error) *Error {
	r.lastErr = err.Msg
	return err
}

// CreateOption declares an option and appends it to the registry. def may be
// nil for the kind's zero value. It panics if name is empty, if name or a
// non-empty short alias is already declared, or if def has another kind.
func (r *Reader) CreateOption(name, short string, kind Kind, def Value, description string) *Option {
	if name == "" {
		panic("argreader: option name must not be empty")
	}
	for _, o := range r.options {
		if o.name == name {
			panic(fmt.Sprintf("argreader: option %q is already declared", name))
		}
		if short != "" && o.short == short {
			panic(fmt.Sprintf("argreader: short alias %q of option %q is already used by %q", short, name, o.name))
		}
	}
	if def == nil {
		v, err := zeroValue(kind)
		if err != nil {
			panic(fmt.Sprintf("argreader: option %q: %v", name, err))
		}
		def = v
	}
	if def.Kind() != kind {
		panic(fmt.Sprintf("argreader: option %q is %s but default is %s", name, kind, def.Kind()))
	}

	o := &Option{
		name:        name,
		short:       short,
		description: description,
		kind:        kind,
		log:         r.log,
	}
	if err := o.Reset(def); err != nil {
		panic(fmt.Sprintf("argreader: %v", err))
	}
	r.options = append(r.options, o)
	return o
}

// String declares a string option.
func (r *Reader) String(name, short, def, description string) *Option {
	return r.CreateOption(name, short, KindString, StringValue(def), description)
}

// Bool declares a boolean option. It starts false.
func (r *Reader) Bool(name, short, description string) *Option {
	return r.CreateOption(name, short, KindBool, nil, description)
}

// Number declares a numeric option.
func (r *Reader) Number(name, short string, def float64, description string) *Option {
	return r.CreateOption(name, short, KindNumber, NumberValue(def), description)
}

// Array declares an array-of-string option. It starts empty.
func (r *Reader) Array(name, short, description string) *Option {
	return r.CreateOption(name, short, KindArray, nil, description)
}

// Lookup returns the option declared with the full name name. The first
// match in declaration order wins.
func (r *Reader) Lookup(name string) (*Option, error) {
	for _, o := range r.options {
		if o.name == name {
			return o, nil
		}
	}
	return nil, r.fail(&Error{
		Status: StatusOptionNotExist,
		Token:  name,
		Msg:    fmt.Sprintf("option '%s' does not exist", name),
	})
}

// lookupShort scans the registry for the short alias. Empty aliases never
// match.
func (r *Reader) lookupShort(short string) (*Option, bool) {
	if short == "" {
		return nil, false
	}
	for _, o := range r.options {
		if o.short == short {
			return o, true
		}
	}
	return nil, false
}

// Options returns the declared options in declaration order.
func (r *Reader) Options() []*Option {
	return slices.Clone(r.options)
}

// Bind appends the named option to the positional binding table. If the
// option is an array it absorbs every remaining positional argument, so it
// should be bound last.
func (r *Reader) Bind(name string) error {
	o, err := r.Lookup(name)
	if err != nil {
		r.log.Debug("failed to bind index", zap.String("option", name), zap.Error(err))
		return err
	}
	if len(r.indexes)%arrayGrowth == 0 {
		r.indexes = slices.Grow(r.indexes, arrayGrowth)
	}
	r.indexes = append(r.indexes, o)
	return nil
}

// BindAll binds names in order. It stops at the first name that fails and
// returns that error; names after it are not bound.
func (r *Reader) BindAll(names ...string) error {
	for _, name := range names {
		if err := r.Bind(name); err != nil {
			return err
		}
	}
	return nil
}

// Bindings returns the positional binding table in order.
func (r *Reader) Bindings() []*Option {
	return slices.Clone(r.indexes)
}
