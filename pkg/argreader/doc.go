// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argreader is a small command-line reader built around an ordered
// option registry and a single pass over argv.
//
// # Basic Usage
//
// Declare options on a Reader, optionally bind some of them to positional
// arguments, then Read:
//
//	r := argreader.New("Sample program")
//	defer r.Close()
//
//	r.String("string", "s", "No input", "String option")
//	r.Bool("boolean", "b", "Boolean option")
//	r.Number("number", "n", 0, "Number option")
//	r.Array("array", "a", "Array option")
//
//	if err := r.BindAll("string", "boolean", "number", "array"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := r.Read(os.Args[1:]); err != nil {
//	    os.Exit(r.HandleError(err))
//	}
//	fmt.Println(r.GetString("string"), r.GetArray("array"))
//
// # Token Syntax
//
//   - --name sets the option declared as name
//   - -x sets the option whose short alias is x
//   - --help stops parsing and returns ErrHelp
//   - any other token fills the next positional binding
//
// Boolean options never take a value. Every other kind takes exactly the next
// token, even when that token starts with "-". There is no --name=value form
// and no grouping of short aliases.
//
// # Positional Bindings
//
// Bound options receive positional tokens in binding order. Once an array
// option is reached it absorbs every remaining positional token, so it
// should be bound last. More positional tokens than bindings is an
// ErrIndexOverflow.
//
// # Errors
//
// Read stops at the first bad token. Failures are *Error values that unwrap
// to one of the sentinels (ErrOptionNotExist, ErrInputNotCompleted,
// ErrIndexOverflow, ...); StatusOf maps any of them to a Status. Numbers that
// do not parse are ignored and the previous value is kept.
package argreader
