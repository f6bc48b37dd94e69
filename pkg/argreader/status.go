// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argreader

import (
	"errors"
	"fmt"
)

// Status is the terminal outcome of a parse pass.
type Status int

const (
	StatusNone Status = iota
	StatusOptionNotExist
	StatusInputNotCompleted
	StatusIndexOverflow
	StatusAllocationFailure
	StatusHelp
	StatusUnknownKind
)

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusOptionNotExist:
		return "option not exist"
	case StatusInputNotCompleted:
		return "input not completed"
	case StatusIndexOverflow:
		return "index overflow"
	case StatusAllocationFailure:
		return "allocation failure"
	case StatusHelp:
		return "help"
	case StatusUnknownKind:
		return "unknown option kind"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Sentinel errors, one per non-success status.
var (
	// ErrHelp is returned by Read when --help is encountered. It is a control
	// request, not a failure.
	ErrHelp = errors.New("help requested")

	ErrOptionNotExist    = errors.New("option does not exist")
	ErrInputNotCompleted = errors.New("input not completed")
	ErrIndexOverflow     = errors.New("too many positional arguments")
	ErrAllocationFailure = errors.New("failed to allocate memory")
	ErrUnknownKind       = errors.New("unknown option kind")

	// ErrKindMismatch is returned by Option.Reset when the replacement value
	// has a different kind than the option.
	ErrKindMismatch = errors.New("option kind mismatch")
)

var statusErrors = map[Status]error{
	StatusOptionNotExist:    ErrOptionNotExist,
	StatusInputNotCompleted: ErrInputNotCompleted,
	StatusIndexOverflow:     ErrIndexOverflow,
	StatusAllocationFailure: ErrAllocationFailure,
	StatusHelp:              ErrHelp,
	StatusUnknownKind:       ErrUnknownKind,
}

// Error is a parse or lookup failure. Msg is the human readable message kept
// as the Reader's last error; Token is the argv token that caused it, if any.
type Error struct {
	Status Status
	Token  string
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

// Unwrap returns the sentinel error for the status, so callers can use
// errors.Is(err, ErrIndexOverflow) and friends.
func (e *Error) Unwrap() error {
	return statusErrors[e.Status]
}

// StatusOf maps an error returned by this package to its Status. nil maps to
// StatusNone; errors from elsewhere map to StatusNone as well.
func StatusOf(err error) Status {
	if err == nil {
		return StatusNone
	}
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Status
	}
	for status, sentinel := range statusErrors {
		if errors.Is(err, sentinel) {
			return status
		}
	}
	return StatusNone
}
