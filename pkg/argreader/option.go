// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argreader

import (
	"fmt"
	"slices"
	"strconv"

	"go.uber.org/zap"
)

// Kind is the type of value an Option holds. It never changes after the
// option is declared.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNumber
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindBool:
		return "Boolean"
	case KindNumber:
		return "Number"
	case KindArray:
		return "String Array"
	default:
		return "Unknown"
	}
}

// Value is the stored value of an Option: one of StringValue, BoolValue,
// NumberValue or ArrayValue.
type Value interface {
	Kind() Kind
	isValue()
}

type (
	StringValue string
	BoolValue   bool
	NumberValue float64
	ArrayValue  []string
)

func (StringValue) Kind() Kind { return KindString }
func (BoolValue) Kind() Kind   { return KindBool }
func (NumberValue) Kind() Kind { return KindNumber }
func (ArrayValue) Kind() Kind  { return KindArray }

func (StringValue) isValue() {}
func (BoolValue) isValue()   {}
func (NumberValue) isValue() {}
func (ArrayValue) isValue()  {}

// arrayGrowth is how many slots an array value reserves each time its length
// reaches a multiple of it.
const arrayGrowth = 5

// zeroValue returns the initial value for options declared without a default.
func zeroValue(k Kind) (Value, error) {
	switch k {
	case KindString:
		return StringValue(""), nil
	case KindBool:
		return BoolValue(false), nil
	case KindNumber:
		return NumberValue(0), nil
	case KindArray:
		return ArrayValue(make([]string, 0, arrayGrowth)), nil
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownKind, int(k))
	}
}

// Option is a declared, typed configuration slot.
type Option struct {
	name        string
	short       string
	description string
	kind        Kind
	value       Value

	log *zap.Logger
}

func (o *Option) Name() string        { return o.name }
func (o *Option) Short() string       { return o.short }
func (o *Option) Description() string { return o.description }
func (o *Option) Kind() Kind          { return o.kind }

// Value returns the current value. Array values are copied.
func (o *Option) Value() Value {
	if arr, ok := o.value.(ArrayValue); ok {
		return slices.Clone(arr)
	}
	return o.value
}

// Set coerces text into the option's value:
//   - String stores text verbatim
//   - Bool ignores text and stores true
//   - Number parses text as a float64; unparseable text leaves the value as it was
//   - Array appends text
func (o *Option) Set(text string) error {
	switch v := o.value.(type) {
	case StringValue:
		o.value = StringValue(text)
	case BoolValue:
		o.value = BoolValue(true)
	case NumberValue:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			o.logger().Debug("ignoring unparseable number",
				zap.String("option", o.name),
				zap.String("text", text),
				zap.Error(err))
			return nil
		}
		o.value = NumberValue(f)
	case ArrayValue:
		o.value = appendArray(v, text)
	default:
		return &Error{
			Status: StatusUnknownKind,
			Msg:    fmt.Sprintf("unknown type %d in '%s'", int(o.kind), o.name),
		}
	}
	return nil
}

// Reset replaces the option's value. v must have the option's kind.
func (o *Option) Reset(v Value) error {
	if v == nil || v.Kind() != o.kind {
		return fmt.Errorf("option %q is %s: %w", o.name, o.kind, ErrKindMismatch)
	}
	if arr, ok := v.(ArrayValue); ok {
		v = appendArray(ArrayValue(make([]string, 0, arrayGrowth)), arr...)
	}
	o.value = v
	return nil
}

// String formats the value for display.
func (o *Option) String() string {
	switch v := o.value.(type) {
	case StringValue:
		return string(v)
	case BoolValue:
		return strconv.FormatBool(bool(v))
	case NumberValue:
		return fmt.Sprintf("%g", float64(v))
	case ArrayValue:
		return fmt.Sprintf("string[%d]", len(v))
	default:
		return "Unknown"
	}
}

func (o *Option) logger() *zap.Logger {
	if o.log == nil {
		return zap.NewNop()
	}
	return o.log
}

// appendArray appends texts one at a time, reserving arrayGrowth slots
// whenever the length reaches a multiple of arrayGrowth.
func appendArray(arr ArrayValue, texts ...string) ArrayValue {
	for _, text := range texts {
		if len(arr)%arrayGrowth == 0 {
			arr = slices.Grow(arr, arrayGrowth)
		}
		arr = append(arr, text)
	}
	return arr
}
