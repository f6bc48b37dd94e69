// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argreader

import (
	"slices"

	"go.uber.org/zap"
)

const notExistValue = "<option not exist>"

// get resolves name for a getter, logging misses.
func (r *Reader) get(getter, name string) (*Option, bool) {
	o, err := r.Lookup(name)
	if err != nil {
		r.log.Debug("failed to get option", zap.String("getter", getter), zap.Error(err))
		return nil, false
	}
	return o, true
}

// GetString returns the value of a string option, or "" if name is not a
// declared string option.
func (r *Reader) GetString(name string) string {
	o, ok := r.get("GetString", name)
	if !ok {
		return ""
	}
	v, _ := o.value.(StringValue)
	return string(v)
}

// GetBool returns the value of a boolean option, or false.
func (r *Reader) GetBool(name string) bool {
	o, ok := r.get("GetBool", name)
	if !ok {
		return false
	}
	v, _ := o.value.(BoolValue)
	return bool(v)
}

// GetNumber returns the value of a numeric option, or 0.
func (r *Reader) GetNumber(name string) float64 {
	o, ok := r.get("GetNumber", name)
	if !ok {
		return 0
	}
	v, _ := o.value.(NumberValue)
	return float64(v)
}

// GetArray returns a copy of an array option's elements in append order, or
// nil.
func (r *Reader) GetArray(name string) []string {
	o, ok := r.get("GetArray", name)
	if !ok {
		return nil
	}
	v, ok := o.value.(ArrayValue)
	if !ok {
		return nil
	}
	return slices.Clone([]string(v))
}

// ValueString returns the display form of the named option's value.
func (r *Reader) ValueString(name string) string {
	o, ok := r.get("ValueString", name)
	if !ok {
		return notExistValue
	}
	return o.String()
}
