// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yeetrun/argreader/pkg/argreader"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// VarName returns the environment variable for an option, e.g.
// VarName("app", "max-count") == "APP_MAX_COUNT".
func VarName(prefix, option string) string {
	name := strings.ToUpper(strings.ReplaceAll(option, "-", "_"))
	if prefix == "" {
		return name
	}
	return strings.ToUpper(prefix) + "_" + name
}

// Apply resets every option whose variable is set in the process
// environment.
func Apply(r *argreader.Reader, prefix string) error {
	return ApplyFunc(r, prefix, os.LookupEnv)
}

// ApplyFunc is Apply with a custom lookup.
func ApplyFunc(r *argreader.Reader, prefix string, lookup LookupFunc) error {
	for _, o := range r.Options() {
		key := VarName(prefix, o.Name())
		raw, ok := lookup(key)
		if !ok {
			continue
		}
		v, err := parse(o.Kind(), raw)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", key, err)
		}
		if err := o.Reset(v); err != nil {
			return err
		}
	}
	return nil
}

func parse(kind argreader.Kind, raw string) (argreader.Value, error) {
	switch kind {
	case argreader.KindString:
		return argreader.StringValue(raw), nil
	case argreader.KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid bool value %q: %w", raw, err)
		}
		return argreader.BoolValue(b), nil
	case argreader.KindNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number value %q: %w", raw, err)
		}
		return argreader.NumberValue(f), nil
	case argreader.KindArray:
		parts := strings.Split(raw, ",")
		vals := make(argreader.ArrayValue, 0, len(parts))
		for _, part := range parts {
			if part == "" {
				continue
			}
			vals = append(vals, part)
		}
		return vals, nil
	default:
		return nil, fmt.Errorf("%w %d", argreader.ErrUnknownKind, int(kind))
	}
}
