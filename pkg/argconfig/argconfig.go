// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argconfig loads option defaults from a TOML, YAML or INI file.
//
// Top-level keys are option names. Load is meant to run before
// argreader.Reader.Read, so anything given on the command line wins:
//
//	# sample.toml
//	string = "from file"
//	boolean = true
//	number = 3.5
//	array = ["a", "b"]
package argconfig

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-ini/ini"
	"github.com/yeetrun/argreader/pkg/argreader"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for file extensions other than .toml,
// .yaml, .yml and .ini.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Load reads path and resets every option it names to the value it holds.
func Load(r *argreader.Reader, path string) error {
	values, err := decodeFile(path)
	if err != nil {
		return err
	}
	if err := Apply(r, values); err != nil {
		return fmt.Errorf("failed to apply %s: %w", path, err)
	}
	return nil
}

// Apply resets the named options to the given values, in key order.
func Apply(r *argreader.Reader, values map[string]any) error {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		o, err := r.Lookup(name)
		if err != nil {
			return err
		}
		v, err := toValue(o.Kind(), values[name])
		if err != nil {
			return fmt.Errorf("option %q: %w", name, err)
		}
		if err := o.Reset(v); err != nil {
			return err
		}
	}
	return nil
}

func decodeFile(path string) (map[string]any, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		values := make(map[string]any)
		if _, err := toml.DecodeFile(path, &values); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return values, nil
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		values := make(map[string]any)
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return values, nil
	case ".ini":
		return decodeINI(path)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}
}

// decodeINI reads the default section only. Values stay strings and are
// converted per option kind; arrays are comma separated.
func decodeINI(path string) (map[string]any, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	values := make(map[string]any)
	for _, key := range f.Section(ini.DefaultSection).Keys() {
		values[key.Name()] = key.String()
	}
	return values, nil
}

func toValue(kind argreader.Kind, v any) (argreader.Value, error) {
	switch kind {
	case argreader.KindString:
		switch s := v.(type) {
		case string:
			return argreader.StringValue(s), nil
		case bool, int, int64, uint64, float64:
			return argreader.StringValue(fmt.Sprint(s)), nil
		}
	case argreader.KindBool:
		switch b := v.(type) {
		case bool:
			return argreader.BoolValue(b), nil
		case string:
			parsed, err := strconv.ParseBool(b)
			if err != nil {
				return nil, fmt.Errorf("invalid bool value %q: %w", b, err)
			}
			return argreader.BoolValue(parsed), nil
		}
	case argreader.KindNumber:
		switch n := v.(type) {
		case int:
			return argreader.NumberValue(n), nil
		case int64:
			return argreader.NumberValue(n), nil
		case uint64:
			return argreader.NumberValue(n), nil
		case float64:
			return argreader.NumberValue(n), nil
		case string:
			f, err := strconv.ParseFloat(n, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number value %q: %w", n, err)
			}
			return argreader.NumberValue(f), nil
		}
	case argreader.KindArray:
		switch a := v.(type) {
		case []any:
			out := make(argreader.ArrayValue, 0, len(a))
			for _, elem := range a {
				out = append(out, fmt.Sprint(elem))
			}
			return out, nil
		case []string:
			return argreader.ArrayValue(a), nil
		case string:
			return argreader.ArrayValue(splitList(a)), nil
		}
	}
	return nil, fmt.Errorf("cannot use %T as %s", v, kind)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
