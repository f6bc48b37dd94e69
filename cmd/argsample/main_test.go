// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleHelp = "ArgReader Sample\n\nOptions:\n" +
	"--string   -s : String option\n" +
	"--boolean  -b : Boolean Option\n" +
	"--number   -n : Number Option\n" +
	"--array    -a : Array Option\n" +
	"\n"

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func output(str string, b bool, num string, arr ...string) string {
	var sb strings.Builder
	sb.WriteString("String Option: " + str + "\n")
	if b {
		sb.WriteString("Boolean Option: true\n")
	} else {
		sb.WriteString("Boolean Option: false\n")
	}
	sb.WriteString("Number Option: " + num + "\n")
	sb.WriteString("Array Option:\n")
	for _, a := range arr {
		sb.WriteString("  " + a + "\n")
	}
	return sb.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		env        map[string]string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "defaults",
			wantStdout: output("No input", false, "0"),
		},
		{
			name:       "positional",
			args:       []string{"hello", "true", "3.5", "x", "y", "z"},
			wantStdout: output("hello", true, "3.5", "x", "y", "z"),
		},
		{
			name:       "flags",
			args:       []string{"--number", "7", "-a", "x", "-a", "y", "-b"},
			wantStdout: output("No input", true, "7", "x", "y"),
		},
		{
			name:       "help",
			args:       []string{"--string", "ignored", "--help"},
			wantStdout: sampleHelp,
		},
		{
			name:       "unknown option",
			args:       []string{"--nope"},
			wantCode:   1,
			wantStderr: "ERROR: Failed to read parameter! (option 'nope' does not exist)\n",
		},
		{
			name:       "missing value",
			args:       []string{"-s"},
			wantCode:   1,
			wantStderr: "ERROR: Failed to read parameter! ('-s' expects a value)\n",
		},
		{
			name: "env defaults",
			args: []string{"-s", "cli"},
			env: map[string]string{
				"ARGSAMPLE_STRING": "env",
				"ARGSAMPLE_NUMBER": "2",
				"ARGSAMPLE_ARRAY":  "p,q",
			},
			wantStdout: output("cli", false, "2", "p", "q"),
		},
		{
			name:       "bad env",
			env:        map[string]string{"ARGSAMPLE_BOOLEAN": "sometimes"},
			wantCode:   1,
			wantStderr: "ERROR: failed to parse ARGSAMPLE_BOOLEAN: invalid bool value \"sometimes\": strconv.ParseBool: parsing \"sometimes\": invalid syntax\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, lookupMap(tt.env), &stdout, &stderr)
			if code != tt.wantCode {
				t.Errorf("run() = %d, want %d", code, tt.wantCode)
			}
			if diff := cmp.Diff(tt.wantStdout, stdout.String()); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantStderr, stderr.String()); diff != "" {
				t.Errorf("stderr mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	content := "string: from file\nnumber: 4\narray: [f]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	env := map[string]string{
		"ARGSAMPLE_CONFIG": path,
		"ARGSAMPLE_NUMBER": "5",
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-a", "cli"}, lookupMap(env), &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr = %q", code, stderr.String())
	}
	want := output("from file", false, "5", "f", "cli")
	if diff := cmp.Diff(want, stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunBadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	var stdout, stderr bytes.Buffer
	code := run(nil, lookupMap(map[string]string{"ARGSAMPLE_CONFIG": path}), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "unsupported config format") {
		t.Errorf("stderr = %q, want unsupported format error", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}
