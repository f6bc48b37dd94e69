// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"testing"
)

func TestColorizerWrap(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		code    string
		want    string
	}{
		{"disabled", false, ColorRed, "text"},
		{"enabled", true, ColorRed, ColorRed + "text" + ColorReset},
		{"empty code", true, "", "text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Colorizer{Enabled: tt.enabled}
			if got := c.Wrap(tt.code, "text"); got != tt.want {
				t.Fatalf("Wrap() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewColorizerEnv(t *testing.T) {
	tests := []struct {
		name    string
		noColor string
		term    string
		enabled bool
		want    bool
	}{
		{"terminal", "", "xterm-256color", true, true},
		{"not requested", "", "xterm-256color", false, false},
		{"no color", "1", "xterm-256color", true, false},
		{"dumb term", "", "dumb", true, false},
		{"no term", "", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			if got := NewColorizer(tt.enabled).Enabled; got != tt.want {
				t.Fatalf("NewColorizer(%v).Enabled = %v, want %v", tt.enabled, got, tt.want)
			}
		})
	}
}

func TestForWriterNonTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Fatal("IsTerminal(buffer) = true, want false")
	}
	if ForWriter(&buf).Enabled {
		t.Fatal("ForWriter(buffer).Enabled = true, want false")
	}
	if IsTerminal(nil) {
		t.Fatal("IsTerminal(nil) = true, want false")
	}
}
