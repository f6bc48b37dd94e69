// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argreader

import "testing"

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		constraint string
		wantErr    bool
	}{
		{"^2.0", false},
		{">= 2.0, < 3", false},
		{"2.0.0", false},
		{"^1.0", true},
		{">= 3", true},
		{"not a constraint", true},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			err := CheckVersion(tt.constraint)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckVersion(%q) error = %v, wantErr %v", tt.constraint, err, tt.wantErr)
			}
		})
	}
	if got := Version.String(); got != "2.0.0" {
		t.Errorf("Version = %q, want %q", got, "2.0.0")
	}
}
