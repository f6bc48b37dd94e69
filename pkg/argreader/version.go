// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argreader

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the version of this package.
var Version = semver.MustParse("2.0.0")

// CheckVersion returns an error if Version does not satisfy constraint,
// e.g. "^2.0" or ">= 2.0, < 3".
func CheckVersion(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	if !c.Check(Version) {
		return fmt.Errorf("argreader %s does not satisfy %q", Version, constraint)
	}
	return nil
}
