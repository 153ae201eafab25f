// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrRead indicates the config file could not be read or decoded.
	ErrRead = errors.New("config: cannot read configuration")

	// ErrInvalid indicates a configuration that fails validation.
	ErrInvalid = errors.New("config: invalid configuration")
)
