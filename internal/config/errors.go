// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is matched by every [CoercionError]: a supplied value
	// cannot be converted to the type of its field.
	ErrInvalidValue = errors.New("invalid configuration value")
	// ErrUnsupportedFormat is returned for configuration files whose
	// extension maps to no known decoder.
	ErrUnsupportedFormat = errors.New("unsupported configuration file format")
	// ErrConfigFileNotFound is returned when an explicitly requested
	// configuration file does not exist.
	ErrConfigFileNotFound = errors.New("configuration file not found")

	errNoDefault = errors.New("no default value registered")
)

// CoercionError reports a supplied value that does not fit the semantic
// type of the field at Path. It aborts resolution.
type CoercionError struct {
	Path   Path
	Value  any
	Target string
	Err    error
}

func (e *CoercionError) Error() string {
	var msg string
	if e.Value == nil {
		msg = fmt.Sprintf("%s: cannot use an object as %s", e.Path, e.Target)
	} else {
		msg = fmt.Sprintf("%s: cannot use %#v (%T) as %s", e.Path, e.Value, e.Value, e.Target)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrInvalidValue) hold for every CoercionError.
func (e *CoercionError) Is(target error) bool {
	return target == ErrInvalidValue
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}
