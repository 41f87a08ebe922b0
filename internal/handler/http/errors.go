// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidScrapePath is returned by Init when the configured scrape
	// base path contains route metacharacters.
	ErrInvalidScrapePath = errors.New("scrape path must not contain '*', '{' or '}'")

	// errMissingValue is returned when a measurement body carries no "value".
	errMissingValue = errors.New("missing `value` field")
)
