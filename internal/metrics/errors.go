// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import "errors"

var (
	// ErrDeclarationNotFound is returned by LoadDeclaration when the metric
	// declaration file does not exist.
	ErrDeclarationNotFound = errors.New("metric declaration file not found")

	// ErrInvalidDeclaration is returned when the declaration contains an
	// invalid or duplicate metric name, or an invalid label name.
	ErrInvalidDeclaration = errors.New("invalid metric declaration")

	// ErrUnknownMetric is returned when a value is reported for a metric that
	// was never declared.
	ErrUnknownMetric = errors.New("unknown metric")
)
