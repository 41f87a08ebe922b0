// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errInvalidPort = errors.New("http port must be within 0..65535")
)
