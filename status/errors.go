// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package status

import "errors"

var (
	// ErrAlreadyRemoved is returned by operations that require an active
	// instance when the instance has already transitioned to Removed or
	// SaveCleared.
	ErrAlreadyRemoved = errors.New("status: instance already removed")

	// ErrInstanceNotFound is returned when a handle or stack/group lookup
	// matches nothing in the set.
	ErrInstanceNotFound = errors.New("status: instance not found")
)
