// Copyright 2025 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ribbon

import "errors"

// All errors reported by this package are programming-contract violations
// by the caller, detected eagerly: a failed call leaves prior state fully
// intact. Failing to find a pick intersection is a normal outcome, not an
// error.
var (
	// ErrInvalidInput indicates a malformed point sequence: empty, a flat
	// array whose length is not a positive multiple of 3, a non-finite
	// coordinate component, or a width function returning a non-finite or
	// negative value.
	ErrInvalidInput = errors.New("ribbon: invalid input")

	// ErrNotInitialized indicates Advance or Pick was called on a Buffer
	// before any successful SetPoints.
	ErrNotInitialized = errors.New("ribbon: not initialized")

	// ErrIndexOverflow indicates the point count produces vertex indices
	// that do not fit the 16-bit index buffers used for rendering.
	ErrIndexOverflow = errors.New("ribbon: index overflow")
)
