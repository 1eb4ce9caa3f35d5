// Copyright 2026 The flagfield Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package flagfield

import "errors"

var (
	// ErrOutOfRange is returned when a flag index is negative or at least
	// Size(). Failed operations have no side effect.
	ErrOutOfRange = errors.New("flag index out of range")

	// ErrBadLength is returned by SetBytes when the supplied byte slice
	// does not match SizeBytes() exactly.
	ErrBadLength = errors.New("byte length mismatch")
)
