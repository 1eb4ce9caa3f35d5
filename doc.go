// Copyright 2026 The flagfield Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package flagfield implements a fixed-capacity set of boolean flags packed
// into a byte array, conceptually similar to []bool but 8x smaller and with
// set-algebra operations.
//
// A Field is created with a fixed capacity and addressed either by plain
// integer index or by a caller-defined enumeration:
//
//	type WindowFlag uint8
//
//	const (
//		Initialized WindowFlag = iota
//		Closed
//		Minimized
//		Fullscreen
//		maxWindowFlag
//	)
//
//	f := flagfield.New[WindowFlag](int(maxWindowFlag))
//	err := f.Set(Initialized, Fullscreen)
//
// Flag i lives at bit i%8 of byte i/8; index 0 is the least-significant bit
// of byte 0. Capacities that are not a multiple of 8 leave unused high bits
// in the final byte. Those padding bits are ignored by every comparison,
// population count, and whole-field query, even if raw-byte writes through
// Raw or SetBytes dirty them.
//
// By default every index-taking operation validates its arguments and fails
// with ErrOutOfRange. Building with the "flagfield_unchecked" tag compiles
// the checks out; out-of-range indexes then fall through to the runtime's
// own slice bounds checking.
//
// A Field is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
package flagfield
