// Copyright 2026 The flagfield Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package flagfield

import (
	"fmt"

	"github.com/dgryski/go-farm"
)

// Bytes returns a copy of the backing byte array.
func (f *Field[F]) Bytes() []byte {
	return append([]byte(nil), f.bits...)
}

// Raw returns a writable view of the backing byte array for byte-oriented
// interop. The view is exactly SizeBytes() long with no spare capacity, so
// writes through it cannot reach past the backing storage. Padding bits
// written through Raw stay invisible to comparisons and counts.
func (f *Field[F]) Raw() []byte {
	return f.bits[:len(f.bits):len(f.bits)]
}

// SetBytes overwrites the backing storage from b, whose length must equal
// SizeBytes() exactly; anything else fails with ErrBadLength and leaves f
// untouched.
func (f *Field[F]) SetBytes(b []byte) error {
	if len(b) != len(f.bits) {
		return fmt.Errorf("set bytes: got %d bytes, want %d: %w", len(b), len(f.bits), ErrBadLength)
	}
	copy(f.bits, b)
	f.note(OpImport, -1)
	return nil
}

// SetByte overwrites the single backing byte at index i, which must be
// below SizeBytes().
func (f *Field[F]) SetByte(i int, b byte) error {
	if i < 0 || i >= len(f.bits) {
		return fmt.Errorf("set byte %d: %w", i, ErrOutOfRange)
	}
	f.bits[i] = b
	f.note(OpImport, -1)
	return nil
}

// Byte returns the backing byte at index i, which must be below
// SizeBytes(). The byte index range is checked in every build mode.
func (f *Field[F]) Byte(i int) (byte, error) {
	if i < 0 || i >= len(f.bits) {
		return 0, fmt.Errorf("byte %d: %w", i, ErrOutOfRange)
	}
	return f.bits[i], nil
}

// Sum64 returns a 64-bit fingerprint of the logical flag content. Fields
// that Equal each other produce the same fingerprint regardless of garbage
// in their padding bits.
func (f *Field[F]) Sum64() uint64 {
	b := f.bits
	if m := f.tail(); b[len(b)-1]&^m != 0 {
		c := append([]byte(nil), b...)
		c[len(c)-1] &= m
		b = c
	}
	return farm.Hash64(b)
}
