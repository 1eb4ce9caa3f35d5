// Copyright 2026 The flagfield Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build flagfield_unchecked

package flagfield

// Unchecked build: index validation is compiled out entirely. Out-of-range
// flag indexes are unspecified; at worst they trip the runtime's own slice
// bounds check and panic, never a silent out-of-bounds write.

const validated = false

func (f *Field[F]) checkFlag(op string, flag F) error {
	return nil
}

func (f *Field[F]) checkFlags(op string, flags []F) error {
	return nil
}
