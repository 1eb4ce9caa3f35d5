// Copyright 2026 The flagfield Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build !flagfield_unchecked

package flagfield

import "fmt"

// Default build: every index-taking operation validates its arguments and
// fails with ErrOutOfRange before touching any state. Build with the
// "flagfield_unchecked" tag to compile the checks out.

const validated = true

func (f *Field[F]) checkFlag(op string, flag F) error {
	if flag < 0 || uint64(flag) >= uint64(f.size) {
		return fmt.Errorf("%s: flag %d: %w", op, flag, ErrOutOfRange)
	}
	return nil
}

func (f *Field[F]) checkFlags(op string, flags []F) error {
	for _, flag := range flags {
		if err := f.checkFlag(op, flag); err != nil {
			return err
		}
	}
	return nil
}
