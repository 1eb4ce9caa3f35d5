// Copyright 2026 The flagfield Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package flagfield

// Op identifies the kind of mutation reported to a tracing hook.
type Op uint8

const (
	OpSet Op = iota + 1
	OpClear
	OpToggle
	OpImport
)

func (op Op) String() string {
	switch op {
	case OpSet:
		return "set"
	case OpClear:
		return "clear"
	case OpToggle:
		return "toggle"
	case OpImport:
		return "import"
	default:
		return "unknown"
	}
}

// Observe registers fn to be called at every mutation of f. Single-flag
// mutations report the flag index; whole-field mutations (SetAll, the
// *From and *With operations, SetBytes) report index -1. A nil fn removes
// the hook.
//
// The hook is for tracing and debug output only; it runs synchronously on
// the mutating goroutine and must not mutate f.
func (f *Field[F]) Observe(fn func(op Op, index int)) {
	f.trace = fn
}

func (f *Field[F]) note(op Op, index int) {
	if f.trace != nil {
		f.trace(op, index)
	}
}
