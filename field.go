// Copyright 2026 The flagfield Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package flagfield

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/GandalphSnaxx/flagfield/internal/bitops"
)

// Field is a fixed-capacity bit-flag container. The type parameter F is the
// flag index domain: a plain integer type, or a caller-defined enumeration
// whose values run 0..Size()-1. F labels indexes only; the capacity is fixed
// at construction and never changes.
//
// The zero value of Field is not usable; construct one with New, FromFlags,
// or Clone.
type Field[F constraints.Integer] struct {
	bits  []byte
	size  int
	trace func(op Op, index int)
}

// Strict reports whether this build validates flag indexes. It is false
// when the package is built with the "flagfield_unchecked" tag.
func Strict() bool { return validated }

// New returns an empty Field holding size flags, all cleared. It panics if
// size < 1.
func New[F constraints.Integer](size int) *Field[F] {
	if size < 1 {
		panic(fmt.Sprintf("flagfield: invalid size %d", size))
	}
	return &Field[F]{
		bits: make([]byte, (size+7)/8),
		size: size,
	}
}

// FromFlags returns a Field of the given size with each listed flag set.
// Order is irrelevant and duplicates are harmless.
func FromFlags[F constraints.Integer](size int, flags ...F) (*Field[F], error) {
	f := New[F](size)
	if err := f.Set(flags...); err != nil {
		return nil, err
	}
	return f, nil
}

// Clone returns an independent copy of f. The tracing hook, if any, is not
// carried over.
func (f *Field[F]) Clone() *Field[F] {
	c := &Field[F]{
		bits: make([]byte, len(f.bits)),
		size: f.size,
	}
	copy(c.bits, f.bits)
	return c
}

// Size returns the number of flags the Field holds.
func (f *Field[F]) Size() int { return f.size }

// SizeBytes returns the length of the backing byte array, ceil(Size()/8).
func (f *Field[F]) SizeBytes() int { return len(f.bits) }

// tail masks the valid bits of the final backing byte.
func (f *Field[F]) tail() byte { return bitops.TailMask(f.size) }

func (f *Field[F]) mustMatch(op string, other *Field[F]) {
	if f.size != other.size {
		panic(fmt.Sprintf("flagfield: %s: size mismatch (%d vs %d)", op, f.size, other.size))
	}
}

// SetAll sets every flag.
func (f *Field[F]) SetAll() {
	bitops.Fill(f.bits, 0xFF)
	f.note(OpSet, -1)
}

// Set sets each listed flag. On error no flag has been touched.
func (f *Field[F]) Set(flags ...F) error {
	if err := f.checkFlags("set", flags); err != nil {
		return err
	}
	for _, i := range flags {
		f.bits[int(i)/8] |= 1 << (int(i) % 8)
		f.note(OpSet, int(i))
	}
	return nil
}

// SetFrom sets every flag that is set in other. It panics if the two Fields
// differ in size.
func (f *Field[F]) SetFrom(other *Field[F]) {
	f.mustMatch("set from", other)
	for i, b := range other.bits {
		f.bits[i] |= b
	}
	f.note(OpSet, -1)
}

// SetOnly clears every flag and then sets the one given.
func (f *Field[F]) SetOnly(flag F) error {
	if err := f.checkFlag("set only", flag); err != nil {
		return err
	}
	bitops.Fill(f.bits, 0)
	f.bits[int(flag)/8] |= 1 << (int(flag) % 8)
	f.note(OpSet, int(flag))
	return nil
}

// ClearAll clears every flag.
func (f *Field[F]) ClearAll() {
	bitops.Fill(f.bits, 0)
	f.note(OpClear, -1)
}

// Clear clears each listed flag. On error no flag has been touched.
func (f *Field[F]) Clear(flags ...F) error {
	if err := f.checkFlags("clear", flags); err != nil {
		return err
	}
	for _, i := range flags {
		f.bits[int(i)/8] &^= 1 << (int(i) % 8)
		f.note(OpClear, int(i))
	}
	return nil
}

// ClearFrom clears every flag that is set in other. It panics if the two
// Fields differ in size.
func (f *Field[F]) ClearFrom(other *Field[F]) {
	f.mustMatch("clear from", other)
	for i, b := range other.bits {
		f.bits[i] &^= b
	}
	f.note(OpClear, -1)
}

// ToggleAll flips every flag.
func (f *Field[F]) ToggleAll() {
	for i := range f.bits {
		f.bits[i] ^= 0xFF
	}
	f.note(OpToggle, -1)
}

// Toggle flips each listed flag. On error no flag has been touched.
func (f *Field[F]) Toggle(flags ...F) error {
	if err := f.checkFlags("toggle", flags); err != nil {
		return err
	}
	for _, i := range flags {
		f.bits[int(i)/8] ^= 1 << (int(i) % 8)
		f.note(OpToggle, int(i))
	}
	return nil
}

// ToggleFrom flips every flag that is set in other. It panics if the two
// Fields differ in size.
func (f *Field[F]) ToggleFrom(other *Field[F]) {
	f.mustMatch("toggle from", other)
	for i, b := range other.bits {
		f.bits[i] ^= b
	}
	f.note(OpToggle, -1)
}

// IsSet reports whether the given flag is set.
func (f *Field[F]) IsSet(flag F) (bool, error) {
	if err := f.checkFlag("is set", flag); err != nil {
		return false, err
	}
	return f.bits[int(flag)/8]&(1<<(int(flag)%8)) != 0, nil
}

// IsUnset reports whether the given flag is clear.
func (f *Field[F]) IsUnset(flag F) (bool, error) {
	set, err := f.IsSet(flag)
	if err != nil {
		return false, err
	}
	return !set, nil
}

// AllSet reports whether every flag is set. Padding bits in the final byte
// are ignored.
func (f *Field[F]) AllSet() bool {
	last := len(f.bits) - 1
	for _, b := range f.bits[:last] {
		if b != 0xFF {
			return false
		}
	}
	m := f.tail()
	return f.bits[last]&m == m
}

// NoneSet reports whether every flag is clear. Padding bits in the final
// byte are ignored.
func (f *Field[F]) NoneSet() bool {
	last := len(f.bits) - 1
	for _, b := range f.bits[:last] {
		if b != 0 {
			return false
		}
	}
	return f.bits[last]&f.tail() == 0
}

// ContainsAll reports whether every flag set in other is also set in f:
// the subset relation, not equality. It panics if the two Fields differ in
// size.
func (f *Field[F]) ContainsAll(other *Field[F]) bool {
	f.mustMatch("contains all", other)
	last := len(f.bits) - 1
	for i := 0; i < last; i++ {
		if other.bits[i]&^f.bits[i] != 0 {
			return false
		}
	}
	m := f.tail()
	return other.bits[last]&m&^f.bits[last] == 0
}

// ContainsNone reports whether no flag set in other is set in f. It panics
// if the two Fields differ in size.
func (f *Field[F]) ContainsNone(other *Field[F]) bool {
	f.mustMatch("contains none", other)
	last := len(f.bits) - 1
	for i := 0; i < last; i++ {
		if f.bits[i]&other.bits[i] != 0 {
			return false
		}
	}
	return f.bits[last]&other.bits[last]&f.tail() == 0
}

// Count returns the number of set flags. The final byte is masked to the
// valid bit range before counting, so padding never inflates the result.
func (f *Field[F]) Count() int {
	return bitops.PopCount(f.bits, f.tail())
}
