// Copyright 2026 The flagfield Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package flagfield

// Set algebra over same-size Fields. Each operation comes in two shapes: a
// value form returning a fresh Field, and a *With/in-place form that mutates
// the receiver and returns it for chaining. Mixing sizes is a programmer
// error and panics.

// Intersect returns a new Field holding the flags set in both f and other.
func (f *Field[F]) Intersect(other *Field[F]) *Field[F] {
	return f.Clone().IntersectWith(other)
}

// IntersectWith keeps only the flags also set in other, returning f.
func (f *Field[F]) IntersectWith(other *Field[F]) *Field[F] {
	f.mustMatch("intersect", other)
	for i, b := range other.bits {
		f.bits[i] &= b
	}
	f.note(OpClear, -1)
	return f
}

// Union returns a new Field holding the flags set in either f or other.
func (f *Field[F]) Union(other *Field[F]) *Field[F] {
	return f.Clone().UnionWith(other)
}

// UnionWith adds the flags set in other, returning f.
func (f *Field[F]) UnionWith(other *Field[F]) *Field[F] {
	f.mustMatch("union", other)
	for i, b := range other.bits {
		f.bits[i] |= b
	}
	f.note(OpSet, -1)
	return f
}

// SymmetricDifference returns a new Field holding the flags set in exactly
// one of f and other.
func (f *Field[F]) SymmetricDifference(other *Field[F]) *Field[F] {
	return f.Clone().ToggleWith(other)
}

// ToggleWith flips every flag that is set in other, returning f.
func (f *Field[F]) ToggleWith(other *Field[F]) *Field[F] {
	f.mustMatch("toggle", other)
	for i, b := range other.bits {
		f.bits[i] ^= b
	}
	f.note(OpToggle, -1)
	return f
}

// Difference returns a new Field holding the flags set in f but not in
// other.
func (f *Field[F]) Difference(other *Field[F]) *Field[F] {
	return f.Clone().Subtract(other)
}

// Subtract clears every flag that is set in other, returning f.
func (f *Field[F]) Subtract(other *Field[F]) *Field[F] {
	f.mustMatch("subtract", other)
	for i, b := range other.bits {
		f.bits[i] &^= b
	}
	f.note(OpClear, -1)
	return f
}

// Equal reports whether f and other hold identical flags across all Size()
// positions. Padding bits are ignored. It panics if the two Fields differ
// in size.
func (f *Field[F]) Equal(other *Field[F]) bool {
	f.mustMatch("equal", other)
	last := len(f.bits) - 1
	for i := 0; i < last; i++ {
		if f.bits[i] != other.bits[i] {
			return false
		}
	}
	m := f.tail()
	return f.bits[last]&m == other.bits[last]&m
}

// NotEqual is the negation of Equal.
func (f *Field[F]) NotEqual(other *Field[F]) bool {
	return !f.Equal(other)
}

// Less reports whether f has strictly fewer set flags than other.
//
// The ordering comparisons are defined on cardinality alone, not on
// content: two Fields with the same Count() but different flags tie under
// Less/Greater even though Equal reports them unequal. This asymmetry is
// deliberate.
func (f *Field[F]) Less(other *Field[F]) bool {
	f.mustMatch("less", other)
	return f.Count() < other.Count()
}

// LessOrEqual reports whether f has at most as many set flags as other.
func (f *Field[F]) LessOrEqual(other *Field[F]) bool {
	return !f.Greater(other)
}

// Greater reports whether f has strictly more set flags than other.
func (f *Field[F]) Greater(other *Field[F]) bool {
	f.mustMatch("greater", other)
	return f.Count() > other.Count()
}

// GreaterOrEqual reports whether f has at least as many set flags as other.
func (f *Field[F]) GreaterOrEqual(other *Field[F]) bool {
	return !f.Less(other)
}

// Scale returns a copy of f when keep is true and an empty Field of the
// same size when it is false.
func (f *Field[F]) Scale(keep bool) *Field[F] {
	if keep {
		return f.Clone()
	}
	return New[F](f.size)
}

// ScaleWith clears f when keep is false and leaves it untouched when true,
// returning f.
func (f *Field[F]) ScaleWith(keep bool) *Field[F] {
	if !keep {
		f.ClearAll()
	}
	return f
}
