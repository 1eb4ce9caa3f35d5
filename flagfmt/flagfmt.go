// Copyright 2026 The flagfield Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package flagfmt renders flag fields as human-readable strings. It is a
// pure consumer of the query surface: rendering uses only Size and IsSet,
// never the backing bytes, so any type satisfying Queryable formats the
// same way.
package flagfmt

import (
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Queryable is the slice of the flagfield.Field API that rendering needs.
type Queryable[F constraints.Integer] interface {
	Size() int
	IsSet(flag F) (bool, error)
}

const (
	setGlyph   = '1'
	unsetGlyph = '0'
)

// Format renders q as `FlagSet<size, label>: [0101 0000]`, one glyph per
// flag position in index order, grouped in fours. An empty label renders
// as `FlagSet<size>: [...]`.
func Format[F constraints.Integer](q Queryable[F], label string) string {
	size := q.Size()
	var sb strings.Builder
	sb.Grow(16 + len(label) + size + size/4)
	sb.WriteString("FlagSet<")
	sb.WriteString(strconv.Itoa(size))
	if label != "" {
		sb.WriteString(", ")
		sb.WriteString(label)
	}
	sb.WriteString(">: [")
	for i := 0; i < size; i++ {
		if i != 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}
		// i < Size() by construction, so IsSet cannot fail here
		if set, _ := q.IsSet(F(i)); set {
			sb.WriteByte(setGlyph)
		} else {
			sb.WriteByte(unsetGlyph)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// TypeLabel derives a display label from the name of the flag index type,
// e.g. "WindowFlag" for a `type WindowFlag uint8` enumeration. Unnamed
// types ("int", "uint8") yield their kind name.
func TypeLabel[F constraints.Integer]() string {
	var zero F
	return reflect.TypeOf(zero).Name()
}
