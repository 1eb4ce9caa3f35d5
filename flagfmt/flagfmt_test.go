// Copyright 2026 The flagfield Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package flagfmt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GandalphSnaxx/flagfield"
)

type windowFlag uint8

func TestFormat(t *testing.T) {
	f, err := flagfield.FromFlags[int](8, 1, 3)
	require.NoError(t, err)
	require.Equal(t, "FlagSet<8>: [0101 0000]", Format[int](f, ""))

	f.SetAll()
	require.Equal(t, "FlagSet<8>: [1111 1111]", Format[int](f, ""))
}

func TestFormatLabel(t *testing.T) {
	f := flagfield.New[windowFlag](6)
	require.NoError(t, f.Set(0, 5))
	require.Equal(t, "FlagSet<6, windowFlag>: [1000 01]", Format[windowFlag](f, TypeLabel[windowFlag]()))
}

func TestFormatGrouping(t *testing.T) {
	for _, tc := range []struct {
		size int
		set  []int
		want string
	}{
		{1, nil, "FlagSet<1>: [0]"},
		{4, []int{0}, "FlagSet<4>: [1000]"},
		{5, []int{4}, "FlagSet<5>: [0000 1]"},
		{12, []int{0, 11}, "FlagSet<12>: [1000 0000 0001]"},
	} {
		f, err := flagfield.FromFlags[int](tc.size, tc.set...)
		require.NoError(t, err)
		require.Equal(t, tc.want, Format[int](f, ""))
	}
}

func TestTypeLabel(t *testing.T) {
	require.Equal(t, "windowFlag", TypeLabel[windowFlag]())
	require.Equal(t, "int", TypeLabel[int]())
	require.Equal(t, "uint8", TypeLabel[uint8]())
}

func TestFormatIgnoresPadding(t *testing.T) {
	f := flagfield.New[int](6)
	f.Raw()[0] |= 0b1100_0000 // garbage past the 6 valid flags
	require.Equal(t, "FlagSet<6>: [0000 00]", Format[int](f, ""))
}
