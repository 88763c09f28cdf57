// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalInitialize(t *testing.T) {
	require := require.New(t)

	data := []byte{0}
	data = binary.LittleEndian.AppendUint64(data, 42)

	instr, err := Unmarshal(data)
	require.NoError(err)
	init, ok := instr.(*Initialize)
	require.True(ok)
	require.Equal(uint64(42), init.InitialValue)
}

func TestUnmarshalInitializeBadLength(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"NoPayload", []byte{0}},
		{"ShortPayload", []byte{0, 1, 2, 3}},
		{"SevenBytes", []byte{0, 1, 2, 3, 4, 5, 6, 7}},
		{"NineBytes", []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal(tt.data)
			require.ErrorIs(t, err, ErrMalformedInstruction)
		})
	}
}

func TestUnmarshalIncrement(t *testing.T) {
	require := require.New(t)

	// Trailing bytes are ignored for increment.
	for _, data := range [][]byte{
		{1},
		{1, 0xff},
		{1, 0, 0, 0, 0, 0, 0, 0, 0},
	} {
		instr, err := Unmarshal(data)
		require.NoError(err)
		require.IsType(&Increment{}, instr)
	}
}

func TestUnmarshalEmpty(t *testing.T) {
	_, err := Unmarshal(nil)
	require.ErrorIs(t, err, ErrEmptyInstruction)

	_, err = Unmarshal([]byte{})
	require.ErrorIs(t, err, ErrEmptyInstruction)
}

func TestUnmarshalUnknownTypeID(t *testing.T) {
	for _, typeID := range []byte{2, 3, 0x7f, 0xff} {
		_, err := Unmarshal([]byte{typeID})
		require.ErrorIs(t, err, ErrUnknownInstruction)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	require := require.New(t)

	init := &Initialize{InitialValue: 1}
	data, err := init.Marshal()
	require.NoError(err)
	require.Equal([]byte{0, 1, 0, 0, 0, 0, 0, 0, 0}, data)

	instr, err := Unmarshal(data)
	require.NoError(err)
	require.Equal(init, instr)

	incr := &Increment{}
	data, err = incr.Marshal()
	require.NoError(err)
	require.Equal([]byte{1}, data)

	instr, err = Unmarshal(data)
	require.NoError(err)
	require.Equal(incr, instr)
}
