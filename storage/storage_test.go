// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounterRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, count := range []uint64{0, 1, 42, math.MaxUint64} {
		data := make([]byte, 8)
		require.NoError(WriteCounter(data, count))

		got, err := ReadCounter(data)
		require.NoError(err)
		require.Equal(count, got)
	}
}

func TestReadCounterLittleEndian(t *testing.T) {
	require := require.New(t)

	data := binary.LittleEndian.AppendUint64(nil, 0x0102030405060708)
	got, err := ReadCounter(data)
	require.NoError(err)
	require.Equal(uint64(0x0102030405060708), got)
}

func TestReadCounterTrailingBytesIgnored(t *testing.T) {
	require := require.New(t)

	data := binary.LittleEndian.AppendUint64(nil, 7)
	data = append(data, 0xde, 0xad, 0xbe, 0xef)

	got, err := ReadCounter(data)
	require.NoError(err)
	require.Equal(uint64(7), got)
}

func TestReadCounterTruncated(t *testing.T) {
	for _, data := range [][]byte{nil, {}, {1}, {1, 2, 3, 4, 5, 6, 7}} {
		_, err := ReadCounter(data)
		require.ErrorIs(t, err, ErrStateTruncated)
	}
}

func TestWriteCounterLeavesTrailingBytes(t *testing.T) {
	require := require.New(t)

	data := make([]byte, 12)
	data[8], data[9], data[10], data[11] = 0xde, 0xad, 0xbe, 0xef
	require.NoError(WriteCounter(data, 9))

	require.Equal(binary.LittleEndian.AppendUint64(nil, 9), data[:8])
	require.Equal([]byte{0xde, 0xad, 0xbe, 0xef}, data[8:])
}

func TestWriteCounterInsufficientSpace(t *testing.T) {
	for _, data := range [][]byte{nil, {}, make([]byte, 7)} {
		require.ErrorIs(t, WriteCounter(data, 1), ErrInsufficientSpace)
	}
}
