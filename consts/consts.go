// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	// Name is the human-readable identifier for this program.
	Name = "counterprogram"

	// CounterStateLen is the serialized size of the counter state: a
	// single little-endian uint64 with no framing.
	CounterStateLen = 8
)

// Instruction type IDs. The leading byte of every instruction buffer.
const (
	InitializeID uint8 = 0
	IncrementID  uint8 = 1
)
