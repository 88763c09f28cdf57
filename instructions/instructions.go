// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import (
	"github.com/near/borsh-go"

	"github.com/ava-labs/counterprogram/consts"
)

// Instruction is the closed set of operations this program accepts. The
// wire form is a single type ID byte followed by the borsh-encoded
// payload of the variant.
type Instruction interface {
	GetTypeID() uint8

	// Marshal returns the canonical wire bytes for the instruction. This
	// is the client-side half of the codec; the processor only decodes.
	Marshal() ([]byte, error)
}

var (
	_ Instruction = (*Initialize)(nil)
	_ Instruction = (*Increment)(nil)
)

// Initialize creates and funds the counter account, then stores
// [InitialValue] in it.
type Initialize struct {
	InitialValue uint64 `json:"initialValue"`
}

func (*Initialize) GetTypeID() uint8 {
	return consts.InitializeID
}

func (i *Initialize) Marshal() ([]byte, error) {
	payload, err := borsh.Serialize(*i)
	if err != nil {
		return nil, err
	}
	return append([]byte{consts.InitializeID}, payload...), nil
}

// Increment adds one to the stored counter value.
type Increment struct{}

func (*Increment) GetTypeID() uint8 {
	return consts.IncrementID
}

func (*Increment) Marshal() ([]byte, error) {
	return []byte{consts.IncrementID}, nil
}

// Unmarshal decodes [data] into one of the instruction variants. It is a
// pure function with no side effects and returns no partial results.
func Unmarshal(data []byte) (Instruction, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInstruction
	}
	typeID, payload := data[0], data[1:]
	switch typeID {
	case consts.InitializeID:
		// The payload is exactly one little-endian uint64.
		if len(payload) != consts.CounterStateLen {
			return nil, ErrMalformedInstruction
		}
		instr := &Initialize{}
		if err := borsh.Deserialize(instr, payload); err != nil {
			return nil, ErrMalformedInstruction
		}
		return instr, nil
	case consts.IncrementID:
		// Trailing bytes carry no meaning for increment and are ignored.
		return &Increment{}, nil
	default:
		return nil, ErrUnknownInstruction
	}
}
