// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/near/borsh-go"

	"github.com/ava-labs/counterprogram/consts"
)

// State
//   [account data] => count (8 bytes, little-endian, no header/footer)

// Counter is the durable account state.
type Counter struct {
	Count uint64 `json:"count"`
}

// ReadCounter decodes the counter stored at the front of [data]. Regions
// longer than the serialized state are tolerated and the trailing bytes
// ignored. A freshly allocated zeroed region decodes to a zero counter;
// there is no validity tag distinguishing the two.
func ReadCounter(data []byte) (uint64, error) {
	if len(data) < consts.CounterStateLen {
		return 0, ErrStateTruncated
	}
	c := Counter{}
	if err := borsh.Deserialize(&c, data[:consts.CounterStateLen]); err != nil {
		return 0, err
	}
	return c.Count, nil
}

// WriteCounter encodes [count] into the first 8 bytes of [data], leaving
// any remaining capacity untouched.
func WriteCounter(data []byte, count uint64) error {
	if len(data) < consts.CounterStateLen {
		return ErrInsufficientSpace
	}
	raw, err := borsh.Serialize(Counter{Count: count})
	if err != nil {
		return err
	}
	copy(data[:consts.CounterStateLen], raw)
	return nil
}
