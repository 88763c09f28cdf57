// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package instructions

import "errors"

var (
	ErrEmptyInstruction     = errors.New("instruction data is empty")
	ErrUnknownInstruction   = errors.New("unknown instruction type")
	ErrMalformedInstruction = errors.New("malformed instruction payload")
)
