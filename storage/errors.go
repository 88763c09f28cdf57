// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrStateTruncated    = errors.New("counter state is truncated")
	ErrInsufficientSpace = errors.New("account data too small for counter state")
)
