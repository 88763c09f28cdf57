// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtimetest

import "errors"

var (
	ErrAccountExists     = errors.New("account already exists")
	ErrInsufficientFunds = errors.New("insufficient funds for account creation")
	ErrMissingSignature  = errors.New("required signature is missing")
)
