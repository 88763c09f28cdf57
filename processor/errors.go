// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package processor

import "errors"

var (
	ErrMissingAccount  = errors.New("required account is missing")
	ErrNotOwner        = errors.New("target account is not owned by this program")
	ErrCounterOverflow = errors.New("counter is at its maximum value")
	ErrCreateAccount   = errors.New("account creation failed")
)
