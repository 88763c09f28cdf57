// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"context"

	"github.com/ava-labs/hypersdk/codec"
)

// AccountCreator is the system-level account-management service. The
// processor delegates all account allocation to it: an account must
// exist, be sized, and be funded before any program may address its
// data. Implementations report failures (insufficient funds, address
// collision, missing signature) as-is; callers pass them through without
// interpreting them.
type AccountCreator interface {
	// CreateAccount allocates [space] zeroed bytes for [newAccount],
	// transfers [lamports] from [funder], and assigns ownership of the
	// new account to [owner].
	CreateAccount(
		ctx context.Context,
		funder *Account,
		newAccount *Account,
		lamports uint64,
		space uint64,
		owner codec.Address,
	) error
}

// RentCalculator exposes the host's fee model: the minimum balance an
// account of a given size must hold to persist.
type RentCalculator interface {
	MinimumBalance(space uint64) uint64
}
