// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package processor

import (
	"github.com/ava-labs/hypersdk/codec"

	"github.com/ava-labs/counterprogram/runtime"
)

// resolveInitialize maps the ordered account list to the roles the
// initialize path requires: target (the new counter account), funder
// (the payer), and the account-creation service, which rides along in
// third position for the delegated sub-call. Signature requirements on
// target and funder are enforced by the creation service itself.
func resolveInitialize(accounts []*runtime.Account) (*runtime.Account, *runtime.Account, error) {
	if len(accounts) < 3 {
		return nil, nil, ErrMissingAccount
	}
	return accounts[0], accounts[1], nil
}

// resolveIncrement requires a single target account owned by the
// executing program. The host only guarantees that the owning program may
// write an account's data; rejecting foreign-owned targets here is the
// sole authorization check in the program.
func resolveIncrement(program codec.Address, accounts []*runtime.Account) (*runtime.Account, error) {
	if len(accounts) < 1 {
		return nil, ErrMissingAccount
	}
	target := accounts[0]
	if target.Owner != program {
		return nil, ErrNotOwner
	}
	return target, nil
}
