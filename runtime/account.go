// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/ava-labs/hypersdk/codec"
)

// Account is a handle to a host-managed persistent account: an
// address-identified byte region with an owning program and a funding
// balance. The host constructs one handle per supplied account for every
// call; this program never creates accounts itself, it only reads and
// writes through the handle. The host serializes any two calls that touch
// the same account, so the handle carries no locking of its own.
type Account struct {
	// Address identifies the account.
	Address codec.Address

	// Owner is the program allowed to mutate the account's data. The host
	// enforces this for writes; the processor additionally rejects
	// foreign-owned targets before reading.
	Owner codec.Address

	// Lamports is the account's funding balance.
	Lamports uint64

	// IsSigner reports whether the account cryptographically authorized
	// the current call. Signature verification happens in the host; the
	// flag arrives pre-verified.
	IsSigner bool

	data []byte
}

func NewAccount(
	address codec.Address,
	owner codec.Address,
	lamports uint64,
	isSigner bool,
	data []byte,
) *Account {
	return &Account{
		Address:  address,
		Owner:    owner,
		Lamports: lamports,
		IsSigner: isSigner,
		data:     data,
	}
}

// Data returns the account's mutable byte region. The slice aliases the
// durable region: writes through it persist for the length of the region
// and no further.
func (a *Account) Data() []byte {
	return a.data
}

// Allocate replaces the account's byte region with [space] zeroed bytes.
// Only the account-creation service resizes accounts.
func (a *Account) Allocate(space uint64) {
	a.data = make([]byte, space)
}
