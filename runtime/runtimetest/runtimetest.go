// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtimetest

import (
	"context"
	"crypto/rand"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/hypersdk/codec"

	"github.com/ava-labs/counterprogram/runtime"
)

// Default rent model: a per-byte rate plus a flat charge covering the
// host's fixed per-account overhead.
const (
	defaultRentPerByte uint64 = 6_960
	defaultRentBase    uint64 = 128 * defaultRentPerByte
)

var (
	_ runtime.AccountCreator = (*Ledger)(nil)
	_ runtime.RentCalculator = (*Ledger)(nil)
)

// Ledger is an in-memory stand-in for the host's account store and its
// account-creation service. It implements both capabilities the
// processor consumes, so tests run without a real host runtime.
type Ledger struct {
	Accounts map[codec.Address]*runtime.Account

	rentBase    uint64
	rentPerByte uint64
}

func NewLedger() *Ledger {
	return &Ledger{
		Accounts:    make(map[codec.Address]*runtime.Account),
		rentBase:    defaultRentBase,
		rentPerByte: defaultRentPerByte,
	}
}

func (l *Ledger) MinimumBalance(space uint64) uint64 {
	return l.rentBase + l.rentPerByte*space
}

func (l *Ledger) CreateAccount(
	_ context.Context,
	funder *runtime.Account,
	newAccount *runtime.Account,
	lamports uint64,
	space uint64,
	owner codec.Address,
) error {
	if !funder.IsSigner || !newAccount.IsSigner {
		return ErrMissingSignature
	}
	if _, ok := l.Accounts[newAccount.Address]; ok {
		return ErrAccountExists
	}
	if funder.Lamports < lamports {
		return ErrInsufficientFunds
	}
	funder.Lamports -= lamports
	newAccount.Lamports += lamports
	newAccount.Owner = owner
	newAccount.Allocate(space)
	l.Accounts[newAccount.Address] = newAccount
	l.Accounts[funder.Address] = funder
	return nil
}

// Account returns the stored account for [addr], or
// [database.ErrNotFound] if it was never created.
func (l *Ledger) Account(addr codec.Address) (*runtime.Account, error) {
	account, ok := l.Accounts[addr]
	if !ok {
		return nil, database.ErrNotFound
	}
	return account, nil
}

// NewRandomAddress returns a random address for use during testing.
func NewRandomAddress() codec.Address {
	var addr codec.Address
	_, _ = rand.Read(addr[:])
	return addr
}

// NewSignerAccount returns a fresh unowned account with [lamports] that
// signed the current call.
func NewSignerAccount(lamports uint64) *runtime.Account {
	return runtime.NewAccount(NewRandomAddress(), codec.EmptyAddress, lamports, true, nil)
}

// NewServiceAccount returns the account-creation service's account as it
// appears in a call's account list.
func NewServiceAccount() *runtime.Account {
	return runtime.NewAccount(codec.EmptyAddress, codec.EmptyAddress, 0, false, nil)
}
