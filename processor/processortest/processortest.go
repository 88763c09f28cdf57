// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package processortest

import (
	"context"
	"testing"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/counterprogram/processor"
	"github.com/ava-labs/counterprogram/runtime"
)

// ProcessTest is a single parameterized test. It dispatches one call
// through the processor and checks that all assertions pass.
type ProcessTest struct {
	Name string

	Program  codec.Address
	Accounts []*runtime.Account
	Data     []byte

	ExpectedErr error

	Assertion func(*testing.T)
}

// Run executes the [ProcessTest] against [p] and makes sure all
// assertions pass.
func (test *ProcessTest) Run(ctx context.Context, t *testing.T, p *processor.Processor) {
	t.Run(test.Name, func(t *testing.T) {
		require := require.New(t)

		err := p.Process(ctx, test.Program, test.Accounts, test.Data)
		require.ErrorIs(err, test.ExpectedErr)

		if test.Assertion != nil {
			test.Assertion(t)
		}
	})
}
