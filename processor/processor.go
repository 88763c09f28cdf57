// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package processor

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/counterprogram/consts"
	"github.com/ava-labs/counterprogram/instructions"
	"github.com/ava-labs/counterprogram/runtime"
	"github.com/ava-labs/counterprogram/storage"
)

// Processor executes instructions against host-supplied accounts. It
// holds no state across calls: every durable effect lives in an
// account's byte region, and the host guarantees all-or-nothing effect
// visibility per call.
type Processor struct {
	log     logging.Logger
	creator runtime.AccountCreator
	rent    runtime.RentCalculator
	metrics *metrics
}

func New(
	log logging.Logger,
	creator runtime.AccountCreator,
	rent runtime.RentCalculator,
	registerer prometheus.Registerer,
) (*Processor, error) {
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	return &Processor{
		log:     log,
		creator: creator,
		rent:    rent,
		metrics: m,
	}, nil
}

// Process is the host entry point, invoked once per dispatched
// instruction. [program] is the identity this program executes as,
// [accounts] is the caller's ordered account list, and [data] is the raw
// instruction buffer.
func (p *Processor) Process(
	ctx context.Context,
	program codec.Address,
	accounts []*runtime.Account,
	data []byte,
) error {
	p.metrics.processed.Inc()

	instr, err := instructions.Unmarshal(data)
	if err != nil {
		p.metrics.rejected.Inc()
		return err
	}

	switch instr := instr.(type) {
	case *instructions.Initialize:
		err = p.initialize(ctx, program, accounts, instr.InitialValue)
	case *instructions.Increment:
		err = p.increment(program, accounts)
	}
	if err != nil {
		p.metrics.rejected.Inc()
	}
	return err
}

func (p *Processor) initialize(
	ctx context.Context,
	program codec.Address,
	accounts []*runtime.Account,
	initialValue uint64,
) error {
	target, funder, err := resolveInitialize(accounts)
	if err != nil {
		return err
	}

	lamports := p.rent.MinimumBalance(consts.CounterStateLen)
	if err := p.creator.CreateAccount(
		ctx,
		funder,
		target,
		lamports,
		consts.CounterStateLen,
		program,
	); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateAccount, err)
	}

	if err := storage.WriteCounter(target.Data(), initialValue); err != nil {
		return err
	}
	p.metrics.initialized.Inc()
	p.log.Info("counter initialized",
		zap.Stringer("account", target.Address),
		zap.Uint64("value", initialValue),
	)
	return nil
}

func (p *Processor) increment(program codec.Address, accounts []*runtime.Account) error {
	target, err := resolveIncrement(program, accounts)
	if err != nil {
		return err
	}

	count, err := storage.ReadCounter(target.Data())
	if err != nil {
		return err
	}
	newCount, err := smath.Add(count, uint64(1))
	if err != nil {
		// At the maximum representable value; the account is left
		// unmodified.
		return ErrCounterOverflow
	}
	if err := storage.WriteCounter(target.Data(), newCount); err != nil {
		return err
	}
	p.metrics.incremented.Inc()
	p.log.Info("counter incremented",
		zap.Stringer("account", target.Address),
		zap.Uint64("count", newCount),
	)
	return nil
}
