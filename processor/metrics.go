// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package processor

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	processed   prometheus.Counter
	initialized prometheus.Counter
	incremented prometheus.Counter
	rejected    prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		processed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "counterprogram",
			Name:      "instructions_processed",
			Help:      "number of instructions dispatched to the processor",
		}),
		initialized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "counterprogram",
			Name:      "counters_initialized",
			Help:      "number of counter accounts initialized",
		}),
		incremented: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "counterprogram",
			Name:      "counters_incremented",
			Help:      "number of successful increments",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "counterprogram",
			Name:      "instructions_rejected",
			Help:      "number of instructions rejected with an error",
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.processed),
		r.Register(m.initialized),
		r.Register(m.incremented),
		r.Register(m.rejected),
	)
	return m, errs.Err
}
