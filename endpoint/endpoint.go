// File: endpoint/endpoint.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Endpoint owns one record ring and its storage and exposes the two sides
// of the hand-off: Deliver for the interrupt/producer context and Poll for
// the processing loop. Nothing here blocks.

package endpoint

import (
	"fmt"
	"log"

	"github.com/momentics/epring/api"
	"github.com/momentics/epring/control"
	"github.com/momentics/epring/core/concurrency"
)

// Endpoint couples a record ring with its counters.
type Endpoint struct {
	ring    concurrency.RecordRing
	storage []api.Record
	cfg     control.Config
	metrics *control.Metrics
	probes  *control.DebugProbes
	logger  *log.Logger
}

// Option configures an Endpoint.
type Option func(*Endpoint)

// WithLogger sets the logger used by the producer loop.
func WithLogger(l *log.Logger) Option {
	return func(e *Endpoint) { e.logger = l }
}

// WithMetrics shares a counter set, e.g. with the stream transport.
func WithMetrics(m *control.Metrics) Option {
	return func(e *Endpoint) { e.metrics = m }
}

// WithStorage supplies caller-owned backing storage. Its length must equal
// the configured RingCapacity.
func WithStorage(storage []api.Record) Option {
	return func(e *Endpoint) { e.storage = storage }
}

// New builds an Endpoint from cfg.
func New(cfg control.Config, opts ...Option) (*Endpoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Endpoint{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.storage == nil {
		e.storage = make([]api.Record, cfg.RingCapacity)
	}
	if e.metrics == nil {
		e.metrics = control.NewMetrics()
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	if err := e.ring.Init(e.storage, cfg.RingCapacity); err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}

	e.probes = control.NewDebugProbes()
	control.RegisterPlatformProbes(e.probes)
	e.probes.RegisterProbe("ring.capacity", func() any { return e.ring.Cap() })
	e.probes.RegisterProbe("ring.used", func() any { return e.ring.SpaceUsed() })
	e.probes.RegisterProbe("ring.available", func() any { return e.ring.SpaceAvailable() })
	return e, nil
}

// Deliver queues one packet. It is the producer side and must only be
// called from a single goroutine. Packets longer than api.RecordSize are
// rejected rather than truncated and nothing is queued; a full ring drops
// the packet and counts an overrun.
func (e *Endpoint) Deliver(packet []byte) (api.Status, error) {
	if len(packet) > api.RecordSize {
		return api.StatusRejected, api.WrapError(api.ErrCodeInvalidArgument, api.ErrInvalidArgument).
			WithContext("packet", len(packet)).
			WithContext("max", api.RecordSize)
	}
	var rec api.Record
	rec.SetPayload(packet)
	st := e.ring.Write(rec)
	if st == api.StatusFull {
		e.metrics.RecordOverrun()
		return st, nil
	}
	e.metrics.RecordWrite(e.ring.SpaceUsed())
	return st, nil
}

// Poll drains up to max records (all currently queued if max <= 0) and
// passes each to fn. The record is only valid for the duration of the call.
// Poll is the consumer side and must only be called from a single goroutine.
func (e *Endpoint) Poll(max int, fn func(*api.Record)) int {
	if max <= 0 {
		max = e.ring.SpaceUsed()
	}
	var rec api.Record
	n := 0
	for n < max && e.ring.Read(&rec) == api.StatusOK {
		e.metrics.RecordRead()
		fn(&rec)
		n++
	}
	if n == 0 {
		e.metrics.RecordEmptyPoll()
	}
	return n
}

// Ring exposes the underlying ring contract.
func (e *Endpoint) Ring() api.Ring[api.Record] { return &e.ring }

// Config returns the configuration the endpoint was built with.
func (e *Endpoint) Config() control.Config { return e.cfg }

// Metrics returns the shared counter set.
func (e *Endpoint) Metrics() *control.Metrics { return e.metrics }

// Stats returns a snapshot of the ring counters.
func (e *Endpoint) Stats() control.MetricsSnapshot { return e.metrics.Snapshot() }

// Probes returns the debug probe registry.
func (e *Endpoint) Probes() *control.DebugProbes { return e.probes }
