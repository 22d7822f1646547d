// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Ring traffic counters. Each counter is written from exactly one side of
// the ring, so the producer and consumer never contend on the same word.

package control

import (
	"sync/atomic"
	"time"
)

// Metrics counts ring outcomes for one endpoint.
type Metrics struct {
	writes      atomic.Uint64 // producer
	overruns    atomic.Uint64 // producer
	highWater   atomic.Uint64 // producer
	reads       atomic.Uint64 // consumer
	emptyPolls  atomic.Uint64 // consumer
	streamBytes atomic.Uint64 // consumer
	started     time.Time
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Writes      uint64
	Overruns    uint64
	HighWater   uint64
	Reads       uint64
	EmptyPolls  uint64
	StreamBytes uint64
	Uptime      time.Duration
}

// NewMetrics creates a zeroed counter set.
func NewMetrics() *Metrics {
	return &Metrics{started: time.Now()}
}

// RecordWrite counts an accepted write and tracks peak occupancy.
func (m *Metrics) RecordWrite(used int) {
	m.writes.Add(1)
	u := uint64(used)
	if u > m.highWater.Load() {
		m.highWater.Store(u)
	}
}

// RecordOverrun counts a write refused because the ring was full.
func (m *Metrics) RecordOverrun() { m.overruns.Add(1) }

// RecordRead counts a record handed to the consumer.
func (m *Metrics) RecordRead() { m.reads.Add(1) }

// RecordEmptyPoll counts a poll that found nothing to read.
func (m *Metrics) RecordEmptyPoll() { m.emptyPolls.Add(1) }

// RecordStreamed counts PCM bytes delivered to a client.
func (m *Metrics) RecordStreamed(n int) { m.streamBytes.Add(uint64(n)) }

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Writes:      m.writes.Load(),
		Overruns:    m.overruns.Load(),
		HighWater:   m.highWater.Load(),
		Reads:       m.reads.Load(),
		EmptyPolls:  m.emptyPolls.Load(),
		StreamBytes: m.streamBytes.Load(),
		Uptime:      time.Since(m.started),
	}
}

// Map renders the snapshot as a flat key/value set for debug dumps.
func (s MetricsSnapshot) Map() map[string]any {
	return map[string]any{
		"ring.writes":      s.Writes,
		"ring.overruns":    s.Overruns,
		"ring.high_water":  s.HighWater,
		"ring.reads":       s.Reads,
		"ring.empty_polls": s.EmptyPolls,
		"stream.bytes":     s.StreamBytes,
		"uptime":           s.Uptime,
	}
}
