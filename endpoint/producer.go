// File: endpoint/producer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Simulated acquisition interrupt: one packet of encoded samples per
// packet period, dropped (never waited on) when the ring is full.

package endpoint

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/momentics/epring/affinity"
	"github.com/momentics/epring/api"
)

// SampleSource fills dst with unsigned 12-bit samples.
type SampleSource interface {
	Next(dst []uint16)
}

// SineSource generates a sine tone centred on the ADC midpoint.
type SineSource struct {
	Freq      float64 // Hz
	Rate      uint32  // samples per second
	Amplitude float64 // 0..2047
	phase     float64
}

// Next implements SampleSource.
func (s *SineSource) Next(dst []uint16) {
	step := 2 * math.Pi * s.Freq / float64(s.Rate)
	for i := range dst {
		v := sampleOffset + s.Amplitude*math.Sin(s.phase)
		dst[i] = uint16(math.Round(v)) & 0x0fff
		s.phase += step
		if s.phase >= 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
	}
}

// PacketPeriod is the time it takes the ADC to fill one record.
func (e *Endpoint) PacketPeriod() time.Duration {
	return time.Duration(SamplesPerRecord) * time.Second / time.Duration(e.cfg.SampleRate)
}

// Pump reads one packet worth of samples from src and delivers it.
// A full ring is reported through the status, not the error.
func (e *Endpoint) Pump(src SampleSource) (api.Status, error) {
	var samples [SamplesPerRecord]uint16
	var packet [api.RecordSize]byte
	src.Next(samples[:])
	return e.Deliver(EncodeSamples(packet[:0], samples[:]))
}

// RunProducer pumps src once per packet period until ctx is done. When
// ProducerCPU is set the producer thread is pinned to that CPU first.
func (e *Endpoint) RunProducer(ctx context.Context, src SampleSource) error {
	if cpu := e.cfg.ProducerCPU; cpu >= 0 {
		release, err := affinity.PinCurrent(cpu)
		if err != nil {
			e.logger.Printf("endpoint: producer not pinned: %v", err)
		} else {
			defer release()
			e.logger.Printf("endpoint: producer pinned to cpu %d", cpu)
		}
	}

	ticker := time.NewTicker(e.PacketPeriod())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := e.Pump(src); err != nil {
				return fmt.Errorf("endpoint: producer stopped: %w", err)
			}
		}
	}
}
