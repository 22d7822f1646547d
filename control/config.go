// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Pipeline configuration and its validation.

package control

import (
	"fmt"
	"time"

	"github.com/momentics/epring/api"
	"github.com/momentics/epring/core/concurrency"
)

// Config holds all configurable parameters of the endpoint pipeline.
type Config struct {
	RingCapacity int           // record slots, one of which is reserved
	SampleRate   uint32        // samples per second produced by the endpoint
	SampleBits   uint8         // ADC resolution announced to clients
	Scale        int           // left shift applied when widening samples to int16
	ListenAddr   string        // PCM stream listen address
	BatchBytes   int           // PCM bytes accumulated before a network write
	PollInterval time.Duration // consumer back-off when the ring is empty
	WriteTimeout time.Duration // per-batch network write deadline
	ProducerCPU  int           // CPU to pin the producer thread to, -1 disables
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		RingCapacity: 64,
		SampleRate:   48000,
		SampleBits:   12,
		Scale:        4,
		ListenAddr:   ":6007",
		BatchBytes:   512,
		PollInterval: time.Millisecond,
		WriteTimeout: 2 * time.Second,
		ProducerCPU:  -1,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	invalid := func(field string, v any) error {
		return api.NewError(api.ErrCodeInvalidArgument, fmt.Sprintf("invalid %s", field)).
			WithContext(field, v)
	}
	switch {
	case c.RingCapacity < 2 || c.RingCapacity > concurrency.MaxCapacity:
		return invalid("RingCapacity", c.RingCapacity)
	case c.SampleRate == 0:
		return invalid("SampleRate", c.SampleRate)
	case c.SampleBits == 0 || c.SampleBits > 16:
		return invalid("SampleBits", c.SampleBits)
	case c.Scale < 0 || c.Scale > 4:
		return invalid("Scale", c.Scale)
	case c.BatchBytes <= 0:
		return invalid("BatchBytes", c.BatchBytes)
	case c.PollInterval <= 0:
		return invalid("PollInterval", c.PollInterval)
	}
	return nil
}
