// File: core/concurrency/ring.go
// Package concurrency implements the lock-free record ring.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular buffer over caller-owned storage with
// one permanently reserved slot, so "full" and "empty" are told apart by
// the two cursors alone. One writer and one reader may run concurrently;
// each only ever stores its own cursor and loads the other's.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/epring/api"
)

// MaxCapacity bounds the slot count so cursor arithmetic stays inside uint32.
const MaxCapacity = 1 << 30

// Ensure compile-time interface compliance.
var _ api.Ring[api.Record] = (*RingBuffer[api.Record])(nil)

// RecordRing is the ring used for endpoint packets.
type RecordRing = RingBuffer[api.Record]

// RingBuffer is a single-producer, single-consumer ring buffer.
// The zero value reports no space and must be initialized with Init.
type RingBuffer[T any] struct {
	storage  []T
	capacity uint32
	_        cpu.CacheLinePad
	read     atomic.Uint32 // owned by the reader
	_        cpu.CacheLinePad
	write    atomic.Uint32 // owned by the writer
	_        cpu.CacheLinePad
}

// New binds a ring to storage, using len(storage) as the capacity.
func New[T any](storage []T) (*RingBuffer[T], error) {
	r := &RingBuffer[T]{}
	if err := r.Init(storage, len(storage)); err != nil {
		return nil, err
	}
	return r, nil
}

// Init resets both cursors and binds storage. The ring borrows storage and
// never allocates, grows or frees it. capacity must equal len(storage) and
// be at least 2; violations are reported instead of corrupting later
// index arithmetic. Init must not race with Write or Read.
func (r *RingBuffer[T]) Init(storage []T, capacity int) error {
	switch {
	case capacity != len(storage):
		return api.WrapError(api.ErrCodeInvalidArgument, api.ErrCapacityMismatch).
			WithContext("capacity", capacity).
			WithContext("storage", len(storage))
	case capacity < 2:
		return api.WrapError(api.ErrCodeInvalidArgument, api.ErrCapacityTooSmall).
			WithContext("capacity", capacity)
	case capacity > MaxCapacity:
		return api.WrapError(api.ErrCodeInvalidArgument, api.ErrCapacityTooLarge).
			WithContext("capacity", capacity)
	}
	r.storage = storage
	r.capacity = uint32(capacity)
	r.read.Store(0)
	r.write.Store(0)
	return nil
}

// Reset empties the ring without touching slot contents.
// Both sides must be quiescent.
func (r *RingBuffer[T]) Reset() {
	r.read.Store(0)
	r.write.Store(0)
}

// SpaceAvailable returns how many more records Write accepts before Full.
func (r *RingBuffer[T]) SpaceAvailable() int {
	if r.capacity == 0 {
		return 0
	}
	read, write := r.read.Load(), r.write.Load()
	return int((read - write + r.capacity - 1) % r.capacity)
}

// SpaceUsed returns the number of records waiting to be read.
func (r *RingBuffer[T]) SpaceUsed() int {
	if r.capacity == 0 {
		return 0
	}
	read, write := r.read.Load(), r.write.Load()
	return int((write - read + r.capacity) % r.capacity)
}

// Write copies item into the slot under the write cursor and only then
// publishes the advanced cursor, so the reader never sees a partial slot.
// It returns StatusFull without mutating anything when one slot remains.
func (r *RingBuffer[T]) Write(item T) api.Status {
	if r.capacity == 0 {
		return api.StatusFull
	}
	write := r.write.Load()
	next := (write + 1) % r.capacity
	if next == r.read.Load() {
		return api.StatusFull
	}
	r.storage[write] = item
	r.write.Store(next)
	return api.StatusOK
}

// Read copies the slot under the read cursor into out and only then
// releases it to the writer. It returns StatusEmpty without mutating
// anything (out included) when there is nothing to read.
func (r *RingBuffer[T]) Read(out *T) api.Status {
	read := r.read.Load()
	if read == r.write.Load() {
		return api.StatusEmpty
	}
	*out = r.storage[read]
	r.read.Store((read + 1) % r.capacity)
	return api.StatusOK
}

// Cap returns the number of slots, including the reserved one.
func (r *RingBuffer[T]) Cap() int {
	return int(r.capacity)
}

// IsEmpty reports whether there is nothing to read.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.read.Load() == r.write.Load()
}

// IsFull reports whether Write would return StatusFull.
func (r *RingBuffer[T]) IsFull() bool {
	if r.capacity == 0 {
		return true
	}
	return (r.write.Load()+1)%r.capacity == r.read.Load()
}
