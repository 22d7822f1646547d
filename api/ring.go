// Package api
// Author: momentics@gmail.com
//
// Single-producer/single-consumer ring contract shared by the ring
// implementation and the endpoint pipeline.

package api

// Ring is a fixed-capacity, non-blocking record ring.
// Exactly one goroutine may call Write and exactly one may call Read.
type Ring[T any] interface {
	// Write copies item into the next free slot; StatusFull if none.
	Write(item T) Status
	// Read copies the oldest item into out; StatusEmpty if none.
	Read(out *T) Status
	// SpaceAvailable returns the number of slots Write can still fill.
	SpaceAvailable() int
	// SpaceUsed returns the number of occupied slots.
	SpaceUsed() int
	// Cap returns the number of slots in the backing storage.
	Cap() int
}
