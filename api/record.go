// File: api/record.go
// Author: momentics <momentics@gmail.com>
//
// Record is the unit moved through the ring: one endpoint packet.

package api

// RecordSize is the payload capacity of a Record in bytes.
const RecordSize = 64

// SizeUnused marks a Record that carries no packet at all, as opposed to
// a zero-length packet.
const SizeUnused int8 = -1

// Record is a fixed-size packet slot. Size counts the valid bytes of Data;
// a negative Size means the record is unused.
type Record struct {
	Data [RecordSize]byte
	Size int8
}

// SetPayload copies at most RecordSize bytes of p into the record and
// returns how many were copied.
func (r *Record) SetPayload(p []byte) int {
	n := copy(r.Data[:], p)
	r.Size = int8(n)
	return n
}

// Payload returns the valid bytes of the record, or nil if it is unused.
// The slice aliases Data.
func (r *Record) Payload() []byte {
	if r.Size < 0 {
		return nil
	}
	n := int(r.Size)
	if n > RecordSize {
		n = RecordSize
	}
	return r.Data[:n]
}

// Valid reports whether the record holds a packet (possibly empty).
func (r *Record) Valid() bool { return r.Size >= 0 }

// Invalidate marks the record unused.
func (r *Record) Invalidate() { r.Size = SizeUnused }
