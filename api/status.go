// File: api/status.go
// Author: momentics <momentics@gmail.com>
//
// Outcome codes for non-blocking ring operations.

package api

// Status is the outcome of a Ring Write or Read. Full and Empty are
// ordinary results that callers poll around, not failures.
type Status uint8

const (
	StatusOK Status = iota
	StatusFull
	StatusEmpty
	// StatusRejected means the input was refused before reaching the ring.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFull:
		return "full"
	case StatusEmpty:
		return "empty"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// OK reports whether the operation moved a record.
func (s Status) OK() bool { return s == StatusOK }

// Err maps the status onto the package sentinels for callers that
// propagate errors instead of switching on the status.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusFull:
		return ErrBufferFull
	case StatusEmpty:
		return ErrBufferEmpty
	case StatusRejected:
		return ErrInvalidArgument
	default:
		return NewError(ErrCodeInternal, "unknown ring status").WithContext("status", uint8(s))
	}
}
