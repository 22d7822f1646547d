// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

package tcp

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/momentics/epring/api"
)

// HeaderSize is the length of the stream preamble.
const HeaderSize = 5

// WriteHeader writes the stream preamble.
func WriteHeader(w io.Writer, rate uint32, bits uint8) error {
	var hdr [HeaderSize]byte
	binary.LittleEndian.PutUint32(hdr[:4], rate)
	hdr[4] = bits
	_, err := w.Write(hdr[:])
	return err
}

// ReadHeader reads and checks the stream preamble.
func ReadHeader(r io.Reader) (rate uint32, bits uint8, err error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, fmt.Errorf("read header: %w", err)
	}
	rate = binary.LittleEndian.Uint32(hdr[:4])
	bits = hdr[4]
	if rate == 0 || bits == 0 || bits > 16 {
		return 0, 0, fmt.Errorf("%w: rate=%d bits=%d", api.ErrBadHeader, rate, bits)
	}
	return rate, bits, nil
}
