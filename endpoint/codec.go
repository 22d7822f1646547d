// File: endpoint/codec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Sample wire encoding used by the acquisition firmware: every 12-bit ADC
// sample travels as two symbols of a 64-symbol alphabet, low 6 bits first.

package endpoint

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/momentics/epring/api"
)

// ErrBadSymbol reports a byte outside the sample alphabet.
var ErrBadSymbol = errors.New("endpoint: invalid sample symbol")

// SamplesPerRecord is how many encoded samples fit one Record.
const SamplesPerRecord = api.RecordSize / 2

// sampleOffset recentres the unsigned ADC reading around zero.
const sampleOffset = 2048

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var decodeTable = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
	}
	return t
}()

// EncodeSample encodes the low 12 bits of s as two symbols.
func EncodeSample(s uint16) [2]byte {
	return [2]byte{alphabet[s&0x3f], alphabet[(s>>6)&0x3f]}
}

// DecodeSample turns two symbols back into a signed sample widened by
// a left shift of scale bits.
func DecodeSample(lo, hi byte, scale int) (int16, error) {
	l, h := decodeTable[lo], decodeTable[hi]
	if l < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadSymbol, lo)
	}
	if h < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadSymbol, hi)
	}
	raw := int32(h)<<6 | int32(l)
	return int16((raw - sampleOffset) << scale), nil
}

// EncodeSamples appends the encoding of samples to dst.
func EncodeSamples(dst []byte, samples []uint16) []byte {
	for _, s := range samples {
		e := EncodeSample(s)
		dst = append(dst, e[0], e[1])
	}
	return dst
}

// DecodeSamples appends the samples encoded in src to dst. A trailing odd
// symbol is ignored.
func DecodeSamples(dst []int16, src []byte, scale int) ([]int16, error) {
	for i := 0; i+1 < len(src); i += 2 {
		s, err := DecodeSample(src[i], src[i+1], scale)
		if err != nil {
			return dst, fmt.Errorf("offset %d: %w", i, err)
		}
		dst = append(dst, s)
	}
	return dst, nil
}

// DecodePCM appends the samples encoded in src to dst as little-endian
// int16 PCM, the format streamed to clients.
func DecodePCM(dst []byte, src []byte, scale int) ([]byte, error) {
	for i := 0; i+1 < len(src); i += 2 {
		s, err := DecodeSample(src[i], src[i+1], scale)
		if err != nil {
			return dst, fmt.Errorf("offset %d: %w", i, err)
		}
		dst = binary.LittleEndian.AppendUint16(dst, uint16(s))
	}
	return dst, nil
}
