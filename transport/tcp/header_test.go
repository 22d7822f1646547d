package tcp

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/momentics/epring/api"
)

func TestHeader_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, 48000, 12); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != HeaderSize {
		t.Fatalf("header length = %d", buf.Len())
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x80, 0xbb, 0x00, 0x00, 12}) {
		t.Fatalf("header bytes = % x", buf.Bytes())
	}
	rate, bits, err := ReadHeader(&buf)
	if err != nil || rate != 48000 || bits != 12 {
		t.Fatalf("ReadHeader = %d, %d, %v", rate, bits, err)
	}
}

func TestReadHeader_Rejects(t *testing.T) {
	if _, _, err := ReadHeader(bytes.NewReader([]byte{0, 0, 0, 0, 12})); !errors.Is(err, api.ErrBadHeader) {
		t.Fatalf("zero rate: err = %v", err)
	}
	if _, _, err := ReadHeader(bytes.NewReader([]byte{1, 0, 0, 0, 17})); !errors.Is(err, api.ErrBadHeader) {
		t.Fatalf("17 bits: err = %v", err)
	}
	if _, _, err := ReadHeader(bytes.NewReader([]byte{1, 2})); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("short header: err = %v", err)
	}
}
