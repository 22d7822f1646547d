// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

package tcp

import (
	"bufio"
	"context"
	"encoding/binary"
	"io"
	"net"
)

// Client receives a PCM stream produced by Streamer.
type Client struct {
	conn net.Conn
	r    *bufio.Reader
	rate uint32
	bits uint8
	buf  []byte
}

// Dial connects to a streamer and reads the stream header.
func Dial(ctx context.Context, addr string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	c, err := NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// NewClient reads the stream header from an established connection.
func NewClient(conn net.Conn) (*Client, error) {
	r := bufio.NewReader(conn)
	rate, bits, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, r: r, rate: rate, bits: bits}, nil
}

// SampleRate returns the announced sample rate in Hz.
func (c *Client) SampleRate() uint32 { return c.rate }

// Bits returns the announced ADC resolution.
func (c *Client) Bits() uint8 { return c.bits }

// Read implements io.Reader over the raw little-endian PCM bytes.
func (c *Client) Read(p []byte) (int, error) { return c.r.Read(p) }

// ReadSamples fills dst with decoded samples. It returns the number of
// whole samples read; a short read comes with a non-nil error.
func (c *Client) ReadSamples(dst []int16) (int, error) {
	need := 2 * len(dst)
	if cap(c.buf) < need {
		c.buf = make([]byte, need)
	}
	buf := c.buf[:need]
	n, err := io.ReadFull(c.r, buf)
	for i := 0; i < n/2; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
	}
	return n / 2, err
}

// Close closes the connection.
func (c *Client) Close() error { return c.conn.Close() }
