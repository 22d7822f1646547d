// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

package tcp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/epring/api"
	"github.com/momentics/epring/control"
	"github.com/momentics/epring/endpoint"
)

// Streamer is the consumer side of an endpoint: it drains records, decodes
// them to PCM and ships them to one client at a time in batches.
type Streamer struct {
	ep     *endpoint.Endpoint
	cfg    control.Config
	logger *log.Logger
}

// NewStreamer creates a streamer for ep. A nil logger uses log.Default().
func NewStreamer(ep *endpoint.Endpoint, logger *log.Logger) *Streamer {
	if logger == nil {
		logger = log.Default()
	}
	return &Streamer{ep: ep, cfg: ep.Config(), logger: logger}
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Streamer) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("tcp listen failed: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts clients sequentially until ctx is done. While no client is
// attached the ring is left alone and the producer counts overruns.
func (s *Streamer) Serve(ctx context.Context, ln net.Listener) error {
	defer ln.Close()
	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()
	s.logger.Printf("stream: listening on %s", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, net.ErrClosed) {
				return api.ErrTransportClosed
			}
			s.logger.Printf("stream: accept error: %v", err)
			continue
		}
		s.logger.Printf("stream: client %s connected", conn.RemoteAddr())
		err = s.stream(ctx, conn)
		conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Printf("stream: client %s dropped: %v", conn.RemoteAddr(), err)
	}
}

// stream runs one client session until a write fails or ctx is done.
func (s *Streamer) stream(ctx context.Context, conn net.Conn) error {
	if err := s.withDeadline(conn, func() error {
		return WriteHeader(conn, s.cfg.SampleRate, s.cfg.SampleBits)
	}); err != nil {
		return err
	}

	pending := queue.New()
	queued := 0
	var decodeErr error
	enqueue := func(rec *api.Record) {
		chunk, err := endpoint.DecodePCM(make([]byte, 0, 2*endpoint.SamplesPerRecord), rec.Payload(), s.cfg.Scale)
		if err != nil {
			decodeErr = err
			return
		}
		pending.Add(chunk)
		queued += len(chunk)
	}

	idle := time.NewTimer(s.cfg.PollInterval)
	defer idle.Stop()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := s.ep.Poll(0, enqueue)
		if decodeErr != nil {
			s.logger.Printf("stream: dropped record: %v", decodeErr)
			decodeErr = nil
		}
		if queued >= s.cfg.BatchBytes {
			if err := s.flush(conn, pending); err != nil {
				return err
			}
			queued = 0
		}
		if n > 0 {
			continue
		}
		idle.Reset(s.cfg.PollInterval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-idle.C:
		}
	}
}

// flush writes every queued chunk in one vectored write.
func (s *Streamer) flush(conn net.Conn, pending *queue.Queue) error {
	bufs := make(net.Buffers, 0, pending.Length())
	for pending.Length() > 0 {
		bufs = append(bufs, pending.Remove().([]byte))
	}
	return s.withDeadline(conn, func() error {
		n, err := bufs.WriteTo(conn)
		s.ep.Metrics().RecordStreamed(int(n))
		return err
	})
}

// withDeadline runs a write under WriteTimeout. A missed deadline is
// reported as api.ErrOperationTimeout.
func (s *Streamer) withDeadline(conn net.Conn, fn func() error) error {
	if s.cfg.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
		defer conn.SetWriteDeadline(time.Time{})
	}
	err := fn()
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return api.WrapError(api.ErrCodeTimeout, api.ErrOperationTimeout).
			WithContext("timeout", s.cfg.WriteTimeout).
			WithContext("cause", err.Error())
	}
	return err
}
