// File: cmd/epring/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// epring runs the simulated acquisition endpoint and streams its audio over
// TCP, or connects to such a stream and writes the raw PCM to stdout.
//
//	epring serve  [-addr :6007] [-rate 48000] [-bits 12] [-ring 64] [-batch 512] [-cpu -1]
//	epring client -d host[:port] [-n samples]

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/momentics/epring/control"
	"github.com/momentics/epring/endpoint"
	"github.com/momentics/epring/transport/tcp"
)

const defaultPort = "6007"

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n  %[1]s serve [flags]\n  %[1]s client -d host[:port] [flags]\n", os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "serve":
		err = serve(ctx, os.Args[2:])
	case "client":
		err = client(ctx, os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("epring: %v", err)
	}
}

func serve(ctx context.Context, args []string) error {
	cfg := control.DefaultConfig()
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	fs.StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "PCM stream listen address")
	rate := fs.Uint("rate", uint(cfg.SampleRate), "Audio sample rate")
	bits := fs.Uint("bits", uint(cfg.SampleBits), "Audio sample resolution in bits")
	fs.IntVar(&cfg.RingCapacity, "ring", cfg.RingCapacity, "Endpoint ring capacity in records")
	fs.IntVar(&cfg.BatchBytes, "batch", cfg.BatchBytes, "PCM bytes per network write")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "Left shift applied to decoded samples")
	fs.IntVar(&cfg.ProducerCPU, "cpu", cfg.ProducerCPU, "Pin the producer thread to this CPU (-1 = off)")
	tone := fs.Float64("tone", 440, "Test tone frequency in Hz")
	stats := fs.Duration("stats", 10*time.Second, "Statistics log interval (0 = off)")
	fs.Parse(args)
	cfg.SampleRate = uint32(*rate)
	cfg.SampleBits = uint8(*bits)

	ep, err := endpoint.New(cfg)
	if err != nil {
		return err
	}

	src := &endpoint.SineSource{Freq: *tone, Rate: cfg.SampleRate, Amplitude: 1800}
	go func() {
		if err := ep.RunProducer(ctx, src); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("epring: producer stopped: %v", err)
		}
	}()

	if *stats > 0 {
		go logStats(ctx, ep, *stats)
	}
	return tcp.NewStreamer(ep, log.Default()).ListenAndServe(ctx)
}

func logStats(ctx context.Context, ep *endpoint.Endpoint, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s := ep.Stats()
			log.Printf("epring: writes=%d overruns=%d reads=%d high_water=%d streamed=%dB %v",
				s.Writes, s.Overruns, s.Reads, s.HighWater, s.StreamBytes, ep.Probes())
		}
	}
}

func client(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("client", flag.ExitOnError)
	dest := fs.String("d", "", "Server address (host or host:port)")
	samples := fs.Int64("n", -1, "Samples to read (-1 = until the stream ends)")
	fs.Parse(args)
	if *dest == "" {
		usage()
		return errors.New("missing -d")
	}
	addr := *dest
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, defaultPort)
	}

	c, err := tcp.Dial(ctx, addr)
	if err != nil {
		return err
	}
	defer c.Close()
	context.AfterFunc(ctx, func() { c.Close() })
	log.Printf("epring: connected to %s, %d Hz, %d bits", addr, c.SampleRate(), c.Bits())

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	var r io.Reader = c
	if *samples >= 0 {
		r = io.LimitReader(c, 2*(*samples))
	}
	if _, err := io.Copy(out, r); err != nil && ctx.Err() == nil {
		return err
	}
	return ctx.Err()
}
