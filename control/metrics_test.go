package control

import "testing"

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordWrite(1)
	m.RecordWrite(3)
	m.RecordWrite(2)
	m.RecordOverrun()
	m.RecordRead()
	m.RecordEmptyPoll()
	m.RecordEmptyPoll()
	m.RecordStreamed(512)

	s := m.Snapshot()
	if s.Writes != 3 || s.HighWater != 3 || s.Overruns != 1 {
		t.Fatalf("producer counters: %+v", s)
	}
	if s.Reads != 1 || s.EmptyPolls != 2 || s.StreamBytes != 512 {
		t.Fatalf("consumer counters: %+v", s)
	}
	if s.Map()["ring.high_water"] != uint64(3) {
		t.Fatalf("Map = %v", s.Map())
	}
}

func TestDebugProbes_DumpState(t *testing.T) {
	dp := NewDebugProbes()
	n := 0
	dp.RegisterProbe("calls", func() any { n++; return n })
	dp.RegisterProbe("name", func() any { return "ring" })

	state := dp.DumpState()
	if state["calls"] != 1 || state["name"] != "ring" {
		t.Fatalf("DumpState = %v", state)
	}
	if dp.DumpState()["calls"] != 2 {
		t.Fatal("probes must be evaluated on every dump")
	}
}

func TestRegisterPlatformProbes(t *testing.T) {
	dp := NewDebugProbes()
	RegisterPlatformProbes(dp)
	if n, ok := dp.DumpState()["platform.cpus"].(int); !ok || n < 1 {
		t.Fatalf("platform.cpus = %v", dp.DumpState()["platform.cpus"])
	}
}

func TestDebugProbes_String(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("b", func() any { return 2 })
	dp.RegisterProbe("a", func() any { return "x" })
	if got := dp.String(); got != "a=x b=2" {
		t.Fatalf("String = %q", got)
	}
	if names := dp.Names(); len(names) != 2 || names[0] != "a" {
		t.Fatalf("Names = %v", names)
	}
}
