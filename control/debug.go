// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Named probes over live pipeline state (ring occupancy, platform facts),
// evaluated on demand so they cost nothing until dumped.

package control

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// DebugProbes is a registry of named, lazily evaluated probes.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates an empty registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{probes: make(map[string]func() any)}
}

// RegisterProbe adds fn under name, replacing any previous probe.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	dp.probes[name] = fn
	dp.mu.Unlock()
}

// Names returns the registered probe names in sorted order.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	names := make([]string, 0, len(dp.probes))
	for k := range dp.probes {
		names = append(names, k)
	}
	dp.mu.RUnlock()
	sort.Strings(names)
	return names
}

// DumpState evaluates every probe.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.probes))
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// String renders the probes as sorted key=value pairs.
func (dp *DebugProbes) String() string {
	state := dp.DumpState()
	var b strings.Builder
	for i, name := range dp.Names() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", name, state[name])
	}
	return b.String()
}
