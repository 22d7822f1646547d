// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics and debug introspection for the endpoint
// pipeline.
//
// Provides concurrent-safe state handling primitives including:
//   - Validated pipeline configuration
//   - Per-side ring counters that never contend between producer and consumer
//   - Probe registration and state export
package control
