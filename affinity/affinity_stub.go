//go:build !linux
// +build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Platforms without thread pinning: the producer runs unpinned.

package affinity

import "github.com/momentics/epring/api"

func setAffinityPlatform(cpuID int) error {
	return api.WrapError(api.ErrCodeNotSupported, api.ErrNotSupported).
		WithContext("cpu", cpuID)
}
