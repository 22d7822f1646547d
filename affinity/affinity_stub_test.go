//go:build !linux
// +build !linux

package affinity

import (
	"errors"
	"testing"

	"github.com/momentics/epring/api"
)

func TestSetAffinity_NotSupported(t *testing.T) {
	err := SetAffinity(0)
	if !errors.Is(err, api.ErrNotSupported) {
		t.Fatalf("SetAffinity = %v, want ErrNotSupported", err)
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Code != api.ErrCodeNotSupported {
		t.Fatalf("expected not-supported code, got %#v", err)
	}
}
