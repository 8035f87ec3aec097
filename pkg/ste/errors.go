package ste

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidIPVersion is returned when ip_version is neither 4 nor 6.
	ErrInvalidIPVersion = errors.New("invalid ip version")
	// ErrUnsupportedCapabilitySlot is returned when the device places the
	// ICMP flex parser words somewhere the encoder cannot address.
	ErrUnsupportedCapabilitySlot = errors.New("unsupported flex parser slot")
	// ErrVportLookupFailed is returned when a source port has no GVMI.
	ErrVportLookupFailed = errors.New("vport lookup failed")
	// ErrUnsupportedVersion is returned for an unknown steering format.
	ErrUnsupportedVersion = errors.New("unsupported steering format version")
	// ErrUnsupportedLookup is returned for a lookup the context cannot build.
	ErrUnsupportedLookup = errors.New("unsupported lookup")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrInvalidIPVersion, "invalid_ip_version"},
	{ErrUnsupportedCapabilitySlot, "unsupported_capability_slot"},
	{ErrVportLookupFailed, "vport_lookup_failed"},
	{ErrUnsupportedVersion, "unsupported_version"},
	{ErrUnsupportedLookup, "unsupported_lookup"},
}

// KindOf maps err to a short label of its cause, "unknown" when the cause
// is not one of this package's errors.
func KindOf(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "unknown"
}
