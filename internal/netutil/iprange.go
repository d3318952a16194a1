// Package netutil provides small networking helpers shared by the rack
// setup packages, chiefly the [IPRange] address-range type used for the
// internal services IP pool.
package netutil

import (
	"fmt"
	"net/netip"
	"strings"

	"gopkg.in/yaml.v3"
)

// IPRange is an inclusive range of IP addresses of a single family. It
// serializes as "first-last", or as a bare address for a single-address
// range.
type IPRange struct {
	First netip.Addr
	Last  netip.Addr
}

// NewIPRange builds a range from first and last, validating that both
// addresses are set, of the same family, and correctly ordered.
func NewIPRange(first, last netip.Addr) (IPRange, error) {
	if !first.IsValid() || !last.IsValid() {
		return IPRange{}, fmt.Errorf("IP range bounds must both be set")
	}
	if first.Is4() != last.Is4() {
		return IPRange{}, fmt.Errorf("IP range %s-%s mixes address families", first, last)
	}
	if last.Less(first) {
		return IPRange{}, fmt.Errorf("IP range first address %s is after last address %s", first, last)
	}
	return IPRange{First: first, Last: last}, nil
}

// ParseIPRange parses "first-last" or a single bare address.
func ParseIPRange(s string) (IPRange, error) {
	first, last, found := strings.Cut(s, "-")
	if !found {
		last = first
	}
	firstAddr, err := netip.ParseAddr(strings.TrimSpace(first))
	if err != nil {
		return IPRange{}, fmt.Errorf("invalid IP range %q: %w", s, err)
	}
	lastAddr, err := netip.ParseAddr(strings.TrimSpace(last))
	if err != nil {
		return IPRange{}, fmt.Errorf("invalid IP range %q: %w", s, err)
	}
	return NewIPRange(firstAddr, lastAddr)
}

// IsV4 reports whether the range is an IPv4 range.
func (r IPRange) IsV4() bool { return r.First.Is4() }

// String formats the range as "first-last", collapsing single-address
// ranges to the bare address.
func (r IPRange) String() string {
	if r.First == r.Last {
		return r.First.String()
	}
	return r.First.String() + "-" + r.Last.String()
}

// MarshalText implements encoding.TextMarshaler.
func (r IPRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *IPRange) UnmarshalText(text []byte) error {
	parsed, err := ParseIPRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler; yaml.v3 does not consult
// encoding.TextMarshaler on its own.
func (r IPRange) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *IPRange) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}
