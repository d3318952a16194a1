package inventory

import (
	"fmt"
	"net/netip"
	"sort"
)

// SPType classifies a service processor reported by rack discovery.
type SPType string

const (
	// SPTypeSled is a compute sled's service processor.
	SPTypeSled SPType = "sled"
	// SPTypeSwitch is a rack switch's service processor.
	SPTypeSwitch SPType = "switch"
	// SPTypePower is a power shelf controller.
	SPTypePower SPType = "power"
)

// Baseboard identifies a physical board independently of where it is
// currently installed.
type Baseboard struct {
	Serial   string `json:"serial"`
	Model    string `json:"model"`
	Revision uint32 `json:"revision"`
}

// String returns a short human-readable identity, used in error messages.
func (b Baseboard) String() string {
	return fmt.Sprintf("%s/%s rev %d", b.Model, b.Serial, b.Revision)
}

// IsZero reports whether the baseboard carries no identity at all. Test
// and development builds run without a genuine baseboard.
func (b Baseboard) IsZero() bool {
	return b.Serial == "" && b.Model == "" && b.Revision == 0
}

// SPID locates a service processor within the rack.
type SPID struct {
	Type SPType `json:"type"`
	Slot int    `json:"slot"`
}

// SPState is the identity a service processor reports about the board it
// manages.
type SPState struct {
	Serial   string `json:"serial"`
	Model    string `json:"model"`
	Revision uint32 `json:"revision"`
}

// SPInfo is one entry of a discovery report. State is nil when the SP
// was seen on the management network but has not answered an identity
// query yet.
type SPInfo struct {
	ID    SPID     `json:"id"`
	State *SPState `json:"state,omitempty"`
}

// RackInventory is the full discovery report for a rack, refreshed
// periodically by the discovery collaborator.
type RackInventory struct {
	SPs []SPInfo `json:"sps"`
}

// Sled describes one rack member of interest to setup: its location, its
// identity, and (when currently known) its bootstrap-network address.
type Sled struct {
	ID          SPID       `json:"id"`
	Baseboard   Baseboard  `json:"baseboard"`
	BootstrapIP netip.Addr `json:"bootstrap_ip,omitzero"`
}

// BootstrapPeers maps baseboard identities to the bootstrap-network
// address most recently observed for them. Addresses are ephemeral;
// callers must not cache lookups across operations.
type BootstrapPeers map[Baseboard]netip.Addr

// Lookup returns the current address for a baseboard, if one is known.
func (p BootstrapPeers) Lookup(b Baseboard) (netip.Addr, bool) {
	addr, ok := p[b]
	return addr, ok
}

// Sleds extracts the sled-type members from a discovery report, attaching
// bootstrap addresses where peers knows one. Entries without identity
// state are skipped; the result is deduplicated by baseboard and ordered
// by slot.
func Sleds(inv *RackInventory, peers BootstrapPeers) []Sled {
	seen := make(map[Baseboard]bool)
	var sleds []Sled
	for _, sp := range inv.SPs {
		if sp.ID.Type != SPTypeSled || sp.State == nil {
			continue
		}
		bb := Baseboard{
			Serial:   sp.State.Serial,
			Model:    sp.State.Model,
			Revision: sp.State.Revision,
		}
		if seen[bb] {
			continue
		}
		seen[bb] = true
		sled := Sled{ID: sp.ID, Baseboard: bb}
		if ip, ok := peers.Lookup(bb); ok {
			sled.BootstrapIP = ip
		}
		sleds = append(sleds, sled)
	}
	sort.Slice(sleds, func(i, j int) bool {
		return sleds[i].ID.Slot < sleds[j].ID.Slot
	})
	return sleds
}
