package testing

import (
	"fmt"
	"net/netip"

	"github.com/imamik/rackinit/internal/inventory"
)

// SledInventory builds a discovery report containing one sled per serial,
// in slot order starting at 0, all with model "fake-sled" revision 1.
func SledInventory(serials ...string) *inventory.RackInventory {
	inv := &inventory.RackInventory{}
	for slot, serial := range serials {
		inv.SPs = append(inv.SPs, inventory.SPInfo{
			ID: inventory.SPID{Type: inventory.SPTypeSled, Slot: slot},
			State: &inventory.SPState{
				Serial:   serial,
				Model:    "fake-sled",
				Revision: 1,
			},
		})
	}
	return inv
}

// SledBaseboard returns the baseboard identity SledInventory assigns to a
// serial.
func SledBaseboard(serial string) inventory.Baseboard {
	return inventory.Baseboard{Serial: serial, Model: "fake-sled", Revision: 1}
}

// Peers builds a bootstrap peer map with a distinct link-local-style
// address per serial: fdb0::1, fdb0::2, ...
func Peers(serials ...string) inventory.BootstrapPeers {
	peers := make(inventory.BootstrapPeers, len(serials))
	for i, serial := range serials {
		peers[SledBaseboard(serial)] = netip.MustParseAddr(fmt.Sprintf("fdb0::%d", i+1))
	}
	return peers
}
