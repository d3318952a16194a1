package inventory

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sledSP(slot int, serial string) SPInfo {
	return SPInfo{
		ID:    SPID{Type: SPTypeSled, Slot: slot},
		State: &SPState{Serial: serial, Model: "fake-sled", Revision: 1},
	}
}

func TestSledsFiltersNonSleds(t *testing.T) {
	inv := &RackInventory{SPs: []SPInfo{
		sledSP(0, "alpha"),
		{ID: SPID{Type: SPTypeSwitch, Slot: 0}, State: &SPState{Serial: "sw0"}},
		{ID: SPID{Type: SPTypePower, Slot: 0}, State: &SPState{Serial: "ps0"}},
		sledSP(1, "bravo"),
	}}

	sleds := Sleds(inv, nil)
	require.Len(t, sleds, 2)
	assert.Equal(t, "alpha", sleds[0].Baseboard.Serial)
	assert.Equal(t, "bravo", sleds[1].Baseboard.Serial)
}

func TestSledsSkipsMissingState(t *testing.T) {
	inv := &RackInventory{SPs: []SPInfo{
		sledSP(0, "alpha"),
		{ID: SPID{Type: SPTypeSled, Slot: 1}}, // seen but not identified yet
	}}

	sleds := Sleds(inv, nil)
	require.Len(t, sleds, 1)
	assert.Equal(t, 0, sleds[0].ID.Slot)
}

func TestSledsDeduplicatesAndSorts(t *testing.T) {
	inv := &RackInventory{SPs: []SPInfo{
		sledSP(3, "delta"),
		sledSP(1, "bravo"),
		sledSP(1, "bravo"), // duplicate report
		sledSP(0, "alpha"),
	}}

	sleds := Sleds(inv, nil)
	require.Len(t, sleds, 3)
	assert.Equal(t, []int{0, 1, 3}, []int{sleds[0].ID.Slot, sleds[1].ID.Slot, sleds[2].ID.Slot})
}

func TestSledsAttachesBootstrapAddresses(t *testing.T) {
	inv := &RackInventory{SPs: []SPInfo{sledSP(0, "alpha"), sledSP(1, "bravo")}}
	addr := netip.MustParseAddr("fdb0::1")
	peers := BootstrapPeers{
		{Serial: "alpha", Model: "fake-sled", Revision: 1}: addr,
	}

	sleds := Sleds(inv, peers)
	require.Len(t, sleds, 2)
	assert.Equal(t, addr, sleds[0].BootstrapIP)
	assert.False(t, sleds[1].BootstrapIP.IsValid(), "bravo has no known address")
}

func TestBaseboardString(t *testing.T) {
	b := Baseboard{Serial: "BRM42220031", Model: "gimlet", Revision: 6}
	assert.Equal(t, "gimlet/BRM42220031 rev 6", b.String())
}

func TestBaseboardIsZero(t *testing.T) {
	assert.True(t, Baseboard{}.IsZero())
	assert.False(t, Baseboard{Serial: "x"}.IsZero())
}
