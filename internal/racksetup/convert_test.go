package racksetup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/rackinit/internal/netutil"
	"github.com/imamik/rackinit/internal/provision"
)

func TestConvertNetworkConfigSpeeds(t *testing.T) {
	speeds := map[PortSpeed]provision.PortSpeed{
		Speed0G:   provision.Speed0G,
		Speed1G:   provision.Speed1G,
		Speed10G:  provision.Speed10G,
		Speed25G:  provision.Speed25G,
		Speed40G:  provision.Speed40G,
		Speed50G:  provision.Speed50G,
		Speed100G: provision.Speed100G,
		Speed200G: provision.Speed200G,
		Speed400G: provision.Speed400G,
	}
	for in, want := range speeds {
		cfg := &RackNetworkConfig{UplinkPortSpeed: in, UplinkPortFec: FecNone}
		assert.Equal(t, want, convertNetworkConfig(cfg).UplinkPortSpeed)
	}
}

func TestConvertNetworkConfigFec(t *testing.T) {
	fecs := map[PortFec]provision.PortFec{
		FecFirecode: provision.FecFirecode,
		FecNone:     provision.FecNone,
		FecRs:       provision.FecRs,
	}
	for in, want := range fecs {
		cfg := &RackNetworkConfig{UplinkPortSpeed: Speed100G, UplinkPortFec: in}
		assert.Equal(t, want, convertNetworkConfig(cfg).UplinkPortFec)
	}
}

func TestConvertNetworkConfigFields(t *testing.T) {
	cfg := &RackNetworkConfig{
		GatewayIP:       "10.0.0.1",
		InfraIPFirst:    "10.0.0.10",
		InfraIPLast:     "10.0.0.20",
		UplinkPort:      "qsfp0",
		UplinkPortSpeed: Speed40G,
		UplinkPortFec:   FecRs,
		UplinkIP:        "10.0.0.2",
		UplinkVID:       212,
	}

	got := convertNetworkConfig(cfg)
	assert.Equal(t, &provision.RackNetworkConfig{
		GatewayIP:       "10.0.0.1",
		InfraIPFirst:    "10.0.0.10",
		InfraIPLast:     "10.0.0.20",
		UplinkPort:      "qsfp0",
		UplinkPortSpeed: provision.Speed40G,
		UplinkPortFec:   provision.FecRs,
		UplinkIP:        "10.0.0.2",
		UplinkVID:       212,
	}, got)
}

func TestConvertNetworkConfigPanicsOnUnmapped(t *testing.T) {
	// Unmapped values are vetted out at update time; reaching the
	// conversion with one is a bug, not bad input.
	assert.Panics(t, func() {
		convertNetworkConfig(&RackNetworkConfig{UplinkPortSpeed: "17G", UplinkPortFec: FecNone})
	})
	assert.Panics(t, func() {
		convertNetworkConfig(&RackNetworkConfig{UplinkPortSpeed: Speed100G, UplinkPortFec: "hamming"})
	})
}

func TestConvertIPRange(t *testing.T) {
	v4, err := netutil.ParseIPRange("10.0.0.1-10.0.0.9")
	require.NoError(t, err)
	got := convertIPRange(v4)
	require.NotNil(t, got.V4)
	assert.Nil(t, got.V6)
	assert.Equal(t, v4.First, got.V4.First)
	assert.Equal(t, v4.Last, got.V4.Last)

	v6, err := netutil.ParseIPRange("fd00::1-fd00::9")
	require.NoError(t, err)
	got = convertIPRange(v6)
	require.NotNil(t, got.V6)
	assert.Nil(t, got.V4)
}

func TestValidateNetworkConfig(t *testing.T) {
	valid := &RackNetworkConfig{UplinkPortSpeed: Speed100G, UplinkPortFec: FecNone}
	assert.NoError(t, validateNetworkConfig(valid))

	assert.Error(t, validateNetworkConfig(&RackNetworkConfig{UplinkPortSpeed: "", UplinkPortFec: FecNone}))
	assert.Error(t, validateNetworkConfig(&RackNetworkConfig{UplinkPortSpeed: Speed100G, UplinkPortFec: ""}))
}
