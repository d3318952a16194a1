package racksetup

import (
	"fmt"

	"github.com/imamik/rackinit/internal/netutil"
	"github.com/imamik/rackinit/internal/provision"
)

// validateNetworkConfig rejects enum values the wire conversion has no
// mapping for. Called at update time so that convertNetworkConfig never
// sees an unmapped value.
func validateNetworkConfig(cfg *RackNetworkConfig) error {
	switch cfg.UplinkPortSpeed {
	case Speed0G, Speed1G, Speed10G, Speed25G, Speed40G,
		Speed50G, Speed100G, Speed200G, Speed400G:
	default:
		return fmt.Errorf("unknown uplink port speed %q", cfg.UplinkPortSpeed)
	}
	switch cfg.UplinkPortFec {
	case FecFirecode, FecNone, FecRs:
	default:
		return fmt.Errorf("unknown uplink port FEC %q", cfg.UplinkPortFec)
	}
	return nil
}

// convertNetworkConfig maps the operator-facing network config onto the
// provisioning service's wire representation, field by field. Every enum
// value must map one-to-one; an unmapped value here is a bug, since
// validateNetworkConfig vets them at update time.
func convertNetworkConfig(cfg *RackNetworkConfig) *provision.RackNetworkConfig {
	var speed provision.PortSpeed
	switch cfg.UplinkPortSpeed {
	case Speed0G:
		speed = provision.Speed0G
	case Speed1G:
		speed = provision.Speed1G
	case Speed10G:
		speed = provision.Speed10G
	case Speed25G:
		speed = provision.Speed25G
	case Speed40G:
		speed = provision.Speed40G
	case Speed50G:
		speed = provision.Speed50G
	case Speed100G:
		speed = provision.Speed100G
	case Speed200G:
		speed = provision.Speed200G
	case Speed400G:
		speed = provision.Speed400G
	default:
		panic(fmt.Sprintf("unmapped uplink port speed %q", cfg.UplinkPortSpeed))
	}

	var fec provision.PortFec
	switch cfg.UplinkPortFec {
	case FecFirecode:
		fec = provision.FecFirecode
	case FecNone:
		fec = provision.FecNone
	case FecRs:
		fec = provision.FecRs
	default:
		panic(fmt.Sprintf("unmapped uplink port FEC %q", cfg.UplinkPortFec))
	}

	return &provision.RackNetworkConfig{
		GatewayIP:       cfg.GatewayIP,
		InfraIPFirst:    cfg.InfraIPFirst,
		InfraIPLast:     cfg.InfraIPLast,
		UplinkPort:      cfg.UplinkPort,
		UplinkPortSpeed: speed,
		UplinkPortFec:   fec,
		UplinkIP:        cfg.UplinkIP,
		UplinkVID:       cfg.UplinkVID,
	}
}

// convertIPRange splits an internal address range into the wire form's
// per-family variants.
func convertIPRange(r netutil.IPRange) provision.IPRange {
	if r.IsV4() {
		return provision.IPRange{V4: &provision.IPv4Range{First: r.First, Last: r.Last}}
	}
	return provision.IPRange{V6: &provision.IPv6Range{First: r.First, Last: r.Last}}
}
