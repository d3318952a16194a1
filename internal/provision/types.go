// Package provision defines the wire representation of the rack
// initialization request consumed by the provisioning service. The types
// here mirror the service's API schema; the racksetup package converts
// its internal draft into these on finalize.
package provision

import "net/netip"

// DiscoveryMode selects how the provisioning service locates the sleds it
// should initialize.
type DiscoveryMode string

const (
	// DiscoveryOnlyThese restricts initialization to an explicit address
	// list; rack setup always uses this mode.
	DiscoveryOnlyThese DiscoveryMode = "only_these"
)

// BootstrapAddressDiscovery carries the discovery mode and, for
// DiscoveryOnlyThese, the explicit bootstrap addresses.
type BootstrapAddressDiscovery struct {
	Mode      DiscoveryMode `json:"mode"`
	Addresses []netip.Addr  `json:"addresses,omitempty"`
}

// Certificate is one validated TLS credential pair, PEM-encoded.
type Certificate struct {
	Cert []byte `json:"cert"`
	Key  []byte `json:"key"`
}

// RecoverySiloConfig configures the built-in administrative silo created
// during rack initialization.
type RecoverySiloConfig struct {
	SiloName         string `json:"silo_name"`
	UserName         string `json:"user_name"`
	UserPasswordHash string `json:"user_password_hash"`
}

// IPRange is an inclusive address range in the service's wire form, split
// by family rather than carried as a single tagged string.
type IPRange struct {
	V4 *IPv4Range `json:"v4,omitempty"`
	V6 *IPv6Range `json:"v6,omitempty"`
}

// IPv4Range is an inclusive IPv4 address range.
type IPv4Range struct {
	First netip.Addr `json:"first"`
	Last  netip.Addr `json:"last"`
}

// IPv6Range is an inclusive IPv6 address range.
type IPv6Range struct {
	First netip.Addr `json:"first"`
	Last  netip.Addr `json:"last"`
}

// PortSpeed is the configured speed of the rack uplink port.
type PortSpeed string

// Uplink port speeds supported by the rack switch.
const (
	Speed0G   PortSpeed = "speed0_g"
	Speed1G   PortSpeed = "speed1_g"
	Speed10G  PortSpeed = "speed10_g"
	Speed25G  PortSpeed = "speed25_g"
	Speed40G  PortSpeed = "speed40_g"
	Speed50G  PortSpeed = "speed50_g"
	Speed100G PortSpeed = "speed100_g"
	Speed200G PortSpeed = "speed200_g"
	Speed400G PortSpeed = "speed400_g"
)

// PortFec is the forward error correction scheme of the uplink port.
type PortFec string

// Forward error correction schemes supported by the rack switch.
const (
	FecFirecode PortFec = "firecode"
	FecNone     PortFec = "none"
	FecRs       PortFec = "rs"
)

// RackNetworkConfig is the uplink network configuration in wire form.
type RackNetworkConfig struct {
	GatewayIP       string    `json:"gateway_ip"`
	InfraIPFirst    string    `json:"infra_ip_first"`
	InfraIPLast     string    `json:"infra_ip_last"`
	UplinkPort      string    `json:"uplink_port"`
	UplinkPortSpeed PortSpeed `json:"uplink_port_speed"`
	UplinkPortFec   PortFec   `json:"uplink_port_fec"`
	UplinkIP        string    `json:"uplink_ip"`
	UplinkVID       uint16    `json:"uplink_vid"`
}

// RackInitializeRequest is the complete, validated payload handed to the
// provisioning service to initialize a rack.
type RackInitializeRequest struct {
	RackSubnet                   netip.Addr                `json:"rack_subnet"`
	BootstrapDiscovery           BootstrapAddressDiscovery `json:"bootstrap_discovery"`
	RackSecretThreshold          int                       `json:"rack_secret_threshold"`
	NTPServers                   []string                  `json:"ntp_servers"`
	DNSServers                   []string                  `json:"dns_servers"`
	InternalServicesIPPoolRanges []IPRange                 `json:"internal_services_ip_pool_ranges"`
	ExternalDNSZoneName          string                    `json:"external_dns_zone_name"`
	ExternalCertificates         []Certificate             `json:"external_certificates"`
	RecoverySilo                 RecoverySiloConfig        `json:"recovery_silo"`
	RackNetworkConfig            *RackNetworkConfig        `json:"rack_network_config,omitempty"`
}
