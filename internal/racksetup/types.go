package racksetup

import (
	"github.com/imamik/rackinit/internal/inventory"
	"github.com/imamik/rackinit/internal/netutil"
)

// PortSpeed is the operator-facing uplink port speed setting.
type PortSpeed string

// Uplink port speeds the operator may configure.
const (
	Speed0G   PortSpeed = "0G"
	Speed1G   PortSpeed = "1G"
	Speed10G  PortSpeed = "10G"
	Speed25G  PortSpeed = "25G"
	Speed40G  PortSpeed = "40G"
	Speed50G  PortSpeed = "50G"
	Speed100G PortSpeed = "100G"
	Speed200G PortSpeed = "200G"
	Speed400G PortSpeed = "400G"
)

// PortFec is the operator-facing forward error correction setting.
type PortFec string

// Forward error correction schemes the operator may configure.
const (
	FecFirecode PortFec = "firecode"
	FecNone     PortFec = "none"
	FecRs       PortFec = "rs"
)

// RackNetworkConfig holds the rack's uplink network settings as supplied
// by the operator.
type RackNetworkConfig struct {
	GatewayIP       string    `json:"gateway_ip" yaml:"gateway_ip"`
	InfraIPFirst    string    `json:"infra_ip_first" yaml:"infra_ip_first"`
	InfraIPLast     string    `json:"infra_ip_last" yaml:"infra_ip_last"`
	UplinkPort      string    `json:"uplink_port" yaml:"uplink_port"`
	UplinkPortSpeed PortSpeed `json:"uplink_port_speed" yaml:"uplink_port_speed"`
	UplinkPortFec   PortFec   `json:"uplink_port_fec" yaml:"uplink_port_fec"`
	UplinkIP        string    `json:"uplink_ip" yaml:"uplink_ip"`
	UplinkVID       uint16    `json:"uplink_vid" yaml:"uplink_vid"`
}

// PutUserConfig is the bulk update payload: the full set of user-editable
// fields, replaced wholesale on every update. BootstrapSleds lists the
// cubby slots of the sleds selected to join the rack.
type PutUserConfig struct {
	BootstrapSleds               []int              `json:"bootstrap_sleds" yaml:"bootstrap_sleds"`
	NTPServers                   []string           `json:"ntp_servers" yaml:"ntp_servers"`
	DNSServers                   []string           `json:"dns_servers" yaml:"dns_servers"`
	InternalServicesIPPoolRanges []netutil.IPRange  `json:"internal_services_ip_pool_ranges" yaml:"internal_services_ip_pool_ranges"`
	ExternalDNSZoneName          string             `json:"external_dns_zone_name" yaml:"external_dns_zone_name"`
	RackNetworkConfig            *RackNetworkConfig `json:"rack_network_config" yaml:"rack_network_config"`
}

// PasswordHash is an externally computed password hash in PHC string
// format. This package never sees, and must never log, a plaintext
// password.
type PasswordHash string

// CertUploadResponse reports the outcome of one half of a certificate
// upload.
type CertUploadResponse string

const (
	// UploadWaitingOnCert: the key half is stored; the certificate half
	// has not arrived yet.
	UploadWaitingOnCert CertUploadResponse = "waiting_on_cert"
	// UploadWaitingOnKey: the certificate half is stored; the key half
	// has not arrived yet.
	UploadWaitingOnKey CertUploadResponse = "waiting_on_key"
	// UploadAccepted: both halves arrived, validated as a pair, and were
	// appended to the accepted certificate list.
	UploadAccepted CertUploadResponse = "cert_key_accepted"
)

// SensitiveConfig is the display-safe projection of fields whose contents
// must never be echoed back: only counts and booleans.
type SensitiveConfig struct {
	NumExternalCertificates int  `json:"num_external_certificates"`
	RecoveryPasswordSet     bool `json:"recovery_password_set"`
}

// InsensitiveConfig mirrors the user-editable fields for display. When the
// operator has made no explicit selection, BootstrapSleds reports the full
// inventory as a display default.
type InsensitiveConfig struct {
	BootstrapSleds               []inventory.Sled   `json:"bootstrap_sleds"`
	NTPServers                   []string           `json:"ntp_servers"`
	DNSServers                   []string           `json:"dns_servers"`
	InternalServicesIPPoolRanges []netutil.IPRange  `json:"internal_services_ip_pool_ranges"`
	ExternalDNSZoneName          string             `json:"external_dns_zone_name"`
	RackNetworkConfig            *RackNetworkConfig `json:"rack_network_config"`
}

// UserConfig is the full display snapshot of the current draft.
type UserConfig struct {
	Sensitive   SensitiveConfig   `json:"sensitive"`
	Insensitive InsensitiveConfig `json:"insensitive"`
}
