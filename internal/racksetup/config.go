package racksetup

import (
	"fmt"
	"net/netip"
	"sort"

	"github.com/imamik/rackinit/internal/certs"
	"github.com/imamik/rackinit/internal/inventory"
	"github.com/imamik/rackinit/internal/netutil"
	"github.com/imamik/rackinit/internal/provision"
)

// RackSubnet is the fixed subnet every rack is initialized with. Multirack
// deployments will need this to vary; nothing else in rack setup does.
var RackSubnet = netip.MustParseAddr("fd00:1122:3344:100::")

// The recovery silo and its one user are created with fixed names; only
// the password hash comes from outside.
const (
	RecoverySiloName = "recovery"
	RecoveryUserName = "recovery"
)

// rackSecretThreshold is the share threshold for the rack secret. Trust
// quorum is not in effect during initial setup, so a single share
// suffices.
const rackSecretThreshold = 1

// partialCertificate holds up to one certificate half and one key half
// awaiting pairing. Both halves are cleared together on successful
// promotion, and only then: after a failed validation the operator must
// resubmit both halves.
type partialCertificate struct {
	cert []byte
	key  []byte
}

// Config is the draft rack configuration, filled in piecemeal by the
// operator. The zero value is an empty draft.
//
// Config is not safe for concurrent use; it is owned by a single setup
// session. Use [Session] for the locked variant.
type Config struct {
	inventory []inventory.Sled

	bootstrapSleds       []inventory.Sled
	ntpServers           []string
	dnsServers           []string
	ipPoolRanges         []netutil.IPRange
	externalDNSZoneName  string
	externalCertificates []provision.Certificate
	recoveryPasswordHash PasswordHash
	rackNetworkConfig    *RackNetworkConfig

	partialCert partialCertificate
}

// SetInventory replaces the known sled inventory from a fresh discovery
// report, attaching bootstrap addresses where peers knows one. No
// validation happens here: a previously selected sled that has vanished
// from the report stays selected until the next Update or StartRequest
// notices.
func (c *Config) SetInventory(inv *inventory.RackInventory, peers inventory.BootstrapPeers) {
	c.inventory = inventory.Sleds(inv, peers)
}

// Update wholesale-replaces every user-editable field from put.
//
// ourBaseboard identifies the sled this service is running on, when it
// has a genuine hardware identity; pass the zero Baseboard otherwise.
// Update fails, leaving the draft untouched, if our own sled is missing
// from the inventory, if put's selection would exclude it, if the
// selection names a slot not in the inventory, or if the network config
// carries an unknown enum value.
func (c *Config) Update(put PutUserConfig, ourBaseboard inventory.Baseboard) error {
	// A sled cannot remove itself from the rack it is configuring. First
	// confirm we appear in the inventory at all, then that the candidate
	// selection keeps us.
	if !ourBaseboard.IsZero() {
		ourSlot := -1
		for _, sled := range c.inventory {
			if sled.Baseboard == ourBaseboard {
				ourSlot = sled.ID.Slot
				break
			}
		}
		if ourSlot == -1 {
			return fmt.Errorf("inventory is missing the sled where this service is running (%s)", ourBaseboard)
		}
		selected := false
		for _, slot := range put.BootstrapSleds {
			if slot == ourSlot {
				selected = true
				break
			}
		}
		if !selected {
			return fmt.Errorf(
				"cannot remove the sled where this service is running (sled %d: %s) from bootstrap_sleds",
				ourSlot, ourBaseboard,
			)
		}
	}

	// The selection may only name sleds we know about.
	bySlot := make(map[int]inventory.Sled, len(c.inventory))
	for _, sled := range c.inventory {
		bySlot[sled.ID.Slot] = sled
	}
	seen := make(map[int]bool, len(put.BootstrapSleds))
	var bootstrapSleds []inventory.Sled
	for _, slot := range put.BootstrapSleds {
		sled, ok := bySlot[slot]
		if !ok {
			return fmt.Errorf("cannot add unknown sled %d to bootstrap_sleds", slot)
		}
		if seen[slot] {
			continue
		}
		seen[slot] = true
		bootstrapSleds = append(bootstrapSleds, sled)
	}
	sort.Slice(bootstrapSleds, func(i, j int) bool {
		return bootstrapSleds[i].ID.Slot < bootstrapSleds[j].ID.Slot
	})

	// Enum fields arrive as free-form strings; reject unknown values now
	// so the wire conversion at finalize only ever sees mapped values.
	if put.RackNetworkConfig != nil {
		if err := validateNetworkConfig(put.RackNetworkConfig); err != nil {
			return err
		}
	}

	c.bootstrapSleds = bootstrapSleds
	c.ntpServers = put.NTPServers
	c.dnsServers = put.DNSServers
	c.ipPoolRanges = put.InternalServicesIPPoolRanges
	c.externalDNSZoneName = put.ExternalDNSZoneName
	c.rackNetworkConfig = put.RackNetworkConfig

	return nil
}

// SetRecoveryPasswordHash stores the externally computed recovery user
// password hash.
func (c *Config) SetRecoveryPasswordHash(hash PasswordHash) {
	c.recoveryPasswordHash = hash
}

// PushCert stores the certificate half of a credential upload and, if the
// key half is already present, validates and promotes the pair.
func (c *Config) PushCert(cert []byte) (CertUploadResponse, error) {
	c.partialCert.cert = cert
	return c.maybePromoteCertificate()
}

// PushKey stores the key half of a credential upload and, if the
// certificate half is already present, validates and promotes the pair.
func (c *Config) PushKey(key []byte) (CertUploadResponse, error) {
	c.partialCert.key = key
	return c.maybePromoteCertificate()
}

func (c *Config) maybePromoteCertificate() (CertUploadResponse, error) {
	// Waiting on the other half is a status, not an error.
	switch {
	case c.partialCert.cert == nil && c.partialCert.key == nil:
		// Only reachable through PushCert or PushKey, each of which
		// stores its half first.
		panic("certificate promotion attempted with neither half present")
	case c.partialCert.cert == nil:
		return UploadWaitingOnCert, nil
	case c.partialCert.key == nil:
		return UploadWaitingOnKey, nil
	}

	// We run before the rack has trustworthy time, so expiration cannot
	// be checked here; the control plane re-validates it later.
	validator := certs.Validator{SkipExpirationCheck: true}
	if err := validator.Validate(c.partialCert.cert, c.partialCert.key); err != nil {
		// Both halves stay in place; the operator retries by
		// resubmitting both.
		return "", err
	}

	c.externalCertificates = append(c.externalCertificates, provision.Certificate{
		Cert: c.partialCert.cert,
		Key:  c.partialCert.key,
	})
	c.partialCert = partialCertificate{}

	return UploadAccepted, nil
}

// StartRequest assembles the rack initialization request from the
// accumulated draft. It is read-only and may be called repeatedly; each
// prerequisite failure is reported with its own message, in a fixed
// order. Bootstrap addresses are resolved from peers at call time, never
// cached from selection time, since they can change between sync and
// finalize.
func (c *Config) StartRequest(peers inventory.BootstrapPeers) (*provision.RackInitializeRequest, error) {
	if len(c.bootstrapSleds) == 0 {
		return nil, fmt.Errorf("bootstrap_sleds is empty (have you uploaded a config?)")
	}
	if len(c.ntpServers) == 0 {
		return nil, fmt.Errorf("at least one NTP server is required")
	}
	if len(c.dnsServers) == 0 {
		return nil, fmt.Errorf("at least one DNS server is required")
	}
	if len(c.ipPoolRanges) == 0 {
		return nil, fmt.Errorf("at least one internal services IP pool range is required")
	}
	if c.externalDNSZoneName == "" {
		return nil, fmt.Errorf("external DNS zone name is required")
	}
	if len(c.externalCertificates) == 0 {
		return nil, fmt.Errorf("at least one certificate/key pair is required")
	}
	if c.recoveryPasswordHash == "" {
		return nil, fmt.Errorf("recovery password not yet set")
	}
	if c.rackNetworkConfig == nil {
		return nil, fmt.Errorf("rack network config not set (have you uploaded a config?)")
	}

	bootstrapIPs := make([]netip.Addr, 0, len(c.bootstrapSleds))
	for _, sled := range c.bootstrapSleds {
		ip, ok := peers.Lookup(sled.Baseboard)
		if !ok {
			return nil, fmt.Errorf(
				"bootstrap address not (yet?) known for sled %d (%s)",
				sled.ID.Slot, sled.Baseboard,
			)
		}
		bootstrapIPs = append(bootstrapIPs, ip)
	}

	ipPoolRanges := make([]provision.IPRange, 0, len(c.ipPoolRanges))
	for _, r := range c.ipPoolRanges {
		ipPoolRanges = append(ipPoolRanges, convertIPRange(r))
	}

	return &provision.RackInitializeRequest{
		RackSubnet: RackSubnet,
		BootstrapDiscovery: provision.BootstrapAddressDiscovery{
			Mode:      provision.DiscoveryOnlyThese,
			Addresses: bootstrapIPs,
		},
		RackSecretThreshold:          rackSecretThreshold,
		NTPServers:                   append([]string(nil), c.ntpServers...),
		DNSServers:                   append([]string(nil), c.dnsServers...),
		InternalServicesIPPoolRanges: ipPoolRanges,
		ExternalDNSZoneName:          c.externalDNSZoneName,
		ExternalCertificates:         append([]provision.Certificate(nil), c.externalCertificates...),
		RecoverySilo: provision.RecoverySiloConfig{
			SiloName:         RecoverySiloName,
			UserName:         RecoveryUserName,
			UserPasswordHash: string(c.recoveryPasswordHash),
		},
		RackNetworkConfig: convertNetworkConfig(c.rackNetworkConfig),
	}, nil
}

// Snapshot produces the display-safe view of the draft. Certificate and
// password material is reduced to counts and booleans; when the operator
// has not selected any sleds yet the full inventory is shown in their
// place, purely as a display default.
func (c *Config) Snapshot() UserConfig {
	bootstrapSleds := c.bootstrapSleds
	if len(bootstrapSleds) == 0 {
		bootstrapSleds = c.inventory
	}

	return UserConfig{
		Sensitive: SensitiveConfig{
			NumExternalCertificates: len(c.externalCertificates),
			RecoveryPasswordSet:     c.recoveryPasswordHash != "",
		},
		Insensitive: InsensitiveConfig{
			BootstrapSleds:               append([]inventory.Sled(nil), bootstrapSleds...),
			NTPServers:                   append([]string(nil), c.ntpServers...),
			DNSServers:                   append([]string(nil), c.dnsServers...),
			InternalServicesIPPoolRanges: append([]netutil.IPRange(nil), c.ipPoolRanges...),
			ExternalDNSZoneName:          c.externalDNSZoneName,
			RackNetworkConfig:            c.rackNetworkConfig,
		},
	}
}
