package racksetup

import (
	"sync"

	"github.com/go-logr/logr"

	"github.com/imamik/rackinit/internal/inventory"
	"github.com/imamik/rackinit/internal/provision"
)

// Session owns the draft configuration for one rack setup session and
// serializes access to it. The transport layer delivering operator calls
// holds a single Session per rack; every operation takes the session lock
// so a reader never observes a half-applied update.
type Session struct {
	mu  sync.Mutex
	cfg Config
	log logr.Logger
}

// NewSession creates an empty setup session logging through log.
func NewSession(log logr.Logger) *Session {
	return &Session{log: log.WithName("racksetup")}
}

// SetInventory refreshes the known sled inventory from discovery.
func (s *Session) SetInventory(inv *inventory.RackInventory, peers inventory.BootstrapPeers) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.SetInventory(inv, peers)
	s.log.V(1).Info("inventory refreshed", "sleds", len(s.cfg.inventory))
}

// Update applies a bulk config update. See [Config.Update].
func (s *Session) Update(put PutUserConfig, ourBaseboard inventory.Baseboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cfg.Update(put, ourBaseboard); err != nil {
		updatesTotal.WithLabelValues(resultError).Inc()
		s.log.Info("config update rejected", "reason", err.Error())
		return err
	}
	updatesTotal.WithLabelValues(resultSuccess).Inc()
	s.log.Info("config updated",
		"bootstrapSleds", len(put.BootstrapSleds),
		"ntpServers", len(put.NTPServers),
		"dnsServers", len(put.DNSServers),
		"ipPoolRanges", len(put.InternalServicesIPPoolRanges),
		"externalDNSZone", put.ExternalDNSZoneName,
	)
	return nil
}

// SetRecoveryPasswordHash stores the externally computed recovery
// password hash.
func (s *Session) SetRecoveryPasswordHash(hash PasswordHash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.SetRecoveryPasswordHash(hash)
	// The hash itself is sensitive; log only the fact it was set.
	s.log.Info("recovery password hash set")
}

// PushCert submits the certificate half of a credential upload.
func (s *Session) PushCert(cert []byte) (CertUploadResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordUpload(s.cfg.PushCert(cert))
}

// PushKey submits the key half of a credential upload.
func (s *Session) PushKey(key []byte) (CertUploadResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordUpload(s.cfg.PushKey(key))
}

func (s *Session) recordUpload(resp CertUploadResponse, err error) (CertUploadResponse, error) {
	if err != nil {
		certUploadsTotal.WithLabelValues("rejected").Inc()
		s.log.Info("certificate upload rejected", "reason", err.Error())
		return "", err
	}
	certUploadsTotal.WithLabelValues(string(resp)).Inc()
	if resp == UploadAccepted {
		s.log.Info("certificate pair accepted",
			"totalCertificates", len(s.cfg.externalCertificates))
	}
	return resp, nil
}

// StartRequest finalizes the draft into a rack initialization request.
// See [Config.StartRequest].
func (s *Session) StartRequest(peers inventory.BootstrapPeers) (*provision.RackInitializeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, err := s.cfg.StartRequest(peers)
	if err != nil {
		finalizeTotal.WithLabelValues(resultError).Inc()
		return nil, err
	}
	finalizeTotal.WithLabelValues(resultSuccess).Inc()
	s.log.Info("rack initialization request assembled",
		"sleds", len(req.BootstrapDiscovery.Addresses),
		"certificates", len(req.ExternalCertificates),
	)
	return req, nil
}

// Snapshot returns the display-safe view of the draft.
func (s *Session) Snapshot() UserConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Snapshot()
}
