// Package certs validates operator-uploaded TLS credentials before they
// are handed to the provisioning service.
//
// Rack setup runs before the rack has a trusted time source, so the
// validator can be told to skip expiration checks; a later-stage
// validator re-checks expiry once NTP is up.
package certs

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"time"
)

// Validator checks the structural validity of a PEM certificate chain and
// private key, and that the two form a matching pair.
type Validator struct {
	// SkipExpirationCheck disables NotBefore/NotAfter validation. Set
	// during early rack setup, when wall-clock time is untrustworthy.
	SkipExpirationCheck bool

	// now is overridable for tests; nil means time.Now.
	now func() time.Time
}

// Validate checks cert (a PEM certificate chain) and key (a PEM private
// key) and returns a descriptive error if either is malformed, if they do
// not match, or — unless SkipExpirationCheck is set — if the leaf
// certificate is not currently valid.
func (v *Validator) Validate(cert, key []byte) error {
	pair, err := tls.X509KeyPair(cert, key)
	if err != nil {
		return fmt.Errorf("invalid certificate/key pair: %w", err)
	}

	// X509KeyPair parses every certificate in the chain but only keeps
	// the DER bytes; re-parse the leaf for the expiry check.
	leaf, err := x509.ParseCertificate(pair.Certificate[0])
	if err != nil {
		return fmt.Errorf("invalid certificate: %w", err)
	}

	if !v.SkipExpirationCheck {
		now := time.Now()
		if v.now != nil {
			now = v.now()
		}
		if now.Before(leaf.NotBefore) {
			return fmt.Errorf("certificate not valid until %s", leaf.NotBefore)
		}
		if now.After(leaf.NotAfter) {
			return fmt.Errorf("certificate expired at %s", leaf.NotAfter)
		}
	}

	return nil
}
