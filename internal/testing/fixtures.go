package testing

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"
)

// TLSPair generates a self-signed ECDSA certificate and matching private
// key, both PEM-encoded, valid for one hour around now.
func TLSPair(t *testing.T) (certPEM, keyPEM []byte) {
	t.Helper()
	return tlsPair(t, time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
}

// ExpiredTLSPair generates a matching pair whose certificate expired a
// year ago.
func ExpiredTLSPair(t *testing.T) (certPEM, keyPEM []byte) {
	t.Helper()
	return tlsPair(t, time.Now().Add(-2*365*24*time.Hour), time.Now().Add(-365*24*time.Hour))
}

// MismatchedTLSPair generates a certificate and a private key that are
// each individually well-formed but do not belong together.
func MismatchedTLSPair(t *testing.T) (certPEM, keyPEM []byte) {
	t.Helper()
	certPEM, _ = TLSPair(t)
	_, keyPEM = TLSPair(t)
	return certPEM, keyPEM
}

func tlsPair(t *testing.T, notBefore, notAfter time.Time) (certPEM, keyPEM []byte) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "rack-setup-test"},
		DNSNames:     []string{"example.com"},
		NotBefore:    notBefore,
		NotAfter:     notAfter,
		KeyUsage:     x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("failed to create certificate: %v", err)
	}

	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("failed to marshal private key: %v", err)
	}

	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	return certPEM, keyPEM
}
