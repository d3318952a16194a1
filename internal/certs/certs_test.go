package certs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rstesting "github.com/imamik/rackinit/internal/testing"
)

func TestValidateMatchingPair(t *testing.T) {
	cert, key := rstesting.TLSPair(t)
	v := Validator{}
	assert.NoError(t, v.Validate(cert, key))
}

func TestValidateMismatchedPair(t *testing.T) {
	cert, key := rstesting.MismatchedTLSPair(t)
	v := Validator{}
	err := v.Validate(cert, key)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid certificate/key pair")
}

func TestValidateGarbage(t *testing.T) {
	cert, key := rstesting.TLSPair(t)
	v := Validator{}

	assert.Error(t, v.Validate([]byte("not a certificate"), key))
	assert.Error(t, v.Validate(cert, []byte("not a key")))
	assert.Error(t, v.Validate(nil, nil))

	// Halves swapped: a key in the cert slot is structurally invalid.
	assert.Error(t, v.Validate(key, cert))
}

func TestValidateExpiration(t *testing.T) {
	cert, key := rstesting.ExpiredTLSPair(t)

	v := Validator{}
	err := v.Validate(cert, key)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "certificate expired")

	// Pre-NTP callers disable the expiry check.
	v = Validator{SkipExpirationCheck: true}
	assert.NoError(t, v.Validate(cert, key))
}

func TestValidateNotYetValid(t *testing.T) {
	cert, key := rstesting.TLSPair(t)

	// Wind the validator's clock back before the cert's NotBefore.
	v := Validator{now: func() time.Time { return time.Now().Add(-24 * time.Hour) }}
	err := v.Validate(cert, key)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid until")
}
