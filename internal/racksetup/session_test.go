package racksetup

import (
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/rackinit/internal/inventory"
	rstesting "github.com/imamik/rackinit/internal/testing"
)

func TestSessionFullFlow(t *testing.T) {
	s := NewSession(logr.Discard())
	peers := rstesting.Peers("alpha", "bravo")
	s.SetInventory(rstesting.SledInventory("alpha", "bravo"), peers)

	require.NoError(t, s.Update(validPut(), rstesting.SledBaseboard("alpha")))

	certPEM, keyPEM := rstesting.TLSPair(t)
	resp, err := s.PushCert(certPEM)
	require.NoError(t, err)
	assert.Equal(t, UploadWaitingOnKey, resp)
	resp, err = s.PushKey(keyPEM)
	require.NoError(t, err)
	assert.Equal(t, UploadAccepted, resp)

	s.SetRecoveryPasswordHash("$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA")

	req, err := s.StartRequest(peers)
	require.NoError(t, err)
	assert.Len(t, req.BootstrapDiscovery.Addresses, 2)

	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Sensitive.NumExternalCertificates)
	assert.True(t, snap.Sensitive.RecoveryPasswordSet)
}

func TestSessionPropagatesErrors(t *testing.T) {
	s := NewSession(logr.Discard())
	s.SetInventory(rstesting.SledInventory("alpha"), rstesting.Peers("alpha"))

	put := validPut()
	put.BootstrapSleds = []int{5}
	err := s.Update(put, inventory.Baseboard{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot add unknown sled 5")

	_, err = s.StartRequest(rstesting.Peers("alpha"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bootstrap_sleds is empty")
}

func TestSessionConcurrentReaders(t *testing.T) {
	// Snapshot and update racing must never observe a half-applied
	// update; run with -race to exercise this.
	s := NewSession(logr.Discard())
	s.SetInventory(rstesting.SledInventory("alpha", "bravo"), rstesting.Peers("alpha", "bravo"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Update(validPut(), inventory.Baseboard{})
		}()
		go func() {
			defer wg.Done()
			snap := s.Snapshot()
			// Either the empty draft or a fully applied update.
			n := len(snap.Insensitive.NTPServers)
			assert.True(t, n == 0 || n == 1)
		}()
	}
	wg.Wait()
}

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterMetrics(reg)

	// Double registration is a programming error and must panic.
	assert.Panics(t, func() { RegisterMetrics(reg) })
}
