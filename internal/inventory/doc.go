// Package inventory defines the identity and descriptor types for the
// physical members of a rack during initial setup.
//
// The discovery service reports every service processor it can see; only
// sled-type members are of interest to rack setup. A sled is identified by
// its [Baseboard] (serial, model, hardware revision) and located by its
// cubby slot. Bootstrap-network addresses come and go independently of the
// hardware inventory, so they are carried as a separate [BootstrapPeers]
// map keyed by baseboard.
package inventory
