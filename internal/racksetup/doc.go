// Package racksetup accumulates the operator-provided configuration for
// initializing a rack.
//
// Configuration arrives piecemeal and out of order: the discovery service
// refreshes the sled inventory, the operator uploads network settings and
// TLS credentials, and a recovery password hash is computed elsewhere and
// handed in. [Config] collects these pieces into a single draft, validates
// cross-field consistency on every change, and produces a fully-validated
// [provision.RackInitializeRequest] once everything required is present.
//
// [Session] wraps a Config with the locking, logging, and metrics expected
// by the transport layer that drives it; the Config itself is a plain
// state machine with no ambient dependencies.
package racksetup
