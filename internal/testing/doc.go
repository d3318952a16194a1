// Package testing provides shared fixtures and builders for rack setup
// tests:
//   - TLS credential fixtures: valid, expired, and mismatched PEM
//     certificate/key pairs generated on the fly
//   - inventory builders for discovery reports and bootstrap peer maps
//
// Import it aliased (conventionally rstesting) to avoid shadowing the
// standard library testing package.
package testing
