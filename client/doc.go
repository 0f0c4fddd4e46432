// Package client provides the high-level EMC API client.
//
// This is the recommended entry point for most users. It wires the
// transport, session, and request executor together from a single Config
// and exposes typed operations for the API's resources:
//
//   - endpoint inventory (list, get, delete)
//   - hardware information
//   - out-of-band power operations (power on/off, hibernate, sleep,
//     boot to BIOS)
//   - AMT provisioning
//   - tenants and users
//
// List operations accept optional client-side predicates. Predicates are
// applied after a successful fetch and never affect the request sent to the
// server; a predicate that matches nothing yields an empty slice, which is
// a success, not an error.
package client
