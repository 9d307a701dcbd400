// Package kernel provides the value objects shared by every aggregate of the
// dispatch domain.
//
// The package includes:
//   - UUID: identifier value object with validation and text marshalling
//   - Location: a WGS84 latitude/longitude pair
//   - Money: a non-negative decimal amount in a fixed currency
//   - Principal: the authenticated actor (user id + role) handed to the core
//     by the upstream gateway
//
// Values are immutable and safe for concurrent use.
package kernel
