// Package kernel contains the shared value objects of the dispatch domain.
//
// The kernel holds types that are used across aggregate boundaries and carry
// no aggregate-specific behavior of their own:
//
//   - UUID: validated identifier wrapping github.com/google/uuid
//   - GeoPoint: validated geographic coordinate pair with haversine distance
//
// All kernel types are immutable value objects constructed through factory
// functions that enforce their invariants. The zero value of each type is
// invalid and detectable via Validate().
package kernel
