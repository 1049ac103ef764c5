// Package kernel contains shared value objects used across the domain model.
//
// The package currently provides UUID, an immutable identifier value object
// wrapping github.com/google/uuid. Zero values are invalid by construction;
// identifiers must be created through NewUUID, UUIDFromString, or
// UUIDFromBytes so that aggregates never carry a nil identity.
package kernel
