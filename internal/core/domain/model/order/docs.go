// Package order provides domain entities and business logic for customer
// order management in the restaurant system.
//
// The package includes:
//   - Order: The aggregate root owning customer details, status, total, and lines
//   - Line: A write-once order row with a price-snapshotted catalog reference
//   - Status: A free-form, non-blank status label defaulting to PENDING
//
// Key business rules:
//   - A line's unit price is copied from the catalog at build time and is
//     never affected by later catalog changes (price snapshot)
//   - The order total always equals the sum of quantity x unit price over
//     its lines and is recomputed after every line mutation
//   - Orders are persisted with at least one line; the rule is enforced at
//     the creation boundary
//   - Status carries no transition graph; any non-blank label is accepted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
