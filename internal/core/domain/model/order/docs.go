// Package order provides domain entities and business logic for order
// management in the dispatch system. It implements the Order aggregate root
// with a strictly forward lifecycle and a write-once courier binding.
//
// The package includes:
//   - Order: The aggregate root managing identity, pricing, and lifecycle
//   - Status: The lifecycle state machine (Pending/Accepted/InRoute/Delivered)
//
// Key business rules:
//   - Orders must have a valid identifier, store, number, client, address,
//     and drop location
//   - Lifecycle transitions never skip a step and never go backwards
//   - The courier is bound exactly once, at assignment
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
