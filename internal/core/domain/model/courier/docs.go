// Package courier provides domain entities and business logic for courier
// management in the dispatch system. It implements the Courier aggregate root
// with shift availability, live position tracking, and the earnings wallet.
//
// The package includes:
//   - Courier: The aggregate root managing identity, availability, position and wallet
//   - Status: The shift availability state machine (Offline/Online/Busy)
//   - PayPolicy: The compensation scheme applied on each completed delivery
//
// Key business rules:
//   - Couriers must have a valid unique identifier, name, location and pay policy
//   - Only couriers on shift may receive assignments; busy couriers can be
//     stacked with additional orders through manual assignment only
//   - Earnings are credited in whole cents per the courier's pay policy
//   - At most one wallet advance may be pending, and an advance can never
//     exceed the wallet balance
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
