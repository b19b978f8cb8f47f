// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - HostMatcher: selects the least-loaded available host in an order's origin
//     country and links the order and the host
//   - ServiceSelectionPolicy: picks one of the carrier services returned by a quote
//   - FindViolations: checks the customer and host back-references against the orders
package services
