// Package order implements the Order aggregate of the forwarding platform.
//
// The package includes:
//   - Order: the aggregate root holding route, items, quoted cost, host and lifecycle
//   - Item: a purchase nested in an order, received and photographed by the host
//   - Status: the state machine Drafted -> Confirmed -> ItemReceived -> Shipped (or Deleted)
//   - Cost and ShipmentInfo: validated value objects
//   - StatusChanged: the domain event recorded on every transition
//
// Ownership rules are enforced on the aggregate itself: requests made by anyone other
// than the owning customer or the assigned host fail with errs.ErrObjectNotFound, and
// transitions attempted from the wrong status fail with errs.ErrStateConflict.
package order
