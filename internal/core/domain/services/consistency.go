package services

import (
	"fmt"

	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
)

// ViolationKind names one way the order back-references can disagree with the orders.
type ViolationKind string

const (
	// MissingCustomerRef: the order's customer does not list it, or the customer is gone.
	MissingCustomerRef ViolationKind = "missing_customer_ref"
	// DanglingCustomerRef: a customer lists an order that is absent or owned by someone else.
	DanglingCustomerRef ViolationKind = "dangling_customer_ref"
	// MissingHostRef: a confirmed order's host does not list it, or the host is gone.
	MissingHostRef ViolationKind = "missing_host_ref"
	// DanglingHostRef: a host lists an order that is absent, not confirmed, or assigned elsewhere.
	DanglingHostRef ViolationKind = "dangling_host_ref"
)

type Violation struct {
	Kind        ViolationKind
	OrderID     kernel.UUID
	AggregateID kernel.UUID
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: order %s, aggregate %s", v.Kind, v.OrderID, v.AggregateID)
}

// FindViolations compares every order with the id sets held by customers and hosts.
// An empty result means the back-references are exactly the sets they should be.
func FindViolations(customers []*customer.Customer, hosts []*host.Host, orders []*order.Order) []Violation {
	var (
		violations   []Violation
		customerByID = make(map[kernel.UUID]*customer.Customer, len(customers))
		hostByID     = make(map[kernel.UUID]*host.Host, len(hosts))
		orderByID    = make(map[kernel.UUID]*order.Order, len(orders))
	)

	for _, c := range customers {
		customerByID[c.ID()] = c
	}
	for _, h := range hosts {
		hostByID[h.ID()] = h
	}
	for _, o := range orders {
		orderByID[o.ID()] = o
	}

	for _, o := range orders {
		if o.Status() == order.Deleted {
			continue
		}

		if c, ok := customerByID[o.CustomerID()]; !ok || !c.HasOrder(o.ID()) {
			violations = append(violations, Violation{MissingCustomerRef, o.ID(), o.CustomerID()})
		}

		hostID := o.Host()
		if hostID == nil || !o.Status().IsConfirmedOrLater() {
			continue
		}
		if h, ok := hostByID[*hostID]; !ok || !h.HasOrder(o.ID()) {
			violations = append(violations, Violation{MissingHostRef, o.ID(), *hostID})
		}
	}

	for _, c := range customers {
		for _, orderID := range c.OrderIDs() {
			o, ok := orderByID[orderID]
			if !ok || o.Status() == order.Deleted || !o.IsOwnedBy(c.ID()) {
				violations = append(violations, Violation{DanglingCustomerRef, orderID, c.ID()})
			}
		}
	}

	for _, h := range hosts {
		for _, orderID := range h.OrderIDs() {
			o, ok := orderByID[orderID]
			if !ok || !o.Status().IsConfirmedOrLater() || !o.IsAssignedTo(h.ID()) {
				violations = append(violations, Violation{DanglingHostRef, orderID, h.ID()})
			}
		}
	}

	return violations
}
