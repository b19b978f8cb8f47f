package host

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrHostIsNotConstructed = errors.New("Host must be created via NewHost constructor")

// Host receives customers' items in its country, inspects them and ships them on.
//
// orderIDs holds the id of every Confirmed-or-later order assigned to the host; its size
// is the host's load as seen by the matching engine.
type Host struct {
	id        kernel.UUID
	address   kernel.Address
	available bool
	orderIDs  kernel.OrderSet
	guard     guard.ConstructorGuard
}

// NewHost registers a host with no orders.
func NewHost(id kernel.UUID, address kernel.Address, available bool) (*Host, error) {
	return RestoreHost(id, address, available, nil)
}

// RestoreHost rebuilds a host from storage.
func RestoreHost(id kernel.UUID, address kernel.Address, available bool, orderIDs []kernel.UUID) (*Host, error) {
	if err := errors.Join(id.Validate(), address.Validate()); err != nil {
		return nil, err
	}

	return &Host{
		id:        id,
		address:   address,
		available: available,
		orderIDs:  kernel.NewOrderSet(orderIDs...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (h *Host) Validate() error {
	if h == nil {
		return ErrHostIsNotConstructed
	}
	return h.guard.Validate(ErrHostIsNotConstructed)
}

func (h *Host) ID() kernel.UUID              { return h.id }
func (h *Host) Address() kernel.Address      { return h.address }
func (h *Host) Country() kernel.Country      { return h.address.Country() }
func (h *Host) IsAvailable() bool            { return h.available }
func (h *Host) OrderIDs() []kernel.UUID      { return h.orderIDs.IDs() }
func (h *Host) OrderCount() int              { return h.orderIDs.Len() }
func (h *Host) HasOrder(id kernel.UUID) bool { return h.orderIDs.Contains(id) }

// SetAvailability toggles whether the host accepts new orders. Orders already
// assigned are unaffected.
func (h *Host) SetAvailability(available bool) {
	h.available = available
}

// CanServe reports whether the host may be matched to an order originating in country.
func (h *Host) CanServe(country kernel.Country) bool {
	return h.available && h.address.Country().IsEqual(country)
}

// AddOrder links a confirmed order. Linking it twice is a state conflict.
func (h *Host) AddOrder(orderID kernel.UUID) error {
	if !h.orderIDs.Add(orderID) {
		return errs.NewStateConflictError("host", h.id, "order "+orderID.String()+" is already linked")
	}
	return nil
}

// RemoveOrder unlinks an order. Unlinking an unknown order is a state conflict.
func (h *Host) RemoveOrder(orderID kernel.UUID) error {
	if !h.orderIDs.Remove(orderID) {
		return errs.NewStateConflictError("host", h.id, "order "+orderID.String()+" is not linked")
	}
	return nil
}
