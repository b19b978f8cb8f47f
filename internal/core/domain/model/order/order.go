package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewDraftOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewDraftOrder constructor")
)

const entityName = "order"

// Order is the aggregate root of a forwarding shipment. A customer drafts it with the
// items they bought abroad; once confirmed it is matched to a host in the origin country
// who receives the items, photographs them and ships the parcel to the destination.
//
// Order follows these invariants:
//   - Origin country differs from the destination country
//   - Holds at least one item
//   - Has a host exactly when its status is Confirmed or later
//   - Only its owning customer may edit, delete or confirm it
//   - Only its assigned host may receive items, add photos or ship it
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	hostID        *kernel.UUID
	items         []*Item
	originCountry kernel.Country
	destination   kernel.Address
	shipmentCost  Cost
	status        Status
	shipmentInfo  *ShipmentInfo

	events []StatusChanged
	now    func() time.Time

	guard.ConstructorGuard
}

// NewDraftOrder creates an order in Drafted status.
//
// The shipment cost is expected to be already quoted for the given route and items.
// A StatusChanged event (Unknown -> Drafted) is recorded.
func NewDraftOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	originCountry kernel.Country,
	destination kernel.Address,
	items []*Item,
	cost Cost,
) (*Order, error) {
	order := &Order{
		status:           Drafted,
		now:              time.Now,
		ConstructorGuard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRoute(originCountry, destination),
		order.setItems(items),
		order.setShipmentCost(cost),
	); err != nil {
		return nil, err
	}

	order.record(Unknown, Drafted)
	return order, nil
}

// RestoreOrder rebuilds an order from persisted state. No events are recorded.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	hostID *kernel.UUID,
	originCountry kernel.Country,
	destination kernel.Address,
	items []*Item,
	cost Cost,
	status Status,
	shipmentInfo *ShipmentInfo,
) (*Order, error) {
	order := &Order{
		now:              time.Now,
		ConstructorGuard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRoute(originCountry, destination),
		order.setItems(items),
		order.setShipmentCost(cost),
		status.Validate(),
		status.ValidateCanHaveHost(hostID != nil),
	); err != nil {
		return nil, err
	}

	if hostID != nil {
		if err := hostID.Validate(); err != nil {
			return nil, err
		}
		h := *hostID
		order.hostID = &h
	}

	order.status = status
	if shipmentInfo != nil {
		info := *shipmentInfo
		order.shipmentInfo = &info
	}
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.ConstructorGuard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID               { return o.id }
func (o *Order) CustomerID() kernel.UUID       { return o.customerID }
func (o *Order) OriginCountry() kernel.Country { return o.originCountry }
func (o *Order) Destination() kernel.Address   { return o.destination }
func (o *Order) ShipmentCost() Cost            { return o.shipmentCost }
func (o *Order) Status() Status                { return o.status }
func (o *Order) Items() []*Item                { return slices.Clone(o.items) }
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// Host returns the assigned host's ID, nil while the order is Drafted.
func (o *Order) Host() *kernel.UUID {
	if o.hostID == nil {
		return nil
	}
	h := *o.hostID
	return &h
}

// ShipmentInfo returns the tracking data, nil until the order is Shipped.
func (o *Order) ShipmentInfo() *ShipmentInfo {
	if o.shipmentInfo == nil {
		return nil
	}
	info := *o.shipmentInfo
	return &info
}

// IsAssignedTo reports whether hostID is the order's host.
func (o *Order) IsAssignedTo(hostID kernel.UUID) bool {
	return o.hostID != nil && o.hostID.IsEqual(hostID)
}

// Item looks up an item by id. A missing item is reported as ObjectNotFound.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.id.IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("item", itemID)
}

// EnsureEditableBy checks that the customer owns this order and it is still Drafted.
// Orders of other customers are reported as not found so their existence is not leaked.
func (o *Order) EnsureEditableBy(customerID kernel.UUID) error {
	if !o.IsOwnedBy(customerID) {
		return errs.NewObjectNotFoundError(entityName, o.id)
	}
	if err := o.status.ValidateEdit(); err != nil {
		return o.conflict(err)
	}
	return nil
}

// Delete marks a Drafted order as Deleted. The caller removes it from storage.
func (o *Order) Delete() error {
	newStatus, err := o.status.Delete()
	if err != nil {
		return o.conflict(err)
	}
	o.transition(newStatus)
	return nil
}

// ValidateConfirm reports a state conflict unless the order can still be confirmed.
func (o *Order) ValidateConfirm() error {
	if _, err := o.status.Confirm(); err != nil {
		return o.conflict(err)
	}
	return nil
}

// Confirm assigns the selected host and moves the order to Confirmed.
func (o *Order) Confirm(hostID kernel.UUID) error {
	if err := hostID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return o.conflict(err)
	}

	o.hostID = &hostID
	o.transition(newStatus)
	return nil
}

// ReceiveItem records the date the assigned host received one item. When the last
// item arrives the order moves to ItemReceived.
func (o *Order) ReceiveItem(hostID, itemID kernel.UUID, at time.Time) error {
	if err := o.ensureAssignedTo(hostID); err != nil {
		return err
	}
	if err := o.status.ValidateReceive(); err != nil {
		return o.conflict(err)
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	if err := item.receive(at); err != nil {
		return o.conflict(err)
	}

	if !o.allItemsReceived() {
		return nil
	}

	newStatus, err := o.status.ReceiveAll()
	if err != nil {
		return o.conflict(err)
	}
	o.transition(newStatus)
	return nil
}

// AddItemPhotos appends photo references to an item held by the assigned host.
func (o *Order) AddItemPhotos(hostID, itemID kernel.UUID, photos []Photo) error {
	if len(photos) == 0 {
		return errs.NewValueIsRequiredError("photos")
	}
	if err := o.ensureAssignedTo(hostID); err != nil {
		return err
	}
	if err := o.status.ValidateAddPhoto(); err != nil {
		return o.conflict(err)
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}
	item.addPhotos(photos)
	return nil
}

// SubmitShipmentInfo records the carrier tracking number and moves the order to Shipped.
func (o *Order) SubmitShipmentInfo(hostID kernel.UUID, info ShipmentInfo) error {
	if err := o.ensureAssignedTo(hostID); err != nil {
		return err
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return o.conflict(err)
	}

	o.shipmentInfo = &info
	o.transition(newStatus)
	return nil
}

// DomainEvents returns the events recorded since construction or the last clear.
func (o *Order) DomainEvents() []StatusChanged {
	return slices.Clone(o.events)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) ensureAssignedTo(hostID kernel.UUID) error {
	if !o.IsAssignedTo(hostID) {
		return errs.NewObjectNotFoundError(entityName, o.id)
	}
	return nil
}

func (o *Order) allItemsReceived() bool {
	for _, item := range o.items {
		if !item.IsReceived() {
			return false
		}
	}
	return true
}

func (o *Order) transition(to Status) {
	from := o.status
	o.status = to
	o.record(from, to)
}

func (o *Order) record(from, to Status) {
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		CustomerID: o.customerID,
		HostID:     o.Host(),
		From:       from,
		To:         to,
		OccurredAt: o.now().UTC(),
	})
}

func (o *Order) conflict(cause error) error {
	return errs.NewStateConflictErrorWithCause(entityName, o.id, cause.Error(), cause)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRoute(origin kernel.Country, destination kernel.Address) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	if origin.IsEqual(destination.Country()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"destination",
			fmt.Errorf("origin and destination are both %s", origin),
		)
	}
	o.originCountry = origin
	o.destination = destination
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("duplicate item id %s", item.id))
		}
		seen[item.id] = struct{}{}
	}

	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setShipmentCost(cost Cost) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	o.shipmentCost = cost
	return nil
}
