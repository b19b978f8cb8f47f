package memory

import (
	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/order"
)

// Aggregates are mutable, so the store keeps private copies rebuilt through the same
// restore constructors the database adapter uses. Restoring a valid aggregate cannot
// fail; a failure means the store itself is corrupt.

func cloneCustomer(c *customer.Customer) *customer.Customer {
	out, err := customer.RestoreCustomer(c.ID(), c.SelectedAddress(), c.OrderIDs())
	if err != nil {
		panic(err)
	}
	return out
}

func cloneHost(h *host.Host) *host.Host {
	out, err := host.RestoreHost(h.ID(), h.Address(), h.IsAvailable(), h.OrderIDs())
	if err != nil {
		panic(err)
	}
	return out
}

func cloneOrder(o *order.Order) *order.Order {
	items := make([]*order.Item, 0, len(o.Items()))
	for _, item := range o.Items() {
		restored, err := order.RestoreItem(item.ID(), item.Title(), item.StoreName(), item.Weight(),
			item.ReceivedDate(), item.Photos())
		if err != nil {
			panic(err)
		}
		items = append(items, restored)
	}

	out, err := order.RestoreOrder(o.ID(), o.CustomerID(), o.Host(), o.OriginCountry(), o.Destination(),
		items, o.ShipmentCost(), o.Status(), o.ShipmentInfo())
	if err != nil {
		panic(err)
	}
	return out
}
