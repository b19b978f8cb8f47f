package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/services"
)

// QuoteItem is the part of an item the quoter prices on.
type QuoteItem struct {
	Weight order.Gram
}

// Quote lists the carrier services able to ship a parcel, each priced in Currency minor units.
type Quote struct {
	Currency string
	Services []services.QuotedService
}

// ShipmentCostQuoter prices a route. Implementations must be deterministic for equal inputs.
type ShipmentCostQuoter interface {
	Quote(ctx context.Context, origin, destination kernel.Country, items []QuoteItem) (Quote, error)
}
