// Package quote prices shipments from a static rate table.
package quote

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"
)

// Rate prices one carrier service: a fixed handling fee plus a price per started 100 g
// of total parcel weight. Amounts are minor currency units.
type Rate struct {
	Service     string
	Base        int64
	Per100Grams int64
}

var defaultRates = []Rate{
	{Service: "express", Base: 2500, Per100Grams: 180},
	{Service: "standard", Base: 1500, Per100Grams: 120},
	{Service: "economy", Base: 900, Per100Grams: 90},
}

// RateTable is a deterministic ports.ShipmentCostQuoter. Routes listed in surcharges
// have every price scaled by the given percentage.
type RateTable struct {
	currency   string
	rates      []Rate
	surcharges map[route]int64
}

type route struct {
	origin      string
	destination string
}

type Option func(*RateTable)

func WithRates(rates ...Rate) Option {
	return func(t *RateTable) { t.rates = rates }
}

// WithSurcharge scales prices on the origin to destination route by percent (150 = +50%).
func WithSurcharge(origin, destination kernel.Country, percent int64) Option {
	return func(t *RateTable) {
		t.surcharges[route{origin.Code(), destination.Code()}] = percent
	}
}

func NewRateTable(currency string, opts ...Option) *RateTable {
	t := &RateTable{
		currency:   currency,
		rates:      defaultRates,
		surcharges: make(map[route]int64),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ ports.ShipmentCostQuoter = (*RateTable)(nil)

func (t *RateTable) Quote(
	_ context.Context,
	origin, destination kernel.Country,
	items []ports.QuoteItem,
) (ports.Quote, error) {
	if len(items) == 0 {
		return ports.Quote{}, errs.NewValueIsRequiredError("items")
	}

	var grams int64
	for _, item := range items {
		if item.Weight <= 0 {
			return ports.Quote{}, errs.NewValueIsOutOfRangeError("weight", int(item.Weight), 1, 1<<31-1)
		}
		grams += int64(item.Weight)
	}
	units := (grams + 99) / 100

	percent, ok := t.surcharges[route{origin.Code(), destination.Code()}]
	if !ok {
		percent = 100
	}

	quoted := make([]services.QuotedService, 0, len(t.rates))
	for _, rate := range t.rates {
		price := (rate.Base + rate.Per100Grams*units) * percent / 100
		quoted = append(quoted, services.QuotedService{Name: rate.Service, Price: price})
	}

	return ports.Quote{Currency: t.currency, Services: quoted}, nil
}
