package services

import (
	"errors"
	"fmt"

	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
)

// ErrNoHostAvailable is returned when no available host lives in the order's origin country.
var ErrNoHostAvailable = errors.New("no host available")

// SelectHost picks the host an order originating in country should go to.
//
// Candidates are the available hosts whose address is in country. Among them the one with
// the fewest assigned orders wins; ties go to the host that comes first in hosts, so callers
// must pass hosts in a stable order (registration order).
func SelectHost(country kernel.Country, hosts []*host.Host) (*host.Host, error) {
	var (
		best     *host.Host
		bestLoad int
	)

	for _, h := range hosts {
		if err := h.Validate(); err != nil {
			return nil, err
		}

		if !h.CanServe(country) {
			continue
		}

		if best == nil || h.OrderCount() < bestLoad {
			best = h
			bestLoad = h.OrderCount()
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w in %s", ErrNoHostAvailable, country)
	}

	return best, nil
}

// HostMatcher confirms drafted orders by assigning them to a host.
type HostMatcher struct{}

func NewHostMatcher() HostMatcher {
	return HostMatcher{}
}

// Match selects a host for o and applies the assignment to both aggregates: the order
// becomes Confirmed with the host id, and the host's order set gains the order id.
// Nothing is modified when an error is returned.
func (HostMatcher) Match(o *order.Order, hosts []*host.Host) (*host.Host, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := o.ValidateConfirm(); err != nil {
		return nil, err
	}

	best, err := SelectHost(o.OriginCountry(), hosts)
	if err != nil {
		return nil, err
	}

	if err = best.AddOrder(o.ID()); err != nil {
		return nil, err
	}

	if err = o.Confirm(best.ID()); err != nil {
		_ = best.RemoveOrder(o.ID())
		return nil, err
	}

	return best, nil
}
