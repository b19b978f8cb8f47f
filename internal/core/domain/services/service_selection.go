package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoServiceQuoted is returned when a quote carries no carrier services.
var ErrNoServiceQuoted = errors.New("quote has no services")

// QuotedService is one carrier option returned by the shipment cost quoter.
type QuotedService struct {
	Name  string
	Price int64
}

// ServiceSelectionPolicy chooses which quoted service prices a drafted order.
type ServiceSelectionPolicy func(services []QuotedService) (QuotedService, error)

// FirstService takes the first quoted service.
func FirstService(services []QuotedService) (QuotedService, error) {
	if len(services) == 0 {
		return QuotedService{}, ErrNoServiceQuoted
	}
	return services[0], nil
}

// CheapestService takes the lowest price; ties keep the earlier service.
func CheapestService(services []QuotedService) (QuotedService, error) {
	if len(services) == 0 {
		return QuotedService{}, ErrNoServiceQuoted
	}
	best := services[0]
	for _, s := range services[1:] {
		if s.Price < best.Price {
			best = s
		}
	}
	return best, nil
}

// PolicyByName resolves a configured policy name ("first" or "cheapest").
func PolicyByName(name string) (ServiceSelectionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "first":
		return FirstService, nil
	case "cheapest":
		return CheapestService, nil
	default:
		return nil, fmt.Errorf("unknown service selection policy %q", name)
	}
}
