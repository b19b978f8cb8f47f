package commands

import (
	"context"
	"fmt"

	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
)

// DraftOrderCommandHandler quotes the route, creates the order in Drafted status and
// links it to the customer, atomically.
type DraftOrderCommandHandler struct {
	runner Runner
	quoter ports.ShipmentCostQuoter
	policy services.ServiceSelectionPolicy
}

// NewDraftOrderCommandHandler creates the handler. A nil policy means FirstService.
func NewDraftOrderCommandHandler(
	runner Runner,
	quoter ports.ShipmentCostQuoter,
	policy services.ServiceSelectionPolicy,
) DraftOrderCommandHandler {
	if policy == nil {
		policy = services.FirstService
	}
	return DraftOrderCommandHandler{
		runner: runner,
		quoter: quoter,
		policy: policy,
	}
}

// Handle drafts the order. When ctx already carries a transaction (an edit in
// progress), the draft joins it.
func (h DraftOrderCommandHandler) Handle(ctx context.Context, command DraftOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		if _, err := uow.CustomerRepository().Get(ctx, command.CustomerID()); err != nil {
			return err
		}

		cost, err := h.quote(ctx, command)
		if err != nil {
			return err
		}

		items, err := command.buildItems()
		if err != nil {
			return err
		}

		o, err := order.NewDraftOrder(
			command.OrderID(),
			command.CustomerID(),
			command.OriginCountry(),
			command.Destination(),
			items,
			cost,
		)
		if err != nil {
			return err
		}

		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			return err
		}

		return uow.CustomerRepository().AddOrder(ctx, command.CustomerID(), o.ID())
	})
}

func (h DraftOrderCommandHandler) quote(ctx context.Context, command DraftOrderCommand) (order.Cost, error) {
	weights := command.weights()
	items := make([]ports.QuoteItem, 0, len(weights))
	for _, w := range weights {
		items = append(items, ports.QuoteItem{Weight: w})
	}

	quote, err := h.quoter.Quote(ctx, command.OriginCountry(), command.Destination().Country(), items)
	if err != nil {
		return order.Cost{}, fmt.Errorf("quote shipment: %w", err)
	}

	service, err := h.policy(quote.Services)
	if err != nil {
		return order.Cost{}, err
	}

	return order.NewCost(service.Price, quote.Currency)
}
