package queries

import (
	"context"

	"forwarding/internal/core/application/transaction"
	"forwarding/internal/core/domain/services"
	"forwarding/internal/core/ports"
)

// Runner executes work in one transaction. *transaction.Runner is the production implementation.
type Runner interface {
	Run(ctx context.Context, work transaction.Work) error
}

// AuditConsistencyQueryHandler loads all three aggregate sets in one serializable
// transaction, so the audit sees a single committed state. It never writes.
type AuditConsistencyQueryHandler struct {
	runner Runner
}

func NewAuditConsistencyQueryHandler(runner Runner) AuditConsistencyQueryHandler {
	return AuditConsistencyQueryHandler{runner: runner}
}

func (h AuditConsistencyQueryHandler) Handle(
	ctx context.Context,
	query AuditConsistencyQuery,
) (AuditConsistencyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuditConsistencyQueryResponse{}, err
	}

	var response AuditConsistencyQueryResponse
	err := h.runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
		customers, err := uow.CustomerRepository().GetAll(ctx)
		if err != nil {
			return err
		}
		hosts, err := uow.HostRepository().GetAll(ctx)
		if err != nil {
			return err
		}
		orders, err := uow.OrderRepository().GetAll(ctx)
		if err != nil {
			return err
		}

		response = AuditConsistencyQueryResponse{
			Customers:  len(customers),
			Hosts:      len(hosts),
			Orders:     len(orders),
			Violations: services.FindViolations(customers, hosts, orders),
		}
		return nil
	})
	if err != nil {
		return AuditConsistencyQueryResponse{}, err
	}

	return response, nil
}
