package queries

import (
	"errors"

	"forwarding/internal/core/domain/services"
	"forwarding/internal/pkg/guard"
)

var ErrAuditConsistencyQueryIsNotConstructed = errors.New(
	"AuditConsistencyQuery must be created via NewAuditConsistencyQuery constructor",
)

// AuditConsistencyQuery checks that every customer and host id set matches the orders.
type AuditConsistencyQuery struct {
	guard guard.ConstructorGuard
}

func NewAuditConsistencyQuery() AuditConsistencyQuery {
	return AuditConsistencyQuery{guard: guard.NewConstructorGuard()}
}

func (q AuditConsistencyQuery) Validate() error {
	return q.guard.Validate(ErrAuditConsistencyQueryIsNotConstructed)
}

// AuditConsistencyQueryResponse summarizes one audit run.
type AuditConsistencyQueryResponse struct {
	Customers  int
	Hosts      int
	Orders     int
	Violations []services.Violation
}
