package queries

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order on behalf of a viewer. The viewer is either the
// owning customer or the assigned host; anyone else gets a not found error.
type GetOrderQuery struct {
	orderID  kernel.UUID
	viewerID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetOrderQuery(orderID, viewerID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), viewerID.Validate()); err != nil {
		return GetOrderQuery{}, errs.NewValueIsRequiredErrorWithCause("orderID, viewerID", err)
	}

	return GetOrderQuery{
		orderID:  orderID,
		viewerID: viewerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) OrderID() kernel.UUID  { return q.orderID }
func (q GetOrderQuery) ViewerID() kernel.UUID { return q.viewerID }

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}
