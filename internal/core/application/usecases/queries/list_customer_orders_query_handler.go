package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListCustomerOrdersQueryHandler returns the customer's orders in creation order.
// An unknown customer simply has no orders.
type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE customer_id = ?
		ORDER BY seq
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
