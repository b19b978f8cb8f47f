package queries

import (
	"context"

	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	viewer := query.ViewerID().Bytes()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ? AND (customer_id = ? OR host_id = ?)
	`, query.OrderID().Bytes(), viewer, viewer).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return scanOrderView(rows)
}
