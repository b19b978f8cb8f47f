// Package customerrepo persists Customer aggregates with GORM. The order set is stored
// as a text[] column and changed with single-statement array updates.
package customerrepo

import (
	"context"
	"errors"

	"forwarding/internal/adapters/out/postgres/pgerr"
	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormCustomerRepository struct {
	db      *gorm.DB
	session session
}

// session is the unit of work the repository belongs to.
type session interface {
	TrackAggregate(id kernel.UUID, aggregate any)
	Enter() (release func(), err error)
}

func NewGormCustomerRepository(db *gorm.DB, session session) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		session: session,
	}
}

func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	release, err := r.session.Enter()
	if err != nil {
		return err
	}
	defer release()

	dto := fromDomain(aggregate)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Map(err)
	}

	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	release, err := r.session.Enter()
	if err != nil {
		return nil, err
	}
	defer release()

	var dto CustomerDTO
	if err = r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, pgerr.Map(err)
	}

	return toDomain(dto)
}

func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	release, err := r.session.Enter()
	if err != nil {
		return nil, err
	}
	defer release()

	var dtos []CustomerDTO
	if err = r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, pgerr.Map(err)
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *GormCustomerRepository) AddOrder(ctx context.Context, customerID, orderID kernel.UUID) error {
	return r.changeOrders(ctx, customerID, orderID,
		"NOT (? = ANY(order_ids))", "array_append(order_ids, ?)", "is already linked")
}

func (r *GormCustomerRepository) RemoveOrder(ctx context.Context, customerID, orderID kernel.UUID) error {
	return r.changeOrders(ctx, customerID, orderID,
		"? = ANY(order_ids)", "array_remove(order_ids, ?)", "is not linked")
}

// changeOrders runs one conditional array update. When no row changes, a second lookup
// tells a missing customer apart from a membership that was already in the wanted state.
func (r *GormCustomerRepository) changeOrders(
	ctx context.Context,
	customerID, orderID kernel.UUID,
	guardClause, expr, conflictReason string,
) error {
	if err := errors.Join(customerID.Validate(), orderID.Validate()); err != nil {
		return err
	}

	release, err := r.session.Enter()
	if err != nil {
		return err
	}
	defer release()

	db := r.db.WithContext(ctx)
	oid := orderID.String()

	result := db.Model(&CustomerDTO{}).
		Where("id = ?", customerID.Bytes()).
		Where(guardClause, oid).
		Update("order_ids", gorm.Expr(expr, oid))
	if result.Error != nil {
		return pgerr.Map(result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err = db.Model(&CustomerDTO{}).Where("id = ?", customerID.Bytes()).Count(&count).Error; err != nil {
		return pgerr.Map(err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("customer", customerID.String())
	}
	return errs.NewStateConflictError("customer", customerID, "order "+oid+" "+conflictReason)
}
