// Package orderrepo persists Order aggregates with GORM. Items, with their receipt dates
// and photos, are stored as a JSONB document next to the order row.
package orderrepo

import (
	"context"
	"errors"

	"forwarding/internal/adapters/out/postgres/pgerr"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormOrderRepository struct {
	db      *gorm.DB
	session session
}

// session is the unit of work the repository belongs to. Enter fails when another
// repository call is already running on the same session.
type session interface {
	TrackAggregate(id kernel.UUID, aggregate any)
	Enter() (release func(), err error)
}

func NewGormOrderRepository(db *gorm.DB, session session) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		session: session,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	release, err := r.session.Enter()
	if err != nil {
		return err
	}
	defer release()

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Map(err)
	}

	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable part of an order: host, status, tracking number and items.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	release, err := r.session.Enter()
	if err != nil {
		return err
	}
	defer release()

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("host_id", "status", "tracking_number", "items").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Map(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.FindOne(ctx, ports.OrderFilter{ID: id})
}

func (r *GormOrderRepository) FindOne(ctx context.Context, filter ports.OrderFilter) (*order.Order, error) {
	if err := filter.ID.Validate(); err != nil {
		return nil, err
	}

	release, err := r.session.Enter()
	if err != nil {
		return nil, err
	}
	defer release()

	var dto OrderDTO
	if err = r.filtered(ctx, filter).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", filter.ID.String())
		}
		return nil, pgerr.Map(err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) Delete(ctx context.Context, filter ports.OrderFilter, deleted *order.Order) error {
	if err := filter.ID.Validate(); err != nil {
		return err
	}

	release, err := r.session.Enter()
	if err != nil {
		return err
	}
	defer release()

	result := r.filtered(ctx, filter).Delete(&OrderDTO{})
	if result.Error != nil {
		return pgerr.Map(result.Error)
	}
	if result.RowsAffected != 1 {
		return errs.NewObjectNotFoundError("order", filter.ID.String())
	}

	if deleted != nil {
		r.session.TrackAggregate(deleted.ID(), deleted)
	}
	return nil
}

func (r *GormOrderRepository) ListByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return r.list(ctx, r.db.WithContext(ctx).Where("customer_id = ?", customerID.Bytes()))
}

func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *GormOrderRepository) list(_ context.Context, query *gorm.DB) ([]*order.Order, error) {
	release, err := r.session.Enter()
	if err != nil {
		return nil, err
	}
	defer release()

	var dtos []OrderDTO
	if err = query.Order("seq").Find(&dtos).Error; err != nil {
		return nil, pgerr.Map(err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *GormOrderRepository) filtered(ctx context.Context, filter ports.OrderFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Where("id = ?", filter.ID.Bytes())
	if filter.Status != order.Unknown {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.CustomerID.Validate() == nil {
		query = query.Where("customer_id = ?", filter.CustomerID.Bytes())
	}
	return query
}
