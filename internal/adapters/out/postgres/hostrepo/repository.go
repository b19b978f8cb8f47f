// Package hostrepo persists Host aggregates with GORM.
package hostrepo

import (
	"context"
	"errors"

	"forwarding/internal/adapters/out/postgres/pgerr"
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormHostRepository struct {
	db      *gorm.DB
	session session
}

type session interface {
	TrackAggregate(id kernel.UUID, aggregate any)
	Enter() (release func(), err error)
}

func NewGormHostRepository(db *gorm.DB, session session) *GormHostRepository {
	return &GormHostRepository{
		db:      db,
		session: session,
	}
}

func (r *GormHostRepository) Add(ctx context.Context, aggregate *host.Host) error {
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

func (r *GormHostRepository) Update(ctx context.Context, aggregate *host.Host) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	release, err := r.session.Enter()
	if err != nil {
		return err
	}
	defer release()

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&HostDTO{}).
		Where("id = ?", dto.ID).
		Select("address_country", "available").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Map(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("host", aggregate.ID().String())
	}

	r.session.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormHostRepository) Get(ctx context.Context, id kernel.UUID) (*host.Host, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	release, err := r.session.Enter()
	if err != nil {
		return nil, err
	}
	defer release()

	var dto HostDTO
	if err = r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("host", id.String())
		}
		return nil, pgerr.Map(err)
	}

	return toDomain(dto)
}

func (r *GormHostRepository) GetAll(ctx context.Context) ([]*host.Host, error) {
	release, err := r.session.Enter()
	if err != nil {
		return nil, err
	}
	defer release()

	var dtos []HostDTO
	if err = r.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, pgerr.Map(err)
	}

	hosts := make([]*host.Host, 0, len(dtos))
	for _, dto := range dtos {
		h, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		hosts = append(hosts, h)
	}
	return hosts, nil
}

func (r *GormHostRepository) AddOrder(ctx context.Context, hostID, orderID kernel.UUID) error {
	return r.changeOrders(ctx, hostID, orderID,
		"NOT (? = ANY(order_ids))", "array_append(order_ids, ?)", "is already linked")
}

func (r *GormHostRepository) RemoveOrder(ctx context.Context, hostID, orderID kernel.UUID) error {
	return r.changeOrders(ctx, hostID, orderID,
		"? = ANY(order_ids)", "array_remove(order_ids, ?)", "is not linked")
}

func (r *GormHostRepository) changeOrders(
	ctx context.Context,
	hostID, orderID kernel.UUID,
	guardClause, expr, conflictReason string,
) error {
	if err := errors.Join(hostID.Validate(), orderID.Validate()); err != nil {
		return err
	}

	release, err := r.session.Enter()
	if err != nil {
		return err
	}
	defer release()

	db := r.db.WithContext(ctx)
	oid := orderID.String()

	result := db.Model(&HostDTO{}).
		Where("id = ?", hostID.Bytes()).
		Where(guardClause, oid).
		Update("order_ids", gorm.Expr(expr, oid))
	if result.Error != nil {
		return pgerr.Map(result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err = db.Model(&HostDTO{}).Where("id = ?", hostID.Bytes()).Count(&count).Error; err != nil {
		return pgerr.Map(err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("host", hostID.String())
	}
	return errs.NewStateConflictError("host", hostID, "order "+oid+" "+conflictReason)
}
