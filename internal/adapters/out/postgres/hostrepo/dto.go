package hostrepo

import (
	"forwarding/internal/core/domain/model/host"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// HostDTO maps the hosts table. Seq records registration order, which host matching
// uses to break ties.
type HostDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Seq            int64          `gorm:"autoIncrement;uniqueIndex"`
	AddressCountry string         `gorm:"size:3;not null;index"`
	Available      bool           `gorm:"not null"`
	OrderIDs       pq.StringArray `gorm:"type:text[];not null"`
}

func (HostDTO) TableName() string {
	return "hosts"
}

func fromDomain(h *host.Host) HostDTO {
	ids := kernel.NewOrderSet(h.OrderIDs()...)
	return HostDTO{
		ID:             h.ID().Bytes(),
		AddressCountry: h.Country().Code(),
		Available:      h.IsAvailable(),
		OrderIDs:       pq.StringArray(ids.Strings()),
	}
}

func toDomain(dto HostDTO) (*host.Host, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	country, err := kernel.NewCountry(dto.AddressCountry)
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress(country)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.OrderIDs))
	for _, raw := range dto.OrderIDs {
		orderID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return host.RestoreHost(id, address, dto.Available, orderIDs)
}
