package customerrepo

import (
	"forwarding/internal/core/domain/model/customer"
	"forwarding/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CustomerDTO struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SelectedAddressCountry string         `gorm:"size:3;not null"`
	OrderIDs               pq.StringArray `gorm:"type:text[];not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	ids := kernel.NewOrderSet(c.OrderIDs()...)
	return CustomerDTO{
		ID:                     c.ID().Bytes(),
		SelectedAddressCountry: c.SelectedAddress().Country().Code(),
		OrderIDs:               pq.StringArray(ids.Strings()),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	country, err := kernel.NewCountry(dto.SelectedAddressCountry)
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

	return customer.RestoreCustomer(id, address, orderIDs)
}
