package orderrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OrderDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Seq                int64          `gorm:"autoIncrement;uniqueIndex"`
	CustomerID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	HostID             *uuid.UUID     `gorm:"type:uuid;index"`
	OriginCountry      string         `gorm:"size:3;not null"`
	DestinationCountry string         `gorm:"size:3;not null"`
	CostAmount         int64          `gorm:"not null"`
	CostCurrency       string         `gorm:"size:3;not null"`
	Status             string         `gorm:"size:16;not null;index"`
	TrackingNumber     *string        `gorm:"size:64"`
	Items              datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the JSON shape of one element of the items column.
type ItemDTO struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	StoreName    string     `json:"storeName"`
	Weight       int        `json:"weight"`
	ReceivedDate *time.Time `json:"receivedDate,omitempty"`
	Photos       []string   `json:"photos,omitempty"`
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	var hostID *uuid.UUID
	if id := o.Host(); id != nil {
		raw := id.Bytes()
		hostID = &raw
	}

	var tracking *string
	if info := o.ShipmentInfo(); info != nil {
		tn := info.TrackingNumber()
		tracking = &tn
	}

	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		photos := make([]string, 0, len(item.Photos()))
		for _, p := range item.Photos() {
			photos = append(photos, string(p))
		}
		items = append(items, ItemDTO{
			ID:           item.ID().String(),
			Title:        item.Title(),
			StoreName:    item.StoreName(),
			Weight:       int(item.Weight()),
			ReceivedDate: item.ReceivedDate(),
			Photos:       photos,
		})
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, fmt.Errorf("marshal items of order %s: %w", o.ID(), err)
	}

	return OrderDTO{
		ID:                 o.ID().Bytes(),
		CustomerID:         o.CustomerID().Bytes(),
		HostID:             hostID,
		OriginCountry:      o.OriginCountry().Code(),
		DestinationCountry: o.Destination().Country().Code(),
		CostAmount:         o.ShipmentCost().Amount(),
		CostCurrency:       o.ShipmentCost().Currency(),
		Status:             o.Status().String(),
		TrackingNumber:     tracking,
		Items:              datatypes.JSON(raw),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var hostID *kernel.UUID
	if dto.HostID != nil {
		hID, hostErr := kernel.UUIDFromBytes((*dto.HostID)[:])
		if hostErr != nil {
			return nil, hostErr
		}
		hostID = &hID
	}

	origin, err := kernel.NewCountry(dto.OriginCountry)
	if err != nil {
		return nil, err
	}
	destCountry, err := kernel.NewCountry(dto.DestinationCountry)
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewAddress(destCountry)
	if err != nil {
		return nil, err
	}

	cost, err := order.NewCost(dto.CostAmount, dto.CostCurrency)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var shipmentInfo *order.ShipmentInfo
	if dto.TrackingNumber != nil {
		info, infoErr := order.NewShipmentInfo(*dto.TrackingNumber)
		if infoErr != nil {
			return nil, infoErr
		}
		shipmentInfo = &info
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, fmt.Errorf("items of order %s: %w", id, err)
	}

	return order.RestoreOrder(id, customerID, hostID, origin, destination, items, cost, status, shipmentInfo)
}

func itemsToDomain(raw datatypes.JSON) ([]*order.Item, error) {
	var dtos []ItemDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		itemID, err := kernel.UUIDFromString(dto.ID)
		if err != nil {
			return nil, err
		}

		photos := make([]order.Photo, 0, len(dto.Photos))
		for _, p := range dto.Photos {
			photos = append(photos, order.Photo(p))
		}

		item, err := order.RestoreItem(itemID, dto.Title, dto.StoreName, order.Gram(dto.Weight), dto.ReceivedDate, photos)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
