package http

import (
	"forwarding/internal/adapters/in/http/openapi"
	"forwarding/internal/core/application/usecases/queries"

	"github.com/google/uuid"
)

func toOrderResponse(view queries.OrderView) openapi.Order {
	response := openapi.Order{
		Id:                 view.ID.Bytes(),
		CustomerId:         view.CustomerID.Bytes(),
		Status:             view.Status,
		OriginCountry:      view.OriginCountry,
		DestinationCountry: view.DestinationCountry,
		ShipmentCost: openapi.ShipmentCost{
			Amount:   view.CostAmount,
			Currency: view.CostCurrency,
		},
		TrackingNumber: view.TrackingNumber,
		Items:          make([]openapi.Item, 0, len(view.Items)),
	}

	if view.HostID != nil {
		hostID := view.HostID.Bytes()
		response.HostId = &hostID
	}

	for _, item := range view.Items {
		id, _ := uuid.Parse(item.ID)
		response.Items = append(response.Items, openapi.Item{
			Id:           id,
			Title:        item.Title,
			StoreName:    item.StoreName,
			Weight:       item.Weight,
			ReceivedDate: item.ReceivedDate,
			Photos:       item.Photos,
		})
	}

	return response
}
