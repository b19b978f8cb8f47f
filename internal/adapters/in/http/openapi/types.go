package openapi

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	Id openapi_types.UUID `json:"id"`
}

type CreateCustomerRequest struct {
	Country string `json:"country" validate:"required,min=2,max=3,alpha"`
}

type CreateHostRequest struct {
	Country   string `json:"country" validate:"required,min=2,max=3,alpha"`
	Available *bool  `json:"available" validate:"required"`
}

type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

type ItemInput struct {
	Title     string `json:"title" validate:"required,min=5,max=280"`
	StoreName string `json:"storeName" validate:"required,min=2,max=50"`
	Weight    int    `json:"weight" validate:"required,gt=0"`
}

// DraftOrderRequest is shared by drafting and editing an order.
type DraftOrderRequest struct {
	OriginCountry      string      `json:"originCountry" validate:"required,min=2,max=3,alpha"`
	DestinationCountry string      `json:"destinationCountry" validate:"required,min=2,max=3,alpha,nefield=OriginCountry"`
	Items              []ItemInput `json:"items" validate:"required,min=1,dive"`
}

type PhotosRequest struct {
	Photos []string `json:"photos" validate:"required,min=1,dive,required"`
}

type ShipmentRequest struct {
	TrackingNumber string `json:"trackingNumber" validate:"required,max=64"`
}

type Item struct {
	Id           openapi_types.UUID `json:"id"`
	Title        string             `json:"title"`
	StoreName    string             `json:"storeName"`
	Weight       int                `json:"weight"`
	ReceivedDate *time.Time         `json:"receivedDate,omitempty"`
	Photos       []string           `json:"photos,omitempty"`
}

type ShipmentCost struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Order struct {
	Id                 openapi_types.UUID  `json:"id"`
	CustomerId         openapi_types.UUID  `json:"customerId"`
	HostId             *openapi_types.UUID `json:"hostId,omitempty"`
	Status             string              `json:"status"`
	OriginCountry      string              `json:"originCountry"`
	DestinationCountry string              `json:"destinationCountry"`
	ShipmentCost       ShipmentCost        `json:"shipmentCost"`
	TrackingNumber     *string             `json:"trackingNumber,omitempty"`
	Items              []Item              `json:"items"`
}

// Parameters carried in identity headers.

type ListCustomerOrdersParams struct {
	XCustomerID openapi_types.UUID
}

type SetHostAvailabilityParams struct {
	XHostID openapi_types.UUID
}

type DraftOrderParams struct {
	XCustomerID openapi_types.UUID
}

type GetOrderParams struct {
	XCustomerID *openapi_types.UUID
	XHostID     *openapi_types.UUID
}

type DeleteOrderParams struct {
	XCustomerID openapi_types.UUID
}

type EditOrderParams struct {
	XCustomerID openapi_types.UUID
}

type ConfirmOrderParams struct {
	XCustomerID openapi_types.UUID
}

type ReceiveItemParams struct {
	XHostID openapi_types.UUID
}

type AddItemPhotosParams struct {
	XHostID openapi_types.UUID
}

type SubmitShipmentInfoParams struct {
	XHostID openapi_types.UUID
}
