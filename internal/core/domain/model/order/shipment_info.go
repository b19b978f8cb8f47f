package order

import (
	"strings"

	"forwarding/internal/pkg/errs"
)

const maxTrackingNumberLength = 64

// ShipmentInfo is what the host records when handing the parcel to a carrier.
type ShipmentInfo struct {
	trackingNumber string
}

func NewShipmentInfo(trackingNumber string) (ShipmentInfo, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return ShipmentInfo{}, errs.NewValueIsRequiredError("tracking number")
	}
	if len(trackingNumber) > maxTrackingNumberLength {
		return ShipmentInfo{}, errs.NewValueIsOutOfRangeError("tracking number length", len(trackingNumber), 1, maxTrackingNumberLength)
	}
	return ShipmentInfo{trackingNumber: trackingNumber}, nil
}

func (s ShipmentInfo) TrackingNumber() string {
	return s.trackingNumber
}
