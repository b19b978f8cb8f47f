package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrSubmitShipmentInfoCommandIsNotConstructed = errors.New(
	"SubmitShipmentInfoCommand must be created via NewSubmitShipmentInfoCommand constructor",
)

type SubmitShipmentInfoCommand struct {
	hostID  kernel.UUID
	orderID kernel.UUID
	info    order.ShipmentInfo
	guard   guard.ConstructorGuard
}

func NewSubmitShipmentInfoCommand(hostID, orderID kernel.UUID, trackingNumber string) (SubmitShipmentInfoCommand, error) {
	if err := errors.Join(hostID.Validate(), orderID.Validate()); err != nil {
		return SubmitShipmentInfoCommand{}, errs.NewValueIsRequiredErrorWithCause("hostID, orderID", err)
	}

	info, err := order.NewShipmentInfo(trackingNumber)
	if err != nil {
		return SubmitShipmentInfoCommand{}, err
	}

	return SubmitShipmentInfoCommand{
		hostID:  hostID,
		orderID: orderID,
		info:    info,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitShipmentInfoCommand) HostID() kernel.UUID              { return c.hostID }
func (c SubmitShipmentInfoCommand) OrderID() kernel.UUID             { return c.orderID }
func (c SubmitShipmentInfoCommand) ShipmentInfo() order.ShipmentInfo { return c.info }

func (c SubmitShipmentInfoCommand) Validate() error {
	return c.guard.Validate(ErrSubmitShipmentInfoCommandIsNotConstructed)
}
