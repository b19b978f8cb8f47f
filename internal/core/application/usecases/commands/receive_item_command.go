package commands

import (
	"errors"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrReceiveItemCommandIsNotConstructed = errors.New(
	"ReceiveItemCommand must be created via NewReceiveItemCommand constructor",
)

// ReceiveItemCommand records that the assigned host received one item.
// The receive time is fixed at construction so a retried transaction stores the same value.
type ReceiveItemCommand struct {
	hostID     kernel.UUID
	orderID    kernel.UUID
	itemID     kernel.UUID
	receivedAt time.Time
	guard      guard.ConstructorGuard
}

func NewReceiveItemCommand(hostID, orderID, itemID kernel.UUID) (ReceiveItemCommand, error) {
	if err := errors.Join(hostID.Validate(), orderID.Validate(), itemID.Validate()); err != nil {
		return ReceiveItemCommand{}, errs.NewValueIsRequiredErrorWithCause("hostID, orderID, itemID", err)
	}

	return ReceiveItemCommand{
		hostID:     hostID,
		orderID:    orderID,
		itemID:     itemID,
		receivedAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReceiveItemCommand) HostID() kernel.UUID   { return c.hostID }
func (c ReceiveItemCommand) OrderID() kernel.UUID  { return c.orderID }
func (c ReceiveItemCommand) ItemID() kernel.UUID   { return c.itemID }
func (c ReceiveItemCommand) ReceivedAt() time.Time { return c.receivedAt }

func (c ReceiveItemCommand) Validate() error {
	return c.guard.Validate(ErrReceiveItemCommandIsNotConstructed)
}
