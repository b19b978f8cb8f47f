package commands

import (
	"errors"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

var ErrAddItemPhotoCommandIsNotConstructed = errors.New(
	"AddItemPhotoCommand must be created via NewAddItemPhotoCommand constructor",
)

// AddItemPhotoCommand attaches photo references to an item. The files themselves are
// uploaded elsewhere; only their references travel here.
type AddItemPhotoCommand struct {
	hostID  kernel.UUID
	orderID kernel.UUID
	itemID  kernel.UUID
	photos  []order.Photo
	guard   guard.ConstructorGuard
}

func NewAddItemPhotoCommand(hostID, orderID, itemID kernel.UUID, refs []string) (AddItemPhotoCommand, error) {
	if err := errors.Join(hostID.Validate(), orderID.Validate(), itemID.Validate()); err != nil {
		return AddItemPhotoCommand{}, errs.NewValueIsRequiredErrorWithCause("hostID, orderID, itemID", err)
	}
	if len(refs) == 0 {
		return AddItemPhotoCommand{}, errs.NewValueIsRequiredError("photos")
	}

	photos := make([]order.Photo, 0, len(refs))
	for _, ref := range refs {
		photo, err := order.NewPhoto(ref)
		if err != nil {
			return AddItemPhotoCommand{}, err
		}
		photos = append(photos, photo)
	}

	return AddItemPhotoCommand{
		hostID:  hostID,
		orderID: orderID,
		itemID:  itemID,
		photos:  photos,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddItemPhotoCommand) HostID() kernel.UUID  { return c.hostID }
func (c AddItemPhotoCommand) OrderID() kernel.UUID { return c.orderID }
func (c AddItemPhotoCommand) ItemID() kernel.UUID  { return c.itemID }

func (c AddItemPhotoCommand) Photos() []order.Photo {
	out := make([]order.Photo, len(c.photos))
	copy(out, c.photos)
	return out
}

func (c AddItemPhotoCommand) Validate() error {
	return c.guard.Validate(ErrAddItemPhotoCommandIsNotConstructed)
}
