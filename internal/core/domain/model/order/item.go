package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"
	"forwarding/internal/pkg/guard"
)

// Gram is the unit item weights are declared in.
type Gram int

const (
	minTitleLength     = 5
	maxTitleLength     = 280
	minStoreNameLength = 2
	maxStoreNameLength = 50
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewDraftedItem constructor")

// Photo is a reference (storage key or URL) to an uploaded picture of a received item.
type Photo string

// NewPhoto rejects empty references.
func NewPhoto(ref string) (Photo, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errs.NewValueIsRequiredError("photo")
	}
	return Photo(ref), nil
}

// Item is a purchase the customer sends to the host. It only exists inside an Order:
// drafted with id, title, store and weight, later enriched with the date the host
// received it and photos of it.
type Item struct {
	id           kernel.UUID
	title        string
	storeName    string
	weight       Gram
	receivedDate *time.Time
	photos       []Photo
	guard        guard.ConstructorGuard
}

// NewDraftedItem validates a freshly drafted item.
func NewDraftedItem(id kernel.UUID, title, storeName string, weight Gram) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setStoreName(storeName),
		item.setWeight(weight),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds an item from storage, including receipt and photos.
func RestoreItem(
	id kernel.UUID,
	title, storeName string,
	weight Gram,
	receivedDate *time.Time,
	photos []Photo,
) (*Item, error) {
	item, err := NewDraftedItem(id, title, storeName, weight)
	if err != nil {
		return nil, err
	}
	item.receivedDate = receivedDate
	item.photos = slices.Clone(photos)
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID   { return i.id }
func (i *Item) Title() string     { return i.title }
func (i *Item) StoreName() string { return i.storeName }
func (i *Item) Weight() Gram      { return i.weight }
func (i *Item) Photos() []Photo   { return slices.Clone(i.photos) }
func (i *Item) IsReceived() bool  { return i.receivedDate != nil }
func (i *Item) ReceivedDate() *time.Time {
	if i.receivedDate == nil {
		return nil
	}
	d := *i.receivedDate
	return &d
}

func (i *Item) receive(at time.Time) error {
	if i.receivedDate != nil {
		return fmt.Errorf("item %s was already received on %s", i.id, i.receivedDate.Format(time.RFC3339))
	}
	at = at.UTC()
	i.receivedDate = &at
	return nil
}

func (i *Item) addPhotos(photos []Photo) {
	i.photos = append(i.photos, photos...)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setTitle(title string) error {
	n := len([]rune(strings.TrimSpace(title)))
	if n < minTitleLength || n > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", n, minTitleLength, maxTitleLength)
	}
	i.title = strings.TrimSpace(title)
	return nil
}

func (i *Item) setStoreName(storeName string) error {
	n := len([]rune(strings.TrimSpace(storeName)))
	if n < minStoreNameLength || n > maxStoreNameLength {
		return errs.NewValueIsOutOfRangeError("store name length", n, minStoreNameLength, maxStoreNameLength)
	}
	i.storeName = strings.TrimSpace(storeName)
	return nil
}

func (i *Item) setWeight(weight Gram) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%d is not greater than 0", weight))
	}
	i.weight = weight
	return nil
}
