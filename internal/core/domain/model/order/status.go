package order

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Drafted ──> Confirmed ──> ItemReceived ──> Shipped
//	   │
//	   └──> Deleted
//
// Drafted orders can be edited (delete + redraft) or deleted by their customer.
// Once Confirmed an order belongs to a host and is never deleted.
type Status int

const (
	// Unknown represents an invalid or undefined status (the zero value).
	Unknown Status = iota

	// Drafted is the initial status: quoted but not yet matched to a host.
	Drafted

	// Confirmed means a host was selected and the order is payable.
	Confirmed

	// ItemReceived means the host has received every item of the order.
	ItemReceived

	// Shipped means the host handed the parcel to a carrier.
	Shipped

	// Deleted is terminal; the order is about to be removed from storage.
	Deleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Drafted:      "Drafted",
		Confirmed:    "Confirmed",
		ItemReceived: "ItemReceived",
		Shipped:      "Shipped",
		Deleted:      "Deleted",
	}
}

// ParseStatus converts the persisted or wire name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the defined, non-Unknown statuses.
func (s Status) Validate() error {
	if s <= Unknown || s > Deleted {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsConfirmedOrLater reports whether an order in this status must be linked to a host.
func (s Status) IsConfirmedOrLater() bool {
	return s == Confirmed || s == ItemReceived || s == Shipped
}

// ValidateCanHaveHost enforces that exactly the Confirmed-or-later statuses carry a host.
func (s Status) ValidateCanHaveHost(host bool) error {
	if host && !s.IsConfirmedOrLater() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a host", s),
		)
	}

	if !host && s.IsConfirmedOrLater() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no host", s),
		)
	}

	return nil
}

// Confirm transitions Drafted -> Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Drafted {
		return Unknown, fmt.Errorf("%s is not a valid status to confirm", s)
	}
	return Confirmed, nil
}

// Delete transitions Drafted -> Deleted.
func (s Status) Delete() (Status, error) {
	if s != Drafted {
		return Unknown, fmt.Errorf("%s is not a valid status to delete", s)
	}
	return Deleted, nil
}

// ValidateEdit allows edits of Drafted orders only.
func (s Status) ValidateEdit() error {
	if s != Drafted {
		return fmt.Errorf("%s is not a valid status to edit", s)
	}
	return nil
}

// ValidateReceive allows items to be received while the order is Confirmed.
func (s Status) ValidateReceive() error {
	if s != Confirmed {
		return fmt.Errorf("%s is not a valid status to receive items", s)
	}
	return nil
}

// ReceiveAll transitions Confirmed -> ItemReceived.
func (s Status) ReceiveAll() (Status, error) {
	if err := s.ValidateReceive(); err != nil {
		return Unknown, err
	}
	return ItemReceived, nil
}

// ValidateAddPhoto allows photos while the host still holds the items.
func (s Status) ValidateAddPhoto() error {
	if s != Confirmed && s != ItemReceived {
		return fmt.Errorf("%s is not a valid status to add item photos", s)
	}
	return nil
}

// Ship transitions ItemReceived -> Shipped.
func (s Status) Ship() (Status, error) {
	if s != ItemReceived {
		return Unknown, fmt.Errorf("%s is not a valid status to ship", s)
	}
	return Shipped, nil
}
