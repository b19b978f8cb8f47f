package order

import (
	"time"

	"forwarding/internal/core/domain/model/kernel"
)

// StatusChanged is recorded by the Order aggregate on every lifecycle transition.
// Events are published only after the transaction that produced them commits.
type StatusChanged struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	HostID     *kernel.UUID
	From       Status
	To         Status
	OccurredAt time.Time
}
