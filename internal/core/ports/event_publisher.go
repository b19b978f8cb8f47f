package ports

import (
	"context"

	"forwarding/internal/core/domain/model/order"
)

// EventPublisher delivers order lifecycle events after the transaction producing them commits.
type EventPublisher interface {
	Publish(ctx context.Context, events []order.StatusChanged) error
}
