package transaction

import (
	"context"

	"forwarding/internal/core/ports"
)

type uowKey struct{}

// WithUnitOfWork returns a context carrying uow. Runner.Run called with such a context
// joins the carried transaction instead of starting a new one.
func WithUnitOfWork(ctx context.Context, uow ports.UnitOfWork) context.Context {
	return context.WithValue(ctx, uowKey{}, uow)
}

// FromContext extracts the unit of work carried by ctx, if any.
func FromContext(ctx context.Context) (ports.UnitOfWork, bool) {
	uow, ok := ctx.Value(uowKey{}).(ports.UnitOfWork)
	return uow, ok && uow != nil
}
