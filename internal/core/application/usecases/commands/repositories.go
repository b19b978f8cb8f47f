// Package commands contains the order lifecycle transitions and the other operations
// that modify system state. Every handler validates its command, then performs all of
// its reads and writes inside exactly one Runner.Run call.
package commands

import (
	"context"

	"forwarding/internal/core/application/transaction"
)

// Runner executes work atomically. *transaction.Runner is the production implementation.
//
// Example:
//
//	err := runner.Run(ctx, func(ctx context.Context, uow ports.UnitOfWork) error {
//	    o, err := uow.OrderRepository().Get(ctx, id)
//	    // ... mutate and persist through uow
//	    return err
//	})
type Runner interface {
	Run(ctx context.Context, work transaction.Work) error
}
