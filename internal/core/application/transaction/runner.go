package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"forwarding/internal/core/domain/model/order"
	"forwarding/internal/core/ports"
	"forwarding/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 5

	tracerName = "forwarding/transaction"
)

// Work is the body of a transaction. It must only touch storage through uow and must be
// safe to execute again from scratch: on a transient conflict the whole function is
// re-run against a fresh unit of work.
type Work func(ctx context.Context, uow ports.UnitOfWork) error

// Runner executes Work inside serializable transactions and retries transient conflicts.
type Runner struct {
	factory     ports.UnitOfWorkFactory
	publisher   ports.EventPublisher
	observer    Observer
	logger      *zap.Logger
	tracer      trace.Tracer
	maxAttempts int
	newBackOff  func() backoff.BackOff
}

type Option func(*Runner)

// WithMaxAttempts bounds the number of attempts, the first one included.
func WithMaxAttempts(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

func WithPublisher(p ports.EventPublisher) Option {
	return func(r *Runner) { r.publisher = p }
}

func WithObserver(o Observer) Option {
	return func(r *Runner) {
		if o != nil {
			r.observer = o
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithBackOff replaces the delay policy between attempts.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(r *Runner) {
		if newBackOff != nil {
			r.newBackOff = newBackOff
		}
	}
}

func NewRunner(factory ports.UnitOfWorkFactory, opts ...Option) *Runner {
	r := &Runner{
		factory:     factory,
		observer:    noopObserver{},
		logger:      zap.NewNop(),
		tracer:      otel.Tracer(tracerName),
		maxAttempts: DefaultMaxAttempts,
		newBackOff:  defaultBackOff,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond
	b.MaxElapsedTime = 0
	return b
}

// Run executes work atomically.
//
// When ctx already carries a unit of work, work runs inside it and the caller's
// transaction decides commit or rollback. Otherwise a new transaction is started for each
// attempt; transient conflicts are retried up to the attempt budget and then reported as
// errs.ErrServiceUnavailable. Any other error aborts the transaction and is returned as is.
// After a successful commit the domain events of every tracked aggregate are published.
func (r *Runner) Run(ctx context.Context, work Work) error {
	if uow, ok := FromContext(ctx); ok {
		err := work(ctx, uow)
		r.observer.Finished(OutcomeJoined, 1, 0)
		return err
	}

	var (
		start     = time.Now()
		attempts  int
		committed ports.UnitOfWork
	)

	operation := func() error {
		attempts++
		uow, err := r.attempt(ctx, attempts, work)
		if err == nil {
			committed = uow
			return nil
		}

		if errors.Is(err, errs.ErrTransientConflict) {
			r.observer.ConflictRetried()
			r.logger.Debug("transaction conflict, retrying",
				zap.Int("attempt", attempts),
				zap.Error(err),
			)
			return err
		}

		return backoff.Permanent(err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxAttempts-1)),
		ctx,
	)

	err := backoff.Retry(operation, policy)
	switch {
	case err == nil:
		r.observer.Finished(OutcomeCommitted, attempts, time.Since(start))
	case errors.Is(err, errs.ErrTransientConflict):
		r.observer.Finished(OutcomeExhausted, attempts, time.Since(start))
		r.logger.Warn("transaction retries exhausted", zap.Int("attempts", attempts), zap.Error(err))
		return fmt.Errorf("%w: gave up after %d attempts: %v", errs.ErrServiceUnavailable, attempts, err)
	default:
		r.observer.Finished(OutcomeFailed, attempts, time.Since(start))
		return err
	}

	r.publish(context.WithoutCancel(ctx), committed)
	return nil
}

func (r *Runner) attempt(ctx context.Context, n int, work Work) (_ ports.UnitOfWork, err error) {
	ctx, span := r.tracer.Start(ctx, "transaction.attempt",
		trace.WithAttributes(attribute.Int("transaction.attempt", n)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	uow := r.factory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback(ctx)
			panic(p)
		}
	}()

	if err = work(WithUnitOfWork(ctx, uow), uow); err != nil {
		if rbErr := uow.Rollback(ctx); rbErr != nil {
			r.logger.Warn("rollback failed", zap.Error(rbErr))
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return uow, nil
}

type eventSource interface {
	DomainEvents() []order.StatusChanged
	ClearDomainEvents()
}

func (r *Runner) publish(ctx context.Context, uow ports.UnitOfWork) {
	var (
		events []order.StatusChanged
		seen   = make(map[eventSource]struct{})
	)

	for _, aggregate := range uow.TrackedAggregates() {
		src, ok := aggregate.(eventSource)
		if !ok {
			continue
		}
		if _, dup := seen[src]; dup {
			continue
		}
		seen[src] = struct{}{}
		events = append(events, src.DomainEvents()...)
		src.ClearDomainEvents()
	}

	if len(events) == 0 || r.publisher == nil {
		return
	}

	if err := r.publisher.Publish(ctx, events); err != nil {
		r.logger.Error("publish order events", zap.Int("events", len(events)), zap.Error(err))
	}
}
