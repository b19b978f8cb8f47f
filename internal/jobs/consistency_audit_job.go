package jobs

import (
	"context"
	"time"

	"forwarding/internal/core/application/usecases/queries"
	"forwarding/internal/core/domain/services"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AuditRecorder receives the result of each successful audit run.
type AuditRecorder interface {
	AuditCompleted(violations []services.Violation, at time.Time)
}

// AuditHandler runs one consistency audit.
type AuditHandler interface {
	Handle(ctx context.Context, query queries.AuditConsistencyQuery) (queries.AuditConsistencyQueryResponse, error)
}

// ConsistencyAuditJob runs the consistency audit on a cron schedule.
type ConsistencyAuditJob struct {
	handler  AuditHandler
	recorder AuditRecorder
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
	now      func() time.Time
}

func NewConsistencyAuditJob(
	handler AuditHandler,
	recorder AuditRecorder,
	schedule string,
	logger *zap.Logger,
) *ConsistencyAuditJob {
	return &ConsistencyAuditJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With(zap.String("component", "consistency_audit_job")),
		now:      time.Now,
	}
}

func (j *ConsistencyAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("consistency audit job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs one audit. Exported so a run can be triggered outside the schedule.
func (j *ConsistencyAuditJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	result, err := j.handler.Handle(ctx, queries.NewAuditConsistencyQuery())
	if err != nil {
		j.logger.Error("consistency audit failed", zap.Error(err))
		return
	}

	j.recorder.AuditCompleted(result.Violations, j.now())

	if len(result.Violations) == 0 {
		j.logger.Debug("consistency audit passed",
			zap.Int("customers", result.Customers),
			zap.Int("hosts", result.Hosts),
			zap.Int("orders", result.Orders),
		)
		return
	}

	for _, v := range result.Violations {
		j.logger.Error("back-reference violation",
			zap.String("kind", string(v.Kind)),
			zap.Stringer("order_id", v.OrderID),
			zap.Stringer("aggregate_id", v.AggregateID),
		)
	}
}

func (j *ConsistencyAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("consistency audit job stopped")
}
