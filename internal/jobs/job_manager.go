package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	consistencyAuditJob *ConsistencyAuditJob
}

func NewJobManager(
	auditHandler AuditHandler,
	recorder AuditRecorder,
	auditSchedule string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		consistencyAuditJob: NewConsistencyAuditJob(auditHandler, recorder, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.consistencyAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start consistency audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.consistencyAuditJob.Stop()
}
