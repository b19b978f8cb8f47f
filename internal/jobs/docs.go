// Package jobs provides scheduled background tasks for the forwarding service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled).
//
// # Available Jobs
//
// ConsistencyAuditJob periodically loads every customer, host and order in one
// transaction and reports back-references that disagree with the orders. It never
// repairs anything: violations are logged and exported as metrics.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(auditHandler, recorder, "0 */5 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		return fmt.Errorf("start jobs: %w", err)
//	}
//	defer jobManager.StopAll()
package jobs
