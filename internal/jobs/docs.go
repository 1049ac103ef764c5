// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations of the order lifecycle.
//
// # Available Jobs
//
// 1. LifecycleSweepJob - Periodically promotes SUBMITTED orders to IN_FULFILLMENT
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(promoteHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep uses a six-field cron expression (with seconds) and defaults to
// "0 */5 * * * *", one pass every five minutes. The schedule comes from
// configuration, so deployments can tighten or relax the cadence.
//
// # Error Handling
//
// Orders that lose the optimistic-concurrency race mid-sweep are skipped and
// reported in the pass summary. Infrastructure errors abort the pass and are
// logged; the next scheduled pass picks up whatever is still SUBMITTED.
package jobs
