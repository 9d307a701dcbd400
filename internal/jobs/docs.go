// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are cron based (github.com/robfig/cron/v3, seconds precision).
//
// # Available Jobs
//
// StaleReadyOrdersJob finds orders that have been ready and unclaimed for
// longer than a threshold and publishes order_ready for them again to the
// drivers room. It never cancels an order.
//
// # Usage
//
//	jobManager := jobs.NewJobManager().
//		Add("stale ready orders", jobs.NewStaleReadyOrdersJob(handler, cmd, "*/30 * * * * *", logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing pass is logged and retried on the next tick. A job that fails to
// start stops the jobs already running.
package jobs
