// Package jobs provides scheduled background tasks for the point-of-sale core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. MenuPriceAuditJob - Runs every minute to hide displayed menus whose price
// exceeds the current derived total of their products
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(hideOverpricedMenusHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The audit job logs failures and carries on; each run is independent and a
// missed sweep is corrected by the next one.
package jobs
