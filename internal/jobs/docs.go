// Package jobs provides scheduled background tasks for the restaurant backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. PendingOrdersReportJob - Runs every minute to log how many orders are
// still pending and their combined total
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOrdersByStatusHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The report job logs query failures and keeps running; a failed tick never
// stops the schedule. Failed job starts will stop any already running jobs.
package jobs
