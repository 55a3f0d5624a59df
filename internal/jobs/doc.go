// Package jobs implements background job processing for the ThemePick API.
//
// The jobs package contains scheduled tasks that run independently of HTTP
// request handling.
//
// # Job Types
//
//   - IntegritySweeper: Periodic scan for dangling theme→extension references
//
// # Lifecycle
//
// Jobs expose Start/Stop and run on an internal ticker:
//
//	sweeper := jobs.NewIntegritySweeper(integrityService, cfg.Jobs.IntegritySweepInterval)
//	sweeper.Start()
//	defer sweeper.Stop()
//
// Stop blocks until the in-flight iteration finishes.
//
// # Error Handling
//
// Jobs log errors but don't crash the application.
package jobs
