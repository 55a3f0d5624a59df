// Package service implements the business logic layer for the ThemePick API.
//
// The service package contains all domain logic and orchestration of
// repository operations. Services are the primary abstraction between HTTP
// handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Random Sampling
//
// The Sampler is the heart of the package. Theme selection happens
// database-side in a stored function that scans one bounded batch of eligible
// ids per invocation and returns a random pick plus a resume cursor. The
// Sampler drives that continuation protocol to completion and merges the
// per-batch picks with reservoir weighting, so the final choice is uniform
// over the entire eligible set no matter how many batches the scan took.
//
// The function itself is installed once at startup by ProcedureInstaller,
// which checks for presence by name before submitting the definition.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrThemeNotFound     = errors.New("theme not found")
//	    ErrExtensionNotFound = errors.New("extension not found")
//	)
package service
