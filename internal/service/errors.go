package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Theme Errors =====
var (
	ErrThemeNotFound    = errors.New("theme not found")
	ErrNoEligibleThemes = errors.New("no themes eligible for sampling")
)

// ===== Extension Errors =====
var (
	ErrExtensionNotFound = errors.New("extension not found")
	ErrMissingExtension  = errors.New("extension payload is required")
)

// ===== Sampling Errors =====
var (
	ErrProcedureInstall = errors.New("sampling procedure install failed")
	ErrSampleFailed     = errors.New("sampling procedure execution failed")
)
