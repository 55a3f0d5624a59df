// Package middleware provides HTTP middleware for the ThemePick API.
//
// The middleware package contains reusable components for request processing.
//
// # Available Middleware
//
//   - RequestID: Attaches a unique request identifier to context and response
//   - Logger: Structured request logging with method, path, status, duration
//   - Recovery: Panic recovery returning a 500 Problem Details response
//   - CORS: Cross-origin request handling with configurable origins
//   - Compress: Gzip response compression when the client accepts it
//
// # Composition
//
// Middleware composes via Chain, applied outermost first:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(cfg.Server.AllowedOrigins),
//	    middleware.Compress,
//	)
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
