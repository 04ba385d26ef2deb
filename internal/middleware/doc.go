// Package middleware provides HTTP middleware for the activities API.
//
// # Available Middleware
//
//   - RequestID: attaches a unique ID to every request
//   - Logger: structured request logging via slog
//   - Recovery: panic recovery returning a Problem Details 500
//   - CORS: origin allow-listing and preflight handling
//   - RateLimit: token bucket rate limiting per client IP
//   - Compress: gzip response compression
//
// Middleware is applied globally with Chain:
//
//	handler := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
//
// # Context Values
//
// GetRequestID(ctx) returns the unique request identifier set by RequestID.
package middleware
