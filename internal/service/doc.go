// Package service implements the business logic layer for the activities API.
//
// The service package translates store outcomes into domain errors and is the
// abstraction between HTTP handlers and the activity store.
//
// # Service Pattern
//
//   - Constructor function (NewXxxService) accepts a config struct with dependencies
//   - Methods implement business operations
//   - Errors are returned as sentinel errors
//   - Context is passed through for cancellation and request-scoped values
//
// # Store Interface
//
// The service defines its own store interface, allowing easy mocking for unit
// tests and decoupling from the concrete in-memory implementation.
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrActivityNotFound = errors.New("activity not found")
//	    ErrAlreadySignedUp  = errors.New("already signed up for this activity")
//	)
package service
