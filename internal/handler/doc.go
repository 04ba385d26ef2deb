// Package handler provides HTTP request handlers for the activities API.
//
// Each handler struct encapsulates the service it serves requests with.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the services it depends on
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped to RFC 9457 Problem Details responses by
//     MapServiceError
//
// # Wire Format
//
// GET /activities returns the raw name-to-record mapping with no envelope;
// signup and unregister return a {"message": ...} confirmation. Error bodies
// carry the client-facing message in the "detail" field.
package handler
