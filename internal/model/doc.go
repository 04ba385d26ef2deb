// Package model defines domain entities and data structures for the activities API.
//
// The model package contains the Activity record, response types, and error
// definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// The only domain entity is Activity: an extracurricular offering keyed by its
// unique name, carrying a description, a human-readable schedule string, a
// declared capacity, and the ordered list of registered participant emails.
//
// # JSON Serialization
//
// Wire field names use snake_case:
//
//	type Activity struct {
//	    Description     string   `json:"description"`
//	    Schedule        string   `json:"schedule"`
//	    MaxParticipants int      `json:"max_participants"`
//	    Participants    []string `json:"participants"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go. The detail field
// carries the message strings clients match on.
package model
