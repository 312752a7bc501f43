// Package model defines the persisted domain types for the event-ticketing
// API, their JSON shapes, and the per-entity partial-update field tables.
package model

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
