// Package service implements business-facing facades over the repositories,
// translating absent rows into typed not-found errors and applying the
// full-replace and partial-update semantics per entity.
package service

import (
	"errors"
	"fmt"
)

// Per-entity not-found sentinels. Every operation on an entity uses its
// sentinel, including partial updates, so the HTTP layer can match with
// errors.Is and return the message verbatim as the 404 body.
var (
	ErrUserNotFound        = errors.New("User not found")
	ErrCategoryNotFound    = errors.New("Category not found")
	ErrEventNotFound       = errors.New("Event not found")
	ErrReservationNotFound = errors.New("Reservation not found")
	ErrPaymentNotFound     = errors.New("Payment not found")
)

// notFound wraps a sentinel with the missing identity, producing messages
// like "User not found with id: 7".
func notFound(sentinel error, id int64) error {
	return fmt.Errorf("%w with id: %d", sentinel, id)
}
