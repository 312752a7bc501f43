package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/repository"
	"github.com/sirupsen/logrus"
)

// ReservationRepository is the persistence contract the reservation service
// depends on.
type ReservationRepository interface {
	FindAll(ctx context.Context) ([]model.Reservation, error)
	FindByID(ctx context.Context, id int64) (*model.Reservation, error)
	FindByCustomerNameContaining(ctx context.Context, name string) ([]model.Reservation, error)
	FindByReservationDate(ctx context.Context, date model.Date) ([]model.Reservation, error)
	FindByReservationDateBetween(ctx context.Context, start, end model.Date) ([]model.Reservation, error)
	FindByQuantity(ctx context.Context, quantity int) ([]model.Reservation, error)
	FindByEventID(ctx context.Context, eventID int64) ([]model.Reservation, error)
	Save(ctx context.Context, res *model.Reservation) (*model.Reservation, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// ReservationService orchestrates reservation operations.
type ReservationService struct {
	reservations ReservationRepository
}

// NewReservationService constructs a ReservationService.
func NewReservationService(reservations ReservationRepository) *ReservationService {
	return &ReservationService{reservations: reservations}
}

// GetAllReservations returns every reservation.
func (s *ReservationService) GetAllReservations(ctx context.Context) ([]model.Reservation, error) {
	return s.reservations.FindAll(ctx)
}

// GetReservationByID returns a single reservation.
func (s *ReservationService) GetReservationByID(ctx context.Context, id int64) (*model.Reservation, error) {
	res, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrReservationNotFound, id)
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// GetReservationsByCustomerName returns reservations whose customer name
// contains the substring.
func (s *ReservationService) GetReservationsByCustomerName(ctx context.Context, name string) ([]model.Reservation, error) {
	return s.reservations.FindByCustomerNameContaining(ctx, name)
}

// GetReservationsByDate returns reservations made on the given date.
func (s *ReservationService) GetReservationsByDate(ctx context.Context, date model.Date) ([]model.Reservation, error) {
	return s.reservations.FindByReservationDate(ctx, date)
}

// GetReservationsBetweenDates returns reservations between the two dates,
// inclusive.
func (s *ReservationService) GetReservationsBetweenDates(ctx context.Context, start, end model.Date) ([]model.Reservation, error) {
	return s.reservations.FindByReservationDateBetween(ctx, start, end)
}

// GetReservationsByQuantity returns reservations for exactly the given
// ticket quantity.
func (s *ReservationService) GetReservationsByQuantity(ctx context.Context, quantity int) ([]model.Reservation, error) {
	return s.reservations.FindByQuantity(ctx, quantity)
}

// GetReservationsByEvent returns reservations booked against the event.
func (s *ReservationService) GetReservationsByEvent(ctx context.Context, eventID int64) ([]model.Reservation, error) {
	return s.reservations.FindByEventID(ctx, eventID)
}

// SaveReservation inserts a new reservation.
func (s *ReservationService) SaveReservation(ctx context.Context, res *model.Reservation) (*model.Reservation, error) {
	saved, err := s.reservations.Save(ctx, res)
	if err != nil {
		return nil, err
	}
	logrus.WithField("reservation_id", saved.ID).Info("reservation created")
	return saved, nil
}

// UpdateReservation replaces the reservation's customer name, email, date,
// quantity and event. Name is left untouched; a nil event in the
// replacement leaves the current one unchanged.
func (s *ReservationService) UpdateReservation(ctx context.Context, id int64, details *model.Reservation) (*model.Reservation, error) {
	existing, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrReservationNotFound, id)
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	existing.CustomerName = details.CustomerName
	existing.Email = details.Email
	existing.ReservationDate = details.ReservationDate
	existing.Quantity = details.Quantity
	if details.Event != nil {
		existing.Event = details.Event
	}
	return s.reservations.Save(ctx, existing)
}

// UpdateReservationPartial applies a sparse field map to the reservation.
func (s *ReservationService) UpdateReservationPartial(ctx context.Context, id int64, updates map[string]any) (*model.Reservation, error) {
	existing, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrReservationNotFound, id)
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	existing.ApplyUpdates(updates)
	return s.reservations.Save(ctx, existing)
}

// DeleteReservation removes a reservation by id.
func (s *ReservationService) DeleteReservation(ctx context.Context, id int64) error {
	exists, err := s.reservations.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("reservation exists: %w", err)
	}
	if !exists {
		return notFound(ErrReservationNotFound, id)
	}
	if err := s.reservations.DeleteByID(ctx, id); err != nil {
		return err
	}
	logrus.WithField("reservation_id", id).Info("reservation deleted")
	return nil
}
