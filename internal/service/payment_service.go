package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/repository"
	"github.com/sirupsen/logrus"
)

// PaymentRepository is the persistence contract the payment service
// depends on.
type PaymentRepository interface {
	FindAll(ctx context.Context) ([]model.Payment, error)
	FindByID(ctx context.Context, id int64) (*model.Payment, error)
	FindByPaymentDate(ctx context.Context, date model.Date) ([]model.Payment, error)
	FindByPaymentDateBetween(ctx context.Context, start, end model.Date) ([]model.Payment, error)
	FindByStatus(ctx context.Context, status string) ([]model.Payment, error)
	FindByAmountGreaterThanEqual(ctx context.Context, amount float64) ([]model.Payment, error)
	FindByReservationID(ctx context.Context, reservationID int64) ([]model.Payment, error)
	Save(ctx context.Context, p *model.Payment) (*model.Payment, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// PaymentService orchestrates payment operations.
type PaymentService struct {
	payments PaymentRepository
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(payments PaymentRepository) *PaymentService {
	return &PaymentService{payments: payments}
}

// GetAllPayments returns every payment.
func (s *PaymentService) GetAllPayments(ctx context.Context) ([]model.Payment, error) {
	return s.payments.FindAll(ctx)
}

// GetPaymentByID returns a single payment.
func (s *PaymentService) GetPaymentByID(ctx context.Context, id int64) (*model.Payment, error) {
	p, err := s.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrPaymentNotFound, id)
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// GetPaymentsByDate returns payments made on the given date.
func (s *PaymentService) GetPaymentsByDate(ctx context.Context, date model.Date) ([]model.Payment, error) {
	return s.payments.FindByPaymentDate(ctx, date)
}

// GetPaymentsBetweenDates returns payments between the two dates, inclusive.
func (s *PaymentService) GetPaymentsBetweenDates(ctx context.Context, start, end model.Date) ([]model.Payment, error) {
	return s.payments.FindByPaymentDateBetween(ctx, start, end)
}

// GetPaymentsByStatus returns payments with exactly the given status.
func (s *PaymentService) GetPaymentsByStatus(ctx context.Context, status string) ([]model.Payment, error) {
	return s.payments.FindByStatus(ctx, status)
}

// GetPaymentsByAmount returns payments of at least the given amount,
// boundary included.
func (s *PaymentService) GetPaymentsByAmount(ctx context.Context, amount float64) ([]model.Payment, error) {
	return s.payments.FindByAmountGreaterThanEqual(ctx, amount)
}

// GetPaymentsByReservation returns payments recorded against the
// reservation.
func (s *PaymentService) GetPaymentsByReservation(ctx context.Context, reservationID int64) ([]model.Payment, error) {
	return s.payments.FindByReservationID(ctx, reservationID)
}

// SavePayment inserts a new payment.
func (s *PaymentService) SavePayment(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	saved, err := s.payments.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	logrus.WithField("payment_id", saved.ID).Info("payment created")
	return saved, nil
}

// UpdatePayment replaces the payment's name, date, amount, status and
// reservation. Customer name is left untouched; a nil reservation in the
// replacement leaves the current one unchanged.
func (s *PaymentService) UpdatePayment(ctx context.Context, id int64, details *model.Payment) (*model.Payment, error) {
	existing, err := s.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrPaymentNotFound, id)
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}

	existing.Name = details.Name
	existing.PaymentDate = details.PaymentDate
	existing.Amount = details.Amount
	existing.Status = details.Status
	if details.Reservation != nil {
		existing.Reservation = details.Reservation
	}
	return s.payments.Save(ctx, existing)
}

// UpdatePaymentPartial applies a sparse field map to the payment.
func (s *PaymentService) UpdatePaymentPartial(ctx context.Context, id int64, updates map[string]any) (*model.Payment, error) {
	existing, err := s.payments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrPaymentNotFound, id)
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}

	existing.ApplyUpdates(updates)
	return s.payments.Save(ctx, existing)
}

// DeletePayment removes a payment by id.
func (s *PaymentService) DeletePayment(ctx context.Context, id int64) error {
	exists, err := s.payments.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("payment exists: %w", err)
	}
	if !exists {
		return notFound(ErrPaymentNotFound, id)
	}
	if err := s.payments.DeleteByID(ctx, id); err != nil {
		return err
	}
	logrus.WithField("payment_id", id).Info("payment deleted")
	return nil
}
