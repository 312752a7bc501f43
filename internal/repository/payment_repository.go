package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// paymentSelect joins the paid reservation so a single query populates the
// nested object. The reservation's own event is not loaded at this depth.
const paymentSelect = `
	SELECT p.id, p.name, p.customer_name, p.payment_date, p.amount, p.status,
	       r.id, r.name, r.customer_name, r.email, r.reservation_date, r.quantity
	FROM payments p
	JOIN reservations r ON r.id = p.reservation_id`

// PaymentRepository handles persistence for payments.
type PaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository constructs a PaymentRepository.
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func scanPayment(s scanner) (*model.Payment, error) {
	var p model.Payment
	var name, status *string
	var paymentDate *time.Time
	var res model.Reservation
	var resEmail *string
	var resDate *time.Time
	err := s.Scan(
		&p.ID, &name, &p.CustomerName, &paymentDate, &p.Amount, &status,
		&res.ID, &res.Name, &res.CustomerName, &resEmail, &resDate, &res.Quantity,
	)
	if err != nil {
		return nil, err
	}
	p.Name = strVal(name)
	p.Status = strVal(status)
	p.PaymentDate = dateVal(paymentDate)
	res.Email = strVal(resEmail)
	res.ReservationDate = dateVal(resDate)
	p.Reservation = &res
	return &p, nil
}

func (r *PaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]model.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

// FindAll returns all payments ordered by id.
func (r *PaymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	return r.queryPayments(ctx, paymentSelect+` ORDER BY p.id`)
}

// FindByID returns a single payment or ErrNotFound.
func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*model.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, paymentSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// FindByPaymentDate returns payments made exactly on the given date.
func (r *PaymentRepository) FindByPaymentDate(ctx context.Context, date model.Date) ([]model.Payment, error) {
	return r.queryPayments(ctx,
		paymentSelect+` WHERE p.payment_date = $1 ORDER BY p.id`, date.Time)
}

// FindByPaymentDateBetween returns payments between the two dates,
// boundaries included.
func (r *PaymentRepository) FindByPaymentDateBetween(ctx context.Context, start, end model.Date) ([]model.Payment, error) {
	return r.queryPayments(ctx,
		paymentSelect+` WHERE p.payment_date BETWEEN $1 AND $2 ORDER BY p.id`,
		start.Time, end.Time)
}

// FindByStatus returns payments with exactly the given status.
func (r *PaymentRepository) FindByStatus(ctx context.Context, status string) ([]model.Payment, error) {
	return r.queryPayments(ctx,
		paymentSelect+` WHERE p.status = $1 ORDER BY p.id`, status)
}

// FindByAmountGreaterThanEqual returns payments of at least the given
// amount, boundary included.
func (r *PaymentRepository) FindByAmountGreaterThanEqual(ctx context.Context, amount float64) ([]model.Payment, error) {
	return r.queryPayments(ctx,
		paymentSelect+` WHERE p.amount >= $1 ORDER BY p.id`, amount)
}

// FindByReservationID returns payments recorded against the given
// reservation.
func (r *PaymentRepository) FindByReservationID(ctx context.Context, reservationID int64) ([]model.Payment, error) {
	return r.queryPayments(ctx,
		paymentSelect+` WHERE p.reservation_id = $1 ORDER BY p.id`, reservationID)
}

func reservationIDArg(p *model.Payment) any {
	if p.Reservation == nil {
		return nil
	}
	return p.Reservation.ID
}

// Save inserts the payment when its id is zero, assigning the generated
// identity, and updates the existing row otherwise.
func (r *PaymentRepository) Save(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	if p.ID == 0 {
		err := r.db.QueryRow(ctx,
			`INSERT INTO payments (name, customer_name, payment_date, amount, status, reservation_id)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			p.Name, p.CustomerName, dateArg(p.PaymentDate), p.Amount, p.Status, reservationIDArg(p),
		).Scan(&p.ID)
		if err != nil {
			return nil, fmt.Errorf("insert payment: %w", err)
		}
		return p, nil
	}

	_, err := r.db.Exec(ctx,
		`UPDATE payments
		 SET name = $1, customer_name = $2, payment_date = $3, amount = $4,
		     status = $5, reservation_id = $6
		 WHERE id = $7`,
		p.Name, p.CustomerName, dateArg(p.PaymentDate), p.Amount, p.Status,
		reservationIDArg(p), p.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	return p, nil
}

// DeleteByID removes a payment.
func (r *PaymentRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

// ExistsByID reports whether a payment with the given id exists.
func (r *PaymentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM payments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("payment exists: %w", err)
	}
	return exists, nil
}
