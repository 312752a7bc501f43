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

// reservationSelect joins the booked event so a single query populates the
// nested object. The event's own category is not loaded at this depth.
const reservationSelect = `
	SELECT r.id, r.name, r.customer_name, r.email, r.reservation_date, r.quantity,
	       e.id, e.event_name, e.description, e.event_date, e.capacity,
	       e.ubication, e.latitude, e.longitude
	FROM reservations r
	JOIN events e ON e.id = r.event_id`

// ReservationRepository handles persistence for reservations.
type ReservationRepository struct {
	db *pgxpool.Pool
}

// NewReservationRepository constructs a ReservationRepository.
func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func scanReservation(s scanner) (*model.Reservation, error) {
	var res model.Reservation
	var email *string
	var reservationDate *time.Time
	var e model.Event
	var eventDescription *string
	var eventDate *time.Time
	err := s.Scan(
		&res.ID, &res.Name, &res.CustomerName, &email, &reservationDate, &res.Quantity,
		&e.ID, &e.EventName, &eventDescription, &eventDate, &e.Capacity,
		&e.Ubication, &e.Latitude, &e.Longitude,
	)
	if err != nil {
		return nil, err
	}
	res.Email = strVal(email)
	res.ReservationDate = dateVal(reservationDate)
	e.Description = strVal(eventDescription)
	e.EventDate = dateVal(eventDate)
	res.Event = &e
	return &res, nil
}

func (r *ReservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []model.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

// FindAll returns all reservations ordered by id.
func (r *ReservationRepository) FindAll(ctx context.Context) ([]model.Reservation, error) {
	return r.queryReservations(ctx, reservationSelect+` ORDER BY r.id`)
}

// FindByID returns a single reservation or ErrNotFound.
func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*model.Reservation, error) {
	res, err := scanReservation(r.db.QueryRow(ctx, reservationSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// FindByCustomerNameContaining returns reservations whose customer name
// contains the given substring (case-sensitive).
func (r *ReservationRepository) FindByCustomerNameContaining(ctx context.Context, name string) ([]model.Reservation, error) {
	return r.queryReservations(ctx,
		reservationSelect+` WHERE r.customer_name LIKE '%' || $1 || '%' ORDER BY r.id`, name)
}

// FindByReservationDate returns reservations made exactly on the given date.
func (r *ReservationRepository) FindByReservationDate(ctx context.Context, date model.Date) ([]model.Reservation, error) {
	return r.queryReservations(ctx,
		reservationSelect+` WHERE r.reservation_date = $1 ORDER BY r.id`, date.Time)
}

// FindByReservationDateBetween returns reservations between the two dates,
// boundaries included.
func (r *ReservationRepository) FindByReservationDateBetween(ctx context.Context, start, end model.Date) ([]model.Reservation, error) {
	return r.queryReservations(ctx,
		reservationSelect+` WHERE r.reservation_date BETWEEN $1 AND $2 ORDER BY r.id`,
		start.Time, end.Time)
}

// FindByQuantity returns reservations for exactly the given ticket quantity.
func (r *ReservationRepository) FindByQuantity(ctx context.Context, quantity int) ([]model.Reservation, error) {
	return r.queryReservations(ctx,
		reservationSelect+` WHERE r.quantity = $1 ORDER BY r.id`, quantity)
}

// FindByEventID returns reservations booked against the given event.
func (r *ReservationRepository) FindByEventID(ctx context.Context, eventID int64) ([]model.Reservation, error) {
	return r.queryReservations(ctx,
		reservationSelect+` WHERE r.event_id = $1 ORDER BY r.id`, eventID)
}

func eventIDArg(res *model.Reservation) any {
	if res.Event == nil {
		return nil
	}
	return res.Event.ID
}

// Save inserts the reservation when its id is zero, assigning the generated
// identity, and updates the existing row otherwise.
func (r *ReservationRepository) Save(ctx context.Context, res *model.Reservation) (*model.Reservation, error) {
	if res.ID == 0 {
		err := r.db.QueryRow(ctx,
			`INSERT INTO reservations (name, customer_name, email, reservation_date, quantity, event_id)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			res.Name, res.CustomerName, res.Email, dateArg(res.ReservationDate),
			res.Quantity, eventIDArg(res),
		).Scan(&res.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("insert reservation: %w", ErrDuplicate)
			}
			return nil, fmt.Errorf("insert reservation: %w", err)
		}
		return res, nil
	}

	_, err := r.db.Exec(ctx,
		`UPDATE reservations
		 SET name = $1, customer_name = $2, email = $3, reservation_date = $4,
		     quantity = $5, event_id = $6
		 WHERE id = $7`,
		res.Name, res.CustomerName, res.Email, dateArg(res.ReservationDate),
		res.Quantity, eventIDArg(res), res.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update reservation: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("update reservation: %w", err)
	}
	return res, nil
}

// DeleteByID removes a reservation.
func (r *ReservationRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	return nil
}

// ExistsByID reports whether a reservation with the given id exists.
func (r *ReservationRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("reservation exists: %w", err)
	}
	return exists, nil
}
