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

// eventSelect joins the owning category so a single query populates the
// nested object.
const eventSelect = `
	SELECT e.id, e.event_name, e.description, e.event_date, e.capacity,
	       e.ubication, e.latitude, e.longitude,
	       c.id, c.name, c.description, c.creation_date, c.number_events, c.active
	FROM events e
	LEFT JOIN event_categories c ON c.id = e.category_id`

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(s scanner) (*model.Event, error) {
	var e model.Event
	var description *string
	var eventDate *time.Time
	var catID *int64
	var catName, catDescription *string
	var catCreationDate *time.Time
	var catNumberEvents *int
	var catActive *bool
	err := s.Scan(
		&e.ID, &e.EventName, &description, &eventDate, &e.Capacity,
		&e.Ubication, &e.Latitude, &e.Longitude,
		&catID, &catName, &catDescription, &catCreationDate, &catNumberEvents, &catActive,
	)
	if err != nil {
		return nil, err
	}
	e.Description = strVal(description)
	e.EventDate = dateVal(eventDate)
	if catID != nil {
		e.Category = &model.EventCategory{
			ID:           *catID,
			Name:         strVal(catName),
			Description:  strVal(catDescription),
			CreationDate: dateVal(catCreationDate),
			Active:       catActive != nil && *catActive,
		}
		if catNumberEvents != nil {
			e.Category.NumberEvents = *catNumberEvents
		}
	}
	return &e, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]model.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// FindAll returns all events ordered by id.
func (r *EventRepository) FindAll(ctx context.Context) ([]model.Event, error) {
	return r.queryEvents(ctx, eventSelect+` ORDER BY e.id`)
}

// FindByID returns a single event or ErrNotFound.
func (r *EventRepository) FindByID(ctx context.Context, id int64) (*model.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx, eventSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// FindByEventNameContaining returns events whose name contains the given
// substring (case-sensitive).
func (r *EventRepository) FindByEventNameContaining(ctx context.Context, name string) ([]model.Event, error) {
	return r.queryEvents(ctx,
		eventSelect+` WHERE e.event_name LIKE '%' || $1 || '%' ORDER BY e.id`, name)
}

// FindByCapacityLessThanEqual returns events with capacity at most the
// given threshold.
func (r *EventRepository) FindByCapacityLessThanEqual(ctx context.Context, capacity int) ([]model.Event, error) {
	return r.queryEvents(ctx,
		eventSelect+` WHERE e.capacity <= $1 ORDER BY e.id`, capacity)
}

// FindByEventDate returns events happening exactly on the given date.
func (r *EventRepository) FindByEventDate(ctx context.Context, date model.Date) ([]model.Event, error) {
	return r.queryEvents(ctx,
		eventSelect+` WHERE e.event_date = $1 ORDER BY e.id`, date.Time)
}

// FindByEventDateBetween returns events between the two dates, boundaries
// included.
func (r *EventRepository) FindByEventDateBetween(ctx context.Context, start, end model.Date) ([]model.Event, error) {
	return r.queryEvents(ctx,
		eventSelect+` WHERE e.event_date BETWEEN $1 AND $2 ORDER BY e.id`,
		start.Time, end.Time)
}

// FindByUbicationContaining returns events whose location contains the
// given substring.
func (r *EventRepository) FindByUbicationContaining(ctx context.Context, ubication string) ([]model.Event, error) {
	return r.queryEvents(ctx,
		eventSelect+` WHERE e.ubication LIKE '%' || $1 || '%' ORDER BY e.id`, ubication)
}

func categoryIDArg(e *model.Event) any {
	if e.Category == nil {
		return nil
	}
	return e.Category.ID
}

// Save inserts the event when its id is zero, assigning the generated
// identity, and updates the existing row otherwise.
func (r *EventRepository) Save(ctx context.Context, e *model.Event) (*model.Event, error) {
	if e.ID == 0 {
		err := r.db.QueryRow(ctx,
			`INSERT INTO events (event_name, description, event_date, capacity, ubication, latitude, longitude, category_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING id`,
			e.EventName, e.Description, dateArg(e.EventDate), e.Capacity,
			e.Ubication, e.Latitude, e.Longitude, categoryIDArg(e),
		).Scan(&e.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("insert event: %w", ErrDuplicate)
			}
			return nil, fmt.Errorf("insert event: %w", err)
		}
		return e, nil
	}

	_, err := r.db.Exec(ctx,
		`UPDATE events
		 SET event_name = $1, description = $2, event_date = $3, capacity = $4,
		     ubication = $5, latitude = $6, longitude = $7, category_id = $8
		 WHERE id = $9`,
		e.EventName, e.Description, dateArg(e.EventDate), e.Capacity,
		e.Ubication, e.Latitude, e.Longitude, categoryIDArg(e), e.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update event: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return e, nil
}

// DeleteByID removes an event.
func (r *EventRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// ExistsByID reports whether an event with the given id exists.
func (r *EventRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("event exists: %w", err)
	}
	return exists, nil
}
