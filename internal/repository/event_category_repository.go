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

const categoryColumns = `id, name, description, creation_date, number_events, active`

// EventCategoryRepository handles persistence for event categories.
type EventCategoryRepository struct {
	db *pgxpool.Pool
}

// NewEventCategoryRepository constructs an EventCategoryRepository.
func NewEventCategoryRepository(db *pgxpool.Pool) *EventCategoryRepository {
	return &EventCategoryRepository{db: db}
}

func scanCategory(s scanner) (*model.EventCategory, error) {
	var c model.EventCategory
	var creationDate *time.Time
	if err := s.Scan(&c.ID, &c.Name, &c.Description, &creationDate, &c.NumberEvents, &c.Active); err != nil {
		return nil, err
	}
	c.CreationDate = dateVal(creationDate)
	return &c, nil
}

func (r *EventCategoryRepository) queryCategories(ctx context.Context, query string, args ...any) ([]model.EventCategory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.EventCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

// FindAll returns all categories ordered by id.
func (r *EventCategoryRepository) FindAll(ctx context.Context) ([]model.EventCategory, error) {
	return r.queryCategories(ctx, `SELECT `+categoryColumns+` FROM event_categories ORDER BY id`)
}

// FindByID returns a single category or ErrNotFound.
func (r *EventCategoryRepository) FindByID(ctx context.Context, id int64) (*model.EventCategory, error) {
	c, err := scanCategory(r.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM event_categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// FindByNameContaining returns categories whose name contains the given
// substring (case-sensitive).
func (r *EventCategoryRepository) FindByNameContaining(ctx context.Context, name string) ([]model.EventCategory, error) {
	return r.queryCategories(ctx,
		`SELECT `+categoryColumns+` FROM event_categories
		 WHERE name LIKE '%' || $1 || '%' ORDER BY id`, name)
}

// FindByDescriptionContaining returns categories whose description contains
// the given substring.
func (r *EventCategoryRepository) FindByDescriptionContaining(ctx context.Context, description string) ([]model.EventCategory, error) {
	return r.queryCategories(ctx,
		`SELECT `+categoryColumns+` FROM event_categories
		 WHERE description LIKE '%' || $1 || '%' ORDER BY id`, description)
}

// FindByActiveTrue returns all active categories.
func (r *EventCategoryRepository) FindByActiveTrue(ctx context.Context) ([]model.EventCategory, error) {
	return r.queryCategories(ctx,
		`SELECT `+categoryColumns+` FROM event_categories WHERE active ORDER BY id`)
}

// FindByActiveFalse returns all inactive categories.
func (r *EventCategoryRepository) FindByActiveFalse(ctx context.Context) ([]model.EventCategory, error) {
	return r.queryCategories(ctx,
		`SELECT `+categoryColumns+` FROM event_categories WHERE NOT active ORDER BY id`)
}

// FindByCreationDate returns categories created exactly on the given date.
func (r *EventCategoryRepository) FindByCreationDate(ctx context.Context, date model.Date) ([]model.EventCategory, error) {
	return r.queryCategories(ctx,
		`SELECT `+categoryColumns+` FROM event_categories WHERE creation_date = $1 ORDER BY id`,
		date.Time)
}

// FindByCreationDateAfter returns categories created strictly after the
// given date.
func (r *EventCategoryRepository) FindByCreationDateAfter(ctx context.Context, date model.Date) ([]model.EventCategory, error) {
	return r.queryCategories(ctx,
		`SELECT `+categoryColumns+` FROM event_categories WHERE creation_date > $1 ORDER BY id`,
		date.Time)
}

// FindByCreationDateBefore returns categories created strictly before the
// given date.
func (r *EventCategoryRepository) FindByCreationDateBefore(ctx context.Context, date model.Date) ([]model.EventCategory, error) {
	return r.queryCategories(ctx,
		`SELECT `+categoryColumns+` FROM event_categories WHERE creation_date < $1 ORDER BY id`,
		date.Time)
}

// FindByNumberEvents returns categories with exactly the given event count.
func (r *EventCategoryRepository) FindByNumberEvents(ctx context.Context, numberEvents int) ([]model.EventCategory, error) {
	return r.queryCategories(ctx,
		`SELECT `+categoryColumns+` FROM event_categories WHERE number_events = $1 ORDER BY id`,
		numberEvents)
}

// FindByNumberEventsGreaterThanEqual returns categories with at least the
// given event count.
func (r *EventCategoryRepository) FindByNumberEventsGreaterThanEqual(ctx context.Context, minEvents int) ([]model.EventCategory, error) {
	return r.queryCategories(ctx,
		`SELECT `+categoryColumns+` FROM event_categories WHERE number_events >= $1 ORDER BY id`,
		minEvents)
}

// Save inserts the category when its id is zero, assigning the generated
// identity, and updates the existing row otherwise.
func (r *EventCategoryRepository) Save(ctx context.Context, c *model.EventCategory) (*model.EventCategory, error) {
	if c.ID == 0 {
		err := r.db.QueryRow(ctx,
			`INSERT INTO event_categories (name, description, creation_date, number_events, active)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			c.Name, c.Description, dateArg(c.CreationDate), c.NumberEvents, c.Active,
		).Scan(&c.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, fmt.Errorf("insert category: %w", ErrDuplicate)
			}
			return nil, fmt.Errorf("insert category: %w", err)
		}
		return c, nil
	}

	_, err := r.db.Exec(ctx,
		`UPDATE event_categories
		 SET name = $1, description = $2, creation_date = $3, number_events = $4, active = $5
		 WHERE id = $6`,
		c.Name, c.Description, dateArg(c.CreationDate), c.NumberEvents, c.Active, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("update category: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// DeleteByID removes a category.
func (r *EventCategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM event_categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ExistsByID reports whether a category with the given id exists.
func (r *EventCategoryRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM event_categories WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return exists, nil
}
