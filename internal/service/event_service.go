package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/repository"
	"github.com/sirupsen/logrus"
)

// EventRepository is the persistence contract the event service depends on.
type EventRepository interface {
	FindAll(ctx context.Context) ([]model.Event, error)
	FindByID(ctx context.Context, id int64) (*model.Event, error)
	FindByEventNameContaining(ctx context.Context, name string) ([]model.Event, error)
	FindByCapacityLessThanEqual(ctx context.Context, capacity int) ([]model.Event, error)
	FindByEventDate(ctx context.Context, date model.Date) ([]model.Event, error)
	FindByEventDateBetween(ctx context.Context, start, end model.Date) ([]model.Event, error)
	FindByUbicationContaining(ctx context.Context, ubication string) ([]model.Event, error)
	Save(ctx context.Context, e *model.Event) (*model.Event, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// CategoryFinder resolves the category referenced by an event registration.
type CategoryFinder interface {
	FindByID(ctx context.Context, id int64) (*model.EventCategory, error)
}

// EventService orchestrates event operations, including the registration
// flow that resolves the category and stamps the event date.
type EventService struct {
	events     EventRepository
	categories CategoryFinder
	stampDate  bool
}

// NewEventService constructs an EventService. stampDate controls whether
// registration overrides the caller-supplied event date with today.
func NewEventService(events EventRepository, categories CategoryFinder, stampDate bool) *EventService {
	return &EventService{events: events, categories: categories, stampDate: stampDate}
}

// GetAllEvents returns every event.
func (s *EventService) GetAllEvents(ctx context.Context) ([]model.Event, error) {
	return s.events.FindAll(ctx)
}

// GetEventByID returns a single event.
func (s *EventService) GetEventByID(ctx context.Context, id int64) (*model.Event, error) {
	e, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrEventNotFound, id)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// GetEventsByName returns events whose name contains the substring.
func (s *EventService) GetEventsByName(ctx context.Context, name string) ([]model.Event, error) {
	return s.events.FindByEventNameContaining(ctx, name)
}

// GetEventsByCapacity returns events with capacity at most the threshold.
func (s *EventService) GetEventsByCapacity(ctx context.Context, capacity int) ([]model.Event, error) {
	return s.events.FindByCapacityLessThanEqual(ctx, capacity)
}

// GetEventsByDate returns events happening on the given date.
func (s *EventService) GetEventsByDate(ctx context.Context, date model.Date) ([]model.Event, error) {
	return s.events.FindByEventDate(ctx, date)
}

// GetEventsBetweenDates returns events between the two dates, inclusive.
func (s *EventService) GetEventsBetweenDates(ctx context.Context, start, end model.Date) ([]model.Event, error) {
	return s.events.FindByEventDateBetween(ctx, start, end)
}

// GetEventsByUbication returns events whose location contains the substring.
func (s *EventService) GetEventsByUbication(ctx context.Context, ubication string) ([]model.Event, error) {
	return s.events.FindByUbicationContaining(ctx, ubication)
}

// AddEvent registers a new event: the referenced category must exist, and
// the event date is stamped with today unless date stamping is disabled.
// Nothing is persisted when the category does not resolve.
func (s *EventService) AddEvent(ctx context.Context, reg model.EventRegistration) (*model.EventOut, error) {
	category, err := s.categories.FindByID(ctx, reg.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrCategoryNotFound, reg.CategoryID)
		}
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	event := &model.Event{
		EventName: reg.EventName,
		EventDate: reg.EventDate,
		Capacity:  reg.Capacity,
		Ubication: reg.Ubication,
		Latitude:  reg.Latitude,
		Longitude: reg.Longitude,
		Category:  category,
	}
	if s.stampDate {
		event.EventDate = model.Today()
	}

	saved, err := s.events.Save(ctx, event)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"event_id":    saved.ID,
		"category_id": category.ID,
	}).Info("event registered")

	return &model.EventOut{
		ID:         saved.ID,
		EventName:  saved.EventName,
		EventDate:  saved.EventDate,
		Capacity:   saved.Capacity,
		Ubication:  saved.Ubication,
		CategoryID: category.ID,
		Latitude:   saved.Latitude,
		Longitude:  saved.Longitude,
	}, nil
}

// UpdateEvent replaces the event's name, description, date, capacity,
// location and category. Latitude and longitude are left untouched; a nil
// category in the replacement leaves the current one unchanged.
func (s *EventService) UpdateEvent(ctx context.Context, id int64, details *model.Event) (*model.Event, error) {
	existing, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrEventNotFound, id)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	existing.EventName = details.EventName
	existing.Description = details.Description
	existing.EventDate = details.EventDate
	existing.Capacity = details.Capacity
	existing.Ubication = details.Ubication
	if details.Category != nil {
		existing.Category = details.Category
	}
	return s.events.Save(ctx, existing)
}

// UpdateEventPartial applies a sparse field map to the event.
func (s *EventService) UpdateEventPartial(ctx context.Context, id int64, updates map[string]any) (*model.Event, error) {
	existing, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrEventNotFound, id)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	existing.ApplyUpdates(updates)
	return s.events.Save(ctx, existing)
}

// DeleteEvent removes an event by id.
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	exists, err := s.events.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("event exists: %w", err)
	}
	if !exists {
		return notFound(ErrEventNotFound, id)
	}
	if err := s.events.DeleteByID(ctx, id); err != nil {
		return err
	}
	logrus.WithField("event_id", id).Info("event deleted")
	return nil
}
