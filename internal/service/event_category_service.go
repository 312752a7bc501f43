package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/repository"
	"github.com/sirupsen/logrus"
)

// EventCategoryRepository is the persistence contract the category service
// depends on.
type EventCategoryRepository interface {
	FindAll(ctx context.Context) ([]model.EventCategory, error)
	FindByID(ctx context.Context, id int64) (*model.EventCategory, error)
	FindByNameContaining(ctx context.Context, name string) ([]model.EventCategory, error)
	FindByDescriptionContaining(ctx context.Context, description string) ([]model.EventCategory, error)
	FindByActiveTrue(ctx context.Context) ([]model.EventCategory, error)
	FindByActiveFalse(ctx context.Context) ([]model.EventCategory, error)
	FindByCreationDate(ctx context.Context, date model.Date) ([]model.EventCategory, error)
	FindByCreationDateAfter(ctx context.Context, date model.Date) ([]model.EventCategory, error)
	FindByCreationDateBefore(ctx context.Context, date model.Date) ([]model.EventCategory, error)
	FindByNumberEvents(ctx context.Context, numberEvents int) ([]model.EventCategory, error)
	FindByNumberEventsGreaterThanEqual(ctx context.Context, minEvents int) ([]model.EventCategory, error)
	Save(ctx context.Context, c *model.EventCategory) (*model.EventCategory, error)
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// EventCategoryService orchestrates category operations.
type EventCategoryService struct {
	categories EventCategoryRepository
}

// NewEventCategoryService constructs an EventCategoryService.
func NewEventCategoryService(categories EventCategoryRepository) *EventCategoryService {
	return &EventCategoryService{categories: categories}
}

// GetAllCategories returns every category.
func (s *EventCategoryService) GetAllCategories(ctx context.Context) ([]model.EventCategory, error) {
	return s.categories.FindAll(ctx)
}

// GetCategoryByID returns a single category.
func (s *EventCategoryService) GetCategoryByID(ctx context.Context, id int64) (*model.EventCategory, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrCategoryNotFound, id)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetCategoriesByName returns categories whose name contains the substring.
func (s *EventCategoryService) GetCategoriesByName(ctx context.Context, name string) ([]model.EventCategory, error) {
	return s.categories.FindByNameContaining(ctx, name)
}

// GetCategoriesByDescription returns categories whose description contains
// the substring.
func (s *EventCategoryService) GetCategoriesByDescription(ctx context.Context, description string) ([]model.EventCategory, error) {
	return s.categories.FindByDescriptionContaining(ctx, description)
}

// GetActiveCategories returns all active categories.
func (s *EventCategoryService) GetActiveCategories(ctx context.Context) ([]model.EventCategory, error) {
	return s.categories.FindByActiveTrue(ctx)
}

// GetInactiveCategories returns all inactive categories.
func (s *EventCategoryService) GetInactiveCategories(ctx context.Context) ([]model.EventCategory, error) {
	return s.categories.FindByActiveFalse(ctx)
}

// GetCategoriesByCreationDate returns categories created on the given date.
func (s *EventCategoryService) GetCategoriesByCreationDate(ctx context.Context, date model.Date) ([]model.EventCategory, error) {
	return s.categories.FindByCreationDate(ctx, date)
}

// GetCategoriesCreatedAfter returns categories created after the given date.
func (s *EventCategoryService) GetCategoriesCreatedAfter(ctx context.Context, date model.Date) ([]model.EventCategory, error) {
	return s.categories.FindByCreationDateAfter(ctx, date)
}

// GetCategoriesCreatedBefore returns categories created before the given date.
func (s *EventCategoryService) GetCategoriesCreatedBefore(ctx context.Context, date model.Date) ([]model.EventCategory, error) {
	return s.categories.FindByCreationDateBefore(ctx, date)
}

// GetCategoriesByNumberOfEvents returns categories with exactly the given
// event count.
func (s *EventCategoryService) GetCategoriesByNumberOfEvents(ctx context.Context, numberEvents int) ([]model.EventCategory, error) {
	return s.categories.FindByNumberEvents(ctx, numberEvents)
}

// GetCategoriesWithMinEvents returns categories with at least the given
// event count.
func (s *EventCategoryService) GetCategoriesWithMinEvents(ctx context.Context, minEvents int) ([]model.EventCategory, error) {
	return s.categories.FindByNumberEventsGreaterThanEqual(ctx, minEvents)
}

// SaveCategory inserts a new category.
func (s *EventCategoryService) SaveCategory(ctx context.Context, c *model.EventCategory) (*model.EventCategory, error) {
	saved, err := s.categories.Save(ctx, c)
	if err != nil {
		return nil, err
	}
	logrus.WithField("category_id", saved.ID).Info("category created")
	return saved, nil
}

// UpdateCategory replaces every mutable field of the category.
func (s *EventCategoryService) UpdateCategory(ctx context.Context, id int64, details *model.EventCategory) (*model.EventCategory, error) {
	existing, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrCategoryNotFound, id)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	existing.Name = details.Name
	existing.Description = details.Description
	existing.CreationDate = details.CreationDate
	existing.NumberEvents = details.NumberEvents
	existing.Active = details.Active
	return s.categories.Save(ctx, existing)
}

// UpdateCategoryPartial applies a sparse field map to the category.
func (s *EventCategoryService) UpdateCategoryPartial(ctx context.Context, id int64, updates map[string]any) (*model.EventCategory, error) {
	existing, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(ErrCategoryNotFound, id)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	existing.ApplyUpdates(updates)
	return s.categories.Save(ctx, existing)
}

// DeleteCategory removes a category by id.
func (s *EventCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	exists, err := s.categories.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("category exists: %w", err)
	}
	if !exists {
		return notFound(ErrCategoryNotFound, id)
	}
	if err := s.categories.DeleteByID(ctx, id); err != nil {
		return err
	}
	logrus.WithField("category_id", id).Info("category deleted")
	return nil
}
