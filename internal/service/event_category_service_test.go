package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/service"
	"github.com/LauraInd/TestingAPIs/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService() (*service.EventCategoryService, *servicetest.CategoryRepo) {
	repo := servicetest.NewCategoryRepo()
	return service.NewEventCategoryService(repo), repo
}

func seedCategories(t *testing.T, svc *service.EventCategoryService) {
	t.Helper()
	ctx := context.Background()
	for _, c := range []model.EventCategory{
		{Name: "Music", Description: "Live music", CreationDate: model.NewDate(2024, time.January, 1), NumberEvents: 5, Active: true},
		{Name: "Theatre", Description: "Plays and musicals", CreationDate: model.NewDate(2024, time.March, 15), NumberEvents: 2, Active: true},
		{Name: "Retired", Description: "No longer used", CreationDate: model.NewDate(2023, time.June, 1), NumberEvents: 0, Active: false},
	} {
		c := c
		_, err := svc.SaveCategory(ctx, &c)
		require.NoError(t, err)
	}
}

func TestGetCategoriesByName(t *testing.T) {
	svc, _ := newCategoryService()
	seedCategories(t, svc)

	matched, err := svc.GetCategoriesByName(context.Background(), "usi")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Music", matched[0].Name)
}

func TestGetActiveAndInactiveCategories(t *testing.T) {
	svc, _ := newCategoryService()
	seedCategories(t, svc)
	ctx := context.Background()

	active, err := svc.GetActiveCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	inactive, err := svc.GetInactiveCategories(ctx)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Retired", inactive[0].Name)
}

func TestGetCategoriesByCreationDateFilters(t *testing.T) {
	svc, _ := newCategoryService()
	seedCategories(t, svc)
	ctx := context.Background()

	on, err := svc.GetCategoriesByCreationDate(ctx, model.NewDate(2024, time.January, 1))
	require.NoError(t, err)
	require.Len(t, on, 1)
	assert.Equal(t, "Music", on[0].Name)

	after, err := svc.GetCategoriesCreatedAfter(ctx, model.NewDate(2024, time.January, 1))
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "Theatre", after[0].Name)

	before, err := svc.GetCategoriesCreatedBefore(ctx, model.NewDate(2024, time.January, 1))
	require.NoError(t, err)
	require.Len(t, before, 1)
	assert.Equal(t, "Retired", before[0].Name)
}

func TestGetCategoriesWithMinEventsBoundaryInclusive(t *testing.T) {
	svc, _ := newCategoryService()
	seedCategories(t, svc)

	matched, err := svc.GetCategoriesWithMinEvents(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Music", matched[0].Name)
	assert.Equal(t, "Theatre", matched[1].Name)
}

func TestGetCategoriesByNumberOfEventsExactMatch(t *testing.T) {
	svc, _ := newCategoryService()
	seedCategories(t, svc)

	matched, err := svc.GetCategoriesByNumberOfEvents(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Theatre", matched[0].Name)
}

func TestUpdateCategoryReplacesAllMutableFields(t *testing.T) {
	svc, _ := newCategoryService()
	seedCategories(t, svc)

	updated, err := svc.UpdateCategory(context.Background(), 1, &model.EventCategory{
		Name:         "Concerts",
		Description:  "Renamed",
		CreationDate: model.NewDate(2025, time.February, 2),
		NumberEvents: 9,
		Active:       false,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Concerts", updated.Name)
	assert.Equal(t, "Renamed", updated.Description)
	assert.Equal(t, model.NewDate(2025, time.February, 2), updated.CreationDate)
	assert.Equal(t, 9, updated.NumberEvents)
	assert.False(t, updated.Active)
}

func TestCategoryNotFoundMessages(t *testing.T) {
	svc, _ := newCategoryService()
	ctx := context.Background()

	_, err := svc.GetCategoryByID(ctx, 8)
	require.ErrorIs(t, err, service.ErrCategoryNotFound)
	assert.Equal(t, "Category not found with id: 8", err.Error())

	_, err = svc.UpdateCategoryPartial(ctx, 8, map[string]any{"name": "X"})
	require.ErrorIs(t, err, service.ErrCategoryNotFound)

	err = svc.DeleteCategory(ctx, 8)
	require.ErrorIs(t, err, service.ErrCategoryNotFound)
}
