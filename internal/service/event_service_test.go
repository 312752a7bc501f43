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

func newEventService(stampDate bool) (*service.EventService, *servicetest.EventRepo, *servicetest.CategoryRepo) {
	events := servicetest.NewEventRepo()
	categories := servicetest.NewCategoryRepo()
	return service.NewEventService(events, categories, stampDate), events, categories
}

func seedCategory(t *testing.T, categories *servicetest.CategoryRepo) *model.EventCategory {
	t.Helper()
	saved, err := categories.Save(context.Background(), &model.EventCategory{
		Name:         "Music",
		Description:  "Live music",
		CreationDate: model.NewDate(2024, time.January, 1),
		NumberEvents: 5,
		Active:       true,
	})
	require.NoError(t, err)
	return saved
}

func TestAddEventStampsToday(t *testing.T) {
	svc, events, categories := newEventService(true)
	cat := seedCategory(t, categories)

	out, err := svc.AddEvent(context.Background(), model.EventRegistration{
		EventName:  "Concert",
		EventDate:  model.NewDate(2030, time.December, 31),
		Capacity:   300,
		Ubication:  "Madrid",
		CategoryID: cat.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, model.Today(), out.EventDate)
	assert.Equal(t, cat.ID, out.CategoryID)
	assert.Positive(t, out.ID)

	stored := events.Events[out.ID]
	require.NotNil(t, stored.Category)
	assert.Equal(t, cat.ID, stored.Category.ID)
	assert.Equal(t, model.Today(), stored.EventDate)
}

func TestAddEventKeepsDateWhenStampingDisabled(t *testing.T) {
	svc, _, categories := newEventService(false)
	cat := seedCategory(t, categories)

	out, err := svc.AddEvent(context.Background(), model.EventRegistration{
		EventName:  "Concert",
		EventDate:  model.NewDate(2030, time.December, 31),
		Capacity:   300,
		Ubication:  "Madrid",
		CategoryID: cat.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, model.NewDate(2030, time.December, 31), out.EventDate)
}

func TestAddEventUnknownCategoryPersistsNothing(t *testing.T) {
	svc, events, _ := newEventService(true)

	_, err := svc.AddEvent(context.Background(), model.EventRegistration{
		EventName:  "Concert",
		Capacity:   300,
		Ubication:  "Madrid",
		CategoryID: 42,
	})

	require.ErrorIs(t, err, service.ErrCategoryNotFound)
	assert.Equal(t, "Category not found with id: 42", err.Error())
	assert.Empty(t, events.Events)
}

func TestGetEventsByCapacityThreshold(t *testing.T) {
	svc, events, _ := newEventService(true)
	ctx := context.Background()
	for _, e := range []model.Event{
		{EventName: "Small", Capacity: 100, Ubication: "Madrid"},
		{EventName: "Medium", Capacity: 300, Ubication: "Madrid"},
		{EventName: "Big", Capacity: 500, Ubication: "Madrid"},
	} {
		e := e
		_, err := events.Save(ctx, &e)
		require.NoError(t, err)
	}

	matched, err := svc.GetEventsByCapacity(ctx, 300)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Small", matched[0].EventName)
	assert.Equal(t, "Medium", matched[1].EventName)
}

func TestGetEventsBetweenDatesInclusive(t *testing.T) {
	svc, events, _ := newEventService(true)
	ctx := context.Background()
	for _, e := range []model.Event{
		{EventName: "Before", EventDate: model.NewDate(2024, time.May, 31), Ubication: "Madrid"},
		{EventName: "Start", EventDate: model.NewDate(2024, time.June, 1), Ubication: "Madrid"},
		{EventName: "End", EventDate: model.NewDate(2024, time.June, 30), Ubication: "Madrid"},
		{EventName: "After", EventDate: model.NewDate(2024, time.July, 1), Ubication: "Madrid"},
	} {
		e := e
		_, err := events.Save(ctx, &e)
		require.NoError(t, err)
	}

	matched, err := svc.GetEventsBetweenDates(ctx,
		model.NewDate(2024, time.June, 1), model.NewDate(2024, time.June, 30))
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Start", matched[0].EventName)
	assert.Equal(t, "End", matched[1].EventName)
}

func TestUpdateEventLeavesCoordinates(t *testing.T) {
	svc, events, _ := newEventService(true)
	ctx := context.Background()
	saved, err := events.Save(ctx, &model.Event{
		EventName: "Concert",
		Capacity:  300,
		Ubication: "Madrid",
		Latitude:  40.4,
		Longitude: -3.7,
		Category:  &model.EventCategory{ID: 1, Name: "Music"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEvent(ctx, saved.ID, &model.Event{
		EventName:   "Concert XL",
		Description: "Bigger venue",
		EventDate:   model.NewDate(2025, time.March, 1),
		Capacity:    500,
		Ubication:   "Barcelona",
		Latitude:    99,
		Longitude:   99,
	})
	require.NoError(t, err)

	assert.Equal(t, "Concert XL", updated.EventName)
	assert.Equal(t, 500, updated.Capacity)
	assert.Equal(t, "Barcelona", updated.Ubication)
	assert.Equal(t, 40.4, updated.Latitude)
	assert.Equal(t, -3.7, updated.Longitude)
	// nil category in the replacement keeps the current one
	require.NotNil(t, updated.Category)
	assert.Equal(t, int64(1), updated.Category.ID)
}

func TestUpdateEventPartialNotFound(t *testing.T) {
	svc, _, _ := newEventService(true)

	_, err := svc.UpdateEventPartial(context.Background(), 9, map[string]any{"capacity": float64(10)})

	require.ErrorIs(t, err, service.ErrEventNotFound)
	assert.Equal(t, "Event not found with id: 9", err.Error())
}

func TestDeleteEventNotFound(t *testing.T) {
	svc, _, _ := newEventService(true)

	err := svc.DeleteEvent(context.Background(), 123)

	require.ErrorIs(t, err, service.ErrEventNotFound)
	assert.Contains(t, err.Error(), "123")
}
