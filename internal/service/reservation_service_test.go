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

func newReservationService() (*service.ReservationService, *servicetest.ReservationRepo) {
	repo := servicetest.NewReservationRepo()
	return service.NewReservationService(repo), repo
}

func seedReservation(t *testing.T, svc *service.ReservationService) *model.Reservation {
	t.Helper()
	saved, err := svc.SaveReservation(context.Background(), &model.Reservation{
		Name:            "RES-1",
		CustomerName:    "Pepe",
		Email:           "pepe@example.com",
		ReservationDate: model.NewDate(2024, time.June, 10),
		Quantity:        2,
		Event:           &model.Event{ID: 5, EventName: "Concert"},
	})
	require.NoError(t, err)
	return saved
}

func TestUpdateReservationLeavesName(t *testing.T) {
	svc, _ := newReservationService()
	saved := seedReservation(t, svc)

	updated, err := svc.UpdateReservation(context.Background(), saved.ID, &model.Reservation{
		Name:            "RES-OTHER",
		CustomerName:    "Ana",
		Email:           "ana@example.com",
		ReservationDate: model.NewDate(2024, time.July, 1),
		Quantity:        4,
	})
	require.NoError(t, err)

	assert.Equal(t, "RES-1", updated.Name)
	assert.Equal(t, "Ana", updated.CustomerName)
	assert.Equal(t, "ana@example.com", updated.Email)
	assert.Equal(t, model.NewDate(2024, time.July, 1), updated.ReservationDate)
	assert.Equal(t, 4, updated.Quantity)
	// nil event in the replacement keeps the current one
	require.NotNil(t, updated.Event)
	assert.Equal(t, int64(5), updated.Event.ID)
}

func TestUpdateReservationPartialQuantity(t *testing.T) {
	svc, _ := newReservationService()
	saved := seedReservation(t, svc)

	updated, err := svc.UpdateReservationPartial(context.Background(), saved.ID, map[string]any{
		"quantity": float64(10),
	})
	require.NoError(t, err)

	assert.Equal(t, 10, updated.Quantity)
	assert.Equal(t, "Pepe", updated.CustomerName)
	assert.Equal(t, model.NewDate(2024, time.June, 10), updated.ReservationDate)
}

func TestGetReservationsByEvent(t *testing.T) {
	svc, repo := newReservationService()
	seedReservation(t, svc)
	ctx := context.Background()
	_, err := repo.Save(ctx, &model.Reservation{
		Name: "RES-2", CustomerName: "Ana", Quantity: 1,
		ReservationDate: model.NewDate(2024, time.June, 11),
		Event:           &model.Event{ID: 9},
	})
	require.NoError(t, err)

	matched, err := svc.GetReservationsByEvent(ctx, 5)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "RES-1", matched[0].Name)
}

func TestGetReservationsBetweenDatesInclusive(t *testing.T) {
	svc, repo := newReservationService()
	ctx := context.Background()
	for _, res := range []model.Reservation{
		{Name: "A", CustomerName: "Pepe", Quantity: 1, ReservationDate: model.NewDate(2024, time.June, 1)},
		{Name: "B", CustomerName: "Ana", Quantity: 1, ReservationDate: model.NewDate(2024, time.June, 15)},
		{Name: "C", CustomerName: "Luz", Quantity: 1, ReservationDate: model.NewDate(2024, time.June, 16)},
	} {
		res := res
		_, err := repo.Save(ctx, &res)
		require.NoError(t, err)
	}

	matched, err := svc.GetReservationsBetweenDates(ctx,
		model.NewDate(2024, time.June, 1), model.NewDate(2024, time.June, 15))
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "A", matched[0].Name)
	assert.Equal(t, "B", matched[1].Name)
}

func TestReservationNotFoundMessages(t *testing.T) {
	svc, _ := newReservationService()
	ctx := context.Background()

	_, err := svc.GetReservationByID(ctx, 3)
	require.ErrorIs(t, err, service.ErrReservationNotFound)
	assert.Equal(t, "Reservation not found with id: 3", err.Error())

	_, err = svc.UpdateReservationPartial(ctx, 3, map[string]any{"quantity": float64(1)})
	require.ErrorIs(t, err, service.ErrReservationNotFound)

	err = svc.DeleteReservation(ctx, 3)
	require.ErrorIs(t, err, service.ErrReservationNotFound)
}
