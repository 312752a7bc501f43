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

func newPaymentService() (*service.PaymentService, *servicetest.PaymentRepo) {
	repo := servicetest.NewPaymentRepo()
	return service.NewPaymentService(repo), repo
}

func seedPayments(t *testing.T, repo *servicetest.PaymentRepo) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []model.Payment{
		{Name: "PAY-1", CustomerName: "Pepe", PaymentDate: model.NewDate(2024, time.June, 1), Amount: 99.99, Status: "PAID", Reservation: &model.Reservation{ID: 1}},
		{Name: "PAY-2", CustomerName: "Ana", PaymentDate: model.NewDate(2024, time.June, 15), Amount: 100.0, Status: "PENDING", Reservation: &model.Reservation{ID: 2}},
		{Name: "PAY-3", CustomerName: "Luz", PaymentDate: model.NewDate(2024, time.July, 1), Amount: 150.0, Status: "PAID", Reservation: &model.Reservation{ID: 1}},
	} {
		p := p
		_, err := repo.Save(ctx, &p)
		require.NoError(t, err)
	}
}

func TestGetPaymentsByAmountBoundaryInclusive(t *testing.T) {
	svc, repo := newPaymentService()
	seedPayments(t, repo)

	matched, err := svc.GetPaymentsByAmount(context.Background(), 100.0)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "PAY-2", matched[0].Name)
	assert.Equal(t, "PAY-3", matched[1].Name)
}

func TestGetPaymentsByStatus(t *testing.T) {
	svc, repo := newPaymentService()
	seedPayments(t, repo)

	paid, err := svc.GetPaymentsByStatus(context.Background(), "PAID")
	require.NoError(t, err)
	require.Len(t, paid, 2)
	assert.Equal(t, "PAY-1", paid[0].Name)
	assert.Equal(t, "PAY-3", paid[1].Name)
}

func TestGetPaymentsBetweenDatesInclusive(t *testing.T) {
	svc, repo := newPaymentService()
	seedPayments(t, repo)

	matched, err := svc.GetPaymentsBetweenDates(context.Background(),
		model.NewDate(2024, time.June, 1), model.NewDate(2024, time.June, 30))
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "PAY-1", matched[0].Name)
	assert.Equal(t, "PAY-2", matched[1].Name)
}

func TestGetPaymentsByReservation(t *testing.T) {
	svc, repo := newPaymentService()
	seedPayments(t, repo)

	matched, err := svc.GetPaymentsByReservation(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "PAY-1", matched[0].Name)
	assert.Equal(t, "PAY-3", matched[1].Name)
}

func TestUpdatePaymentLeavesCustomerName(t *testing.T) {
	svc, repo := newPaymentService()
	seedPayments(t, repo)

	updated, err := svc.UpdatePayment(context.Background(), 1, &model.Payment{
		Name:         "PAY-1-FIXED",
		CustomerName: "Impostor",
		PaymentDate:  model.NewDate(2024, time.August, 1),
		Amount:       42.0,
		Status:       "CANCELLED",
	})
	require.NoError(t, err)

	assert.Equal(t, "PAY-1-FIXED", updated.Name)
	assert.Equal(t, "Pepe", updated.CustomerName)
	assert.Equal(t, model.NewDate(2024, time.August, 1), updated.PaymentDate)
	assert.Equal(t, 42.0, updated.Amount)
	assert.Equal(t, "CANCELLED", updated.Status)
	// nil reservation in the replacement keeps the current one
	require.NotNil(t, updated.Reservation)
	assert.Equal(t, int64(1), updated.Reservation.ID)
}

func TestUpdatePaymentPartialStatus(t *testing.T) {
	svc, repo := newPaymentService()
	seedPayments(t, repo)

	updated, err := svc.UpdatePaymentPartial(context.Background(), 2, map[string]any{
		"status": "PAID",
	})
	require.NoError(t, err)

	assert.Equal(t, "PAID", updated.Status)
	assert.Equal(t, 100.0, updated.Amount)
	assert.Equal(t, "Ana", updated.CustomerName)
}

func TestPaymentNotFoundMessages(t *testing.T) {
	svc, _ := newPaymentService()
	ctx := context.Background()

	_, err := svc.GetPaymentByID(ctx, 77)
	require.ErrorIs(t, err, service.ErrPaymentNotFound)
	assert.Equal(t, "Payment not found with id: 77", err.Error())

	err = svc.DeletePayment(ctx, 77)
	require.ErrorIs(t, err, service.ErrPaymentNotFound)
}
