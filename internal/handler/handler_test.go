package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/LauraInd/TestingAPIs/internal/handler"
	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/service"
	"github.com/LauraInd/TestingAPIs/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router       http.Handler
	users        *servicetest.UserRepo
	categories   *servicetest.CategoryRepo
	events       *servicetest.EventRepo
	reservations *servicetest.ReservationRepo
	payments     *servicetest.PaymentRepo
}

func newFixture() *fixture {
	f := &fixture{
		users:        servicetest.NewUserRepo(),
		categories:   servicetest.NewCategoryRepo(),
		events:       servicetest.NewEventRepo(),
		reservations: servicetest.NewReservationRepo(),
		payments:     servicetest.NewPaymentRepo(),
	}
	f.router = handler.NewRouter(
		handler.NewUserHandler(service.NewUserService(f.users)),
		handler.NewEventCategoryHandler(service.NewEventCategoryService(f.categories)),
		handler.NewEventHandler(service.NewEventService(f.events, f.categories, true)),
		handler.NewReservationHandler(service.NewReservationService(f.reservations)),
		handler.NewPaymentHandler(service.NewPaymentService(f.payments)),
	)
	return f
}

func (f *fixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealthCheck(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", body["status"])
}

// Exercises the registration flow end to end: create a category, register
// an event against it, filter by capacity, patch a reservation, and hit the
// not-found and missing-parameter paths.
func TestTicketingFlow(t *testing.T) {
	f := newFixture()

	// 1. Create a category.
	rec := f.do(t, http.MethodPost, "/event-categories", map[string]any{
		"name":         "Music",
		"description":  "Live music",
		"creationDate": "2024-01-01",
		"numberEvents": 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	cat := decodeBody[model.EventCategory](t, rec)
	assert.Positive(t, cat.ID)
	assert.True(t, cat.Active, "active defaults to true")

	// 2. Register an event; the server stamps today's date.
	rec = f.do(t, http.MethodPost, "/events", map[string]any{
		"eventName":  "Concert",
		"eventDate":  "2030-12-31",
		"capacity":   300,
		"ubication":  "Madrid",
		"categoryId": cat.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	event := decodeBody[model.EventOut](t, rec)
	assert.Equal(t, time.Now().Format("2006-01-02"), event.EventDate.String())
	assert.Equal(t, cat.ID, event.CategoryID)

	// 3. Filter by capacity threshold.
	rec = f.do(t, http.MethodGet, "/events/capacity?capacity=300", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	events := decodeBody[[]model.Event](t, rec)
	require.Len(t, events, 1)
	assert.Equal(t, "Concert", events[0].EventName)

	// 4. Patch a reservation's quantity; other fields keep their values.
	res, err := f.reservations.Save(context.Background(), &model.Reservation{
		Name:            "RES-1",
		CustomerName:    "Pepe",
		ReservationDate: model.NewDate(2024, time.June, 10),
		Quantity:        2,
		Event:           &model.Event{ID: event.ID},
	})
	require.NoError(t, err)

	rec = f.do(t, http.MethodPatch, fmt.Sprintf("/reservations/%d", res.ID), map[string]any{
		"quantity": 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decodeBody[model.Reservation](t, rec)
	assert.Equal(t, 10, patched.Quantity)
	assert.Equal(t, "Pepe", patched.CustomerName)

	// 5. Deleting an unknown user yields a plain-text 404 naming the id.
	rec = f.do(t, http.MethodDelete, "/users/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "User not found with id: 999\n", rec.Body.String())

	// 6. Missing filter parameter.
	rec = f.do(t, http.MethodGet, "/events/capacity", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := decodeBody[model.ErrorResponse](t, rec)
	assert.Contains(t, errBody.Error, "capacity")
}

func TestListUsersEmptyIsJSONArray(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/users", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateUserDefaultsActive(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/users", map[string]any{
		"name":     "Laura",
		"email":    "laura@example.com",
		"password": "secretpass",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	u := decodeBody[model.User](t, rec)
	assert.True(t, u.Active)
	assert.Positive(t, u.ID)
}

func TestCreateUserShortPasswordRejected(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/users", map[string]any{
		"name":     "Laura",
		"email":    "laura@example.com",
		"password": "short",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.users.Users)
}

func TestGetUserInvalidID(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/users/abc", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetEventNotFoundPlainText(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/events/77", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Event not found with id: 77\n", rec.Body.String())
}

func TestCreateEventUnknownCategory(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPost, "/events", map[string]any{
		"eventName":  "Concert",
		"capacity":   300,
		"ubication":  "Madrid",
		"categoryId": 42,
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Category not found with id: 42\n", rec.Body.String())
	assert.Empty(t, f.events.Events)
}

func TestDeleteReservationNoContent(t *testing.T) {
	f := newFixture()
	res, err := f.reservations.Save(context.Background(), &model.Reservation{
		Name: "RES-1", CustomerName: "Pepe", Quantity: 1,
		ReservationDate: model.NewDate(2024, time.June, 10),
		Event:           &model.Event{ID: 1},
	})
	require.NoError(t, err)

	rec := f.do(t, http.MethodDelete, fmt.Sprintf("/reservations/%d", res.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, fmt.Sprintf("/reservations/%d", res.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPaymentsByAmountFilter(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for _, p := range []model.Payment{
		{Name: "PAY-1", CustomerName: "Pepe", Amount: 99.99, Status: "PAID", Reservation: &model.Reservation{ID: 1}},
		{Name: "PAY-2", CustomerName: "Ana", Amount: 100, Status: "PAID", Reservation: &model.Reservation{ID: 2}},
	} {
		p := p
		_, err := f.payments.Save(ctx, &p)
		require.NoError(t, err)
	}

	rec := f.do(t, http.MethodGet, "/payments/amount?amount=100", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	payments := decodeBody[[]model.Payment](t, rec)
	require.Len(t, payments, 1)
	assert.Equal(t, "PAY-2", payments[0].Name)
}

func TestUpdateCategoryFullReplace(t *testing.T) {
	f := newFixture()
	cat, err := f.categories.Save(context.Background(), &model.EventCategory{
		Name: "Music", Description: "Live music",
		CreationDate: model.NewDate(2024, time.January, 1),
		NumberEvents: 5, Active: true,
	})
	require.NoError(t, err)

	rec := f.do(t, http.MethodPut, fmt.Sprintf("/event-categories/%d", cat.ID), map[string]any{
		"name":         "Concerts",
		"description":  "Renamed",
		"creationDate": "2025-02-02",
		"numberEvents": 9,
		"active":       false,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[model.EventCategory](t, rec)
	assert.Equal(t, cat.ID, updated.ID)
	assert.Equal(t, "Concerts", updated.Name)
	assert.False(t, updated.Active)
	assert.Equal(t, "2025-02-02", updated.CreationDate.String())
}
