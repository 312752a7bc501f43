package model_test

import (
	"testing"
	"time"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestUserApplyUpdatesSingleField(t *testing.T) {
	u := model.User{
		Name:         "Laura",
		Email:        "laura@example.com",
		Password:     "secretpass",
		CreationDate: model.NewDate(2024, time.January, 1),
		Active:       true,
	}

	u.ApplyUpdates(map[string]any{"email": "laura@new.example.com"})

	assert.Equal(t, "laura@new.example.com", u.Email)
	assert.Equal(t, "Laura", u.Name)
	assert.Equal(t, "secretpass", u.Password)
	assert.Equal(t, model.NewDate(2024, time.January, 1), u.CreationDate)
	assert.True(t, u.Active)
}

func TestUserApplyUpdatesIgnoresUnknownKeys(t *testing.T) {
	u := model.User{Name: "Laura", Email: "laura@example.com", Active: true}
	before := u

	u.ApplyUpdates(map[string]any{"id": float64(99), "nickname": "lau", "role": "admin"})

	assert.Equal(t, before, u)
}

func TestReservationApplyUpdatesQuantityOnly(t *testing.T) {
	res := model.Reservation{
		Name:            "RES-1",
		CustomerName:    "Pepe",
		Email:           "pepe@example.com",
		ReservationDate: model.NewDate(2024, time.June, 10),
		Quantity:        2,
		Event:           &model.Event{ID: 5, EventName: "Concert"},
	}

	// JSON numbers decode as float64.
	res.ApplyUpdates(map[string]any{"quantity": float64(10)})

	assert.Equal(t, 10, res.Quantity)
	assert.Equal(t, "Pepe", res.CustomerName)
	assert.Equal(t, model.NewDate(2024, time.June, 10), res.ReservationDate)
	assert.Equal(t, int64(5), res.Event.ID)
}

func TestReservationApplyUpdatesIgnoresEventRelation(t *testing.T) {
	res := model.Reservation{Event: &model.Event{ID: 5}}

	res.ApplyUpdates(map[string]any{"event": map[string]any{"id": float64(9)}})

	assert.Equal(t, int64(5), res.Event.ID)
}

func TestEventApplyUpdatesDateCoercion(t *testing.T) {
	e := model.Event{EventName: "Concert", EventDate: model.NewDate(2024, time.March, 1)}

	e.ApplyUpdates(map[string]any{"eventDate": "2025-12-31"})

	assert.Equal(t, "2025-12-31", e.EventDate.String())
}

func TestEventApplyUpdatesDropsNonCoercibleValues(t *testing.T) {
	e := model.Event{EventName: "Concert", Capacity: 300}

	e.ApplyUpdates(map[string]any{
		"capacity":  "lots",
		"eventName": float64(7),
		"eventDate": "not-a-date",
	})

	assert.Equal(t, 300, e.Capacity)
	assert.Equal(t, "Concert", e.EventName)
	assert.True(t, e.EventDate.IsZero())
}

func TestPaymentApplyUpdatesAmountAndStatus(t *testing.T) {
	p := model.Payment{CustomerName: "Ana", Amount: 50, Status: "PENDING"}

	p.ApplyUpdates(map[string]any{"amount": float64(120.5), "status": "PAID"})

	assert.Equal(t, 120.5, p.Amount)
	assert.Equal(t, "PAID", p.Status)
	assert.Equal(t, "Ana", p.CustomerName)
}

func TestCategoryApplyUpdatesActiveFlag(t *testing.T) {
	c := model.EventCategory{Name: "Music", NumberEvents: 5, Active: true}

	c.ApplyUpdates(map[string]any{"active": false, "numberEvents": float64(8)})

	assert.False(t, c.Active)
	assert.Equal(t, 8, c.NumberEvents)
}
