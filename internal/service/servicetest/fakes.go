// Package servicetest provides in-memory repository implementations that
// satisfy the service-layer contracts. They back the service and handler
// tests so no database is needed.
package servicetest

import (
	"context"
	"sort"
	"strings"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/repository"
)

// ─── Users ────────────────────────────────────────────────────────────────────

// UserRepo is an in-memory UserRepository.
type UserRepo struct {
	Users  map[int64]model.User
	nextID int64
}

func NewUserRepo() *UserRepo {
	return &UserRepo{Users: make(map[int64]model.User)}
}

func (f *UserRepo) all() []model.User {
	users := make([]model.User, 0, len(f.Users))
	for _, u := range f.Users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (f *UserRepo) FindAll(ctx context.Context) ([]model.User, error) {
	return f.all(), nil
}

func (f *UserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := f.Users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.all() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *UserRepo) FindByActiveTrue(ctx context.Context) ([]model.User, error) {
	var active []model.User
	for _, u := range f.all() {
		if u.Active {
			active = append(active, u)
		}
	}
	return active, nil
}

func (f *UserRepo) Save(ctx context.Context, u *model.User) (*model.User, error) {
	if u.ID == 0 {
		f.nextID++
		u.ID = f.nextID
	}
	f.Users[u.ID] = *u
	saved := f.Users[u.ID]
	return &saved, nil
}

func (f *UserRepo) DeleteByID(ctx context.Context, id int64) error {
	delete(f.Users, id)
	return nil
}

func (f *UserRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.Users[id]
	return ok, nil
}

// ─── Event categories ─────────────────────────────────────────────────────────

// CategoryRepo is an in-memory EventCategoryRepository.
type CategoryRepo struct {
	Categories map[int64]model.EventCategory
	nextID     int64
}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{Categories: make(map[int64]model.EventCategory)}
}

func (f *CategoryRepo) all() []model.EventCategory {
	categories := make([]model.EventCategory, 0, len(f.Categories))
	for _, c := range f.Categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories
}

func (f *CategoryRepo) filter(keep func(model.EventCategory) bool) []model.EventCategory {
	var matched []model.EventCategory
	for _, c := range f.all() {
		if keep(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

func (f *CategoryRepo) FindAll(ctx context.Context) ([]model.EventCategory, error) {
	return f.all(), nil
}

func (f *CategoryRepo) FindByID(ctx context.Context, id int64) (*model.EventCategory, error) {
	c, ok := f.Categories[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *CategoryRepo) FindByNameContaining(ctx context.Context, name string) ([]model.EventCategory, error) {
	return f.filter(func(c model.EventCategory) bool { return contains(c.Name, name) }), nil
}

func (f *CategoryRepo) FindByDescriptionContaining(ctx context.Context, description string) ([]model.EventCategory, error) {
	return f.filter(func(c model.EventCategory) bool { return contains(c.Description, description) }), nil
}

func (f *CategoryRepo) FindByActiveTrue(ctx context.Context) ([]model.EventCategory, error) {
	return f.filter(func(c model.EventCategory) bool { return c.Active }), nil
}

func (f *CategoryRepo) FindByActiveFalse(ctx context.Context) ([]model.EventCategory, error) {
	return f.filter(func(c model.EventCategory) bool { return !c.Active }), nil
}

func (f *CategoryRepo) FindByCreationDate(ctx context.Context, date model.Date) ([]model.EventCategory, error) {
	return f.filter(func(c model.EventCategory) bool { return c.CreationDate.Equal(date.Time) }), nil
}

func (f *CategoryRepo) FindByCreationDateAfter(ctx context.Context, date model.Date) ([]model.EventCategory, error) {
	return f.filter(func(c model.EventCategory) bool { return c.CreationDate.After(date.Time) }), nil
}

func (f *CategoryRepo) FindByCreationDateBefore(ctx context.Context, date model.Date) ([]model.EventCategory, error) {
	return f.filter(func(c model.EventCategory) bool { return c.CreationDate.Before(date.Time) }), nil
}

func (f *CategoryRepo) FindByNumberEvents(ctx context.Context, numberEvents int) ([]model.EventCategory, error) {
	return f.filter(func(c model.EventCategory) bool { return c.NumberEvents == numberEvents }), nil
}

func (f *CategoryRepo) FindByNumberEventsGreaterThanEqual(ctx context.Context, minEvents int) ([]model.EventCategory, error) {
	return f.filter(func(c model.EventCategory) bool { return c.NumberEvents >= minEvents }), nil
}

func (f *CategoryRepo) Save(ctx context.Context, c *model.EventCategory) (*model.EventCategory, error) {
	if c.ID == 0 {
		f.nextID++
		c.ID = f.nextID
	}
	f.Categories[c.ID] = *c
	saved := f.Categories[c.ID]
	return &saved, nil
}

func (f *CategoryRepo) DeleteByID(ctx context.Context, id int64) error {
	delete(f.Categories, id)
	return nil
}

func (f *CategoryRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.Categories[id]
	return ok, nil
}

// ─── Events ───────────────────────────────────────────────────────────────────

// EventRepo is an in-memory EventRepository.
type EventRepo struct {
	Events map[int64]model.Event
	nextID int64
}

func NewEventRepo() *EventRepo {
	return &EventRepo{Events: make(map[int64]model.Event)}
}

func (f *EventRepo) all() []model.Event {
	events := make([]model.Event, 0, len(f.Events))
	for _, e := range f.Events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events
}

func (f *EventRepo) filter(keep func(model.Event) bool) []model.Event {
	var matched []model.Event
	for _, e := range f.all() {
		if keep(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

func (f *EventRepo) FindAll(ctx context.Context) ([]model.Event, error) {
	return f.all(), nil
}

func (f *EventRepo) FindByID(ctx context.Context, id int64) (*model.Event, error) {
	e, ok := f.Events[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (f *EventRepo) FindByEventNameContaining(ctx context.Context, name string) ([]model.Event, error) {
	return f.filter(func(e model.Event) bool { return contains(e.EventName, name) }), nil
}

func (f *EventRepo) FindByCapacityLessThanEqual(ctx context.Context, capacity int) ([]model.Event, error) {
	return f.filter(func(e model.Event) bool { return e.Capacity <= capacity }), nil
}

func (f *EventRepo) FindByEventDate(ctx context.Context, date model.Date) ([]model.Event, error) {
	return f.filter(func(e model.Event) bool { return e.EventDate.Equal(date.Time) }), nil
}

func (f *EventRepo) FindByEventDateBetween(ctx context.Context, start, end model.Date) ([]model.Event, error) {
	return f.filter(func(e model.Event) bool {
		return !e.EventDate.Before(start.Time) && !e.EventDate.After(end.Time)
	}), nil
}

func (f *EventRepo) FindByUbicationContaining(ctx context.Context, ubication string) ([]model.Event, error) {
	return f.filter(func(e model.Event) bool { return contains(e.Ubication, ubication) }), nil
}

func (f *EventRepo) Save(ctx context.Context, e *model.Event) (*model.Event, error) {
	if e.ID == 0 {
		f.nextID++
		e.ID = f.nextID
	}
	f.Events[e.ID] = *e
	saved := f.Events[e.ID]
	return &saved, nil
}

func (f *EventRepo) DeleteByID(ctx context.Context, id int64) error {
	delete(f.Events, id)
	return nil
}

func (f *EventRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.Events[id]
	return ok, nil
}

// ─── Reservations ─────────────────────────────────────────────────────────────

// ReservationRepo is an in-memory ReservationRepository.
type ReservationRepo struct {
	Reservations map[int64]model.Reservation
	nextID       int64
}

func NewReservationRepo() *ReservationRepo {
	return &ReservationRepo{Reservations: make(map[int64]model.Reservation)}
}

func (f *ReservationRepo) all() []model.Reservation {
	reservations := make([]model.Reservation, 0, len(f.Reservations))
	for _, res := range f.Reservations {
		reservations = append(reservations, res)
	}
	sort.Slice(reservations, func(i, j int) bool { return reservations[i].ID < reservations[j].ID })
	return reservations
}

func (f *ReservationRepo) filter(keep func(model.Reservation) bool) []model.Reservation {
	var matched []model.Reservation
	for _, res := range f.all() {
		if keep(res) {
			matched = append(matched, res)
		}
	}
	return matched
}

func (f *ReservationRepo) FindAll(ctx context.Context) ([]model.Reservation, error) {
	return f.all(), nil
}

func (f *ReservationRepo) FindByID(ctx context.Context, id int64) (*model.Reservation, error) {
	res, ok := f.Reservations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &res, nil
}

func (f *ReservationRepo) FindByCustomerNameContaining(ctx context.Context, name string) ([]model.Reservation, error) {
	return f.filter(func(res model.Reservation) bool { return contains(res.CustomerName, name) }), nil
}

func (f *ReservationRepo) FindByReservationDate(ctx context.Context, date model.Date) ([]model.Reservation, error) {
	return f.filter(func(res model.Reservation) bool { return res.ReservationDate.Equal(date.Time) }), nil
}

func (f *ReservationRepo) FindByReservationDateBetween(ctx context.Context, start, end model.Date) ([]model.Reservation, error) {
	return f.filter(func(res model.Reservation) bool {
		return !res.ReservationDate.Before(start.Time) && !res.ReservationDate.After(end.Time)
	}), nil
}

func (f *ReservationRepo) FindByQuantity(ctx context.Context, quantity int) ([]model.Reservation, error) {
	return f.filter(func(res model.Reservation) bool { return res.Quantity == quantity }), nil
}

func (f *ReservationRepo) FindByEventID(ctx context.Context, eventID int64) ([]model.Reservation, error) {
	return f.filter(func(res model.Reservation) bool {
		return res.Event != nil && res.Event.ID == eventID
	}), nil
}

func (f *ReservationRepo) Save(ctx context.Context, res *model.Reservation) (*model.Reservation, error) {
	if res.ID == 0 {
		f.nextID++
		res.ID = f.nextID
	}
	f.Reservations[res.ID] = *res
	saved := f.Reservations[res.ID]
	return &saved, nil
}

func (f *ReservationRepo) DeleteByID(ctx context.Context, id int64) error {
	delete(f.Reservations, id)
	return nil
}

func (f *ReservationRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.Reservations[id]
	return ok, nil
}

// ─── Payments ─────────────────────────────────────────────────────────────────

// PaymentRepo is an in-memory PaymentRepository.
type PaymentRepo struct {
	Payments map[int64]model.Payment
	nextID   int64
}

func NewPaymentRepo() *PaymentRepo {
	return &PaymentRepo{Payments: make(map[int64]model.Payment)}
}

func (f *PaymentRepo) all() []model.Payment {
	payments := make([]model.Payment, 0, len(f.Payments))
	for _, p := range f.Payments {
		payments = append(payments, p)
	}
	sort.Slice(payments, func(i, j int) bool { return payments[i].ID < payments[j].ID })
	return payments
}

func (f *PaymentRepo) filter(keep func(model.Payment) bool) []model.Payment {
	var matched []model.Payment
	for _, p := range f.all() {
		if keep(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (f *PaymentRepo) FindAll(ctx context.Context) ([]model.Payment, error) {
	return f.all(), nil
}

func (f *PaymentRepo) FindByID(ctx context.Context, id int64) (*model.Payment, error) {
	p, ok := f.Payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *PaymentRepo) FindByPaymentDate(ctx context.Context, date model.Date) ([]model.Payment, error) {
	return f.filter(func(p model.Payment) bool { return p.PaymentDate.Equal(date.Time) }), nil
}

func (f *PaymentRepo) FindByPaymentDateBetween(ctx context.Context, start, end model.Date) ([]model.Payment, error) {
	return f.filter(func(p model.Payment) bool {
		return !p.PaymentDate.Before(start.Time) && !p.PaymentDate.After(end.Time)
	}), nil
}

func (f *PaymentRepo) FindByStatus(ctx context.Context, status string) ([]model.Payment, error) {
	return f.filter(func(p model.Payment) bool { return p.Status == status }), nil
}

func (f *PaymentRepo) FindByAmountGreaterThanEqual(ctx context.Context, amount float64) ([]model.Payment, error) {
	return f.filter(func(p model.Payment) bool { return p.Amount >= amount }), nil
}

func (f *PaymentRepo) FindByReservationID(ctx context.Context, reservationID int64) ([]model.Payment, error) {
	return f.filter(func(p model.Payment) bool {
		return p.Reservation != nil && p.Reservation.ID == reservationID
	}), nil
}

func (f *PaymentRepo) Save(ctx context.Context, p *model.Payment) (*model.Payment, error) {
	if p.ID == 0 {
		f.nextID++
		p.ID = f.nextID
	}
	f.Payments[p.ID] = *p
	saved := f.Payments[p.ID]
	return &saved, nil
}

func (f *PaymentRepo) DeleteByID(ctx context.Context, id int64) error {
	delete(f.Payments, id)
	return nil
}

func (f *PaymentRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.Payments[id]
	return ok, nil
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
