package handler

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the full API surface.
func NewRouter(
	users *UserHandler,
	categories *EventCategoryHandler,
	events *EventHandler,
	reservations *ReservationHandler,
	payments *PaymentHandler,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(Logger)                  // structured access log
	r.Use(CORS)                    // permissive CORS

	r.Get("/health", HealthCheck)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", users.GetAll)
		r.Get("/email", users.GetByEmail)
		r.Get("/active", users.GetActive)
		r.Get("/{id}", users.GetByID)
		r.Post("/", users.Create)
		r.Put("/{id}", users.Update)
		r.Patch("/{id}", users.Patch)
		r.Delete("/{id}", users.Delete)
	})

	r.Route("/event-categories", func(r chi.Router) {
		r.Get("/", categories.GetAll)
		r.Get("/name", categories.GetByName)
		r.Get("/active", categories.GetActive)
		r.Get("/inactive", categories.GetInactive)
		r.Get("/creation-date", categories.GetByCreationDate)
		r.Get("/min-events", categories.GetWithMinEvents)
		r.Get("/{id}", categories.GetByID)
		r.Post("/", categories.Create)
		r.Put("/{id}", categories.Update)
		r.Patch("/{id}", categories.Patch)
		r.Delete("/{id}", categories.Delete)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", events.GetAll)
		r.Get("/name", events.GetByName)
		r.Get("/capacity", events.GetByCapacity)
		r.Get("/date", events.GetByDate)
		r.Get("/range", events.GetBetweenDates)
		r.Get("/ubication", events.GetByUbication)
		r.Get("/{id}", events.GetByID)
		r.Post("/", events.Create)
		r.Put("/{id}", events.Update)
		r.Patch("/{id}", events.Patch)
		r.Delete("/{id}", events.Delete)
	})

	r.Route("/reservations", func(r chi.Router) {
		r.Get("/", reservations.GetAll)
		r.Get("/customer", reservations.GetByCustomerName)
		r.Get("/date", reservations.GetByDate)
		r.Get("/range", reservations.GetBetweenDates)
		r.Get("/quantity", reservations.GetByQuantity)
		r.Get("/event", reservations.GetByEvent)
		r.Get("/{id}", reservations.GetByID)
		r.Post("/", reservations.Create)
		r.Put("/{id}", reservations.Update)
		r.Patch("/{id}", reservations.Patch)
		r.Delete("/{id}", reservations.Delete)
	})

	r.Route("/payments", func(r chi.Router) {
		r.Get("/", payments.GetAll)
		r.Get("/date", payments.GetByDate)
		r.Get("/range", payments.GetBetweenDates)
		r.Get("/status", payments.GetByStatus)
		r.Get("/amount", payments.GetByAmount)
		r.Get("/reservation", payments.GetByReservation)
		r.Get("/{id}", payments.GetByID)
		r.Post("/", payments.Create)
		r.Put("/{id}", payments.Update)
		r.Patch("/{id}", payments.Patch)
		r.Delete("/{id}", payments.Delete)
	})

	return r
}
