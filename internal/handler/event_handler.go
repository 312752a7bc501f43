package handler

import (
	"net/http"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/service"
)

// EventHandler exposes /events.
type EventHandler struct {
	svc *service.EventService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func writeEvents(w http.ResponseWriter, events []model.Event, err error) {
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// GetAll handles GET /events
func (h *EventHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.GetAllEvents(r.Context())
	writeEvents(w, events, err)
}

// GetByName handles GET /events/name?name=
func (h *EventHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name, err := queryString(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	events, err := h.svc.GetEventsByName(r.Context(), name)
	writeEvents(w, events, err)
}

// GetByCapacity handles GET /events/capacity?capacity=
func (h *EventHandler) GetByCapacity(w http.ResponseWriter, r *http.Request) {
	capacity, err := queryInt(r, "capacity")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	events, err := h.svc.GetEventsByCapacity(r.Context(), capacity)
	writeEvents(w, events, err)
}

// GetByDate handles GET /events/date?date=
func (h *EventHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	events, err := h.svc.GetEventsByDate(r.Context(), date)
	writeEvents(w, events, err)
}

// GetBetweenDates handles GET /events/range?startDate=&endDate=
func (h *EventHandler) GetBetweenDates(w http.ResponseWriter, r *http.Request) {
	start, err := queryDate(r, "startDate")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := queryDate(r, "endDate")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	events, err := h.svc.GetEventsBetweenDates(r.Context(), start, end)
	writeEvents(w, events, err)
}

// GetByUbication handles GET /events/ubication?ubication=
func (h *EventHandler) GetByUbication(w http.ResponseWriter, r *http.Request) {
	ubication, err := queryString(r, "ubication")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	events, err := h.svc.GetEventsByUbication(r.Context(), ubication)
	writeEvents(w, events, err)
}

// GetByID handles GET /events/{id}
func (h *EventHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	e, err := h.svc.GetEventByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// Create handles POST /events
// Registration resolves the category by id; the event date is stamped
// server-side unless date stamping is disabled.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var reg model.EventRegistration
	if err := decodeJSON(r, &reg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&reg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.svc.AddEvent(r.Context(), reg)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// Update handles PUT /events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var details model.Event
	if err := decodeJSON(r, &details); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	updated, err := h.svc.UpdateEvent(r.Context(), id, &details)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Patch handles PATCH /events/{id}
func (h *EventHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var updates map[string]any
	if err := decodeJSON(r, &updates); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	updated, err := h.svc.UpdateEventPartial(r.Context(), id, updates)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.DeleteEvent(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
