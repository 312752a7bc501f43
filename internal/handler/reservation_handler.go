package handler

import (
	"net/http"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/service"
)

// ReservationHandler exposes /reservations.
type ReservationHandler struct {
	svc *service.ReservationService
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func writeReservations(w http.ResponseWriter, reservations []model.Reservation, err error) {
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	writeJSON(w, http.StatusOK, reservations)
}

// GetAll handles GET /reservations
func (h *ReservationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.svc.GetAllReservations(r.Context())
	writeReservations(w, reservations, err)
}

// GetByCustomerName handles GET /reservations/customer?name=
func (h *ReservationHandler) GetByCustomerName(w http.ResponseWriter, r *http.Request) {
	name, err := queryString(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	reservations, err := h.svc.GetReservationsByCustomerName(r.Context(), name)
	writeReservations(w, reservations, err)
}

// GetByDate handles GET /reservations/date?date=
func (h *ReservationHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	reservations, err := h.svc.GetReservationsByDate(r.Context(), date)
	writeReservations(w, reservations, err)
}

// GetBetweenDates handles GET /reservations/range?startDate=&endDate=
func (h *ReservationHandler) GetBetweenDates(w http.ResponseWriter, r *http.Request) {
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
	reservations, err := h.svc.GetReservationsBetweenDates(r.Context(), start, end)
	writeReservations(w, reservations, err)
}

// GetByQuantity handles GET /reservations/quantity?quantity=
func (h *ReservationHandler) GetByQuantity(w http.ResponseWriter, r *http.Request) {
	quantity, err := queryInt(r, "quantity")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	reservations, err := h.svc.GetReservationsByQuantity(r.Context(), quantity)
	writeReservations(w, reservations, err)
}

// GetByEvent handles GET /reservations/event?eventId=
func (h *ReservationHandler) GetByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := queryInt64(r, "eventId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	reservations, err := h.svc.GetReservationsByEvent(r.Context(), eventID)
	writeReservations(w, reservations, err)
}

// GetByID handles GET /reservations/{id}
func (h *ReservationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	res, err := h.svc.GetReservationByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Create handles POST /reservations
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var res model.Reservation
	if err := decodeJSON(r, &res); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&res); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := h.svc.SaveReservation(r.Context(), &res)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// Update handles PUT /reservations/{id}
func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var details model.Reservation
	if err := decodeJSON(r, &details); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	updated, err := h.svc.UpdateReservation(r.Context(), id, &details)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Patch handles PATCH /reservations/{id}
func (h *ReservationHandler) Patch(w http.ResponseWriter, r *http.Request) {
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
	updated, err := h.svc.UpdateReservationPartial(r.Context(), id, updates)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /reservations/{id}
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.DeleteReservation(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
