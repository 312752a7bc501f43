package handler

import (
	"net/http"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/service"
)

// PaymentHandler exposes /payments.
type PaymentHandler struct {
	svc *service.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func writePayments(w http.ResponseWriter, payments []model.Payment, err error) {
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}

// GetAll handles GET /payments
func (h *PaymentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	payments, err := h.svc.GetAllPayments(r.Context())
	writePayments(w, payments, err)
}

// GetByDate handles GET /payments/date?date=
func (h *PaymentHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	payments, err := h.svc.GetPaymentsByDate(r.Context(), date)
	writePayments(w, payments, err)
}

// GetBetweenDates handles GET /payments/range?startDate=&endDate=
func (h *PaymentHandler) GetBetweenDates(w http.ResponseWriter, r *http.Request) {
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
	payments, err := h.svc.GetPaymentsBetweenDates(r.Context(), start, end)
	writePayments(w, payments, err)
}

// GetByStatus handles GET /payments/status?status=
func (h *PaymentHandler) GetByStatus(w http.ResponseWriter, r *http.Request) {
	status, err := queryString(r, "status")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	payments, err := h.svc.GetPaymentsByStatus(r.Context(), status)
	writePayments(w, payments, err)
}

// GetByAmount handles GET /payments/amount?amount=
func (h *PaymentHandler) GetByAmount(w http.ResponseWriter, r *http.Request) {
	amount, err := queryFloat(r, "amount")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	payments, err := h.svc.GetPaymentsByAmount(r.Context(), amount)
	writePayments(w, payments, err)
}

// GetByReservation handles GET /payments/reservation?reservationId=
func (h *PaymentHandler) GetByReservation(w http.ResponseWriter, r *http.Request) {
	reservationID, err := queryInt64(r, "reservationId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	payments, err := h.svc.GetPaymentsByReservation(r.Context(), reservationID)
	writePayments(w, payments, err)
}

// GetByID handles GET /payments/{id}
func (h *PaymentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	p, err := h.svc.GetPaymentByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create handles POST /payments
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Payment
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := h.svc.SavePayment(r.Context(), &p)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// Update handles PUT /payments/{id}
func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var details model.Payment
	if err := decodeJSON(r, &details); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	updated, err := h.svc.UpdatePayment(r.Context(), id, &details)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Patch handles PATCH /payments/{id}
func (h *PaymentHandler) Patch(w http.ResponseWriter, r *http.Request) {
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
	updated, err := h.svc.UpdatePaymentPartial(r.Context(), id, updates)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /payments/{id}
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.DeletePayment(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
