package handler

import (
	"net/http"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/service"
)

// EventCategoryHandler exposes /event-categories.
type EventCategoryHandler struct {
	svc *service.EventCategoryService
}

// NewEventCategoryHandler constructs an EventCategoryHandler.
func NewEventCategoryHandler(svc *service.EventCategoryService) *EventCategoryHandler {
	return &EventCategoryHandler{svc: svc}
}

func writeCategories(w http.ResponseWriter, categories []model.EventCategory, err error) {
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if categories == nil {
		categories = []model.EventCategory{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetAll handles GET /event-categories
func (h *EventCategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.GetAllCategories(r.Context())
	writeCategories(w, categories, err)
}

// GetByName handles GET /event-categories/name?name=
func (h *EventCategoryHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name, err := queryString(r, "name")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	categories, err := h.svc.GetCategoriesByName(r.Context(), name)
	writeCategories(w, categories, err)
}

// GetActive handles GET /event-categories/active
func (h *EventCategoryHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.GetActiveCategories(r.Context())
	writeCategories(w, categories, err)
}

// GetInactive handles GET /event-categories/inactive
func (h *EventCategoryHandler) GetInactive(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.GetInactiveCategories(r.Context())
	writeCategories(w, categories, err)
}

// GetByCreationDate handles GET /event-categories/creation-date?date=
func (h *EventCategoryHandler) GetByCreationDate(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	categories, err := h.svc.GetCategoriesByCreationDate(r.Context(), date)
	writeCategories(w, categories, err)
}

// GetWithMinEvents handles GET /event-categories/min-events?minEvents=
func (h *EventCategoryHandler) GetWithMinEvents(w http.ResponseWriter, r *http.Request) {
	minEvents, err := queryInt(r, "minEvents")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	categories, err := h.svc.GetCategoriesWithMinEvents(r.Context(), minEvents)
	writeCategories(w, categories, err)
}

// GetByID handles GET /event-categories/{id}
func (h *EventCategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	c, err := h.svc.GetCategoryByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Create handles POST /event-categories
func (h *EventCategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	c := model.EventCategory{Active: true}
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := h.svc.SaveCategory(r.Context(), &c)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

// Update handles PUT /event-categories/{id}
func (h *EventCategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var details model.EventCategory
	if err := decodeJSON(r, &details); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	updated, err := h.svc.UpdateCategory(r.Context(), id, &details)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Patch handles PATCH /event-categories/{id}
func (h *EventCategoryHandler) Patch(w http.ResponseWriter, r *http.Request) {
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
	updated, err := h.svc.UpdateCategoryPartial(r.Context(), id, updates)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /event-categories/{id}
func (h *EventCategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
