// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/LauraInd/TestingAPIs/internal/model"
	"github.com/LauraInd/TestingAPIs/internal/repository"
	"github.com/LauraInd/TestingAPIs/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

// writeNotFound emits the error's message as a plain-text 404 body.
func writeNotFound(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusNotFound)
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}

// respondServiceError maps service-layer errors to HTTP responses:
// typed not-found conditions become plain-text 404s, duplicate keys 409.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrReservationNotFound),
		errors.Is(err, service.ErrPaymentNotFound):
		writeNotFound(w, err)
	case errors.Is(err, repository.ErrDuplicate):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// Query-parameter binding. Every filter parameter is required; a missing or
// malformed value yields a 400 from the caller.

func queryString(r *http.Request, name string) (string, error) {
	if !r.URL.Query().Has(name) {
		return "", errors.New("missing required parameter: " + name)
	}
	return r.URL.Query().Get(name), nil
}

func queryInt(r *http.Request, name string) (int, error) {
	s, err := queryString(r, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid parameter " + name + ": " + s)
	}
	return n, nil
}

func queryInt64(r *http.Request, name string) (int64, error) {
	s, err := queryString(r, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.New("invalid parameter " + name + ": " + s)
	}
	return n, nil
}

func queryFloat(r *http.Request, name string) (float64, error) {
	s, err := queryString(r, name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("invalid parameter " + name + ": " + s)
	}
	return f, nil
}

func queryDate(r *http.Request, name string) (model.Date, error) {
	s, err := queryString(r, name)
	if err != nil {
		return model.Date{}, err
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, errors.New("invalid parameter " + name + ": " + s)
	}
	return d, nil
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
