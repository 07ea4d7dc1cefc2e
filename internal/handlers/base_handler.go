package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/forumhub/backend/internal/services"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	logger   *zap.Logger
	validate *validator.Validate
}

func newBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{
		logger:   logger,
		validate: validator.New(),
	}
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// respondServiceError maps domain errors to HTTP statuses
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrAccountNotFound), errors.Is(err, services.ErrPostNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAccountExists), errors.Is(err, services.ErrInvalidLogin):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidRole):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON decodes a JSON request body into dst
func (h *BaseHandler) decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// decodeValid decodes a JSON request body into dst and validates it
func (h *BaseHandler) decodeValid(r *http.Request, dst any) error {
	if err := h.decodeJSON(r, dst); err != nil {
		return err
	}
	return h.validate.Struct(dst)
}
