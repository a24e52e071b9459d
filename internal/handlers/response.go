package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fitness-tracker/internal/logger"
	"github.com/sbilibin2017/fitness-tracker/internal/middlewares"
	"github.com/sbilibin2017/fitness-tracker/internal/services"
)

//go:generate mockgen -destination=handlers_mock.go -package=handlers github.com/sbilibin2017/fitness-tracker/internal/handlers Registerer,Loginer,TrainingLister,TrainingCreator,TrainingGetter,TrainingUpdater,TrainingDeleter,DurationUpdater,TrainingTypeCreator,RepetitionsUpdater,DayTrainingGetter

// ErrorResponse is the body of every non-2xx response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Not authorized
	Message string `json:"message"`
}

// MessageResponse is a plain acknowledgement
// swagger:model MessageResponse
type MessageResponse struct {
	// default: Training removed
	Message string `json:"message"`
}

const msgInternal = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// writeServiceError maps service errors to a status and message.
// Unknown errors are logged and reported without details.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrNotAuthorized):
		writeError(w, http.StatusUnauthorized, "Not authorized")
	case errors.Is(err, services.ErrTrainingNotFound):
		writeError(w, http.StatusNotFound, "Training not found")
	case errors.Is(err, services.ErrTrainingTypeNotFound):
		writeError(w, http.StatusNotFound, "Training type not found")
	default:
		logger.FromContext(ctx).Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

// currentUserID returns the ID of the user stored by the auth middleware.
func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	user, ok := middlewares.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return uuid.Nil, false
	}
	return user.UserID, true
}

func parseID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// parseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
