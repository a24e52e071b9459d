package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fitness-tracker/internal/models"
)

// DayTrainingGetter finds or creates the caller's training for a day.
type DayTrainingGetter interface {
	GetOrCreateForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*models.Training, error)
}

// DayRequest is the body for the day lookup
// swagger:model DayRequest
type DayRequest struct {
	// Calendar date or RFC 3339 timestamp
	// required: true
	// default: 2024-01-01
	Selected string `json:"selected"`
}

// NewDayTrainingHandler returns an HTTP handler returning the caller's training for a day.
// @Summary Get or create the training for a day
// @Description Returns the caller's training on the given UTC day, creating an empty one when none exists
// @Tags trainings
// @Accept json
// @Produce json
// @Param request body handlers.DayRequest true "Selected day"
// @Success 200 {object} models.Training
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/trainings/day [post]
// @Security BearerAuth
func NewDayTrainingHandler(svc DayTrainingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req DayRequest
		if !decodeBody(w, r, &req) {
			return
		}
		day, err := parseDate(req.Selected)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid date")
			return
		}

		training, err := svc.GetOrCreateForDay(r.Context(), userID, day)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, training)
	}
}
