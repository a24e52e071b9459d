package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fitness-tracker/internal/models"
)

// TrainingTypeCreator creates a training type under one of the caller's trainings.
type TrainingTypeCreator interface {
	CreateType(ctx context.Context, userID, trainingID uuid.UUID, name, category string) (*models.TrainingType, error)
}

// RepetitionsUpdater sets the repetitions of one of the caller's training types.
type RepetitionsUpdater interface {
	UpdateRepetitions(ctx context.Context, userID, trainingTypeID uuid.UUID, repetitions int) (*models.TrainingType, error)
}

// CreateTypeRequest is the body for create-type
// swagger:model CreateTypeRequest
type CreateTypeRequest struct {
	// Training ID
	// required: true
	ID string `json:"_id"`

	// required: true
	// default: Squat
	Name string `json:"name"`

	// default: strength
	Type string `json:"type"`
}

// UpdateRepetitionsRequest is the body for update-repetitions
// swagger:model UpdateRepetitionsRequest
type UpdateRepetitionsRequest struct {
	// Training type ID
	ID string `json:"_id"`

	// required: true
	// default: 12
	Repetitions *int `json:"repetitions"`
}

// NewCreateTypeHandler returns an HTTP handler creating a training type and attaching it to a training.
// @Summary Create training type
// @Tags trainings
// @Accept json
// @Produce json
// @Param request body handlers.CreateTypeRequest true "Training ID, name and type"
// @Success 201 {object} models.TrainingType
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Training not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/trainings/create-type [post]
// @Security BearerAuth
func NewCreateTypeHandler(svc TrainingTypeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req CreateTypeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		trainingID, ok := parseID(w, req.ID)
		if !ok {
			return
		}

		trainingType, err := svc.CreateType(r.Context(), userID, trainingID, req.Name, req.Type)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, trainingType)
	}
}

// NewUpdateRepetitionsHandler returns an HTTP handler setting a training type's repetitions.
// @Summary Update training type repetitions
// @Tags trainings
// @Accept json
// @Produce json
// @Param request body handlers.UpdateRepetitionsRequest true "Training type ID and repetitions"
// @Success 200 {object} models.TrainingType
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Training type not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/trainings/update-repetitions [post]
// @Security BearerAuth
func NewUpdateRepetitionsHandler(svc RepetitionsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req UpdateRepetitionsRequest
		if !decodeBody(w, r, &req) {
			return
		}
		id, ok := parseID(w, req.ID)
		if !ok {
			return
		}
		if req.Repetitions == nil {
			writeError(w, http.StatusBadRequest, "Please provide repetitions")
			return
		}

		trainingType, err := svc.UpdateRepetitions(r.Context(), userID, id, *req.Repetitions)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, trainingType)
	}
}
