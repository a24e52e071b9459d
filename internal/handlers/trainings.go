package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/fitness-tracker/internal/models"
)

// TrainingLister lists the caller's trainings.
type TrainingLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Training, error)
}

// TrainingCreator creates a training owned by the caller.
type TrainingCreator interface {
	Create(ctx context.Context, userID uuid.UUID, input models.Training) (*models.Training, error)
}

// TrainingGetter fetches one of the caller's trainings.
type TrainingGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Training, error)
}

// TrainingUpdater updates one of the caller's trainings.
type TrainingUpdater interface {
	Update(ctx context.Context, userID, id uuid.UUID, patch models.TrainingPatch) (*models.Training, error)
}

// TrainingDeleter deletes one of the caller's trainings.
type TrainingDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DurationUpdater sets the duration of one of the caller's trainings.
type DurationUpdater interface {
	UpdateDuration(ctx context.Context, userID, id uuid.UUID, duration int) (*models.Training, error)
}

// TrainingRequest is the body for creating a training
// swagger:model TrainingRequest
type TrainingRequest struct {
	// default: Morning run
	Title string `json:"title"`

	Description string `json:"description"`

	// One of cardio, strength, flexibility, other
	// default: cardio
	Type string `json:"type"`

	// Minutes
	// default: 30
	Duration int `json:"duration"`

	// Calendar date or RFC 3339 timestamp; defaults to now
	// default: 2024-01-01
	Date string `json:"date"`
}

// TrainingUpdateRequest is the body for updating a training. Absent fields are left unchanged.
// swagger:model TrainingUpdateRequest
type TrainingUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// UpdateDurationRequest is the body for update-duration
// swagger:model UpdateDurationRequest
type UpdateDurationRequest struct {
	// Training ID
	ID string `json:"_id"`

	// required: true
	// default: 45
	Duration *int `json:"duration"`
}

// NewListTrainingsHandler returns an HTTP handler listing the caller's trainings.
// @Summary List trainings
// @Description Returns every training owned by the caller, newest first
// @Tags trainings
// @Produce json
// @Success 200 {array} models.Training
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/trainings [get]
// @Security BearerAuth
func NewListTrainingsHandler(svc TrainingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		trainings, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		if trainings == nil {
			trainings = []models.Training{}
		}

		writeJSON(w, http.StatusOK, trainings)
	}
}

// NewCreateTrainingHandler returns an HTTP handler creating a training.
// @Summary Create training
// @Description Creates a training owned by the caller
// @Tags trainings
// @Accept json
// @Produce json
// @Param training body handlers.TrainingRequest true "Training"
// @Success 201 {object} models.Training
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/trainings [post]
// @Security BearerAuth
func NewCreateTrainingHandler(svc TrainingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req TrainingRequest
		if !decodeBody(w, r, &req) {
			return
		}

		input := models.Training{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Type,
			Duration:    req.Duration,
		}
		if req.Date != "" {
			date, err := parseDate(req.Date)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid date")
				return
			}
			input.Date = date
		}

		training, err := svc.Create(r.Context(), userID, input)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusCreated, training)
	}
}

// NewGetTrainingHandler returns an HTTP handler fetching one training.
// @Summary Get training
// @Tags trainings
// @Produce json
// @Param id path string true "Training ID"
// @Success 200 {object} models.Training
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Training not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/trainings/{id} [get]
// @Security BearerAuth
func NewGetTrainingHandler(svc TrainingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, ok := parseID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		training, err := svc.Get(r.Context(), userID, id)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, training)
	}
}

// NewUpdateTrainingHandler returns an HTTP handler updating one training.
// @Summary Update training
// @Description Updates the given fields; the owner never changes
// @Tags trainings
// @Accept json
// @Produce json
// @Param id path string true "Training ID"
// @Param training body handlers.TrainingUpdateRequest true "Fields to update"
// @Success 200 {object} models.Training
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Training not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/trainings/{id} [put]
// @Security BearerAuth
func NewUpdateTrainingHandler(svc TrainingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, ok := parseID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		var req TrainingUpdateRequest
		if !decodeBody(w, r, &req) {
			return
		}

		patch := models.TrainingPatch{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Type,
			Duration:    req.Duration,
		}
		if req.Date != nil {
			date, err := parseDate(*req.Date)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid date")
				return
			}
			patch.Date = &date
		}

		training, err := svc.Update(r.Context(), userID, id, patch)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, training)
	}
}

// NewDeleteTrainingHandler returns an HTTP handler deleting one training and its training types.
// @Summary Delete training
// @Tags trainings
// @Produce json
// @Param id path string true "Training ID"
// @Success 200 {object} handlers.MessageResponse "Training removed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Training not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/trainings/{id} [delete]
// @Security BearerAuth
func NewDeleteTrainingHandler(svc TrainingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}
		id, ok := parseID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Training removed"})
	}
}

// NewUpdateDurationHandler returns an HTTP handler setting a training's duration.
// @Summary Update training duration
// @Tags trainings
// @Accept json
// @Produce json
// @Param request body handlers.UpdateDurationRequest true "Training ID and duration"
// @Success 200 {object} models.Training
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Training not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/trainings/update-duration [post]
// @Security BearerAuth
func NewUpdateDurationHandler(svc DurationUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req UpdateDurationRequest
		if !decodeBody(w, r, &req) {
			return
		}
		id, ok := parseID(w, req.ID)
		if !ok {
			return
		}
		if req.Duration == nil {
			writeError(w, http.StatusBadRequest, "Please provide a duration")
			return
		}

		training, err := svc.UpdateDuration(r.Context(), userID, id, *req.Duration)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		writeJSON(w, http.StatusOK, training)
	}
}
