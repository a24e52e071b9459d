package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/fitness-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayTrainingHandler(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found or created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockDayTrainingGetter(ctrl)
		svc.EXPECT().GetOrCreateForDay(gomock.Any(), userID, day).
			Return(&models.Training{TrainingID: uuid.New(), UserID: userID, Date: day, Types: []models.TrainingType{}}, nil)

		rr := httptest.NewRecorder()
		NewDayTrainingHandler(svc)(rr, newAuthedRequest(http.MethodPost, "/api/trainings/day", `{"selected":"2024-01-01"}`, userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got models.Training
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.True(t, day.Equal(got.Date))
		assert.NotNil(t, got.Types)
	})

	t.Run("missing date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockDayTrainingGetter(ctrl)

		rr := httptest.NewRecorder()
		NewDayTrainingHandler(svc)(rr, newAuthedRequest(http.MethodPost, "/api/trainings/day", `{}`, userID, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockDayTrainingGetter(ctrl)
		svc.EXPECT().GetOrCreateForDay(gomock.Any(), userID, day).Return(nil, errors.New("boom"))

		rr := httptest.NewRecorder()
		NewDayTrainingHandler(svc)(rr, newAuthedRequest(http.MethodPost, "/api/trainings/day", `{"selected":"2024-01-01"}`, userID, nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
