package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fitness-tracker/internal/logger"
	"github.com/sbilibin2017/fitness-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=training.go -destination=training_mock.go -package=services

var (
	ErrTrainingNotFound     = errors.New("training not found")
	ErrTrainingTypeNotFound = errors.New("training type not found")
	// ErrNotAuthorized means the caller is authenticated but does not own the resource.
	ErrNotAuthorized = errors.New("not authorized")
)

// TrainingReader loads trainings with their training types populated.
type TrainingReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Training, error)
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, from, to time.Time) (*models.Training, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Training, error)
}

// TrainingWriter defines training write operations.
type TrainingWriter interface {
	Save(ctx context.Context, training *models.Training) (*models.Training, error)
	Update(ctx context.Context, id uuid.UUID, patch models.TrainingPatch) (*models.Training, error)
	UpdateDuration(ctx context.Context, id uuid.UUID, duration int) (*models.Training, error)
	AppendType(ctx context.Context, trainingID, trainingTypeID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	LockDay(ctx context.Context, userID uuid.UUID, day time.Time) error
}

// TrainingTypeReader resolves the owner of a training type.
type TrainingTypeReader interface {
	GetOwnerID(ctx context.Context, trainingTypeID uuid.UUID) (uuid.UUID, error)
}

// TrainingTypeWriter defines training type write operations.
type TrainingTypeWriter interface {
	Save(ctx context.Context, trainingType *models.TrainingType) (*models.TrainingType, error)
	UpdateRepetitions(ctx context.Context, id uuid.UUID, repetitions int) (*models.TrainingType, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TrainingService implements ownership-checked training CRUD.
// Every method takes the authenticated user ID; ownership is never read from input.
type TrainingService struct {
	reader      TrainingReader
	writer      TrainingWriter
	typeReader  TrainingTypeReader
	typeWriter  TrainingTypeWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewTrainingService creates a TrainingService. kafkaWriter may be nil.
func NewTrainingService(
	reader TrainingReader,
	writer TrainingWriter,
	typeReader TrainingTypeReader,
	typeWriter TrainingTypeWriter,
	kafkaWriter KafkaWriter,
) *TrainingService {
	return &TrainingService{
		reader:      reader,
		writer:      writer,
		typeReader:  typeReader,
		typeWriter:  typeWriter,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validateCategory(category string) error {
	if !models.ValidCategory(category) {
		return invalidInput("type must be one of cardio, strength, flexibility, other")
	}
	return nil
}

func validateCount(field string, n int) error {
	if n < 0 {
		return invalidInput("%s must not be negative", field)
	}
	if n > math.MaxInt32 {
		return invalidInput("%s must not exceed %d", field, math.MaxInt32)
	}
	return nil
}

// getOwned fetches a training and applies the ownership check.
// A missing training is ErrTrainingNotFound; a foreign one is ErrNotAuthorized.
func (s *TrainingService) getOwned(ctx context.Context, userID, id uuid.UUID) (*models.Training, error) {
	training, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get training", "trainingID", id, "err", err)
		return nil, err
	}
	if training == nil {
		return nil, ErrTrainingNotFound
	}
	if training.UserID != userID {
		logger.FromContext(ctx).Warnw("training ownership mismatch", "trainingID", id, "userID", userID)
		return nil, ErrNotAuthorized
	}
	return training, nil
}

// List returns all trainings owned by userID.
func (s *TrainingService) List(ctx context.Context, userID uuid.UUID) ([]models.Training, error) {
	trainings, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list trainings", "userID", userID, "err", err)
		return nil, err
	}
	return trainings, nil
}

// Create stores a new training owned by userID. A zero Date means now.
func (s *TrainingService) Create(ctx context.Context, userID uuid.UUID, input models.Training) (*models.Training, error) {
	if input.Category == "" {
		input.Category = models.CategoryOther
	}
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}
	if err := validateCount("duration", input.Duration); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		input.Date = s.now()
	}

	training := &models.Training{
		TrainingID:  uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Duration:    input.Duration,
		Date:        input.Date.UTC(),
	}

	saved, err := s.writer.Save(ctx, training)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save training", "userID", userID, "err", err)
		return nil, err
	}

	s.publish(ctx, models.EventTrainingCreated, saved, uuid.Nil)
	return saved, nil
}

// Get returns a training owned by userID.
func (s *TrainingService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Training, error) {
	return s.getOwned(ctx, userID, id)
}

// Update applies patch to a training owned by userID. The owner never changes.
func (s *TrainingService) Update(ctx context.Context, userID, id uuid.UUID, patch models.TrainingPatch) (*models.Training, error) {
	if patch.Category != nil {
		if err := validateCategory(*patch.Category); err != nil {
			return nil, err
		}
	}
	if patch.Duration != nil {
		if err := validateCount("duration", *patch.Duration); err != nil {
			return nil, err
		}
	}
	if patch.Date != nil {
		d := patch.Date.UTC()
		patch.Date = &d
	}

	current, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.writer.Update(ctx, id, patch)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update training", "trainingID", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrTrainingNotFound
	}
	updated.Types = current.Types

	s.publish(ctx, models.EventTrainingUpdated, updated, uuid.Nil)
	return updated, nil
}

// Delete removes a training owned by userID together with its training types.
func (s *TrainingService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	training, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete training", "trainingID", id, "err", err)
		return err
	}

	s.publish(ctx, models.EventTrainingDeleted, training, uuid.Nil)
	return nil
}

// CreateType creates a training type and appends it to a training owned by userID.
// Both writes share the request transaction when one is present.
func (s *TrainingService) CreateType(ctx context.Context, userID, trainingID uuid.UUID, name, category string) (*models.TrainingType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidInput("please provide a training type name")
	}
	if category == "" {
		category = models.CategoryOther
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	training, err := s.getOwned(ctx, userID, trainingID)
	if err != nil {
		return nil, err
	}

	trainingType, err := s.typeWriter.Save(ctx, &models.TrainingType{
		TrainingTypeID: uuid.New(),
		Name:           name,
		Category:       category,
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save training type", "trainingID", trainingID, "err", err)
		return nil, err
	}

	if err := s.writer.AppendType(ctx, trainingID, trainingType.TrainingTypeID); err != nil {
		logger.FromContext(ctx).Errorw("failed to attach training type", "trainingID", trainingID, "trainingTypeID", trainingType.TrainingTypeID, "err", err)
		return nil, err
	}

	s.publish(ctx, models.EventTrainingTypeAdded, training, trainingType.TrainingTypeID)
	return trainingType, nil
}

// UpdateDuration sets the duration of a training owned by userID.
func (s *TrainingService) UpdateDuration(ctx context.Context, userID, id uuid.UUID, duration int) (*models.Training, error) {
	if err := validateCount("duration", duration); err != nil {
		return nil, err
	}

	current, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.writer.UpdateDuration(ctx, id, duration)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update duration", "trainingID", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrTrainingNotFound
	}
	updated.Types = current.Types

	s.publish(ctx, models.EventTrainingUpdated, updated, uuid.Nil)
	return updated, nil
}

// UpdateRepetitions sets the repetitions of a training type whose training is owned by userID.
func (s *TrainingService) UpdateRepetitions(ctx context.Context, userID, trainingTypeID uuid.UUID, repetitions int) (*models.TrainingType, error) {
	if err := validateCount("repetitions", repetitions); err != nil {
		return nil, err
	}

	ownerID, err := s.typeReader.GetOwnerID(ctx, trainingTypeID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to resolve training type owner", "trainingTypeID", trainingTypeID, "err", err)
		return nil, err
	}
	if ownerID == uuid.Nil {
		return nil, ErrTrainingTypeNotFound
	}
	if ownerID != userID {
		logger.FromContext(ctx).Warnw("training type ownership mismatch", "trainingTypeID", trainingTypeID, "userID", userID)
		return nil, ErrNotAuthorized
	}

	updated, err := s.typeWriter.UpdateRepetitions(ctx, trainingTypeID, repetitions)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update repetitions", "trainingTypeID", trainingTypeID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrTrainingTypeNotFound
	}
	return updated, nil
}

// GetOrCreateForDay returns the user's training on the UTC calendar day of day,
// creating an empty one when none exists. The day is locked first so concurrent
// calls in separate transactions create at most one training.
func (s *TrainingService) GetOrCreateForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*models.Training, error) {
	day = day.UTC()
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	if err := s.writer.LockDay(ctx, userID, from); err != nil {
		logger.FromContext(ctx).Errorw("failed to lock training day", "userID", userID, "day", from, "err", err)
		return nil, err
	}

	training, err := s.reader.GetByUserAndDate(ctx, userID, from, to)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get training for day", "userID", userID, "day", from, "err", err)
		return nil, err
	}
	if training != nil {
		return training, nil
	}

	return s.Create(ctx, userID, models.Training{Date: from})
}

// publish sends a training event to Kafka. Failures are logged and never fail the request.
func (s *TrainingService) publish(ctx context.Context, eventType string, training *models.Training, trainingTypeID uuid.UUID) {
	log := logger.FromContext(ctx)
	if s.kafkaWriter == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "event", eventType)
		return
	}

	event := models.TrainingEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		TrainingID: training.TrainingID.String(),
		UserID:     training.UserID.String(),
		Timestamp:  s.now().Unix(),
	}
	if trainingTypeID != uuid.Nil {
		event.TrainingTypeID = trainingTypeID.String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("failed to marshal training event", "event_id", event.EventID, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TrainingID),
		Value: data,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("failed to publish training event", "event_id", event.EventID, "err", err)
		return
	}
	log.Debugw("training event published", "event_id", event.EventID, "type", eventType)
}
