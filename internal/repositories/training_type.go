package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/fitness-tracker/internal/models"
)

const trainingTypeColumns = `id, name, category, repetitions, created_at, updated_at`

type TrainingTypeReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTrainingTypeReadRepository(db *sqlx.DB, txGetter TxGetter) *TrainingTypeReadRepository {
	return &TrainingTypeReadRepository{db: db, txGetter: txGetter}
}

// GetOwnerID returns the owner of the training that references trainingTypeID.
// It returns uuid.Nil when the training type is unknown or not attached.
func (r *TrainingTypeReadRepository) GetOwnerID(ctx context.Context, trainingTypeID uuid.UUID) (uuid.UUID, error) {
	const query = `
		SELECT t.user_id
		FROM training_type_refs r
		JOIN trainings t ON t.id = r.training_id
		WHERE r.training_type_id = $1
	`

	var ownerID uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ownerID, query, trainingTypeID)

	logQuery(ctx, query, []any{trainingTypeID}, ownerID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, err
	}
	return ownerID, nil
}

type TrainingTypeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTrainingTypeWriteRepository(db *sqlx.DB, txGetter TxGetter) *TrainingTypeWriteRepository {
	return &TrainingTypeWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a training type and returns the stored row.
func (r *TrainingTypeWriteRepository) Save(ctx context.Context, trainingType *models.TrainingType) (*models.TrainingType, error) {
	const query = `
		INSERT INTO training_types (id, name, category, repetitions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + trainingTypeColumns

	args := []any{trainingType.TrainingTypeID, trainingType.Name, trainingType.Category, trainingType.Repetitions}

	var saved models.TrainingType
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(ctx, query, args, saved.TrainingTypeID, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateRepetitions sets the repetition count. It returns nil when the training type is gone.
func (r *TrainingTypeWriteRepository) UpdateRepetitions(ctx context.Context, id uuid.UUID, repetitions int) (*models.TrainingType, error) {
	const query = `
		UPDATE training_types
		SET repetitions = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + trainingTypeColumns

	args := []any{id, repetitions}

	var updated models.TrainingType
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)

	logQuery(ctx, query, args, updated.TrainingTypeID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
