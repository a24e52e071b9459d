package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/fitness-tracker/internal/models"
)

const trainingColumns = `id, user_id, title, description, category, duration, date, created_at, updated_at`

// TrainingReadRepository loads trainings together with their training types.
// Reads join the request transaction when txGetter finds one in the context.
type TrainingReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTrainingReadRepository(db *sqlx.DB, txGetter TxGetter) *TrainingReadRepository {
	return &TrainingReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the training with id, or nil when there is none.
func (r *TrainingReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Training, error) {
	const query = `SELECT ` + trainingColumns + ` FROM trainings WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByUserAndDate returns the user's first training dated within [from, to), or nil.
func (r *TrainingReadRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, from, to time.Time) (*models.Training, error) {
	const query = `
		SELECT ` + trainingColumns + `
		FROM trainings
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY created_at
		LIMIT 1
	`
	return r.getOne(ctx, query, userID, from, to)
}

// ListByUserID returns all trainings of a user, newest date first.
func (r *TrainingReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Training, error) {
	const query = `
		SELECT ` + trainingColumns + `
		FROM trainings
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`

	trainings := []models.Training{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &trainings, query, userID)

	logQuery(ctx, query, []any{userID}, len(trainings), err)

	if err != nil {
		return nil, err
	}
	if err := r.loadTypes(ctx, trainings); err != nil {
		return nil, err
	}
	return trainings, nil
}

func (r *TrainingReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.Training, error) {
	var training models.Training
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &training, query, args...)

	logQuery(ctx, query, args, training.TrainingID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	trainings := []models.Training{training}
	if err := r.loadTypes(ctx, trainings); err != nil {
		return nil, err
	}
	return &trainings[0], nil
}

type trainingTypeRow struct {
	TrainingID uuid.UUID `db:"training_id"`
	models.TrainingType
}

// loadTypes fills Types of every training with one query, keeping insertion order.
func (r *TrainingReadRepository) loadTypes(ctx context.Context, trainings []models.Training) error {
	if len(trainings) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(trainings))
	for i := range trainings {
		trainings[i].Types = []models.TrainingType{}
		ids = append(ids, trainings[i].TrainingID)
	}

	query, args, err := sqlx.In(`
		SELECT r.training_id, tt.id, tt.name, tt.category, tt.repetitions, tt.created_at, tt.updated_at
		FROM training_type_refs r
		JOIN training_types tt ON tt.id = r.training_type_id
		WHERE r.training_id IN (?)
		ORDER BY r.position
	`, ids)
	if err != nil {
		return err
	}
	ext := executor(ctx, r.db, r.txGetter)
	query = ext.Rebind(query)

	var rows []trainingTypeRow
	err = sqlx.SelectContext(ctx, ext, &rows, query, args...)

	logQuery(ctx, query, args, len(rows), err)

	if err != nil {
		return err
	}

	byTraining := make(map[uuid.UUID]int, len(trainings))
	for i := range trainings {
		byTraining[trainings[i].TrainingID] = i
	}
	for _, row := range rows {
		if i, ok := byTraining[row.TrainingID]; ok {
			trainings[i].Types = append(trainings[i].Types, row.TrainingType)
		}
	}
	return nil
}

// TrainingWriteRepository handles training writes. Writes join the request
// transaction when txGetter finds one in the context.
type TrainingWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTrainingWriteRepository(db *sqlx.DB, txGetter TxGetter) *TrainingWriteRepository {
	return &TrainingWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a training and returns the stored row.
func (r *TrainingWriteRepository) Save(ctx context.Context, training *models.Training) (*models.Training, error) {
	const query = `
		INSERT INTO trainings (id, user_id, title, description, category, duration, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + trainingColumns

	args := []any{
		training.TrainingID, training.UserID, training.Title, training.Description,
		training.Category, training.Duration, training.Date,
	}

	var saved models.Training
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)

	logQuery(ctx, query, args, saved.TrainingID, err)

	if err != nil {
		return nil, err
	}
	saved.Types = []models.TrainingType{}
	return &saved, nil
}

// Update applies the non-nil fields of patch. It returns nil when the training is gone.
func (r *TrainingWriteRepository) Update(ctx context.Context, id uuid.UUID, patch models.TrainingPatch) (*models.Training, error) {
	const query = `
		UPDATE trainings
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    category = COALESCE($4, category),
		    duration = COALESCE($5, duration),
		    date = COALESCE($6, date),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + trainingColumns

	args := []any{id, patch.Title, patch.Description, patch.Category, patch.Duration, patch.Date}
	return r.updateOne(ctx, query, args)
}

// UpdateDuration sets the duration of a training. It returns nil when the training is gone.
func (r *TrainingWriteRepository) UpdateDuration(ctx context.Context, id uuid.UUID, duration int) (*models.Training, error) {
	const query = `
		UPDATE trainings
		SET duration = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + trainingColumns

	return r.updateOne(ctx, query, []any{id, duration})
}

func (r *TrainingWriteRepository) updateOne(ctx context.Context, query string, args []any) (*models.Training, error) {
	var training models.Training
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &training, query, args...)

	logQuery(ctx, query, args, training.TrainingID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &training, nil
}

// AppendType adds trainingTypeID to the end of the training's type list.
func (r *TrainingWriteRepository) AppendType(ctx context.Context, trainingID, trainingTypeID uuid.UUID) error {
	const query = `
		INSERT INTO training_type_refs (training_id, training_type_id)
		VALUES ($1, $2)
	`

	args := []any{trainingID, trainingTypeID}
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, args, rowsAffected, err)

	return err
}

// Delete removes a training and the training types it references.
// Both statements run on the request transaction when there is one.
func (r *TrainingWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const deleteTypes = `
		DELETE FROM training_types
		WHERE id IN (SELECT training_type_id FROM training_type_refs WHERE training_id = $1)
	`
	const deleteTraining = `DELETE FROM trainings WHERE id = $1`

	exec := executor(ctx, r.db, r.txGetter)
	for _, query := range []string{deleteTypes, deleteTraining} {
		res, err := exec.ExecContext(ctx, query, id)

		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}
		logQuery(ctx, query, []any{id}, rowsAffected, err)

		if err != nil {
			return err
		}
	}
	return nil
}

// LockDay takes a transaction-scoped advisory lock on the user's calendar day.
// Outside a transaction the lock is released as soon as the statement ends.
func (r *TrainingWriteRepository) LockDay(ctx context.Context, userID uuid.UUID, day time.Time) error {
	const query = `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

	args := []any{userID.String() + "/" + day.UTC().Format(time.DateOnly)}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(ctx, query, args, nil, err)

	return err
}
