package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "pgx"), mock
}

var userRowColumns = []string{"id", "username", "email", "password_hash", "created_at", "updated_at"}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock sqlmock.Sqlmock)
		wantUser  bool
		wantErr   bool
	}{
		{
			name: "found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
					WithArgs("a@x.com").
					WillReturnRows(sqlmock.NewRows(userRowColumns).
						AddRow(userID.String(), "", "a@x.com", "hash", now, now))
			},
			wantUser: true,
		},
		{
			name: "not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
					WithArgs("a@x.com").
					WillReturnError(sql.ErrNoRows)
			},
		},
		{
			name: "db error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
					WithArgs("a@x.com").
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockSetup(mock)

			user, err := NewUserReadRepository(db).GetByEmail(context.Background(), "a@x.com")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantUser {
				require.NotNil(t, user)
				assert.Equal(t, userID, user.UserID)
				assert.Equal(t, "hash", user.PasswordHash)
			} else {
				assert.Nil(t, user)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(userID.String(), "bob", "bob@x.com", "hash", now, now))

	user, err := NewUserReadRepository(db).GetByID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "bob", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(userID, "alice", "alice@x.com", "hash").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(userID.String(), "alice", "alice@x.com", "hash", now, now))

		user, err := NewUserWriteRepository(db).Save(context.Background(), userID, "alice", "alice@x.com", "hash")
		require.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user, err := NewUserWriteRepository(db).Save(context.Background(), userID, "alice", "alice@x.com", "hash")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
		assert.Nil(t, user)
	})

	t.Run("other error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(errors.New("disk full"))

		_, err := NewUserWriteRepository(db).Save(context.Background(), userID, "alice", "alice@x.com", "hash")
		assert.EqualError(t, err, "disk full")
	})
}
