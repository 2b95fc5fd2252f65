package repositories

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/job-portal/internal/models"
)

// mockValueConverter accepts []string parameters the way the pgx driver
// does; the mock driver's default converter rejects them.
type mockValueConverter struct{}

func (mockValueConverter) ConvertValue(v any) (driver.Value, error) {
	if valuer, ok := v.(driver.Valuer); ok {
		return valuer.Value()
	}
	if ss, ok := v.([]string); ok {
		return json.Marshal(ss)
	}
	return driver.DefaultParameterConverter.ConvertValue(v)
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(mockValueConverter{}))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()
	now := time.Now()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "name", "email", "password_hash", "role", "created_at", "updated_at"}).
			AddRow(userID.String(), "John Doe", "john@example.com", "hash", "employer", now, now)
		mock.ExpectQuery("SELECT user_id, name, email, password_hash, role, created_at, updated_at").
			WithArgs("john@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(context.Background(), "john@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, models.RoleEmployer, user.Role)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("Absent", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, name, email, password_hash, role, created_at, updated_at").
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, name, email, password_hash, role, created_at, updated_at").
			WithArgs("john@example.com").
			WillReturnError(errors.New("db down"))

		user, err := repo.GetByEmail(context.Background(), "john@example.com")
		require.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetAuthByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "name", "email", "role"}).
			AddRow(userID.String(), "John Doe", "john@example.com", "employer")
		mock.ExpectQuery("SELECT user_id, name, email, role").
			WithArgs(userID).
			WillReturnRows(rows)

		user, err := repo.GetAuthByID(context.Background(), userID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, models.RoleEmployer, user.Role)
	})

	t.Run("Absent", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, name, email, role").
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		user, err := repo.GetAuthByID(context.Background(), userID)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "John Doe", "john@example.com", "hash", models.RoleEmployer).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(userID.String()))

		got, err := repo.Save(context.Background(), "John Doe", "john@example.com", "hash", models.RoleEmployer)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "John Doe", "john@example.com", "hash", models.RoleEmployer).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		got, err := repo.Save(context.Background(), "John Doe", "john@example.com", "hash", models.RoleEmployer)
		assert.ErrorIs(t, err, ErrUniqueViolation)
		assert.Equal(t, uuid.Nil, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
