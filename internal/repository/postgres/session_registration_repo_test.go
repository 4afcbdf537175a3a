package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"nexpo/internal/domain"
)

var sessionRegRows = []string{"id", "session_id", "attendee_id", "serial", "full_name", "phone", "city", "status", "created_at", "updated_at"}

func TestSessionRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO session_registrations`).
			WithArgs("sess-1", "att-1", "AABBCCDD", "Dana", "123", "Lahore", "registered", now, now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("reg-1"))

		repo := NewSessionRegistrationRepository(db)
		reg := &domain.SessionRegistration{
			SessionID:  "sess-1",
			AttendeeID: "att-1",
			Serial:     "AABBCCDD",
			FullName:   "Dana",
			Phone:      "123",
			City:       "Lahore",
			Status:     domain.RegistrationStatusRegistered,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		require.NoError(t, repo.Create(ctx, reg))
		require.Equal(t, "reg-1", reg.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO session_registrations`).
			WillReturnError(sql.ErrConnDone)

		repo := NewSessionRegistrationRepository(db)
		require.Error(t, repo.Create(ctx, &domain.SessionRegistration{SessionID: "sess-1"}))
	})
}

func TestSessionRegistrationRepository_CountBySessionAndStatus(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM session_registrations WHERE session_id = \$1 AND status = \$2`).
		WithArgs("sess-1", "registered").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	repo := NewSessionRegistrationRepository(db)
	count, err := repo.CountBySessionAndStatus(ctx, "sess-1", "registered")
	require.NoError(t, err)
	require.Equal(t, 7, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRegistrationRepository_GetBySessionAndAttendee(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM session_registrations WHERE session_id = \$1 AND attendee_id = \$2`).
			WithArgs("sess-1", "att-1").
			WillReturnRows(sqlmock.NewRows(sessionRegRows).
				AddRow("reg-1", "sess-1", "att-1", "AABBCCDD", "Dana", "123", "Lahore", "registered", now, now))

		repo := NewSessionRegistrationRepository(db)
		reg, err := repo.GetBySessionAndAttendee(ctx, "sess-1", "att-1")
		require.NoError(t, err)
		require.Equal(t, "reg-1", reg.ID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT .+ FROM session_registrations WHERE session_id = \$1 AND attendee_id = \$2`).
			WithArgs("sess-1", "att-1").
			WillReturnError(sql.ErrNoRows)

		repo := NewSessionRegistrationRepository(db)
		_, err = repo.GetBySessionAndAttendee(ctx, "sess-1", "att-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSessionRegistrationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM session_registrations WHERE id = \$1`).
			WithArgs("reg-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewSessionRegistrationRepository(db)
		require.NoError(t, repo.Delete(ctx, "reg-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM session_registrations WHERE id = \$1`).
			WithArgs("reg-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewSessionRegistrationRepository(db)
		require.ErrorIs(t, repo.Delete(ctx, "reg-1"), domain.ErrNotFound)
	})
}
