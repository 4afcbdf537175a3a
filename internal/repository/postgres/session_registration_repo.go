package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nexpo/internal/domain"
)

type sessionRegistrationRepository struct {
	DB *sql.DB
}

func NewSessionRegistrationRepository(db *sql.DB) domain.SessionRegistrationRepository {
	return &sessionRegistrationRepository{DB: db}
}

const sessionRegColumns = `id, session_id, attendee_id, serial, full_name, phone, city, status, created_at, updated_at`

func scanSessionRegistration(row interface{ Scan(dest ...any) error }) (*domain.SessionRegistration, error) {
	reg := &domain.SessionRegistration{}
	err := row.Scan(
		&reg.ID, &reg.SessionID, &reg.AttendeeID, &reg.Serial,
		&reg.FullName, &reg.Phone, &reg.City, &reg.Status,
		&reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *sessionRegistrationRepository) Create(ctx context.Context, reg *domain.SessionRegistration) error {
	query := `
		INSERT INTO session_registrations (session_id, attendee_id, serial, full_name, phone, city, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		reg.SessionID, reg.AttendeeID, reg.Serial,
		reg.FullName, reg.Phone, reg.City, reg.Status,
		reg.CreatedAt, reg.UpdatedAt,
	).Scan(&reg.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
		}
		return err
	}
	return nil
}

func (r *sessionRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.SessionRegistration, error) {
	query := `SELECT ` + sessionRegColumns + ` FROM session_registrations WHERE id = $1`
	reg, err := scanSessionRegistration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *sessionRegistrationRepository) GetBySessionAndAttendee(ctx context.Context, sessionID, attendeeID string) (*domain.SessionRegistration, error) {
	query := `SELECT ` + sessionRegColumns + ` FROM session_registrations WHERE session_id = $1 AND attendee_id = $2`
	reg, err := scanSessionRegistration(r.DB.QueryRowContext(ctx, query, sessionID, attendeeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *sessionRegistrationRepository) CountBySessionAndStatus(ctx context.Context, sessionID, status string) (int, error) {
	query := `SELECT COUNT(*) FROM session_registrations WHERE session_id = $1 AND status = $2`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, sessionID, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *sessionRegistrationRepository) ListByAttendee(ctx context.Context, attendeeID string) ([]*domain.SessionRegistration, error) {
	query := `SELECT ` + sessionRegColumns + ` FROM session_registrations
		WHERE attendee_id = $1
		ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, attendeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []*domain.SessionRegistration
	for rows.Next() {
		reg, err := scanSessionRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*domain.SessionRegistration{}
	}
	return regs, nil
}

func (r *sessionRegistrationRepository) Update(ctx context.Context, reg *domain.SessionRegistration) error {
	query := `
		UPDATE session_registrations
		SET full_name = $2, phone = $3, city = $4, status = $5, updated_at = $6
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		reg.ID, reg.FullName, reg.Phone, reg.City, reg.Status, reg.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *sessionRegistrationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM session_registrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
