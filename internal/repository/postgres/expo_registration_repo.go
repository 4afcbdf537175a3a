package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nexpo/internal/domain"
)

type expoRegistrationRepository struct {
	DB *sql.DB
}

func NewExpoRegistrationRepository(db *sql.DB) domain.ExpoRegistrationRepository {
	return &expoRegistrationRepository{DB: db}
}

const expoRegColumns = `id, expo_id, attendee_id, serial, full_name, phone, city, status, created_at, updated_at`

func scanExpoRegistration(row interface{ Scan(dest ...any) error }) (*domain.ExpoRegistration, error) {
	reg := &domain.ExpoRegistration{}
	err := row.Scan(
		&reg.ID, &reg.ExpoID, &reg.AttendeeID, &reg.Serial,
		&reg.FullName, &reg.Phone, &reg.City, &reg.Status,
		&reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *expoRegistrationRepository) Create(ctx context.Context, reg *domain.ExpoRegistration) error {
	query := `
		INSERT INTO expo_registrations (expo_id, attendee_id, serial, full_name, phone, city, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		reg.ExpoID, reg.AttendeeID, reg.Serial,
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

func (r *expoRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.ExpoRegistration, error) {
	query := `SELECT ` + expoRegColumns + ` FROM expo_registrations WHERE id = $1`
	reg, err := scanExpoRegistration(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *expoRegistrationRepository) GetByExpoAndAttendee(ctx context.Context, expoID, attendeeID string) (*domain.ExpoRegistration, error) {
	query := `SELECT ` + expoRegColumns + ` FROM expo_registrations WHERE expo_id = $1 AND attendee_id = $2`
	reg, err := scanExpoRegistration(r.DB.QueryRowContext(ctx, query, expoID, attendeeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *expoRegistrationRepository) ListByExpo(ctx context.Context, expoID string) ([]*domain.ExpoRegistration, error) {
	query := `SELECT ` + expoRegColumns + ` FROM expo_registrations
		WHERE expo_id = $1
		ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, expoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExpoRegistrations(rows)
}

func (r *expoRegistrationRepository) ListByExpoAndStatus(ctx context.Context, expoID, status string) ([]*domain.ExpoRegistration, error) {
	query := `SELECT ` + expoRegColumns + ` FROM expo_registrations
		WHERE expo_id = $1 AND status = $2
		ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, expoID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExpoRegistrations(rows)
}

func (r *expoRegistrationRepository) ListByAttendee(ctx context.Context, attendeeID string) ([]*domain.ExpoRegistration, error) {
	query := `SELECT ` + expoRegColumns + ` FROM expo_registrations
		WHERE attendee_id = $1
		ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, attendeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExpoRegistrations(rows)
}

func collectExpoRegistrations(rows *sql.Rows) ([]*domain.ExpoRegistration, error) {
	var regs []*domain.ExpoRegistration
	for rows.Next() {
		reg, err := scanExpoRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*domain.ExpoRegistration{}
	}
	return regs, nil
}

func (r *expoRegistrationRepository) Update(ctx context.Context, reg *domain.ExpoRegistration) error {
	query := `
		UPDATE expo_registrations
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
