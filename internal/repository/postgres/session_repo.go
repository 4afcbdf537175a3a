package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"nexpo/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

const sessionColumns = `id, title, description, type, topic, speakers, date,
	start_time, end_time, location, is_paid, price, capacity, banner_image,
	expo_id, interests, is_active, created_at, updated_at`

func scanSession(row interface{ Scan(dest ...any) error }) (*domain.Session, error) {
	s := &domain.Session{}
	var speakersJSON []byte
	var expoID sql.NullString
	err := row.Scan(
		&s.ID, &s.Title, &s.Description, &s.Type, &s.Topic, &speakersJSON,
		&s.Date, &s.StartTime, &s.EndTime, &s.Location,
		&s.IsPaid, &s.Price, &s.Capacity, &s.BannerImage,
		&expoID, pq.Array(&s.Interests), &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if expoID.Valid {
		s.ExpoID = expoID.String
	}
	if len(speakersJSON) > 0 {
		if err := json.Unmarshal(speakersJSON, &s.Speakers); err != nil {
			return nil, fmt.Errorf("decode speakers: %w", err)
		}
	}
	return s, nil
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	speakersJSON, err := json.Marshal(session.Speakers)
	if err != nil {
		return fmt.Errorf("encode speakers: %w", err)
	}
	query := `
		INSERT INTO sessions (title, description, type, topic, speakers, date,
			start_time, end_time, location, is_paid, price, capacity, banner_image,
			expo_id, interests, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		session.Title, session.Description, session.Type, session.Topic, speakersJSON,
		session.Date, session.StartTime, session.EndTime, session.Location,
		session.IsPaid, session.Price, session.Capacity, session.BannerImage,
		nullableString(session.ExpoID), pq.Array(session.Interests), session.IsActive,
		session.CreatedAt, session.UpdatedAt,
	).Scan(&session.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	session, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return session, nil
}

func (r *sessionRepository) List(ctx context.Context, includeInactive bool) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (r *sessionRepository) ListByExpoID(ctx context.Context, expoID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE expo_id = $1
		ORDER BY date ASC, start_time ASC`
	rows, err := r.DB.QueryContext(ctx, query, expoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (r *sessionRepository) ListByDate(ctx context.Context, date string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE date = $1
		ORDER BY start_time ASC`
	rows, err := r.DB.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

func collectSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *domain.Session) error {
	speakersJSON, err := json.Marshal(session.Speakers)
	if err != nil {
		return fmt.Errorf("encode speakers: %w", err)
	}
	query := `
		UPDATE sessions
		SET title = $2, description = $3, type = $4, topic = $5, speakers = $6,
			date = $7, start_time = $8, end_time = $9, location = $10,
			is_paid = $11, price = $12, capacity = $13, banner_image = $14,
			expo_id = $15, interests = $16, is_active = $17, updated_at = $18
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		session.ID, session.Title, session.Description, session.Type, session.Topic,
		speakersJSON, session.Date, session.StartTime, session.EndTime, session.Location,
		session.IsPaid, session.Price, session.Capacity, session.BannerImage,
		nullableString(session.ExpoID), pq.Array(session.Interests), session.IsActive,
		session.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// nullableString maps an empty string to SQL NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
