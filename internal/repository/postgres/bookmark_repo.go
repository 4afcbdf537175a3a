package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nexpo/internal/domain"
)

type expoBookmarkRepository struct {
	DB *sql.DB
}

func NewExpoBookmarkRepository(db *sql.DB) domain.ExpoBookmarkRepository {
	return &expoBookmarkRepository{DB: db}
}

func (r *expoBookmarkRepository) Create(ctx context.Context, bm *domain.ExpoBookmark) error {
	query := `
		INSERT INTO expo_bookmarks (expo_id, attendee_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, bm.ExpoID, bm.AttendeeID, bm.CreatedAt).Scan(&bm.ID)
	if err != nil {
		// The (attendee_id, expo_id) pair carries a unique constraint.
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
		}
		return err
	}
	return nil
}

func (r *expoBookmarkRepository) GetByExpoAndAttendee(ctx context.Context, expoID, attendeeID string) (*domain.ExpoBookmark, error) {
	query := `SELECT id, expo_id, attendee_id, created_at FROM expo_bookmarks
		WHERE expo_id = $1 AND attendee_id = $2`
	bm := &domain.ExpoBookmark{}
	err := r.DB.QueryRowContext(ctx, query, expoID, attendeeID).
		Scan(&bm.ID, &bm.ExpoID, &bm.AttendeeID, &bm.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return bm, nil
}

func (r *expoBookmarkRepository) ListByAttendee(ctx context.Context, attendeeID string) ([]*domain.ExpoBookmark, error) {
	return r.listExpoBookmarks(ctx, `attendee_id`, attendeeID)
}

func (r *expoBookmarkRepository) ListByExpo(ctx context.Context, expoID string) ([]*domain.ExpoBookmark, error) {
	return r.listExpoBookmarks(ctx, `expo_id`, expoID)
}

func (r *expoBookmarkRepository) listExpoBookmarks(ctx context.Context, column, value string) ([]*domain.ExpoBookmark, error) {
	query := `SELECT id, expo_id, attendee_id, created_at FROM expo_bookmarks
		WHERE ` + column + ` = $1
		ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bms []*domain.ExpoBookmark
	for rows.Next() {
		bm := &domain.ExpoBookmark{}
		if err := rows.Scan(&bm.ID, &bm.ExpoID, &bm.AttendeeID, &bm.CreatedAt); err != nil {
			return nil, err
		}
		bms = append(bms, bm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if bms == nil {
		bms = []*domain.ExpoBookmark{}
	}
	return bms, nil
}

func (r *expoBookmarkRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM expo_bookmarks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

type sessionBookmarkRepository struct {
	DB *sql.DB
}

func NewSessionBookmarkRepository(db *sql.DB) domain.SessionBookmarkRepository {
	return &sessionBookmarkRepository{DB: db}
}

func (r *sessionBookmarkRepository) Create(ctx context.Context, bm *domain.SessionBookmark) error {
	query := `
		INSERT INTO session_bookmarks (session_id, attendee_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, bm.SessionID, bm.AttendeeID, bm.CreatedAt).Scan(&bm.ID)
}

func (r *sessionBookmarkRepository) GetBySessionAndAttendee(ctx context.Context, sessionID, attendeeID string) (*domain.SessionBookmark, error) {
	query := `SELECT id, session_id, attendee_id, created_at FROM session_bookmarks
		WHERE session_id = $1 AND attendee_id = $2`
	bm := &domain.SessionBookmark{}
	err := r.DB.QueryRowContext(ctx, query, sessionID, attendeeID).
		Scan(&bm.ID, &bm.SessionID, &bm.AttendeeID, &bm.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return bm, nil
}

func (r *sessionBookmarkRepository) ListByAttendee(ctx context.Context, attendeeID string) ([]*domain.SessionBookmark, error) {
	return r.listSessionBookmarks(ctx, `attendee_id`, attendeeID)
}

func (r *sessionBookmarkRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.SessionBookmark, error) {
	return r.listSessionBookmarks(ctx, `session_id`, sessionID)
}

func (r *sessionBookmarkRepository) listSessionBookmarks(ctx context.Context, column, value string) ([]*domain.SessionBookmark, error) {
	query := `SELECT id, session_id, attendee_id, created_at FROM session_bookmarks
		WHERE ` + column + ` = $1
		ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bms []*domain.SessionBookmark
	for rows.Next() {
		bm := &domain.SessionBookmark{}
		if err := rows.Scan(&bm.ID, &bm.SessionID, &bm.AttendeeID, &bm.CreatedAt); err != nil {
			return nil, err
		}
		bms = append(bms, bm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if bms == nil {
		bms = []*domain.SessionBookmark{}
	}
	return bms, nil
}

func (r *sessionBookmarkRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM session_bookmarks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
