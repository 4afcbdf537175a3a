package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"nexpo/internal/domain"
)

type boothVisitRepository struct {
	DB *sql.DB
}

func NewBoothVisitRepository(db *sql.DB) domain.BoothVisitRepository {
	return &boothVisitRepository{DB: db}
}

func (r *boothVisitRepository) Create(ctx context.Context, visit *domain.BoothVisit) error {
	query := `
		INSERT INTO booth_visits (id, booth_id, expo_id, attendee_id, visited_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.DB.ExecContext(ctx, query,
		visit.ID, visit.BoothID, visit.ExpoID, visit.AttendeeID, visit.VisitedAt,
	)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", domain.ErrDuplicate, err)
	}
	return err
}

func (r *boothVisitRepository) GetByBoothAndAttendee(ctx context.Context, boothID, attendeeID string) (*domain.BoothVisit, error) {
	query := `
		SELECT id, booth_id, expo_id, attendee_id, visited_at
		FROM booth_visits
		WHERE booth_id = $1 AND attendee_id = $2
	`
	visit := &domain.BoothVisit{}
	err := r.DB.QueryRowContext(ctx, query, boothID, attendeeID).
		Scan(&visit.ID, &visit.BoothID, &visit.ExpoID, &visit.AttendeeID, &visit.VisitedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return visit, nil
}

func (r *boothVisitRepository) ListByBooth(ctx context.Context, boothID string) ([]*domain.BoothVisit, error) {
	query := `
		SELECT id, booth_id, expo_id, attendee_id, visited_at
		FROM booth_visits
		WHERE booth_id = $1
		ORDER BY visited_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, boothID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []*domain.BoothVisit
	for rows.Next() {
		visit := &domain.BoothVisit{}
		if err := rows.Scan(&visit.ID, &visit.BoothID, &visit.ExpoID, &visit.AttendeeID, &visit.VisitedAt); err != nil {
			return nil, err
		}
		visits = append(visits, visit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if visits == nil {
		visits = []*domain.BoothVisit{}
	}
	return visits, nil
}
