package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"nexpo/internal/domain"
)

type expoRepository struct {
	DB *sql.DB
}

func NewExpoRepository(db *sql.DB) domain.ExpoRepository {
	return &expoRepository{DB: db}
}

const expoColumns = `id, title, description, theme, location, start_date, end_date,
	is_paid, price, entrance_info, map_image, thumbnail_image, interests, is_active,
	created_at, updated_at`

func scanExpo(row interface{ Scan(dest ...any) error }) (*domain.Expo, error) {
	e := &domain.Expo{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Theme, &e.Location,
		&e.StartDate, &e.EndDate, &e.IsPaid, &e.Price, &e.EntranceInfo,
		&e.MapImage, &e.ThumbnailImage, pq.Array(&e.Interests), &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *expoRepository) Create(ctx context.Context, expo *domain.Expo) error {
	query := `
		INSERT INTO expos (title, description, theme, location, start_date, end_date,
			is_paid, price, entrance_info, map_image, thumbnail_image, interests, is_active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		expo.Title, expo.Description, expo.Theme, expo.Location,
		expo.StartDate, expo.EndDate, expo.IsPaid, expo.Price, expo.EntranceInfo,
		expo.MapImage, expo.ThumbnailImage, pq.Array(expo.Interests), expo.IsActive,
		expo.CreatedAt, expo.UpdatedAt,
	).Scan(&expo.ID)
}

func (r *expoRepository) GetByID(ctx context.Context, id string) (*domain.Expo, error) {
	query := `SELECT ` + expoColumns + ` FROM expos WHERE id = $1`
	expo, err := scanExpo(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return expo, nil
}

func (r *expoRepository) List(ctx context.Context, includeInactive bool) ([]*domain.Expo, error) {
	query := `SELECT ` + expoColumns + ` FROM expos`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY start_date ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExpos(rows)
}

func (r *expoRepository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.Expo, error) {
	query := `SELECT ` + expoColumns + ` FROM expos
		WHERE start_date >= $1 AND start_date <= $2
		ORDER BY start_date ASC`

	rows, err := r.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExpos(rows)
}

func collectExpos(rows *sql.Rows) ([]*domain.Expo, error) {
	var expos []*domain.Expo
	for rows.Next() {
		expo, err := scanExpo(rows)
		if err != nil {
			return nil, err
		}
		expos = append(expos, expo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if expos == nil {
		expos = []*domain.Expo{}
	}
	return expos, nil
}

func (r *expoRepository) Update(ctx context.Context, expo *domain.Expo) error {
	query := `
		UPDATE expos
		SET title = $2, description = $3, theme = $4, location = $5,
			start_date = $6, end_date = $7, is_paid = $8, price = $9,
			entrance_info = $10, map_image = $11, thumbnail_image = $12,
			interests = $13, is_active = $14, updated_at = $15
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		expo.ID, expo.Title, expo.Description, expo.Theme, expo.Location,
		expo.StartDate, expo.EndDate, expo.IsPaid, expo.Price, expo.EntranceInfo,
		expo.MapImage, expo.ThumbnailImage, pq.Array(expo.Interests), expo.IsActive,
		expo.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *expoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM expos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// requireRowAffected translates a zero-row Exec result into ErrNotFound.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
