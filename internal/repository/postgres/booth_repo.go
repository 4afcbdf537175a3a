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

type boothRepository struct {
	DB *sql.DB
}

func NewBoothRepository(db *sql.DB) domain.BoothRepository {
	return &boothRepository{DB: db}
}

const boothColumns = `id, name, size, price, expo_id, exhibitor_id, is_booked,
	products_services, target_interests, staff`

func scanBooth(row interface{ Scan(dest ...any) error }) (*domain.Booth, error) {
	b := &domain.Booth{}
	var exhibitorID sql.NullString
	var staffJSON []byte
	err := row.Scan(
		&b.ID, &b.Name, &b.Size, &b.Price, &b.ExpoID, &exhibitorID, &b.IsBooked,
		pq.Array(&b.ProductsServices), pq.Array(&b.TargetInterests), &staffJSON,
	)
	if err != nil {
		return nil, err
	}
	if exhibitorID.Valid {
		b.ExhibitorID = exhibitorID.String
	}
	if len(staffJSON) > 0 {
		if err := json.Unmarshal(staffJSON, &b.Staff); err != nil {
			return nil, fmt.Errorf("decode staff: %w", err)
		}
	}
	return b, nil
}

func (r *boothRepository) Create(ctx context.Context, booth *domain.Booth) error {
	staffJSON, err := json.Marshal(booth.Staff)
	if err != nil {
		return fmt.Errorf("encode staff: %w", err)
	}
	query := `
		INSERT INTO booths (name, size, price, expo_id, exhibitor_id, is_booked,
			products_services, target_interests, staff)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		booth.Name, booth.Size, booth.Price, booth.ExpoID,
		nullableString(booth.ExhibitorID), booth.IsBooked,
		pq.Array(booth.ProductsServices), pq.Array(booth.TargetInterests), staffJSON,
	).Scan(&booth.ID)
}

func (r *boothRepository) GetByID(ctx context.Context, id string) (*domain.Booth, error) {
	query := `SELECT ` + boothColumns + ` FROM booths WHERE id = $1`
	booth, err := scanBooth(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return booth, nil
}

func (r *boothRepository) ListByExpo(ctx context.Context, expoID string) ([]*domain.Booth, error) {
	query := `SELECT ` + boothColumns + ` FROM booths WHERE expo_id = $1 ORDER BY name ASC`
	rows, err := r.DB.QueryContext(ctx, query, expoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooths(rows)
}

func (r *boothRepository) ListBookedByExpo(ctx context.Context, expoID string) ([]*domain.Booth, error) {
	query := `SELECT ` + boothColumns + ` FROM booths
		WHERE expo_id = $1 AND is_booked = true
		ORDER BY name ASC`
	rows, err := r.DB.QueryContext(ctx, query, expoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooths(rows)
}

func collectBooths(rows *sql.Rows) ([]*domain.Booth, error) {
	var booths []*domain.Booth
	for rows.Next() {
		booth, err := scanBooth(rows)
		if err != nil {
			return nil, err
		}
		booths = append(booths, booth)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if booths == nil {
		booths = []*domain.Booth{}
	}
	return booths, nil
}

func (r *boothRepository) Update(ctx context.Context, booth *domain.Booth) error {
	staffJSON, err := json.Marshal(booth.Staff)
	if err != nil {
		return fmt.Errorf("encode staff: %w", err)
	}
	query := `
		UPDATE booths
		SET name = $2, size = $3, price = $4, exhibitor_id = $5, is_booked = $6,
			products_services = $7, target_interests = $8, staff = $9
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		booth.ID, booth.Name, booth.Size, booth.Price,
		nullableString(booth.ExhibitorID), booth.IsBooked,
		pq.Array(booth.ProductsServices), pq.Array(booth.TargetInterests), staffJSON,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *boothRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM booths WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
