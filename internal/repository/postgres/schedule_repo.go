package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"nexpo/internal/domain"
)

type scheduleRepository struct {
	DB *sql.DB
}

func NewScheduleRepository(db *sql.DB) domain.ScheduleRepository {
	return &scheduleRepository{DB: db}
}

const scheduleColumns = `id, expo_id, date, event_name, description, speaker,
	topic, location, start_time, end_time, event_image, interests, is_active,
	created_at, updated_at`

func scanSchedule(row interface{ Scan(dest ...any) error }) (*domain.Schedule, error) {
	s := &domain.Schedule{}
	err := row.Scan(
		&s.ID, &s.ExpoID, &s.Date, &s.EventName, &s.Description,
		&s.Speaker, &s.Topic, &s.Location, &s.StartTime, &s.EndTime,
		&s.EventImage, pq.Array(&s.Interests), &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	query := `
		INSERT INTO schedules (expo_id, date, event_name, description, speaker,
			topic, location, start_time, end_time, event_image, interests, is_active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		schedule.ExpoID, schedule.Date, schedule.EventName, schedule.Description,
		schedule.Speaker, schedule.Topic, schedule.Location,
		schedule.StartTime, schedule.EndTime, schedule.EventImage,
		pq.Array(schedule.Interests), schedule.IsActive,
		schedule.CreatedAt, schedule.UpdatedAt,
	).Scan(&schedule.ID)
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`
	schedule, err := scanSchedule(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return schedule, nil
}

func (r *scheduleRepository) ListByExpo(ctx context.Context, expoID string, includeInactive bool) ([]*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE expo_id = $1`
	if !includeInactive {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY date ASC, start_time ASC`

	rows, err := r.DB.QueryContext(ctx, query, expoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSchedules(rows)
}

func (r *scheduleRepository) List(ctx context.Context, includeInactive bool) ([]*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules`
	if !includeInactive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY date ASC, start_time ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSchedules(rows)
}

func collectSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	var schedules []*domain.Schedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if schedules == nil {
		schedules = []*domain.Schedule{}
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *domain.Schedule) error {
	query := `
		UPDATE schedules
		SET date = $2, event_name = $3, description = $4, speaker = $5,
			topic = $6, location = $7, start_time = $8, end_time = $9,
			event_image = $10, interests = $11, is_active = $12, updated_at = $13
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		schedule.ID, schedule.Date, schedule.EventName, schedule.Description,
		schedule.Speaker, schedule.Topic, schedule.Location,
		schedule.StartTime, schedule.EndTime, schedule.EventImage,
		pq.Array(schedule.Interests), schedule.IsActive, schedule.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
