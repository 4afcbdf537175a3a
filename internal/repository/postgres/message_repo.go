package postgres

import (
	"context"
	"database/sql"

	"nexpo/internal/domain"
)

type messageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) domain.MessageRepository {
	return &messageRepository{DB: db}
}

const messageColumns = `id, sender_id, receiver_id, type, content,
	appointment_date, status, created_at`

func scanMessage(row interface{ Scan(dest ...any) error }) (*domain.Message, error) {
	m := &domain.Message{}
	var appointment sql.NullTime
	err := row.Scan(
		&m.ID, &m.SenderID, &m.ReceiverID, &m.Type, &m.Content,
		&appointment, &m.Status, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if appointment.Valid {
		t := appointment.Time
		m.AppointmentDate = &t
	}
	return m, nil
}

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, type, content,
			appointment_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	var appointment sql.NullTime
	if m.AppointmentDate != nil {
		appointment = sql.NullTime{Time: *m.AppointmentDate, Valid: true}
	}
	_, err := r.DB.ExecContext(ctx, query,
		m.ID, m.SenderID, m.ReceiverID, m.Type, m.Content,
		appointment, m.Status, m.CreatedAt,
	)
	return err
}

func (r *messageRepository) ListByParticipant(ctx context.Context, userID string) ([]*domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *messageRepository) ListByParticipantRole(ctx context.Context, role string) ([]*domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages
		WHERE sender_id IN (SELECT id FROM users WHERE role = $1)
		   OR receiver_id IN (SELECT id FROM users WHERE role = $1)
		ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

func collectMessages(rows *sql.Rows) ([]*domain.Message, error) {
	var messages []*domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*domain.Message{}
	}
	return messages, nil
}
