package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nexpo/internal/domain"
)

type sessionService struct {
	sessionRepo domain.SessionRepository
	expoRepo    domain.ExpoRepository
}

// NewSessionService creates a SessionService.
func NewSessionService(sessionRepo domain.SessionRepository, expoRepo domain.ExpoRepository) domain.SessionService {
	return &sessionService{sessionRepo: sessionRepo, expoRepo: expoRepo}
}

func (s *sessionService) Create(ctx context.Context, input domain.SessionInput) (*domain.Session, error) {
	if errs := validateSessionInput(input); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}
	if input.ExpoID != "" {
		if _, err := s.expoRepo.GetByID(ctx, input.ExpoID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent expo not found", domain.ErrInvalidInput)
			}
			return nil, fmt.Errorf("get expo: %w", err)
		}
	}

	now := time.Now()
	session := sessionFromInput(input)
	session.IsActive = true
	session.CreatedAt = now
	session.UpdatedAt = now
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func sessionFromInput(input domain.SessionInput) *domain.Session {
	sessionType := input.Type
	if sessionType == "" {
		sessionType = domain.SessionTypeSession
	}
	price := 0.0
	if input.IsPaid {
		price = input.Price
	}
	return &domain.Session{
		Title:       input.Title,
		Description: input.Description,
		Type:        sessionType,
		Topic:       input.Topic,
		Speakers:    input.Speakers,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		IsPaid:      input.IsPaid,
		Price:       price,
		Capacity:    input.Capacity,
		BannerImage: input.BannerImage,
		ExpoID:      input.ExpoID,
		Interests:   input.Interests,
	}
}

func validateSessionInput(input domain.SessionInput) []string {
	var errs []string
	if input.Title == "" {
		errs = append(errs, "title is required")
	}
	if input.Description == "" {
		errs = append(errs, "description is required")
	}
	if input.Date == "" {
		errs = append(errs, "date is required")
	}
	if input.StartTime == "" {
		errs = append(errs, "start time is required")
	}
	if input.EndTime == "" {
		errs = append(errs, "end time is required")
	}
	if input.Capacity < 0 {
		errs = append(errs, "capacity cannot be negative")
	}
	return errs
}

func (s *sessionService) Get(ctx context.Context, id string, includeInactive bool) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !session.IsActive && !includeInactive {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (s *sessionService) List(ctx context.Context, expoID string, includeInactive bool) ([]*domain.Session, error) {
	if expoID != "" {
		sessions, err := s.sessionRepo.ListByExpoID(ctx, expoID)
		if err != nil {
			return nil, fmt.Errorf("list sessions: %w", err)
		}
		if includeInactive {
			return sessions, nil
		}
		active := make([]*domain.Session, 0, len(sessions))
		for _, session := range sessions {
			if session.IsActive {
				active = append(active, session)
			}
		}
		return active, nil
	}
	sessions, err := s.sessionRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) Update(ctx context.Context, id string, input domain.SessionInput) (*domain.Session, error) {
	if errs := validateSessionInput(input); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}
	current, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	session := sessionFromInput(input)
	session.ID = current.ID
	session.IsActive = current.IsActive
	session.CreatedAt = current.CreatedAt
	session.UpdatedAt = time.Now()
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return session, nil
}

func (s *sessionService) ToggleStatus(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	session.IsActive = !session.IsActive
	session.UpdatedAt = time.Now()
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return session, nil
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
