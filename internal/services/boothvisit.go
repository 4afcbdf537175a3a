package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nexpo/internal/domain"
)

type boothVisitService struct {
	boothRepo   domain.BoothRepository
	visitRepo   domain.BoothVisitRepository
	expoRegRepo domain.ExpoRegistrationRepository
}

// NewBoothVisitService creates a BoothVisitService.
func NewBoothVisitService(
	boothRepo domain.BoothRepository,
	visitRepo domain.BoothVisitRepository,
	expoRegRepo domain.ExpoRegistrationRepository,
) domain.BoothVisitService {
	return &boothVisitService{
		boothRepo:   boothRepo,
		visitRepo:   visitRepo,
		expoRegRepo: expoRegRepo,
	}
}

func (s *boothVisitService) RecordVisit(ctx context.Context, expoID, boothID, attendeeID string) (*domain.BoothVisit, error) {
	booth, err := s.boothRepo.GetByID(ctx, boothID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booth: %w", err)
	}
	if booth.ExpoID != expoID {
		return nil, fmt.Errorf("%w: booth does not belong to this expo", domain.ErrInvalidInput)
	}

	reg, err := s.expoRegRepo.GetByExpoAndAttendee(ctx, expoID, attendeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: not registered for this expo", domain.ErrForbidden)
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if reg.Status != domain.RegistrationStatusRegistered {
		return nil, fmt.Errorf("%w: not registered for this expo", domain.ErrForbidden)
	}

	if _, err := s.visitRepo.GetByBoothAndAttendee(ctx, boothID, attendeeID); err == nil {
		return nil, domain.ErrAlreadyVisited
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing visit: %w", err)
	}

	visit := &domain.BoothVisit{
		ID:         uuid.NewString(),
		BoothID:    boothID,
		ExpoID:     expoID,
		AttendeeID: attendeeID,
		VisitedAt:  time.Now(),
	}
	if err := s.visitRepo.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("create visit: %w", err)
	}
	return visit, nil
}
