package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nexpo/internal/domain"
)

type scheduleService struct {
	scheduleRepo domain.ScheduleRepository
	expoRepo     domain.ExpoRepository
}

// NewScheduleService creates a ScheduleService.
func NewScheduleService(scheduleRepo domain.ScheduleRepository, expoRepo domain.ExpoRepository) domain.ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo, expoRepo: expoRepo}
}

func (s *scheduleService) Create(ctx context.Context, expoID string, input domain.ScheduleInput) (*domain.Schedule, error) {
	if errs := validateScheduleInput(input); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}
	if _, err := s.expoRepo.GetByID(ctx, expoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get expo: %w", err)
	}

	now := time.Now()
	schedule := scheduleFromInput(expoID, input)
	schedule.IsActive = true
	schedule.CreatedAt = now
	schedule.UpdatedAt = now
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("create schedule entry: %w", err)
	}
	return schedule, nil
}

func scheduleFromInput(expoID string, input domain.ScheduleInput) *domain.Schedule {
	return &domain.Schedule{
		ExpoID:      expoID,
		Date:        input.Date,
		EventName:   input.EventName,
		Description: input.Description,
		Speaker:     input.Speaker,
		Topic:       input.Topic,
		Location:    input.Location,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		EventImage:  input.EventImage,
		Interests:   input.Interests,
	}
}

func validateScheduleInput(input domain.ScheduleInput) []string {
	var errs []string
	if input.Date == "" {
		errs = append(errs, "date is required")
	}
	if input.EventName == "" {
		errs = append(errs, "event name is required")
	}
	if input.Description == "" {
		errs = append(errs, "description is required")
	}
	if input.StartTime == "" {
		errs = append(errs, "start time is required")
	}
	if input.EndTime == "" {
		errs = append(errs, "end time is required")
	}
	return errs
}

func (s *scheduleService) ListByExpo(ctx context.Context, expoID string, includeInactive bool) ([]*domain.Schedule, error) {
	schedules, err := s.scheduleRepo.ListByExpo(ctx, expoID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}
	return schedules, nil
}

func (s *scheduleService) List(ctx context.Context, includeInactive bool) ([]*domain.Schedule, error) {
	schedules, err := s.scheduleRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list schedule entries: %w", err)
	}
	return schedules, nil
}

// BulkUpsert rewrites an expo's timetable in one call: inputs that carry an
// ID update the existing entry, the rest become new entries.
func (s *scheduleService) BulkUpsert(ctx context.Context, expoID string, inputs []domain.ScheduleInput) error {
	for i, input := range inputs {
		if errs := validateScheduleInput(input); len(errs) > 0 {
			return fmt.Errorf("%w: entry %d: %s", domain.ErrInvalidInput, i+1, strings.Join(errs, "; "))
		}
	}

	now := time.Now()
	for _, input := range inputs {
		if input.ID == "" {
			schedule := scheduleFromInput(expoID, input)
			schedule.IsActive = true
			schedule.CreatedAt = now
			schedule.UpdatedAt = now
			if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
				return fmt.Errorf("create schedule entry %s: %w", input.EventName, err)
			}
			continue
		}

		current, err := s.scheduleRepo.GetByID(ctx, input.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: schedule entry %s not found", domain.ErrInvalidInput, input.ID)
			}
			return fmt.Errorf("get schedule entry: %w", err)
		}
		schedule := scheduleFromInput(expoID, input)
		schedule.ID = current.ID
		schedule.IsActive = current.IsActive
		schedule.CreatedAt = current.CreatedAt
		schedule.UpdatedAt = now
		if input.EventImage == "" {
			schedule.EventImage = current.EventImage
		}
		if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
			return fmt.Errorf("update schedule entry %s: %w", schedule.ID, err)
		}
	}
	return nil
}

func (s *scheduleService) ToggleStatus(ctx context.Context, id string) (*domain.Schedule, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get schedule entry: %w", err)
	}
	schedule.IsActive = !schedule.IsActive
	schedule.UpdatedAt = time.Now()
	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("update schedule entry: %w", err)
	}
	return schedule, nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete schedule entry: %w", err)
	}
	return nil
}
