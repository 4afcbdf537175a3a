package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"nexpo/internal/domain"
)

type expoService struct {
	expoRepo         domain.ExpoRepository
	boothRepo        domain.BoothRepository
	scheduleRepo     domain.ScheduleRepository
	userRepo         domain.UserRepository
	notificationRepo domain.NotificationRepository
	logger           *slog.Logger
}

// NewExpoService creates an ExpoService with the given dependencies.
func NewExpoService(
	expoRepo domain.ExpoRepository,
	boothRepo domain.BoothRepository,
	scheduleRepo domain.ScheduleRepository,
	userRepo domain.UserRepository,
	notificationRepo domain.NotificationRepository,
	logger *slog.Logger,
) domain.ExpoService {
	return &expoService{
		expoRepo:         expoRepo,
		boothRepo:        boothRepo,
		scheduleRepo:     scheduleRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Create validates the input, stores the expo, bulk-creates the booth
// inventory from the booth groups, and seeds the timetable. A broadcast
// notification to attendees and exhibitors is best effort.
func (s *expoService) Create(ctx context.Context, input domain.CreateExpoInput) (*domain.Expo, error) {
	if errs := validateCreateExpo(input); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(errs, "; "))
	}

	now := time.Now()
	price := 0.0
	if input.IsPaid {
		price = input.Price
	}
	expo := &domain.Expo{
		Title:          input.Title,
		Description:    input.Description,
		Theme:          input.Theme,
		Location:       input.Location,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		IsPaid:         input.IsPaid,
		Price:          price,
		EntranceInfo:   input.EntranceInfo,
		MapImage:       input.MapImage,
		ThumbnailImage: input.ThumbnailImage,
		Interests:      input.Interests,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.expoRepo.Create(ctx, expo); err != nil {
		return nil, fmt.Errorf("create expo: %w", err)
	}

	for _, group := range input.BoothGroups {
		for i := 1; i <= group.Count; i++ {
			booth := &domain.Booth{
				Name:   group.Prefix + strconv.Itoa(i),
				Size:   group.Size,
				Price:  group.Price,
				ExpoID: expo.ID,
			}
			if err := s.boothRepo.Create(ctx, booth); err != nil {
				return nil, fmt.Errorf("create booth %s: %w", booth.Name, err)
			}
		}
	}

	for _, item := range input.Schedules {
		schedule := &domain.Schedule{
			ExpoID:      expo.ID,
			Date:        item.Date,
			EventName:   item.EventName,
			Description: item.Description,
			Speaker:     item.Speaker,
			Topic:       item.Topic,
			Location:    item.Location,
			StartTime:   item.StartTime,
			EndTime:     item.EndTime,
			EventImage:  item.EventImage,
			Interests:   item.Interests,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
			return nil, fmt.Errorf("create schedule entry %s: %w", item.EventName, err)
		}
	}

	s.announceExpo(ctx, expo)
	return expo, nil
}

// announceExpo pushes a new-expo notification to every attendee and
// exhibitor. Failures are logged and never fail the creation.
func (s *expoService) announceExpo(ctx context.Context, expo *domain.Expo) {
	for _, role := range []string{domain.RoleAttendee, domain.RoleExhibitor} {
		users, err := s.userRepo.ListByRole(ctx, role)
		if err != nil {
			s.logger.Warn("expo announcement listing failed",
				slog.String("role", role),
				slog.String("error", err.Error()))
			continue
		}
		for _, u := range users {
			n := &domain.Notification{
				ID:          uuid.NewString(),
				RecipientID: u.ID,
				Title:       "New Expo: " + expo.Title,
				Body: fmt.Sprintf("Check out the new expo starting on %s at %s",
					expo.StartDate.Format("Jan 2, 2006"), expo.Location),
				CreatedAt: time.Now(),
			}
			if err := s.notificationRepo.Create(ctx, n); err != nil {
				s.logger.Warn("expo announcement failed",
					slog.String("recipient_id", u.ID),
					slog.String("error", err.Error()))
			}
		}
	}
}

func validateCreateExpo(input domain.CreateExpoInput) []string {
	var errs []string
	if input.Title == "" {
		errs = append(errs, "title is required")
	}
	if input.Theme == "" {
		errs = append(errs, "theme is required")
	}
	if input.Location == "" {
		errs = append(errs, "location is required")
	}
	if input.Description == "" {
		errs = append(errs, "description is required")
	}
	if input.StartDate.IsZero() {
		errs = append(errs, "start date is required")
	}
	if input.EndDate.IsZero() {
		errs = append(errs, "end date is required")
	}
	if input.IsPaid && input.Price <= 0 {
		errs = append(errs, "price is required for a paid expo")
	}
	if len(input.BoothGroups) == 0 {
		errs = append(errs, "at least one booth group is required")
	}
	for i, g := range input.BoothGroups {
		if g.Prefix == "" {
			errs = append(errs, fmt.Sprintf("booth group %d: prefix required", i+1))
		}
		if g.Count <= 0 {
			errs = append(errs, fmt.Sprintf("booth group %d: count required", i+1))
		}
		if g.Size == "" {
			errs = append(errs, fmt.Sprintf("booth group %d: size required", i+1))
		}
		if g.Price <= 0 {
			errs = append(errs, fmt.Sprintf("booth group %d: price required", i+1))
		}
	}
	for i, e := range input.Schedules {
		if e.Date == "" {
			errs = append(errs, fmt.Sprintf("schedule entry %d: date required", i+1))
		}
		if e.EventName == "" {
			errs = append(errs, fmt.Sprintf("schedule entry %d: event name required", i+1))
		}
		if e.StartTime == "" {
			errs = append(errs, fmt.Sprintf("schedule entry %d: start time required", i+1))
		}
		if e.EndTime == "" {
			errs = append(errs, fmt.Sprintf("schedule entry %d: end time required", i+1))
		}
	}
	return errs
}

func (s *expoService) Get(ctx context.Context, id string, includeInactive bool) (*domain.Expo, error) {
	expo, err := s.expoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get expo: %w", err)
	}
	if !expo.IsActive && !includeInactive {
		return nil, domain.ErrNotFound
	}
	return expo, nil
}

func (s *expoService) List(ctx context.Context, includeInactive bool) ([]*domain.Expo, error) {
	expos, err := s.expoRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list expos: %w", err)
	}
	return expos, nil
}

func (s *expoService) Update(ctx context.Context, id string, input domain.UpdateExpoInput) (*domain.Expo, error) {
	expo, err := s.expoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get expo: %w", err)
	}

	expo.Title = input.Title
	expo.Description = input.Description
	expo.Theme = input.Theme
	expo.Location = input.Location
	expo.StartDate = input.StartDate
	expo.EndDate = input.EndDate
	expo.IsPaid = input.IsPaid
	if input.IsPaid {
		expo.Price = input.Price
	} else {
		expo.Price = 0
	}
	expo.EntranceInfo = input.EntranceInfo
	if input.MapImage != "" {
		expo.MapImage = input.MapImage
	}
	if input.ThumbnailImage != "" {
		expo.ThumbnailImage = input.ThumbnailImage
	}
	if input.Interests != nil {
		expo.Interests = input.Interests
	}
	expo.UpdatedAt = time.Now()

	if err := s.expoRepo.Update(ctx, expo); err != nil {
		return nil, fmt.Errorf("update expo: %w", err)
	}
	return expo, nil
}

func (s *expoService) ToggleStatus(ctx context.Context, id string) (*domain.Expo, error) {
	expo, err := s.expoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get expo: %w", err)
	}
	expo.IsActive = !expo.IsActive
	expo.UpdatedAt = time.Now()
	if err := s.expoRepo.Update(ctx, expo); err != nil {
		return nil, fmt.Errorf("update expo: %w", err)
	}
	return expo, nil
}

// Delete removes an expo outright. Deactivation via ToggleStatus is the
// softer path; delete refuses expos that still have booked booths.
func (s *expoService) Delete(ctx context.Context, id string) error {
	booked, err := s.boothRepo.ListBookedByExpo(ctx, id)
	if err != nil {
		return fmt.Errorf("list booked booths: %w", err)
	}
	if len(booked) > 0 {
		return fmt.Errorf("%w: expo has booked booths", domain.ErrBoothBooked)
	}
	if err := s.expoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete expo: %w", err)
	}
	return nil
}
