package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"nexpo/internal/domain"
)

type boothService struct {
	boothRepo    domain.BoothRepository
	expoRepo     domain.ExpoRepository
	userRepo     domain.UserRepository
	passGen      domain.PassGenerator
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewBoothService creates a BoothService with the given dependencies.
func NewBoothService(
	boothRepo domain.BoothRepository,
	expoRepo domain.ExpoRepository,
	userRepo domain.UserRepository,
	passGen domain.PassGenerator,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.BoothService {
	return &boothService{
		boothRepo:    boothRepo,
		expoRepo:     expoRepo,
		userRepo:     userRepo,
		passGen:      passGen,
		emailService: emailService,
		logger:       logger,
	}
}

// CreateBooth adds a single booth to an existing expo, outside the bulk
// creation that happens when the expo itself is created.
func (s *boothService) CreateBooth(ctx context.Context, expoID string, input domain.BoothCreateInput) (*domain.Booth, error) {
	if input.Name == "" || input.Size == "" {
		return nil, fmt.Errorf("%w: name and size are required", domain.ErrInvalidInput)
	}
	if input.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrInvalidInput)
	}
	if _, err := s.expoRepo.GetByID(ctx, expoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get expo: %w", err)
	}

	booth := &domain.Booth{
		Name:   input.Name,
		Size:   input.Size,
		Price:  input.Price,
		ExpoID: expoID,
	}
	if err := s.boothRepo.Create(ctx, booth); err != nil {
		return nil, fmt.Errorf("create booth: %w", err)
	}
	return booth, nil
}

func (s *boothService) BookBooth(ctx context.Context, boothID, exhibitorID string, req domain.BoothBookingRequest) (*domain.Booth, error) {
	booth, err := s.boothRepo.GetByID(ctx, boothID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booth: %w", err)
	}
	if booth.IsBooked {
		return nil, domain.ErrBoothBooked
	}

	booth.IsBooked = true
	booth.ExhibitorID = exhibitorID
	booth.ProductsServices = req.ProductsServices
	booth.TargetInterests = req.TargetInterests
	booth.Staff = req.Staff
	if err := s.boothRepo.Update(ctx, booth); err != nil {
		return nil, fmt.Errorf("update booth: %w", err)
	}

	// Pass and confirmation email are best effort; the booking stands
	// even when either fails.
	exhibitor, err := s.userRepo.GetByID(ctx, exhibitorID)
	if err != nil {
		s.logger.Warn("exhibitor lookup failed after booking",
			slog.String("booth_id", booth.ID),
			slog.String("error", err.Error()))
		return booth, nil
	}
	expo, err := s.expoRepo.GetByID(ctx, booth.ExpoID)
	if err != nil {
		s.logger.Warn("expo lookup failed after booking",
			slog.String("booth_id", booth.ID),
			slog.String("error", err.Error()))
		return booth, nil
	}

	pass, err := s.passGen.BoothPass(ctx, booth, exhibitor, expo)
	if err != nil {
		s.logger.Warn("booth pass generation failed",
			slog.String("booth_id", booth.ID),
			slog.String("error", err.Error()))
		pass = nil
	}

	data := &domain.BoothConfirmationEmailData{
		Email:            exhibitor.Email,
		ExhibitorName:    exhibitor.Name,
		ExpoTitle:        expo.Title,
		BoothName:        booth.Name,
		BoothSize:        booth.Size,
		Location:         expo.Location,
		StartDate:        expo.StartDate.Format("Jan 2, 2006"),
		EndDate:          expo.EndDate.Format("Jan 2, 2006"),
		ProductsServices: joinNonEmpty(booth.ProductsServices),
		Staff:            booth.Staff,
	}
	if err := s.emailService.SendBoothConfirmation(ctx, data, pass); err != nil {
		s.logger.Warn("booth confirmation email failed",
			slog.String("booth_id", booth.ID),
			slog.String("error", err.Error()))
	}

	return booth, nil
}

func (s *boothService) UnbookBooth(ctx context.Context, boothID string) (*domain.Booth, error) {
	booth, err := s.boothRepo.GetByID(ctx, boothID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get booth: %w", err)
	}
	if !booth.IsBooked {
		return nil, fmt.Errorf("%w: booth is already available", domain.ErrInvalidInput)
	}

	booth.IsBooked = false
	booth.ExhibitorID = ""
	booth.ProductsServices = nil
	booth.TargetInterests = nil
	booth.Staff = nil
	if err := s.boothRepo.Update(ctx, booth); err != nil {
		return nil, fmt.Errorf("update booth: %w", err)
	}
	return booth, nil
}

func (s *boothService) ListByExpo(ctx context.Context, expoID string) ([]*domain.Booth, error) {
	booths, err := s.boothRepo.ListByExpo(ctx, expoID)
	if err != nil {
		return nil, fmt.Errorf("list booths: %w", err)
	}
	return booths, nil
}

func (s *boothService) DeleteBooth(ctx context.Context, boothID string) error {
	booth, err := s.boothRepo.GetByID(ctx, boothID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get booth: %w", err)
	}
	if booth.IsBooked {
		return fmt.Errorf("%w: booked booths cannot be deleted", domain.ErrBoothBooked)
	}
	if err := s.boothRepo.Delete(ctx, boothID); err != nil {
		return fmt.Errorf("delete booth: %w", err)
	}
	return nil
}

func joinNonEmpty(items []string) string {
	out := ""
	for _, item := range items {
		if item == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += item
	}
	return out
}
