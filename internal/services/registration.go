package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nexpo/internal/domain"
)

type registrationService struct {
	expoRepo       domain.ExpoRepository
	sessionRepo    domain.SessionRepository
	expoRegRepo    domain.ExpoRegistrationRepository
	sessionRegRepo domain.SessionRegistrationRepository
	userRepo       domain.UserRepository
	passGen        domain.PassGenerator
	emailService   domain.EmailService
	logger         *slog.Logger
}

// NewRegistrationService creates a RegistrationService wired to the given
// repositories, pass generator, and email service.
func NewRegistrationService(
	expoRepo domain.ExpoRepository,
	sessionRepo domain.SessionRepository,
	expoRegRepo domain.ExpoRegistrationRepository,
	sessionRegRepo domain.SessionRegistrationRepository,
	userRepo domain.UserRepository,
	passGen domain.PassGenerator,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		expoRepo:       expoRepo,
		sessionRepo:    sessionRepo,
		expoRegRepo:    expoRegRepo,
		sessionRegRepo: sessionRegRepo,
		userRepo:       userRepo,
		passGen:        passGen,
		emailService:   emailService,
		logger:         logger,
	}
}

func (s *registrationService) RegisterForExpo(ctx context.Context, expoID, attendeeID string, contact domain.ContactInfo, additionalSessionIDs []string) (*domain.ExpoRegistration, error) {
	attendee, err := s.userRepo.GetByID(ctx, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("get attendee: %w", err)
	}

	reg, err := s.registerExpo(ctx, expoID, attendee, contact)
	if err != nil {
		return nil, err
	}

	// Upsell sessions are processed independently; one bad session id must
	// not affect the primary registration or the remaining items.
	for _, sessionID := range additionalSessionIDs {
		if err := s.upsellSession(ctx, sessionID, attendee, contact); err != nil {
			s.logger.Warn("session upsell failed",
				slog.String("session_id", sessionID),
				slog.String("attendee_id", attendee.ID),
				slog.String("error", err.Error()))
		}
	}

	return reg, nil
}

func (s *registrationService) RegisterForSession(ctx context.Context, sessionID, attendeeID string, contact domain.ContactInfo, additionalExpoID string) (*domain.SessionRegistration, error) {
	attendee, err := s.userRepo.GetByID(ctx, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("get attendee: %w", err)
	}

	reg, err := s.registerSession(ctx, sessionID, attendee, contact)
	if err != nil {
		return nil, err
	}

	if additionalExpoID != "" {
		if _, err := s.registerExpo(ctx, additionalExpoID, attendee, contact); err != nil {
			s.logger.Warn("expo upsell failed",
				slog.String("expo_id", additionalExpoID),
				slog.String("attendee_id", attendee.ID),
				slog.String("error", err.Error()))
		}
	}

	return reg, nil
}

// registerExpo runs the ordered prechecks, inserts the registration row, and
// sends the pass best-effort. It is shared by the primary expo flow, the
// session-side upsell, and admin registration.
func (s *registrationService) registerExpo(ctx context.Context, expoID string, attendee *domain.User, contact domain.ContactInfo) (*domain.ExpoRegistration, error) {
	if _, err := s.expoRegRepo.GetByExpoAndAttendee(ctx, expoID, attendee.ID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}

	expo, err := s.expoRepo.GetByID(ctx, expoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get expo: %w", err)
	}
	if !expo.IsActive {
		return nil, domain.ErrRegistrationClosed
	}

	serial, err := domain.NewSerial()
	if err != nil {
		return nil, err
	}

	fullName := contact.FullName
	if fullName == "" {
		fullName = attendee.Name
	}

	now := time.Now()
	reg := &domain.ExpoRegistration{
		ExpoID:     expoID,
		AttendeeID: attendee.ID,
		Serial:     serial,
		FullName:   fullName,
		Phone:      contact.Phone,
		City:       contact.City,
		Status:     domain.RegistrationStatusRegistered,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.expoRegRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create expo registration: %w", err)
	}

	s.sendExpoPass(ctx, expo, reg, attendee.Email)
	return reg, nil
}

// registerSession is the session counterpart: it additionally checks the
// parent expo's activity and the capacity limit.
func (s *registrationService) registerSession(ctx context.Context, sessionID string, attendee *domain.User, contact domain.ContactInfo) (*domain.SessionRegistration, error) {
	if _, err := s.sessionRegRepo.GetBySessionAndAttendee(ctx, sessionID, attendee.ID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !session.IsActive {
		return nil, domain.ErrRegistrationClosed
	}
	if session.ExpoID != "" {
		parent, err := s.expoRepo.GetByID(ctx, session.ExpoID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get parent expo: %w", err)
		}
		if parent != nil && !parent.IsActive {
			return nil, domain.ErrRegistrationClosed
		}
	}

	if session.Capacity > 0 {
		count, err := s.sessionRegRepo.CountBySessionAndStatus(ctx, sessionID, domain.RegistrationStatusRegistered)
		if err != nil {
			return nil, fmt.Errorf("count registrations: %w", err)
		}
		if count >= session.Capacity {
			return nil, domain.ErrCapacityFull
		}
	}

	serial, err := domain.NewSerial()
	if err != nil {
		return nil, err
	}

	fullName := contact.FullName
	if fullName == "" {
		fullName = attendee.Name
	}

	now := time.Now()
	reg := &domain.SessionRegistration{
		SessionID:  sessionID,
		AttendeeID: attendee.ID,
		Serial:     serial,
		FullName:   fullName,
		Phone:      contact.Phone,
		City:       contact.City,
		Status:     domain.RegistrationStatusRegistered,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.sessionRegRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create session registration: %w", err)
	}

	s.sendSessionPass(ctx, session, reg, attendee.Email)
	return reg, nil
}

// upsellSession registers the attendee for one additional session. Existing
// registrations and missing sessions are skipped silently, matching the
// primary flow's contract that upsells never surface to the caller.
func (s *registrationService) upsellSession(ctx context.Context, sessionID string, attendee *domain.User, contact domain.ContactInfo) error {
	_, err := s.registerSession(ctx, sessionID, attendee, contact)
	if errors.Is(err, domain.ErrAlreadyRegistered) || errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func (s *registrationService) RegisterAttendeeByAdmin(ctx context.Context, expoID, email string, contact domain.ContactInfo) (*domain.ExpoRegistration, error) {
	if email == "" || contact.FullName == "" {
		return nil, fmt.Errorf("%w: email and full name are required", domain.ErrInvalidInput)
	}

	if _, err := s.expoRepo.GetByID(ctx, expoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get expo: %w", err)
	}

	attendee, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("get user by email: %w", err)
		}
		now := time.Now()
		attendee = &domain.User{
			Name:      contact.FullName,
			Email:     email,
			Role:      domain.RoleAttendee,
			Status:    "approved",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.userRepo.Create(ctx, attendee); err != nil {
			return nil, fmt.Errorf("create attendee user: %w", err)
		}
	}

	if _, err := s.expoRegRepo.GetByExpoAndAttendee(ctx, expoID, attendee.ID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}

	// Admin registration skips the activity check so staff can add walk-ins
	// even after online registration is switched off.
	expo, err := s.expoRepo.GetByID(ctx, expoID)
	if err != nil {
		return nil, fmt.Errorf("get expo: %w", err)
	}

	serial, err := domain.NewSerial()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reg := &domain.ExpoRegistration{
		ExpoID:     expoID,
		AttendeeID: attendee.ID,
		Serial:     serial,
		FullName:   contact.FullName,
		Phone:      contact.Phone,
		City:       contact.City,
		Status:     domain.RegistrationStatusRegistered,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.expoRegRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create expo registration: %w", err)
	}

	s.sendExpoPass(ctx, expo, reg, email)
	return reg, nil
}

func (s *registrationService) CheckExpoRegistration(ctx context.Context, expoID, attendeeID string) (bool, error) {
	_, err := s.expoRegRepo.GetByExpoAndAttendee(ctx, expoID, attendeeID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("check registration: %w", err)
}

func (s *registrationService) CheckSessionRegistration(ctx context.Context, sessionID, attendeeID string) (bool, error) {
	_, err := s.sessionRegRepo.GetBySessionAndAttendee(ctx, sessionID, attendeeID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("check registration: %w", err)
}

func (s *registrationService) UpdateExpoRegistration(ctx context.Context, registrationID string, update domain.RegistrationUpdate) (*domain.ExpoRegistration, error) {
	reg, err := s.expoRegRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}

	oldStatus := reg.Status
	reg.FullName = update.FullName
	reg.Phone = update.Phone
	reg.City = update.City
	reg.Status = update.Status
	reg.UpdatedAt = time.Now()

	if err := s.expoRegRepo.Update(ctx, reg); err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}

	attendee, err := s.userRepo.GetByID(ctx, reg.AttendeeID)
	if err != nil {
		s.logger.Warn("attendee lookup failed after registration update",
			slog.String("registration_id", reg.ID),
			slog.String("error", err.Error()))
		return reg, nil
	}
	expo, err := s.expoRepo.GetByID(ctx, reg.ExpoID)
	if err != nil {
		s.logger.Warn("expo lookup failed after registration update",
			slog.String("registration_id", reg.ID),
			slog.String("error", err.Error()))
		return reg, nil
	}

	switch {
	case oldStatus == domain.RegistrationStatusRegistered && update.Status == domain.RegistrationStatusCancelled:
		if err := s.emailService.SendRegistrationCancelled(ctx, &domain.CancellationEmailData{
			Email:        attendee.Email,
			AttendeeName: reg.FullName,
			EventTitle:   expo.Title,
		}); err != nil {
			s.logger.Warn("cancellation email failed",
				slog.String("registration_id", reg.ID),
				slog.String("error", err.Error()))
		}
	case oldStatus == domain.RegistrationStatusCancelled && update.Status == domain.RegistrationStatusRegistered:
		// Reinstate keeps the original serial; the ticket number is stable
		// across cancel/reinstate cycles.
		s.sendExpoPass(ctx, expo, reg, attendee.Email)
	}

	return reg, nil
}

func (s *registrationService) DeleteSessionRegistration(ctx context.Context, registrationID string) error {
	if _, err := s.sessionRegRepo.GetByID(ctx, registrationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get registration: %w", err)
	}
	if err := s.sessionRegRepo.Delete(ctx, registrationID); err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}

func (s *registrationService) ListExpoRegistrations(ctx context.Context, expoID string) ([]*domain.ExpoRegistration, error) {
	regs, err := s.expoRegRepo.ListByExpo(ctx, expoID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func (s *registrationService) ListMyExpoRegistrations(ctx context.Context, attendeeID string) ([]*domain.ExpoRegistration, error) {
	regs, err := s.expoRegRepo.ListByAttendee(ctx, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

func (s *registrationService) ListMySessionRegistrations(ctx context.Context, attendeeID string) ([]*domain.SessionRegistration, error) {
	regs, err := s.sessionRegRepo.ListByAttendee(ctx, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

// sendExpoPass renders and emails the expo pass. Failures are logged and
// swallowed; the registration row is the source of truth.
func (s *registrationService) sendExpoPass(ctx context.Context, expo *domain.Expo, reg *domain.ExpoRegistration, email string) {
	pass, err := s.passGen.ExpoPass(ctx, expo, reg.FullName, email, reg.Serial)
	if err != nil {
		s.logger.Warn("expo pass generation failed",
			slog.String("registration_id", reg.ID),
			slog.String("error", err.Error()))
		return
	}
	data := &domain.PassEmailData{
		Email:        email,
		EventTitle:   expo.Title,
		EventDate:    formatExpoDates(expo),
		Location:     expo.Location,
		AttendeeName: reg.FullName,
		Serial:       reg.Serial,
	}
	if err := s.emailService.SendExpoPass(ctx, data, pass); err != nil {
		s.logger.Warn("expo pass email failed",
			slog.String("registration_id", reg.ID),
			slog.String("error", err.Error()))
	}
}

func (s *registrationService) sendSessionPass(ctx context.Context, session *domain.Session, reg *domain.SessionRegistration, email string) {
	pass, err := s.passGen.SessionPass(ctx, session, reg.FullName, email, reg.Serial)
	if err != nil {
		s.logger.Warn("session pass generation failed",
			slog.String("registration_id", reg.ID),
			slog.String("error", err.Error()))
		return
	}
	data := &domain.PassEmailData{
		Email:        email,
		EventTitle:   session.Title,
		EventDate:    session.Date,
		EventTime:    session.StartTime + " - " + session.EndTime,
		Location:     session.Location,
		AttendeeName: reg.FullName,
		Serial:       reg.Serial,
	}
	if err := s.emailService.SendSessionPass(ctx, data, pass); err != nil {
		s.logger.Warn("session pass email failed",
			slog.String("registration_id", reg.ID),
			slog.String("error", err.Error()))
	}
}

func formatExpoDates(expo *domain.Expo) string {
	const layout = "Jan 2, 2006"
	start := expo.StartDate.Format(layout)
	end := expo.EndDate.Format(layout)
	if start == end {
		return start
	}
	return start + " - " + end
}
