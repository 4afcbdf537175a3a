package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"nexpo/internal/domain"
)

// ReminderService runs the daily tomorrow-sweep: it finds expos starting
// tomorrow and sessions scheduled tomorrow, then emails exhibitors of booked
// booths, registered attendees, and bookmarkers. Bookmark-derived notices
// additionally persist an in-app notification. Each recipient is processed
// independently; one failed send never blocks the rest. Re-running the sweep
// within the same day re-sends duplicates; there is no dedupe ledger.
type ReminderService struct {
	expoRepo            domain.ExpoRepository
	sessionRepo         domain.SessionRepository
	boothRepo           domain.BoothRepository
	expoRegRepo         domain.ExpoRegistrationRepository
	expoBookmarkRepo    domain.ExpoBookmarkRepository
	sessionBookmarkRepo domain.SessionBookmarkRepository
	notificationRepo    domain.NotificationRepository
	userRepo            domain.UserRepository
	emailService        domain.EmailService
	logger              *slog.Logger
}

// NewReminderService creates a ReminderService.
func NewReminderService(
	expoRepo domain.ExpoRepository,
	sessionRepo domain.SessionRepository,
	boothRepo domain.BoothRepository,
	expoRegRepo domain.ExpoRegistrationRepository,
	expoBookmarkRepo domain.ExpoBookmarkRepository,
	sessionBookmarkRepo domain.SessionBookmarkRepository,
	notificationRepo domain.NotificationRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) *ReminderService {
	return &ReminderService{
		expoRepo:            expoRepo,
		sessionRepo:         sessionRepo,
		boothRepo:           boothRepo,
		expoRegRepo:         expoRegRepo,
		expoBookmarkRepo:    expoBookmarkRepo,
		sessionBookmarkRepo: sessionBookmarkRepo,
		notificationRepo:    notificationRepo,
		userRepo:            userRepo,
		emailService:        emailService,
		logger:              logger,
	}
}

// Run executes one sweep for the calendar day after now (server-local).
func (s *ReminderService) Run(ctx context.Context, now time.Time) error {
	startOfTomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	endOfTomorrow := startOfTomorrow.Add(24*time.Hour - time.Nanosecond)

	expos, err := s.expoRepo.ListStartingBetween(ctx, startOfTomorrow, endOfTomorrow)
	if err != nil {
		return fmt.Errorf("list tomorrow's expos: %w", err)
	}
	for _, expo := range expos {
		s.remindExpo(ctx, expo)
	}

	sessions, err := s.sessionRepo.ListByDate(ctx, startOfTomorrow.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("list tomorrow's sessions: %w", err)
	}
	for _, session := range sessions {
		s.remindSessionBookmarkers(ctx, session)
	}

	return nil
}

func (s *ReminderService) remindExpo(ctx context.Context, expo *domain.Expo) {
	date := expo.StartDate.Format("Jan 2, 2006")

	// Exhibitors with a booked booth.
	booths, err := s.boothRepo.ListBookedByExpo(ctx, expo.ID)
	if err != nil {
		s.logger.Error("list booked booths failed", slog.String("expo_id", expo.ID), slog.String("error", err.Error()))
	}
	for _, booth := range booths {
		if booth.ExhibitorID == "" {
			continue
		}
		exhibitor, err := s.userRepo.GetByID(ctx, booth.ExhibitorID)
		if err != nil || exhibitor.Email == "" {
			continue
		}
		if err := s.emailService.SendExhibitorReminder(ctx, &domain.ReminderEmailData{
			Email:         exhibitor.Email,
			RecipientName: exhibitor.Name,
			EventTitle:    expo.Title,
			Location:      expo.Location,
			Date:          date,
			BoothName:     booth.Name,
			BoothSize:     booth.Size,
		}); err != nil {
			s.logger.Warn("exhibitor reminder failed",
				slog.String("email", exhibitor.Email),
				slog.String("error", err.Error()))
		}
	}

	// Attendees with an active registration.
	regs, err := s.expoRegRepo.ListByExpoAndStatus(ctx, expo.ID, domain.RegistrationStatusRegistered)
	if err != nil {
		s.logger.Error("list registrations failed", slog.String("expo_id", expo.ID), slog.String("error", err.Error()))
	}
	for _, reg := range regs {
		attendee, err := s.userRepo.GetByID(ctx, reg.AttendeeID)
		if err != nil || attendee.Email == "" {
			continue
		}
		if err := s.emailService.SendAttendeeReminder(ctx, &domain.ReminderEmailData{
			Email:         attendee.Email,
			RecipientName: attendee.Name,
			EventTitle:    expo.Title,
			Location:      expo.Location,
			Date:          date,
		}); err != nil {
			s.logger.Warn("attendee reminder failed",
				slog.String("email", attendee.Email),
				slog.String("error", err.Error()))
		}
	}

	// Bookmarkers, who may not be registered.
	bookmarks, err := s.expoBookmarkRepo.ListByExpo(ctx, expo.ID)
	if err != nil {
		s.logger.Error("list bookmarks failed", slog.String("expo_id", expo.ID), slog.String("error", err.Error()))
	}
	for _, bm := range bookmarks {
		s.remindBookmarker(ctx, bm.AttendeeID, expo.Title, expo.Location, date)
	}
}

func (s *ReminderService) remindSessionBookmarkers(ctx context.Context, session *domain.Session) {
	bookmarks, err := s.sessionBookmarkRepo.ListBySession(ctx, session.ID)
	if err != nil {
		s.logger.Error("list session bookmarks failed", slog.String("session_id", session.ID), slog.String("error", err.Error()))
		return
	}
	for _, bm := range bookmarks {
		s.remindBookmarker(ctx, bm.AttendeeID, session.Title, session.Location, session.Date)
	}
}

func (s *ReminderService) remindBookmarker(ctx context.Context, attendeeID, title, location, date string) {
	attendee, err := s.userRepo.GetByID(ctx, attendeeID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn("bookmarker lookup failed", slog.String("attendee_id", attendeeID), slog.String("error", err.Error()))
		}
		return
	}

	if attendee.Email != "" {
		if err := s.emailService.SendBookmarkReminder(ctx, &domain.ReminderEmailData{
			Email:         attendee.Email,
			RecipientName: attendee.Name,
			EventTitle:    title,
			Location:      location,
			Date:          date,
		}); err != nil {
			s.logger.Warn("bookmark reminder failed",
				slog.String("email", attendee.Email),
				slog.String("error", err.Error()))
		}
	}

	notification := &domain.Notification{
		ID:          uuid.NewString(),
		RecipientID: attendee.ID,
		Title:       "Starts tomorrow: " + title,
		Body:        fmt.Sprintf("%s starts tomorrow (%s) at %s. There may still be time to register.", title, date, location),
		CreatedAt:   time.Now(),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Warn("bookmark notification persist failed",
			slog.String("attendee_id", attendee.ID),
			slog.String("error", err.Error()))
	}
}
