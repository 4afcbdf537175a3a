package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nexpo/internal/domain"
)

type bookmarkService struct {
	expoBookmarkRepo    domain.ExpoBookmarkRepository
	sessionBookmarkRepo domain.SessionBookmarkRepository
}

// NewBookmarkService creates a BookmarkService.
func NewBookmarkService(
	expoBookmarkRepo domain.ExpoBookmarkRepository,
	sessionBookmarkRepo domain.SessionBookmarkRepository,
) domain.BookmarkService {
	return &bookmarkService{
		expoBookmarkRepo:    expoBookmarkRepo,
		sessionBookmarkRepo: sessionBookmarkRepo,
	}
}

func (s *bookmarkService) ToggleExpoBookmark(ctx context.Context, expoID, attendeeID string) (bool, error) {
	existing, err := s.expoBookmarkRepo.GetByExpoAndAttendee(ctx, expoID, attendeeID)
	if err == nil {
		if err := s.expoBookmarkRepo.Delete(ctx, existing.ID); err != nil {
			return false, fmt.Errorf("delete bookmark: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("get bookmark: %w", err)
	}

	bm := &domain.ExpoBookmark{
		ExpoID:     expoID,
		AttendeeID: attendeeID,
		CreatedAt:  time.Now(),
	}
	if err := s.expoBookmarkRepo.Create(ctx, bm); err != nil {
		// A concurrent toggle can hit the unique pair constraint; the
		// bookmark exists either way.
		if errors.Is(err, domain.ErrDuplicate) {
			return true, nil
		}
		return false, fmt.Errorf("create bookmark: %w", err)
	}
	return true, nil
}

func (s *bookmarkService) ToggleSessionBookmark(ctx context.Context, sessionID, attendeeID string) (bool, error) {
	existing, err := s.sessionBookmarkRepo.GetBySessionAndAttendee(ctx, sessionID, attendeeID)
	if err == nil {
		if err := s.sessionBookmarkRepo.Delete(ctx, existing.ID); err != nil {
			return false, fmt.Errorf("delete bookmark: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("get bookmark: %w", err)
	}

	bm := &domain.SessionBookmark{
		SessionID:  sessionID,
		AttendeeID: attendeeID,
		CreatedAt:  time.Now(),
	}
	if err := s.sessionBookmarkRepo.Create(ctx, bm); err != nil {
		return false, fmt.Errorf("create bookmark: %w", err)
	}
	return true, nil
}

func (s *bookmarkService) ListExpoBookmarks(ctx context.Context, attendeeID string) ([]*domain.ExpoBookmark, error) {
	bms, err := s.expoBookmarkRepo.ListByAttendee(ctx, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bms, nil
}

func (s *bookmarkService) ListSessionBookmarks(ctx context.Context, attendeeID string) ([]*domain.SessionBookmark, error) {
	bms, err := s.sessionBookmarkRepo.ListByAttendee(ctx, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bms, nil
}
