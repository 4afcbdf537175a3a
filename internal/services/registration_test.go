package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexpo/internal/domain"
)

var serialRe = regexp.MustCompile(`^[0-9A-F]{8}$`)

func activeExpo(id string) *domain.Expo {
	return &domain.Expo{
		ID:        id,
		Title:     "Tech Expo",
		Location:  "Hall A",
		StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
}

func activeSession(id, expoID string, capacity int) *domain.Session {
	return &domain.Session{
		ID:        id,
		Title:     "Go Workshop",
		Type:      domain.SessionTypeWorkshop,
		Date:      "2026-09-11",
		StartTime: "10:00",
		EndTime:   "12:00",
		Location:  "Room 2",
		Capacity:  capacity,
		ExpoID:    expoID,
		IsActive:  true,
	}
}

func attendee(id string) *domain.User {
	return &domain.User{
		ID:       id,
		Name:     "Dana Attendee",
		Email:    id + "@example.com",
		Role:     domain.RoleAttendee,
		Status:   "approved",
		IsActive: true,
	}
}

func TestRegisterForExpo(t *testing.T) {
	contact := domain.ContactInfo{FullName: "Dana A.", Phone: "123", City: "Lahore"}

	t.Run("success issues serial and emails pass", func(t *testing.T) {
		expoRepo := newFakeExpoRepo(activeExpo("expo-1"))
		regRepo := newFakeExpoRegRepo()
		emails := &fakeEmailService{}
		svc := NewRegistrationService(expoRepo, newFakeSessionRepo(), regRepo, newFakeSessionRegRepo(),
			newFakeUserRepo(attendee("user-1")), &fakePassGenerator{}, emails, testLogger())

		reg, err := svc.RegisterForExpo(context.Background(), "expo-1", "user-1", contact, nil)
		require.NoError(t, err)
		assert.Regexp(t, serialRe, reg.Serial)
		assert.Equal(t, domain.RegistrationStatusRegistered, reg.Status)
		assert.Equal(t, "Dana A.", reg.FullName)

		sent := emails.byKind("expo_pass")
		require.Len(t, sent, 1)
		assert.Equal(t, "user-1@example.com", sent[0].to)
		assert.Equal(t, "TICKET-"+reg.Serial+".pdf", sent[0].pass.FileName)
	})

	t.Run("existing registration is rejected even when cancelled", func(t *testing.T) {
		expoRepo := newFakeExpoRepo(activeExpo("expo-1"))
		regRepo := newFakeExpoRegRepo()
		require.NoError(t, regRepo.Create(context.Background(), &domain.ExpoRegistration{
			ExpoID:     "expo-1",
			AttendeeID: "user-1",
			Serial:     "AABBCCDD",
			Status:     domain.RegistrationStatusCancelled,
		}))
		svc := NewRegistrationService(expoRepo, newFakeSessionRepo(), regRepo, newFakeSessionRegRepo(),
			newFakeUserRepo(attendee("user-1")), &fakePassGenerator{}, &fakeEmailService{}, testLogger())

		_, err := svc.RegisterForExpo(context.Background(), "expo-1", "user-1", contact, nil)
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})

	t.Run("inactive expo is closed", func(t *testing.T) {
		expo := activeExpo("expo-1")
		expo.IsActive = false
		svc := NewRegistrationService(newFakeExpoRepo(expo), newFakeSessionRepo(), newFakeExpoRegRepo(),
			newFakeSessionRegRepo(), newFakeUserRepo(attendee("user-1")), &fakePassGenerator{}, &fakeEmailService{}, testLogger())

		_, err := svc.RegisterForExpo(context.Background(), "expo-1", "user-1", contact, nil)
		assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
	})

	t.Run("unknown expo", func(t *testing.T) {
		svc := NewRegistrationService(newFakeExpoRepo(), newFakeSessionRepo(), newFakeExpoRegRepo(),
			newFakeSessionRegRepo(), newFakeUserRepo(attendee("user-1")), &fakePassGenerator{}, &fakeEmailService{}, testLogger())

		_, err := svc.RegisterForExpo(context.Background(), "missing", "user-1", contact, nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("pass failure does not fail the registration", func(t *testing.T) {
		emails := &fakeEmailService{}
		svc := NewRegistrationService(newFakeExpoRepo(activeExpo("expo-1")), newFakeSessionRepo(),
			newFakeExpoRegRepo(), newFakeSessionRegRepo(), newFakeUserRepo(attendee("user-1")),
			&fakePassGenerator{failExpo: true}, emails, testLogger())

		reg, err := svc.RegisterForExpo(context.Background(), "expo-1", "user-1", contact, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, reg.Serial)
		assert.Empty(t, emails.byKind("expo_pass"))
	})

	t.Run("bad upsell id does not affect primary or other upsells", func(t *testing.T) {
		sessionRepo := newFakeSessionRepo(activeSession("sess-1", "expo-1", 0))
		sessionRegRepo := newFakeSessionRegRepo()
		emails := &fakeEmailService{}
		svc := NewRegistrationService(newFakeExpoRepo(activeExpo("expo-1")), sessionRepo,
			newFakeExpoRegRepo(), sessionRegRepo, newFakeUserRepo(attendee("user-1")),
			&fakePassGenerator{}, emails, testLogger())

		reg, err := svc.RegisterForExpo(context.Background(), "expo-1", "user-1", contact,
			[]string{"bogus", "sess-1"})
		require.NoError(t, err)
		assert.NotEmpty(t, reg.Serial)

		sessRegs, err := sessionRegRepo.ListByAttendee(context.Background(), "user-1")
		require.NoError(t, err)
		require.Len(t, sessRegs, 1)
		assert.Equal(t, "sess-1", sessRegs[0].SessionID)
		assert.NotEqual(t, reg.Serial, sessRegs[0].Serial)

		require.Len(t, emails.byKind("session_pass"), 1)
	})
}

func TestRegisterForSession(t *testing.T) {
	contact := domain.ContactInfo{FullName: "Dana A."}

	t.Run("success with expo upsell", func(t *testing.T) {
		expoRegRepo := newFakeExpoRegRepo()
		emails := &fakeEmailService{}
		svc := NewRegistrationService(newFakeExpoRepo(activeExpo("expo-1")),
			newFakeSessionRepo(activeSession("sess-1", "expo-1", 0)), expoRegRepo,
			newFakeSessionRegRepo(), newFakeUserRepo(attendee("user-1")),
			&fakePassGenerator{}, emails, testLogger())

		reg, err := svc.RegisterForSession(context.Background(), "sess-1", "user-1", contact, "expo-1")
		require.NoError(t, err)
		assert.Regexp(t, serialRe, reg.Serial)

		expoReg, err := expoRegRepo.GetByExpoAndAttendee(context.Background(), "expo-1", "user-1")
		require.NoError(t, err)
		assert.Equal(t, domain.RegistrationStatusRegistered, expoReg.Status)

		sent := emails.byKind("session_pass")
		require.Len(t, sent, 1)
		assert.Equal(t, "SESSION-TICKET-"+reg.Serial+".pdf", sent[0].pass.FileName)
	})

	t.Run("capacity full", func(t *testing.T) {
		sessionRegRepo := newFakeSessionRegRepo()
		require.NoError(t, sessionRegRepo.Create(context.Background(), &domain.SessionRegistration{
			SessionID:  "sess-1",
			AttendeeID: "other",
			Status:     domain.RegistrationStatusRegistered,
		}))
		svc := NewRegistrationService(newFakeExpoRepo(activeExpo("expo-1")),
			newFakeSessionRepo(activeSession("sess-1", "expo-1", 1)), newFakeExpoRegRepo(),
			sessionRegRepo, newFakeUserRepo(attendee("user-1")), &fakePassGenerator{},
			&fakeEmailService{}, testLogger())

		_, err := svc.RegisterForSession(context.Background(), "sess-1", "user-1", contact, "")
		assert.ErrorIs(t, err, domain.ErrCapacityFull)
	})

	t.Run("cancelled rows free capacity", func(t *testing.T) {
		sessionRegRepo := newFakeSessionRegRepo()
		require.NoError(t, sessionRegRepo.Create(context.Background(), &domain.SessionRegistration{
			SessionID:  "sess-1",
			AttendeeID: "other",
			Status:     domain.RegistrationStatusCancelled,
		}))
		svc := NewRegistrationService(newFakeExpoRepo(activeExpo("expo-1")),
			newFakeSessionRepo(activeSession("sess-1", "expo-1", 1)), newFakeExpoRegRepo(),
			sessionRegRepo, newFakeUserRepo(attendee("user-1")), &fakePassGenerator{},
			&fakeEmailService{}, testLogger())

		_, err := svc.RegisterForSession(context.Background(), "sess-1", "user-1", contact, "")
		assert.NoError(t, err)
	})

	t.Run("inactive parent expo closes the session", func(t *testing.T) {
		expo := activeExpo("expo-1")
		expo.IsActive = false
		svc := NewRegistrationService(newFakeExpoRepo(expo),
			newFakeSessionRepo(activeSession("sess-1", "expo-1", 0)), newFakeExpoRegRepo(),
			newFakeSessionRegRepo(), newFakeUserRepo(attendee("user-1")), &fakePassGenerator{},
			&fakeEmailService{}, testLogger())

		_, err := svc.RegisterForSession(context.Background(), "sess-1", "user-1", contact, "")
		assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
	})

	t.Run("standalone session skips parent check", func(t *testing.T) {
		svc := NewRegistrationService(newFakeExpoRepo(),
			newFakeSessionRepo(activeSession("sess-1", "", 0)), newFakeExpoRegRepo(),
			newFakeSessionRegRepo(), newFakeUserRepo(attendee("user-1")), &fakePassGenerator{},
			&fakeEmailService{}, testLogger())

		_, err := svc.RegisterForSession(context.Background(), "sess-1", "user-1", contact, "")
		assert.NoError(t, err)
	})
}

func TestRegisterAttendeeByAdmin(t *testing.T) {
	contact := domain.ContactInfo{FullName: "Walk In", Phone: "555"}

	t.Run("creates the user when missing and skips the activity check", func(t *testing.T) {
		expo := activeExpo("expo-1")
		expo.IsActive = false
		userRepo := newFakeUserRepo()
		emails := &fakeEmailService{}
		svc := NewRegistrationService(newFakeExpoRepo(expo), newFakeSessionRepo(),
			newFakeExpoRegRepo(), newFakeSessionRegRepo(), userRepo, &fakePassGenerator{},
			emails, testLogger())

		reg, err := svc.RegisterAttendeeByAdmin(context.Background(), "expo-1", "walkin@example.com", contact)
		require.NoError(t, err)
		assert.Regexp(t, serialRe, reg.Serial)

		user, err := userRepo.GetByEmail(context.Background(), "walkin@example.com")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAttendee, user.Role)
		assert.Equal(t, user.ID, reg.AttendeeID)

		require.Len(t, emails.byKind("expo_pass"), 1)
	})

	t.Run("requires email and full name", func(t *testing.T) {
		svc := NewRegistrationService(newFakeExpoRepo(activeExpo("expo-1")), newFakeSessionRepo(),
			newFakeExpoRegRepo(), newFakeSessionRegRepo(), newFakeUserRepo(), &fakePassGenerator{},
			&fakeEmailService{}, testLogger())

		_, err := svc.RegisterAttendeeByAdmin(context.Background(), "expo-1", "", contact)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("existing registration rejected", func(t *testing.T) {
		userRepo := newFakeUserRepo(attendee("user-1"))
		regRepo := newFakeExpoRegRepo()
		require.NoError(t, regRepo.Create(context.Background(), &domain.ExpoRegistration{
			ExpoID:     "expo-1",
			AttendeeID: "user-1",
			Status:     domain.RegistrationStatusRegistered,
		}))
		svc := NewRegistrationService(newFakeExpoRepo(activeExpo("expo-1")), newFakeSessionRepo(),
			regRepo, newFakeSessionRegRepo(), userRepo, &fakePassGenerator{},
			&fakeEmailService{}, testLogger())

		_, err := svc.RegisterAttendeeByAdmin(context.Background(), "expo-1", "user-1@example.com", contact)
		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})
}

func TestUpdateExpoRegistration(t *testing.T) {
	seed := func(t *testing.T, regRepo *fakeExpoRegRepo, status string) *domain.ExpoRegistration {
		t.Helper()
		reg := &domain.ExpoRegistration{
			ExpoID:     "expo-1",
			AttendeeID: "user-1",
			Serial:     "1A2B3C4D",
			FullName:   "Dana A.",
			Status:     status,
		}
		require.NoError(t, regRepo.Create(context.Background(), reg))
		return reg
	}

	t.Run("cancelling sends the cancellation email", func(t *testing.T) {
		regRepo := newFakeExpoRegRepo()
		reg := seed(t, regRepo, domain.RegistrationStatusRegistered)
		emails := &fakeEmailService{}
		svc := NewRegistrationService(newFakeExpoRepo(activeExpo("expo-1")), newFakeSessionRepo(),
			regRepo, newFakeSessionRegRepo(), newFakeUserRepo(attendee("user-1")),
			&fakePassGenerator{}, emails, testLogger())

		updated, err := svc.UpdateExpoRegistration(context.Background(), reg.ID, domain.RegistrationUpdate{
			FullName: "Dana A.",
			Status:   domain.RegistrationStatusCancelled,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RegistrationStatusCancelled, updated.Status)
		assert.Len(t, emails.byKind("registration_cancelled"), 1)
		assert.Empty(t, emails.byKind("expo_pass"))
	})

	t.Run("reinstating resends the pass with the original serial", func(t *testing.T) {
		regRepo := newFakeExpoRegRepo()
		reg := seed(t, regRepo, domain.RegistrationStatusCancelled)
		emails := &fakeEmailService{}
		svc := NewRegistrationService(newFakeExpoRepo(activeExpo("expo-1")), newFakeSessionRepo(),
			regRepo, newFakeSessionRegRepo(), newFakeUserRepo(attendee("user-1")),
			&fakePassGenerator{}, emails, testLogger())

		updated, err := svc.UpdateExpoRegistration(context.Background(), reg.ID, domain.RegistrationUpdate{
			FullName: "Dana A.",
			Status:   domain.RegistrationStatusRegistered,
		})
		require.NoError(t, err)
		assert.Equal(t, "1A2B3C4D", updated.Serial)

		sent := emails.byKind("expo_pass")
		require.Len(t, sent, 1)
		assert.Equal(t, "TICKET-1A2B3C4D.pdf", sent[0].pass.FileName)
	})

	t.Run("unknown registration", func(t *testing.T) {
		svc := NewRegistrationService(newFakeExpoRepo(), newFakeSessionRepo(), newFakeExpoRegRepo(),
			newFakeSessionRegRepo(), newFakeUserRepo(), &fakePassGenerator{}, &fakeEmailService{}, testLogger())

		_, err := svc.UpdateExpoRegistration(context.Background(), "missing", domain.RegistrationUpdate{
			Status: domain.RegistrationStatusCancelled,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCheckAndListRegistrations(t *testing.T) {
	regRepo := newFakeExpoRegRepo()
	require.NoError(t, regRepo.Create(context.Background(), &domain.ExpoRegistration{
		ExpoID:     "expo-1",
		AttendeeID: "user-1",
		Status:     domain.RegistrationStatusRegistered,
	}))
	svc := NewRegistrationService(newFakeExpoRepo(activeExpo("expo-1")), newFakeSessionRepo(),
		regRepo, newFakeSessionRegRepo(), newFakeUserRepo(attendee("user-1")),
		&fakePassGenerator{}, &fakeEmailService{}, testLogger())

	registered, err := svc.CheckExpoRegistration(context.Background(), "expo-1", "user-1")
	require.NoError(t, err)
	assert.True(t, registered)

	registered, err = svc.CheckExpoRegistration(context.Background(), "expo-1", "stranger")
	require.NoError(t, err)
	assert.False(t, registered)

	regs, err := svc.ListExpoRegistrations(context.Background(), "expo-1")
	require.NoError(t, err)
	assert.Len(t, regs, 1)

	mine, err := svc.ListMyExpoRegistrations(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestDeleteSessionRegistration(t *testing.T) {
	regRepo := newFakeSessionRegRepo()
	reg := &domain.SessionRegistration{SessionID: "sess-1", AttendeeID: "user-1", Status: domain.RegistrationStatusRegistered}
	require.NoError(t, regRepo.Create(context.Background(), reg))
	svc := NewRegistrationService(newFakeExpoRepo(), newFakeSessionRepo(), newFakeExpoRegRepo(),
		regRepo, newFakeUserRepo(), &fakePassGenerator{}, &fakeEmailService{}, testLogger())

	require.NoError(t, svc.DeleteSessionRegistration(context.Background(), reg.ID))
	assert.ErrorIs(t, svc.DeleteSessionRegistration(context.Background(), reg.ID), domain.ErrNotFound)
}
