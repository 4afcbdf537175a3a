package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexpo/internal/domain"
)

func availableBooth(id, expoID string) *domain.Booth {
	return &domain.Booth{ID: id, Name: "B-" + id, Size: "3x3", Price: 500, ExpoID: expoID}
}

func TestCreateBooth(t *testing.T) {
	t.Run("adds a booth to an existing expo", func(t *testing.T) {
		boothRepo := newFakeBoothRepo()
		svc := NewBoothService(boothRepo, newFakeExpoRepo(activeExpo("expo-1")),
			newFakeUserRepo(), &fakePassGenerator{}, &fakeEmailService{}, testLogger())

		booth, err := svc.CreateBooth(context.Background(), "expo-1",
			domain.BoothCreateInput{Name: "C-1", Size: "3x3", Price: 450})
		require.NoError(t, err)
		assert.NotEmpty(t, booth.ID)
		assert.Equal(t, "expo-1", booth.ExpoID)
		assert.False(t, booth.IsBooked)

		booths, err := boothRepo.ListByExpo(context.Background(), "expo-1")
		require.NoError(t, err)
		assert.Len(t, booths, 1)
	})

	t.Run("unknown expo", func(t *testing.T) {
		svc := NewBoothService(newFakeBoothRepo(), newFakeExpoRepo(),
			newFakeUserRepo(), &fakePassGenerator{}, &fakeEmailService{}, testLogger())

		_, err := svc.CreateBooth(context.Background(), "missing",
			domain.BoothCreateInput{Name: "C-1", Size: "3x3", Price: 450})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		svc := NewBoothService(newFakeBoothRepo(), newFakeExpoRepo(activeExpo("expo-1")),
			newFakeUserRepo(), &fakePassGenerator{}, &fakeEmailService{}, testLogger())

		_, err := svc.CreateBooth(context.Background(), "expo-1",
			domain.BoothCreateInput{Name: "", Size: "3x3", Price: 450})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.CreateBooth(context.Background(), "expo-1",
			domain.BoothCreateInput{Name: "C-1", Size: "3x3", Price: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestBookBooth(t *testing.T) {
	exhibitor := &domain.User{ID: "exh-1", Name: "Exa", Email: "exa@example.com", Role: domain.RoleExhibitor}
	req := domain.BoothBookingRequest{
		ProductsServices: []string{"Robots", "", "Sensors"},
		TargetInterests:  []string{"Automation"},
		Staff:            []domain.BoothStaff{{Name: "Sam", Role: "Sales"}},
	}

	t.Run("success sends the confirmation with the exhibitor pass", func(t *testing.T) {
		boothRepo := newFakeBoothRepo(availableBooth("1", "expo-1"))
		emails := &fakeEmailService{}
		svc := NewBoothService(boothRepo, newFakeExpoRepo(activeExpo("expo-1")),
			newFakeUserRepo(exhibitor), &fakePassGenerator{}, emails, testLogger())

		booth, err := svc.BookBooth(context.Background(), "1", "exh-1", req)
		require.NoError(t, err)
		assert.True(t, booth.IsBooked)
		assert.Equal(t, "exh-1", booth.ExhibitorID)
		assert.Equal(t, []string{"Robots", "", "Sensors"}, booth.ProductsServices)

		sent := emails.byKind("booth_confirmation")
		require.Len(t, sent, 1)
		assert.Equal(t, "exa@example.com", sent[0].to)
		assert.Equal(t, "EXHIBITOR-PASS-B-1.pdf", sent[0].pass.FileName)
	})

	t.Run("already booked", func(t *testing.T) {
		booth := availableBooth("1", "expo-1")
		booth.IsBooked = true
		booth.ExhibitorID = "other"
		svc := NewBoothService(newFakeBoothRepo(booth), newFakeExpoRepo(activeExpo("expo-1")),
			newFakeUserRepo(exhibitor), &fakePassGenerator{}, &fakeEmailService{}, testLogger())

		_, err := svc.BookBooth(context.Background(), "1", "exh-1", req)
		assert.ErrorIs(t, err, domain.ErrBoothBooked)
	})

	t.Run("unknown booth", func(t *testing.T) {
		svc := NewBoothService(newFakeBoothRepo(), newFakeExpoRepo(), newFakeUserRepo(),
			&fakePassGenerator{}, &fakeEmailService{}, testLogger())

		_, err := svc.BookBooth(context.Background(), "missing", "exh-1", req)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("booking stands when the confirmation email fails", func(t *testing.T) {
		boothRepo := newFakeBoothRepo(availableBooth("1", "expo-1"))
		emails := &fakeEmailService{failFor: "exa@example.com"}
		svc := NewBoothService(boothRepo, newFakeExpoRepo(activeExpo("expo-1")),
			newFakeUserRepo(exhibitor), &fakePassGenerator{}, emails, testLogger())

		booth, err := svc.BookBooth(context.Background(), "1", "exh-1", req)
		require.NoError(t, err)
		assert.True(t, booth.IsBooked)

		stored, err := boothRepo.GetByID(context.Background(), "1")
		require.NoError(t, err)
		assert.True(t, stored.IsBooked)
	})

	t.Run("booking stands when the expo lookup fails", func(t *testing.T) {
		boothRepo := newFakeBoothRepo(availableBooth("1", "gone-expo"))
		emails := &fakeEmailService{}
		svc := NewBoothService(boothRepo, newFakeExpoRepo(), newFakeUserRepo(exhibitor),
			&fakePassGenerator{}, emails, testLogger())

		booth, err := svc.BookBooth(context.Background(), "1", "exh-1", req)
		require.NoError(t, err)
		assert.True(t, booth.IsBooked)
		assert.Empty(t, emails.sent)
	})
}

func TestUnbookBooth(t *testing.T) {
	t.Run("clears booking details", func(t *testing.T) {
		booth := availableBooth("1", "expo-1")
		booth.IsBooked = true
		booth.ExhibitorID = "exh-1"
		booth.ProductsServices = []string{"Robots"}
		booth.Staff = []domain.BoothStaff{{Name: "Sam"}}
		svc := NewBoothService(newFakeBoothRepo(booth), newFakeExpoRepo(), newFakeUserRepo(),
			&fakePassGenerator{}, &fakeEmailService{}, testLogger())

		updated, err := svc.UnbookBooth(context.Background(), "1")
		require.NoError(t, err)
		assert.False(t, updated.IsBooked)
		assert.Empty(t, updated.ExhibitorID)
		assert.Nil(t, updated.ProductsServices)
		assert.Nil(t, updated.Staff)
	})

	t.Run("not booked", func(t *testing.T) {
		svc := NewBoothService(newFakeBoothRepo(availableBooth("1", "expo-1")), newFakeExpoRepo(),
			newFakeUserRepo(), &fakePassGenerator{}, &fakeEmailService{}, testLogger())

		_, err := svc.UnbookBooth(context.Background(), "1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestDeleteBooth(t *testing.T) {
	t.Run("booked booths are protected", func(t *testing.T) {
		booth := availableBooth("1", "expo-1")
		booth.IsBooked = true
		booth.ExhibitorID = "exh-1"
		svc := NewBoothService(newFakeBoothRepo(booth), newFakeExpoRepo(), newFakeUserRepo(),
			&fakePassGenerator{}, &fakeEmailService{}, testLogger())

		assert.ErrorIs(t, svc.DeleteBooth(context.Background(), "1"), domain.ErrBoothBooked)
	})

	t.Run("available booths are deleted", func(t *testing.T) {
		boothRepo := newFakeBoothRepo(availableBooth("1", "expo-1"))
		svc := NewBoothService(boothRepo, newFakeExpoRepo(), newFakeUserRepo(),
			&fakePassGenerator{}, &fakeEmailService{}, testLogger())

		require.NoError(t, svc.DeleteBooth(context.Background(), "1"))
		_, err := boothRepo.GetByID(context.Background(), "1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRecordVisit(t *testing.T) {
	booth := availableBooth("booth-1", "expo-1")

	registered := func(t *testing.T) *fakeExpoRegRepo {
		t.Helper()
		regRepo := newFakeExpoRegRepo()
		require.NoError(t, regRepo.Create(context.Background(), &domain.ExpoRegistration{
			ExpoID: "expo-1", AttendeeID: "att-1", Status: domain.RegistrationStatusRegistered,
		}))
		return regRepo
	}

	t.Run("first visit is recorded", func(t *testing.T) {
		visitRepo := &fakeBoothVisitRepo{}
		svc := NewBoothVisitService(newFakeBoothRepo(booth), visitRepo, registered(t))

		visit, err := svc.RecordVisit(context.Background(), "expo-1", "booth-1", "att-1")
		require.NoError(t, err)
		assert.NotEmpty(t, visit.ID)
		assert.Equal(t, "booth-1", visit.BoothID)
		assert.Len(t, visitRepo.visits, 1)
	})

	t.Run("second visit is rejected", func(t *testing.T) {
		visitRepo := &fakeBoothVisitRepo{}
		svc := NewBoothVisitService(newFakeBoothRepo(booth), visitRepo, registered(t))

		_, err := svc.RecordVisit(context.Background(), "expo-1", "booth-1", "att-1")
		require.NoError(t, err)
		_, err = svc.RecordVisit(context.Background(), "expo-1", "booth-1", "att-1")
		assert.ErrorIs(t, err, domain.ErrAlreadyVisited)
	})

	t.Run("booth from another expo", func(t *testing.T) {
		svc := NewBoothVisitService(newFakeBoothRepo(booth), &fakeBoothVisitRepo{}, registered(t))

		_, err := svc.RecordVisit(context.Background(), "expo-2", "booth-1", "att-1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unregistered attendee", func(t *testing.T) {
		svc := NewBoothVisitService(newFakeBoothRepo(booth), &fakeBoothVisitRepo{}, newFakeExpoRegRepo())

		_, err := svc.RecordVisit(context.Background(), "expo-1", "booth-1", "stranger")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("cancelled registration does not qualify", func(t *testing.T) {
		regRepo := newFakeExpoRegRepo()
		require.NoError(t, regRepo.Create(context.Background(), &domain.ExpoRegistration{
			ExpoID: "expo-1", AttendeeID: "att-1", Status: domain.RegistrationStatusCancelled,
		}))
		svc := NewBoothVisitService(newFakeBoothRepo(booth), &fakeBoothVisitRepo{}, regRepo)

		_, err := svc.RecordVisit(context.Background(), "expo-1", "booth-1", "att-1")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
