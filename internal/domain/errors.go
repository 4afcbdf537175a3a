package domain

import "errors"

// Sentinel errors shared across services. Controllers map these to HTTP
// status codes; repositories translate driver errors into them.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyRegistered  = errors.New("already registered")
	ErrRegistrationClosed = errors.New("registration is disabled")
	ErrCapacityFull       = errors.New("event is fully booked")
	ErrAlreadyBooked      = errors.New("booth already booked")
	ErrBoothBooked        = errors.New("booked booths cannot be deleted")
	ErrAlreadyVisited     = errors.New("visit already recorded")
	ErrDuplicate          = errors.New("duplicate record")

	// ErrRateLimited is returned by the generative text provider when the
	// upstream signals rate limiting. It is the only provider error that is
	// retried.
	ErrRateLimited = errors.New("provider rate limited")
)
