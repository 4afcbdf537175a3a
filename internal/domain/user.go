package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// User roles.
const (
	RoleAdmin     = "admin"
	RoleAttendee  = "attendee"
	RoleExhibitor = "exhibitor"
)

// User represents an attendee, exhibitor, or admin account.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PasswordSalt string    `json:"-"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone"`
	Interests    []string  `json:"interests"`
	CompanyName  string    `json:"company_name,omitempty"`
	Status       string    `json:"status"` // approved | unapproved
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, roles []string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID and roles.
type TokenVerifier interface {
	Verify(token string) (userID string, roles []string, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// ListByRole returns the active users holding the given role. Used for
	// notification broadcasts and the shared admin inbox.
	ListByRole(ctx context.Context, role string) ([]*User, error)
	Update(ctx context.Context, user *User) error
}

// AuthService covers the minimal signup/login surface that guards the
// attendee and admin routes.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password, role string) (*User, error)
	// Login returns a signed token for an active, approved account.
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}
