package domain

import "context"

// BoothStaff is a staff member on a booth roster.
type BoothStaff struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Contact string `json:"contact"`
}

// Booth is a bookable stand inside an expo. A booth with IsBooked true must
// have a non-empty ExhibitorID; booked booths cannot be deleted.
// swagger:model Booth
type Booth struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Size             string       `json:"size"`
	Price            float64      `json:"price"`
	ExpoID           string       `json:"expo_id"`
	ExhibitorID      string       `json:"exhibitor_id,omitempty"`
	IsBooked         bool         `json:"is_booked"`
	ProductsServices []string     `json:"products_services"`
	TargetInterests  []string     `json:"target_interests"`
	Staff            []BoothStaff `json:"staff"`
}

// BoothRepository defines the interface for booth storage
type BoothRepository interface {
	Create(ctx context.Context, booth *Booth) error
	GetByID(ctx context.Context, id string) (*Booth, error)
	ListByExpo(ctx context.Context, expoID string) ([]*Booth, error)
	ListBookedByExpo(ctx context.Context, expoID string) ([]*Booth, error)
	Update(ctx context.Context, booth *Booth) error
	Delete(ctx context.Context, id string) error
}

// BoothBookingRequest carries the exhibitor-supplied booking details.
type BoothBookingRequest struct {
	ProductsServices []string
	TargetInterests  []string
	Staff            []BoothStaff
}

// BoothCreateInput carries the admin-supplied fields for a single booth added
// outside the bulk expo-creation flow.
type BoothCreateInput struct {
	Name  string
	Size  string
	Price float64
}

// BoothService manages booth booking and the exhibitor pass that goes with it.
type BoothService interface {
	// CreateBooth adds one booth to an existing expo.
	CreateBooth(ctx context.Context, expoID string, input BoothCreateInput) (*Booth, error)
	// BookBooth books the booth for the exhibitor and sends the exhibitor
	// pass by email (best effort).
	BookBooth(ctx context.Context, boothID, exhibitorID string, req BoothBookingRequest) (*Booth, error)
	UnbookBooth(ctx context.Context, boothID string) (*Booth, error)
	ListByExpo(ctx context.Context, expoID string) ([]*Booth, error)
	// DeleteBooth removes an unbooked booth. Booked booths are rejected.
	DeleteBooth(ctx context.Context, boothID string) error
}
