package domain

import "context"

// Pass is a rendered ticket document. It is never persisted; the serial on
// the registration row is the only durable linkage.
type Pass struct {
	Content  []byte
	FileName string
	MIMEType string
}

// PassGenerator renders visual passes. Implementations fetch the event's
// hero image best-effort: a failed fetch renders the pass without the image
// rather than failing the operation. A rendering failure itself propagates
// to the caller.
type PassGenerator interface {
	ExpoPass(ctx context.Context, expo *Expo, attendeeName, attendeeEmail, serial string) (*Pass, error)
	SessionPass(ctx context.Context, session *Session, attendeeName, attendeeEmail, serial string) (*Pass, error)
	// BoothPass embeds a QR code deep-linking to the booth-visit check-in
	// flow for the booth's expo.
	BoothPass(ctx context.Context, booth *Booth, exhibitor *User, expo *Expo) (*Pass, error)
}
