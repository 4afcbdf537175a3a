package domain

import "context"

// Attachment is a binary email attachment.
type Attachment struct {
	FileName string
	MIMEType string
	Content  []byte
}

// Mailer defines the contract for sending emails (infrastructure port).
// Attachments may be nil.
type Mailer interface {
	Send(to, subject, html, text string, attachments []Attachment) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// PassEmailData holds data for expo and session pass emails.
type PassEmailData struct {
	Email        string
	EventTitle   string
	EventDate    string
	EventTime    string
	Location     string
	AttendeeName string
	Serial       string
}

// CancellationEmailData holds data for the registration-cancelled email.
type CancellationEmailData struct {
	Email        string
	AttendeeName string
	EventTitle   string
}

// BoothConfirmationEmailData holds data for the booth booking confirmation.
type BoothConfirmationEmailData struct {
	Email            string
	ExhibitorName    string
	ExpoTitle        string
	BoothName        string
	BoothSize        string
	Location         string
	StartDate        string
	EndDate          string
	ProductsServices string
	Staff            []BoothStaff
}

// ReminderEmailData holds data for tomorrow-reminder emails. Kind selects the
// template: exhibitor, attendee, or bookmark.
type ReminderEmailData struct {
	Email         string
	RecipientName string
	EventTitle    string
	Location      string
	Date          string
	BoothName     string
	BoothSize     string
}

// MessageEmailData holds data for the new-message notification email.
// AppointmentDate is empty for chat messages.
type MessageEmailData struct {
	Email           string
	RecipientName   string
	SenderName      string
	MessageType     string
	Content         string
	AppointmentDate string
}

// EmailService sends the domain-level emails. All methods render a template
// and dispatch through the Mailer; callers decide whether a failure is fatal.
type EmailService interface {
	SendExpoPass(ctx context.Context, data *PassEmailData, pass *Pass) error
	SendSessionPass(ctx context.Context, data *PassEmailData, pass *Pass) error
	SendBoothConfirmation(ctx context.Context, data *BoothConfirmationEmailData, pass *Pass) error
	SendRegistrationCancelled(ctx context.Context, data *CancellationEmailData) error
	SendExhibitorReminder(ctx context.Context, data *ReminderEmailData) error
	SendAttendeeReminder(ctx context.Context, data *ReminderEmailData) error
	SendBookmarkReminder(ctx context.Context, data *ReminderEmailData) error
	SendMessageNotification(ctx context.Context, data *MessageEmailData) error
}
