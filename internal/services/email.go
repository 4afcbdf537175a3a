package services

import (
	"context"
	"fmt"
	"log"

	"nexpo/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendExpoPass sends the expo pass email with the PDF pass attached.
func (s *emailService) SendExpoPass(ctx context.Context, data *domain.PassEmailData, pass *domain.Pass) error {
	return s.sendPass(ctx, "expo_pass", data, pass)
}

// SendSessionPass sends the session ticket email with the PDF pass attached.
func (s *emailService) SendSessionPass(ctx context.Context, data *domain.PassEmailData, pass *domain.Pass) error {
	return s.sendPass(ctx, "session_pass", data, pass)
}

func (s *emailService) sendPass(_ context.Context, templateName string, data *domain.PassEmailData, pass *domain.Pass) error {
	if data == nil {
		return fmt.Errorf("pass email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	var attachments []domain.Attachment
	if pass != nil {
		attachments = []domain.Attachment{{
			FileName: pass.FileName,
			MIMEType: pass.MIMEType,
			Content:  pass.Content,
		}}
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody, attachments); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	log.Printf("[EMAIL] Pass email (%s) sent to %s", templateName, data.Email)
	return nil
}

// SendBoothConfirmation sends the booking confirmation with the exhibitor pass attached.
func (s *emailService) SendBoothConfirmation(ctx context.Context, data *domain.BoothConfirmationEmailData, pass *domain.Pass) error {
	if data == nil {
		return fmt.Errorf("booth confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("booth_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render booth_confirmation template: %w", err)
	}
	var attachments []domain.Attachment
	if pass != nil {
		attachments = []domain.Attachment{{
			FileName: pass.FileName,
			MIMEType: pass.MIMEType,
			Content:  pass.Content,
		}}
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody, attachments); err != nil {
		return fmt.Errorf("failed to send booth confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Booth confirmation sent to %s", data.Email)
	return nil
}

// SendRegistrationCancelled notifies an attendee that an admin cancelled their registration.
func (s *emailService) SendRegistrationCancelled(ctx context.Context, data *domain.CancellationEmailData) error {
	if data == nil {
		return fmt.Errorf("cancellation email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration_cancelled", data)
	if err != nil {
		return fmt.Errorf("failed to render registration_cancelled template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody, nil); err != nil {
		return fmt.Errorf("failed to send cancellation email: %w", err)
	}
	log.Printf("[EMAIL] Cancellation email sent to %s", data.Email)
	return nil
}

func (s *emailService) SendExhibitorReminder(ctx context.Context, data *domain.ReminderEmailData) error {
	return s.sendReminder("exhibitor_reminder", data)
}

func (s *emailService) SendAttendeeReminder(ctx context.Context, data *domain.ReminderEmailData) error {
	return s.sendReminder("attendee_reminder", data)
}

func (s *emailService) SendBookmarkReminder(ctx context.Context, data *domain.ReminderEmailData) error {
	return s.sendReminder("bookmark_reminder", data)
}

// SendMessageNotification tells a user they received a new chat message or
// appointment request.
func (s *emailService) SendMessageNotification(ctx context.Context, data *domain.MessageEmailData) error {
	if data == nil {
		return fmt.Errorf("message email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("message_notification", data)
	if err != nil {
		return fmt.Errorf("failed to render message_notification template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody, nil); err != nil {
		return fmt.Errorf("failed to send message notification email: %w", err)
	}
	log.Printf("[EMAIL] Message notification sent to %s", data.Email)
	return nil
}

func (s *emailService) sendReminder(templateName string, data *domain.ReminderEmailData) error {
	if data == nil {
		return fmt.Errorf("reminder email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody, nil); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	log.Printf("[EMAIL] Reminder email (%s) sent to %s", templateName, data.Email)
	return nil
}
