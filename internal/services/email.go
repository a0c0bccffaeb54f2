package services

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/MohmedAnas/RB-WEB-sub000/internal/config"
	apperrors "github.com/MohmedAnas/RB-WEB-sub000/pkg/errors"
)

// EmailService sends customer notification emails over SMTP. The client
// is configured once at process start; a failed send is reported to the
// caller and never retried.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// MeetingInvite carries the details of a scheduled meeting for the
// confirmation email.
type MeetingInvite struct {
	InquiryID    uint
	CustomerName string
	ScheduleDate string
	Agenda       string
	ScheduledBy  string
}

// SendMeetingConfirmation emails the customer a meeting confirmation
func (s *EmailService) SendMeetingConfirmation(to string, m *MeetingInvite) error {
	if !s.cfg.Enabled {
		fmt.Printf("[EMAIL] Meeting confirmation would be sent to %s (inquiry #%d, %s)\n", to, m.InquiryID, m.ScheduleDate)
		return nil
	}

	subject := fmt.Sprintf("Your meeting with %s is confirmed", s.cfg.FromName)
	htmlBody := s.generateMeetingEmailHTML(m)

	greeting := "Hello,"
	if m.CustomerName != "" {
		greeting = fmt.Sprintf("Hello %s,", m.CustomerName)
	}
	agendaLine := ""
	if m.Agenda != "" {
		agendaLine = fmt.Sprintf("\nAgenda: %s\n", m.Agenda)
	}
	textBody := fmt.Sprintf(`%s

Your meeting has been scheduled for %s.
%s
%s from our team will be in touch at the scheduled time.

If the time does not work for you, simply reply to this email.

Best regards,
%s Team
`, greeting, m.ScheduleDate, agendaLine, m.ScheduledBy, s.cfg.FromName)

	return s.SendHTMLEmail(to, subject, htmlBody, textBody)
}

// generateMeetingEmailHTML generates the HTML meeting confirmation template
func (s *EmailService) generateMeetingEmailHTML(m *MeetingInvite) string {
	greeting := "Hello,"
	if m.CustomerName != "" {
		greeting = fmt.Sprintf("Hello %s,", m.CustomerName)
	}

	agendaBlock := ""
	if m.Agenda != "" {
		agendaBlock = fmt.Sprintf(`<div style="background: #FFFFFF; padding: 20px; border-left: 4px solid #1C5D99; border-radius: 4px; margin: 20px 0;">
            <h3 style="color: #0D1A2D; margin-top: 0;">Agenda</h3>
            <p style="white-space: pre-wrap;">%s</p>
        </div>`, m.Agenda)
	}

	currentYear := time.Now().Format("2006")

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Meeting Confirmation</title>
</head>
<body style="margin: 0; padding: 0; background-color: #F8FAFC; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; line-height: 1.6; color: #334155;">
    <div style="max-width: 600px; margin: 0 auto; padding: 32px 20px;">
        <h2 style="color: #1C5D99;">Your meeting is confirmed</h2>
        <p>%s</p>
        <div style="background: #FFFFFF; padding: 24px; border-radius: 8px; border: 1px solid #E2E8F0; margin: 20px 0;">
            <p style="margin: 0 0 8px;"><strong>When:</strong> %s</p>
            <p style="margin: 0;"><strong>With:</strong> %s</p>
        </div>
        %s
        <p>If the time does not work for you, simply reply to this email and we'll reschedule.</p>
        <p style="color: #64748B; font-size: 14px;">Reference: inquiry #%d</p>
        <p style="margin: 24px 0 0; font-size: 12px; color: #94A3B8;">
            This is an automated message from %s.<br>
            &copy; %s %s. All rights reserved.
        </p>
    </div>
</body>
</html>`, greeting, m.ScheduleDate, m.ScheduledBy, agendaBlock, m.InquiryID, s.cfg.FromName, currentYear, s.cfg.FromName)
}

// SendEmail sends a generic email (plain text)
func (s *EmailService) SendEmail(to, subject, body string) error {
	return s.SendHTMLEmail(to, subject, "", body)
}

// SendHTMLEmail sends an HTML email with plain text fallback
func (s *EmailService) SendHTMLEmail(to, subject, htmlBody, textBody string) error {
	if !s.cfg.Enabled {
		fmt.Printf("[EMAIL] Would send to %s: %s\n", to, subject)
		return nil
	}

	// Validate configuration
	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	// Create email message
	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	// Build multipart message
	boundary := "----=_NextPart_1234567890"

	headers := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary) +
		"\r\n"

	// Plain text part
	message := headers +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"Content-Transfer-Encoding: quoted-printable\r\n" +
		"\r\n" +
		textBody + "\r\n"

	// HTML part (if provided)
	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"Content-Transfer-Encoding: quoted-printable\r\n" +
			"\r\n" +
			htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	if err := s.send(to, []byte(message)); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeMailDelivery, "failed to send email", err)
	}
	return nil
}

// send delivers the message over SMTP with an explicit connection timeout
// and deadline. Callers of the schedule-meeting endpoint wait on this, so
// a slow or unreachable mail server must fail fast instead of hanging the
// request.
func (s *EmailService) send(to string, message []byte) error {
	timeout := time.Duration(s.cfg.TimeoutSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	// Bound the whole SMTP conversation, not just the dial.
	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return fmt.Errorf("smtp deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{ServerName: s.cfg.SMTPHost}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)
	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(s.cfg.FromEmail); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return client.Quit()
}

// IsEnabled returns whether email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.cfg.Enabled
}
