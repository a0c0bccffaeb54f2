package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MohmedAnas/RB-WEB-sub000/internal/config"
)

func TestMeetingEmailHTML(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{FromName: "RB Infotech", TimeoutSeconds: 5})

	html := svc.generateMeetingEmailHTML(&MeetingInvite{
		InquiryID:    42,
		CustomerName: "Suresh",
		ScheduleDate: "2025-03-14 11:00 AM",
		Agenda:       "Demo of the billing module",
		ScheduledBy:  "Anas",
	})

	assert.Contains(t, html, "Hello Suresh,")
	assert.Contains(t, html, "2025-03-14 11:00 AM")
	assert.Contains(t, html, "Demo of the billing module")
	assert.Contains(t, html, "Anas")
	assert.Contains(t, html, "inquiry #42")

	// Agenda block is omitted when empty, greeting falls back.
	html = svc.generateMeetingEmailHTML(&MeetingInvite{
		InquiryID:    7,
		ScheduleDate: "2025-03-14 11:00 AM",
		ScheduledBy:  "Anas",
	})
	assert.Contains(t, html, "Hello,")
	assert.NotContains(t, html, "Agenda")
}

func TestSendSkippedWhenDisabled(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: false, TimeoutSeconds: 5})
	assert.False(t, svc.IsEnabled())
	assert.NoError(t, svc.SendMeetingConfirmation("suresh@example.com", &MeetingInvite{
		InquiryID:    1,
		ScheduleDate: "2025-03-14 11:00 AM",
		ScheduledBy:  "Anas",
	}))
}

func TestSendFailsWhenMisconfigured(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: true, TimeoutSeconds: 5})
	err := svc.SendHTMLEmail("suresh@example.com", "subject", "", "body")
	assert.Error(t, err)
}
