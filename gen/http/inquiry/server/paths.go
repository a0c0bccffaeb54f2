// Code generated by goa v3.23.1, DO NOT EDIT.
//
// HTTP request path constructors for the inquiry service.
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package server

import (
	"fmt"
)

// SubmitFeedbackInquiryPath returns the URL path to the inquiry service submit_feedback HTTP endpoint.
func SubmitFeedbackInquiryPath() string {
	return "/api/feedback"
}

// SubmitFreeTrialInquiryPath returns the URL path to the inquiry service submit_free_trial HTTP endpoint.
func SubmitFreeTrialInquiryPath() string {
	return "/api/free-trial"
}

// ListInquiryPath returns the URL path to the inquiry service list HTTP endpoint.
func ListInquiryPath() string {
	return "/api/inquiries"
}

// GetInquiryPath returns the URL path to the inquiry service get HTTP endpoint.
func GetInquiryPath(id int) string {
	return fmt.Sprintf("/api/inquiries/%v", id)
}

// UpdateInquiryPath returns the URL path to the inquiry service update HTTP endpoint.
func UpdateInquiryPath(id int) string {
	return fmt.Sprintf("/api/inquiries/%v", id)
}

// DashboardInquiryPath returns the URL path to the inquiry service dashboard HTTP endpoint.
func DashboardInquiryPath() string {
	return "/api/inquiries/dashboard"
}

// ScheduleMeetingInquiryPath returns the URL path to the inquiry service schedule_meeting HTTP endpoint.
func ScheduleMeetingInquiryPath() string {
	return "/api/schedule-meeting"
}
