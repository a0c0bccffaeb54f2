// Code generated by goa v3.23.1, DO NOT EDIT.
//
// inquiry HTTP client types
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package client

import (
	inquiry "github.com/MohmedAnas/RB-WEB-sub000/gen/inquiry"
	inquiryviews "github.com/MohmedAnas/RB-WEB-sub000/gen/inquiry/views"
	goa "goa.design/goa/v3/pkg"
)

// SubmitFeedbackRequestBody is the type of the "inquiry" service
// "submit_feedback" endpoint HTTP request body.
type SubmitFeedbackRequestBody struct {
	// Enquiry type
	EnquiryType string `form:"enquiry_type" json:"enquiry_type" xml:"enquiry_type"`
	// Customer name
	Name string `form:"name" json:"name" xml:"name"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// What the customer is looking for
	Description string `form:"description" json:"description" xml:"description"`
}

// SubmitFreeTrialRequestBody is the type of the "inquiry" service
// "submit_free_trial" endpoint HTTP request body.
type SubmitFreeTrialRequestBody struct {
	// Customer name
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Customer city
	City *string `form:"city,omitempty" json:"city,omitempty" xml:"city,omitempty"`
	// Additional notes
	Query *string `form:"query,omitempty" json:"query,omitempty" xml:"query,omitempty"`
}

// UpdateRequestBody is the type of the "inquiry" service "update" endpoint
// HTTP request body.
type UpdateRequestBody struct {
	// New status
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
	// Drop disposition, accepted only when the resulting status is Dropped
	Disposition *string `form:"disposition,omitempty" json:"disposition,omitempty" xml:"disposition,omitempty"`
	// Employee to assign; empty string unassigns
	AssignedTo *string `form:"assigned_to,omitempty" json:"assigned_to,omitempty" xml:"assigned_to,omitempty"`
	// Explicit resolution timestamp (RFC3339); honored only with status Completed
	ResolvedAt *string `form:"resolved_at,omitempty" json:"resolved_at,omitempty" xml:"resolved_at,omitempty"`
}

// ScheduleMeetingRequestBody is the type of the "inquiry" service
// "schedule_meeting" endpoint HTTP request body.
type ScheduleMeetingRequestBody struct {
	// Inquiry the meeting concerns
	InquiryID int `form:"inquiry_id" json:"inquiry_id" xml:"inquiry_id"`
	// Recipient email address
	To string `form:"to" json:"to" xml:"to"`
	// Meeting date/time as shown to the customer
	ScheduleDate string `form:"schedule_date" json:"schedule_date" xml:"schedule_date"`
	// Meeting agenda
	ScheduleDesc *string `form:"schedule_desc,omitempty" json:"schedule_desc,omitempty" xml:"schedule_desc,omitempty"`
	// Employee scheduling the meeting
	ScheduledBy string `form:"scheduled_by" json:"scheduled_by" xml:"scheduled_by"`
	// Customer name for the greeting
	CustomerName *string `form:"customer_name,omitempty" json:"customer_name,omitempty" xml:"customer_name,omitempty"`
}

// SubmitFeedbackResponseBody is the type of the "inquiry" service
// "submit_feedback" endpoint HTTP response body.
type SubmitFeedbackResponseBody struct {
	// Inquiry ID
	ID *int `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Confirmation message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// SubmitFreeTrialResponseBody is the type of the "inquiry" service
// "submit_free_trial" endpoint HTTP response body.
type SubmitFreeTrialResponseBody struct {
	// Inquiry ID
	ID *int `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Confirmation message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// ListResponseBody is the type of the "inquiry" service "list" endpoint HTTP
// response body.
type ListResponseBody []*InquiryresultResponse

// GetResponseBody is the type of the "inquiry" service "get" endpoint HTTP
// response body.
type GetResponseBody struct {
	// Inquiry ID
	ID *int `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Enquiry type (Query, Demo, Renewal)
	EnquiryType *string `form:"enquiry_type,omitempty" json:"enquiry_type,omitempty" xml:"enquiry_type,omitempty"`
	// Customer name
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Inquiry description
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// Status (Pending, In Progress, Completed, Schedule, Dropped)
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
	// Drop disposition, set only while status is Dropped
	Disposition *string `form:"disposition,omitempty" json:"disposition,omitempty" xml:"disposition,omitempty"`
	// Assigned employee
	AssignedTo *string `form:"assigned_to,omitempty" json:"assigned_to,omitempty" xml:"assigned_to,omitempty"`
	// Derived priority (Hot, Recent, Cold, Old)
	Priority *string `form:"priority,omitempty" json:"priority,omitempty" xml:"priority,omitempty"`
	// Human-readable time to resolution, Completed inquiries only
	ResolutionTime *string `form:"resolution_time,omitempty" json:"resolution_time,omitempty" xml:"resolution_time,omitempty"`
	// Submission timestamp
	SubmittedAt *string `form:"submitted_at,omitempty" json:"submitted_at,omitempty" xml:"submitted_at,omitempty"`
	// Resolution timestamp, Completed inquiries only
	ResolvedAt *string `form:"resolved_at,omitempty" json:"resolved_at,omitempty" xml:"resolved_at,omitempty"`
	// Last update timestamp
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// UpdateResponseBody is the type of the "inquiry" service "update" endpoint
// HTTP response body.
type UpdateResponseBody struct {
	// Inquiry ID
	ID *int `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Enquiry type (Query, Demo, Renewal)
	EnquiryType *string `form:"enquiry_type,omitempty" json:"enquiry_type,omitempty" xml:"enquiry_type,omitempty"`
	// Customer name
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Inquiry description
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// Status (Pending, In Progress, Completed, Schedule, Dropped)
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
	// Drop disposition, set only while status is Dropped
	Disposition *string `form:"disposition,omitempty" json:"disposition,omitempty" xml:"disposition,omitempty"`
	// Assigned employee
	AssignedTo *string `form:"assigned_to,omitempty" json:"assigned_to,omitempty" xml:"assigned_to,omitempty"`
	// Derived priority (Hot, Recent, Cold, Old)
	Priority *string `form:"priority,omitempty" json:"priority,omitempty" xml:"priority,omitempty"`
	// Human-readable time to resolution, Completed inquiries only
	ResolutionTime *string `form:"resolution_time,omitempty" json:"resolution_time,omitempty" xml:"resolution_time,omitempty"`
	// Submission timestamp
	SubmittedAt *string `form:"submitted_at,omitempty" json:"submitted_at,omitempty" xml:"submitted_at,omitempty"`
	// Resolution timestamp, Completed inquiries only
	ResolvedAt *string `form:"resolved_at,omitempty" json:"resolved_at,omitempty" xml:"resolved_at,omitempty"`
	// Last update timestamp
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// DashboardResponseBody is the type of the "inquiry" service "dashboard"
// endpoint HTTP response body.
type DashboardResponseBody []*InquiryresultResponse

// ScheduleMeetingResponseBody is the type of the "inquiry" service
// "schedule_meeting" endpoint HTTP response body.
type ScheduleMeetingResponseBody struct {
	// Confirmation message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// SubmitFeedbackBadRequestResponseBody is the type of the "inquiry" service
// "submit_feedback" endpoint HTTP response body for the "bad_request" error.
type SubmitFeedbackBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// SubmitFeedbackUnavailableResponseBody is the type of the "inquiry" service
// "submit_feedback" endpoint HTTP response body for the "unavailable" error.
type SubmitFeedbackUnavailableResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// SubmitFreeTrialBadRequestResponseBody is the type of the "inquiry" service
// "submit_free_trial" endpoint HTTP response body for the "bad_request" error.
type SubmitFreeTrialBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// SubmitFreeTrialUnavailableResponseBody is the type of the "inquiry" service
// "submit_free_trial" endpoint HTTP response body for the "unavailable" error.
type SubmitFreeTrialUnavailableResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// ListUnauthorizedResponseBody is the type of the "inquiry" service "list"
// endpoint HTTP response body for the "unauthorized" error.
type ListUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// ListUnavailableResponseBody is the type of the "inquiry" service "list"
// endpoint HTTP response body for the "unavailable" error.
type ListUnavailableResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// GetNotFoundResponseBody is the type of the "inquiry" service "get" endpoint
// HTTP response body for the "not_found" error.
type GetNotFoundResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// GetUnauthorizedResponseBody is the type of the "inquiry" service "get"
// endpoint HTTP response body for the "unauthorized" error.
type GetUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// UpdateBadRequestResponseBody is the type of the "inquiry" service "update"
// endpoint HTTP response body for the "bad_request" error.
type UpdateBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// UpdateNotFoundResponseBody is the type of the "inquiry" service "update"
// endpoint HTTP response body for the "not_found" error.
type UpdateNotFoundResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// UpdateUnauthorizedResponseBody is the type of the "inquiry" service "update"
// endpoint HTTP response body for the "unauthorized" error.
type UpdateUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// DashboardBadRequestResponseBody is the type of the "inquiry" service
// "dashboard" endpoint HTTP response body for the "bad_request" error.
type DashboardBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// DashboardUnauthorizedResponseBody is the type of the "inquiry" service
// "dashboard" endpoint HTTP response body for the "unauthorized" error.
type DashboardUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// DashboardUnavailableResponseBody is the type of the "inquiry" service
// "dashboard" endpoint HTTP response body for the "unavailable" error.
type DashboardUnavailableResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// ScheduleMeetingBadRequestResponseBody is the type of the "inquiry" service
// "schedule_meeting" endpoint HTTP response body for the "bad_request" error.
type ScheduleMeetingBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// ScheduleMeetingNotFoundResponseBody is the type of the "inquiry" service
// "schedule_meeting" endpoint HTTP response body for the "not_found" error.
type ScheduleMeetingNotFoundResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// ScheduleMeetingUnauthorizedResponseBody is the type of the "inquiry" service
// "schedule_meeting" endpoint HTTP response body for the "unauthorized" error.
type ScheduleMeetingUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID *string `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
	// Is the error temporary?
	Temporary *bool `form:"temporary,omitempty" json:"temporary,omitempty" xml:"temporary,omitempty"`
	// Is the error a timeout?
	Timeout *bool `form:"timeout,omitempty" json:"timeout,omitempty" xml:"timeout,omitempty"`
	// Is the error a server-side fault?
	Fault *bool `form:"fault,omitempty" json:"fault,omitempty" xml:"fault,omitempty"`
}

// ScheduleMeetingMailFailureResponseBody is the type of the "inquiry" service
// "schedule_meeting" endpoint HTTP response body for the "mail_failure" error.
type ScheduleMeetingMailFailureResponseBody struct {
	// Error message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// InquiryresultResponse is used to define fields on response body types.
type InquiryresultResponse struct {
	// Inquiry ID
	ID *int `form:"id,omitempty" json:"id,omitempty" xml:"id,omitempty"`
	// Enquiry type (Query, Demo, Renewal)
	EnquiryType *string `form:"enquiry_type,omitempty" json:"enquiry_type,omitempty" xml:"enquiry_type,omitempty"`
	// Customer name
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Inquiry description
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// Status (Pending, In Progress, Completed, Schedule, Dropped)
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
	// Drop disposition, set only while status is Dropped
	Disposition *string `form:"disposition,omitempty" json:"disposition,omitempty" xml:"disposition,omitempty"`
	// Assigned employee
	AssignedTo *string `form:"assigned_to,omitempty" json:"assigned_to,omitempty" xml:"assigned_to,omitempty"`
	// Derived priority (Hot, Recent, Cold, Old)
	Priority *string `form:"priority,omitempty" json:"priority,omitempty" xml:"priority,omitempty"`
	// Human-readable time to resolution, Completed inquiries only
	ResolutionTime *string `form:"resolution_time,omitempty" json:"resolution_time,omitempty" xml:"resolution_time,omitempty"`
	// Submission timestamp
	SubmittedAt *string `form:"submitted_at,omitempty" json:"submitted_at,omitempty" xml:"submitted_at,omitempty"`
	// Resolution timestamp, Completed inquiries only
	ResolvedAt *string `form:"resolved_at,omitempty" json:"resolved_at,omitempty" xml:"resolved_at,omitempty"`
	// Last update timestamp
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// NewSubmitFeedbackRequestBody builds the HTTP request body from the payload
// of the "submit_feedback" endpoint of the "inquiry" service.
func NewSubmitFeedbackRequestBody(p *inquiry.SubmitFeedbackPayload) *SubmitFeedbackRequestBody {
	body := &SubmitFeedbackRequestBody{
		EnquiryType: p.EnquiryType,
		Name:        p.Name,
		Phone:       p.Phone,
		Email:       p.Email,
		Description: p.Description,
	}
	{
		var zero string
		if body.EnquiryType == zero {
			body.EnquiryType = "Query"
		}
	}
	return body
}

// NewSubmitFreeTrialRequestBody builds the HTTP request body from the payload
// of the "submit_free_trial" endpoint of the "inquiry" service.
func NewSubmitFreeTrialRequestBody(p *inquiry.SubmitFreeTrialPayload) *SubmitFreeTrialRequestBody {
	body := &SubmitFreeTrialRequestBody{
		Name:  p.Name,
		Phone: p.Phone,
		Email: p.Email,
		City:  p.City,
		Query: p.Query,
	}
	return body
}

// NewUpdateRequestBody builds the HTTP request body from the payload of the
// "update" endpoint of the "inquiry" service.
func NewUpdateRequestBody(p *inquiry.UpdateInquiryPayload) *UpdateRequestBody {
	body := &UpdateRequestBody{
		Status:      p.Status,
		Disposition: p.Disposition,
		AssignedTo:  p.AssignedTo,
		ResolvedAt:  p.ResolvedAt,
	}
	return body
}

// NewScheduleMeetingRequestBody builds the HTTP request body from the payload
// of the "schedule_meeting" endpoint of the "inquiry" service.
func NewScheduleMeetingRequestBody(p *inquiry.ScheduleMeetingPayload) *ScheduleMeetingRequestBody {
	body := &ScheduleMeetingRequestBody{
		InquiryID:    p.InquiryID,
		To:           p.To,
		ScheduleDate: p.ScheduleDate,
		ScheduleDesc: p.ScheduleDesc,
		ScheduledBy:  p.ScheduledBy,
		CustomerName: p.CustomerName,
	}
	return body
}

// NewSubmitFeedbackSubmitresultOK builds a "inquiry" service "submit_feedback"
// endpoint result from a HTTP "OK" response.
func NewSubmitFeedbackSubmitresultOK(body *SubmitFeedbackResponseBody) *inquiryviews.SubmitresultView {
	v := &inquiryviews.SubmitresultView{
		ID:      body.ID,
		Message: body.Message,
	}

	return v
}

// NewSubmitFeedbackBadRequest builds a inquiry service submit_feedback
// endpoint bad_request error.
func NewSubmitFeedbackBadRequest(body *SubmitFeedbackBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewSubmitFeedbackUnavailable builds a inquiry service submit_feedback
// endpoint unavailable error.
func NewSubmitFeedbackUnavailable(body *SubmitFeedbackUnavailableResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewSubmitFreeTrialSubmitresultOK builds a "inquiry" service
// "submit_free_trial" endpoint result from a HTTP "OK" response.
func NewSubmitFreeTrialSubmitresultOK(body *SubmitFreeTrialResponseBody) *inquiryviews.SubmitresultView {
	v := &inquiryviews.SubmitresultView{
		ID:      body.ID,
		Message: body.Message,
	}

	return v
}

// NewSubmitFreeTrialBadRequest builds a inquiry service submit_free_trial
// endpoint bad_request error.
func NewSubmitFreeTrialBadRequest(body *SubmitFreeTrialBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewSubmitFreeTrialUnavailable builds a inquiry service submit_free_trial
// endpoint unavailable error.
func NewSubmitFreeTrialUnavailable(body *SubmitFreeTrialUnavailableResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewListInquiryresultOK builds a "inquiry" service "list" endpoint result
// from a HTTP "OK" response.
func NewListInquiryresultOK(body []*InquiryresultResponse) []*inquiry.Inquiryresult {
	v := make([]*inquiry.Inquiryresult, len(body))
	for i, val := range body {
		if val == nil {
			v[i] = nil
			continue
		}
		v[i] = unmarshalInquiryresultResponseToInquiryInquiryresult(val)
	}

	return v
}

// NewListUnauthorized builds a inquiry service list endpoint unauthorized
// error.
func NewListUnauthorized(body *ListUnauthorizedResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewListUnavailable builds a inquiry service list endpoint unavailable error.
func NewListUnavailable(body *ListUnavailableResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewGetInquiryresultOK builds a "inquiry" service "get" endpoint result from
// a HTTP "OK" response.
func NewGetInquiryresultOK(body *GetResponseBody) *inquiryviews.InquiryresultView {
	v := &inquiryviews.InquiryresultView{
		ID:             body.ID,
		EnquiryType:    body.EnquiryType,
		Name:           body.Name,
		Phone:          body.Phone,
		Email:          body.Email,
		Description:    body.Description,
		Status:         body.Status,
		Disposition:    body.Disposition,
		AssignedTo:     body.AssignedTo,
		Priority:       body.Priority,
		ResolutionTime: body.ResolutionTime,
		SubmittedAt:    body.SubmittedAt,
		ResolvedAt:     body.ResolvedAt,
		UpdatedAt:      body.UpdatedAt,
	}

	return v
}

// NewGetNotFound builds a inquiry service get endpoint not_found error.
func NewGetNotFound(body *GetNotFoundResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewGetUnauthorized builds a inquiry service get endpoint unauthorized error.
func NewGetUnauthorized(body *GetUnauthorizedResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewUpdateInquiryresultOK builds a "inquiry" service "update" endpoint result
// from a HTTP "OK" response.
func NewUpdateInquiryresultOK(body *UpdateResponseBody) *inquiryviews.InquiryresultView {
	v := &inquiryviews.InquiryresultView{
		ID:             body.ID,
		EnquiryType:    body.EnquiryType,
		Name:           body.Name,
		Phone:          body.Phone,
		Email:          body.Email,
		Description:    body.Description,
		Status:         body.Status,
		Disposition:    body.Disposition,
		AssignedTo:     body.AssignedTo,
		Priority:       body.Priority,
		ResolutionTime: body.ResolutionTime,
		SubmittedAt:    body.SubmittedAt,
		ResolvedAt:     body.ResolvedAt,
		UpdatedAt:      body.UpdatedAt,
	}

	return v
}

// NewUpdateBadRequest builds a inquiry service update endpoint bad_request
// error.
func NewUpdateBadRequest(body *UpdateBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewUpdateNotFound builds a inquiry service update endpoint not_found error.
func NewUpdateNotFound(body *UpdateNotFoundResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewUpdateUnauthorized builds a inquiry service update endpoint unauthorized
// error.
func NewUpdateUnauthorized(body *UpdateUnauthorizedResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewDashboardInquiryresultOK builds a "inquiry" service "dashboard" endpoint
// result from a HTTP "OK" response.
func NewDashboardInquiryresultOK(body []*InquiryresultResponse) []*inquiry.Inquiryresult {
	v := make([]*inquiry.Inquiryresult, len(body))
	for i, val := range body {
		if val == nil {
			v[i] = nil
			continue
		}
		v[i] = unmarshalInquiryresultResponseToInquiryInquiryresult(val)
	}

	return v
}

// NewDashboardBadRequest builds a inquiry service dashboard endpoint
// bad_request error.
func NewDashboardBadRequest(body *DashboardBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewDashboardUnauthorized builds a inquiry service dashboard endpoint
// unauthorized error.
func NewDashboardUnauthorized(body *DashboardUnauthorizedResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewDashboardUnavailable builds a inquiry service dashboard endpoint
// unavailable error.
func NewDashboardUnavailable(body *DashboardUnavailableResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewScheduleMeetingMessageresultOK builds a "inquiry" service
// "schedule_meeting" endpoint result from a HTTP "OK" response.
func NewScheduleMeetingMessageresultOK(body *ScheduleMeetingResponseBody) *inquiryviews.MessageresultView {
	v := &inquiryviews.MessageresultView{
		Message: body.Message,
	}

	return v
}

// NewScheduleMeetingBadRequest builds a inquiry service schedule_meeting
// endpoint bad_request error.
func NewScheduleMeetingBadRequest(body *ScheduleMeetingBadRequestResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewScheduleMeetingNotFound builds a inquiry service schedule_meeting
// endpoint not_found error.
func NewScheduleMeetingNotFound(body *ScheduleMeetingNotFoundResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewScheduleMeetingUnauthorized builds a inquiry service schedule_meeting
// endpoint unauthorized error.
func NewScheduleMeetingUnauthorized(body *ScheduleMeetingUnauthorizedResponseBody) *goa.ServiceError {
	v := &goa.ServiceError{
		Name:      *body.Name,
		ID:        *body.ID,
		Message:   *body.Message,
		Temporary: *body.Temporary,
		Timeout:   *body.Timeout,
		Fault:     *body.Fault,
	}

	return v
}

// NewScheduleMeetingMailFailure builds a inquiry service schedule_meeting
// endpoint mail_failure error.
func NewScheduleMeetingMailFailure(body *ScheduleMeetingMailFailureResponseBody) *inquiry.MailFailure {
	v := &inquiry.MailFailure{
		Message: body.Message,
	}

	return v
}

// ValidateSubmitFeedbackBadRequestResponseBody runs the validations defined on
// submit_feedback_bad_request_response_body
func ValidateSubmitFeedbackBadRequestResponseBody(body *SubmitFeedbackBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateSubmitFeedbackUnavailableResponseBody runs the validations defined
// on submit_feedback_unavailable_response_body
func ValidateSubmitFeedbackUnavailableResponseBody(body *SubmitFeedbackUnavailableResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateSubmitFreeTrialBadRequestResponseBody runs the validations defined
// on submit_free_trial_bad_request_response_body
func ValidateSubmitFreeTrialBadRequestResponseBody(body *SubmitFreeTrialBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateSubmitFreeTrialUnavailableResponseBody runs the validations defined
// on submit_free_trial_unavailable_response_body
func ValidateSubmitFreeTrialUnavailableResponseBody(body *SubmitFreeTrialUnavailableResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateListUnauthorizedResponseBody runs the validations defined on
// list_unauthorized_response_body
func ValidateListUnauthorizedResponseBody(body *ListUnauthorizedResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateListUnavailableResponseBody runs the validations defined on
// list_unavailable_response_body
func ValidateListUnavailableResponseBody(body *ListUnavailableResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateGetNotFoundResponseBody runs the validations defined on
// get_not_found_response_body
func ValidateGetNotFoundResponseBody(body *GetNotFoundResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateGetUnauthorizedResponseBody runs the validations defined on
// get_unauthorized_response_body
func ValidateGetUnauthorizedResponseBody(body *GetUnauthorizedResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateUpdateBadRequestResponseBody runs the validations defined on
// update_bad_request_response_body
func ValidateUpdateBadRequestResponseBody(body *UpdateBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateUpdateNotFoundResponseBody runs the validations defined on
// update_not_found_response_body
func ValidateUpdateNotFoundResponseBody(body *UpdateNotFoundResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateUpdateUnauthorizedResponseBody runs the validations defined on
// update_unauthorized_response_body
func ValidateUpdateUnauthorizedResponseBody(body *UpdateUnauthorizedResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateDashboardBadRequestResponseBody runs the validations defined on
// dashboard_bad_request_response_body
func ValidateDashboardBadRequestResponseBody(body *DashboardBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateDashboardUnauthorizedResponseBody runs the validations defined on
// dashboard_unauthorized_response_body
func ValidateDashboardUnauthorizedResponseBody(body *DashboardUnauthorizedResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateDashboardUnavailableResponseBody runs the validations defined on
// dashboard_unavailable_response_body
func ValidateDashboardUnavailableResponseBody(body *DashboardUnavailableResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateScheduleMeetingBadRequestResponseBody runs the validations defined
// on schedule_meeting_bad_request_response_body
func ValidateScheduleMeetingBadRequestResponseBody(body *ScheduleMeetingBadRequestResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateScheduleMeetingNotFoundResponseBody runs the validations defined on
// schedule_meeting_not_found_response_body
func ValidateScheduleMeetingNotFoundResponseBody(body *ScheduleMeetingNotFoundResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateScheduleMeetingUnauthorizedResponseBody runs the validations defined
// on schedule_meeting_unauthorized_response_body
func ValidateScheduleMeetingUnauthorizedResponseBody(body *ScheduleMeetingUnauthorizedResponseBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "body"))
	}
	if body.Temporary == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("temporary", "body"))
	}
	if body.Timeout == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("timeout", "body"))
	}
	if body.Fault == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("fault", "body"))
	}
	return
}

// ValidateInquiryresultResponse runs the validations defined on
// InquiryresultResponse
func ValidateInquiryresultResponse(body *InquiryresultResponse) (err error) {
	if body.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "body"))
	}
	if body.EnquiryType == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("enquiry_type", "body"))
	}
	if body.Status == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("status", "body"))
	}
	if body.Priority == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("priority", "body"))
	}
	if body.SubmittedAt == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("submitted_at", "body"))
	}
	return
}
