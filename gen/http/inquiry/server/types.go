// Code generated by goa v3.23.1, DO NOT EDIT.
//
// inquiry HTTP server types
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package server

import (
	"unicode/utf8"

	inquiry "github.com/MohmedAnas/RB-WEB-sub000/gen/inquiry"
	inquiryviews "github.com/MohmedAnas/RB-WEB-sub000/gen/inquiry/views"
	goa "goa.design/goa/v3/pkg"
)

// SubmitFeedbackRequestBody is the type of the "inquiry" service
// "submit_feedback" endpoint HTTP request body.
type SubmitFeedbackRequestBody struct {
	// Enquiry type
	EnquiryType *string `form:"enquiry_type,omitempty" json:"enquiry_type,omitempty" xml:"enquiry_type,omitempty"`
	// Customer name
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// What the customer is looking for
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
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
	InquiryID *int `form:"inquiry_id,omitempty" json:"inquiry_id,omitempty" xml:"inquiry_id,omitempty"`
	// Recipient email address
	To *string `form:"to,omitempty" json:"to,omitempty" xml:"to,omitempty"`
	// Meeting date/time as shown to the customer
	ScheduleDate *string `form:"schedule_date,omitempty" json:"schedule_date,omitempty" xml:"schedule_date,omitempty"`
	// Meeting agenda
	ScheduleDesc *string `form:"schedule_desc,omitempty" json:"schedule_desc,omitempty" xml:"schedule_desc,omitempty"`
	// Employee scheduling the meeting
	ScheduledBy *string `form:"scheduled_by,omitempty" json:"scheduled_by,omitempty" xml:"scheduled_by,omitempty"`
	// Customer name for the greeting
	CustomerName *string `form:"customer_name,omitempty" json:"customer_name,omitempty" xml:"customer_name,omitempty"`
}

// SubmitFeedbackResponseBody is the type of the "inquiry" service
// "submit_feedback" endpoint HTTP response body.
type SubmitFeedbackResponseBody struct {
	// Inquiry ID
	ID int `form:"id" json:"id" xml:"id"`
	// Confirmation message
	Message string `form:"message" json:"message" xml:"message"`
}

// SubmitFreeTrialResponseBody is the type of the "inquiry" service
// "submit_free_trial" endpoint HTTP response body.
type SubmitFreeTrialResponseBody struct {
	// Inquiry ID
	ID int `form:"id" json:"id" xml:"id"`
	// Confirmation message
	Message string `form:"message" json:"message" xml:"message"`
}

// ListResponseBody is the type of the "inquiry" service "list" endpoint HTTP
// response body.
type ListResponseBody []*InquiryresultResponse

// GetResponseBody is the type of the "inquiry" service "get" endpoint HTTP
// response body.
type GetResponseBody struct {
	// Inquiry ID
	ID int `form:"id" json:"id" xml:"id"`
	// Enquiry type (Query, Demo, Renewal)
	EnquiryType string `form:"enquiry_type" json:"enquiry_type" xml:"enquiry_type"`
	// Customer name
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Inquiry description
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// Status (Pending, In Progress, Completed, Schedule, Dropped)
	Status string `form:"status" json:"status" xml:"status"`
	// Drop disposition, set only while status is Dropped
	Disposition *string `form:"disposition,omitempty" json:"disposition,omitempty" xml:"disposition,omitempty"`
	// Assigned employee
	AssignedTo *string `form:"assigned_to,omitempty" json:"assigned_to,omitempty" xml:"assigned_to,omitempty"`
	// Derived priority (Hot, Recent, Cold, Old)
	Priority string `form:"priority" json:"priority" xml:"priority"`
	// Human-readable time to resolution, Completed inquiries only
	ResolutionTime *string `form:"resolution_time,omitempty" json:"resolution_time,omitempty" xml:"resolution_time,omitempty"`
	// Submission timestamp
	SubmittedAt string `form:"submitted_at" json:"submitted_at" xml:"submitted_at"`
	// Resolution timestamp, Completed inquiries only
	ResolvedAt *string `form:"resolved_at,omitempty" json:"resolved_at,omitempty" xml:"resolved_at,omitempty"`
	// Last update timestamp
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// UpdateResponseBody is the type of the "inquiry" service "update" endpoint
// HTTP response body.
type UpdateResponseBody struct {
	// Inquiry ID
	ID int `form:"id" json:"id" xml:"id"`
	// Enquiry type (Query, Demo, Renewal)
	EnquiryType string `form:"enquiry_type" json:"enquiry_type" xml:"enquiry_type"`
	// Customer name
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Inquiry description
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// Status (Pending, In Progress, Completed, Schedule, Dropped)
	Status string `form:"status" json:"status" xml:"status"`
	// Drop disposition, set only while status is Dropped
	Disposition *string `form:"disposition,omitempty" json:"disposition,omitempty" xml:"disposition,omitempty"`
	// Assigned employee
	AssignedTo *string `form:"assigned_to,omitempty" json:"assigned_to,omitempty" xml:"assigned_to,omitempty"`
	// Derived priority (Hot, Recent, Cold, Old)
	Priority string `form:"priority" json:"priority" xml:"priority"`
	// Human-readable time to resolution, Completed inquiries only
	ResolutionTime *string `form:"resolution_time,omitempty" json:"resolution_time,omitempty" xml:"resolution_time,omitempty"`
	// Submission timestamp
	SubmittedAt string `form:"submitted_at" json:"submitted_at" xml:"submitted_at"`
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
	Message string `form:"message" json:"message" xml:"message"`
}

// SubmitFeedbackBadRequestResponseBody is the type of the "inquiry" service
// "submit_feedback" endpoint HTTP response body for the "bad_request" error.
type SubmitFeedbackBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// SubmitFeedbackUnavailableResponseBody is the type of the "inquiry" service
// "submit_feedback" endpoint HTTP response body for the "unavailable" error.
type SubmitFeedbackUnavailableResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// SubmitFreeTrialBadRequestResponseBody is the type of the "inquiry" service
// "submit_free_trial" endpoint HTTP response body for the "bad_request" error.
type SubmitFreeTrialBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// SubmitFreeTrialUnavailableResponseBody is the type of the "inquiry" service
// "submit_free_trial" endpoint HTTP response body for the "unavailable" error.
type SubmitFreeTrialUnavailableResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// ListUnauthorizedResponseBody is the type of the "inquiry" service "list"
// endpoint HTTP response body for the "unauthorized" error.
type ListUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// ListUnavailableResponseBody is the type of the "inquiry" service "list"
// endpoint HTTP response body for the "unavailable" error.
type ListUnavailableResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// GetNotFoundResponseBody is the type of the "inquiry" service "get" endpoint
// HTTP response body for the "not_found" error.
type GetNotFoundResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// GetUnauthorizedResponseBody is the type of the "inquiry" service "get"
// endpoint HTTP response body for the "unauthorized" error.
type GetUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// UpdateBadRequestResponseBody is the type of the "inquiry" service "update"
// endpoint HTTP response body for the "bad_request" error.
type UpdateBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// UpdateNotFoundResponseBody is the type of the "inquiry" service "update"
// endpoint HTTP response body for the "not_found" error.
type UpdateNotFoundResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// UpdateUnauthorizedResponseBody is the type of the "inquiry" service "update"
// endpoint HTTP response body for the "unauthorized" error.
type UpdateUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// DashboardBadRequestResponseBody is the type of the "inquiry" service
// "dashboard" endpoint HTTP response body for the "bad_request" error.
type DashboardBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// DashboardUnauthorizedResponseBody is the type of the "inquiry" service
// "dashboard" endpoint HTTP response body for the "unauthorized" error.
type DashboardUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// DashboardUnavailableResponseBody is the type of the "inquiry" service
// "dashboard" endpoint HTTP response body for the "unavailable" error.
type DashboardUnavailableResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// ScheduleMeetingBadRequestResponseBody is the type of the "inquiry" service
// "schedule_meeting" endpoint HTTP response body for the "bad_request" error.
type ScheduleMeetingBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// ScheduleMeetingNotFoundResponseBody is the type of the "inquiry" service
// "schedule_meeting" endpoint HTTP response body for the "not_found" error.
type ScheduleMeetingNotFoundResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// ScheduleMeetingUnauthorizedResponseBody is the type of the "inquiry" service
// "schedule_meeting" endpoint HTTP response body for the "unauthorized" error.
type ScheduleMeetingUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
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
	ID int `form:"id" json:"id" xml:"id"`
	// Enquiry type (Query, Demo, Renewal)
	EnquiryType string `form:"enquiry_type" json:"enquiry_type" xml:"enquiry_type"`
	// Customer name
	Name *string `form:"name,omitempty" json:"name,omitempty" xml:"name,omitempty"`
	// Phone number
	Phone *string `form:"phone,omitempty" json:"phone,omitempty" xml:"phone,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Inquiry description
	Description *string `form:"description,omitempty" json:"description,omitempty" xml:"description,omitempty"`
	// Status (Pending, In Progress, Completed, Schedule, Dropped)
	Status string `form:"status" json:"status" xml:"status"`
	// Drop disposition, set only while status is Dropped
	Disposition *string `form:"disposition,omitempty" json:"disposition,omitempty" xml:"disposition,omitempty"`
	// Assigned employee
	AssignedTo *string `form:"assigned_to,omitempty" json:"assigned_to,omitempty" xml:"assigned_to,omitempty"`
	// Derived priority (Hot, Recent, Cold, Old)
	Priority string `form:"priority" json:"priority" xml:"priority"`
	// Human-readable time to resolution, Completed inquiries only
	ResolutionTime *string `form:"resolution_time,omitempty" json:"resolution_time,omitempty" xml:"resolution_time,omitempty"`
	// Submission timestamp
	SubmittedAt string `form:"submitted_at" json:"submitted_at" xml:"submitted_at"`
	// Resolution timestamp, Completed inquiries only
	ResolvedAt *string `form:"resolved_at,omitempty" json:"resolved_at,omitempty" xml:"resolved_at,omitempty"`
	// Last update timestamp
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
}

// NewSubmitFeedbackResponseBody builds the HTTP response body from the result
// of the "submit_feedback" endpoint of the "inquiry" service.
func NewSubmitFeedbackResponseBody(res *inquiryviews.SubmitresultView) *SubmitFeedbackResponseBody {
	body := &SubmitFeedbackResponseBody{
		ID:      *res.ID,
		Message: *res.Message,
	}
	return body
}

// NewSubmitFreeTrialResponseBody builds the HTTP response body from the result
// of the "submit_free_trial" endpoint of the "inquiry" service.
func NewSubmitFreeTrialResponseBody(res *inquiryviews.SubmitresultView) *SubmitFreeTrialResponseBody {
	body := &SubmitFreeTrialResponseBody{
		ID:      *res.ID,
		Message: *res.Message,
	}
	return body
}

// NewListResponseBody builds the HTTP response body from the result of the
// "list" endpoint of the "inquiry" service.
func NewListResponseBody(res []*inquiry.Inquiryresult) ListResponseBody {
	body := make([]*InquiryresultResponse, len(res))
	for i, val := range res {
		if val == nil {
			body[i] = nil
			continue
		}
		body[i] = marshalInquiryInquiryresultToInquiryresultResponse(val)
	}
	return body
}

// NewGetResponseBody builds the HTTP response body from the result of the
// "get" endpoint of the "inquiry" service.
func NewGetResponseBody(res *inquiryviews.InquiryresultView) *GetResponseBody {
	body := &GetResponseBody{
		ID:             *res.ID,
		EnquiryType:    *res.EnquiryType,
		Name:           res.Name,
		Phone:          res.Phone,
		Email:          res.Email,
		Description:    res.Description,
		Status:         *res.Status,
		Disposition:    res.Disposition,
		AssignedTo:     res.AssignedTo,
		Priority:       *res.Priority,
		ResolutionTime: res.ResolutionTime,
		SubmittedAt:    *res.SubmittedAt,
		ResolvedAt:     res.ResolvedAt,
		UpdatedAt:      res.UpdatedAt,
	}
	return body
}

// NewUpdateResponseBody builds the HTTP response body from the result of the
// "update" endpoint of the "inquiry" service.
func NewUpdateResponseBody(res *inquiryviews.InquiryresultView) *UpdateResponseBody {
	body := &UpdateResponseBody{
		ID:             *res.ID,
		EnquiryType:    *res.EnquiryType,
		Name:           res.Name,
		Phone:          res.Phone,
		Email:          res.Email,
		Description:    res.Description,
		Status:         *res.Status,
		Disposition:    res.Disposition,
		AssignedTo:     res.AssignedTo,
		Priority:       *res.Priority,
		ResolutionTime: res.ResolutionTime,
		SubmittedAt:    *res.SubmittedAt,
		ResolvedAt:     res.ResolvedAt,
		UpdatedAt:      res.UpdatedAt,
	}
	return body
}

// NewDashboardResponseBody builds the HTTP response body from the result of
// the "dashboard" endpoint of the "inquiry" service.
func NewDashboardResponseBody(res []*inquiry.Inquiryresult) DashboardResponseBody {
	body := make([]*InquiryresultResponse, len(res))
	for i, val := range res {
		if val == nil {
			body[i] = nil
			continue
		}
		body[i] = marshalInquiryInquiryresultToInquiryresultResponse(val)
	}
	return body
}

// NewScheduleMeetingResponseBody builds the HTTP response body from the result
// of the "schedule_meeting" endpoint of the "inquiry" service.
func NewScheduleMeetingResponseBody(res *inquiryviews.MessageresultView) *ScheduleMeetingResponseBody {
	body := &ScheduleMeetingResponseBody{
		Message: *res.Message,
	}
	return body
}

// NewSubmitFeedbackBadRequestResponseBody builds the HTTP response body from
// the result of the "submit_feedback" endpoint of the "inquiry" service.
func NewSubmitFeedbackBadRequestResponseBody(res *goa.ServiceError) *SubmitFeedbackBadRequestResponseBody {
	body := &SubmitFeedbackBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewSubmitFeedbackUnavailableResponseBody builds the HTTP response body from
// the result of the "submit_feedback" endpoint of the "inquiry" service.
func NewSubmitFeedbackUnavailableResponseBody(res *goa.ServiceError) *SubmitFeedbackUnavailableResponseBody {
	body := &SubmitFeedbackUnavailableResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewSubmitFreeTrialBadRequestResponseBody builds the HTTP response body from
// the result of the "submit_free_trial" endpoint of the "inquiry" service.
func NewSubmitFreeTrialBadRequestResponseBody(res *goa.ServiceError) *SubmitFreeTrialBadRequestResponseBody {
	body := &SubmitFreeTrialBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewSubmitFreeTrialUnavailableResponseBody builds the HTTP response body from
// the result of the "submit_free_trial" endpoint of the "inquiry" service.
func NewSubmitFreeTrialUnavailableResponseBody(res *goa.ServiceError) *SubmitFreeTrialUnavailableResponseBody {
	body := &SubmitFreeTrialUnavailableResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewListUnauthorizedResponseBody builds the HTTP response body from the
// result of the "list" endpoint of the "inquiry" service.
func NewListUnauthorizedResponseBody(res *goa.ServiceError) *ListUnauthorizedResponseBody {
	body := &ListUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewListUnavailableResponseBody builds the HTTP response body from the result
// of the "list" endpoint of the "inquiry" service.
func NewListUnavailableResponseBody(res *goa.ServiceError) *ListUnavailableResponseBody {
	body := &ListUnavailableResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewGetNotFoundResponseBody builds the HTTP response body from the result of
// the "get" endpoint of the "inquiry" service.
func NewGetNotFoundResponseBody(res *goa.ServiceError) *GetNotFoundResponseBody {
	body := &GetNotFoundResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewGetUnauthorizedResponseBody builds the HTTP response body from the result
// of the "get" endpoint of the "inquiry" service.
func NewGetUnauthorizedResponseBody(res *goa.ServiceError) *GetUnauthorizedResponseBody {
	body := &GetUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewUpdateBadRequestResponseBody builds the HTTP response body from the
// result of the "update" endpoint of the "inquiry" service.
func NewUpdateBadRequestResponseBody(res *goa.ServiceError) *UpdateBadRequestResponseBody {
	body := &UpdateBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewUpdateNotFoundResponseBody builds the HTTP response body from the result
// of the "update" endpoint of the "inquiry" service.
func NewUpdateNotFoundResponseBody(res *goa.ServiceError) *UpdateNotFoundResponseBody {
	body := &UpdateNotFoundResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewUpdateUnauthorizedResponseBody builds the HTTP response body from the
// result of the "update" endpoint of the "inquiry" service.
func NewUpdateUnauthorizedResponseBody(res *goa.ServiceError) *UpdateUnauthorizedResponseBody {
	body := &UpdateUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewDashboardBadRequestResponseBody builds the HTTP response body from the
// result of the "dashboard" endpoint of the "inquiry" service.
func NewDashboardBadRequestResponseBody(res *goa.ServiceError) *DashboardBadRequestResponseBody {
	body := &DashboardBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewDashboardUnauthorizedResponseBody builds the HTTP response body from the
// result of the "dashboard" endpoint of the "inquiry" service.
func NewDashboardUnauthorizedResponseBody(res *goa.ServiceError) *DashboardUnauthorizedResponseBody {
	body := &DashboardUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewDashboardUnavailableResponseBody builds the HTTP response body from the
// result of the "dashboard" endpoint of the "inquiry" service.
func NewDashboardUnavailableResponseBody(res *goa.ServiceError) *DashboardUnavailableResponseBody {
	body := &DashboardUnavailableResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewScheduleMeetingBadRequestResponseBody builds the HTTP response body from
// the result of the "schedule_meeting" endpoint of the "inquiry" service.
func NewScheduleMeetingBadRequestResponseBody(res *goa.ServiceError) *ScheduleMeetingBadRequestResponseBody {
	body := &ScheduleMeetingBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewScheduleMeetingNotFoundResponseBody builds the HTTP response body from
// the result of the "schedule_meeting" endpoint of the "inquiry" service.
func NewScheduleMeetingNotFoundResponseBody(res *goa.ServiceError) *ScheduleMeetingNotFoundResponseBody {
	body := &ScheduleMeetingNotFoundResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewScheduleMeetingUnauthorizedResponseBody builds the HTTP response body
// from the result of the "schedule_meeting" endpoint of the "inquiry" service.
func NewScheduleMeetingUnauthorizedResponseBody(res *goa.ServiceError) *ScheduleMeetingUnauthorizedResponseBody {
	body := &ScheduleMeetingUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewScheduleMeetingMailFailureResponseBody builds the HTTP response body from
// the result of the "schedule_meeting" endpoint of the "inquiry" service.
func NewScheduleMeetingMailFailureResponseBody(res *inquiry.MailFailure) *ScheduleMeetingMailFailureResponseBody {
	body := &ScheduleMeetingMailFailureResponseBody{
		Message: res.Message,
	}
	return body
}

// NewSubmitFeedbackPayload builds a inquiry service submit_feedback endpoint
// payload.
func NewSubmitFeedbackPayload(body *SubmitFeedbackRequestBody) *inquiry.SubmitFeedbackPayload {
	v := &inquiry.SubmitFeedbackPayload{
		Name:        *body.Name,
		Phone:       body.Phone,
		Email:       body.Email,
		Description: *body.Description,
	}
	if body.EnquiryType != nil {
		v.EnquiryType = *body.EnquiryType
	}
	if body.EnquiryType == nil {
		v.EnquiryType = "Query"
	}

	return v
}

// NewSubmitFreeTrialPayload builds a inquiry service submit_free_trial
// endpoint payload.
func NewSubmitFreeTrialPayload(body *SubmitFreeTrialRequestBody) *inquiry.SubmitFreeTrialPayload {
	v := &inquiry.SubmitFreeTrialPayload{
		Name:  body.Name,
		Phone: body.Phone,
		Email: body.Email,
		City:  body.City,
		Query: body.Query,
	}

	return v
}

// NewListInquiriesPayload builds a inquiry service list endpoint payload.
func NewListInquiriesPayload(token *string) *inquiry.ListInquiriesPayload {
	v := &inquiry.ListInquiriesPayload{}
	v.Token = token

	return v
}

// NewGetInquiryPayload builds a inquiry service get endpoint payload.
func NewGetInquiryPayload(id int, token *string) *inquiry.GetInquiryPayload {
	v := &inquiry.GetInquiryPayload{}
	v.ID = id
	v.Token = token

	return v
}

// NewUpdateInquiryPayload builds a inquiry service update endpoint payload.
func NewUpdateInquiryPayload(body *UpdateRequestBody, id int, token *string) *inquiry.UpdateInquiryPayload {
	v := &inquiry.UpdateInquiryPayload{
		Status:      body.Status,
		Disposition: body.Disposition,
		AssignedTo:  body.AssignedTo,
		ResolvedAt:  body.ResolvedAt,
	}
	v.ID = id
	v.Token = token

	return v
}

// NewDashboardPayload builds a inquiry service dashboard endpoint payload.
func NewDashboardPayload(enquiryType string, period string, startDate *string, endDate *string, sort string, includeHidden bool, token *string) *inquiry.DashboardPayload {
	v := &inquiry.DashboardPayload{}
	v.EnquiryType = enquiryType
	v.Period = period
	v.StartDate = startDate
	v.EndDate = endDate
	v.Sort = sort
	v.IncludeHidden = includeHidden
	v.Token = token

	return v
}

// NewScheduleMeetingPayload builds a inquiry service schedule_meeting endpoint
// payload.
func NewScheduleMeetingPayload(body *ScheduleMeetingRequestBody, token *string) *inquiry.ScheduleMeetingPayload {
	v := &inquiry.ScheduleMeetingPayload{
		InquiryID:    *body.InquiryID,
		To:           *body.To,
		ScheduleDate: *body.ScheduleDate,
		ScheduleDesc: body.ScheduleDesc,
		ScheduledBy:  *body.ScheduledBy,
		CustomerName: body.CustomerName,
	}
	v.Token = token

	return v
}

// ValidateSubmitFeedbackRequestBody runs the validations defined on
// submit_feedback_request_body
func ValidateSubmitFeedbackRequestBody(body *SubmitFeedbackRequestBody) (err error) {
	if body.Name == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("name", "body"))
	}
	if body.Description == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("description", "body"))
	}
	if body.EnquiryType != nil {
		if !(*body.EnquiryType == "Query" || *body.EnquiryType == "Demo" || *body.EnquiryType == "Renewal") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.enquiry_type", *body.EnquiryType, []any{"Query", "Demo", "Renewal"}))
		}
	}
	if body.Name != nil {
		if utf8.RuneCountInString(*body.Name) < 2 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", *body.Name, utf8.RuneCountInString(*body.Name), 2, true))
		}
	}
	if body.Name != nil {
		if utf8.RuneCountInString(*body.Name) > 100 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", *body.Name, utf8.RuneCountInString(*body.Name), 100, false))
		}
	}
	if body.Description != nil {
		if utf8.RuneCountInString(*body.Description) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.description", *body.Description, utf8.RuneCountInString(*body.Description), 1, true))
		}
	}
	if body.Description != nil {
		if utf8.RuneCountInString(*body.Description) > 5000 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.description", *body.Description, utf8.RuneCountInString(*body.Description), 5000, false))
		}
	}
	return
}

// ValidateUpdateRequestBody runs the validations defined on UpdateRequestBody
func ValidateUpdateRequestBody(body *UpdateRequestBody) (err error) {
	if body.Status != nil {
		if !(*body.Status == "Pending" || *body.Status == "In Progress" || *body.Status == "Completed" || *body.Status == "Schedule" || *body.Status == "Dropped") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", *body.Status, []any{"Pending", "In Progress", "Completed", "Schedule", "Dropped"}))
		}
	}
	return
}

// ValidateScheduleMeetingRequestBody runs the validations defined on
// schedule_meeting_request_body
func ValidateScheduleMeetingRequestBody(body *ScheduleMeetingRequestBody) (err error) {
	if body.InquiryID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("inquiry_id", "body"))
	}
	if body.To == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("to", "body"))
	}
	if body.ScheduleDate == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("schedule_date", "body"))
	}
	if body.ScheduledBy == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("scheduled_by", "body"))
	}
	if body.To != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.to", *body.To, goa.FormatEmail))
	}
	return
}
