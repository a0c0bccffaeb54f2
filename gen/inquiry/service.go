// Code generated by goa v3.23.1, DO NOT EDIT.
//
// inquiry service
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package inquiry

import (
	"context"

	inquiryviews "github.com/MohmedAnas/RB-WEB-sub000/gen/inquiry/views"
	goa "goa.design/goa/v3/pkg"
	"goa.design/goa/v3/security"
)

// Customer inquiry intake and dashboard service
type Service interface {
	// Submit a feedback / product query form
	SubmitFeedback(context.Context, *SubmitFeedbackPayload) (res *Submitresult, err error)
	// Submit a free-trial request form
	SubmitFreeTrial(context.Context, *SubmitFreeTrialPayload) (res *Submitresult, err error)
	// List all inquiries (Staff/Admin only). Unfiltered and unpaginated; ordering
	// is not guaranteed.
	List(context.Context, *ListInquiriesPayload) (res []*Inquiryresult, err error)
	// Get a single inquiry by ID (Staff/Admin only)
	Get(context.Context, *GetInquiryPayload) (res *Inquiryresult, err error)
	// Update status, disposition and assignment of an inquiry (Staff/Admin only)
	Update(context.Context, *UpdateInquiryPayload) (res *Inquiryresult, err error)
	// Filtered and sorted dashboard view of inquiries (Staff/Admin only)
	Dashboard(context.Context, *DashboardPayload) (res []*Inquiryresult, err error)
	// Send a meeting confirmation email to a customer (Staff/Admin only). Does not
	// modify the inquiry.
	ScheduleMeeting(context.Context, *ScheduleMeetingPayload) (res *Messageresult, err error)
}

// Auther defines the authorization functions to be implemented by the service.
type Auther interface {
	// JWTAuth implements the authorization logic for the JWT security scheme.
	JWTAuth(ctx context.Context, token string, schema *security.JWTScheme) (context.Context, error)
}

// APIName is the name of the API as defined in the design.
const APIName = "rbinfotech"

// APIVersion is the version of the API as defined in the design.
const APIVersion = "1.0.0"

// ServiceName is the name of the service as defined in the design. This is the
// same value that is set in the endpoint request contexts under the ServiceKey
// key.
const ServiceName = "inquiry"

// MethodNames lists the service method names as defined in the design. These
// are the same values that are set in the endpoint request contexts under the
// MethodKey key.
var MethodNames = [7]string{"submit_feedback", "submit_free_trial", "list", "get", "update", "dashboard", "schedule_meeting"}

// Bad request
type BadRequest struct {
	// Error message
	Message *string
}

// DashboardPayload is the payload type of the inquiry service dashboard method.
type DashboardPayload struct {
	// JWT token
	Token *string
	// Enquiry type filter
	EnquiryType string
	// Date range preset applied to submission time
	Period string
	// Custom range start (YYYY-MM-DD, inclusive)
	StartDate *string
	// Custom range end (YYYY-MM-DD, inclusive)
	EndDate *string
	// Sort by submission time
	Sort string
	// Include closed inquiries older than the visibility window
	IncludeHidden bool
}

// GetInquiryPayload is the payload type of the inquiry service get method.
type GetInquiryPayload struct {
	// JWT token
	Token *string
	// Inquiry ID
	ID int
}

// Inquiryresult is the result type of the inquiry service get method.
type Inquiryresult struct {
	// Inquiry ID
	ID int
	// Enquiry type (Query, Demo, Renewal)
	EnquiryType string
	// Customer name
	Name *string
	// Phone number
	Phone *string
	// Email address
	Email *string
	// Inquiry description
	Description *string
	// Status (Pending, In Progress, Completed, Schedule, Dropped)
	Status string
	// Drop disposition, set only while status is Dropped
	Disposition *string
	// Assigned employee
	AssignedTo *string
	// Derived priority (Hot, Recent, Cold, Old)
	Priority string
	// Human-readable time to resolution, Completed inquiries only
	ResolutionTime *string
	// Submission timestamp
	SubmittedAt string
	// Resolution timestamp, Completed inquiries only
	ResolvedAt *string
	// Last update timestamp
	UpdatedAt *string
}

// ListInquiriesPayload is the payload type of the inquiry service list method.
type ListInquiriesPayload struct {
	// JWT token
	Token *string
}

// Notification email could not be delivered
type MailFailure struct {
	// Error message
	Message *string
}

// Messageresult is the result type of the inquiry service schedule_meeting
// method.
type Messageresult struct {
	// Confirmation message
	Message string
}

// Resource not found
type NotFound struct {
	// Error message
	Message *string
}

// ScheduleMeetingPayload is the payload type of the inquiry service
// schedule_meeting method.
type ScheduleMeetingPayload struct {
	// JWT token
	Token *string
	// Inquiry the meeting concerns
	InquiryID int
	// Recipient email address
	To string
	// Meeting date/time as shown to the customer
	ScheduleDate string
	// Meeting agenda
	ScheduleDesc *string
	// Employee scheduling the meeting
	ScheduledBy string
	// Customer name for the greeting
	CustomerName *string
}

// Database unreachable
type StoreUnavailable struct {
	// Error message
	Message *string
}

// SubmitFeedbackPayload is the payload type of the inquiry service
// submit_feedback method.
type SubmitFeedbackPayload struct {
	// Enquiry type
	EnquiryType string
	// Customer name
	Name string
	// Phone number
	Phone *string
	// Email address
	Email *string
	// What the customer is looking for
	Description string
}

// SubmitFreeTrialPayload is the payload type of the inquiry service
// submit_free_trial method.
type SubmitFreeTrialPayload struct {
	// Customer name
	Name *string
	// Phone number
	Phone *string
	// Email address
	Email *string
	// Customer city
	City *string
	// Additional notes
	Query *string
}

// Submitresult is the result type of the inquiry service submit_feedback
// method.
type Submitresult struct {
	// Inquiry ID
	ID int
	// Confirmation message
	Message string
}

// Unauthorized access
type Unauthorized struct {
	// Error message
	Message *string
}

// UpdateInquiryPayload is the payload type of the inquiry service update
// method.
type UpdateInquiryPayload struct {
	// JWT token
	Token *string
	// Inquiry ID
	ID int
	// New status
	Status *string
	// Drop disposition, accepted only when the resulting status is Dropped
	Disposition *string
	// Employee to assign; empty string unassigns
	AssignedTo *string
	// Explicit resolution timestamp (RFC3339); honored only with status Completed
	ResolvedAt *string
}

// Error returns an error description.
func (e *BadRequest) Error() string {
	return "Bad request"
}

// ErrorName returns "BadRequest".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *BadRequest) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "BadRequest".
func (e *BadRequest) GoaErrorName() string {
	return "bad_request"
}

// Error returns an error description.
func (e *MailFailure) Error() string {
	return "Notification email could not be delivered"
}

// ErrorName returns "MailFailure".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *MailFailure) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "MailFailure".
func (e *MailFailure) GoaErrorName() string {
	return "mail_failure"
}

// Error returns an error description.
func (e *NotFound) Error() string {
	return "Resource not found"
}

// ErrorName returns "NotFound".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *NotFound) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "NotFound".
func (e *NotFound) GoaErrorName() string {
	return "not_found"
}

// Error returns an error description.
func (e *StoreUnavailable) Error() string {
	return "Database unreachable"
}

// ErrorName returns "StoreUnavailable".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *StoreUnavailable) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "StoreUnavailable".
func (e *StoreUnavailable) GoaErrorName() string {
	return "unavailable"
}

// Error returns an error description.
func (e *Unauthorized) Error() string {
	return "Unauthorized access"
}

// ErrorName returns "Unauthorized".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *Unauthorized) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "Unauthorized".
func (e *Unauthorized) GoaErrorName() string {
	return "unauthorized"
}

// MakeBadRequest builds a goa.ServiceError from an error.
func MakeBadRequest(err error) *goa.ServiceError {
	return goa.NewServiceError(err, "bad_request", false, false, false)
}

// MakeUnavailable builds a goa.ServiceError from an error.
func MakeUnavailable(err error) *goa.ServiceError {
	return goa.NewServiceError(err, "unavailable", false, false, false)
}

// MakeUnauthorized builds a goa.ServiceError from an error.
func MakeUnauthorized(err error) *goa.ServiceError {
	return goa.NewServiceError(err, "unauthorized", false, false, false)
}

// MakeNotFound builds a goa.ServiceError from an error.
func MakeNotFound(err error) *goa.ServiceError {
	return goa.NewServiceError(err, "not_found", false, false, false)
}

// NewSubmitresult initializes result type Submitresult from viewed result type
// Submitresult.
func NewSubmitresult(vres *inquiryviews.Submitresult) *Submitresult {
	return newSubmitresult(vres.Projected)
}

// NewViewedSubmitresult initializes viewed result type Submitresult from
// result type Submitresult using the given view.
func NewViewedSubmitresult(res *Submitresult, view string) *inquiryviews.Submitresult {
	p := newSubmitresultView(res)
	return &inquiryviews.Submitresult{Projected: p, View: "default"}
}

// NewInquiryresult initializes result type Inquiryresult from viewed result
// type Inquiryresult.
func NewInquiryresult(vres *inquiryviews.Inquiryresult) *Inquiryresult {
	return newInquiryresult(vres.Projected)
}

// NewViewedInquiryresult initializes viewed result type Inquiryresult from
// result type Inquiryresult using the given view.
func NewViewedInquiryresult(res *Inquiryresult, view string) *inquiryviews.Inquiryresult {
	p := newInquiryresultView(res)
	return &inquiryviews.Inquiryresult{Projected: p, View: "default"}
}

// NewMessageresult initializes result type Messageresult from viewed result
// type Messageresult.
func NewMessageresult(vres *inquiryviews.Messageresult) *Messageresult {
	return newMessageresult(vres.Projected)
}

// NewViewedMessageresult initializes viewed result type Messageresult from
// result type Messageresult using the given view.
func NewViewedMessageresult(res *Messageresult, view string) *inquiryviews.Messageresult {
	p := newMessageresultView(res)
	return &inquiryviews.Messageresult{Projected: p, View: "default"}
}

// newSubmitresult converts projected type Submitresult to service type
// Submitresult.
func newSubmitresult(vres *inquiryviews.SubmitresultView) *Submitresult {
	res := &Submitresult{}
	if vres.ID != nil {
		res.ID = *vres.ID
	}
	if vres.Message != nil {
		res.Message = *vres.Message
	}
	return res
}

// newSubmitresultView projects result type Submitresult to projected type
// SubmitresultView using the "default" view.
func newSubmitresultView(res *Submitresult) *inquiryviews.SubmitresultView {
	vres := &inquiryviews.SubmitresultView{
		ID:      &res.ID,
		Message: &res.Message,
	}
	return vres
}

// newInquiryresult converts projected type Inquiryresult to service type
// Inquiryresult.
func newInquiryresult(vres *inquiryviews.InquiryresultView) *Inquiryresult {
	res := &Inquiryresult{
		Name:           vres.Name,
		Phone:          vres.Phone,
		Email:          vres.Email,
		Description:    vres.Description,
		Disposition:    vres.Disposition,
		AssignedTo:     vres.AssignedTo,
		ResolutionTime: vres.ResolutionTime,
		ResolvedAt:     vres.ResolvedAt,
		UpdatedAt:      vres.UpdatedAt,
	}
	if vres.ID != nil {
		res.ID = *vres.ID
	}
	if vres.EnquiryType != nil {
		res.EnquiryType = *vres.EnquiryType
	}
	if vres.Status != nil {
		res.Status = *vres.Status
	}
	if vres.Priority != nil {
		res.Priority = *vres.Priority
	}
	if vres.SubmittedAt != nil {
		res.SubmittedAt = *vres.SubmittedAt
	}
	return res
}

// newInquiryresultView projects result type Inquiryresult to projected type
// InquiryresultView using the "default" view.
func newInquiryresultView(res *Inquiryresult) *inquiryviews.InquiryresultView {
	vres := &inquiryviews.InquiryresultView{
		ID:             &res.ID,
		EnquiryType:    &res.EnquiryType,
		Name:           res.Name,
		Phone:          res.Phone,
		Email:          res.Email,
		Description:    res.Description,
		Status:         &res.Status,
		Disposition:    res.Disposition,
		AssignedTo:     res.AssignedTo,
		Priority:       &res.Priority,
		ResolutionTime: res.ResolutionTime,
		SubmittedAt:    &res.SubmittedAt,
		ResolvedAt:     res.ResolvedAt,
		UpdatedAt:      res.UpdatedAt,
	}
	return vres
}

// newMessageresult converts projected type Messageresult to service type
// Messageresult.
func newMessageresult(vres *inquiryviews.MessageresultView) *Messageresult {
	res := &Messageresult{}
	if vres.Message != nil {
		res.Message = *vres.Message
	}
	return res
}

// newMessageresultView projects result type Messageresult to projected type
// MessageresultView using the "default" view.
func newMessageresultView(res *Messageresult) *inquiryviews.MessageresultView {
	vres := &inquiryviews.MessageresultView{
		Message: &res.Message,
	}
	return vres
}
