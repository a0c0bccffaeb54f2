// Code generated by goa v3.23.1, DO NOT EDIT.
//
// inquiry client
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package inquiry

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Client is the "inquiry" service client.
type Client struct {
	SubmitFeedbackEndpoint  goa.Endpoint
	SubmitFreeTrialEndpoint goa.Endpoint
	ListEndpoint            goa.Endpoint
	GetEndpoint             goa.Endpoint
	UpdateEndpoint          goa.Endpoint
	DashboardEndpoint       goa.Endpoint
	ScheduleMeetingEndpoint goa.Endpoint
}

// NewClient initializes a "inquiry" service client given the endpoints.
func NewClient(submitFeedback, submitFreeTrial, list, get, update, dashboard, scheduleMeeting goa.Endpoint) *Client {
	return &Client{
		SubmitFeedbackEndpoint:  submitFeedback,
		SubmitFreeTrialEndpoint: submitFreeTrial,
		ListEndpoint:            list,
		GetEndpoint:             get,
		UpdateEndpoint:          update,
		DashboardEndpoint:       dashboard,
		ScheduleMeetingEndpoint: scheduleMeeting,
	}
}

// SubmitFeedback calls the "submit_feedback" endpoint of the "inquiry" service.
// SubmitFeedback may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - "unavailable" (type *goa.ServiceError)
//   - "not_found" (type *NotFound)
//   - "unauthorized" (type *Unauthorized)
//   - error: internal error
func (c *Client) SubmitFeedback(ctx context.Context, p *SubmitFeedbackPayload) (res *Submitresult, err error) {
	var ires any
	ires, err = c.SubmitFeedbackEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Submitresult), nil
}

// SubmitFreeTrial calls the "submit_free_trial" endpoint of the "inquiry"
// service.
// SubmitFreeTrial may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - "unavailable" (type *goa.ServiceError)
//   - "not_found" (type *NotFound)
//   - "unauthorized" (type *Unauthorized)
//   - error: internal error
func (c *Client) SubmitFreeTrial(ctx context.Context, p *SubmitFreeTrialPayload) (res *Submitresult, err error) {
	var ires any
	ires, err = c.SubmitFreeTrialEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Submitresult), nil
}

// List calls the "list" endpoint of the "inquiry" service.
// List may return the following errors:
//   - "unauthorized" (type *goa.ServiceError)
//   - "unavailable" (type *goa.ServiceError)
//   - "bad_request" (type *BadRequest)
//   - "not_found" (type *NotFound)
//   - error: internal error
func (c *Client) List(ctx context.Context, p *ListInquiriesPayload) (res []*Inquiryresult, err error) {
	var ires any
	ires, err = c.ListEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.([]*Inquiryresult), nil
}

// Get calls the "get" endpoint of the "inquiry" service.
// Get may return the following errors:
//   - "not_found" (type *goa.ServiceError)
//   - "unauthorized" (type *goa.ServiceError)
//   - "bad_request" (type *BadRequest)
//   - "unavailable" (type *StoreUnavailable)
//   - error: internal error
func (c *Client) Get(ctx context.Context, p *GetInquiryPayload) (res *Inquiryresult, err error) {
	var ires any
	ires, err = c.GetEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Inquiryresult), nil
}

// Update calls the "update" endpoint of the "inquiry" service.
// Update may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - "not_found" (type *goa.ServiceError)
//   - "unauthorized" (type *goa.ServiceError)
//   - "unavailable" (type *StoreUnavailable)
//   - error: internal error
func (c *Client) Update(ctx context.Context, p *UpdateInquiryPayload) (res *Inquiryresult, err error) {
	var ires any
	ires, err = c.UpdateEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Inquiryresult), nil
}

// Dashboard calls the "dashboard" endpoint of the "inquiry" service.
// Dashboard may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - "unauthorized" (type *goa.ServiceError)
//   - "unavailable" (type *goa.ServiceError)
//   - "not_found" (type *NotFound)
//   - error: internal error
func (c *Client) Dashboard(ctx context.Context, p *DashboardPayload) (res []*Inquiryresult, err error) {
	var ires any
	ires, err = c.DashboardEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.([]*Inquiryresult), nil
}

// ScheduleMeeting calls the "schedule_meeting" endpoint of the "inquiry"
// service.
// ScheduleMeeting may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - "not_found" (type *goa.ServiceError)
//   - "unauthorized" (type *goa.ServiceError)
//   - "mail_failure" (type *MailFailure)
//   - "unavailable" (type *StoreUnavailable)
//   - error: internal error
func (c *Client) ScheduleMeeting(ctx context.Context, p *ScheduleMeetingPayload) (res *Messageresult, err error) {
	var ires any
	ires, err = c.ScheduleMeetingEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Messageresult), nil
}
