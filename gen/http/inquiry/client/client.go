// Code generated by goa v3.23.1, DO NOT EDIT.
//
// inquiry client HTTP transport
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package client

import (
	"context"
	"net/http"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// Client lists the inquiry service endpoint HTTP clients.
type Client struct {
	// SubmitFeedback Doer is the HTTP client used to make requests to the
	// submit_feedback endpoint.
	SubmitFeedbackDoer goahttp.Doer

	// SubmitFreeTrial Doer is the HTTP client used to make requests to the
	// submit_free_trial endpoint.
	SubmitFreeTrialDoer goahttp.Doer

	// List Doer is the HTTP client used to make requests to the list endpoint.
	ListDoer goahttp.Doer

	// Get Doer is the HTTP client used to make requests to the get endpoint.
	GetDoer goahttp.Doer

	// Update Doer is the HTTP client used to make requests to the update endpoint.
	UpdateDoer goahttp.Doer

	// Dashboard Doer is the HTTP client used to make requests to the dashboard
	// endpoint.
	DashboardDoer goahttp.Doer

	// ScheduleMeeting Doer is the HTTP client used to make requests to the
	// schedule_meeting endpoint.
	ScheduleMeetingDoer goahttp.Doer

	// RestoreResponseBody controls whether the response bodies are reset after
	// decoding so they can be read again.
	RestoreResponseBody bool

	scheme  string
	host    string
	encoder func(*http.Request) goahttp.Encoder
	decoder func(*http.Response) goahttp.Decoder
}

// NewClient instantiates HTTP clients for all the inquiry service servers.
func NewClient(
	scheme string,
	host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restoreBody bool,
) *Client {
	return &Client{
		SubmitFeedbackDoer:  doer,
		SubmitFreeTrialDoer: doer,
		ListDoer:            doer,
		GetDoer:             doer,
		UpdateDoer:          doer,
		DashboardDoer:       doer,
		ScheduleMeetingDoer: doer,
		RestoreResponseBody: restoreBody,
		scheme:              scheme,
		host:                host,
		decoder:             dec,
		encoder:             enc,
	}
}

// SubmitFeedback returns an endpoint that makes HTTP requests to the inquiry
// service submit_feedback server.
func (c *Client) SubmitFeedback() goa.Endpoint {
	var (
		encodeRequest  = EncodeSubmitFeedbackRequest(c.encoder)
		decodeResponse = DecodeSubmitFeedbackResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildSubmitFeedbackRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.SubmitFeedbackDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("inquiry", "submit_feedback", err)
		}
		return decodeResponse(resp)
	}
}

// SubmitFreeTrial returns an endpoint that makes HTTP requests to the inquiry
// service submit_free_trial server.
func (c *Client) SubmitFreeTrial() goa.Endpoint {
	var (
		encodeRequest  = EncodeSubmitFreeTrialRequest(c.encoder)
		decodeResponse = DecodeSubmitFreeTrialResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildSubmitFreeTrialRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.SubmitFreeTrialDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("inquiry", "submit_free_trial", err)
		}
		return decodeResponse(resp)
	}
}

// List returns an endpoint that makes HTTP requests to the inquiry service
// list server.
func (c *Client) List() goa.Endpoint {
	var (
		encodeRequest  = EncodeListRequest(c.encoder)
		decodeResponse = DecodeListResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildListRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.ListDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("inquiry", "list", err)
		}
		return decodeResponse(resp)
	}
}

// Get returns an endpoint that makes HTTP requests to the inquiry service get
// server.
func (c *Client) Get() goa.Endpoint {
	var (
		encodeRequest  = EncodeGetRequest(c.encoder)
		decodeResponse = DecodeGetResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildGetRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.GetDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("inquiry", "get", err)
		}
		return decodeResponse(resp)
	}
}

// Update returns an endpoint that makes HTTP requests to the inquiry service
// update server.
func (c *Client) Update() goa.Endpoint {
	var (
		encodeRequest  = EncodeUpdateRequest(c.encoder)
		decodeResponse = DecodeUpdateResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildUpdateRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.UpdateDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("inquiry", "update", err)
		}
		return decodeResponse(resp)
	}
}

// Dashboard returns an endpoint that makes HTTP requests to the inquiry
// service dashboard server.
func (c *Client) Dashboard() goa.Endpoint {
	var (
		encodeRequest  = EncodeDashboardRequest(c.encoder)
		decodeResponse = DecodeDashboardResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildDashboardRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.DashboardDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("inquiry", "dashboard", err)
		}
		return decodeResponse(resp)
	}
}

// ScheduleMeeting returns an endpoint that makes HTTP requests to the inquiry
// service schedule_meeting server.
func (c *Client) ScheduleMeeting() goa.Endpoint {
	var (
		encodeRequest  = EncodeScheduleMeetingRequest(c.encoder)
		decodeResponse = DecodeScheduleMeetingResponse(c.decoder, c.RestoreResponseBody)
	)
	return func(ctx context.Context, v any) (any, error) {
		req, err := c.BuildScheduleMeetingRequest(ctx, v)
		if err != nil {
			return nil, err
		}
		err = encodeRequest(req, v)
		if err != nil {
			return nil, err
		}
		resp, err := c.ScheduleMeetingDoer.Do(req)
		if err != nil {
			return nil, goahttp.ErrRequestError("inquiry", "schedule_meeting", err)
		}
		return decodeResponse(resp)
	}
}
