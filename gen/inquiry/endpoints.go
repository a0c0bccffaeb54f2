// Code generated by goa v3.23.1, DO NOT EDIT.
//
// inquiry endpoints
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package inquiry

import (
	"context"

	goa "goa.design/goa/v3/pkg"
	"goa.design/goa/v3/security"
)

// Endpoints wraps the "inquiry" service endpoints.
type Endpoints struct {
	SubmitFeedback  goa.Endpoint
	SubmitFreeTrial goa.Endpoint
	List            goa.Endpoint
	Get             goa.Endpoint
	Update          goa.Endpoint
	Dashboard       goa.Endpoint
	ScheduleMeeting goa.Endpoint
}

// NewEndpoints wraps the methods of the "inquiry" service with endpoints.
func NewEndpoints(s Service) *Endpoints {
	// Casting service to Auther interface
	a := s.(Auther)
	return &Endpoints{
		SubmitFeedback:  NewSubmitFeedbackEndpoint(s),
		SubmitFreeTrial: NewSubmitFreeTrialEndpoint(s),
		List:            NewListEndpoint(s, a.JWTAuth),
		Get:             NewGetEndpoint(s, a.JWTAuth),
		Update:          NewUpdateEndpoint(s, a.JWTAuth),
		Dashboard:       NewDashboardEndpoint(s, a.JWTAuth),
		ScheduleMeeting: NewScheduleMeetingEndpoint(s, a.JWTAuth),
	}
}

// Use applies the given middleware to all the "inquiry" service endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	e.SubmitFeedback = m(e.SubmitFeedback)
	e.SubmitFreeTrial = m(e.SubmitFreeTrial)
	e.List = m(e.List)
	e.Get = m(e.Get)
	e.Update = m(e.Update)
	e.Dashboard = m(e.Dashboard)
	e.ScheduleMeeting = m(e.ScheduleMeeting)
}

// NewSubmitFeedbackEndpoint returns an endpoint function that calls the method
// "submit_feedback" of service "inquiry".
func NewSubmitFeedbackEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*SubmitFeedbackPayload)
		res, err := s.SubmitFeedback(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedSubmitresult(res, "default")
		return vres, nil
	}
}

// NewSubmitFreeTrialEndpoint returns an endpoint function that calls the
// method "submit_free_trial" of service "inquiry".
func NewSubmitFreeTrialEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*SubmitFreeTrialPayload)
		res, err := s.SubmitFreeTrial(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedSubmitresult(res, "default")
		return vres, nil
	}
}

// NewListEndpoint returns an endpoint function that calls the method "list" of
// service "inquiry".
func NewListEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ListInquiriesPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{"staff"},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.List(ctx, p)
	}
}

// NewGetEndpoint returns an endpoint function that calls the method "get" of
// service "inquiry".
func NewGetEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*GetInquiryPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{"staff"},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		res, err := s.Get(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedInquiryresult(res, "default")
		return vres, nil
	}
}

// NewUpdateEndpoint returns an endpoint function that calls the method
// "update" of service "inquiry".
func NewUpdateEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*UpdateInquiryPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{"staff"},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		res, err := s.Update(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedInquiryresult(res, "default")
		return vres, nil
	}
}

// NewDashboardEndpoint returns an endpoint function that calls the method
// "dashboard" of service "inquiry".
func NewDashboardEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*DashboardPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{"staff"},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.Dashboard(ctx, p)
	}
}

// NewScheduleMeetingEndpoint returns an endpoint function that calls the
// method "schedule_meeting" of service "inquiry".
func NewScheduleMeetingEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ScheduleMeetingPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{"staff"},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		res, err := s.ScheduleMeeting(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedMessageresult(res, "default")
		return vres, nil
	}
}
