// Code generated by goa v3.23.1, DO NOT EDIT.
//
// analytics endpoints
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package analytics

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Endpoints wraps the "analytics" service endpoints.
type Endpoints struct {
	Total goa.Endpoint
	Watch goa.Endpoint
}

// WatchEndpointInput holds both the payload and the server stream of the
// "watch" method.
type WatchEndpointInput struct {
	// Stream is the server stream used by the "watch" method to send data.
	Stream WatchServerStream
}

// NewEndpoints wraps the methods of the "analytics" service with endpoints.
func NewEndpoints(s Service) *Endpoints {
	return &Endpoints{
		Total: NewTotalEndpoint(s),
		Watch: NewWatchEndpoint(s),
	}
}

// Use applies the given middleware to all the "analytics" service endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	e.Total = m(e.Total)
	e.Watch = m(e.Watch)
}

// NewTotalEndpoint returns an endpoint function that calls the method "total"
// of service "analytics".
func NewTotalEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		res, err := s.Total(ctx)
		if err != nil {
			return nil, err
		}
		vres := NewViewedVisitortotalresult(res, "default")
		return vres, nil
	}
}

// NewWatchEndpoint returns an endpoint function that calls the method "watch"
// of service "analytics".
func NewWatchEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		ep := req.(*WatchEndpointInput)
		return nil, s.Watch(ctx, ep.Stream)
	}
}
