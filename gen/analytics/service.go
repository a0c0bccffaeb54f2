// Code generated by goa v3.23.1, DO NOT EDIT.
//
// analytics service
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package analytics

import (
	"context"

	analyticsviews "github.com/MohmedAnas/RB-WEB-sub000/gen/analytics/views"
)

// Website visitor analytics service
type Service interface {
	// Get the running total of website visitors
	Total(context.Context) (res *Visitortotalresult, err error)
	// Stream live and total visitor counts over a WebSocket
	Watch(context.Context, WatchServerStream) (err error)
}

// APIName is the name of the API as defined in the design.
const APIName = "rbinfotech"

// APIVersion is the version of the API as defined in the design.
const APIVersion = "1.0.0"

// ServiceName is the name of the service as defined in the design. This is the
// same value that is set in the endpoint request contexts under the ServiceKey
// key.
const ServiceName = "analytics"

// MethodNames lists the service method names as defined in the design. These
// are the same values that are set in the endpoint request contexts under the
// MethodKey key.
var MethodNames = [2]string{"total", "watch"}

// WatchServerStream allows streaming instances of *Visitorstatsresult to the
// client.
type WatchServerStream interface {
	// Send streams instances of "Visitorstatsresult".
	Send(*Visitorstatsresult) error
	// SendWithContext streams instances of "Visitorstatsresult" with context.
	SendWithContext(context.Context, *Visitorstatsresult) error
	// Close closes the stream.
	Close() error
}

// WatchClientStream allows streaming instances of *Visitorstatsresult to the
// client.
type WatchClientStream interface {
	// Recv reads instances of "Visitorstatsresult" from the stream.
	Recv() (*Visitorstatsresult, error)
	// RecvWithContext reads instances of "Visitorstatsresult" from the stream with
	// context.
	RecvWithContext(context.Context) (*Visitorstatsresult, error)
}

// Visitorstatsresult is the result type of the analytics service watch method.
type Visitorstatsresult struct {
	// Currently connected visitors
	LiveUsers int
	// Total visitors to date
	TotalUsers int64
}

// Visitortotalresult is the result type of the analytics service total method.
type Visitortotalresult struct {
	// Total visitors to date
	TotalUsers int64
}

// NewVisitortotalresult initializes result type Visitortotalresult from viewed
// result type Visitortotalresult.
func NewVisitortotalresult(vres *analyticsviews.Visitortotalresult) *Visitortotalresult {
	return newVisitortotalresult(vres.Projected)
}

// NewViewedVisitortotalresult initializes viewed result type
// Visitortotalresult from result type Visitortotalresult using the given view.
func NewViewedVisitortotalresult(res *Visitortotalresult, view string) *analyticsviews.Visitortotalresult {
	p := newVisitortotalresultView(res)
	return &analyticsviews.Visitortotalresult{Projected: p, View: "default"}
}

// NewVisitorstatsresult initializes result type Visitorstatsresult from viewed
// result type Visitorstatsresult.
func NewVisitorstatsresult(vres *analyticsviews.Visitorstatsresult) *Visitorstatsresult {
	return newVisitorstatsresult(vres.Projected)
}

// NewViewedVisitorstatsresult initializes viewed result type
// Visitorstatsresult from result type Visitorstatsresult using the given view.
func NewViewedVisitorstatsresult(res *Visitorstatsresult, view string) *analyticsviews.Visitorstatsresult {
	p := newVisitorstatsresultView(res)
	return &analyticsviews.Visitorstatsresult{Projected: p, View: "default"}
}

// newVisitortotalresult converts projected type Visitortotalresult to service
// type Visitortotalresult.
func newVisitortotalresult(vres *analyticsviews.VisitortotalresultView) *Visitortotalresult {
	res := &Visitortotalresult{}
	if vres.TotalUsers != nil {
		res.TotalUsers = *vres.TotalUsers
	}
	return res
}

// newVisitortotalresultView projects result type Visitortotalresult to
// projected type VisitortotalresultView using the "default" view.
func newVisitortotalresultView(res *Visitortotalresult) *analyticsviews.VisitortotalresultView {
	vres := &analyticsviews.VisitortotalresultView{
		TotalUsers: &res.TotalUsers,
	}
	return vres
}

// newVisitorstatsresult converts projected type Visitorstatsresult to service
// type Visitorstatsresult.
func newVisitorstatsresult(vres *analyticsviews.VisitorstatsresultView) *Visitorstatsresult {
	res := &Visitorstatsresult{}
	if vres.LiveUsers != nil {
		res.LiveUsers = *vres.LiveUsers
	}
	if vres.TotalUsers != nil {
		res.TotalUsers = *vres.TotalUsers
	}
	return res
}

// newVisitorstatsresultView projects result type Visitorstatsresult to
// projected type VisitorstatsresultView using the "default" view.
func newVisitorstatsresultView(res *Visitorstatsresult) *analyticsviews.VisitorstatsresultView {
	vres := &analyticsviews.VisitorstatsresultView{
		LiveUsers:  &res.LiveUsers,
		TotalUsers: &res.TotalUsers,
	}
	return vres
}
