// Code generated by goa v3.23.1, DO NOT EDIT.
//
// health service
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package health

import (
	"context"

	healthviews "github.com/MohmedAnas/RB-WEB-sub000/gen/health/views"
)

// Health check service
type Service interface {
	// Check implements check.
	Check(context.Context) (res *Healthresult, err error)
}

// APIName is the name of the API as defined in the design.
const APIName = "rbinfotech"

// APIVersion is the version of the API as defined in the design.
const APIVersion = "1.0.0"

// ServiceName is the name of the service as defined in the design. This is the
// same value that is set in the endpoint request contexts under the ServiceKey
// key.
const ServiceName = "health"

// MethodNames lists the service method names as defined in the design. These
// are the same values that are set in the endpoint request contexts under the
// MethodKey key.
var MethodNames = [1]string{"check"}

// Healthresult is the result type of the health service check method.
type Healthresult struct {
	// Service status
	Status *string
	// Service name
	Service *string
}

// NewHealthresult initializes result type Healthresult from viewed result type
// Healthresult.
func NewHealthresult(vres *healthviews.Healthresult) *Healthresult {
	return newHealthresult(vres.Projected)
}

// NewViewedHealthresult initializes viewed result type Healthresult from
// result type Healthresult using the given view.
func NewViewedHealthresult(res *Healthresult, view string) *healthviews.Healthresult {
	p := newHealthresultView(res)
	return &healthviews.Healthresult{Projected: p, View: "default"}
}

// newHealthresult converts projected type Healthresult to service type
// Healthresult.
func newHealthresult(vres *healthviews.HealthresultView) *Healthresult {
	res := &Healthresult{
		Status:  vres.Status,
		Service: vres.Service,
	}
	return res
}

// newHealthresultView projects result type Healthresult to projected type
// HealthresultView using the "default" view.
func newHealthresultView(res *Healthresult) *healthviews.HealthresultView {
	vres := &healthviews.HealthresultView{
		Status:  res.Status,
		Service: res.Service,
	}
	return vres
}
