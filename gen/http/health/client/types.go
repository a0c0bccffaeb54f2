// Code generated by goa v3.23.1, DO NOT EDIT.
//
// health HTTP client types
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package client

import (
	healthviews "github.com/MohmedAnas/RB-WEB-sub000/gen/health/views"
)

// CheckResponseBody is the type of the "health" service "check" endpoint HTTP
// response body.
type CheckResponseBody struct {
	// Service status
	Status *string `form:"status,omitempty" json:"status,omitempty" xml:"status,omitempty"`
	// Service name
	Service *string `form:"service,omitempty" json:"service,omitempty" xml:"service,omitempty"`
}

// NewCheckHealthresultOK builds a "health" service "check" endpoint result
// from a HTTP "OK" response.
func NewCheckHealthresultOK(body *CheckResponseBody) *healthviews.HealthresultView {
	v := &healthviews.HealthresultView{
		Status:  body.Status,
		Service: body.Service,
	}

	return v
}
