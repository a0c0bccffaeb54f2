// Code generated by goa v3.23.1, DO NOT EDIT.
//
// health HTTP server types
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package server

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

// NewCheckResponseBody builds the HTTP response body from the result of the
// "check" endpoint of the "health" service.
func NewCheckResponseBody(res *healthviews.HealthresultView) *CheckResponseBody {
	body := &CheckResponseBody{
		Status:  res.Status,
		Service: res.Service,
	}
	return body
}
