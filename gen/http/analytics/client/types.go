// Code generated by goa v3.23.1, DO NOT EDIT.
//
// analytics HTTP client types
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package client

import (
	analyticsviews "github.com/MohmedAnas/RB-WEB-sub000/gen/analytics/views"
)

// TotalResponseBody is the type of the "analytics" service "total" endpoint
// HTTP response body.
type TotalResponseBody struct {
	// Total visitors to date
	TotalUsers *int64 `form:"total_users,omitempty" json:"total_users,omitempty" xml:"total_users,omitempty"`
}

// WatchResponseBody is the type of the "analytics" service "watch" endpoint
// HTTP response body.
type WatchResponseBody struct {
	// Currently connected visitors
	LiveUsers *int `form:"live_users,omitempty" json:"live_users,omitempty" xml:"live_users,omitempty"`
	// Total visitors to date
	TotalUsers *int64 `form:"total_users,omitempty" json:"total_users,omitempty" xml:"total_users,omitempty"`
}

// NewTotalVisitortotalresultOK builds a "analytics" service "total" endpoint
// result from a HTTP "OK" response.
func NewTotalVisitortotalresultOK(body *TotalResponseBody) *analyticsviews.VisitortotalresultView {
	v := &analyticsviews.VisitortotalresultView{
		TotalUsers: body.TotalUsers,
	}

	return v
}

// NewWatchVisitorstatsresultOK builds a "analytics" service "watch" endpoint
// result from a HTTP "OK" response.
func NewWatchVisitorstatsresultOK(body *WatchResponseBody) *analyticsviews.VisitorstatsresultView {
	v := &analyticsviews.VisitorstatsresultView{
		LiveUsers:  body.LiveUsers,
		TotalUsers: body.TotalUsers,
	}

	return v
}
