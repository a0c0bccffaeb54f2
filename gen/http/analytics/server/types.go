// Code generated by goa v3.23.1, DO NOT EDIT.
//
// analytics HTTP server types
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package server

import (
	analyticsviews "github.com/MohmedAnas/RB-WEB-sub000/gen/analytics/views"
)

// TotalResponseBody is the type of the "analytics" service "total" endpoint
// HTTP response body.
type TotalResponseBody struct {
	// Total visitors to date
	TotalUsers int64 `form:"total_users" json:"total_users" xml:"total_users"`
}

// WatchResponseBody is the type of the "analytics" service "watch" endpoint
// HTTP response body.
type WatchResponseBody struct {
	// Currently connected visitors
	LiveUsers int `form:"live_users" json:"live_users" xml:"live_users"`
	// Total visitors to date
	TotalUsers int64 `form:"total_users" json:"total_users" xml:"total_users"`
}

// NewTotalResponseBody builds the HTTP response body from the result of the
// "total" endpoint of the "analytics" service.
func NewTotalResponseBody(res *analyticsviews.VisitortotalresultView) *TotalResponseBody {
	body := &TotalResponseBody{
		TotalUsers: *res.TotalUsers,
	}
	return body
}

// NewWatchResponseBody builds the HTTP response body from the result of the
// "watch" endpoint of the "analytics" service.
func NewWatchResponseBody(res *analyticsviews.VisitorstatsresultView) *WatchResponseBody {
	body := &WatchResponseBody{
		LiveUsers:  *res.LiveUsers,
		TotalUsers: *res.TotalUsers,
	}
	return body
}
