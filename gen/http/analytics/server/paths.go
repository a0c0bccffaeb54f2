// Code generated by goa v3.23.1, DO NOT EDIT.
//
// HTTP request path constructors for the analytics service.
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package server

// TotalAnalyticsPath returns the URL path to the analytics service total HTTP endpoint.
func TotalAnalyticsPath() string {
	return "/users/total"
}

// WatchAnalyticsPath returns the URL path to the analytics service watch HTTP endpoint.
func WatchAnalyticsPath() string {
	return "/users/live"
}
