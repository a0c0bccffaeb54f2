// Code generated by goa v3.23.1, DO NOT EDIT.
//
// HTTP request path constructors for the health service.
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package server

// CheckHealthPath returns the URL path to the health service check HTTP endpoint.
func CheckHealthPath() string {
	return "/health"
}
