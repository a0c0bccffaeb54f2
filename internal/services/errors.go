package services

import (
	"errors"

	goa "goa.design/goa/v3/pkg"

	"github.com/MohmedAnas/RB-WEB-sub000/gen/auth"
	"github.com/MohmedAnas/RB-WEB-sub000/gen/inquiry"
)

// ============================================================
// Inquiry Service Error Helpers
// ============================================================

// InquiryBadRequest creates a properly formatted bad request error for the inquiry service
func InquiryBadRequest(message string) *goa.ServiceError {
	return inquiry.MakeBadRequest(errors.New(message))
}

// InquiryNotFound creates a properly formatted not found error for the inquiry service
func InquiryNotFound(message string) *goa.ServiceError {
	return inquiry.MakeNotFound(errors.New(message))
}

// InquiryUnauthorized creates a properly formatted unauthorized error for the inquiry service
func InquiryUnauthorized(message string) *goa.ServiceError {
	return inquiry.MakeUnauthorized(errors.New(message))
}

// InquiryUnavailable creates a properly formatted store-unavailable error for the inquiry service
func InquiryUnavailable(message string) *goa.ServiceError {
	return inquiry.MakeUnavailable(errors.New(message))
}

// InquiryMailFailure creates a properly formatted mail delivery error for the inquiry service
func InquiryMailFailure(message string) *inquiry.MailFailure {
	return &inquiry.MailFailure{Message: &message}
}

// ============================================================
// Auth Service Error Helpers
// ============================================================

// AuthBadRequest creates a properly formatted bad request error for the auth service
func AuthBadRequest(message string) *goa.ServiceError {
	return auth.MakeBadRequest(errors.New(message))
}

// AuthUnauthorized creates a properly formatted unauthorized error for the auth service
func AuthUnauthorized(message string) *goa.ServiceError {
	return auth.MakeUnauthorized(errors.New(message))
}

// AuthNotFound creates a properly formatted not found error for the auth service
func AuthNotFound(message string) *goa.ServiceError {
	return auth.MakeNotFound(errors.New(message))
}
