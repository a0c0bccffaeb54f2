// Code generated by goa v3.23.1, DO NOT EDIT.
//
// inquiry views
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package views

import (
	goa "goa.design/goa/v3/pkg"
)

// Submitresult is the viewed result type that is projected based on a view.
type Submitresult struct {
	// Type to project
	Projected *SubmitresultView
	// View to render
	View string
}

// Inquiryresult is the viewed result type that is projected based on a view.
type Inquiryresult struct {
	// Type to project
	Projected *InquiryresultView
	// View to render
	View string
}

// Messageresult is the viewed result type that is projected based on a view.
type Messageresult struct {
	// Type to project
	Projected *MessageresultView
	// View to render
	View string
}

// SubmitresultView is a type that runs validations on a projected type.
type SubmitresultView struct {
	// Inquiry ID
	ID *int
	// Confirmation message
	Message *string
}

// InquiryresultView is a type that runs validations on a projected type.
type InquiryresultView struct {
	// Inquiry ID
	ID *int
	// Enquiry type (Query, Demo, Renewal)
	EnquiryType *string
	// Customer name
	Name *string
	// Phone number
	Phone *string
	// Email address
	Email *string
	// Inquiry description
	Description *string
	// Status (Pending, In Progress, Completed, Schedule, Dropped)
	Status *string
	// Drop disposition, set only while status is Dropped
	Disposition *string
	// Assigned employee
	AssignedTo *string
	// Derived priority (Hot, Recent, Cold, Old)
	Priority *string
	// Human-readable time to resolution, Completed inquiries only
	ResolutionTime *string
	// Submission timestamp
	SubmittedAt *string
	// Resolution timestamp, Completed inquiries only
	ResolvedAt *string
	// Last update timestamp
	UpdatedAt *string
}

// MessageresultView is a type that runs validations on a projected type.
type MessageresultView struct {
	// Confirmation message
	Message *string
}

var (
	// SubmitresultMap is a map indexing the attribute names of Submitresult by
	// view name.
	SubmitresultMap = map[string][]string{
		"default": {
			"id",
			"message",
		},
	}
	// InquiryresultMap is a map indexing the attribute names of Inquiryresult by
	// view name.
	InquiryresultMap = map[string][]string{
		"default": {
			"id",
			"enquiry_type",
			"name",
			"phone",
			"email",
			"description",
			"status",
			"disposition",
			"assigned_to",
			"priority",
			"resolution_time",
			"submitted_at",
			"resolved_at",
			"updated_at",
		},
	}
	// MessageresultMap is a map indexing the attribute names of Messageresult by
	// view name.
	MessageresultMap = map[string][]string{
		"default": {
			"message",
		},
	}
)

// ValidateSubmitresult runs the validations defined on the viewed result type
// Submitresult.
func ValidateSubmitresult(result *Submitresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateSubmitresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateInquiryresult runs the validations defined on the viewed result type
// Inquiryresult.
func ValidateInquiryresult(result *Inquiryresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateInquiryresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateMessageresult runs the validations defined on the viewed result type
// Messageresult.
func ValidateMessageresult(result *Messageresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateMessageresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateSubmitresultView runs the validations defined on SubmitresultView
// using the "default" view.
func ValidateSubmitresultView(result *SubmitresultView) (err error) {
	if result.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "result"))
	}
	if result.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "result"))
	}
	return
}

// ValidateInquiryresultView runs the validations defined on InquiryresultView
// using the "default" view.
func ValidateInquiryresultView(result *InquiryresultView) (err error) {
	if result.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "result"))
	}
	if result.EnquiryType == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("enquiry_type", "result"))
	}
	if result.Status == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("status", "result"))
	}
	if result.Priority == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("priority", "result"))
	}
	if result.SubmittedAt == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("submitted_at", "result"))
	}
	return
}

// ValidateMessageresultView runs the validations defined on MessageresultView
// using the "default" view.
func ValidateMessageresultView(result *MessageresultView) (err error) {
	if result.Message == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("message", "result"))
	}
	return
}
