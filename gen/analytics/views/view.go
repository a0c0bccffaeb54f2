// Code generated by goa v3.23.1, DO NOT EDIT.
//
// analytics views
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package views

import (
	goa "goa.design/goa/v3/pkg"
)

// Visitortotalresult is the viewed result type that is projected based on a
// view.
type Visitortotalresult struct {
	// Type to project
	Projected *VisitortotalresultView
	// View to render
	View string
}

// Visitorstatsresult is the viewed result type that is projected based on a
// view.
type Visitorstatsresult struct {
	// Type to project
	Projected *VisitorstatsresultView
	// View to render
	View string
}

// VisitortotalresultView is a type that runs validations on a projected type.
type VisitortotalresultView struct {
	// Total visitors to date
	TotalUsers *int64
}

// VisitorstatsresultView is a type that runs validations on a projected type.
type VisitorstatsresultView struct {
	// Currently connected visitors
	LiveUsers *int
	// Total visitors to date
	TotalUsers *int64
}

var (
	// VisitortotalresultMap is a map indexing the attribute names of
	// Visitortotalresult by view name.
	VisitortotalresultMap = map[string][]string{
		"default": {
			"total_users",
		},
	}
	// VisitorstatsresultMap is a map indexing the attribute names of
	// Visitorstatsresult by view name.
	VisitorstatsresultMap = map[string][]string{
		"default": {
			"live_users",
			"total_users",
		},
	}
)

// ValidateVisitortotalresult runs the validations defined on the viewed result
// type Visitortotalresult.
func ValidateVisitortotalresult(result *Visitortotalresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateVisitortotalresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateVisitorstatsresult runs the validations defined on the viewed result
// type Visitorstatsresult.
func ValidateVisitorstatsresult(result *Visitorstatsresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateVisitorstatsresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateVisitortotalresultView runs the validations defined on
// VisitortotalresultView using the "default" view.
func ValidateVisitortotalresultView(result *VisitortotalresultView) (err error) {
	if result.TotalUsers == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("total_users", "result"))
	}
	return
}

// ValidateVisitorstatsresultView runs the validations defined on
// VisitorstatsresultView using the "default" view.
func ValidateVisitorstatsresultView(result *VisitorstatsresultView) (err error) {
	if result.LiveUsers == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("live_users", "result"))
	}
	if result.TotalUsers == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("total_users", "result"))
	}
	return
}
