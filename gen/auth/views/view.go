// Code generated by goa v3.23.1, DO NOT EDIT.
//
// auth views
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package views

import (
	goa "goa.design/goa/v3/pkg"
)

// Loginresult is the viewed result type that is projected based on a view.
type Loginresult struct {
	// Type to project
	Projected *LoginresultView
	// View to render
	View string
}

// Logoutresult is the viewed result type that is projected based on a view.
type Logoutresult struct {
	// Type to project
	Projected *LogoutresultView
	// View to render
	View string
}

// Userresult is the viewed result type that is projected based on a view.
type Userresult struct {
	// Type to project
	Projected *UserresultView
	// View to render
	View string
}

// LoginresultView is a type that runs validations on a projected type.
type LoginresultView struct {
	// JWT access token
	AccessToken *string
	// Token type
	TokenType *string
}

// LogoutresultView is a type that runs validations on a projected type.
type LogoutresultView struct {
	// Logout message
	Message *string
}

// UserresultView is a type that runs validations on a projected type.
type UserresultView struct {
	// User ID
	ID *int
	// Username
	Username *string
	// Email address
	Email *string
	// Full name
	FullName *string
	// Is user active
	IsActive *bool
	// Is user admin
	IsAdmin *bool
	// Is user staff
	IsStaff *bool
	// Creation timestamp
	CreatedAt *string
	// Update timestamp
	UpdatedAt *string
	// Last login timestamp
	LastLogin *string
}

var (
	// LoginresultMap is a map indexing the attribute names of Loginresult by view
	// name.
	LoginresultMap = map[string][]string{
		"default": {
			"access_token",
			"token_type",
		},
	}
	// LogoutresultMap is a map indexing the attribute names of Logoutresult by
	// view name.
	LogoutresultMap = map[string][]string{
		"default": {
			"message",
		},
	}
	// UserresultMap is a map indexing the attribute names of Userresult by view
	// name.
	UserresultMap = map[string][]string{
		"default": {
			"id",
			"username",
			"email",
			"full_name",
			"is_active",
			"is_admin",
			"is_staff",
			"created_at",
			"updated_at",
			"last_login",
		},
	}
)

// ValidateLoginresult runs the validations defined on the viewed result type
// Loginresult.
func ValidateLoginresult(result *Loginresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateLoginresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateLogoutresult runs the validations defined on the viewed result type
// Logoutresult.
func ValidateLogoutresult(result *Logoutresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateLogoutresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateUserresult runs the validations defined on the viewed result type
// Userresult.
func ValidateUserresult(result *Userresult) (err error) {
	switch result.View {
	case "default", "":
		err = ValidateUserresultView(result.Projected)
	default:
		err = goa.InvalidEnumValueError("view", result.View, []any{"default"})
	}
	return
}

// ValidateLoginresultView runs the validations defined on LoginresultView
// using the "default" view.
func ValidateLoginresultView(result *LoginresultView) (err error) {
	if result.AccessToken == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("access_token", "result"))
	}
	if result.TokenType == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("token_type", "result"))
	}
	return
}

// ValidateLogoutresultView runs the validations defined on LogoutresultView
// using the "default" view.
func ValidateLogoutresultView(result *LogoutresultView) (err error) {

	return
}

// ValidateUserresultView runs the validations defined on UserresultView using
// the "default" view.
func ValidateUserresultView(result *UserresultView) (err error) {
	if result.ID == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("id", "result"))
	}
	if result.Username == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("username", "result"))
	}
	if result.Email == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("email", "result"))
	}
	if result.IsActive == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("is_active", "result"))
	}
	if result.IsAdmin == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("is_admin", "result"))
	}
	if result.IsStaff == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("is_staff", "result"))
	}
	if result.CreatedAt == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("created_at", "result"))
	}
	return
}
