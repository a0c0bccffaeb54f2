// Code generated by goa v3.23.1, DO NOT EDIT.
//
// auth service
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package auth

import (
	"context"

	authviews "github.com/MohmedAnas/RB-WEB-sub000/gen/auth/views"
	goa "goa.design/goa/v3/pkg"
	"goa.design/goa/v3/security"
)

// Authentication and operator account service
type Service interface {
	// Authenticate an operator and return a JWT token
	Login(context.Context, *LoginPayload) (res *Loginresult, err error)
	// Logout operator
	Logout(context.Context, *LogoutPayload) (res *Logoutresult, err error)
	// Get current operator information
	Me(context.Context, *MePayload) (res *Userresult, err error)
	// Create a new operator account (Admin only)
	CreateUser(context.Context, *CreateUserPayload) (res *Userresult, err error)
	// List all operator accounts (Admin only)
	ListUsers(context.Context, *ListUsersPayload) (res []*Userresult, err error)
	// Get operator account by ID (Admin only)
	GetUser(context.Context, *GetUserPayload) (res *Userresult, err error)
	// Update operator account (Admin only)
	UpdateUser(context.Context, *UpdateUserPayload) (res *Userresult, err error)
	// Delete operator account (Admin only)
	DeleteUser(context.Context, *DeleteUserPayload) (err error)
}

// Auther defines the authorization functions to be implemented by the service.
type Auther interface {
	// JWTAuth implements the authorization logic for the JWT security scheme.
	JWTAuth(ctx context.Context, token string, schema *security.JWTScheme) (context.Context, error)
}

// APIName is the name of the API as defined in the design.
const APIName = "rbinfotech"

// APIVersion is the version of the API as defined in the design.
const APIVersion = "1.0.0"

// ServiceName is the name of the service as defined in the design. This is the
// same value that is set in the endpoint request contexts under the ServiceKey
// key.
const ServiceName = "auth"

// MethodNames lists the service method names as defined in the design. These
// are the same values that are set in the endpoint request contexts under the
// MethodKey key.
var MethodNames = [8]string{"login", "logout", "me", "create_user", "list_users", "get_user", "update_user", "delete_user"}

// Bad request
type BadRequest struct {
	// Error message
	Message *string
}

// CreateUserPayload is the payload type of the auth service create_user method.
type CreateUserPayload struct {
	// JWT token
	Token *string
	// Username
	Username string
	// Email address
	Email string
	// Password
	Password string
	// Full name
	FullName *string
	// Is user active
	IsActive bool
	// Is user admin
	IsAdmin bool
	// Is user staff
	IsStaff bool
}

// DeleteUserPayload is the payload type of the auth service delete_user method.
type DeleteUserPayload struct {
	// JWT token
	Token *string
	// User ID
	ID int
}

// GetUserPayload is the payload type of the auth service get_user method.
type GetUserPayload struct {
	// JWT token
	Token *string
	// User ID
	ID int
}

// ListUsersPayload is the payload type of the auth service list_users method.
type ListUsersPayload struct {
	// JWT token
	Token *string
	// Skip records
	Skip int
	// Limit records
	Limit int
}

// LoginPayload is the payload type of the auth service login method.
type LoginPayload struct {
	// Username
	Username string
	// Password
	Password string
}

// Loginresult is the result type of the auth service login method.
type Loginresult struct {
	// JWT access token
	AccessToken string
	// Token type
	TokenType string
}

// LogoutPayload is the payload type of the auth service logout method.
type LogoutPayload struct {
	// JWT token
	Token *string
}

// Logoutresult is the result type of the auth service logout method.
type Logoutresult struct {
	// Logout message
	Message *string
}

// MePayload is the payload type of the auth service me method.
type MePayload struct {
	// JWT token
	Token *string
}

// Resource not found
type NotFound struct {
	// Error message
	Message *string
}

// Unauthorized access
type Unauthorized struct {
	// Error message
	Message *string
}

// UpdateUserPayload is the payload type of the auth service update_user method.
type UpdateUserPayload struct {
	// JWT token
	Token *string
	// User ID
	ID int
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
	// Password
	Password *string
}

// Userresult is the result type of the auth service me method.
type Userresult struct {
	// User ID
	ID int
	// Username
	Username string
	// Email address
	Email string
	// Full name
	FullName *string
	// Is user active
	IsActive bool
	// Is user admin
	IsAdmin bool
	// Is user staff
	IsStaff bool
	// Creation timestamp
	CreatedAt string
	// Update timestamp
	UpdatedAt *string
	// Last login timestamp
	LastLogin *string
}

// Error returns an error description.
func (e *BadRequest) Error() string {
	return "Bad request"
}

// ErrorName returns "BadRequest".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *BadRequest) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "BadRequest".
func (e *BadRequest) GoaErrorName() string {
	return "bad_request"
}

// Error returns an error description.
func (e *NotFound) Error() string {
	return "Resource not found"
}

// ErrorName returns "NotFound".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *NotFound) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "NotFound".
func (e *NotFound) GoaErrorName() string {
	return "not_found"
}

// Error returns an error description.
func (e *Unauthorized) Error() string {
	return "Unauthorized access"
}

// ErrorName returns "Unauthorized".
//
// Deprecated: Use GoaErrorName - https://github.com/goadesign/goa/issues/3105
func (e *Unauthorized) ErrorName() string {
	return e.GoaErrorName()
}

// GoaErrorName returns "Unauthorized".
func (e *Unauthorized) GoaErrorName() string {
	return "unauthorized"
}

// MakeUnauthorized builds a goa.ServiceError from an error.
func MakeUnauthorized(err error) *goa.ServiceError {
	return goa.NewServiceError(err, "unauthorized", false, false, false)
}

// MakeBadRequest builds a goa.ServiceError from an error.
func MakeBadRequest(err error) *goa.ServiceError {
	return goa.NewServiceError(err, "bad_request", false, false, false)
}

// MakeNotFound builds a goa.ServiceError from an error.
func MakeNotFound(err error) *goa.ServiceError {
	return goa.NewServiceError(err, "not_found", false, false, false)
}

// NewLoginresult initializes result type Loginresult from viewed result type
// Loginresult.
func NewLoginresult(vres *authviews.Loginresult) *Loginresult {
	return newLoginresult(vres.Projected)
}

// NewViewedLoginresult initializes viewed result type Loginresult from result
// type Loginresult using the given view.
func NewViewedLoginresult(res *Loginresult, view string) *authviews.Loginresult {
	p := newLoginresultView(res)
	return &authviews.Loginresult{Projected: p, View: "default"}
}

// NewLogoutresult initializes result type Logoutresult from viewed result type
// Logoutresult.
func NewLogoutresult(vres *authviews.Logoutresult) *Logoutresult {
	return newLogoutresult(vres.Projected)
}

// NewViewedLogoutresult initializes viewed result type Logoutresult from
// result type Logoutresult using the given view.
func NewViewedLogoutresult(res *Logoutresult, view string) *authviews.Logoutresult {
	p := newLogoutresultView(res)
	return &authviews.Logoutresult{Projected: p, View: "default"}
}

// NewUserresult initializes result type Userresult from viewed result type
// Userresult.
func NewUserresult(vres *authviews.Userresult) *Userresult {
	return newUserresult(vres.Projected)
}

// NewViewedUserresult initializes viewed result type Userresult from result
// type Userresult using the given view.
func NewViewedUserresult(res *Userresult, view string) *authviews.Userresult {
	p := newUserresultView(res)
	return &authviews.Userresult{Projected: p, View: "default"}
}

// newLoginresult converts projected type Loginresult to service type
// Loginresult.
func newLoginresult(vres *authviews.LoginresultView) *Loginresult {
	res := &Loginresult{}
	if vres.AccessToken != nil {
		res.AccessToken = *vres.AccessToken
	}
	if vres.TokenType != nil {
		res.TokenType = *vres.TokenType
	}
	if vres.TokenType == nil {
		res.TokenType = "bearer"
	}
	return res
}

// newLoginresultView projects result type Loginresult to projected type
// LoginresultView using the "default" view.
func newLoginresultView(res *Loginresult) *authviews.LoginresultView {
	vres := &authviews.LoginresultView{
		AccessToken: &res.AccessToken,
		TokenType:   &res.TokenType,
	}
	return vres
}

// newLogoutresult converts projected type Logoutresult to service type
// Logoutresult.
func newLogoutresult(vres *authviews.LogoutresultView) *Logoutresult {
	res := &Logoutresult{
		Message: vres.Message,
	}
	return res
}

// newLogoutresultView projects result type Logoutresult to projected type
// LogoutresultView using the "default" view.
func newLogoutresultView(res *Logoutresult) *authviews.LogoutresultView {
	vres := &authviews.LogoutresultView{
		Message: res.Message,
	}
	return vres
}

// newUserresult converts projected type Userresult to service type Userresult.
func newUserresult(vres *authviews.UserresultView) *Userresult {
	res := &Userresult{
		FullName:  vres.FullName,
		UpdatedAt: vres.UpdatedAt,
		LastLogin: vres.LastLogin,
	}
	if vres.ID != nil {
		res.ID = *vres.ID
	}
	if vres.Username != nil {
		res.Username = *vres.Username
	}
	if vres.Email != nil {
		res.Email = *vres.Email
	}
	if vres.IsActive != nil {
		res.IsActive = *vres.IsActive
	}
	if vres.IsAdmin != nil {
		res.IsAdmin = *vres.IsAdmin
	}
	if vres.IsStaff != nil {
		res.IsStaff = *vres.IsStaff
	}
	if vres.CreatedAt != nil {
		res.CreatedAt = *vres.CreatedAt
	}
	return res
}

// newUserresultView projects result type Userresult to projected type
// UserresultView using the "default" view.
func newUserresultView(res *Userresult) *authviews.UserresultView {
	vres := &authviews.UserresultView{
		ID:        &res.ID,
		Username:  &res.Username,
		Email:     &res.Email,
		FullName:  res.FullName,
		IsActive:  &res.IsActive,
		IsAdmin:   &res.IsAdmin,
		IsStaff:   &res.IsStaff,
		CreatedAt: &res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
		LastLogin: res.LastLogin,
	}
	return vres
}
