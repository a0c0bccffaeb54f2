// Code generated by goa v3.23.1, DO NOT EDIT.
//
// auth HTTP server types
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package server

import (
	"unicode/utf8"

	auth "github.com/MohmedAnas/RB-WEB-sub000/gen/auth"
	authviews "github.com/MohmedAnas/RB-WEB-sub000/gen/auth/views"
	goa "goa.design/goa/v3/pkg"
)

// LoginRequestBody is the type of the "auth" service "login" endpoint HTTP
// request body.
type LoginRequestBody struct {
	// Username
	Username *string `form:"username,omitempty" json:"username,omitempty" xml:"username,omitempty"`
	// Password
	Password *string `form:"password,omitempty" json:"password,omitempty" xml:"password,omitempty"`
}

// CreateUserRequestBody is the type of the "auth" service "create_user"
// endpoint HTTP request body.
type CreateUserRequestBody struct {
	// Username
	Username *string `form:"username,omitempty" json:"username,omitempty" xml:"username,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Password
	Password *string `form:"password,omitempty" json:"password,omitempty" xml:"password,omitempty"`
	// Full name
	FullName *string `form:"full_name,omitempty" json:"full_name,omitempty" xml:"full_name,omitempty"`
	// Is user active
	IsActive *bool `form:"is_active,omitempty" json:"is_active,omitempty" xml:"is_active,omitempty"`
	// Is user admin
	IsAdmin *bool `form:"is_admin,omitempty" json:"is_admin,omitempty" xml:"is_admin,omitempty"`
	// Is user staff
	IsStaff *bool `form:"is_staff,omitempty" json:"is_staff,omitempty" xml:"is_staff,omitempty"`
}

// UpdateUserRequestBody is the type of the "auth" service "update_user"
// endpoint HTTP request body.
type UpdateUserRequestBody struct {
	// Username
	Username *string `form:"username,omitempty" json:"username,omitempty" xml:"username,omitempty"`
	// Email address
	Email *string `form:"email,omitempty" json:"email,omitempty" xml:"email,omitempty"`
	// Full name
	FullName *string `form:"full_name,omitempty" json:"full_name,omitempty" xml:"full_name,omitempty"`
	// Is user active
	IsActive *bool `form:"is_active,omitempty" json:"is_active,omitempty" xml:"is_active,omitempty"`
	// Is user admin
	IsAdmin *bool `form:"is_admin,omitempty" json:"is_admin,omitempty" xml:"is_admin,omitempty"`
	// Is user staff
	IsStaff *bool `form:"is_staff,omitempty" json:"is_staff,omitempty" xml:"is_staff,omitempty"`
	// Password
	Password *string `form:"password,omitempty" json:"password,omitempty" xml:"password,omitempty"`
}

// LoginResponseBody is the type of the "auth" service "login" endpoint HTTP
// response body.
type LoginResponseBody struct {
	// JWT access token
	AccessToken string `form:"access_token" json:"access_token" xml:"access_token"`
	// Token type
	TokenType string `form:"token_type" json:"token_type" xml:"token_type"`
}

// LogoutResponseBody is the type of the "auth" service "logout" endpoint HTTP
// response body.
type LogoutResponseBody struct {
	// Logout message
	Message *string `form:"message,omitempty" json:"message,omitempty" xml:"message,omitempty"`
}

// MeResponseBody is the type of the "auth" service "me" endpoint HTTP response
// body.
type MeResponseBody struct {
	// User ID
	ID int `form:"id" json:"id" xml:"id"`
	// Username
	Username string `form:"username" json:"username" xml:"username"`
	// Email address
	Email string `form:"email" json:"email" xml:"email"`
	// Full name
	FullName *string `form:"full_name,omitempty" json:"full_name,omitempty" xml:"full_name,omitempty"`
	// Is user active
	IsActive bool `form:"is_active" json:"is_active" xml:"is_active"`
	// Is user admin
	IsAdmin bool `form:"is_admin" json:"is_admin" xml:"is_admin"`
	// Is user staff
	IsStaff bool `form:"is_staff" json:"is_staff" xml:"is_staff"`
	// Creation timestamp
	CreatedAt string `form:"created_at" json:"created_at" xml:"created_at"`
	// Update timestamp
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
	// Last login timestamp
	LastLogin *string `form:"last_login,omitempty" json:"last_login,omitempty" xml:"last_login,omitempty"`
}

// CreateUserResponseBody is the type of the "auth" service "create_user"
// endpoint HTTP response body.
type CreateUserResponseBody struct {
	// User ID
	ID int `form:"id" json:"id" xml:"id"`
	// Username
	Username string `form:"username" json:"username" xml:"username"`
	// Email address
	Email string `form:"email" json:"email" xml:"email"`
	// Full name
	FullName *string `form:"full_name,omitempty" json:"full_name,omitempty" xml:"full_name,omitempty"`
	// Is user active
	IsActive bool `form:"is_active" json:"is_active" xml:"is_active"`
	// Is user admin
	IsAdmin bool `form:"is_admin" json:"is_admin" xml:"is_admin"`
	// Is user staff
	IsStaff bool `form:"is_staff" json:"is_staff" xml:"is_staff"`
	// Creation timestamp
	CreatedAt string `form:"created_at" json:"created_at" xml:"created_at"`
	// Update timestamp
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
	// Last login timestamp
	LastLogin *string `form:"last_login,omitempty" json:"last_login,omitempty" xml:"last_login,omitempty"`
}

// ListUsersResponseBody is the type of the "auth" service "list_users"
// endpoint HTTP response body.
type ListUsersResponseBody []*UserresultResponse

// GetUserResponseBody is the type of the "auth" service "get_user" endpoint
// HTTP response body.
type GetUserResponseBody struct {
	// User ID
	ID int `form:"id" json:"id" xml:"id"`
	// Username
	Username string `form:"username" json:"username" xml:"username"`
	// Email address
	Email string `form:"email" json:"email" xml:"email"`
	// Full name
	FullName *string `form:"full_name,omitempty" json:"full_name,omitempty" xml:"full_name,omitempty"`
	// Is user active
	IsActive bool `form:"is_active" json:"is_active" xml:"is_active"`
	// Is user admin
	IsAdmin bool `form:"is_admin" json:"is_admin" xml:"is_admin"`
	// Is user staff
	IsStaff bool `form:"is_staff" json:"is_staff" xml:"is_staff"`
	// Creation timestamp
	CreatedAt string `form:"created_at" json:"created_at" xml:"created_at"`
	// Update timestamp
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
	// Last login timestamp
	LastLogin *string `form:"last_login,omitempty" json:"last_login,omitempty" xml:"last_login,omitempty"`
}

// UpdateUserResponseBody is the type of the "auth" service "update_user"
// endpoint HTTP response body.
type UpdateUserResponseBody struct {
	// User ID
	ID int `form:"id" json:"id" xml:"id"`
	// Username
	Username string `form:"username" json:"username" xml:"username"`
	// Email address
	Email string `form:"email" json:"email" xml:"email"`
	// Full name
	FullName *string `form:"full_name,omitempty" json:"full_name,omitempty" xml:"full_name,omitempty"`
	// Is user active
	IsActive bool `form:"is_active" json:"is_active" xml:"is_active"`
	// Is user admin
	IsAdmin bool `form:"is_admin" json:"is_admin" xml:"is_admin"`
	// Is user staff
	IsStaff bool `form:"is_staff" json:"is_staff" xml:"is_staff"`
	// Creation timestamp
	CreatedAt string `form:"created_at" json:"created_at" xml:"created_at"`
	// Update timestamp
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
	// Last login timestamp
	LastLogin *string `form:"last_login,omitempty" json:"last_login,omitempty" xml:"last_login,omitempty"`
}

// LoginUnauthorizedResponseBody is the type of the "auth" service "login"
// endpoint HTTP response body for the "unauthorized" error.
type LoginUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// MeUnauthorizedResponseBody is the type of the "auth" service "me" endpoint
// HTTP response body for the "unauthorized" error.
type MeUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// CreateUserBadRequestResponseBody is the type of the "auth" service
// "create_user" endpoint HTTP response body for the "bad_request" error.
type CreateUserBadRequestResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// CreateUserUnauthorizedResponseBody is the type of the "auth" service
// "create_user" endpoint HTTP response body for the "unauthorized" error.
type CreateUserUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// ListUsersUnauthorizedResponseBody is the type of the "auth" service
// "list_users" endpoint HTTP response body for the "unauthorized" error.
type ListUsersUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// GetUserNotFoundResponseBody is the type of the "auth" service "get_user"
// endpoint HTTP response body for the "not_found" error.
type GetUserNotFoundResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// GetUserUnauthorizedResponseBody is the type of the "auth" service "get_user"
// endpoint HTTP response body for the "unauthorized" error.
type GetUserUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// UpdateUserNotFoundResponseBody is the type of the "auth" service
// "update_user" endpoint HTTP response body for the "not_found" error.
type UpdateUserNotFoundResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// UpdateUserUnauthorizedResponseBody is the type of the "auth" service
// "update_user" endpoint HTTP response body for the "unauthorized" error.
type UpdateUserUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// DeleteUserNotFoundResponseBody is the type of the "auth" service
// "delete_user" endpoint HTTP response body for the "not_found" error.
type DeleteUserNotFoundResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// DeleteUserUnauthorizedResponseBody is the type of the "auth" service
// "delete_user" endpoint HTTP response body for the "unauthorized" error.
type DeleteUserUnauthorizedResponseBody struct {
	// Name is the name of this class of errors.
	Name string `form:"name" json:"name" xml:"name"`
	// ID is a unique identifier for this particular occurrence of the problem.
	ID string `form:"id" json:"id" xml:"id"`
	// Message is a human-readable explanation specific to this occurrence of the
	// problem.
	Message string `form:"message" json:"message" xml:"message"`
	// Is the error temporary?
	Temporary bool `form:"temporary" json:"temporary" xml:"temporary"`
	// Is the error a timeout?
	Timeout bool `form:"timeout" json:"timeout" xml:"timeout"`
	// Is the error a server-side fault?
	Fault bool `form:"fault" json:"fault" xml:"fault"`
}

// UserresultResponse is used to define fields on response body types.
type UserresultResponse struct {
	// User ID
	ID int `form:"id" json:"id" xml:"id"`
	// Username
	Username string `form:"username" json:"username" xml:"username"`
	// Email address
	Email string `form:"email" json:"email" xml:"email"`
	// Full name
	FullName *string `form:"full_name,omitempty" json:"full_name,omitempty" xml:"full_name,omitempty"`
	// Is user active
	IsActive bool `form:"is_active" json:"is_active" xml:"is_active"`
	// Is user admin
	IsAdmin bool `form:"is_admin" json:"is_admin" xml:"is_admin"`
	// Is user staff
	IsStaff bool `form:"is_staff" json:"is_staff" xml:"is_staff"`
	// Creation timestamp
	CreatedAt string `form:"created_at" json:"created_at" xml:"created_at"`
	// Update timestamp
	UpdatedAt *string `form:"updated_at,omitempty" json:"updated_at,omitempty" xml:"updated_at,omitempty"`
	// Last login timestamp
	LastLogin *string `form:"last_login,omitempty" json:"last_login,omitempty" xml:"last_login,omitempty"`
}

// NewLoginResponseBody builds the HTTP response body from the result of the
// "login" endpoint of the "auth" service.
func NewLoginResponseBody(res *authviews.LoginresultView) *LoginResponseBody {
	body := &LoginResponseBody{
		AccessToken: *res.AccessToken,
		TokenType:   *res.TokenType,
	}
	return body
}

// NewLogoutResponseBody builds the HTTP response body from the result of the
// "logout" endpoint of the "auth" service.
func NewLogoutResponseBody(res *authviews.LogoutresultView) *LogoutResponseBody {
	body := &LogoutResponseBody{
		Message: res.Message,
	}
	return body
}

// NewMeResponseBody builds the HTTP response body from the result of the "me"
// endpoint of the "auth" service.
func NewMeResponseBody(res *authviews.UserresultView) *MeResponseBody {
	body := &MeResponseBody{
		ID:        *res.ID,
		Username:  *res.Username,
		Email:     *res.Email,
		FullName:  res.FullName,
		IsActive:  *res.IsActive,
		IsAdmin:   *res.IsAdmin,
		IsStaff:   *res.IsStaff,
		CreatedAt: *res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
		LastLogin: res.LastLogin,
	}
	return body
}

// NewCreateUserResponseBody builds the HTTP response body from the result of
// the "create_user" endpoint of the "auth" service.
func NewCreateUserResponseBody(res *authviews.UserresultView) *CreateUserResponseBody {
	body := &CreateUserResponseBody{
		ID:        *res.ID,
		Username:  *res.Username,
		Email:     *res.Email,
		FullName:  res.FullName,
		IsActive:  *res.IsActive,
		IsAdmin:   *res.IsAdmin,
		IsStaff:   *res.IsStaff,
		CreatedAt: *res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
		LastLogin: res.LastLogin,
	}
	return body
}

// NewListUsersResponseBody builds the HTTP response body from the result of
// the "list_users" endpoint of the "auth" service.
func NewListUsersResponseBody(res []*auth.Userresult) ListUsersResponseBody {
	body := make([]*UserresultResponse, len(res))
	for i, val := range res {
		if val == nil {
			body[i] = nil
			continue
		}
		body[i] = marshalAuthUserresultToUserresultResponse(val)
	}
	return body
}

// NewGetUserResponseBody builds the HTTP response body from the result of the
// "get_user" endpoint of the "auth" service.
func NewGetUserResponseBody(res *authviews.UserresultView) *GetUserResponseBody {
	body := &GetUserResponseBody{
		ID:        *res.ID,
		Username:  *res.Username,
		Email:     *res.Email,
		FullName:  res.FullName,
		IsActive:  *res.IsActive,
		IsAdmin:   *res.IsAdmin,
		IsStaff:   *res.IsStaff,
		CreatedAt: *res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
		LastLogin: res.LastLogin,
	}
	return body
}

// NewUpdateUserResponseBody builds the HTTP response body from the result of
// the "update_user" endpoint of the "auth" service.
func NewUpdateUserResponseBody(res *authviews.UserresultView) *UpdateUserResponseBody {
	body := &UpdateUserResponseBody{
		ID:        *res.ID,
		Username:  *res.Username,
		Email:     *res.Email,
		FullName:  res.FullName,
		IsActive:  *res.IsActive,
		IsAdmin:   *res.IsAdmin,
		IsStaff:   *res.IsStaff,
		CreatedAt: *res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
		LastLogin: res.LastLogin,
	}
	return body
}

// NewLoginUnauthorizedResponseBody builds the HTTP response body from the
// result of the "login" endpoint of the "auth" service.
func NewLoginUnauthorizedResponseBody(res *goa.ServiceError) *LoginUnauthorizedResponseBody {
	body := &LoginUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewMeUnauthorizedResponseBody builds the HTTP response body from the result
// of the "me" endpoint of the "auth" service.
func NewMeUnauthorizedResponseBody(res *goa.ServiceError) *MeUnauthorizedResponseBody {
	body := &MeUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewCreateUserBadRequestResponseBody builds the HTTP response body from the
// result of the "create_user" endpoint of the "auth" service.
func NewCreateUserBadRequestResponseBody(res *goa.ServiceError) *CreateUserBadRequestResponseBody {
	body := &CreateUserBadRequestResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewCreateUserUnauthorizedResponseBody builds the HTTP response body from the
// result of the "create_user" endpoint of the "auth" service.
func NewCreateUserUnauthorizedResponseBody(res *goa.ServiceError) *CreateUserUnauthorizedResponseBody {
	body := &CreateUserUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewListUsersUnauthorizedResponseBody builds the HTTP response body from the
// result of the "list_users" endpoint of the "auth" service.
func NewListUsersUnauthorizedResponseBody(res *goa.ServiceError) *ListUsersUnauthorizedResponseBody {
	body := &ListUsersUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewGetUserNotFoundResponseBody builds the HTTP response body from the result
// of the "get_user" endpoint of the "auth" service.
func NewGetUserNotFoundResponseBody(res *goa.ServiceError) *GetUserNotFoundResponseBody {
	body := &GetUserNotFoundResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewGetUserUnauthorizedResponseBody builds the HTTP response body from the
// result of the "get_user" endpoint of the "auth" service.
func NewGetUserUnauthorizedResponseBody(res *goa.ServiceError) *GetUserUnauthorizedResponseBody {
	body := &GetUserUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewUpdateUserNotFoundResponseBody builds the HTTP response body from the
// result of the "update_user" endpoint of the "auth" service.
func NewUpdateUserNotFoundResponseBody(res *goa.ServiceError) *UpdateUserNotFoundResponseBody {
	body := &UpdateUserNotFoundResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewUpdateUserUnauthorizedResponseBody builds the HTTP response body from the
// result of the "update_user" endpoint of the "auth" service.
func NewUpdateUserUnauthorizedResponseBody(res *goa.ServiceError) *UpdateUserUnauthorizedResponseBody {
	body := &UpdateUserUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewDeleteUserNotFoundResponseBody builds the HTTP response body from the
// result of the "delete_user" endpoint of the "auth" service.
func NewDeleteUserNotFoundResponseBody(res *goa.ServiceError) *DeleteUserNotFoundResponseBody {
	body := &DeleteUserNotFoundResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewDeleteUserUnauthorizedResponseBody builds the HTTP response body from the
// result of the "delete_user" endpoint of the "auth" service.
func NewDeleteUserUnauthorizedResponseBody(res *goa.ServiceError) *DeleteUserUnauthorizedResponseBody {
	body := &DeleteUserUnauthorizedResponseBody{
		Name:      res.Name,
		ID:        res.ID,
		Message:   res.Message,
		Temporary: res.Temporary,
		Timeout:   res.Timeout,
		Fault:     res.Fault,
	}
	return body
}

// NewLoginPayload builds a auth service login endpoint payload.
func NewLoginPayload(body *LoginRequestBody) *auth.LoginPayload {
	v := &auth.LoginPayload{
		Username: *body.Username,
		Password: *body.Password,
	}

	return v
}

// NewLogoutPayload builds a auth service logout endpoint payload.
func NewLogoutPayload(token *string) *auth.LogoutPayload {
	v := &auth.LogoutPayload{}
	v.Token = token

	return v
}

// NewMePayload builds a auth service me endpoint payload.
func NewMePayload(token *string) *auth.MePayload {
	v := &auth.MePayload{}
	v.Token = token

	return v
}

// NewCreateUserPayload builds a auth service create_user endpoint payload.
func NewCreateUserPayload(body *CreateUserRequestBody, token *string) *auth.CreateUserPayload {
	v := &auth.CreateUserPayload{
		Username: *body.Username,
		Email:    *body.Email,
		Password: *body.Password,
		FullName: body.FullName,
	}
	if body.IsActive != nil {
		v.IsActive = *body.IsActive
	}
	if body.IsAdmin != nil {
		v.IsAdmin = *body.IsAdmin
	}
	if body.IsStaff != nil {
		v.IsStaff = *body.IsStaff
	}
	if body.IsActive == nil {
		v.IsActive = true
	}
	if body.IsAdmin == nil {
		v.IsAdmin = false
	}
	if body.IsStaff == nil {
		v.IsStaff = false
	}
	v.Token = token

	return v
}

// NewListUsersPayload builds a auth service list_users endpoint payload.
func NewListUsersPayload(skip int, limit int, token *string) *auth.ListUsersPayload {
	v := &auth.ListUsersPayload{}
	v.Skip = skip
	v.Limit = limit
	v.Token = token

	return v
}

// NewGetUserPayload builds a auth service get_user endpoint payload.
func NewGetUserPayload(id int, token *string) *auth.GetUserPayload {
	v := &auth.GetUserPayload{}
	v.ID = id
	v.Token = token

	return v
}

// NewUpdateUserPayload builds a auth service update_user endpoint payload.
func NewUpdateUserPayload(body *UpdateUserRequestBody, id int, token *string) *auth.UpdateUserPayload {
	v := &auth.UpdateUserPayload{
		Username: body.Username,
		Email:    body.Email,
		FullName: body.FullName,
		IsActive: body.IsActive,
		IsAdmin:  body.IsAdmin,
		IsStaff:  body.IsStaff,
		Password: body.Password,
	}
	v.ID = id
	v.Token = token

	return v
}

// NewDeleteUserPayload builds a auth service delete_user endpoint payload.
func NewDeleteUserPayload(id int, token *string) *auth.DeleteUserPayload {
	v := &auth.DeleteUserPayload{}
	v.ID = id
	v.Token = token

	return v
}

// ValidateLoginRequestBody runs the validations defined on LoginRequestBody
func ValidateLoginRequestBody(body *LoginRequestBody) (err error) {
	if body.Username == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("username", "body"))
	}
	if body.Password == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("password", "body"))
	}
	if body.Username != nil {
		if utf8.RuneCountInString(*body.Username) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.username", *body.Username, utf8.RuneCountInString(*body.Username), 1, true))
		}
	}
	if body.Password != nil {
		if utf8.RuneCountInString(*body.Password) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.password", *body.Password, utf8.RuneCountInString(*body.Password), 1, true))
		}
	}
	return
}

// ValidateCreateUserRequestBody runs the validations defined on
// create_user_request_body
func ValidateCreateUserRequestBody(body *CreateUserRequestBody) (err error) {
	if body.Username == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("username", "body"))
	}
	if body.Email == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("email", "body"))
	}
	if body.Password == nil {
		err = goa.MergeErrors(err, goa.MissingFieldError("password", "body"))
	}
	if body.Username != nil {
		if utf8.RuneCountInString(*body.Username) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.username", *body.Username, utf8.RuneCountInString(*body.Username), 1, true))
		}
	}
	if body.Email != nil {
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", *body.Email, goa.FormatEmail))
	}
	if body.Password != nil {
		if utf8.RuneCountInString(*body.Password) < 6 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.password", *body.Password, utf8.RuneCountInString(*body.Password), 6, true))
		}
	}
	return
}
