// Code generated by goa v3.23.1, DO NOT EDIT.
//
// auth client
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package auth

import (
	"context"

	goa "goa.design/goa/v3/pkg"
)

// Client is the "auth" service client.
type Client struct {
	LoginEndpoint      goa.Endpoint
	LogoutEndpoint     goa.Endpoint
	MeEndpoint         goa.Endpoint
	CreateUserEndpoint goa.Endpoint
	ListUsersEndpoint  goa.Endpoint
	GetUserEndpoint    goa.Endpoint
	UpdateUserEndpoint goa.Endpoint
	DeleteUserEndpoint goa.Endpoint
}

// NewClient initializes a "auth" service client given the endpoints.
func NewClient(login, logout, me, createUser, listUsers, getUser, updateUser, deleteUser goa.Endpoint) *Client {
	return &Client{
		LoginEndpoint:      login,
		LogoutEndpoint:     logout,
		MeEndpoint:         me,
		CreateUserEndpoint: createUser,
		ListUsersEndpoint:  listUsers,
		GetUserEndpoint:    getUser,
		UpdateUserEndpoint: updateUser,
		DeleteUserEndpoint: deleteUser,
	}
}

// Login calls the "login" endpoint of the "auth" service.
// Login may return the following errors:
//   - "unauthorized" (type *goa.ServiceError)
//   - "not_found" (type *NotFound)
//   - "bad_request" (type *BadRequest)
//   - error: internal error
func (c *Client) Login(ctx context.Context, p *LoginPayload) (res *Loginresult, err error) {
	var ires any
	ires, err = c.LoginEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Loginresult), nil
}

// Logout calls the "logout" endpoint of the "auth" service.
// Logout may return the following errors:
//   - "unauthorized" (type *Unauthorized)
//   - "not_found" (type *NotFound)
//   - "bad_request" (type *BadRequest)
//   - error: internal error
func (c *Client) Logout(ctx context.Context, p *LogoutPayload) (res *Logoutresult, err error) {
	var ires any
	ires, err = c.LogoutEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Logoutresult), nil
}

// Me calls the "me" endpoint of the "auth" service.
// Me may return the following errors:
//   - "unauthorized" (type *goa.ServiceError)
//   - "not_found" (type *NotFound)
//   - "bad_request" (type *BadRequest)
//   - error: internal error
func (c *Client) Me(ctx context.Context, p *MePayload) (res *Userresult, err error) {
	var ires any
	ires, err = c.MeEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Userresult), nil
}

// CreateUser calls the "create_user" endpoint of the "auth" service.
// CreateUser may return the following errors:
//   - "bad_request" (type *goa.ServiceError)
//   - "unauthorized" (type *goa.ServiceError)
//   - "not_found" (type *NotFound)
//   - error: internal error
func (c *Client) CreateUser(ctx context.Context, p *CreateUserPayload) (res *Userresult, err error) {
	var ires any
	ires, err = c.CreateUserEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Userresult), nil
}

// ListUsers calls the "list_users" endpoint of the "auth" service.
// ListUsers may return the following errors:
//   - "unauthorized" (type *goa.ServiceError)
//   - "not_found" (type *NotFound)
//   - "bad_request" (type *BadRequest)
//   - error: internal error
func (c *Client) ListUsers(ctx context.Context, p *ListUsersPayload) (res []*Userresult, err error) {
	var ires any
	ires, err = c.ListUsersEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.([]*Userresult), nil
}

// GetUser calls the "get_user" endpoint of the "auth" service.
// GetUser may return the following errors:
//   - "not_found" (type *goa.ServiceError)
//   - "unauthorized" (type *goa.ServiceError)
//   - "bad_request" (type *BadRequest)
//   - error: internal error
func (c *Client) GetUser(ctx context.Context, p *GetUserPayload) (res *Userresult, err error) {
	var ires any
	ires, err = c.GetUserEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Userresult), nil
}

// UpdateUser calls the "update_user" endpoint of the "auth" service.
// UpdateUser may return the following errors:
//   - "not_found" (type *goa.ServiceError)
//   - "unauthorized" (type *goa.ServiceError)
//   - "bad_request" (type *BadRequest)
//   - error: internal error
func (c *Client) UpdateUser(ctx context.Context, p *UpdateUserPayload) (res *Userresult, err error) {
	var ires any
	ires, err = c.UpdateUserEndpoint(ctx, p)
	if err != nil {
		return
	}
	return ires.(*Userresult), nil
}

// DeleteUser calls the "delete_user" endpoint of the "auth" service.
// DeleteUser may return the following errors:
//   - "not_found" (type *goa.ServiceError)
//   - "unauthorized" (type *goa.ServiceError)
//   - "bad_request" (type *BadRequest)
//   - error: internal error
func (c *Client) DeleteUser(ctx context.Context, p *DeleteUserPayload) (err error) {
	_, err = c.DeleteUserEndpoint(ctx, p)
	return
}
