// Code generated by goa v3.23.1, DO NOT EDIT.
//
// auth endpoints
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package auth

import (
	"context"

	goa "goa.design/goa/v3/pkg"
	"goa.design/goa/v3/security"
)

// Endpoints wraps the "auth" service endpoints.
type Endpoints struct {
	Login      goa.Endpoint
	Logout     goa.Endpoint
	Me         goa.Endpoint
	CreateUser goa.Endpoint
	ListUsers  goa.Endpoint
	GetUser    goa.Endpoint
	UpdateUser goa.Endpoint
	DeleteUser goa.Endpoint
}

// NewEndpoints wraps the methods of the "auth" service with endpoints.
func NewEndpoints(s Service) *Endpoints {
	// Casting service to Auther interface
	a := s.(Auther)
	return &Endpoints{
		Login:      NewLoginEndpoint(s),
		Logout:     NewLogoutEndpoint(s, a.JWTAuth),
		Me:         NewMeEndpoint(s, a.JWTAuth),
		CreateUser: NewCreateUserEndpoint(s, a.JWTAuth),
		ListUsers:  NewListUsersEndpoint(s, a.JWTAuth),
		GetUser:    NewGetUserEndpoint(s, a.JWTAuth),
		UpdateUser: NewUpdateUserEndpoint(s, a.JWTAuth),
		DeleteUser: NewDeleteUserEndpoint(s, a.JWTAuth),
	}
}

// Use applies the given middleware to all the "auth" service endpoints.
func (e *Endpoints) Use(m func(goa.Endpoint) goa.Endpoint) {
	e.Login = m(e.Login)
	e.Logout = m(e.Logout)
	e.Me = m(e.Me)
	e.CreateUser = m(e.CreateUser)
	e.ListUsers = m(e.ListUsers)
	e.GetUser = m(e.GetUser)
	e.UpdateUser = m(e.UpdateUser)
	e.DeleteUser = m(e.DeleteUser)
}

// NewLoginEndpoint returns an endpoint function that calls the method "login"
// of service "auth".
func NewLoginEndpoint(s Service) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*LoginPayload)
		res, err := s.Login(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedLoginresult(res, "default")
		return vres, nil
	}
}

// NewLogoutEndpoint returns an endpoint function that calls the method
// "logout" of service "auth".
func NewLogoutEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*LogoutPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		res, err := s.Logout(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedLogoutresult(res, "default")
		return vres, nil
	}
}

// NewMeEndpoint returns an endpoint function that calls the method "me" of
// service "auth".
func NewMeEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*MePayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		res, err := s.Me(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedUserresult(res, "default")
		return vres, nil
	}
}

// NewCreateUserEndpoint returns an endpoint function that calls the method
// "create_user" of service "auth".
func NewCreateUserEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*CreateUserPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{"admin"},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		res, err := s.CreateUser(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedUserresult(res, "default")
		return vres, nil
	}
}

// NewListUsersEndpoint returns an endpoint function that calls the method
// "list_users" of service "auth".
func NewListUsersEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*ListUsersPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{"admin"},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return s.ListUsers(ctx, p)
	}
}

// NewGetUserEndpoint returns an endpoint function that calls the method
// "get_user" of service "auth".
func NewGetUserEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*GetUserPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{"admin"},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		res, err := s.GetUser(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedUserresult(res, "default")
		return vres, nil
	}
}

// NewUpdateUserEndpoint returns an endpoint function that calls the method
// "update_user" of service "auth".
func NewUpdateUserEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*UpdateUserPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{"admin"},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		res, err := s.UpdateUser(ctx, p)
		if err != nil {
			return nil, err
		}
		vres := NewViewedUserresult(res, "default")
		return vres, nil
	}
}

// NewDeleteUserEndpoint returns an endpoint function that calls the method
// "delete_user" of service "auth".
func NewDeleteUserEndpoint(s Service, authJWTFn security.AuthJWTFunc) goa.Endpoint {
	return func(ctx context.Context, req any) (any, error) {
		p := req.(*DeleteUserPayload)
		var err error
		sc := security.JWTScheme{
			Name:           "jwt",
			Scopes:         []string{"admin", "staff"},
			RequiredScopes: []string{"admin"},
		}
		var token string
		if p.Token != nil {
			token = *p.Token
		}
		ctx, err = authJWTFn(ctx, token, &sc)
		if err != nil {
			return nil, err
		}
		return nil, s.DeleteUser(ctx, p)
	}
}
