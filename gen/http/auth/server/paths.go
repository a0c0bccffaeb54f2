// Code generated by goa v3.23.1, DO NOT EDIT.
//
// HTTP request path constructors for the auth service.
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package server

import (
	"fmt"
)

// LoginAuthPath returns the URL path to the auth service login HTTP endpoint.
func LoginAuthPath() string {
	return "/api/auth/login"
}

// LogoutAuthPath returns the URL path to the auth service logout HTTP endpoint.
func LogoutAuthPath() string {
	return "/api/auth/logout"
}

// MeAuthPath returns the URL path to the auth service me HTTP endpoint.
func MeAuthPath() string {
	return "/api/auth/me"
}

// CreateUserAuthPath returns the URL path to the auth service create_user HTTP endpoint.
func CreateUserAuthPath() string {
	return "/api/auth/users"
}

// ListUsersAuthPath returns the URL path to the auth service list_users HTTP endpoint.
func ListUsersAuthPath() string {
	return "/api/auth/users"
}

// GetUserAuthPath returns the URL path to the auth service get_user HTTP endpoint.
func GetUserAuthPath(id int) string {
	return fmt.Sprintf("/api/auth/users/%v", id)
}

// UpdateUserAuthPath returns the URL path to the auth service update_user HTTP endpoint.
func UpdateUserAuthPath(id int) string {
	return fmt.Sprintf("/api/auth/users/%v", id)
}

// DeleteUserAuthPath returns the URL path to the auth service delete_user HTTP endpoint.
func DeleteUserAuthPath(id int) string {
	return fmt.Sprintf("/api/auth/users/%v", id)
}
