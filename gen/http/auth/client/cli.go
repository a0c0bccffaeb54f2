// Code generated by goa v3.23.1, DO NOT EDIT.
//
// auth HTTP client CLI support package
//
// Command:
// $ goa gen github.com/MohmedAnas/RB-WEB-sub000/api/design -o .

package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	auth "github.com/MohmedAnas/RB-WEB-sub000/gen/auth"
	goa "goa.design/goa/v3/pkg"
)

// BuildLoginPayload builds the payload for the auth login endpoint from CLI
// flags.
func BuildLoginPayload(authLoginBody string) (*auth.LoginPayload, error) {
	var err error
	var body LoginRequestBody
	{
		err = json.Unmarshal([]byte(authLoginBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"password\": \"password\",\n      \"username\": \"admin\"\n   }'")
		}
		if utf8.RuneCountInString(body.Username) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.username", body.Username, utf8.RuneCountInString(body.Username), 1, true))
		}
		if utf8.RuneCountInString(body.Password) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.password", body.Password, utf8.RuneCountInString(body.Password), 1, true))
		}
		if err != nil {
			return nil, err
		}
	}
	v := &auth.LoginPayload{
		Username: body.Username,
		Password: body.Password,
	}

	return v, nil
}

// BuildLogoutPayload builds the payload for the auth logout endpoint from CLI
// flags.
func BuildLogoutPayload(authLogoutToken string) (*auth.LogoutPayload, error) {
	var token *string
	{
		if authLogoutToken != "" {
			token = &authLogoutToken
		}
	}
	v := &auth.LogoutPayload{}
	v.Token = token

	return v, nil
}

// BuildMePayload builds the payload for the auth me endpoint from CLI flags.
func BuildMePayload(authMeToken string) (*auth.MePayload, error) {
	var token *string
	{
		if authMeToken != "" {
			token = &authMeToken
		}
	}
	v := &auth.MePayload{}
	v.Token = token

	return v, nil
}

// BuildCreateUserPayload builds the payload for the auth create_user endpoint
// from CLI flags.
func BuildCreateUserPayload(authCreateUserBody string, authCreateUserToken string) (*auth.CreateUserPayload, error) {
	var err error
	var body CreateUserRequestBody
	{
		err = json.Unmarshal([]byte(authCreateUserBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"email\": \"user@example.com\",\n      \"full_name\": \"Voluptatem quis est et esse deleniti.\",\n      \"is_active\": false,\n      \"is_admin\": false,\n      \"is_staff\": true,\n      \"password\": \"password123\",\n      \"username\": \"newuser\"\n   }'")
		}
		if utf8.RuneCountInString(body.Username) < 1 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.username", body.Username, utf8.RuneCountInString(body.Username), 1, true))
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.email", body.Email, goa.FormatEmail))
		if utf8.RuneCountInString(body.Password) < 6 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.password", body.Password, utf8.RuneCountInString(body.Password), 6, true))
		}
		if err != nil {
			return nil, err
		}
	}
	var token *string
	{
		if authCreateUserToken != "" {
			token = &authCreateUserToken
		}
	}
	v := &auth.CreateUserPayload{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
		FullName: body.FullName,
		IsActive: body.IsActive,
		IsAdmin:  body.IsAdmin,
		IsStaff:  body.IsStaff,
	}
	{
		var zero bool
		if v.IsActive == zero {
			v.IsActive = true
		}
	}
	{
		var zero bool
		if v.IsAdmin == zero {
			v.IsAdmin = false
		}
	}
	{
		var zero bool
		if v.IsStaff == zero {
			v.IsStaff = false
		}
	}
	v.Token = token

	return v, nil
}

// BuildListUsersPayload builds the payload for the auth list_users endpoint
// from CLI flags.
func BuildListUsersPayload(authListUsersSkip string, authListUsersLimit string, authListUsersToken string) (*auth.ListUsersPayload, error) {
	var err error
	var skip int
	{
		if authListUsersSkip != "" {
			var v int64
			v, err = strconv.ParseInt(authListUsersSkip, 10, strconv.IntSize)
			skip = int(v)
			if err != nil {
				return nil, fmt.Errorf("invalid value for skip, must be INT")
			}
			if skip < 0 {
				err = goa.MergeErrors(err, goa.InvalidRangeError("skip", skip, 0, true))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var limit int
	{
		if authListUsersLimit != "" {
			var v int64
			v, err = strconv.ParseInt(authListUsersLimit, 10, strconv.IntSize)
			limit = int(v)
			if err != nil {
				return nil, fmt.Errorf("invalid value for limit, must be INT")
			}
			if limit < 1 {
				err = goa.MergeErrors(err, goa.InvalidRangeError("limit", limit, 1, true))
			}
			if limit > 500 {
				err = goa.MergeErrors(err, goa.InvalidRangeError("limit", limit, 500, false))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var token *string
	{
		if authListUsersToken != "" {
			token = &authListUsersToken
		}
	}
	v := &auth.ListUsersPayload{}
	v.Skip = skip
	v.Limit = limit
	v.Token = token

	return v, nil
}

// BuildGetUserPayload builds the payload for the auth get_user endpoint from
// CLI flags.
func BuildGetUserPayload(authGetUserID string, authGetUserToken string) (*auth.GetUserPayload, error) {
	var err error
	var id int
	{
		var v int64
		v, err = strconv.ParseInt(authGetUserID, 10, strconv.IntSize)
		id = int(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for id, must be INT")
		}
	}
	var token *string
	{
		if authGetUserToken != "" {
			token = &authGetUserToken
		}
	}
	v := &auth.GetUserPayload{}
	v.ID = id
	v.Token = token

	return v, nil
}

// BuildUpdateUserPayload builds the payload for the auth update_user endpoint
// from CLI flags.
func BuildUpdateUserPayload(authUpdateUserBody string, authUpdateUserID string, authUpdateUserToken string) (*auth.UpdateUserPayload, error) {
	var err error
	var body UpdateUserRequestBody
	{
		err = json.Unmarshal([]byte(authUpdateUserBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"email\": \"Mollitia debitis soluta error nisi eos laborum.\",\n      \"full_name\": \"Rem ipsa dolorem et autem placeat.\",\n      \"is_active\": false,\n      \"is_admin\": false,\n      \"is_staff\": false,\n      \"password\": \"Necessitatibus maxime.\",\n      \"username\": \"Maxime accusantium ut dolorum.\"\n   }'")
		}
	}
	var id int
	{
		var v int64
		v, err = strconv.ParseInt(authUpdateUserID, 10, strconv.IntSize)
		id = int(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for id, must be INT")
		}
	}
	var token *string
	{
		if authUpdateUserToken != "" {
			token = &authUpdateUserToken
		}
	}
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

	return v, nil
}

// BuildDeleteUserPayload builds the payload for the auth delete_user endpoint
// from CLI flags.
func BuildDeleteUserPayload(authDeleteUserID string, authDeleteUserToken string) (*auth.DeleteUserPayload, error) {
	var err error
	var id int
	{
		var v int64
		v, err = strconv.ParseInt(authDeleteUserID, 10, strconv.IntSize)
		id = int(v)
		if err != nil {
			return nil, fmt.Errorf("invalid value for id, must be INT")
		}
	}
	var token *string
	{
		if authDeleteUserToken != "" {
			token = &authDeleteUserToken
		}
	}
	v := &auth.DeleteUserPayload{}
	v.ID = id
	v.Token = token

	return v, nil
}
