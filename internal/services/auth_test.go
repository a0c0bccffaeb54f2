package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohmedAnas/RB-WEB-sub000/gen/auth"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/domain"
	"github.com/MohmedAnas/RB-WEB-sub000/internal/util"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username, password string, active bool) *domain.User {
	t.Helper()

	hashed, err := util.HashPassword(password)
	require.NoError(t, err)
	user := &domain.User{
		Username:       username,
		Email:          username + "@rbinfotech.in",
		HashedPassword: hashed,
		IsActive:       active,
		IsStaff:        true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()
	seedUser(t, db, "operator", "secret123", true)

	res, err := svc.Login(ctx, &auth.LoginPayload{Username: "operator", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)

	// Last login is recorded.
	var stored domain.User
	require.NoError(t, db.Where("username = ?", "operator").First(&stored).Error)
	assert.NotNil(t, stored.LastLogin)

	// The token round-trips through validation.
	claims, err := util.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Username)
	assert.True(t, claims.IsStaff)
}

func TestLoginRejections(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()
	seedUser(t, db, "operator", "secret123", true)
	seedUser(t, db, "dormant", "secret123", false)

	_, err := svc.Login(ctx, &auth.LoginPayload{Username: "operator", Password: "wrong"})
	assertGoaError(t, err, "unauthorized")

	_, err = svc.Login(ctx, &auth.LoginPayload{Username: "ghost", Password: "secret123"})
	assertGoaError(t, err, "unauthorized")

	_, err = svc.Login(ctx, &auth.LoginPayload{Username: "dormant", Password: "secret123"})
	assertGoaError(t, err, "unauthorized")
}

func TestCreateUserDuplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)
	ctx := context.Background()
	seedUser(t, db, "operator", "secret123", true)

	_, err := svc.CreateUser(ctx, &auth.CreateUserPayload{
		Username: "operator",
		Email:    "other@rbinfotech.in",
		Password: "secret123",
	})
	assertGoaError(t, err, "bad_request")

	_, err = svc.CreateUser(ctx, &auth.CreateUserPayload{
		Username: "operator2",
		Email:    "operator@rbinfotech.in",
		Password: "secret123",
	})
	assertGoaError(t, err, "bad_request")

	res, err := svc.CreateUser(ctx, &auth.CreateUserPayload{
		Username: "operator2",
		Email:    "operator2@rbinfotech.in",
		Password: "secret123",
		IsStaff:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "operator2", res.Username)
	assert.True(t, res.IsStaff)
}

func TestDeleteUserSelfProtection(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)
	admin := seedUser(t, db, "admin", "secret123", true)
	other := seedUser(t, db, "operator", "secret123", true)

	ctx := context.WithValue(context.Background(), "user", admin)

	err := svc.DeleteUser(ctx, &auth.DeleteUserPayload{ID: int(admin.ID)})
	assertGoaError(t, err, "bad_request")

	require.NoError(t, svc.DeleteUser(ctx, &auth.DeleteUserPayload{ID: int(other.ID)}))

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
