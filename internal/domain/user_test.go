package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorRoles(t *testing.T) {
	staff := User{IsStaff: true}
	assert.True(t, staff.CanWorkInquiries())
	assert.False(t, staff.CanManageAccounts())

	admin := User{IsAdmin: true}
	assert.True(t, admin.CanWorkInquiries())
	assert.True(t, admin.CanManageAccounts())

	plain := User{IsActive: true}
	assert.False(t, plain.CanWorkInquiries())
	assert.False(t, plain.CanManageAccounts())
}
