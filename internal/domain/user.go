package domain

import (
	"time"

	"gorm.io/gorm"
)

// User is a dashboard operator account. Staff can work inquiries; admins
// additionally manage accounts. Customers submitting forms never get one.
type User struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string     `gorm:"not null" json:"-"`
	FullName       *string    `json:"full_name"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	IsAdmin        bool       `gorm:"default:false" json:"is_admin"`
	IsStaff        bool       `gorm:"default:false" json:"is_staff"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastLogin      *time.Time `json:"last_login"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate hook
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

// CanWorkInquiries reports whether the operator may use the staff
// dashboard endpoints. Admins implicitly can.
func (u *User) CanWorkInquiries() bool {
	return u.IsStaff || u.IsAdmin
}

// CanManageAccounts reports whether the operator may create, modify or
// delete other operator accounts.
func (u *User) CanManageAccounts() bool {
	return u.IsAdmin
}
