package models

import "time"

const (
	RoleStaff   = "staff"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

const (
	UserStatusPending  = "pending"
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Email         string     `gorm:"type:varchar(255);unique;not null" json:"email"`
	LoginID       string     `gorm:"type:varchar(100);unique;not null" json:"login_id"`
	FullName      string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Password      string     `gorm:"type:varchar(255);not null" json:"-"`
	Role          string     `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CompanyID     uint       `gorm:"index;not null" json:"company_id"`
	BranchID      *uint      `gorm:"index" json:"branch_id,omitempty"`
	Language      string     `gorm:"type:varchar(10);not null;default:'en'" json:"language"`
	ProfileImage  *string    `gorm:"type:varchar(512)" json:"profile_image,omitempty"`
	EmailVerified bool       `gorm:"not null;default:false" json:"email_verified"`
	JoinDate      *time.Time `json:"join_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
