package models

import "time"

const (
	NotificationTaskAssigned = "task_assigned"
	NotificationTaskUpdated  = "task_updated"
	NotificationNotice       = "notice"
	NotificationFeedback     = "feedback"
	NotificationComment      = "comment"
	NotificationSystem       = "system"
)

// Notification is an in-app notification row. Rows are never deleted;
// the only mutation after insert is flipping IsRead.
type Notification struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CompanyID     uint      `gorm:"index;not null" json:"company_id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	Type          string    `gorm:"type:varchar(30);not null" json:"type"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	ReferenceID   *uint     `json:"reference_id,omitempty"`
	ReferenceType *string   `gorm:"type:varchar(30)" json:"reference_type,omitempty"`
	IsRead        bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
