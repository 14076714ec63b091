package models

import "time"

const (
	ContentTypeText  = "text"
	ContentTypeImage = "image"
	ContentTypeVideo = "video"
	ContentTypeFile  = "file"
)

type Comment struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AssignmentID uint      `gorm:"index;not null" json:"assignment_id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	UserName     *string   `gorm:"type:varchar(255)" json:"user_name,omitempty"`
	Content      *string   `gorm:"type:text" json:"content,omitempty"`
	ContentType  string    `gorm:"type:varchar(20);not null;default:'text'" json:"content_type"`
	Attachments  *string   `gorm:"type:text" json:"attachments,omitempty"`
	IsManager    bool      `gorm:"not null;default:false" json:"is_manager"`
	CreatedAt    time.Time `json:"created_at"`
}
