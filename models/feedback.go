package models

import "time"

type Feedback struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CompanyID    uint      `gorm:"index;not null" json:"company_id"`
	AuthorID     uint      `gorm:"not null" json:"author_id"`
	TargetUserID *uint     `gorm:"index" json:"target_user_id,omitempty"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}
