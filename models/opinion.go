package models

import "time"

const (
	OpinionSubmitted = "submitted"
	OpinionReviewed  = "reviewed"
	OpinionResolved  = "resolved"
)

type Opinion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"index;not null" json:"company_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Status    string    `gorm:"type:varchar(20);not null;default:'submitted'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
