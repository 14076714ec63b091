package models

import "time"

type Notice struct {
	ID            uint                 `gorm:"primaryKey" json:"id"`
	CompanyID     uint                 `gorm:"index;not null" json:"company_id"`
	AuthorID      uint                 `gorm:"not null" json:"author_id"`
	Title         string               `gorm:"type:varchar(255);not null" json:"title"`
	Content       string               `gorm:"type:text;not null" json:"content"`
	IsImportant   bool                 `gorm:"not null;default:false" json:"is_important"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	Confirmations []NoticeConfirmation `gorm:"foreignKey:NoticeID" json:"confirmations,omitempty"`
}

type NoticeConfirmation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	NoticeID    uint      `gorm:"index;not null;uniqueIndex:idx_notice_user" json:"notice_id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_notice_user" json:"user_id"`
	ConfirmedAt time.Time `gorm:"not null" json:"confirmed_at"`
}
