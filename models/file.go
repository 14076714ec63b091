package models

import "time"

type UploadedFile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FileName     string    `gorm:"type:varchar(255);not null" json:"file_name"`
	OriginalName string    `gorm:"type:varchar(255);not null" json:"original_name"`
	URL          string    `gorm:"type:varchar(512);not null" json:"url"`
	Folder       string    `gorm:"type:varchar(100);not null" json:"folder"`
	UploadedBy   uint      `gorm:"index;not null" json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}
