package models

import "time"

const (
	VerificationNone      = "none"
	VerificationPhoto     = "photo"
	VerificationSignature = "signature"
)

type ChecklistTemplate struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CompanyID uint           `gorm:"index;not null" json:"company_id"`
	BrandID   *uint          `gorm:"index" json:"brand_id,omitempty"`
	BranchID  *uint          `gorm:"index" json:"branch_id,omitempty"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Items     []TemplateItem `gorm:"foreignKey:TemplateID" json:"items"`
}

type TemplateItem struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	TemplateID       uint   `gorm:"index;not null" json:"template_id"`
	Content          string `gorm:"type:text;not null" json:"content"`
	VerificationType string `gorm:"type:varchar(20);not null;default:'none'" json:"verification_type"`
	SortOrder        int    `gorm:"not null;default:0" json:"sort_order"`
}
