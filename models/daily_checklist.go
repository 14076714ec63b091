package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ChecklistItem is the per-day completion state of one template item.
// The content and verification type are snapshots taken at generation
// time; later template edits do not touch them.
type ChecklistItem struct {
	ItemID           uint       `json:"item_id"`
	Content          string     `json:"content"`
	VerificationType string     `json:"verification_type"`
	IsCompleted      bool       `json:"is_completed"`
	CompletedBy      *uint      `json:"completed_by"`
	CompletedAt      *time.Time `json:"completed_at"`
	VerificationData *string    `json:"verification_data"`
}

// ChecklistItems is stored as a single JSON text column so the item list
// is always written back as one unit.
type ChecklistItems []ChecklistItem

func (ci ChecklistItems) Value() (driver.Value, error) {
	if ci == nil {
		ci = ChecklistItems{}
	}
	return json.Marshal(ci)
}

func (ci *ChecklistItems) Scan(value interface{}) error {
	if value == nil {
		*ci = ChecklistItems{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ci)
	case string:
		return json.Unmarshal([]byte(v), ci)
	default:
		return fmt.Errorf("cannot scan %T into ChecklistItems", value)
	}
}

// UintList is a JSON-encoded list of ids in a text column.
type UintList []uint

func (ul UintList) Value() (driver.Value, error) {
	if ul == nil {
		return nil, nil
	}
	return json.Marshal(ul)
}

func (ul *UintList) Scan(value interface{}) error {
	if value == nil {
		*ul = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ul)
	case string:
		return json.Unmarshal([]byte(v), ul)
	default:
		return fmt.Errorf("cannot scan %T into UintList", value)
	}
}

type DailyChecklist struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	TemplateID uint           `gorm:"index;not null" json:"template_id"`
	BranchID   uint           `gorm:"index;not null" json:"branch_id"`
	Date       string         `gorm:"type:varchar(10);index;not null" json:"date"`
	Items      ChecklistItems `gorm:"type:text;not null" json:"items"`
	GroupIDs   UintList       `gorm:"type:text" json:"group_ids,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
