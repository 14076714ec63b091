package models

import "time"

const (
	PriorityUrgent = "urgent"
	PriorityNormal = "normal"
	PriorityLow    = "low"
)

const (
	AssignmentStatusTodo       = "todo"
	AssignmentStatusInProgress = "in_progress"
	AssignmentStatusDone       = "done"
)

type Assignment struct {
	ID          uint                 `gorm:"primaryKey" json:"id"`
	CompanyID   uint                 `gorm:"index;not null" json:"company_id"`
	Title       string               `gorm:"type:varchar(255);not null" json:"title"`
	Description *string              `gorm:"type:text" json:"description,omitempty"`
	Priority    string               `gorm:"type:varchar(20);not null;default:'normal'" json:"priority"`
	Status      string               `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	DueDate     *time.Time           `json:"due_date,omitempty"`
	BranchID    *uint                `gorm:"index" json:"branch_id,omitempty"`
	CreatedBy   uint                 `gorm:"not null" json:"created_by"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Assignees   []AssignmentAssignee `gorm:"foreignKey:AssignmentID" json:"assignees"`
	Comments    []Comment            `gorm:"foreignKey:AssignmentID" json:"comments,omitempty"`
}

type AssignmentAssignee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	AssignmentID uint      `gorm:"index;not null;uniqueIndex:idx_assignment_user" json:"assignment_id"`
	UserID       uint      `gorm:"index;not null;uniqueIndex:idx_assignment_user" json:"user_id"`
	AssignedAt   time.Time `gorm:"not null" json:"assigned_at"`
}
