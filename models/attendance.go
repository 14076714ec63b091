package models

import "time"

const (
	AttendanceNotStarted = "not_started"
	AttendanceOnDuty     = "on_duty"
	AttendanceOffDuty    = "off_duty"
	AttendanceCompleted  = "completed"
)

type Attendance struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	Date      string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_user_date" json:"date"`
	ClockIn   time.Time  `gorm:"not null" json:"clock_in"`
	ClockOut  *time.Time `json:"clock_out,omitempty"`
	Status    string     `gorm:"type:varchar(20);not null;default:'on_duty'" json:"status"`
	Location  *string    `gorm:"type:varchar(255)" json:"location,omitempty"`
	WorkHours *float64   `json:"work_hours,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
