package services

import (
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
)

// DashboardService computes the per-user home screen summary.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type AssignmentSummary struct {
	TotalAssignments int     `json:"total_assignments"`
	Completed        int     `json:"completed"`
	InProgress       int     `json:"in_progress"`
	Todo             int     `json:"todo"`
	CompletionRate   float64 `json:"completion_rate"`
}

type UrgentAlert struct {
	ID      uint    `json:"id"`
	Title   string  `json:"title"`
	DueDate *string `json:"due_date"`
}

type RecentNotice struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

type DashboardSummary struct {
	AssignmentSummary AssignmentSummary `json:"assignment_summary"`
	UrgentAlerts      []UrgentAlert     `json:"urgent_alerts"`
	RecentNotices     []RecentNotice    `json:"recent_notices"`
}

func (s *DashboardService) Summary(userID, companyID uint) (DashboardSummary, error) {
	var assignments []models.Assignment
	err := s.db.
		Joins("JOIN assignment_assignees ON assignment_assignees.assignment_id = assignments.id").
		Where("assignment_assignees.user_id = ? AND assignments.company_id = ?", userID, companyID).
		Find(&assignments).Error
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := AssignmentSummary{TotalAssignments: len(assignments)}
	urgent := make([]UrgentAlert, 0)
	for _, a := range assignments {
		switch a.Status {
		case models.AssignmentStatusDone:
			summary.Completed++
		case models.AssignmentStatusInProgress:
			summary.InProgress++
		case models.AssignmentStatusTodo:
			summary.Todo++
		}
		if a.Priority == models.PriorityUrgent && a.Status != models.AssignmentStatusDone {
			alert := UrgentAlert{ID: a.ID, Title: a.Title}
			if a.DueDate != nil {
				due := a.DueDate.Format("2006-01-02")
				alert.DueDate = &due
			}
			urgent = append(urgent, alert)
		}
	}
	if summary.TotalAssignments > 0 {
		rate := float64(summary.Completed) / float64(summary.TotalAssignments) * 100
		// One decimal, same rounding the mobile clients expect.
		summary.CompletionRate = float64(int(rate*10+0.5)) / 10
	}

	var notices []models.Notice
	err = s.db.Where("company_id = ?", companyID).
		Order("created_at DESC").
		Limit(5).
		Find(&notices).Error
	if err != nil {
		return DashboardSummary{}, err
	}

	recent := make([]RecentNotice, 0, len(notices))
	for _, n := range notices {
		recent = append(recent, RecentNotice{
			ID:        n.ID,
			Title:     n.Title,
			CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return DashboardSummary{
		AssignmentSummary: summary,
		UrgentAlerts:      urgent,
		RecentNotices:     recent,
	}, nil
}
