package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/utils"
)

// AssignmentService covers assignment CRUD and assignee management, and
// alerts assignees about new and changed assignments.
type AssignmentService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewAssignmentService(db *gorm.DB, notifier *NotificationService) *AssignmentService {
	return &AssignmentService{db: db, notifier: notifier}
}

func (s *AssignmentService) List(companyID uint, status, priority string) ([]models.Assignment, error) {
	query := s.db.Preload("Assignees").Where("company_id = ?", companyID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if priority != "" {
		query = query.Where("priority = ?", priority)
	}

	var assignments []models.Assignment
	err := query.Order("created_at DESC").Find(&assignments).Error
	return assignments, err
}

func (s *AssignmentService) ListByAssignee(userID, companyID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.Preload("Assignees").
		Joins("JOIN assignment_assignees ON assignment_assignees.assignment_id = assignments.id").
		Where("assignment_assignees.user_id = ? AND assignments.company_id = ?", userID, companyID).
		Order("assignments.created_at DESC").
		Find(&assignments).Error
	return assignments, err
}

func (s *AssignmentService) Get(assignmentID uint) (models.Assignment, error) {
	var assignment models.Assignment
	err := s.db.Preload("Assignees").Preload("Comments").First(&assignment, assignmentID).Error
	return assignment, err
}

// Create stores the assignment, attaches the assignees and notifies each
// of them. Notification failures never block creation.
func (s *AssignmentService) Create(assignment models.Assignment, assigneeIDs []uint) (models.Assignment, error) {
	if assignment.Priority == "" {
		assignment.Priority = models.PriorityNormal
	}
	if assignment.Status == "" {
		assignment.Status = models.AssignmentStatusTodo
	}

	if err := s.db.Create(&assignment).Error; err != nil {
		return models.Assignment{}, err
	}

	for _, userID := range assigneeIDs {
		assignee := models.AssignmentAssignee{
			AssignmentID: assignment.ID,
			UserID:       userID,
			AssignedAt:   time.Now(),
		}
		if err := s.db.Create(&assignee).Error; err != nil {
			return models.Assignment{}, err
		}
	}

	s.notifyAssignees(assignment.ID, assignment.CreatedBy, models.NotificationTaskAssigned,
		"New assignment", fmt.Sprintf("You have been assigned to '%s'", assignment.Title), assigneeIDs)

	return s.Get(assignment.ID)
}

// Update applies field changes and notifies the assignees other than the
// actor. Status transitions are not constrained.
func (s *AssignmentService) Update(assignmentID, actorID uint, updates map[string]interface{}) (models.Assignment, error) {
	var assignment models.Assignment
	if err := s.db.Preload("Assignees").First(&assignment, assignmentID).Error; err != nil {
		return models.Assignment{}, err
	}

	if len(updates) > 0 {
		if err := s.db.Model(&assignment).Updates(updates).Error; err != nil {
			return models.Assignment{}, err
		}
	}

	assigneeIDs := make([]uint, 0, len(assignment.Assignees))
	for _, a := range assignment.Assignees {
		if a.UserID != actorID {
			assigneeIDs = append(assigneeIDs, a.UserID)
		}
	}
	s.notifyAssignees(assignment.ID, actorID, models.NotificationTaskUpdated,
		"Assignment updated", fmt.Sprintf("'%s' has been updated", assignment.Title), assigneeIDs)

	return s.Get(assignmentID)
}

func (s *AssignmentService) UpdateStatus(assignmentID, actorID uint, status string) (models.Assignment, error) {
	return s.Update(assignmentID, actorID, map[string]interface{}{"status": status})
}

func (s *AssignmentService) Delete(assignmentID uint) error {
	if err := s.db.Where("assignment_id = ?", assignmentID).Delete(&models.AssignmentAssignee{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&models.Assignment{}, assignmentID).Error
}

func (s *AssignmentService) AddAssignees(assignmentID uint, userIDs []uint) error {
	for _, userID := range userIDs {
		assignee := models.AssignmentAssignee{
			AssignmentID: assignmentID,
			UserID:       userID,
			AssignedAt:   time.Now(),
		}
		if err := s.db.Create(&assignee).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *AssignmentService) RemoveAssignee(assignmentID, userID uint) error {
	return s.db.Where("assignment_id = ? AND user_id = ?", assignmentID, userID).
		Delete(&models.AssignmentAssignee{}).Error
}

func (s *AssignmentService) notifyAssignees(assignmentID, actorID uint, notifType, title, message string, userIDs []uint) {
	var assignment models.Assignment
	if err := s.db.First(&assignment, assignmentID).Error; err != nil {
		utils.ErrorLogger.Printf("assignment %d: lookup for notifications failed: %v", assignmentID, err)
		return
	}

	ref := &Reference{ID: assignmentID, Type: "assignment"}
	for _, userID := range userIDs {
		if userID == actorID {
			continue
		}
		if err := s.notifier.Notify(assignment.CompanyID, userID, notifType, title, message, ref); err != nil {
			utils.ErrorLogger.Printf("assignment %d: notify user %d failed: %v", assignmentID, userID, err)
		}
	}
}
