package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/utils"
)

const notifyMessageLimit = 100

// CommentService persists assignment comments and fans out notifications
// to the other assignees.
type CommentService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewCommentService(db *gorm.DB, notifier *NotificationService) *CommentService {
	return &CommentService{db: db, notifier: notifier}
}

func (s *CommentService) ListByAssignment(assignmentID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("assignment_id = ?", assignmentID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// Create stores the comment, then notifies every assignee of the parent
// assignment except the author. The comment write can fail the call; the
// fan-out never can.
func (s *CommentService) Create(assignmentID, userID uint, userName, content, contentType string, attachments *string) (models.Comment, error) {
	if contentType == "" {
		contentType = models.ContentTypeText
	}

	comment := models.Comment{
		AssignmentID: assignmentID,
		UserID:       userID,
		Content:      &content,
		ContentType:  contentType,
		Attachments:  attachments,
	}
	if userName != "" {
		comment.UserName = &userName
	}

	if err := s.db.Create(&comment).Error; err != nil {
		return models.Comment{}, err
	}

	s.fanOut(comment, userName, content)
	return comment, nil
}

func (s *CommentService) Delete(commentID uint) error {
	return s.db.Delete(&models.Comment{}, commentID).Error
}

// fanOut is fully self-contained: a failed assignment lookup or a failed
// notify leaves the stored comment untouched.
func (s *CommentService) fanOut(comment models.Comment, authorName, content string) {
	var assignment models.Assignment
	err := s.db.Preload("Assignees").First(&assignment, comment.AssignmentID).Error
	if err != nil {
		utils.ErrorLogger.Printf("comment %d: assignment lookup failed, skipping notifications: %v", comment.ID, err)
		return
	}

	title := fmt.Sprintf("New comment on '%s'", assignment.Title)
	message := fmt.Sprintf("%s: %s", authorName, truncate(content, notifyMessageLimit))
	ref := &Reference{ID: comment.ID, Type: "comment"}

	for _, assignee := range assignment.Assignees {
		if assignee.UserID == comment.UserID {
			continue
		}
		err := s.notifier.Notify(assignment.CompanyID, assignee.UserID, models.NotificationComment, title, message, ref)
		if err != nil {
			utils.ErrorLogger.Printf("comment %d: notify user %d failed: %v", comment.ID, assignee.UserID, err)
		}
	}
}

// truncate takes a fixed rune prefix, not word-boundary aware.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
