package services

import (
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/utils"
)

// FeedbackService stores feedback and alerts the target user when one is
// named. Feedback without a target is stored silently.
type FeedbackService struct {
	db       *gorm.DB
	notifier *NotificationService
}

func NewFeedbackService(db *gorm.DB, notifier *NotificationService) *FeedbackService {
	return &FeedbackService{db: db, notifier: notifier}
}

func (s *FeedbackService) Create(companyID, authorID uint, targetUserID *uint, content string) (models.Feedback, error) {
	feedback := models.Feedback{
		CompanyID:    companyID,
		AuthorID:     authorID,
		TargetUserID: targetUserID,
		Content:      content,
	}
	if err := s.db.Create(&feedback).Error; err != nil {
		return models.Feedback{}, err
	}

	if targetUserID != nil {
		err := s.notifier.Notify(
			companyID,
			*targetUserID,
			models.NotificationFeedback,
			"New feedback received",
			truncate(content, notifyMessageLimit),
			&Reference{ID: feedback.ID, Type: "feedback"},
		)
		if err != nil {
			// Never block feedback creation.
			utils.ErrorLogger.Printf("feedback %d: notify user %d failed: %v", feedback.ID, *targetUserID, err)
		}
	}

	return feedback, nil
}

func (s *FeedbackService) List(companyID uint, targetUserID *uint) ([]models.Feedback, error) {
	query := s.db.Where("company_id = ?", companyID)
	if targetUserID != nil {
		query = query.Where("target_user_id = ?", *targetUserID)
	}

	var feedbacks []models.Feedback
	err := query.Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}
