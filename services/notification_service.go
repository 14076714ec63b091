package services

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/notifications"
	"github.com/jwchung/staffdesk/utils"
)

// Reference points a notification at the entity that caused it.
type Reference struct {
	ID   uint
	Type string
}

// NotificationService creates in-app notification rows and hands external
// delivery to the dispatcher. External delivery is best effort; only the
// row insert can fail the operation.
type NotificationService struct {
	db         *gorm.DB
	dispatcher *notifications.Dispatcher
}

func NewNotificationService(db *gorm.DB, dispatcher *notifications.Dispatcher) *NotificationService {
	return &NotificationService{db: db, dispatcher: dispatcher}
}

// Notify persists the in-app notification, then dispatches to external
// channels when the recipient has an email address. A missing recipient
// or any channel failure is logged and absorbed; the stored row already
// counts as successful in-app delivery.
func (s *NotificationService) Notify(companyID, userID uint, notifType, title, message string, ref *Reference) error {
	notif := models.Notification{
		CompanyID: companyID,
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
	}
	if ref != nil {
		refID := ref.ID
		refType := ref.Type
		notif.ReferenceID = &refID
		notif.ReferenceType = &refType
	}

	if err := s.db.Create(&notif).Error; err != nil {
		return err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		utils.InfoLogger.Printf("notification %d stored, recipient %d not found, skipping dispatch", notif.ID, userID)
		return nil
	}
	if user.Email == "" {
		utils.InfoLogger.Printf("notification %d stored, recipient %d has no email, skipping dispatch", notif.ID, userID)
		return nil
	}

	context := map[string]string{
		"app_name": "Staffdesk",
		"type":     notifType,
		"user_id":  strconv.FormatUint(uint64(userID), 10),
	}
	if ref != nil {
		context["reference_id"] = strconv.FormatUint(uint64(ref.ID), 10)
		context["reference_type"] = ref.Type
	}

	s.dispatcher.Dispatch(user.Email, title, message, context)
	return nil
}

// List returns the user's notifications newest first together with the
// unread count. The count comes from its own query, not from the page.
func (s *NotificationService) List(userID, companyID uint) (int64, []models.Notification, error) {
	var notifs []models.Notification
	err := s.db.Where("user_id = ? AND company_id = ?", userID, companyID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifs).Error
	if err != nil {
		return 0, nil, err
	}

	var unread int64
	err = s.db.Model(&models.Notification{}).
		Where("user_id = ? AND company_id = ? AND is_read = ?", userID, companyID, false).
		Count(&unread).Error
	if err != nil {
		return 0, nil, err
	}

	return unread, notifs, nil
}

func (s *NotificationService) MarkRead(notificationID, userID uint) (models.Notification, error) {
	var notif models.Notification
	if err := s.db.Where("id = ? AND user_id = ?", notificationID, userID).First(&notif).Error; err != nil {
		return models.Notification{}, err
	}

	notif.IsRead = true
	if err := s.db.Model(&notif).Update("is_read", true).Error; err != nil {
		return models.Notification{}, err
	}
	return notif, nil
}

func (s *NotificationService) MarkAllRead(userID, companyID uint) (int64, error) {
	result := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND company_id = ? AND is_read = ?", userID, companyID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
