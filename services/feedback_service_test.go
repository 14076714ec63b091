package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/notifications"
)

func setupTestDBForFeedback(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Feedback{}, &models.Notification{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestCreateFeedbackWithTargetNotifies(t *testing.T) {
	db := setupTestDBForFeedback(t)
	svc := NewFeedbackService(db, NewNotificationService(db, notifications.NewDispatcher()))

	target := uint(2)
	feedback, err := svc.Create(1, 1, &target, "Great shift handover")
	assert.NoError(t, err)
	assert.NotZero(t, feedback.ID)

	var notif models.Notification
	assert.NoError(t, db.First(&notif).Error)
	assert.Equal(t, uint(2), notif.UserID)
	assert.Equal(t, models.NotificationFeedback, notif.Type)
	assert.Equal(t, "New feedback received", notif.Title)
	assert.Equal(t, feedback.ID, *notif.ReferenceID)
	assert.Equal(t, "feedback", *notif.ReferenceType)
}

func TestCreateFeedbackWithoutTargetIsSilent(t *testing.T) {
	db := setupTestDBForFeedback(t)
	svc := NewFeedbackService(db, NewNotificationService(db, notifications.NewDispatcher()))

	_, err := svc.Create(1, 1, nil, "General remark about the branch")
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListFeedbackFiltersByTarget(t *testing.T) {
	db := setupTestDBForFeedback(t)
	svc := NewFeedbackService(db, NewNotificationService(db, notifications.NewDispatcher()))

	target := uint(2)
	other := uint(3)
	svc.Create(1, 1, &target, "for user two")
	svc.Create(1, 1, &other, "for user three")
	svc.Create(1, 1, nil, "for nobody")

	all, err := svc.List(1, nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := svc.List(1, &target)
	assert.NoError(t, err)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "for user two", filtered[0].Content)
}
