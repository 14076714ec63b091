package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/notifications"
)

func setupTestDBForAssignments(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Assignment{},
		&models.AssignmentAssignee{},
		&models.Comment{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newAssignmentService(db *gorm.DB) *AssignmentService {
	return NewAssignmentService(db, NewNotificationService(db, notifications.NewDispatcher()))
}

func TestCreateAssignmentNotifiesAssignees(t *testing.T) {
	db := setupTestDBForAssignments(t)
	svc := newAssignmentService(db)

	created, err := svc.Create(models.Assignment{
		CompanyID: 1, Title: "Deep clean kitchen", CreatedBy: 1,
	}, []uint{2, 3})
	assert.NoError(t, err)
	assert.Equal(t, models.PriorityNormal, created.Priority)
	assert.Equal(t, models.AssignmentStatusTodo, created.Status)
	assert.Len(t, created.Assignees, 2)

	var notifs []models.Notification
	db.Order("user_id ASC").Find(&notifs)
	assert.Len(t, notifs, 2)
	assert.Equal(t, models.NotificationTaskAssigned, notifs[0].Type)
	assert.Equal(t, "You have been assigned to 'Deep clean kitchen'", notifs[0].Message)
}

func TestCreateAssignmentCreatorAssigneeNotNotified(t *testing.T) {
	db := setupTestDBForAssignments(t)
	svc := newAssignmentService(db)

	_, err := svc.Create(models.Assignment{
		CompanyID: 1, Title: "Self-assigned", CreatedBy: 1,
	}, []uint{1, 2})
	assert.NoError(t, err)

	var notifs []models.Notification
	db.Find(&notifs)
	assert.Len(t, notifs, 1)
	assert.Equal(t, uint(2), notifs[0].UserID)
}

func TestUpdateAssignmentNotifiesNonActors(t *testing.T) {
	db := setupTestDBForAssignments(t)
	svc := newAssignmentService(db)

	created, err := svc.Create(models.Assignment{
		CompanyID: 1, Title: "Inventory check", CreatedBy: 1,
	}, []uint{2, 3})
	assert.NoError(t, err)
	db.Where("1 = 1").Delete(&models.Notification{})

	updated, err := svc.Update(created.ID, 2, map[string]interface{}{"status": models.AssignmentStatusInProgress})
	assert.NoError(t, err)
	assert.Equal(t, models.AssignmentStatusInProgress, updated.Status)

	var notifs []models.Notification
	db.Find(&notifs)
	assert.Len(t, notifs, 1)
	assert.Equal(t, uint(3), notifs[0].UserID)
	assert.Equal(t, models.NotificationTaskUpdated, notifs[0].Type)
}

func TestListFiltersByStatusAndPriority(t *testing.T) {
	db := setupTestDBForAssignments(t)
	svc := newAssignmentService(db)

	svc.Create(models.Assignment{CompanyID: 1, Title: "a", Priority: models.PriorityUrgent, CreatedBy: 1}, nil)
	svc.Create(models.Assignment{CompanyID: 1, Title: "b", Status: models.AssignmentStatusDone, CreatedBy: 1}, nil)
	svc.Create(models.Assignment{CompanyID: 2, Title: "c", CreatedBy: 1}, nil)

	all, err := svc.List(1, "", "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	urgent, err := svc.List(1, "", models.PriorityUrgent)
	assert.NoError(t, err)
	assert.Len(t, urgent, 1)
	assert.Equal(t, "a", urgent[0].Title)

	done, err := svc.List(1, models.AssignmentStatusDone, "")
	assert.NoError(t, err)
	assert.Len(t, done, 1)
	assert.Equal(t, "b", done[0].Title)
}

func TestListByAssignee(t *testing.T) {
	db := setupTestDBForAssignments(t)
	svc := newAssignmentService(db)

	first, _ := svc.Create(models.Assignment{CompanyID: 1, Title: "mine", CreatedBy: 1}, []uint{5})
	svc.Create(models.Assignment{CompanyID: 1, Title: "not mine", CreatedBy: 1}, []uint{6})

	mine, err := svc.ListByAssignee(5, 1)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)
}

func TestDeleteAssignmentRemovesAssignees(t *testing.T) {
	db := setupTestDBForAssignments(t)
	svc := newAssignmentService(db)

	created, _ := svc.Create(models.Assignment{CompanyID: 1, Title: "doomed", CreatedBy: 1}, []uint{2})

	assert.NoError(t, svc.Delete(created.ID))

	var count int64
	db.Model(&models.AssignmentAssignee{}).Where("assignment_id = ?", created.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	_, err := svc.Get(created.ID)
	assert.Error(t, err)
}

func TestAddAndRemoveAssignees(t *testing.T) {
	db := setupTestDBForAssignments(t)
	svc := newAssignmentService(db)

	created, _ := svc.Create(models.Assignment{CompanyID: 1, Title: "shifting crew", CreatedBy: 1}, []uint{2})

	assert.NoError(t, svc.AddAssignees(created.ID, []uint{3, 4}))
	got, err := svc.Get(created.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Assignees, 3)

	assert.NoError(t, svc.RemoveAssignee(created.ID, 3))
	got, err = svc.Get(created.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Assignees, 2)
	for _, a := range got.Assignees {
		assert.NotEqual(t, uint(3), a.UserID)
		assert.WithinDuration(t, time.Now(), a.AssignedAt, time.Minute)
	}
}
