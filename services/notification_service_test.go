package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/notifications"
)

// fakeChannel records dispatched messages so tests can assert on the
// fan-out without touching SMTP or websockets.
type fakeChannel struct {
	recipients []string
	contexts   []map[string]string
	err        error
}

func (fc *fakeChannel) Send(recipient, title, message string, context map[string]string) error {
	fc.recipients = append(fc.recipients, recipient)
	fc.contexts = append(fc.contexts, context)
	return fc.err
}

func setupTestDBForNotifications(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Notification{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestNotifyStoresRowAndDispatches(t *testing.T) {
	db := setupTestDBForNotifications(t)
	ch := &fakeChannel{}
	svc := NewNotificationService(db, notifications.NewDispatcher(ch))

	user := models.User{
		Email: "staff@example.com", LoginID: "staff1", FullName: "Staff One",
		Password: "x", Role: models.RoleStaff, Status: models.UserStatusActive, CompanyID: 1,
	}
	db.Create(&user)

	err := svc.Notify(1, user.ID, models.NotificationTaskAssigned, "New assignment", "You have work to do",
		&Reference{ID: 42, Type: "assignment"})
	assert.NoError(t, err)

	var notif models.Notification
	assert.NoError(t, db.First(&notif).Error)
	assert.Equal(t, models.NotificationTaskAssigned, notif.Type)
	assert.False(t, notif.IsRead)
	assert.Equal(t, uint(42), *notif.ReferenceID)
	assert.Equal(t, "assignment", *notif.ReferenceType)

	assert.Equal(t, []string{"staff@example.com"}, ch.recipients)
	assert.Equal(t, "42", ch.contexts[0]["reference_id"])
	assert.Equal(t, "task_assigned", ch.contexts[0]["type"])
}

func TestNotifySkipsDispatchForUnknownUser(t *testing.T) {
	db := setupTestDBForNotifications(t)
	ch := &fakeChannel{}
	svc := NewNotificationService(db, notifications.NewDispatcher(ch))

	err := svc.Notify(1, 99, models.NotificationSystem, "Hello", "Body", nil)
	assert.NoError(t, err)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Equal(t, int64(1), count)
	assert.Empty(t, ch.recipients)
}

func TestNotifySkipsDispatchWithoutEmail(t *testing.T) {
	db := setupTestDBForNotifications(t)
	ch := &fakeChannel{}
	svc := NewNotificationService(db, notifications.NewDispatcher(ch))

	// SQLite accepts an empty string despite the varchar constraint.
	user := models.User{
		Email: "", LoginID: "noemail", FullName: "No Email",
		Password: "x", Role: models.RoleStaff, Status: models.UserStatusActive, CompanyID: 1,
	}
	db.Create(&user)

	err := svc.Notify(1, user.ID, models.NotificationSystem, "Hello", "Body", nil)
	assert.NoError(t, err)
	assert.Empty(t, ch.recipients)
}

func TestNotifyAbsorbsChannelFailure(t *testing.T) {
	db := setupTestDBForNotifications(t)
	ch := &fakeChannel{err: errors.New("delivery broken")}
	svc := NewNotificationService(db, notifications.NewDispatcher(ch))

	user := models.User{
		Email: "staff@example.com", LoginID: "staff1", FullName: "Staff One",
		Password: "x", Role: models.RoleStaff, Status: models.UserStatusActive, CompanyID: 1,
	}
	db.Create(&user)

	err := svc.Notify(1, user.ID, models.NotificationSystem, "Hello", "Body", nil)
	assert.NoError(t, err)
	assert.Len(t, ch.recipients, 1)
}

func TestListOrdersNewestFirstWithUnreadCount(t *testing.T) {
	db := setupTestDBForNotifications(t)
	svc := NewNotificationService(db, notifications.NewDispatcher())

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		db.Create(&models.Notification{
			CompanyID: 1, UserID: 7, Type: models.NotificationSystem,
			Title: "n", Message: "m", IsRead: i == 0,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	// Another user's notification must not leak in.
	db.Create(&models.Notification{
		CompanyID: 1, UserID: 8, Type: models.NotificationSystem,
		Title: "other", Message: "m", CreatedAt: base,
	})

	unread, notifs, err := svc.List(7, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), unread)
	assert.Len(t, notifs, 3)
	assert.True(t, notifs[0].CreatedAt.After(notifs[1].CreatedAt))
	assert.True(t, notifs[1].CreatedAt.After(notifs[2].CreatedAt))
}

func TestMarkReadChecksOwnership(t *testing.T) {
	db := setupTestDBForNotifications(t)
	svc := NewNotificationService(db, notifications.NewDispatcher())

	notif := models.Notification{CompanyID: 1, UserID: 7, Type: models.NotificationSystem, Title: "n", Message: "m"}
	db.Create(&notif)

	_, err := svc.MarkRead(notif.ID, 8)
	assert.Error(t, err)

	updated, err := svc.MarkRead(notif.ID, 7)
	assert.NoError(t, err)
	assert.True(t, updated.IsRead)
}

func TestMarkAllReadReportsAffectedRows(t *testing.T) {
	db := setupTestDBForNotifications(t)
	svc := NewNotificationService(db, notifications.NewDispatcher())

	for i := 0; i < 2; i++ {
		db.Create(&models.Notification{CompanyID: 1, UserID: 7, Type: models.NotificationSystem, Title: "n", Message: "m"})
	}
	db.Create(&models.Notification{CompanyID: 1, UserID: 7, Type: models.NotificationSystem, Title: "n", Message: "m", IsRead: true})

	updated, err := svc.MarkAllRead(7, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	var unread int64
	db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", 7, false).Count(&unread)
	assert.Equal(t, int64(0), unread)
}
