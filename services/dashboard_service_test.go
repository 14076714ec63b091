package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
)

func setupTestDBForDashboard(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Assignment{},
		&models.AssignmentAssignee{},
		&models.Notice{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedDashboardAssignment(db *gorm.DB, userID uint, title, status, priority string) {
	a := models.Assignment{CompanyID: 1, Title: title, Status: status, Priority: priority, CreatedBy: 1}
	db.Create(&a)
	db.Create(&models.AssignmentAssignee{AssignmentID: a.ID, UserID: userID, AssignedAt: time.Now()})
}

func TestDashboardSummaryCounts(t *testing.T) {
	db := setupTestDBForDashboard(t)
	svc := NewDashboardService(db)

	seedDashboardAssignment(db, 7, "done one", models.AssignmentStatusDone, models.PriorityNormal)
	seedDashboardAssignment(db, 7, "done two", models.AssignmentStatusDone, models.PriorityLow)
	seedDashboardAssignment(db, 7, "working", models.AssignmentStatusInProgress, models.PriorityUrgent)
	seedDashboardAssignment(db, 7, "fresh", models.AssignmentStatusTodo, models.PriorityNormal)
	// Someone else's work stays out of the summary.
	seedDashboardAssignment(db, 8, "not mine", models.AssignmentStatusTodo, models.PriorityUrgent)

	summary, err := svc.Summary(7, 1)
	assert.NoError(t, err)

	as := summary.AssignmentSummary
	assert.Equal(t, 4, as.TotalAssignments)
	assert.Equal(t, 2, as.Completed)
	assert.Equal(t, 1, as.InProgress)
	assert.Equal(t, 1, as.Todo)
	assert.Equal(t, 50.0, as.CompletionRate)

	assert.Len(t, summary.UrgentAlerts, 1)
	assert.Equal(t, "working", summary.UrgentAlerts[0].Title)
}

func TestDashboardCompletionRateRounding(t *testing.T) {
	db := setupTestDBForDashboard(t)
	svc := NewDashboardService(db)

	seedDashboardAssignment(db, 7, "done", models.AssignmentStatusDone, models.PriorityNormal)
	seedDashboardAssignment(db, 7, "open one", models.AssignmentStatusTodo, models.PriorityNormal)
	seedDashboardAssignment(db, 7, "open two", models.AssignmentStatusTodo, models.PriorityNormal)

	summary, err := svc.Summary(7, 1)
	assert.NoError(t, err)
	// 1/3 completed rounds to one decimal.
	assert.Equal(t, 33.3, summary.AssignmentSummary.CompletionRate)
}

func TestDashboardEmptyState(t *testing.T) {
	db := setupTestDBForDashboard(t)
	svc := NewDashboardService(db)

	summary, err := svc.Summary(7, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, summary.AssignmentSummary.TotalAssignments)
	assert.Equal(t, 0.0, summary.AssignmentSummary.CompletionRate)
	assert.Empty(t, summary.UrgentAlerts)
	assert.Empty(t, summary.RecentNotices)
}

func TestDashboardRecentNoticesCapped(t *testing.T) {
	db := setupTestDBForDashboard(t)
	svc := NewDashboardService(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		db.Create(&models.Notice{
			CompanyID: 1, AuthorID: 1, Title: "notice", Content: "body",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	summary, err := svc.Summary(7, 1)
	assert.NoError(t, err)
	assert.Len(t, summary.RecentNotices, 5)
}
