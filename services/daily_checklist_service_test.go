package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
)

func setupTestDBForChecklists(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&models.ChecklistTemplate{}, &models.TemplateItem{}, &models.DailyChecklist{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedOpeningTemplate(db *gorm.DB) models.ChecklistTemplate {
	template := models.ChecklistTemplate{CompanyID: 1, Name: "Opening routine", IsActive: true}
	db.Create(&template)
	db.Create(&models.TemplateItem{
		TemplateID: template.ID, Content: "Lock door", VerificationType: models.VerificationNone, SortOrder: 2,
	})
	db.Create(&models.TemplateItem{
		TemplateID: template.ID, Content: "Check stove", VerificationType: models.VerificationPhoto, SortOrder: 1,
	})
	return template
}

func TestGenerateSnapshotsTemplateItems(t *testing.T) {
	db := setupTestDBForChecklists(t)
	svc := NewDailyChecklistService(db)
	template := seedOpeningTemplate(db)

	checklist, err := svc.Generate(template.ID, 3, "2026-08-31", []uint{10, 11})
	assert.NoError(t, err)
	assert.NotZero(t, checklist.ID)

	// Items follow the template's sort order, everything uncompleted.
	assert.Len(t, checklist.Items, 2)
	assert.Equal(t, "Check stove", checklist.Items[0].Content)
	assert.Equal(t, models.VerificationPhoto, checklist.Items[0].VerificationType)
	assert.Equal(t, "Lock door", checklist.Items[1].Content)
	for _, item := range checklist.Items {
		assert.False(t, item.IsCompleted)
		assert.Nil(t, item.CompletedBy)
		assert.Nil(t, item.CompletedAt)
	}
	assert.Equal(t, models.UintList{10, 11}, checklist.GroupIDs)
}

func TestGenerateReturnsExistingInstanceUnchanged(t *testing.T) {
	db := setupTestDBForChecklists(t)
	svc := NewDailyChecklistService(db)
	template := seedOpeningTemplate(db)

	first, err := svc.Generate(template.ID, 3, "2026-08-31", nil)
	assert.NoError(t, err)

	// Complete an item, then generate again for the same key.
	_, err = svc.UpdateItem(first.ID, 0, 5, true, "")
	assert.NoError(t, err)

	second, err := svc.Generate(template.ID, 3, "2026-08-31", nil)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Items[0].IsCompleted)
}

func TestGenerateSameTemplateDifferentDate(t *testing.T) {
	db := setupTestDBForChecklists(t)
	svc := NewDailyChecklistService(db)
	template := seedOpeningTemplate(db)

	first, err := svc.Generate(template.ID, 3, "2026-08-30", nil)
	assert.NoError(t, err)
	second, err := svc.Generate(template.ID, 3, "2026-08-31", nil)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGenerateUnknownTemplate(t *testing.T) {
	db := setupTestDBForChecklists(t)
	svc := NewDailyChecklistService(db)

	_, err := svc.Generate(999, 3, "2026-08-31", nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestUpdateItemCompleteAndUncomplete(t *testing.T) {
	db := setupTestDBForChecklists(t)
	svc := NewDailyChecklistService(db)
	template := seedOpeningTemplate(db)

	checklist, err := svc.Generate(template.ID, 3, "2026-08-31", nil)
	assert.NoError(t, err)

	updated, err := svc.UpdateItem(checklist.ID, 0, 5, true, "photo://stove.jpg")
	assert.NoError(t, err)
	item := updated.Items[0]
	assert.True(t, item.IsCompleted)
	assert.Equal(t, uint(5), *item.CompletedBy)
	assert.NotNil(t, item.CompletedAt)
	assert.Equal(t, "photo://stove.jpg", *item.VerificationData)

	// State survives a round trip through the JSON column.
	reloaded, err := svc.Get(checklist.ID)
	assert.NoError(t, err)
	assert.True(t, reloaded.Items[0].IsCompleted)
	assert.False(t, reloaded.Items[1].IsCompleted)

	// Un-completing clears the completion metadata but keeps the
	// verification payload when no new value is supplied.
	updated, err = svc.UpdateItem(checklist.ID, 0, 5, false, "")
	assert.NoError(t, err)
	item = updated.Items[0]
	assert.False(t, item.IsCompleted)
	assert.Nil(t, item.CompletedBy)
	assert.Nil(t, item.CompletedAt)
	assert.Equal(t, "photo://stove.jpg", *item.VerificationData)
}

func TestUpdateItemInvalidIndex(t *testing.T) {
	db := setupTestDBForChecklists(t)
	svc := NewDailyChecklistService(db)
	template := seedOpeningTemplate(db)

	checklist, err := svc.Generate(template.ID, 3, "2026-08-31", nil)
	assert.NoError(t, err)

	_, err = svc.UpdateItem(checklist.ID, -1, 5, true, "")
	assert.ErrorIs(t, err, ErrInvalidItemIndex)

	_, err = svc.UpdateItem(checklist.ID, len(checklist.Items), 5, true, "")
	assert.ErrorIs(t, err, ErrInvalidItemIndex)
}

func TestUpdateItemUnknownChecklist(t *testing.T) {
	db := setupTestDBForChecklists(t)
	svc := NewDailyChecklistService(db)

	_, err := svc.UpdateItem(404, 0, 5, true, "")
	assert.ErrorIs(t, err, ErrChecklistNotFound)
}
