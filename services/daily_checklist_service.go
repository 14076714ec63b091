package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
)

var (
	ErrTemplateNotFound  = errors.New("template not found")
	ErrChecklistNotFound = errors.New("checklist not found")
	ErrInvalidItemIndex  = errors.New("invalid item index")
)

// DailyChecklistService materializes checklist templates into per-day,
// per-branch instances and mutates item completion state.
type DailyChecklistService struct {
	db *gorm.DB
}

func NewDailyChecklistService(db *gorm.DB) *DailyChecklistService {
	return &DailyChecklistService{db: db}
}

func (s *DailyChecklistService) ListByBranchDate(branchID uint, date string) ([]models.DailyChecklist, error) {
	var checklists []models.DailyChecklist
	err := s.db.Where("branch_id = ? AND date = ?", branchID, date).Find(&checklists).Error
	return checklists, err
}

func (s *DailyChecklistService) Get(checklistID uint) (models.DailyChecklist, error) {
	var checklist models.DailyChecklist
	if err := s.db.First(&checklist, checklistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DailyChecklist{}, ErrChecklistNotFound
		}
		return models.DailyChecklist{}, err
	}
	return checklist, nil
}

// Generate creates the instance for (template, branch, date), snapshotting
// the template's item definitions with everything uncompleted. If the
// instance already exists it is returned unchanged. The existence check
// and the insert are two separate statements; concurrent calls for the
// same key can still race.
func (s *DailyChecklistService) Generate(templateID, branchID uint, date string, groupIDs []uint) (models.DailyChecklist, error) {
	var existing models.DailyChecklist
	err := s.db.Where("template_id = ? AND branch_id = ? AND date = ?", templateID, branchID, date).
		First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DailyChecklist{}, err
	}

	var template models.ChecklistTemplate
	err = s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&template, templateID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DailyChecklist{}, ErrTemplateNotFound
		}
		return models.DailyChecklist{}, err
	}

	items := make(models.ChecklistItems, 0, len(template.Items))
	for _, def := range template.Items {
		items = append(items, models.ChecklistItem{
			ItemID:           def.ID,
			Content:          def.Content,
			VerificationType: def.VerificationType,
			IsCompleted:      false,
		})
	}

	checklist := models.DailyChecklist{
		TemplateID: templateID,
		BranchID:   branchID,
		Date:       date,
		Items:      items,
		GroupIDs:   groupIDs,
	}
	if err := s.db.Create(&checklist).Error; err != nil {
		return models.DailyChecklist{}, err
	}
	return checklist, nil
}

// UpdateItem mutates one item's completion state and writes the whole
// item list back as a single column update. Completing stamps the acting
// user and time; un-completing clears both. A verification payload is
// only overwritten when a non-empty value is supplied.
func (s *DailyChecklistService) UpdateItem(checklistID uint, itemIndex int, userID uint, isCompleted bool, verificationData string) (models.DailyChecklist, error) {
	var checklist models.DailyChecklist
	if err := s.db.First(&checklist, checklistID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DailyChecklist{}, ErrChecklistNotFound
		}
		return models.DailyChecklist{}, err
	}

	if itemIndex < 0 || itemIndex >= len(checklist.Items) {
		return models.DailyChecklist{}, fmt.Errorf("%w: %d", ErrInvalidItemIndex, itemIndex)
	}

	item := &checklist.Items[itemIndex]
	item.IsCompleted = isCompleted
	if isCompleted {
		now := time.Now().UTC()
		item.CompletedBy = &userID
		item.CompletedAt = &now
	} else {
		item.CompletedBy = nil
		item.CompletedAt = nil
	}
	if verificationData != "" {
		item.VerificationData = &verificationData
	}

	if err := s.db.Model(&checklist).Update("items", checklist.Items).Error; err != nil {
		return models.DailyChecklist{}, err
	}
	return checklist, nil
}
