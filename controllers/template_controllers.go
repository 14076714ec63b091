package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/utils"
)

type TemplateController struct {
	DB *gorm.DB
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db}
}

func (tc *TemplateController) GetAllTemplates(c *gin.Context) {
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	query := tc.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Where("company_id = ?", companyID)
	if branchID := c.Query("branch_id"); branchID != "" {
		query = query.Where("branch_id = ?", branchID)
	}

	var templates []models.ChecklistTemplate
	if err := query.Find(&templates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All checklist templates", templates)
}

func (tc *TemplateController) GetTemplateByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("template_id"))

	var template models.ChecklistTemplate
	err := tc.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).First(&template, id).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Checklist template detail", template)
}

// CreateTemplate stores the template and its item definitions. The two
// writes are not wrapped in a transaction; a failure between them leaves
// a template without items.
func (tc *TemplateController) CreateTemplate(c *gin.Context) {
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	type itemReq struct {
		Content          string `json:"content" binding:"required"`
		VerificationType string `json:"verification_type"`
		SortOrder        int    `json:"sort_order"`
	}
	var body struct {
		Name     string    `json:"name" binding:"required"`
		BrandID  *uint     `json:"brand_id"`
		BranchID *uint     `json:"branch_id"`
		Items    []itemReq `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	template := models.ChecklistTemplate{
		CompanyID: companyID,
		BrandID:   body.BrandID,
		BranchID:  body.BranchID,
		Name:      body.Name,
		IsActive:  true,
	}
	if err := tc.DB.Create(&template).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	for i, item := range body.Items {
		verification := item.VerificationType
		if verification == "" {
			verification = models.VerificationNone
		}
		sortOrder := item.SortOrder
		if sortOrder == 0 {
			sortOrder = i
		}
		def := models.TemplateItem{
			TemplateID:       template.ID,
			Content:          item.Content,
			VerificationType: verification,
			SortOrder:        sortOrder,
		}
		if err := tc.DB.Create(&def).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		template.Items = append(template.Items, def)
	}

	utils.RespondJSON(c, http.StatusCreated, "Checklist template created", template)
}

// UpdateTemplate edits metadata only. Item definitions referenced by
// generated daily checklists stay as they were snapshotted.
func (tc *TemplateController) UpdateTemplate(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("template_id"))

	var body struct {
		Name     *string `json:"name"`
		BrandID  *uint   `json:"brand_id"`
		BranchID *uint   `json:"branch_id"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var template models.ChecklistTemplate
	if err := tc.DB.First(&template, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	updates := map[string]interface{}{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.BrandID != nil {
		updates["brand_id"] = *body.BrandID
	}
	if body.BranchID != nil {
		updates["branch_id"] = *body.BranchID
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}
	if len(updates) > 0 {
		if err := tc.DB.Model(&template).Updates(updates).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Checklist template updated", template)
}

func (tc *TemplateController) DeactivateTemplate(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("template_id"))

	var template models.ChecklistTemplate
	if err := tc.DB.First(&template, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err := tc.DB.Model(&template).Update("is_active", false).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Checklist template deactivated", gin.H{"template_id": id})
}
