package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetPendingStaff lists the company's accounts waiting for approval.
func (ac *AdminController) GetPendingStaff(c *gin.Context) {
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var users []models.User
	err = ac.DB.Where("company_id = ? AND status = ?", companyID, models.UserStatusPending).
		Find(&users).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pending staff", users)
}

func (ac *AdminController) ApproveStaff(c *gin.Context) {
	ac.setStaffStatus(c, models.UserStatusActive, "Staff approved")
}

func (ac *AdminController) RejectStaff(c *gin.Context) {
	ac.setStaffStatus(c, models.UserStatusInactive, "Staff rejected")
}

func (ac *AdminController) setStaffStatus(c *gin.Context, status, message string) {
	id, _ := strconv.Atoi(c.Param("user_id"))

	var user models.User
	if err := ac.DB.First(&user, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := ac.DB.Model(&user).Update("status", status).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	user.Status = status

	utils.InfoLogger.Printf("Staff %d status set to %s", user.ID, status)
	utils.RespondJSON(c, http.StatusOK, message, user)
}

func (ac *AdminController) GetCompany(c *gin.Context) {
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var company models.Company
	if err := ac.DB.First(&company, companyID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Company detail", company)
}

func (ac *AdminController) UpdateCompany(c *gin.Context) {
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	type request struct {
		Name *string `json:"name"`
		Code *string `json:"code"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var company models.Company
	if err := ac.DB.First(&company, companyID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Code != nil {
		updates["code"] = *req.Code
	}
	if len(updates) > 0 {
		if err := ac.DB.Model(&company).Updates(updates).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Company updated", company)
}

// GetComplianceSummary reports per-branch checklist completion for one
// date.
func (ac *AdminController) GetComplianceSummary(c *gin.Context) {
	branchID, _ := strconv.Atoi(c.Query("branch_id"))
	date := c.Query("date")

	var checklists []models.DailyChecklist
	err := ac.DB.Where("branch_id = ? AND date = ?", branchID, date).Find(&checklists).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	totalItems := 0
	completedItems := 0
	for _, cl := range checklists {
		for _, item := range cl.Items {
			totalItems++
			if item.IsCompleted {
				completedItems++
			}
		}
	}
	overallRate := 0.0
	if totalItems > 0 {
		overallRate = float64(completedItems) / float64(totalItems) * 100
	}

	utils.RespondJSON(c, http.StatusOK, "Compliance summary", gin.H{
		"date":            date,
		"branch_id":       branchID,
		"overall_rate":    overallRate,
		"total_items":     totalItems,
		"completed_items": completedItems,
	})
}
