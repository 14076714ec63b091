package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/utils"
)

type OpinionController struct {
	DB *gorm.DB
}

func NewOpinionController(db *gorm.DB) *OpinionController {
	return &OpinionController{DB: db}
}

// GetOpinions lists the company's opinions. Staff see only their own
// submissions, managers and admins see everything.
func (oc *OpinionController) GetOpinions(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	query := oc.DB.Where("company_id = ?", companyID)
	role := currentRole(c)
	if role != models.RoleAdmin && role != models.RoleManager {
		query = query.Where("user_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var opinions []models.Opinion
	if err := query.Order("created_at DESC").Find(&opinions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Opinions", opinions)
}

func (oc *OpinionController) CreateOpinion(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var body struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	opinion := models.Opinion{
		CompanyID: companyID,
		UserID:    userID,
		Content:   body.Content,
		Status:    models.OpinionSubmitted,
	}
	if err := oc.DB.Create(&opinion).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Opinion submitted", opinion)
}

func (oc *OpinionController) UpdateOpinionStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("opinion_id"))

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	switch body.Status {
	case models.OpinionSubmitted, models.OpinionReviewed, models.OpinionResolved:
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid opinion status"))
		return
	}

	var opinion models.Opinion
	if err := oc.DB.First(&opinion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("opinion not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := oc.DB.Model(&opinion).Update("status", body.Status).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	opinion.Status = body.Status
	utils.RespondJSON(c, http.StatusOK, "Opinion status updated", opinion)
}
