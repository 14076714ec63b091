package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/utils"
)

type NoticeController struct {
	DB *gorm.DB
}

func NewNoticeController(db *gorm.DB) *NoticeController {
	return &NoticeController{DB: db}
}

func (nc *NoticeController) GetNotices(c *gin.Context) {
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	query := nc.DB.Where("company_id = ?", companyID)
	if c.Query("important") == "true" {
		query = query.Where("is_important = ?", true)
	}

	var notices []models.Notice
	if err := query.Order("created_at DESC").Find(&notices).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notices", notices)
}

func (nc *NoticeController) GetNoticeByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("notice_id"))

	var notice models.Notice
	err := nc.DB.Preload("Confirmations").First(&notice, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("notice not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notice detail", notice)
}

func (nc *NoticeController) CreateNotice(c *gin.Context) {
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
		Title       string `json:"title" binding:"required"`
		Content     string `json:"content" binding:"required"`
		IsImportant bool   `json:"is_important"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	notice := models.Notice{
		CompanyID:   companyID,
		AuthorID:    userID,
		Title:       body.Title,
		Content:     body.Content,
		IsImportant: body.IsImportant,
	}
	if err := nc.DB.Create(&notice).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Notice created", notice)
}

func (nc *NoticeController) UpdateNotice(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("notice_id"))

	var notice models.Notice
	if err := nc.DB.First(&notice, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("notice not found"))
		return
	}

	var body struct {
		Title       *string `json:"title"`
		Content     *string `json:"content"`
		IsImportant *bool   `json:"is_important"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.Title != nil {
		notice.Title = *body.Title
	}
	if body.Content != nil {
		notice.Content = *body.Content
	}
	if body.IsImportant != nil {
		notice.IsImportant = *body.IsImportant
	}

	if err := nc.DB.Save(&notice).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notice updated", notice)
}

func (nc *NoticeController) DeleteNotice(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("notice_id"))

	if err := nc.DB.Delete(&models.Notice{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notice deleted", nil)
}

// ConfirmNotice records that the caller has read a notice. Confirming
// twice keeps the original timestamp.
func (nc *NoticeController) ConfirmNotice(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	id, _ := strconv.Atoi(c.Param("notice_id"))

	var notice models.Notice
	if err := nc.DB.First(&notice, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("notice not found"))
		return
	}

	var existing models.NoticeConfirmation
	err = nc.DB.Where("notice_id = ? AND user_id = ?", notice.ID, userID).First(&existing).Error
	if err == nil {
		utils.RespondJSON(c, http.StatusOK, "Notice already confirmed", existing)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	confirmation := models.NoticeConfirmation{
		NoticeID:    notice.ID,
		UserID:      userID,
		ConfirmedAt: time.Now(),
	}
	if err := nc.DB.Create(&confirmation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Notice confirmed", confirmation)
}
