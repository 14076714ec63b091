package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwchung/staffdesk/services"
	"github.com/jwchung/staffdesk/utils"
)

type FeedbackController struct {
	Service *services.FeedbackService
}

func NewFeedbackController(service *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Service: service}
}

func (fc *FeedbackController) GetFeedbacks(c *gin.Context) {
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var target *uint
	if raw := c.Query("target_user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		u := uint(id)
		target = &u
	}

	feedbacks, err := fc.Service.List(companyID, target)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Feedbacks", feedbacks)
}

func (fc *FeedbackController) CreateFeedback(c *gin.Context) {
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
		TargetUserID *uint  `json:"target_user_id"`
		Content      string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	feedback, err := fc.Service.Create(companyID, userID, body.TargetUserID, body.Content)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Feedback created", feedback)
}
