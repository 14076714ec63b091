package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/services"
	"github.com/jwchung/staffdesk/utils"
)

type CommentController struct {
	DB      *gorm.DB
	Service *services.CommentService
}

func NewCommentController(db *gorm.DB, service *services.CommentService) *CommentController {
	return &CommentController{DB: db, Service: service}
}

func (cc *CommentController) GetComments(c *gin.Context) {
	assignmentID, _ := strconv.Atoi(c.Param("assignment_id"))

	comments, err := cc.Service.ListByAssignment(uint(assignmentID))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Comments", comments)
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}
	assignmentID, _ := strconv.Atoi(c.Param("assignment_id"))

	var body struct {
		Content     string  `json:"content" binding:"required"`
		ContentType string  `json:"content_type"`
		Attachments *string `json:"attachments"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Author name is denormalized onto the comment for display and for
	// the notification message.
	var user models.User
	userName := ""
	if err := cc.DB.First(&user, userID).Error; err == nil {
		userName = user.FullName
	}

	comment, err := cc.Service.Create(uint(assignmentID), userID, userName, body.Content, body.ContentType, body.Attachments)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Comment created", comment)
}

func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("comment_id"))

	if err := cc.Service.Delete(uint(id)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Comment deleted", gin.H{"comment_id": id})
}
