package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwchung/staffdesk/models"
	"github.com/jwchung/staffdesk/services"
	"github.com/jwchung/staffdesk/utils"
)

type AssignmentController struct {
	Service *services.AssignmentService
}

func NewAssignmentController(service *services.AssignmentService) *AssignmentController {
	return &AssignmentController{Service: service}
}

func (ac *AssignmentController) GetAllAssignments(c *gin.Context) {
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	assignments, err := ac.Service.List(companyID, c.Query("status"), c.Query("priority"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All assignments", assignments)
}

func (ac *AssignmentController) GetMyAssignments(c *gin.Context) {
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

	assignments, err := ac.Service.ListByAssignee(userID, companyID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "My assignments", assignments)
}

func (ac *AssignmentController) GetAssignmentByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("assignment_id"))

	assignment, err := ac.Service.Get(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Assignment detail", assignment)
}

func (ac *AssignmentController) CreateAssignment(c *gin.Context) {
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
		Title       string     `json:"title" binding:"required"`
		Description *string    `json:"description"`
		Priority    string     `json:"priority"`
		Status      string     `json:"status"`
		DueDate     *time.Time `json:"due_date"`
		BranchID    *uint      `json:"branch_id"`
		AssigneeIDs []uint     `json:"assignee_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	assignment := models.Assignment{
		CompanyID:   companyID,
		Title:       body.Title,
		Description: body.Description,
		Priority:    body.Priority,
		Status:      body.Status,
		DueDate:     body.DueDate,
		BranchID:    body.BranchID,
		CreatedBy:   userID,
	}

	created, err := ac.Service.Create(assignment, body.AssigneeIDs)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Assignment created", created)
}

func (ac *AssignmentController) UpdateAssignment(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}
	id, _ := strconv.Atoi(c.Param("assignment_id"))

	var body struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Priority    *string    `json:"priority"`
		Status      *string    `json:"status"`
		DueDate     *time.Time `json:"due_date"`
		BranchID    *uint      `json:"branch_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{}
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.Description != nil {
		updates["description"] = *body.Description
	}
	if body.Priority != nil {
		updates["priority"] = *body.Priority
	}
	if body.Status != nil {
		updates["status"] = *body.Status
	}
	if body.DueDate != nil {
		updates["due_date"] = *body.DueDate
	}
	if body.BranchID != nil {
		updates["branch_id"] = *body.BranchID
	}

	updated, err := ac.Service.Update(uint(id), userID, updates)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Assignment updated", updated)
}

func (ac *AssignmentController) UpdateAssignmentStatus(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}
	id, _ := strconv.Atoi(c.Param("assignment_id"))

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated, err := ac.Service.UpdateStatus(uint(id), userID, body.Status)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Status updated", updated)
}

func (ac *AssignmentController) DeleteAssignment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("assignment_id"))

	if err := ac.Service.Delete(uint(id)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Assignment deleted", gin.H{"assignment_id": id})
}

func (ac *AssignmentController) AddAssignees(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("assignment_id"))

	var body struct {
		UserIDs []uint `json:"user_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ac.Service.AddAssignees(uint(id), body.UserIDs); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	assignment, err := ac.Service.Get(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Assignees added", assignment)
}

func (ac *AssignmentController) RemoveAssignee(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("assignment_id"))
	userID, _ := strconv.Atoi(c.Param("user_id"))

	if err := ac.Service.RemoveAssignee(uint(id), uint(userID)); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Assignee removed", gin.H{
		"assignment_id": id,
		"user_id":       userID,
	})
}
