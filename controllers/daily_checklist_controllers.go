package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwchung/staffdesk/services"
	"github.com/jwchung/staffdesk/utils"
)

type DailyChecklistController struct {
	Service *services.DailyChecklistService
}

func NewDailyChecklistController(service *services.DailyChecklistService) *DailyChecklistController {
	return &DailyChecklistController{Service: service}
}

func (dc *DailyChecklistController) GetChecklists(c *gin.Context) {
	branchID, _ := strconv.Atoi(c.Query("branch_id"))
	date := c.Query("date")
	if branchID == 0 || date == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("branch_id and date are required"))
		return
	}

	checklists, err := dc.Service.ListByBranchDate(uint(branchID), date)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daily checklists", checklists)
}

func (dc *DailyChecklistController) GetChecklistByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("checklist_id"))

	checklist, err := dc.Service.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrChecklistNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daily checklist detail", checklist)
}

func (dc *DailyChecklistController) GenerateChecklist(c *gin.Context) {
	var body struct {
		TemplateID uint   `json:"template_id" binding:"required"`
		BranchID   uint   `json:"branch_id" binding:"required"`
		Date       string `json:"date" binding:"required"`
		GroupIDs   []uint `json:"group_ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	checklist, err := dc.Service.Generate(body.TemplateID, body.BranchID, body.Date, body.GroupIDs)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Daily checklist generated", checklist)
}

func (dc *DailyChecklistController) UpdateChecklistItem(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	checklistID, _ := strconv.Atoi(c.Param("checklist_id"))
	itemIndex, err := strconv.Atoi(c.Param("item_index"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("item_index must be an integer"))
		return
	}

	var body struct {
		IsCompleted      *bool  `json:"is_completed" binding:"required"`
		VerificationData string `json:"verification_data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	checklist, err := dc.Service.UpdateItem(uint(checklistID), itemIndex, userID, *body.IsCompleted, body.VerificationData)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChecklistNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrInvalidItemIndex):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Checklist item updated", checklist)
}
