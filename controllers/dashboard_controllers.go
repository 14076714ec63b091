package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwchung/staffdesk/services"
	"github.com/jwchung/staffdesk/utils"
)

type DashboardController struct {
	Service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

func (dc *DashboardController) GetSummary(c *gin.Context) {
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

	summary, err := dc.Service.Summary(userID, companyID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard summary", summary)
}
