package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwchung/staffdesk/services"
	"github.com/jwchung/staffdesk/utils"
)

type AttendanceController struct {
	Service *services.AttendanceService
}

func NewAttendanceController(service *services.AttendanceService) *AttendanceController {
	return &AttendanceController{Service: service}
}

func (ac *AttendanceController) GetTodayStatus(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	record, err := ac.Service.TodayStatus(userID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Today's attendance", record)
}

func (ac *AttendanceController) ClockIn(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var body struct {
		Location string `json:"location"`
	}
	// Location is optional, so an empty body is fine.
	_ = c.ShouldBindJSON(&body)

	record, err := ac.Service.ClockIn(userID, body.Location)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyClockedIn) {
			utils.RespondError(c, http.StatusConflict, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Clocked in", record)
}

func (ac *AttendanceController) ClockOut(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	record, err := ac.Service.ClockOut(userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotClockedIn):
			utils.RespondError(c, http.StatusBadRequest, err)
		case errors.Is(err, services.ErrAlreadyClockedOut):
			utils.RespondError(c, http.StatusConflict, err)
		default:
			utils.RespondError(c, http.StatusInternalServerError, err)
		}
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Clocked out", record)
}

func (ac *AttendanceController) GetMonthlyHistory(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	year, month := monthParams(c)
	records, summary, err := ac.Service.MonthlyHistory(userID, year, month)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Monthly attendance", gin.H{
		"records": records,
		"summary": summary,
	})
}

func (ac *AttendanceController) ExportMonthCSV(c *gin.Context) {
	companyID, err := currentCompanyID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	year, month := monthParams(c)
	data, err := ac.Service.ExportMonthCSV(companyID, year, month)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	fileName := fmt.Sprintf("attendance_%04d_%02d.csv", year, month)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, "text/csv", data)
}

// monthParams reads year/month query params, defaulting to the current
// month.
func monthParams(c *gin.Context) (int, int) {
	now := time.Now()
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year == 0 {
		year = now.Year()
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		month = int(now.Month())
	}
	return year, month
}
