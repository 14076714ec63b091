package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/jwchung/staffdesk/models"
)

var (
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNotClockedIn      = errors.New("no clock-in record for today")
	ErrAlreadyClockedOut = errors.New("already clocked out today")
)

const dateLayout = "2006-01-02"

// MonthlySummary aggregates one month of attendance records.
type MonthlySummary struct {
	TotalDays  int `json:"total_days"`
	Completed  int `json:"completed"`
	Incomplete int `json:"incomplete"`
}

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

func (s *AttendanceService) TodayStatus(userID uint) (*models.Attendance, error) {
	today := time.Now().Format(dateLayout)

	var record models.Attendance
	err := s.db.Where("user_id = ? AND date = ?", userID, today).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ClockIn records the start of today's shift. At most one record per
// user per day.
func (s *AttendanceService) ClockIn(userID uint, location string) (models.Attendance, error) {
	existing, err := s.TodayStatus(userID)
	if err != nil {
		return models.Attendance{}, err
	}
	if existing != nil {
		return models.Attendance{}, ErrAlreadyClockedIn
	}

	record := models.Attendance{
		UserID:  userID,
		Date:    time.Now().Format(dateLayout),
		ClockIn: time.Now(),
		Status:  models.AttendanceOnDuty,
	}
	if location != "" {
		record.Location = &location
	}

	if err := s.db.Create(&record).Error; err != nil {
		return models.Attendance{}, err
	}
	return record, nil
}

// ClockOut closes today's record and computes worked hours rounded to
// two decimals.
func (s *AttendanceService) ClockOut(userID uint) (models.Attendance, error) {
	existing, err := s.TodayStatus(userID)
	if err != nil {
		return models.Attendance{}, err
	}
	if existing == nil {
		return models.Attendance{}, ErrNotClockedIn
	}
	if existing.ClockOut != nil {
		return models.Attendance{}, ErrAlreadyClockedOut
	}

	now := time.Now()
	hours := math.Round(now.Sub(existing.ClockIn).Hours()*100) / 100

	existing.ClockOut = &now
	existing.Status = models.AttendanceCompleted
	existing.WorkHours = &hours

	err = s.db.Model(existing).Updates(map[string]interface{}{
		"clock_out":  now,
		"status":     models.AttendanceCompleted,
		"work_hours": hours,
	}).Error
	if err != nil {
		return models.Attendance{}, err
	}
	return *existing, nil
}

// MonthlyHistory lists a user's records for one month plus a summary.
func (s *AttendanceService) MonthlyHistory(userID uint, year, month int) ([]models.Attendance, MonthlySummary, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	var records []models.Attendance
	err := s.db.Where("user_id = ? AND date LIKE ?", userID, prefix+"%").
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, MonthlySummary{}, err
	}

	summary := MonthlySummary{TotalDays: len(records)}
	for _, r := range records {
		if r.Status == models.AttendanceCompleted {
			summary.Completed++
		}
	}
	summary.Incomplete = summary.TotalDays - summary.Completed

	return records, summary, nil
}

// ExportMonthCSV renders all company attendance records for one month as
// CSV for admin reporting.
func (s *AttendanceService) ExportMonthCSV(companyID uint, year, month int) ([]byte, error) {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	var records []models.Attendance
	err := s.db.
		Joins("JOIN users ON users.id = attendances.user_id").
		Where("users.company_id = ? AND attendances.date LIKE ?", companyID, prefix+"%").
		Order("attendances.date ASC, attendances.user_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"date", "user_id", "clock_in", "clock_out", "status", "work_hours"}); err != nil {
		return nil, err
	}
	for _, r := range records {
		clockOut := ""
		if r.ClockOut != nil {
			clockOut = r.ClockOut.Format(time.RFC3339)
		}
		workHours := ""
		if r.WorkHours != nil {
			workHours = fmt.Sprintf("%.2f", *r.WorkHours)
		}
		row := []string{
			r.Date,
			fmt.Sprintf("%d", r.UserID),
			r.ClockIn.Format(time.RFC3339),
			clockOut,
			r.Status,
			workHours,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
