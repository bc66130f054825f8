package attendance

import (
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/validator"
)

type ProcessRequest struct {
	StartDate             string `json:"start_date"`
	EndDate               string `json:"end_date"`
	TimezoneOffsetMinutes int    `json:"timezone_offset_minutes"`
}

func (r *ProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	} else if r.StartDate > r.EndDate {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	// Offsets beyond ±18h do not exist; a wild value means the client sent
	// seconds instead of minutes.
	if r.TimezoneOffsetMinutes < -18*60 || r.TimezoneOffsetMinutes > 18*60 {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone_offset_minutes",
			Message: "timezone_offset_minutes must be between -1080 and 1080",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessResponse struct {
	ProcessedCount int `json:"processed_count"`
}

type RecordResponse struct {
	ID             int       `json:"id"`
	EmployeeCode   string    `json:"employee_code"`
	Date           string    `json:"date"`
	CheckIn        *string   `json:"check_in,omitempty"`
	CheckOut       *string   `json:"check_out,omitempty"`
	TotalHours     float64   `json:"total_hours"`
	OvertimeHours  float64   `json:"overtime_hours"`
	Status         string    `json:"status"`
	Penalties      []Penalty `json:"penalties"`
	IsOvernight    bool      `json:"is_overnight"`
	Notes          *string   `json:"notes,omitempty"`
	MissionStart   *string   `json:"mission_start,omitempty"`
	MissionEnd     *string   `json:"mission_end,omitempty"`
	HalfDayExcused bool      `json:"half_day_excused"`
}

type ListRequest struct {
	StartDate    string
	EndDate      string
	EmployeeCode string // single code or CSV
	Page         int
	Limit        int
}

type ListResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}
