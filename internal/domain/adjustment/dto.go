package adjustment

import (
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/validator"
)

type CreateAdjustmentRequest struct {
	EmployeeCode string  `json:"employee_code"`
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	FromTime     string  `json:"from_time"`
	ToTime       string  `json:"to_time"`
	Source       *string `json:"source,omitempty"`
	Note         *string `json:"note,omitempty"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if !validator.IsInSlice(r.Type, Types) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "unknown adjustment type",
		})
	}

	if !validator.IsValidTimeOfDay(r.FromTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_time",
			Message: "from_time must be HH:MM or HH:MM:SS",
		})
	}
	if !validator.IsValidTimeOfDay(r.ToTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_time",
			Message: "to_time must be HH:MM or HH:MM:SS",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentResponse struct {
	ID           int     `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	FromTime     string  `json:"from_time"`
	ToTime       string  `json:"to_time"`
	Source       *string `json:"source,omitempty"`
	Note         *string `json:"note,omitempty"`
}

type ImportAdjustmentRow struct {
	RowIndex     int     `json:"row_index,omitempty"`
	EmployeeCode string  `json:"employee_code"`
	Date         string  `json:"date"`
	Type         string  `json:"type"`
	FromTime     string  `json:"from_time"`
	ToTime       string  `json:"to_time"`
	Source       *string `json:"source,omitempty"`
	Note         *string `json:"note,omitempty"`
}

type ImportAdjustmentsRequest struct {
	SourceFileName string                `json:"source_file_name,omitempty"`
	Rows           []ImportAdjustmentRow `json:"rows"`
}

type RejectedRow struct {
	RowIndex int    `json:"row_index"`
	Reason   string `json:"reason"`
}

type ImportAdjustmentsResponse struct {
	BatchID  string        `json:"batch_id"`
	Inserted int           `json:"inserted"`
	Invalid  []RejectedRow `json:"invalid"`
}

type ListAdjustmentsRequest struct {
	StartDate    string
	EndDate      string
	EmployeeCode string
	Type         string
}
