package punchlink

import (
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/validator"
)

type ActionRequest struct {
	EmployeeCode   string  `json:"employee_code"`
	PunchDatetime  string  `json:"punch_datetime"`
	Action         string  `json:"action"`
	TargetBaseDate *string `json:"target_base_date,omitempty"`
	Note           *string `json:"note,omitempty"`
}

func (r *ActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	if _, ok := validator.IsValidDateTime(r.PunchDatetime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "punch_datetime",
			Message: "punch_datetime must be an ISO8601 timestamp",
		})
	}

	if !validator.IsInSlice(r.Action, Actions) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be previous_day_checkout, current_day_checkin or ignore",
		})
	}

	if r.Action == ActionPreviousDayCheckout {
		if r.TargetBaseDate == nil || *r.TargetBaseDate == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "target_base_date",
				Message: "target_base_date is required when linking to the previous day",
			})
		} else if _, ok := validator.IsValidDate(*r.TargetBaseDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "target_base_date",
				Message: "target_base_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecisionResponse struct {
	ID             int     `json:"id"`
	EmployeeCode   string  `json:"employee_code"`
	PunchDatetime  string  `json:"punch_datetime"`
	Action         string  `json:"action"`
	TargetBaseDate *string `json:"target_base_date,omitempty"`
	Note           *string `json:"note,omitempty"`
}

// Candidate is one suspicious post-midnight punch surfaced for review.
type Candidate struct {
	EmployeeCode          string  `json:"employee_code"`
	EmployeeName          *string `json:"employee_name,omitempty"`
	PunchDatetime         string  `json:"punch_datetime"`
	LocalDate             string  `json:"local_date"`
	LocalTime             string  `json:"local_time"`
	SuggestedPreviousDate string  `json:"suggested_previous_date"`
	Status                string  `json:"status"`
	Note                  *string `json:"note,omitempty"`
}

type ScanRequest struct {
	StartDate             string
	EndDate               string
	EmployeeCode          string
	TimezoneOffsetMinutes int
}
