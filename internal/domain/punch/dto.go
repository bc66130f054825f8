package punch

import (
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/validator"
)

type ImportPunchRow struct {
	EmployeeCode  string `json:"employee_code"`
	PunchDatetime string `json:"punch_datetime"`
}

func (r *ImportPunchRow) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportPunchesResponse struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
}
