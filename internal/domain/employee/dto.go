package employee

import (
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Sector     *string `json:"sector,omitempty"`
	Department *string `json:"department,omitempty"`
	JobTitle   *string `json:"job_title,omitempty"`
	Branch     *string `json:"branch,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	ShiftStart string  `json:"shift_start,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be numeric",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.ShiftStart != "" && !validator.IsValidTimeOfDay(r.ShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start must be HH:MM or HH:MM:SS",
		})
	}

	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Sector     *string `json:"sector,omitempty"`
	Department *string `json:"department,omitempty"`
	JobTitle   *string `json:"job_title,omitempty"`
	Branch     *string `json:"branch,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	ShiftStart *string `json:"shift_start,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.ShiftStart != nil && !validator.IsValidTimeOfDay(*r.ShiftStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start must be HH:MM or HH:MM:SS",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         int     `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Sector     *string `json:"sector,omitempty"`
	Department *string `json:"department,omitempty"`
	JobTitle   *string `json:"job_title,omitempty"`
	Branch     *string `json:"branch,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	ShiftStart string  `json:"shift_start"`
}

type ImportEmployeesResponse struct {
	BatchID  string `json:"batch_id"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}
