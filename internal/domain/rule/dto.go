package rule

import (
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/validator"
)

type CreateRuleRequest struct {
	Name      string `json:"name"`
	Priority  int    `json:"priority"`
	Scope     string `json:"scope"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	RuleType  string `json:"rule_type"`
	Params    Params `json:"params"`
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, ok := ParseScope(r.Scope); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "scope",
			Message: "scope must be all, sector:<name>, dept:<name> or emp:<codes>",
		})
	}

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

	if !validator.IsInSlice(r.RuleType, Types) {
		errs = append(errs, validator.ValidationError{
			Field:   "rule_type",
			Message: "unknown rule_type",
		})
	}

	if r.RuleType == TypeCustomShift {
		if r.Params.ShiftStart != "" && !validator.IsValidTimeOfDay(r.Params.ShiftStart) {
			errs = append(errs, validator.ValidationError{
				Field:   "params.shiftStart",
				Message: "shiftStart must be HH:MM or HH:MM:SS",
			})
		}
		if r.Params.ShiftEnd != "" && !validator.IsValidTimeOfDay(r.Params.ShiftEnd) {
			errs = append(errs, validator.ValidationError{
				Field:   "params.shiftEnd",
				Message: "shiftEnd must be HH:MM or HH:MM:SS",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RuleResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Priority  int    `json:"priority"`
	Scope     string `json:"scope"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	RuleType  string `json:"rule_type"`
	Params    Params `json:"params"`
}
