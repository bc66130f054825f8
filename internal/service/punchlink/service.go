package punchlink

import (
	"context"
	"fmt"
	"time"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/employee"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punch"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punchlink"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/validator"
)

// scanCutoffHour is the local hour below which a punch looks like a
// forgotten previous-day checkout.
const scanCutoffHour = 6

// statusUndecided marks candidates with no operator ruling yet.
const statusUndecided = "undecided"

type LinkServiceImpl struct {
	punchlink.DecisionRepository
	punch.PunchRepository
	employee.EmployeeRepository
}

func NewLinkService(
	decisionRepo punchlink.DecisionRepository,
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
) punchlink.LinkService {
	return &LinkServiceImpl{
		DecisionRepository: decisionRepo,
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Scan implements punchlink.LinkService.
func (s *LinkServiceImpl) Scan(ctx context.Context, req punchlink.ScanRequest) ([]punchlink.Candidate, error) {
	var errs validator.ValidationErrors
	start, ok := validator.IsValidDate(req.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	end, ok := validator.IsValidDate(req.EndDate)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	offset := time.Duration(req.TimezoneOffsetMinutes) * time.Minute
	// Local day window in UTC: UTC = local + offset.
	utcStart := start.Add(offset)
	utcEnd := end.Add(offset).Add(24 * time.Hour)

	punches, err := s.PunchRepository.ListRange(ctx, utcStart, utcEnd)
	if err != nil {
		return nil, fmt.Errorf("list punches: %w", err)
	}

	decisionList, err := s.DecisionRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	decisions := make(map[string]punchlink.Decision, len(decisionList))
	for _, d := range decisionList {
		decisions[d.Key()] = d
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.Code] = emp.Name
	}

	var candidates []punchlink.Candidate
	for _, p := range punches {
		if req.EmployeeCode != "" && p.EmployeeCode != req.EmployeeCode {
			continue
		}

		local := p.PunchDatetime.Add(-offset).UTC()
		if local.Hour() >= scanCutoffHour {
			continue
		}

		candidate := punchlink.Candidate{
			EmployeeCode:          p.EmployeeCode,
			PunchDatetime:         p.PunchDatetime.UTC().Format(time.RFC3339),
			LocalDate:             local.Format("2006-01-02"),
			LocalTime:             local.Format("15:04:05"),
			SuggestedPreviousDate: local.AddDate(0, 0, -1).Format("2006-01-02"),
			Status:                statusUndecided,
		}
		if name, ok := names[p.EmployeeCode]; ok {
			candidate.EmployeeName = &name
		}
		if d, ok := decisions[punchlink.Key(p.EmployeeCode, p.PunchDatetime)]; ok {
			candidate.Status = d.Action
			candidate.Note = d.Note
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// Decide implements punchlink.LinkService.
func (s *LinkServiceImpl) Decide(ctx context.Context, req punchlink.ActionRequest) (punchlink.DecisionResponse, error) {
	if err := req.Validate(); err != nil {
		return punchlink.DecisionResponse{}, err
	}

	at, _ := validator.IsValidDateTime(req.PunchDatetime)
	decision := punchlink.Decision{
		EmployeeCode:   req.EmployeeCode,
		PunchDatetime:  at.UTC(),
		Action:         req.Action,
		TargetBaseDate: req.TargetBaseDate,
		Note:           req.Note,
		DecidedAt:      time.Now().UTC(),
	}

	saved, err := s.DecisionRepository.Upsert(ctx, decision)
	if err != nil {
		return punchlink.DecisionResponse{}, fmt.Errorf("save punch-link decision: %w", err)
	}

	return punchlink.DecisionResponse{
		ID:             saved.ID,
		EmployeeCode:   saved.EmployeeCode,
		PunchDatetime:  saved.PunchDatetime.UTC().Format(time.RFC3339),
		Action:         saved.Action,
		TargetBaseDate: saved.TargetBaseDate,
		Note:           saved.Note,
	}, nil
}
