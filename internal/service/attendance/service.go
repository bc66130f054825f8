package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/adjustment"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/attendance"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/employee"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punch"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punchlink"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/rule"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

// punchFetchPadding widens the raw punch window on each side of the
// requested range so punches near local-day boundaries are never missed.
const punchFetchPadding = 12 * time.Hour

// maxConcurrentEmployees bounds the batch worker pool. One employee's days
// run sequentially; distinct employees never share an upsert key, so
// parallel workers cannot race on a row.
const maxConcurrentEmployees = 8

type AttendanceServiceImpl struct {
	attendance.RecordRepository
	employee.EmployeeRepository
	punch.PunchRepository
	rule.RuleRepository
	adjustment.AdjustmentRepository
	punchlink.DecisionRepository
}

func NewAttendanceService(
	recordRepo attendance.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	punchRepo punch.PunchRepository,
	ruleRepo rule.RuleRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
	decisionRepo punchlink.DecisionRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		RecordRepository:     recordRepo,
		EmployeeRepository:   employeeRepo,
		PunchRepository:      punchRepo,
		RuleRepository:       ruleRepo,
		AdjustmentRepository: adjustmentRepo,
		DecisionRepository:   decisionRepo,
	}
}

// batchContext is the immutable snapshot one Process run computes from.
// Everything is read once at batch start; a rule or adjustment created
// mid-run is not visible to the run.
type batchContext struct {
	offsetMinutes int
	days          []string
	employees     []employee.Employee
	rules         []rule.Rule
	adjustments   map[string]map[string][]adjustment.Adjustment // code -> day -> entries
	buckets       punchBuckets
}

// Process implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Process(ctx context.Context, req attendance.ProcessRequest) (attendance.ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ProcessResponse{}, err
	}

	bc, err := s.loadBatchContext(ctx, req)
	if err != nil {
		return attendance.ProcessResponse{}, fmt.Errorf("%w: %w", attendance.ErrProcessingFailed, err)
	}

	var processed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEmployees)

	for _, emp := range bc.employees {
		emp := emp
		g.Go(func() error {
			for _, day := range bc.days {
				rec, err := computeDayRecord(emp, day, bc)
				if err != nil {
					return fmt.Errorf("compute %s/%s: %w", emp.Code, day, err)
				}
				if err := s.RecordRepository.Upsert(gctx, rec); err != nil {
					return fmt.Errorf("upsert %s/%s: %w", emp.Code, day, err)
				}
				processed.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return attendance.ProcessResponse{}, fmt.Errorf("%w (processed %d cells): %w",
			attendance.ErrProcessingFailed, processed.Load(), err)
	}

	slog.Info("attendance processing completed",
		"start_date", req.StartDate,
		"end_date", req.EndDate,
		"employees", len(bc.employees),
		"days", len(bc.days),
		"processed", processed.Load(),
	)
	return attendance.ProcessResponse{ProcessedCount: int(processed.Load())}, nil
}

func (s *AttendanceServiceImpl) loadBatchContext(ctx context.Context, req attendance.ProcessRequest) (*batchContext, error) {
	days, err := localDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date range: %w", err)
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	rules, err := s.RuleRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}

	adjustments, err := s.AdjustmentRepository.ListRange(ctx, req.StartDate, req.EndDate, adjustment.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	adjByCell := make(map[string]map[string][]adjustment.Adjustment)
	for _, adj := range adjustments {
		if adjByCell[adj.EmployeeCode] == nil {
			adjByCell[adj.EmployeeCode] = make(map[string][]adjustment.Adjustment)
		}
		adjByCell[adj.EmployeeCode][adj.Date] = append(adjByCell[adj.EmployeeCode][adj.Date], adj)
	}

	decisionList, err := s.DecisionRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list punch-link decisions: %w", err)
	}
	decisions := make(map[string]punchlink.Decision, len(decisionList))
	for _, d := range decisionList {
		// Last write wins per punch; the repository already returns the
		// latest ruling per key, the map just enforces it.
		decisions[d.Key()] = d
	}

	rangeStart, err := localDayStartUTC(req.StartDate, req.TimezoneOffsetMinutes)
	if err != nil {
		return nil, err
	}
	rangeEnd, err := localDayStartUTC(req.EndDate, req.TimezoneOffsetMinutes)
	if err != nil {
		return nil, err
	}
	rangeEnd = rangeEnd.Add(24 * time.Hour)

	punches, err := s.PunchRepository.ListRange(ctx,
		rangeStart.Add(-punchFetchPadding), rangeEnd.Add(punchFetchPadding))
	if err != nil {
		return nil, fmt.Errorf("list punches: %w", err)
	}

	return &batchContext{
		offsetMinutes: req.TimezoneOffsetMinutes,
		days:          days,
		employees:     employees,
		rules:         rules,
		adjustments:   adjByCell,
		buckets:       bucketPunches(punches, decisions, req.TimezoneOffsetMinutes),
	}, nil
}

// computeDayRecord runs the full per-cell pipeline: rule resolution →
// adjustment effects → classification → overtime and notes.
func computeDayRecord(emp employee.Employee, day string, bc *batchContext) (attendance.Record, error) {
	shift := resolveShift(emp, day, bc.rules)
	dayAdjustments := bc.adjustments[emp.Code][day]

	checkIn, checkOut := computeCheckInOut(
		bc.buckets.native[emp.Code][day],
		bc.buckets.linked[emp.Code][day],
	)

	dayStartUTC, err := localDayStartUTC(day, bc.offsetMinutes)
	if err != nil {
		return attendance.Record{}, err
	}
	var checkInSeconds, checkOutSeconds *int
	if checkIn != nil {
		v := int(checkIn.Sub(dayStartUTC).Seconds())
		checkInSeconds = &v
	}
	if checkOut != nil {
		// May exceed 86400 for a linked overnight checkout.
		v := int(checkOut.Sub(dayStartUTC).Seconds())
		checkOutSeconds = &v
	}

	effects, err := computeAdjustmentEffects(shift.ShiftStart, shift.ShiftEnd, dayAdjustments, checkInSeconds, checkOutSeconds)
	if err != nil {
		return attendance.Record{}, err
	}

	shiftEndSeconds, err := timeutil.ToSeconds(shift.ShiftEnd)
	if err != nil {
		return attendance.Record{}, err
	}

	classification := classifyDay(classifyInput{
		CheckInSeconds:             checkInSeconds,
		CheckOutSeconds:            checkOutSeconds,
		EffectiveShiftStartSeconds: effects.EffectiveShiftStartSeconds,
		EffectiveShiftEndSeconds:   effects.EffectiveShiftEndSeconds,
		DefaultShiftEndSeconds:     shiftEndSeconds,
		SuppressPenalties:          effects.SuppressPenalties,
		HalfDayExcused:             effects.HalfDayExcused,
		MissionStartSeconds:        effects.MissionStartSeconds,
		MissionEndSeconds:          effects.MissionEndSeconds,
	})

	var totalHours float64
	if effects.FirstStampSeconds != nil && effects.LastStampSeconds != nil {
		span := *effects.LastStampSeconds - *effects.FirstStampSeconds
		if span > 0 {
			totalHours = float64(span) / float64(timeutil.SecondsPerHour)
		}
	}

	notes := automaticNotes(notesInput{
		ExistingNotes:       adjustmentNotes(dayAdjustments),
		CheckInExists:       checkIn != nil,
		CheckOutExists:      checkOut != nil,
		MissingStampExcused: classification.IsExcused,
		EarlyLeaveExcused:   classification.IsExcused,
		CheckOutBeforeEarlyLeave: checkOutSeconds != nil &&
			*checkOutSeconds < effects.EffectiveShiftEndSeconds-graceSeconds,
	})

	rec := attendance.Record{
		EmployeeCode:   emp.Code,
		Date:           day,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		TotalHours:     totalHours,
		OvertimeHours:  float64(overtimeHours(shiftEndSeconds, checkOutSeconds)),
		Status:         classification.Status,
		Penalties:      classification.Penalties,
		IsOvernight:    shift.IsOvernight,
		HalfDayExcused: effects.HalfDayExcused,
	}
	if notes != "" {
		rec.Notes = &notes
	}
	if effects.MissionStartSeconds != nil {
		v := timeutil.FromSeconds(*effects.MissionStartSeconds)
		rec.MissionStart = &v
	}
	if effects.MissionEndSeconds != nil {
		v := timeutil.FromSeconds(*effects.MissionEndSeconds)
		rec.MissionEnd = &v
	}
	return rec, nil
}

// adjustmentNotes seeds the record's free-text notes from operator notes on
// the day's adjustments.
func adjustmentNotes(adjs []adjustment.Adjustment) string {
	var notes []string
	for _, adj := range adjs {
		if adj.Note != nil && strings.TrimSpace(*adj.Note) != "" {
			notes = append(notes, strings.TrimSpace(*adj.Note))
		}
	}
	return strings.Join(notes, noteDelimiter)
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, req attendance.ListRequest) (attendance.ListResponse, error) {
	filter := attendance.ListFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Page:      req.Page,
		Limit:     req.Limit,
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	for _, code := range strings.Split(req.EmployeeCode, ",") {
		if code = strings.TrimSpace(code); code != "" {
			filter.EmployeeCodes = append(filter.EmployeeCodes, code)
		}
	}

	records, total, err := s.RecordRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	penalties := rec.Penalties
	if penalties == nil {
		penalties = []attendance.Penalty{}
	}
	return attendance.RecordResponse{
		ID:             rec.ID,
		EmployeeCode:   rec.EmployeeCode,
		Date:           rec.Date,
		CheckIn:        timePtrToString(rec.CheckIn),
		CheckOut:       timePtrToString(rec.CheckOut),
		TotalHours:     rec.TotalHours,
		OvertimeHours:  rec.OvertimeHours,
		Status:         rec.Status,
		Penalties:      penalties,
		IsOvernight:    rec.IsOvernight,
		Notes:          rec.Notes,
		MissionStart:   rec.MissionStart,
		MissionEnd:     rec.MissionEnd,
		HalfDayExcused: rec.HalfDayExcused,
	}
}
