package attendance

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/adjustment"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/attendance"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/employee"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punch"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punchlink"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}
func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) BulkCreate(ctx context.Context, emps []employee.Employee) (int, error) {
	return len(emps), nil
}

type fakePunchRepo struct {
	punches []punch.Punch
}

func (f *fakePunchRepo) ListRange(ctx context.Context, utcStart, utcEnd time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range f.punches {
		if !p.PunchDatetime.Before(utcStart) && !p.PunchDatetime.After(utcEnd) {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePunchRepo) BulkCreate(ctx context.Context, punches []punch.Punch) (int, error) {
	return len(punches), nil
}

type fakeRuleRepo struct {
	rules []rule.Rule
}

func (f *fakeRuleRepo) List(ctx context.Context) ([]rule.Rule, error) { return f.rules, nil }
func (f *fakeRuleRepo) Create(ctx context.Context, r rule.Rule) (rule.Rule, error) {
	return r, nil
}
func (f *fakeRuleRepo) Update(ctx context.Context, r rule.Rule) (rule.Rule, error) {
	return r, nil
}
func (f *fakeRuleRepo) Delete(ctx context.Context, id int) error { return nil }

type fakeAdjustmentRepo struct {
	adjustments []adjustment.Adjustment
}

func (f *fakeAdjustmentRepo) ListRange(ctx context.Context, startDate, endDate string, filter adjustment.ListFilter) ([]adjustment.Adjustment, error) {
	var out []adjustment.Adjustment
	for _, a := range f.adjustments {
		if (startDate == "" || a.Date >= startDate) && (endDate == "" || a.Date <= endDate) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAdjustmentRepo) Create(ctx context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	return adj, nil
}
func (f *fakeAdjustmentRepo) BulkCreate(ctx context.Context, adjs []adjustment.Adjustment) (int, error) {
	return len(adjs), nil
}

type fakeDecisionRepo struct {
	decisions []punchlink.Decision
}

func (f *fakeDecisionRepo) List(ctx context.Context) ([]punchlink.Decision, error) {
	return f.decisions, nil
}
func (f *fakeDecisionRepo) Upsert(ctx context.Context, d punchlink.Decision) (punchlink.Decision, error) {
	f.decisions = append(f.decisions, d)
	return d, nil
}

type fakeRecordRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Record
	upserts int
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[string]attendance.Record)}
}

func (f *fakeRecordRepo) Upsert(ctx context.Context, rec attendance.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[rec.EmployeeCode+"|"+rec.Date] = rec
	f.upserts++
	return nil
}

func (f *fakeRecordRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Record
	for _, rec := range f.records {
		if filter.StartDate != "" && rec.Date < filter.StartDate {
			continue
		}
		if filter.EndDate != "" && rec.Date > filter.EndDate {
			continue
		}
		if len(filter.EmployeeCodes) > 0 {
			found := false
			for _, code := range filter.EmployeeCodes {
				if code == rec.EmployeeCode {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, int64(len(out)), nil
}

func (f *fakeRecordRepo) get(code, date string) (attendance.Record, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[code+"|"+date]
	return rec, ok
}

type serviceFixture struct {
	service   attendance.AttendanceService
	records   *fakeRecordRepo
	employees *fakeEmployeeRepo
	punches   *fakePunchRepo
	rules     *fakeRuleRepo
	adjs      *fakeAdjustmentRepo
	decisions *fakeDecisionRepo
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		records:   newFakeRecordRepo(),
		employees: &fakeEmployeeRepo{},
		punches:   &fakePunchRepo{},
		rules:     &fakeRuleRepo{},
		adjs:      &fakeAdjustmentRepo{},
		decisions: &fakeDecisionRepo{},
	}
	f.service = NewAttendanceService(f.records, f.employees, f.punches, f.rules, f.adjs, f.decisions)
	return f
}

// Cairo winter time: local clock two hours ahead of UTC.
const cairoOffset = -120

func TestProcess_NormalDay(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{{Code: "1001", Name: "أحمد", ShiftStart: "09:00"}}
	f.punches.punches = []punch.Punch{
		{EmployeeCode: "1001", PunchDatetime: utc("2025-01-24T06:55:00Z")}, // local 08:55
		{EmployeeCode: "1001", PunchDatetime: utc("2025-01-24T15:05:00Z")}, // local 17:05
	}

	resp, err := f.service.Process(context.Background(), attendance.ProcessRequest{
		StartDate:             "2025-01-24",
		EndDate:               "2025-01-24",
		TimezoneOffsetMinutes: cairoOffset,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ProcessedCount)

	rec, ok := f.records.get("1001", "2025-01-24")
	require.True(t, ok)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Empty(t, rec.Penalties)
	require.NotNil(t, rec.CheckIn)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, utc("2025-01-24T06:55:00Z"), *rec.CheckIn)
	assert.Equal(t, utc("2025-01-24T15:05:00Z"), *rec.CheckOut)
	assert.InDelta(t, 8.1667, rec.TotalHours, 0.001)
	assert.Equal(t, 0.0, rec.OvertimeHours)
	assert.Nil(t, rec.Notes)
}

func TestProcess_AbsentDay(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{{Code: "1001", ShiftStart: "09:00"}}

	_, err := f.service.Process(context.Background(), attendance.ProcessRequest{
		StartDate:             "2025-01-24",
		EndDate:               "2025-01-24",
		TimezoneOffsetMinutes: cairoOffset,
	})
	require.NoError(t, err)

	rec, ok := f.records.get("1001", "2025-01-24")
	require.True(t, ok)
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	require.Len(t, rec.Penalties, 1)
	assert.Equal(t, attendance.PenaltyAbsence, rec.Penalties[0].Type)
	assert.Equal(t, 0.0, rec.TotalHours)
}

func TestProcess_LinkedOvernightCheckout(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{{Code: "1001", ShiftStart: "09:00"}}
	f.punches.punches = []punch.Punch{
		{EmployeeCode: "1001", PunchDatetime: utc("2025-01-24T07:00:00Z")}, // local 09:00
		{EmployeeCode: "1001", PunchDatetime: utc("2025-01-24T22:40:00Z")}, // local 2025-01-25 00:40
	}
	target := "2025-01-24"
	f.decisions.decisions = []punchlink.Decision{{
		EmployeeCode:   "1001",
		PunchDatetime:  utc("2025-01-24T22:40:00Z"),
		Action:         punchlink.ActionPreviousDayCheckout,
		TargetBaseDate: &target,
	}}

	resp, err := f.service.Process(context.Background(), attendance.ProcessRequest{
		StartDate:             "2025-01-24",
		EndDate:               "2025-01-25",
		TimezoneOffsetMinutes: cairoOffset,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ProcessedCount)

	day1, ok := f.records.get("1001", "2025-01-24")
	require.True(t, ok)
	assert.Equal(t, attendance.StatusPresent, day1.Status)
	require.NotNil(t, day1.CheckOut)
	assert.Equal(t, utc("2025-01-24T22:40:00Z"), *day1.CheckOut)
	// Worked 09:00 through 00:40 next day: 15h40m span, overtime past 18:00
	// floors at six whole hours.
	assert.InDelta(t, 15.6667, day1.TotalHours, 0.001)
	assert.Equal(t, 6.0, day1.OvertimeHours)
	assert.Empty(t, day1.Penalties)

	// The moved punch no longer exists on its raw day.
	day2, ok := f.records.get("1001", "2025-01-25")
	require.True(t, ok)
	assert.Equal(t, attendance.StatusAbsent, day2.Status)
	assert.Nil(t, day2.CheckIn)
	assert.Nil(t, day2.CheckOut)
}

func TestProcess_MorningPermission(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{{Code: "1001", ShiftStart: "09:00"}}
	f.punches.punches = []punch.Punch{
		{EmployeeCode: "1001", PunchDatetime: utc("2025-01-24T08:20:00Z")}, // local 10:20
		{EmployeeCode: "1001", PunchDatetime: utc("2025-01-24T15:00:00Z")}, // local 17:00
	}
	f.adjs.adjustments = []adjustment.Adjustment{{
		EmployeeCode: "1001",
		Date:         "2025-01-24",
		Type:         adjustment.TypeMorningPermission,
		FromTime:     "09:00",
		ToTime:       "10:30",
	}}

	_, err := f.service.Process(context.Background(), attendance.ProcessRequest{
		StartDate:             "2025-01-24",
		EndDate:               "2025-01-24",
		TimezoneOffsetMinutes: cairoOffset,
	})
	require.NoError(t, err)

	rec, ok := f.records.get("1001", "2025-01-24")
	require.True(t, ok)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Empty(t, rec.Penalties)
}

func TestProcess_MissionDay(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{{Code: "1001", ShiftStart: "09:00"}}
	f.adjs.adjustments = []adjustment.Adjustment{{
		EmployeeCode: "1001",
		Date:         "2025-01-24",
		Type:         adjustment.TypeBusinessTrip,
		FromTime:     "09:00",
		ToTime:       "17:00",
	}}

	_, err := f.service.Process(context.Background(), attendance.ProcessRequest{
		StartDate:             "2025-01-24",
		EndDate:               "2025-01-24",
		TimezoneOffsetMinutes: cairoOffset,
	})
	require.NoError(t, err)

	rec, ok := f.records.get("1001", "2025-01-24")
	require.True(t, ok)
	// The mission runs through shift end, so the day counts as present.
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Empty(t, rec.Penalties)
	require.NotNil(t, rec.MissionStart)
	require.NotNil(t, rec.MissionEnd)
	assert.Equal(t, "09:00:00", *rec.MissionStart)
	assert.Equal(t, "17:00:00", *rec.MissionEnd)
	assert.InDelta(t, 8.0, rec.TotalHours, 0.001)
}

func TestProcess_Idempotent(t *testing.T) {
	f := newServiceFixture()
	f.employees.employees = []employee.Employee{
		{Code: "1001", ShiftStart: "09:00"},
		{Code: "2002", ShiftStart: "09:00"},
	}
	f.punches.punches = []punch.Punch{
		{EmployeeCode: "1001", PunchDatetime: utc("2025-01-24T06:55:00Z")},
		{EmployeeCode: "1001", PunchDatetime: utc("2025-01-24T15:05:00Z")},
	}

	req := attendance.ProcessRequest{
		StartDate:             "2025-01-24",
		EndDate:               "2025-01-25",
		TimezoneOffsetMinutes: cairoOffset,
	}

	resp1, err := f.service.Process(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 4, resp1.ProcessedCount)
	first, _ := f.records.get("1001", "2025-01-24")

	resp2, err := f.service.Process(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 4, resp2.ProcessedCount)

	// Re-running overwrites in place: same row count, same values.
	assert.Len(t, f.records.records, 4)
	second, _ := f.records.get("1001", "2025-01-24")
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.TotalHours, second.TotalHours)
	assert.Equal(t, first.Penalties, second.Penalties)
}

func TestProcess_ValidatesRequest(t *testing.T) {
	f := newServiceFixture()
	_, err := f.service.Process(context.Background(), attendance.ProcessRequest{
		StartDate: "2025-01-25",
		EndDate:   "2025-01-24",
	})
	assert.Error(t, err)
}

func TestList_FiltersAndPaginates(t *testing.T) {
	f := newServiceFixture()
	for _, rec := range []attendance.Record{
		{EmployeeCode: "1001", Date: "2025-01-24", Status: attendance.StatusPresent},
		{EmployeeCode: "1001", Date: "2025-01-25", Status: attendance.StatusAbsent},
		{EmployeeCode: "2002", Date: "2025-01-24", Status: attendance.StatusLate},
	} {
		require.NoError(t, f.records.Upsert(context.Background(), rec))
	}

	resp, err := f.service.List(context.Background(), attendance.ListRequest{
		EmployeeCode: "1001",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 50, resp.Limit)
	require.Len(t, resp.Records, 2)
	assert.Equal(t, "2025-01-25", resp.Records[0].Date)
	assert.NotNil(t, resp.Records[0].Penalties)
}
