package adjustment

import (
	"context"
	"testing"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/adjustment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdjustmentRepo struct {
	created []adjustment.Adjustment
}

func (f *fakeAdjustmentRepo) ListRange(ctx context.Context, startDate, endDate string, filter adjustment.ListFilter) ([]adjustment.Adjustment, error) {
	return f.created, nil
}

func (f *fakeAdjustmentRepo) Create(ctx context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	adj.ID = len(f.created) + 1
	f.created = append(f.created, adj)
	return adj, nil
}

func (f *fakeAdjustmentRepo) BulkCreate(ctx context.Context, adjs []adjustment.Adjustment) (int, error) {
	f.created = append(f.created, adjs...)
	return len(adjs), nil
}

func TestImport_BadRowsDoNotAbortBatch(t *testing.T) {
	repo := &fakeAdjustmentRepo{}
	svc := NewAdjustmentService(repo)

	resp, err := svc.Import(context.Background(), adjustment.ImportAdjustmentsRequest{
		SourceFileName: "اذونات-يناير.xlsx",
		Rows: []adjustment.ImportAdjustmentRow{
			{EmployeeCode: "1001", Date: "2025-01-24", Type: adjustment.TypeMorningPermission, FromTime: "9:0", ToTime: "10:30"},
			{EmployeeCode: "", Date: "2025-01-24", Type: adjustment.TypeMorningPermission, FromTime: "09:00", ToTime: "10:00"},
			{EmployeeCode: "1002", Date: "not-a-date", Type: adjustment.TypeBusinessTrip, FromTime: "09:00", ToTime: "17:00"},
			{EmployeeCode: "1003", Date: "2025-01-24", Type: adjustment.TypeEveningPermission, FromTime: "15:00", ToTime: "17:00"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.BatchID)
	assert.Equal(t, 2, resp.Inserted)
	require.Len(t, resp.Invalid, 2)
	assert.Equal(t, 2, resp.Invalid[0].RowIndex)
	assert.Equal(t, 3, resp.Invalid[1].RowIndex)

	// Loose times are normalized before storage so the engine can compare
	// exact boundaries.
	require.Len(t, repo.created, 2)
	assert.Equal(t, "09:00:00", repo.created[0].FromTime)
	assert.Equal(t, "10:30:00", repo.created[0].ToTime)
}

func TestImport_SourceFileNameFillsMissingSource(t *testing.T) {
	repo := &fakeAdjustmentRepo{}
	svc := NewAdjustmentService(repo)

	_, err := svc.Import(context.Background(), adjustment.ImportAdjustmentsRequest{
		SourceFileName: "sheet.xlsx",
		Rows: []adjustment.ImportAdjustmentRow{
			{EmployeeCode: "1001", Date: "2025-01-24", Type: adjustment.TypeMorningPermission, FromTime: "09:00", ToTime: "10:00"},
		},
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	require.NotNil(t, repo.created[0].Source)
	assert.Equal(t, "sheet.xlsx", *repo.created[0].Source)
}

func TestCreate_NormalizesTimes(t *testing.T) {
	repo := &fakeAdjustmentRepo{}
	svc := NewAdjustmentService(repo)

	resp, err := svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeCode: "1001",
		Date:         "2025-01-24",
		Type:         adjustment.TypeHalfDayLeave,
		FromTime:     "13:00",
		ToTime:       "17:0",
	})
	require.NoError(t, err)
	assert.Equal(t, "13:00:00", resp.FromTime)
	assert.Equal(t, "17:00:00", resp.ToTime)
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	svc := NewAdjustmentService(&fakeAdjustmentRepo{})

	_, err := svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeCode: "1001",
		Date:         "2025-01-24",
		Type:         "إجازة سنوية",
		FromTime:     "09:00",
		ToTime:       "17:00",
	})
	assert.Error(t, err)
}
