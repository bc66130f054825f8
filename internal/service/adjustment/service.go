package adjustment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/adjustment"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/timeutil"
	"github.com/google/uuid"
)

type AdjustmentServiceImpl struct {
	adjustment.AdjustmentRepository
}

func NewAdjustmentService(repo adjustment.AdjustmentRepository) adjustment.AdjustmentService {
	return &AdjustmentServiceImpl{AdjustmentRepository: repo}
}

// List implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) List(ctx context.Context, req adjustment.ListAdjustmentsRequest) ([]adjustment.AdjustmentResponse, error) {
	adjs, err := s.AdjustmentRepository.ListRange(ctx, req.StartDate, req.EndDate, adjustment.ListFilter{
		EmployeeCode: req.EmployeeCode,
		Type:         req.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}

	responses := make([]adjustment.AdjustmentResponse, 0, len(adjs))
	for _, adj := range adjs {
		responses = append(responses, mapAdjustmentToResponse(adj))
	}
	return responses, nil
}

// Create implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	adj, err := adjustmentFromRow(req.EmployeeCode, req.Date, req.Type, req.FromTime, req.ToTime, req.Source, req.Note)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	created, err := s.AdjustmentRepository.Create(ctx, adj)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("create adjustment: %w", err)
	}
	return mapAdjustmentToResponse(created), nil
}

// Import implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Import(ctx context.Context, req adjustment.ImportAdjustmentsRequest) (adjustment.ImportAdjustmentsResponse, error) {
	batchID := uuid.NewString()
	source := req.SourceFileName

	var valid []adjustment.Adjustment
	var rejected []adjustment.RejectedRow
	for i, row := range req.Rows {
		rowIndex := row.RowIndex
		if rowIndex == 0 {
			rowIndex = i + 1
		}

		createReq := adjustment.CreateAdjustmentRequest{
			EmployeeCode: row.EmployeeCode,
			Date:         row.Date,
			Type:         row.Type,
			FromTime:     row.FromTime,
			ToTime:       row.ToTime,
			Source:       row.Source,
			Note:         row.Note,
		}
		if err := createReq.Validate(); err != nil {
			rejected = append(rejected, adjustment.RejectedRow{RowIndex: rowIndex, Reason: err.Error()})
			continue
		}

		adj, err := adjustmentFromRow(row.EmployeeCode, row.Date, row.Type, row.FromTime, row.ToTime, row.Source, row.Note)
		if err != nil {
			rejected = append(rejected, adjustment.RejectedRow{RowIndex: rowIndex, Reason: err.Error()})
			continue
		}
		if adj.Source == nil && source != "" {
			adj.Source = &source
		}
		valid = append(valid, adj)
	}

	inserted, err := s.AdjustmentRepository.BulkCreate(ctx, valid)
	if err != nil {
		return adjustment.ImportAdjustmentsResponse{}, fmt.Errorf("import adjustments: %w", err)
	}

	slog.Info("adjustment import completed",
		"batch_id", batchID,
		"inserted", inserted,
		"rejected", len(rejected),
	)
	return adjustment.ImportAdjustmentsResponse{
		BatchID:  batchID,
		Inserted: inserted,
		Invalid:  rejected,
	}, nil
}

// adjustmentFromRow normalizes the times so the engine compares exact
// HH:MM:SS strings.
func adjustmentFromRow(code, date, adjType, fromTime, toTime string, source, note *string) (adjustment.Adjustment, error) {
	normalizedFrom, err := timeutil.Normalize(fromTime)
	if err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("from_time: %w", err)
	}
	normalizedTo, err := timeutil.Normalize(toTime)
	if err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("to_time: %w", err)
	}

	return adjustment.Adjustment{
		EmployeeCode: code,
		Date:         date,
		Type:         adjType,
		FromTime:     normalizedFrom,
		ToTime:       normalizedTo,
		Source:       source,
		Note:         note,
	}, nil
}

func mapAdjustmentToResponse(adj adjustment.Adjustment) adjustment.AdjustmentResponse {
	return adjustment.AdjustmentResponse{
		ID:           adj.ID,
		EmployeeCode: adj.EmployeeCode,
		Date:         adj.Date,
		Type:         adj.Type,
		FromTime:     adj.FromTime,
		ToTime:       adj.ToTime,
		Source:       adj.Source,
		Note:         adj.Note,
	}
}
