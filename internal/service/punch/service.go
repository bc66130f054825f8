package punch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punch"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/validator"
	"github.com/google/uuid"
)

type PunchServiceImpl struct {
	punch.PunchRepository
}

func NewPunchService(repo punch.PunchRepository) punch.PunchService {
	return &PunchServiceImpl{PunchRepository: repo}
}

// Import implements punch.PunchService.
func (s *PunchServiceImpl) Import(ctx context.Context, rows []punch.ImportPunchRow) (punch.ImportPunchesResponse, error) {
	batchID := uuid.NewString()

	var punches []punch.Punch
	for i, row := range rows {
		if err := row.Validate(); err != nil {
			return punch.ImportPunchesResponse{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		at, _ := validator.IsValidDateTime(row.PunchDatetime)
		punches = append(punches, punch.Punch{
			EmployeeCode:  row.EmployeeCode,
			PunchDatetime: at.UTC(),
		})
	}

	inserted, err := s.PunchRepository.BulkCreate(ctx, punches)
	if err != nil {
		return punch.ImportPunchesResponse{}, fmt.Errorf("import punches: %w", err)
	}

	slog.Info("punch import completed",
		"batch_id", batchID,
		"rows", len(rows),
		"imported", inserted,
	)
	return punch.ImportPunchesResponse{
		BatchID:  batchID,
		Imported: inserted,
	}, nil
}
