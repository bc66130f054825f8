package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punch"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// ListRange implements punch.PunchRepository.
func (p *punchRepositoryImpl) ListRange(ctx context.Context, utcStart, utcEnd time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_code, punch_datetime
		FROM biometric_punches
		WHERE punch_datetime >= $1 AND punch_datetime <= $2
		ORDER BY punch_datetime
	`

	rows, err := q.Query(ctx, query, utcStart, utcEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var pn punch.Punch
		if err := rows.Scan(&pn.ID, &pn.EmployeeCode, &pn.PunchDatetime); err != nil {
			return nil, err
		}
		pn.PunchDatetime = pn.PunchDatetime.UTC()
		punches = append(punches, pn)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}

// BulkCreate implements punch.PunchRepository.
func (p *punchRepositoryImpl) BulkCreate(ctx context.Context, punches []punch.Punch) (int, error) {
	if len(punches) == 0 {
		return 0, nil
	}

	inserted := 0
	err := WithTransaction(ctx, p.db, func(tx pgx.Tx) error {
		// Re-importing the same sheet must not duplicate punches.
		query := `
			INSERT INTO biometric_punches (employee_code, punch_datetime)
			VALUES ($1, $2)
			ON CONFLICT (employee_code, punch_datetime) DO NOTHING
		`
		for _, pn := range punches {
			tag, err := tx.Exec(ctx, query, pn.EmployeeCode, pn.PunchDatetime.UTC())
			if err != nil {
				return fmt.Errorf("insert punch %s/%s: %w", pn.EmployeeCode, pn.PunchDatetime, err)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
