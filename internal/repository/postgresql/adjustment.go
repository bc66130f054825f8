package postgresql

import (
	"context"
	"fmt"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/adjustment"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

// ListRange implements adjustment.AdjustmentRepository.
func (a *adjustmentRepositoryImpl) ListRange(ctx context.Context, startDate, endDate string, filter adjustment.ListFilter) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_code, date, type, from_time, to_time, source, note
		FROM adjustments
		WHERE 1=1
	`
	var args []interface{}
	argPos := 1

	if startDate != "" {
		query += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, startDate)
		argPos++
	}
	if endDate != "" {
		query += fmt.Sprintf(" AND date <= $%d", argPos)
		args = append(args, endDate)
		argPos++
	}
	if filter.EmployeeCode != "" {
		query += fmt.Sprintf(" AND employee_code = $%d", argPos)
		args = append(args, filter.EmployeeCode)
		argPos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", argPos)
		args = append(args, filter.Type)
		argPos++
	}
	query += " ORDER BY date, employee_code, id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var adjustments []adjustment.Adjustment
	for rows.Next() {
		var adj adjustment.Adjustment
		err := rows.Scan(
			&adj.ID, &adj.EmployeeCode, &adj.Date, &adj.Type,
			&adj.FromTime, &adj.ToTime, &adj.Source, &adj.Note,
		)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adj)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return adjustments, nil
}

// Create implements adjustment.AdjustmentRepository.
func (a *adjustmentRepositoryImpl) Create(ctx context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO adjustments (employee_code, date, type, from_time, to_time, source, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_code, date, type, from_time, to_time, source, note
	`

	var created adjustment.Adjustment
	err := q.QueryRow(ctx, query,
		adj.EmployeeCode, adj.Date, adj.Type, adj.FromTime, adj.ToTime, adj.Source, adj.Note,
	).Scan(
		&created.ID, &created.EmployeeCode, &created.Date, &created.Type,
		&created.FromTime, &created.ToTime, &created.Source, &created.Note,
	)
	if err != nil {
		return adjustment.Adjustment{}, fmt.Errorf("create adjustment: %w", err)
	}
	return created, nil
}

// BulkCreate implements adjustment.AdjustmentRepository.
func (a *adjustmentRepositoryImpl) BulkCreate(ctx context.Context, adjs []adjustment.Adjustment) (int, error) {
	if len(adjs) == 0 {
		return 0, nil
	}

	inserted := 0
	err := WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO adjustments (employee_code, date, type, from_time, to_time, source, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		for _, adj := range adjs {
			if _, err := tx.Exec(ctx, query,
				adj.EmployeeCode, adj.Date, adj.Type, adj.FromTime, adj.ToTime, adj.Source, adj.Note,
			); err != nil {
				return fmt.Errorf("insert adjustment %s/%s: %w", adj.EmployeeCode, adj.Date, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
