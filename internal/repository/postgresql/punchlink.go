package postgresql

import (
	"context"
	"fmt"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punchlink"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/database"
)

type punchLinkRepositoryImpl struct {
	db *database.DB
}

func NewPunchLinkRepository(db *database.DB) punchlink.DecisionRepository {
	return &punchLinkRepositoryImpl{db: db}
}

// List implements punchlink.DecisionRepository.
func (p *punchLinkRepositoryImpl) List(ctx context.Context) ([]punchlink.Decision, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_code, punch_datetime, action, target_base_date, note, decided_at
		FROM punch_links
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decisions []punchlink.Decision
	for rows.Next() {
		var d punchlink.Decision
		err := rows.Scan(
			&d.ID, &d.EmployeeCode, &d.PunchDatetime, &d.Action,
			&d.TargetBaseDate, &d.Note, &d.DecidedAt,
		)
		if err != nil {
			return nil, err
		}
		d.PunchDatetime = d.PunchDatetime.UTC()
		decisions = append(decisions, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return decisions, nil
}

// Upsert implements punchlink.DecisionRepository.
func (p *punchLinkRepositoryImpl) Upsert(ctx context.Context, d punchlink.Decision) (punchlink.Decision, error) {
	q := GetQuerier(ctx, p.db)

	// Last write wins per (employee_code, punch_datetime).
	query := `
		INSERT INTO punch_links (employee_code, punch_datetime, action, target_base_date, note, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_code, punch_datetime) DO UPDATE SET
			action = EXCLUDED.action,
			target_base_date = EXCLUDED.target_base_date,
			note = EXCLUDED.note,
			decided_at = EXCLUDED.decided_at
		RETURNING id, employee_code, punch_datetime, action, target_base_date, note, decided_at
	`

	var saved punchlink.Decision
	err := q.QueryRow(ctx, query,
		d.EmployeeCode, d.PunchDatetime.UTC(), d.Action, d.TargetBaseDate, d.Note, d.DecidedAt,
	).Scan(
		&saved.ID, &saved.EmployeeCode, &saved.PunchDatetime, &saved.Action,
		&saved.TargetBaseDate, &saved.Note, &saved.DecidedAt,
	)
	if err != nil {
		return punchlink.Decision{}, fmt.Errorf("upsert punch link: %w", err)
	}
	saved.PunchDatetime = saved.PunchDatetime.UTC()
	return saved, nil
}
