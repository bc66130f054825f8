package postgresql

import (
	"context"
	"fmt"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/attendance"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.RecordRepository.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	// Single-statement upsert: atomic per (employee_code, date), so a
	// re-run never leaves a half-written row.
	query := `
		INSERT INTO attendance_records (
			employee_code, date, check_in, check_out, total_hours, overtime_hours,
			status, penalties, is_overnight, notes, mission_start, mission_end, half_day_excused
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (employee_code, date) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			total_hours = EXCLUDED.total_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			status = EXCLUDED.status,
			penalties = EXCLUDED.penalties,
			is_overnight = EXCLUDED.is_overnight,
			notes = EXCLUDED.notes,
			mission_start = EXCLUDED.mission_start,
			mission_end = EXCLUDED.mission_end,
			half_day_excused = EXCLUDED.half_day_excused
	`

	penalties := rec.Penalties
	if penalties == nil {
		penalties = []attendance.Penalty{}
	}

	_, err := q.Exec(ctx, query,
		rec.EmployeeCode, rec.Date, rec.CheckIn, rec.CheckOut,
		rec.TotalHours, rec.OvertimeHours, rec.Status, penalties,
		rec.IsOvernight, rec.Notes, rec.MissionStart, rec.MissionEnd, rec.HalfDayExcused,
	)
	if err != nil {
		return fmt.Errorf("upsert attendance record %s/%s: %w", rec.EmployeeCode, rec.Date, err)
	}
	return nil
}

// List implements attendance.RecordRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	where := " WHERE 1=1"
	var args []interface{}
	argPos := 1

	if filter.StartDate != "" {
		where += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, filter.StartDate)
		argPos++
	}
	if filter.EndDate != "" {
		where += fmt.Sprintf(" AND date <= $%d", argPos)
		args = append(args, filter.EndDate)
		argPos++
	}
	if len(filter.EmployeeCodes) > 0 {
		where += fmt.Sprintf(" AND employee_code = ANY($%d)", argPos)
		args = append(args, filter.EmployeeCodes)
		argPos++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM attendance_records"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count attendance records: %w", err)
	}

	query := `
		SELECT id, employee_code, date, check_in, check_out, total_hours, overtime_hours,
			status, penalties, is_overnight, notes, mission_start, mission_end, half_day_excused
		FROM attendance_records` + where + `
		ORDER BY date DESC, employee_code
	`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeCode, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.TotalHours, &rec.OvertimeHours, &rec.Status, &rec.Penalties,
			&rec.IsOvernight, &rec.Notes, &rec.MissionStart, &rec.MissionEnd, &rec.HalfDayExcused,
		)
		if err != nil {
			return nil, 0, err
		}
		if rec.CheckIn != nil {
			t := rec.CheckIn.UTC()
			rec.CheckIn = &t
		}
		if rec.CheckOut != nil {
			t := rec.CheckOut.UTC()
			rec.CheckOut = &t
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
