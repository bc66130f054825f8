package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/attendance"
)

// AttendanceJobs keeps recent attendance records current without an operator
// pressing the process button: late punch imports and fresh adjustments land
// in the records within the hour.
type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	offsetMinutes     int
	reprocessDays     int
}

func NewAttendanceJobs(attendanceService attendance.AttendanceService, offsetMinutes, reprocessDays int) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		offsetMinutes:     offsetMinutes,
		reprocessDays:     reprocessDays,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reprocess_recent_attendance", 1*time.Hour, j.ReprocessRecentAttendance)
}

// ReprocessRecentAttendance recomputes the trailing local days. Safe to run
// repeatedly: processing is an idempotent upsert per (employee, day).
func (j *AttendanceJobs) ReprocessRecentAttendance(ctx context.Context) error {
	today := time.Now().UTC().Add(-time.Duration(j.offsetMinutes) * time.Minute)
	start := today.AddDate(0, 0, -(j.reprocessDays - 1))

	req := attendance.ProcessRequest{
		StartDate:             start.Format("2006-01-02"),
		EndDate:               today.Format("2006-01-02"),
		TimezoneOffsetMinutes: j.offsetMinutes,
	}

	resp, err := j.attendanceService.Process(ctx, req)
	if err != nil {
		return fmt.Errorf("reprocess %s..%s: %w", req.StartDate, req.EndDate, err)
	}

	slog.Info("Cron: attendance reprocessed",
		"start_date", req.StartDate,
		"end_date", req.EndDate,
		"processed", resp.ProcessedCount,
	)
	return nil
}
