package punch

import "context"

type PunchService interface {
	// Import appends raw biometric punches in bulk. Duplicate
	// (employee_code, punch_datetime) pairs are skipped, not errors.
	Import(ctx context.Context, rows []ImportPunchRow) (ImportPunchesResponse, error)
}
