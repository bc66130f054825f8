package attendance

import "context"

// AttendanceService runs the computation engine and serves the results.
type AttendanceService interface {
	// Process derives one record per (employee, local day) over the range.
	// Idempotent: re-running with unchanged inputs yields the same rows.
	Process(ctx context.Context, req ProcessRequest) (ProcessResponse, error)

	List(ctx context.Context, req ListRequest) (ListResponse, error)
}
