package attendance

import "context"

type RecordRepository interface {
	// Upsert writes the record for its (employee_code, date) key, replacing
	// all computed fields if a row already exists. Must be atomic per key.
	Upsert(ctx context.Context, rec Record) error

	// List returns records in the date range, newest first, with optional
	// employee-code filter (CSV accepted) and pagination.
	List(ctx context.Context, filter ListFilter) ([]Record, int64, error)
}

type ListFilter struct {
	StartDate     string
	EndDate       string
	EmployeeCodes []string
	Page          int
	Limit         int
}
