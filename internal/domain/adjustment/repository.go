package adjustment

import "context"

type AdjustmentRepository interface {
	// ListRange returns adjustments with startDate <= date <= endDate
	// (local calendar dates). Empty bounds mean unbounded.
	ListRange(ctx context.Context, startDate, endDate string, filter ListFilter) ([]Adjustment, error)
	Create(ctx context.Context, adj Adjustment) (Adjustment, error)
	BulkCreate(ctx context.Context, adjs []Adjustment) (int, error)
}

type ListFilter struct {
	EmployeeCode string
	Type         string
}
