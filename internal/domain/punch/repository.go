package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	// ListRange returns punches with utcStart <= punch_datetime <= utcEnd,
	// ordered by punch_datetime ascending.
	ListRange(ctx context.Context, utcStart, utcEnd time.Time) ([]Punch, error)

	BulkCreate(ctx context.Context, punches []Punch) (int, error)
}
