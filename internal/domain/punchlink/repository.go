package punchlink

import "context"

type DecisionRepository interface {
	List(ctx context.Context) ([]Decision, error)

	// Upsert stores a decision, replacing any earlier ruling for the same
	// (employee_code, punch_datetime).
	Upsert(ctx context.Context, d Decision) (Decision, error)
}
