package punchlink

import "context"

type LinkService interface {
	// Scan lists post-midnight punches in the range that may belong to the
	// previous workday, with any decision already taken.
	Scan(ctx context.Context, req ScanRequest) ([]Candidate, error)

	// Decide records an operator action for one punch (last write wins).
	Decide(ctx context.Context, req ActionRequest) (DecisionResponse, error)
}
