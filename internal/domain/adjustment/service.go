package adjustment

import "context"

type AdjustmentService interface {
	List(ctx context.Context, req ListAdjustmentsRequest) ([]AdjustmentResponse, error)
	Create(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)

	// Import validates each row independently; bad rows are reported back,
	// good rows are inserted. A malformed row never aborts the batch.
	Import(ctx context.Context, req ImportAdjustmentsRequest) (ImportAdjustmentsResponse, error)
}
