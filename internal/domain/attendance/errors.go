package attendance

import "errors"

var (
	// ErrProcessingFailed wraps any storage failure during a batch pass.
	// Cells upserted before the failure stay written; re-running the same
	// range is safe because the upsert is idempotent.
	ErrProcessingFailed = errors.New("attendance processing failed")

	ErrRecordNotFound = errors.New("attendance record not found")
)
