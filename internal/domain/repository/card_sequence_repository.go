package repository

import "context"

// CardSequenceRepository hands out card-number sequence values.
type CardSequenceRepository interface {
	// Next atomically reserves and returns the next value for (year, prefix).
	// Reserved values are never handed out twice, even if unused.
	Next(ctx context.Context, year int, prefix string) (int64, error)
}
