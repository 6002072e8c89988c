package repositories

import "context"

// SequenceRepository hands out monotonically increasing counters per name
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
