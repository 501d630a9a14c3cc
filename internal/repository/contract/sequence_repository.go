package contract

import "context"

// SequenceRepository hands out dense counter values for the
// human-readable identifiers. Next must be safe under concurrent
// callers; the relational implementation locks the counter row for the
// duration of the surrounding transaction.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
