package memory

import "context"

type SequenceRepository struct {
	store *Store
}

func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.sequences[name]++
	return r.store.sequences[name], nil
}
