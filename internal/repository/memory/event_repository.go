package memory

import (
	"context"
	"sync"

	"contractdesk-be/internal/entity"
	contractrepo "contractdesk-be/internal/repository/contract"
)

// ContractEventRepository is a standalone double; the event feed does
// not ride the unit of work.
type ContractEventRepository struct {
	mu     sync.Mutex
	events []*entity.ContractEvent
	nextId uint
}

func NewContractEventRepository() contractrepo.ContractEventRepository {
	return &ContractEventRepository{}
}

func (r *ContractEventRepository) Create(ctx context.Context, e *entity.ContractEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextId++
	e.Id = r.nextId
	cp := *e
	r.events = append(r.events, &cp)
	return nil
}

func (r *ContractEventRepository) ListRecent(ctx context.Context, limit int) ([]*entity.ContractEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.ContractEvent, 0, limit)
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.events[i]
		out = append(out, &cp)
	}
	return out, nil
}
