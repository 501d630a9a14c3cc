package memory

import (
	"context"
	"sort"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/entity"
)

type ContractUpdateRepository struct {
	store *Store
}

func (r *ContractUpdateRepository) Create(ctx context.Context, u *entity.ContractUpdate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextUpdateId++
	u.Id = r.store.nextUpdateId
	stored := *u
	r.store.updates[u.Id] = &stored
	return nil
}

func (r *ContractUpdateRepository) Update(ctx context.Context, u *entity.ContractUpdate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *u
	r.store.updates[u.Id] = &stored
	return nil
}

func (r *ContractUpdateRepository) FindById(ctx context.Context, id uint) (*entity.ContractUpdate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.updates[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (r *ContractUpdateRepository) FindLatestByContractId(ctx context.Context, contractId uint) (*entity.ContractUpdate, error) {
	all, _ := r.ListByContractId(ctx, contractId)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *ContractUpdateRepository) FindPendingByContractId(ctx context.Context, contractId uint) (*entity.ContractUpdate, error) {
	all, _ := r.ListByContractId(ctx, contractId)
	for _, u := range all {
		if u.Status == constant.UpdateStatusPendingReview {
			return u, nil
		}
	}
	return nil, nil
}

func (r *ContractUpdateRepository) ListByContractId(ctx context.Context, contractId uint) ([]*entity.ContractUpdate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.ContractUpdate
	for _, u := range r.store.updates {
		if u.ContractId == contractId {
			copied := *u
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id > out[j].Id })
	return out, nil
}

func (r *ContractUpdateRepository) ExistsNonDraftByContractId(ctx context.Context, contractId uint) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.updates {
		if u.ContractId == contractId && u.Status != constant.UpdateStatusDraft {
			return true, nil
		}
	}
	return false, nil
}
