package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/pkg/apperr"
	contractrepo "contractdesk-be/internal/repository/contract"

	"github.com/shopspring/decimal"
)

type ContractRepository struct {
	store *Store
}

func (r *ContractRepository) Create(ctx context.Context, c *entity.Contract) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextContractId++
	c.Id = r.store.nextContractId
	if c.Version == 0 {
		c.Version = 1
	}
	stored := *c
	r.store.contracts[c.Id] = &stored
	return nil
}

func (r *ContractRepository) Update(ctx context.Context, c *entity.Contract) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.contracts[c.Id]
	if !ok || current.Version != c.Version {
		return apperr.StateConflict("contract %s was modified concurrently", c.ContractID)
	}
	c.Version++
	stored := *c
	r.store.contracts[c.Id] = &stored
	return nil
}

func (r *ContractRepository) FindById(ctx context.Context, id uint) (*entity.Contract, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.contracts[id]
	if !ok {
		return nil, nil
	}
	out := *c
	return &out, nil
}

func (r *ContractRepository) FindByContractID(ctx context.Context, contractID string) (*entity.Contract, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.contracts {
		if c.ContractID == contractID {
			out := *c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *ContractRepository) FindAll(ctx context.Context, filter contractrepo.ContractFilter) ([]*entity.Contract, int64, error) {
	matched := r.filter(func(c *entity.Contract) bool {
		if filter.Status != nil && string(c.Status) != *filter.Status {
			return false
		}
		if filter.Department != nil && c.Department != *filter.Department {
			return false
		}
		if filter.VendorId != nil && c.VendorId != *filter.VendorId {
			return false
		}
		if filter.OwnerId != nil && c.OwnerId != *filter.OwnerId && c.BackupId != *filter.OwnerId {
			return false
		}
		if filter.Search != nil && *filter.Search != "" {
			term := strings.ToLower(*filter.Search)
			if !strings.Contains(strings.ToLower(c.ContractID), term) &&
				!strings.Contains(strings.ToLower(c.Description), term) {
				return false
			}
		}
		return true
	})
	return paginate(matched, filter.Skip, filter.Limit, false)
}

func (r *ContractRepository) ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]*entity.Contract, error) {
	return sortAsc(r.filter(func(c *entity.Contract) bool {
		return string(c.Status) == constant.ContractStatusActive && c.EndDate.Before(cutoff)
	})), nil
}

func (r *ContractRepository) ListWithoutDocuments(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error) {
	matched := r.filter(func(c *entity.Contract) bool {
		if string(c.Status) != constant.ContractStatusActive {
			return false
		}
		for _, d := range r.store.contractDocuments {
			if d.ContractId == c.Id {
				return false
			}
		}
		return true
	})
	return paginate(matched, skip, limit, false)
}

func (r *ContractRepository) ListNeedingReview(ctx context.Context, today, horizon time.Time, skip, limit int) ([]*entity.Contract, int64, error) {
	matched := r.filter(func(c *entity.Contract) bool {
		return string(c.Status) == constant.ContractStatusActive &&
			!c.EndDate.Before(today) && !c.EndDate.After(horizon)
	})
	return paginate(matched, skip, limit, false)
}

func (r *ContractRepository) ListRequiringAttention(ctx context.Context, horizon time.Time, skip, limit int) ([]*entity.Contract, int64, error) {
	matched := r.filter(func(c *entity.Contract) bool {
		status := string(c.Status)
		if status != constant.ContractStatusActive && status != constant.ContractStatusExpired {
			return false
		}
		if c.EndDate.After(horizon) {
			return false
		}
		for _, u := range r.store.updates {
			if u.ContractId == c.Id && u.Status != constant.UpdateStatusDraft {
				return false
			}
		}
		return true
	})
	return paginate(matched, skip, limit, false)
}

func (r *ContractRepository) ListPendingAdminReview(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error) {
	matched := r.filter(func(c *entity.Contract) bool {
		status := string(c.Status)
		if status != constant.ContractStatusActive && status != constant.ContractStatusExpired {
			return false
		}
		for _, u := range r.store.updates {
			if u.ContractId != c.Id || u.Status != constant.UpdateStatusPendingReview || u.ReturnedDate != nil {
				continue
			}
			decision := ""
			if u.Decision != nil {
				decision = *u.Decision
			}
			if decision == constant.DecisionTerminate && !u.HasDocument {
				continue
			}
			if decision == constant.DecisionExtend || decision == constant.DecisionRenew || u.HasDocument {
				return true
			}
		}
		return false
	})
	return paginate(matched, skip, limit, false)
}

func (r *ContractRepository) ListAwaitingTerminationDocument(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error) {
	matched := r.filter(func(c *entity.Contract) bool {
		for _, u := range r.store.updates {
			if u.ContractId == c.Id && u.Status == constant.UpdateStatusPendingReview &&
				u.Decision != nil && *u.Decision == constant.DecisionTerminate && !u.HasDocument {
				return true
			}
		}
		return false
	})
	return paginate(matched, skip, limit, false)
}

func (r *ContractRepository) ListTerminated(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error) {
	matched := r.filter(func(c *entity.Contract) bool {
		return string(c.Status) == constant.ContractStatusTerminated
	})
	return paginate(matched, skip, limit, true)
}

func (r *ContractRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make(map[string]int64)
	for _, c := range r.store.contracts {
		out[string(c.Status)]++
	}
	return out, nil
}

func (r *ContractRepository) CountByDepartment(ctx context.Context) (map[string]int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make(map[string]int64)
	for _, c := range r.store.contracts {
		out[c.Department]++
	}
	return out, nil
}

func (r *ContractRepository) SumAmountByCurrency(ctx context.Context, activeOnly bool) (map[string]decimal.Decimal, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make(map[string]decimal.Decimal)
	for _, c := range r.store.contracts {
		if activeOnly && string(c.Status) != constant.ContractStatusActive {
			continue
		}
		out[c.Currency] = out[c.Currency].Add(c.Amount)
	}
	return out, nil
}

func (r *ContractRepository) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.Contract, error) {
	matched := r.filter(func(c *entity.Contract) bool {
		return string(c.Status) == constant.ContractStatusActive &&
			!c.EndDate.Before(from) && !c.EndDate.After(to)
	})
	sort.Slice(matched, func(i, j int) bool { return matched[i].EndDate.Before(matched[j].EndDate) })
	return matched, nil
}

func (r *ContractRepository) ListByOwner(ctx context.Context, ownerId uint) ([]*entity.Contract, error) {
	return sortAsc(r.filter(func(c *entity.Contract) bool {
		return c.OwnerId == ownerId || c.BackupId == ownerId
	})), nil
}

func (r *ContractRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Contract, error) {
	all := sortAsc(r.filter(func(c *entity.Contract) bool { return true }))
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *ContractRepository) filter(keep func(*entity.Contract) bool) []*entity.Contract {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Contract
	for _, c := range r.store.contracts {
		if keep(c) {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out
}

func sortAsc(items []*entity.Contract) []*entity.Contract {
	sort.Slice(items, func(i, j int) bool { return items[i].Id < items[j].Id })
	return items
}

func paginate(items []*entity.Contract, skip, limit int, desc bool) ([]*entity.Contract, int64, error) {
	sortAsc(items)
	if desc {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
	total := int64(len(items))
	if skip >= len(items) {
		return []*entity.Contract{}, total, nil
	}
	items = items[skip:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, total, nil
}
