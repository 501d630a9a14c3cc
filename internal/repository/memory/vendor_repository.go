package memory

import (
	"context"
	"sort"

	"contractdesk-be/internal/entity"
)

type VendorRepository struct {
	store *Store
}

func (r *VendorRepository) Create(ctx context.Context, v *entity.Vendor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextVendorId++
	v.Id = r.store.nextVendorId
	stored := *v
	r.store.vendors[v.Id] = &stored
	return nil
}

func (r *VendorRepository) Update(ctx context.Context, v *entity.Vendor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *v
	r.store.vendors[v.Id] = &stored
	return nil
}

func (r *VendorRepository) FindById(ctx context.Context, id uint) (*entity.Vendor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	v, ok := r.store.vendors[id]
	if !ok {
		return nil, nil
	}
	out := *v
	return &out, nil
}

func (r *VendorRepository) FindByVendorID(ctx context.Context, vendorID string) (*entity.Vendor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, v := range r.store.vendors {
		if v.VendorID == vendorID {
			out := *v
			return &out, nil
		}
	}
	return nil, nil
}

func (r *VendorRepository) FindByName(ctx context.Context, name string) (*entity.Vendor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, v := range r.store.vendors {
		if v.VendorName == name {
			out := *v
			return &out, nil
		}
	}
	return nil, nil
}

func (r *VendorRepository) ListAll(ctx context.Context, activeOnly bool) ([]*entity.Vendor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.Vendor
	for _, v := range r.store.vendors {
		if activeOnly && v.Status != "Active" {
			continue
		}
		copied := *v
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}
