package memory

import (
	"context"
	"sort"

	"contractdesk-be/internal/entity"
)

type ContractDocumentRepository struct {
	store *Store
}

func (r *ContractDocumentRepository) Create(ctx context.Context, d *entity.ContractDocument) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextContractDocId++
	d.Id = r.store.nextContractDocId
	stored := *d
	r.store.contractDocuments[d.Id] = &stored
	return nil
}

func (r *ContractDocumentRepository) FindById(ctx context.Context, id uint) (*entity.ContractDocument, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	d, ok := r.store.contractDocuments[id]
	if !ok {
		return nil, nil
	}
	out := *d
	return &out, nil
}

func (r *ContractDocumentRepository) ListByContractId(ctx context.Context, contractId uint) ([]*entity.ContractDocument, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.ContractDocument
	for _, d := range r.store.contractDocuments {
		if d.ContractId == contractId {
			copied := *d
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (r *ContractDocumentRepository) CountByContractId(ctx context.Context, contractId uint) (int64, error) {
	docs, err := r.ListByContractId(ctx, contractId)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func (r *ContractDocumentRepository) Delete(ctx context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.contractDocuments, id)
	return nil
}

type TerminationDocumentRepository struct {
	store *Store
}

func (r *TerminationDocumentRepository) Create(ctx context.Context, d *entity.TerminationDocument) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTermDocId++
	d.Id = r.store.nextTermDocId
	stored := *d
	r.store.terminationDocuments[d.Id] = &stored
	return nil
}

func (r *TerminationDocumentRepository) Update(ctx context.Context, d *entity.TerminationDocument) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *d
	r.store.terminationDocuments[d.Id] = &stored
	return nil
}

func (r *TerminationDocumentRepository) FindById(ctx context.Context, id uint) (*entity.TerminationDocument, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	d, ok := r.store.terminationDocuments[id]
	if !ok {
		return nil, nil
	}
	out := *d
	return &out, nil
}

func (r *TerminationDocumentRepository) ListByContractId(ctx context.Context, contractId uint) ([]*entity.TerminationDocument, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []*entity.TerminationDocument
	for _, d := range r.store.terminationDocuments {
		if d.ContractId == contractId {
			copied := *d
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (r *TerminationDocumentRepository) Delete(ctx context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.terminationDocuments, id)
	return nil
}
