// Package memory provides mutex-guarded in-memory repositories used by
// the service tests. They honor the same contracts as the GORM
// implementations, including the optimistic version check on contracts.
package memory

import (
	"context"
	"sync"

	"contractdesk-be/internal/entity"
	contractrepo "contractdesk-be/internal/repository/contract"
	"contractdesk-be/internal/repository/unitofwork"
)

type Store struct {
	mu sync.Mutex

	contracts            map[uint]*entity.Contract
	updates              map[uint]*entity.ContractUpdate
	contractDocuments    map[uint]*entity.ContractDocument
	terminationDocuments map[uint]*entity.TerminationDocument
	users                map[uint]*entity.User
	vendors              map[uint]*entity.Vendor
	sequences            map[string]int64

	nextContractId    uint
	nextUpdateId      uint
	nextContractDocId uint
	nextTermDocId     uint
	nextUserId        uint
	nextVendorId      uint
}

func NewStore() *Store {
	return &Store{
		contracts:            make(map[uint]*entity.Contract),
		updates:              make(map[uint]*entity.ContractUpdate),
		contractDocuments:    make(map[uint]*entity.ContractDocument),
		terminationDocuments: make(map[uint]*entity.TerminationDocument),
		users:                make(map[uint]*entity.User),
		vendors:              make(map[uint]*entity.Vendor),
		sequences:            make(map[string]int64),
	}
}

// Factory hands out units of work over the shared store. Begin, Commit
// and Rollback are no-ops; mutations are applied immediately.
type Factory struct {
	store *Store
}

func NewFactory(store *Store) unitofwork.RepositoryFactory {
	return &Factory{store: store}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) ContractRepository() contractrepo.ContractRepository {
	return &ContractRepository{store: u.store}
}

func (u *unitOfWork) ContractUpdateRepository() contractrepo.ContractUpdateRepository {
	return &ContractUpdateRepository{store: u.store}
}

func (u *unitOfWork) ContractDocumentRepository() contractrepo.ContractDocumentRepository {
	return &ContractDocumentRepository{store: u.store}
}

func (u *unitOfWork) TerminationDocumentRepository() contractrepo.TerminationDocumentRepository {
	return &TerminationDocumentRepository{store: u.store}
}

func (u *unitOfWork) UserRepository() contractrepo.UserRepository {
	return &UserRepository{store: u.store}
}

func (u *unitOfWork) VendorRepository() contractrepo.VendorRepository {
	return &VendorRepository{store: u.store}
}

func (u *unitOfWork) SequenceRepository() contractrepo.SequenceRepository {
	return &SequenceRepository{store: u.store}
}
