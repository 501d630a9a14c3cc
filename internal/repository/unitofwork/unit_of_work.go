package unitofwork

import (
	"context"

	"contractdesk-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ContractRepository() contract.ContractRepository
	ContractUpdateRepository() contract.ContractUpdateRepository
	ContractDocumentRepository() contract.ContractDocumentRepository
	TerminationDocumentRepository() contract.TerminationDocumentRepository
	UserRepository() contract.UserRepository
	VendorRepository() contract.VendorRepository
	SequenceRepository() contract.SequenceRepository
}
