package contract

import (
	"context"

	"contractdesk-be/internal/entity"
)

type ContractUpdateRepository interface {
	Create(ctx context.Context, u *entity.ContractUpdate) error
	Update(ctx context.Context, u *entity.ContractUpdate) error
	FindById(ctx context.Context, id uint) (*entity.ContractUpdate, error)
	// FindLatestByContractId returns the most recent update row for the
	// contract, nil when none exists.
	FindLatestByContractId(ctx context.Context, contractId uint) (*entity.ContractUpdate, error)
	// FindPendingByContractId returns the contract's open PendingReview
	// row, nil when no review is in flight.
	FindPendingByContractId(ctx context.Context, contractId uint) (*entity.ContractUpdate, error)
	ListByContractId(ctx context.Context, contractId uint) ([]*entity.ContractUpdate, error)
	// ExistsNonDraftByContractId reports whether the contract has any
	// update row beyond Draft, which removes it from the attention queue.
	ExistsNonDraftByContractId(ctx context.Context, contractId uint) (bool, error)
}
