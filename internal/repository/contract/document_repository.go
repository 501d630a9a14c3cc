package contract

import (
	"context"

	"contractdesk-be/internal/entity"
)

type ContractDocumentRepository interface {
	Create(ctx context.Context, d *entity.ContractDocument) error
	FindById(ctx context.Context, id uint) (*entity.ContractDocument, error)
	ListByContractId(ctx context.Context, contractId uint) ([]*entity.ContractDocument, error)
	CountByContractId(ctx context.Context, contractId uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type TerminationDocumentRepository interface {
	Create(ctx context.Context, d *entity.TerminationDocument) error
	Update(ctx context.Context, d *entity.TerminationDocument) error
	FindById(ctx context.Context, id uint) (*entity.TerminationDocument, error)
	ListByContractId(ctx context.Context, contractId uint) ([]*entity.TerminationDocument, error)
	Delete(ctx context.Context, id uint) error
}
