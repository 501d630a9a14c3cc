package contract

import (
	"context"

	"contractdesk-be/internal/entity"
)

// ContractEventRepository stores the activity feed. Unlike the other
// repositories it lives outside the unit of work; event rows are
// best-effort side records, not part of any business transaction.
type ContractEventRepository interface {
	Create(ctx context.Context, e *entity.ContractEvent) error
	ListRecent(ctx context.Context, limit int) ([]*entity.ContractEvent, error)
}
