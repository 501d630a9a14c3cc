package contract

import (
	"context"
	"time"

	"contractdesk-be/internal/entity"

	"github.com/shopspring/decimal"
)

// ContractFilter narrows the general contract listing. Nil fields are
// ignored. Search matches contract_id, description and vendor name.
type ContractFilter struct {
	Status     *string
	Department *string
	VendorId   *uint
	OwnerId    *uint
	Search     *string
	Skip       int
	Limit      int
}

type ContractRepository interface {
	Create(ctx context.Context, c *entity.Contract) error
	// Update persists the contract guarded by its version column. It
	// returns a state-conflict error when the stored version moved on.
	Update(ctx context.Context, c *entity.Contract) error
	FindById(ctx context.Context, id uint) (*entity.Contract, error)
	FindByContractID(ctx context.Context, contractID string) (*entity.Contract, error)
	FindAll(ctx context.Context, filter ContractFilter) ([]*entity.Contract, int64, error)

	// ListActiveEndingBefore feeds the expiry sweep: Active contracts
	// whose end_date is strictly before the cutoff.
	ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]*entity.Contract, error)

	// Queue projections. Each applies pagination after filtering and
	// orders by id ascending, except ListTerminated which is a
	// historical log ordered descending.
	ListWithoutDocuments(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error)
	ListNeedingReview(ctx context.Context, today, horizon time.Time, skip, limit int) ([]*entity.Contract, int64, error)
	ListRequiringAttention(ctx context.Context, horizon time.Time, skip, limit int) ([]*entity.Contract, int64, error)
	ListPendingAdminReview(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error)
	ListAwaitingTerminationDocument(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error)
	ListTerminated(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error)

	// Dashboard aggregates.
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByDepartment(ctx context.Context) (map[string]int64, error)
	SumAmountByCurrency(ctx context.Context, activeOnly bool) (map[string]decimal.Decimal, error)
	ListExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.Contract, error)
	ListByOwner(ctx context.Context, ownerId uint) ([]*entity.Contract, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.Contract, error)
}
