package implementation

import (
	"context"
	"errors"
	"time"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/mapper"
	"contractdesk-be/internal/model"
	"contractdesk-be/internal/pkg/apperr"
	"contractdesk-be/internal/repository/contract"
	"contractdesk-be/internal/repository/specification"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ContractRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContractMapper
}

func NewContractRepository(db *gorm.DB) contract.ContractRepository {
	return &ContractRepositoryImpl{
		db:     db,
		mapper: mapper.NewContractMapper(),
	}
}

func (r *ContractRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContractRepositoryImpl) Create(ctx context.Context, c *entity.Contract) error {
	m := r.mapper.ToModel(c)
	if m.Version == 0 {
		m.Version = 1
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*c = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContractRepositoryImpl) Update(ctx context.Context, c *entity.Contract) error {
	m := r.mapper.ToModel(c)
	m.Version = c.Version + 1
	res := r.db.WithContext(ctx).
		Model(&model.Contract{}).
		Where("id = ? AND version = ?", c.Id, c.Version).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.StateConflict("contract %s was modified concurrently", c.ContractID)
	}
	c.Version = m.Version
	return nil
}

func (r *ContractRepositoryImpl) FindById(ctx context.Context, id uint) (*entity.Contract, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *ContractRepositoryImpl) FindByContractID(ctx context.Context, contractID string) (*entity.Contract, error) {
	return r.findOne(ctx, specification.Filter("contract_id", contractID))
}

func (r *ContractRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Contract, error) {
	var m model.Contract
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ContractRepositoryImpl) FindAll(ctx context.Context, filter contract.ContractFilter) ([]*entity.Contract, int64, error) {
	specs := []specification.Specification{}
	if filter.Status != nil {
		specs = append(specs, specification.ByStatus{Status: *filter.Status})
	}
	if filter.Department != nil {
		specs = append(specs, specification.ByDepartment{Department: *filter.Department})
	}
	if filter.VendorId != nil {
		specs = append(specs, specification.ByVendorID{VendorId: *filter.VendorId})
	}
	if filter.OwnerId != nil {
		specs = append(specs, specification.ByOwner{OwnerId: *filter.OwnerId})
	}
	if filter.Search != nil && *filter.Search != "" {
		specs = append(specs, specification.SearchContracts{Term: *filter.Search})
	}
	return r.page(ctx, specs, specification.OrderBy{Field: "contracts.id"}, filter.Skip, filter.Limit)
}

func (r *ContractRepositoryImpl) ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]*entity.Contract, error) {
	return r.findAll(ctx,
		specification.ByStatus{Status: constant.ContractStatusActive},
		specification.EndDateBefore{Cutoff: cutoff},
		specification.OrderBy{Field: "contracts.id"},
	)
}

func (r *ContractRepositoryImpl) ListWithoutDocuments(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error) {
	specs := []specification.Specification{
		specification.ByStatus{Status: constant.ContractStatusActive},
		specification.WithoutDocuments{},
	}
	return r.page(ctx, specs, specification.OrderBy{Field: "contracts.id"}, skip, limit)
}

func (r *ContractRepositoryImpl) ListNeedingReview(ctx context.Context, today, horizon time.Time, skip, limit int) ([]*entity.Contract, int64, error) {
	specs := []specification.Specification{
		specification.ByStatus{Status: constant.ContractStatusActive},
		specification.EndDateBetween{From: today, To: horizon},
	}
	return r.page(ctx, specs, specification.OrderBy{Field: "contracts.id"}, skip, limit)
}

func (r *ContractRepositoryImpl) ListRequiringAttention(ctx context.Context, horizon time.Time, skip, limit int) ([]*entity.Contract, int64, error) {
	specs := []specification.Specification{
		specification.ByStatuses{Statuses: []string{constant.ContractStatusActive, constant.ContractStatusExpired}},
		specification.EndDateAtOrBefore{Cutoff: horizon},
		specification.WithoutNonDraftUpdate{},
	}
	return r.page(ctx, specs, specification.OrderBy{Field: "contracts.id"}, skip, limit)
}

func (r *ContractRepositoryImpl) ListPendingAdminReview(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error) {
	specs := []specification.Specification{
		specification.ByStatuses{Statuses: []string{constant.ContractStatusActive, constant.ContractStatusExpired}},
		pendingAdminReviewExists{},
	}
	return r.page(ctx, specs, specification.OrderBy{Field: "contracts.id"}, skip, limit)
}

func (r *ContractRepositoryImpl) ListAwaitingTerminationDocument(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error) {
	specs := []specification.Specification{
		awaitingTerminationDocumentExists{},
	}
	return r.page(ctx, specs, specification.OrderBy{Field: "contracts.id"}, skip, limit)
}

func (r *ContractRepositoryImpl) ListTerminated(ctx context.Context, skip, limit int) ([]*entity.Contract, int64, error) {
	specs := []specification.Specification{
		specification.ByStatus{Status: constant.ContractStatusTerminated},
	}
	return r.page(ctx, specs, specification.OrderBy{Field: "contracts.id", Desc: true}, skip, limit)
}

func (r *ContractRepositoryImpl) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "status")
}

func (r *ContractRepositoryImpl) CountByDepartment(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "department")
}

func (r *ContractRepositoryImpl) countGrouped(ctx context.Context, column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Contract{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Key] = rw.Count
	}
	return out, nil
}

func (r *ContractRepositoryImpl) SumAmountByCurrency(ctx context.Context, activeOnly bool) (map[string]decimal.Decimal, error) {
	type row struct {
		Currency string
		Total    decimal.Decimal
	}
	query := r.db.WithContext(ctx).
		Model(&model.Contract{}).
		Select("contract_currency AS currency, COALESCE(SUM(contract_amount), 0) AS total").
		Group("contract_currency")
	if activeOnly {
		query = query.Where("status = ?", constant.ContractStatusActive)
	}
	var rows []row
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal, len(rows))
	for _, rw := range rows {
		out[rw.Currency] = rw.Total
	}
	return out, nil
}

func (r *ContractRepositoryImpl) ListExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.Contract, error) {
	return r.findAll(ctx,
		specification.ByStatus{Status: constant.ContractStatusActive},
		specification.EndDateBetween{From: from, To: to},
		specification.OrderBy{Field: "contracts.end_date"},
	)
}

func (r *ContractRepositoryImpl) ListByOwner(ctx context.Context, ownerId uint) ([]*entity.Contract, error) {
	return r.findAll(ctx,
		specification.ByOwner{OwnerId: ownerId},
		specification.OrderBy{Field: "contracts.id"},
	)
}

func (r *ContractRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*entity.Contract, error) {
	return r.findAll(ctx,
		specification.OrderBy{Field: "contracts.created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
}

func (r *ContractRepositoryImpl) findAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Contract, error) {
	var models []*model.Contract
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Contract{}), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// page runs the count before applying ordering and pagination so both
// views see the same filter set.
func (r *ContractRepositoryImpl) page(ctx context.Context, specs []specification.Specification, order specification.Specification, skip, limit int) ([]*entity.Contract, int64, error) {
	var total int64
	countQuery := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Contract{}), specs...)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listSpecs := append(append([]specification.Specification{}, specs...), order)
	if limit > 0 {
		listSpecs = append(listSpecs, specification.Pagination{Limit: limit, Offset: skip})
	}
	items, err := r.findAll(ctx, listSpecs...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// pendingAdminReviewExists keeps contracts whose open first-time
// submission needs an admin decision. Terminate proposals without a
// document belong to the termination-document queue instead.
type pendingAdminReviewExists struct{}

func (pendingAdminReviewExists) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(`EXISTS (
		SELECT 1 FROM contract_updates cu
		WHERE cu.contract_id = contracts.id
		  AND cu.status = ?
		  AND cu.returned_date IS NULL
		  AND (cu.decision IN (?, ?) OR cu.has_document = TRUE)
		  AND NOT (cu.decision = ? AND cu.has_document = FALSE)
	)`, constant.UpdateStatusPendingReview, constant.DecisionExtend, constant.DecisionRenew, constant.DecisionTerminate)
}

type awaitingTerminationDocumentExists struct{}

func (awaitingTerminationDocumentExists) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(`EXISTS (
		SELECT 1 FROM contract_updates cu
		WHERE cu.contract_id = contracts.id
		  AND cu.status = ?
		  AND cu.decision = ?
		  AND (cu.has_document = FALSE OR cu.has_document IS NULL)
	)`, constant.UpdateStatusPendingReview, constant.DecisionTerminate)
}
