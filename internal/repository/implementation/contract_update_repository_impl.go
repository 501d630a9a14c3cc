package implementation

import (
	"context"
	"errors"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/mapper"
	"contractdesk-be/internal/model"
	"contractdesk-be/internal/repository/contract"
	"contractdesk-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ContractUpdateRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContractUpdateMapper
}

func NewContractUpdateRepository(db *gorm.DB) contract.ContractUpdateRepository {
	return &ContractUpdateRepositoryImpl{
		db:     db,
		mapper: mapper.NewContractUpdateMapper(),
	}
}

func (r *ContractUpdateRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContractUpdateRepositoryImpl) Create(ctx context.Context, u *entity.ContractUpdate) error {
	m := r.mapper.ToModel(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*u = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContractUpdateRepositoryImpl) Update(ctx context.Context, u *entity.ContractUpdate) error {
	m := r.mapper.ToModel(u)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*u = *r.mapper.ToEntity(m)
	return nil
}

func (r *ContractUpdateRepositoryImpl) FindById(ctx context.Context, id uint) (*entity.ContractUpdate, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *ContractUpdateRepositoryImpl) FindLatestByContractId(ctx context.Context, contractId uint) (*entity.ContractUpdate, error) {
	return r.findOne(ctx,
		specification.UpdatesByContractID{ContractId: contractId},
		specification.OrderBy{Field: "contract_updates.id", Desc: true},
	)
}

func (r *ContractUpdateRepositoryImpl) FindPendingByContractId(ctx context.Context, contractId uint) (*entity.ContractUpdate, error) {
	return r.findOne(ctx,
		specification.UpdatesByContractID{ContractId: contractId},
		specification.UpdatesByStatus{Status: constant.UpdateStatusPendingReview},
		specification.OrderBy{Field: "contract_updates.id", Desc: true},
	)
}

func (r *ContractUpdateRepositoryImpl) ListByContractId(ctx context.Context, contractId uint) ([]*entity.ContractUpdate, error) {
	var models []*model.ContractUpdate
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.UpdatesByContractID{ContractId: contractId},
		specification.OrderBy{Field: "contract_updates.id", Desc: true},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ContractUpdateRepositoryImpl) ExistsNonDraftByContractId(ctx context.Context, contractId uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ContractUpdate{}).
		Where("contract_id = ? AND status <> ?", contractId, constant.UpdateStatusDraft).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ContractUpdateRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.ContractUpdate, error) {
	var m model.ContractUpdate
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
