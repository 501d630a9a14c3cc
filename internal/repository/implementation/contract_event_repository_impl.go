package implementation

import (
	"context"

	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/mapper"
	"contractdesk-be/internal/model"
	"contractdesk-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ContractEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EventMapper
}

func NewContractEventRepository(db *gorm.DB) contract.ContractEventRepository {
	return &ContractEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewEventMapper(),
	}
}

func (r *ContractEventRepositoryImpl) Create(ctx context.Context, e *entity.ContractEvent) error {
	m := r.mapper.ToModel(e)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	e.Id = m.Id
	e.CreatedAt = m.CreatedAt
	return nil
}

func (r *ContractEventRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*entity.ContractEvent, error) {
	var models []*model.ContractEvent
	err := r.db.WithContext(ctx).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
