package implementation

import (
	"context"
	"errors"

	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/mapper"
	"contractdesk-be/internal/model"
	"contractdesk-be/internal/repository/contract"

	"gorm.io/gorm"
)

type ContractDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewContractDocumentRepository(db *gorm.DB) contract.ContractDocumentRepository {
	return &ContractDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *ContractDocumentRepositoryImpl) Create(ctx context.Context, d *entity.ContractDocument) error {
	m := r.mapper.ContractDocToModel(d)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*d = *r.mapper.ContractDocToEntity(m)
	return nil
}

func (r *ContractDocumentRepositoryImpl) FindById(ctx context.Context, id uint) (*entity.ContractDocument, error) {
	var m model.ContractDocument
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ContractDocToEntity(&m), nil
}

func (r *ContractDocumentRepositoryImpl) ListByContractId(ctx context.Context, contractId uint) ([]*entity.ContractDocument, error) {
	var models []*model.ContractDocument
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractId).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ContractDocsToEntities(models), nil
}

func (r *ContractDocumentRepositoryImpl) CountByContractId(ctx context.Context, contractId uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ContractDocument{}).
		Where("contract_id = ?", contractId).
		Count(&count).Error
	return count, err
}

func (r *ContractDocumentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ContractDocument{}, id).Error
}

type TerminationDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewTerminationDocumentRepository(db *gorm.DB) contract.TerminationDocumentRepository {
	return &TerminationDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *TerminationDocumentRepositoryImpl) Create(ctx context.Context, d *entity.TerminationDocument) error {
	m := r.mapper.TerminationDocToModel(d)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*d = *r.mapper.TerminationDocToEntity(m)
	return nil
}

func (r *TerminationDocumentRepositoryImpl) Update(ctx context.Context, d *entity.TerminationDocument) error {
	m := r.mapper.TerminationDocToModel(d)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*d = *r.mapper.TerminationDocToEntity(m)
	return nil
}

func (r *TerminationDocumentRepositoryImpl) FindById(ctx context.Context, id uint) (*entity.TerminationDocument, error) {
	var m model.TerminationDocument
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TerminationDocToEntity(&m), nil
}

func (r *TerminationDocumentRepositoryImpl) ListByContractId(ctx context.Context, contractId uint) ([]*entity.TerminationDocument, error) {
	var models []*model.TerminationDocument
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractId).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.TerminationDocsToEntities(models), nil
}

func (r *TerminationDocumentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.TerminationDocument{}, id).Error
}
