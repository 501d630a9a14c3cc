package implementation

import (
	"context"
	"errors"

	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/mapper"
	"contractdesk-be/internal/model"
	"contractdesk-be/internal/repository/contract"
	"contractdesk-be/internal/repository/specification"

	"gorm.io/gorm"
)

type VendorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VendorMapper
}

func NewVendorRepository(db *gorm.DB) contract.VendorRepository {
	return &VendorRepositoryImpl{
		db:     db,
		mapper: mapper.NewVendorMapper(),
	}
}

func (r *VendorRepositoryImpl) Create(ctx context.Context, v *entity.Vendor) error {
	m := r.mapper.ToModel(v)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*v = *r.mapper.ToEntity(m)
	return nil
}

func (r *VendorRepositoryImpl) Update(ctx context.Context, v *entity.Vendor) error {
	m := r.mapper.ToModel(v)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*v = *r.mapper.ToEntity(m)
	return nil
}

func (r *VendorRepositoryImpl) FindById(ctx context.Context, id uint) (*entity.Vendor, error) {
	return r.findOne(ctx, specification.ByID{ID: id})
}

func (r *VendorRepositoryImpl) FindByVendorID(ctx context.Context, vendorID string) (*entity.Vendor, error) {
	return r.findOne(ctx, specification.Filter("vendor_id", vendorID))
}

func (r *VendorRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.Vendor, error) {
	return r.findOne(ctx, specification.Filter("vendor_name", name))
}

func (r *VendorRepositoryImpl) ListAll(ctx context.Context, activeOnly bool) ([]*entity.Vendor, error) {
	var models []*model.Vendor
	query := r.db.WithContext(ctx).Order("id ASC")
	if activeOnly {
		query = query.Where("status = ?", "Active")
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *VendorRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Vendor, error) {
	var m model.Vendor
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
