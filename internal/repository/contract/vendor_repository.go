package contract

import (
	"context"

	"contractdesk-be/internal/entity"
)

type VendorRepository interface {
	Create(ctx context.Context, v *entity.Vendor) error
	Update(ctx context.Context, v *entity.Vendor) error
	FindById(ctx context.Context, id uint) (*entity.Vendor, error)
	FindByVendorID(ctx context.Context, vendorID string) (*entity.Vendor, error)
	FindByName(ctx context.Context, name string) (*entity.Vendor, error)
	ListAll(ctx context.Context, activeOnly bool) ([]*entity.Vendor, error)
}
