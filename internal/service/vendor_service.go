package service

import (
	"context"
	"time"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/pkg/apperr"
	"contractdesk-be/internal/repository/unitofwork"
)

type IVendorService interface {
	Create(ctx context.Context, actor string, req *dto.CreateVendorRequest) (*dto.VendorResponse, error)
	Show(ctx context.Context, id uint) (*dto.VendorResponse, error)
	List(ctx context.Context, activeOnly bool) ([]*dto.VendorResponse, error)
}

type vendorService struct {
	uowFactory  unitofwork.RepositoryFactory
	identifiers IIdentifierService
	now         func() time.Time
}

func NewVendorService(uowFactory unitofwork.RepositoryFactory, identifiers IIdentifierService, now func() time.Time) IVendorService {
	if now == nil {
		now = time.Now
	}
	return &vendorService{
		uowFactory:  uowFactory,
		identifiers: identifiers,
		now:         now,
	}
}

func (s *vendorService) Create(ctx context.Context, actor string, req *dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if req.BankCustomer != constant.BankCustomerNone && req.CIF == nil {
		return nil, apperr.Validation("cif is required for bank customers")
	}
	if req.BankCustomer == constant.BankCustomerNone && req.CIF != nil {
		return nil, apperr.Validation("cif should not be provided when the vendor is not a bank customer")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.VendorRepository().FindByName(ctx, req.VendorName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("a vendor named %s already exists", req.VendorName)
	}

	vendorID, err := s.identifiers.NextVendorID(ctx, uow, req.BankCustomer)
	if err != nil {
		return nil, err
	}

	nowTs := s.now()
	vendor := entity.Vendor{
		VendorID:                               vendorID,
		VendorName:                             req.VendorName,
		VendorContactPerson:                    req.VendorContactPerson,
		VendorCountry:                          req.VendorCountry,
		MaterialOutsourcingArrangement:         req.MaterialOutsourcingArrangement,
		BankCustomer:                           req.BankCustomer,
		CIF:                                    req.CIF,
		DueDiligenceRequired:                   req.DueDiligenceRequired,
		LastDueDiligenceDate:                   req.LastDueDiligenceDate,
		NextRequiredDueDiligenceDate:           req.NextRequiredDueDiligenceDate,
		NextRequiredDueDiligenceAlertFrequency: req.NextRequiredDueDiligenceAlertFrequency,
		Status:                                 "Active",
		LastModifiedBy:                         &actor,
		LastModifiedDate:                       &nowTs,
		CreatedAt:                              nowTs,
	}
	if err := uow.VendorRepository().Create(ctx, &vendor); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toVendorResponse(&vendor), nil
}

func (s *vendorService) Show(ctx context.Context, id uint) (*dto.VendorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	vendor, err := uow.VendorRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperr.NotFound("vendor %d not found", id)
	}
	return toVendorResponse(vendor), nil
}

func (s *vendorService) List(ctx context.Context, activeOnly bool) ([]*dto.VendorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	vendors, err := uow.VendorRepository().ListAll(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, toVendorResponse(v))
	}
	return out, nil
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		Id:                             v.Id,
		VendorID:                       v.VendorID,
		VendorName:                     v.VendorName,
		VendorContactPerson:            v.VendorContactPerson,
		VendorCountry:                  v.VendorCountry,
		MaterialOutsourcingArrangement: v.MaterialOutsourcingArrangement,
		BankCustomer:                   v.BankCustomer,
		CIF:                            v.CIF,
		DueDiligenceRequired:           v.DueDiligenceRequired,
		Status:                         v.Status,
		CreatedAt:                      v.CreatedAt,
	}
}
