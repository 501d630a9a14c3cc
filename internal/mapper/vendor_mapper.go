package mapper

import (
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/model"
)

type VendorMapper struct{}

func NewVendorMapper() *VendorMapper {
	return &VendorMapper{}
}

func (m *VendorMapper) ToEntity(v *model.Vendor) *entity.Vendor {
	if v == nil {
		return nil
	}

	return &entity.Vendor{
		Id:                                     v.Id,
		VendorID:                               v.VendorID,
		VendorName:                             v.VendorName,
		VendorContactPerson:                    v.VendorContactPerson,
		VendorCountry:                          v.VendorCountry,
		MaterialOutsourcingArrangement:         v.MaterialOutsourcingArrangement,
		BankCustomer:                           v.BankCustomer,
		CIF:                                    v.CIF,
		DueDiligenceRequired:                   v.DueDiligenceRequired,
		LastDueDiligenceDate:                   v.LastDueDiligenceDate,
		NextRequiredDueDiligenceDate:           v.NextRequiredDueDiligenceDate,
		NextRequiredDueDiligenceAlertFrequency: v.NextRequiredDueDiligenceAlertFrequency,
		Status:                                 v.Status,
		LastModifiedBy:                         v.LastModifiedBy,
		LastModifiedDate:                       v.LastModifiedDate,
		CreatedAt:                              v.CreatedAt,
		UpdatedAt:                              v.UpdatedAt,
	}
}

func (m *VendorMapper) ToEntities(models []*model.Vendor) []*entity.Vendor {
	entities := make([]*entity.Vendor, 0, len(models))
	for _, v := range models {
		entities = append(entities, m.ToEntity(v))
	}
	return entities
}

func (m *VendorMapper) ToModel(v *entity.Vendor) *model.Vendor {
	if v == nil {
		return nil
	}

	return &model.Vendor{
		Id:                                     v.Id,
		VendorID:                               v.VendorID,
		VendorName:                             v.VendorName,
		VendorContactPerson:                    v.VendorContactPerson,
		VendorCountry:                          v.VendorCountry,
		MaterialOutsourcingArrangement:         v.MaterialOutsourcingArrangement,
		BankCustomer:                           v.BankCustomer,
		CIF:                                    v.CIF,
		DueDiligenceRequired:                   v.DueDiligenceRequired,
		LastDueDiligenceDate:                   v.LastDueDiligenceDate,
		NextRequiredDueDiligenceDate:           v.NextRequiredDueDiligenceDate,
		NextRequiredDueDiligenceAlertFrequency: v.NextRequiredDueDiligenceAlertFrequency,
		Status:                                 v.Status,
		LastModifiedBy:                         v.LastModifiedBy,
		LastModifiedDate:                       v.LastModifiedDate,
		CreatedAt:                              v.CreatedAt,
		UpdatedAt:                              v.UpdatedAt,
	}
}
