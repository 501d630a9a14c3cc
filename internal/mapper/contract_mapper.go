package mapper

import (
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/lifecycle"
	"contractdesk-be/internal/model"
)

type ContractMapper struct{}

func NewContractMapper() *ContractMapper {
	return &ContractMapper{}
}

func (m *ContractMapper) ToEntity(c *model.Contract) *entity.Contract {
	if c == nil {
		return nil
	}

	return &entity.Contract{
		Id:                        c.Id,
		ContractID:                c.ContractID,
		VendorId:                  c.VendorId,
		Description:               c.ContractDescription,
		Type:                      c.ContractType,
		StartDate:                 c.StartDate,
		EndDate:                   c.EndDate,
		AutomaticRenewal:          c.AutomaticRenewal,
		RenewalPeriod:             c.RenewalPeriod,
		Department:                c.Department,
		Amount:                    c.ContractAmount,
		Currency:                  c.ContractCurrency,
		PaymentMethod:             c.PaymentMethod,
		TerminationNoticePeriod:   c.TerminationNoticePeriod,
		ExpirationNoticeFrequency: c.ExpirationNoticeFrequency,
		OwnerId:                   c.ContractOwnerId,
		BackupId:                  c.ContractOwnerBackupId,
		ManagerId:                 c.ContractOwnerManagerId,
		Status:                    lifecycle.Status(c.Status),
		Termination:               c.Termination,
		TerminationDate:           c.TerminationDate,
		TerminationLetterPath:     c.TerminationLetterPath,
		FinalInvoicePath:          c.FinalInvoicePath,
		LastModifiedBy:            c.LastModifiedBy,
		LastModifiedDate:          c.LastModifiedDate,
		Version:                   c.Version,
		CreatedAt:                 c.CreatedAt,
		UpdatedAt:                 c.UpdatedAt,
	}
}

func (m *ContractMapper) ToEntities(models []*model.Contract) []*entity.Contract {
	entities := make([]*entity.Contract, 0, len(models))
	for _, c := range models {
		entities = append(entities, m.ToEntity(c))
	}
	return entities
}

func (m *ContractMapper) ToModel(c *entity.Contract) *model.Contract {
	if c == nil {
		return nil
	}

	return &model.Contract{
		Id:                        c.Id,
		ContractID:                c.ContractID,
		VendorId:                  c.VendorId,
		ContractDescription:       c.Description,
		ContractType:              c.Type,
		StartDate:                 c.StartDate,
		EndDate:                   c.EndDate,
		AutomaticRenewal:          c.AutomaticRenewal,
		RenewalPeriod:             c.RenewalPeriod,
		Department:                c.Department,
		ContractAmount:            c.Amount,
		ContractCurrency:          c.Currency,
		PaymentMethod:             c.PaymentMethod,
		TerminationNoticePeriod:   c.TerminationNoticePeriod,
		ExpirationNoticeFrequency: c.ExpirationNoticeFrequency,
		ContractOwnerId:           c.OwnerId,
		ContractOwnerBackupId:     c.BackupId,
		ContractOwnerManagerId:    c.ManagerId,
		Status:                    string(c.Status),
		Termination:               c.Termination,
		TerminationDate:           c.TerminationDate,
		TerminationLetterPath:     c.TerminationLetterPath,
		FinalInvoicePath:          c.FinalInvoicePath,
		LastModifiedBy:            c.LastModifiedBy,
		LastModifiedDate:          c.LastModifiedDate,
		Version:                   c.Version,
		CreatedAt:                 c.CreatedAt,
		UpdatedAt:                 c.UpdatedAt,
	}
}
