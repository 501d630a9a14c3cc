package mapper

import (
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/model"
)

type ContractUpdateMapper struct{}

func NewContractUpdateMapper() *ContractUpdateMapper {
	return &ContractUpdateMapper{}
}

func (m *ContractUpdateMapper) ToEntity(u *model.ContractUpdate) *entity.ContractUpdate {
	if u == nil {
		return nil
	}

	return &entity.ContractUpdate{
		Id:                       u.Id,
		ContractId:               u.ContractId,
		Status:                   u.Status,
		ResponseProvidedByUserId: u.ResponseProvidedByUserId,
		ResponseDate:             u.ResponseDate,
		HasDocument:              u.HasDocument,
		Decision:                 u.Decision,
		DecisionComments:         u.DecisionComments,
		AdminComments:            u.AdminComments,
		ReturnedReason:           u.ReturnedReason,
		ReturnedDate:             u.ReturnedDate,
		PreviousUpdateId:         u.PreviousUpdateId,
		CorrectionDate:           u.CorrectionDate,
		InitialVendorName:        u.InitialVendorName,
		InitialContractType:      u.InitialContractType,
		InitialDescription:       u.InitialDescription,
		InitialExpirationDate:    u.InitialExpirationDate,
		CreatedAt:                u.CreatedAt,
		UpdatedAt:                u.UpdatedAt,
	}
}

func (m *ContractUpdateMapper) ToEntities(models []*model.ContractUpdate) []*entity.ContractUpdate {
	entities := make([]*entity.ContractUpdate, 0, len(models))
	for _, u := range models {
		entities = append(entities, m.ToEntity(u))
	}
	return entities
}

func (m *ContractUpdateMapper) ToModel(u *entity.ContractUpdate) *model.ContractUpdate {
	if u == nil {
		return nil
	}

	return &model.ContractUpdate{
		Id:                       u.Id,
		ContractId:               u.ContractId,
		Status:                   u.Status,
		ResponseProvidedByUserId: u.ResponseProvidedByUserId,
		ResponseDate:             u.ResponseDate,
		HasDocument:              u.HasDocument,
		Decision:                 u.Decision,
		DecisionComments:         u.DecisionComments,
		AdminComments:            u.AdminComments,
		ReturnedReason:           u.ReturnedReason,
		ReturnedDate:             u.ReturnedDate,
		PreviousUpdateId:         u.PreviousUpdateId,
		CorrectionDate:           u.CorrectionDate,
		InitialVendorName:        u.InitialVendorName,
		InitialContractType:      u.InitialContractType,
		InitialDescription:       u.InitialDescription,
		InitialExpirationDate:    u.InitialExpirationDate,
		CreatedAt:                u.CreatedAt,
		UpdatedAt:                u.UpdatedAt,
	}
}
