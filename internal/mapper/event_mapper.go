package mapper

import (
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/model"

	"gorm.io/datatypes"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToEntity(e *model.ContractEvent) *entity.ContractEvent {
	if e == nil {
		return nil
	}

	return &entity.ContractEvent{
		Id:         e.Id,
		EventType:  e.EventType,
		ContractID: e.ContractID,
		Payload:    []byte(e.Payload),
		OccurredAt: e.OccurredAt,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *EventMapper) ToModel(e *entity.ContractEvent) *model.ContractEvent {
	if e == nil {
		return nil
	}

	return &model.ContractEvent{
		Id:         e.Id,
		EventType:  e.EventType,
		ContractID: e.ContractID,
		Payload:    datatypes.JSON(e.Payload),
		OccurredAt: e.OccurredAt,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *EventMapper) ToEntities(models []*model.ContractEvent) []*entity.ContractEvent {
	entities := make([]*entity.ContractEvent, 0, len(models))
	for _, e := range models {
		entities = append(entities, m.ToEntity(e))
	}
	return entities
}
