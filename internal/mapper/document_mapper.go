package mapper

import (
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ContractDocToEntity(d *model.ContractDocument) *entity.ContractDocument {
	if d == nil {
		return nil
	}

	return &entity.ContractDocument{
		Id:                 d.Id,
		ContractId:         d.ContractId,
		FileName:           d.FileName,
		CustomDocumentName: d.CustomDocumentName,
		DocumentSignedDate: d.DocumentSignedDate,
		FilePath:           d.FilePath,
		FileSize:           d.FileSize,
		ContentType:        d.ContentType,
		CreatedAt:          d.CreatedAt,
	}
}

func (m *DocumentMapper) ContractDocToModel(d *entity.ContractDocument) *model.ContractDocument {
	if d == nil {
		return nil
	}

	return &model.ContractDocument{
		Id:                 d.Id,
		ContractId:         d.ContractId,
		FileName:           d.FileName,
		CustomDocumentName: d.CustomDocumentName,
		DocumentSignedDate: d.DocumentSignedDate,
		FilePath:           d.FilePath,
		FileSize:           d.FileSize,
		ContentType:        d.ContentType,
		CreatedAt:          d.CreatedAt,
	}
}

func (m *DocumentMapper) ContractDocsToEntities(models []*model.ContractDocument) []*entity.ContractDocument {
	entities := make([]*entity.ContractDocument, 0, len(models))
	for _, d := range models {
		entities = append(entities, m.ContractDocToEntity(d))
	}
	return entities
}

func (m *DocumentMapper) TerminationDocToEntity(d *model.TerminationDocument) *entity.TerminationDocument {
	if d == nil {
		return nil
	}

	return &entity.TerminationDocument{
		Id:           d.Id,
		ContractId:   d.ContractId,
		FileName:     d.FileName,
		DocumentName: d.DocumentName,
		DocumentDate: d.DocumentDate,
		FilePath:     d.FilePath,
		FileSize:     d.FileSize,
		ContentType:  d.ContentType,
		CreatedAt:    d.CreatedAt,
	}
}

func (m *DocumentMapper) TerminationDocsToEntities(models []*model.TerminationDocument) []*entity.TerminationDocument {
	entities := make([]*entity.TerminationDocument, 0, len(models))
	for _, d := range models {
		entities = append(entities, m.TerminationDocToEntity(d))
	}
	return entities
}

func (m *DocumentMapper) TerminationDocToModel(d *entity.TerminationDocument) *model.TerminationDocument {
	if d == nil {
		return nil
	}

	return &model.TerminationDocument{
		Id:           d.Id,
		ContractId:   d.ContractId,
		FileName:     d.FileName,
		DocumentName: d.DocumentName,
		DocumentDate: d.DocumentDate,
		FilePath:     d.FilePath,
		FileSize:     d.FileSize,
		ContentType:  d.ContentType,
		CreatedAt:    d.CreatedAt,
	}
}
