package dto

import "time"

// UploadDocumentRequest carries the metadata of a multipart upload; the
// file bytes travel separately.
type UploadDocumentRequest struct {
	ContractId   uint
	DocumentName string    `json:"document_name" validate:"required,max=255"`
	DocumentDate time.Time `json:"document_date" validate:"required"`
	FileName     string
	ContentType  string
	Size         int64
}

type ContractDocumentResponse struct {
	Id                 uint      `json:"id"`
	ContractId         uint      `json:"contract_id"`
	FileName           string    `json:"file_name"`
	CustomDocumentName string    `json:"custom_document_name"`
	DocumentSignedDate time.Time `json:"document_signed_date"`
	FileSize           int64     `json:"file_size"`
	ContentType        string    `json:"content_type"`
	CreatedAt          time.Time `json:"created_at"`
}

type TerminationDocumentResponse struct {
	Id           uint      `json:"id"`
	ContractId   uint      `json:"contract_id"`
	FileName     string    `json:"file_name"`
	DocumentName string    `json:"document_name"`
	DocumentDate time.Time `json:"document_date"`
	FileSize     int64     `json:"file_size"`
	ContentType  string    `json:"content_type"`
	CreatedAt    time.Time `json:"created_at"`
}

type CloneDocumentRequest struct {
	ContractId         uint
	ContractDocumentId uint      `json:"contract_document_id" validate:"required,gt=0"`
	DocumentDate       time.Time `json:"document_date" validate:"required"`
}

type UpdateTerminationDocumentRequest struct {
	Id           uint
	DocumentName *string    `json:"document_name" validate:"omitempty,min=1,max=255"`
	DocumentDate *time.Time `json:"document_date"`
}

// DocumentDownload pairs the stored file path with the metadata needed
// for a content-disposition response.
type DocumentDownload struct {
	FilePath    string
	FileName    string
	ContentType string
}
