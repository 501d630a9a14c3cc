package service

import (
	"context"
	"io"
	"regexp"
	"strings"
	"time"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/pkg/apperr"
	"contractdesk-be/internal/pkg/logger"
	"contractdesk-be/internal/pkg/storage"
	"contractdesk-be/internal/repository/unitofwork"
)

var documentNamePattern = regexp.MustCompile(constant.DocumentNamePattern)

type IDocumentService interface {
	UploadContractDocument(ctx context.Context, req *dto.UploadDocumentRequest, file io.Reader) (*dto.ContractDocumentResponse, error)
	ListContractDocuments(ctx context.Context, contractId uint) ([]*dto.ContractDocumentResponse, error)
	DownloadContractDocument(ctx context.Context, id uint) (*dto.DocumentDownload, error)
	DeleteContractDocument(ctx context.Context, id uint) error

	UploadTerminationDocument(ctx context.Context, req *dto.UploadDocumentRequest, file io.Reader) (*dto.TerminationDocumentResponse, error)
	CloneToTerminationDocument(ctx context.Context, req *dto.CloneDocumentRequest) (*dto.TerminationDocumentResponse, error)
	ListTerminationDocuments(ctx context.Context, contractId uint) ([]*dto.TerminationDocumentResponse, error)
	UpdateTerminationDocument(ctx context.Context, req *dto.UpdateTerminationDocumentRequest) (*dto.TerminationDocumentResponse, error)
	DownloadTerminationDocument(ctx context.Context, id uint) (*dto.DocumentDownload, error)
	DeleteTerminationDocument(ctx context.Context, id uint) error
}

type documentService struct {
	uowFactory unitofwork.RepositoryFactory
	store      *storage.LocalStore
	log        logger.ILogger
	now        func() time.Time
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	store *storage.LocalStore,
	log logger.ILogger,
	now func() time.Time,
) IDocumentService {
	if now == nil {
		now = time.Now
	}
	return &documentService{
		uowFactory: uowFactory,
		store:      store,
		log:        log,
		now:        now,
	}
}

// UploadContractDocument validates before touching disk, writes the
// file, then inserts the metadata row. A failed insert leaves an
// orphaned file behind, which is accepted cleanup debt.
func (s *documentService) UploadContractDocument(ctx context.Context, req *dto.UploadDocumentRequest, file io.Reader) (*dto.ContractDocumentResponse, error) {
	name, err := s.validateDocumentMeta(req.DocumentName, req.DocumentDate, req.ContentType)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	c, err := uow.ContractRepository().FindById(ctx, req.ContractId)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %d not found", req.ContractId)
	}

	path, size, err := s.store.Save(c.ContractID, constant.DocumentKindContract, req.FileName, file)
	if err != nil {
		return nil, apperr.Internal("failed to store document", err)
	}

	doc := entity.ContractDocument{
		ContractId:         c.Id,
		FileName:           req.FileName,
		CustomDocumentName: name,
		DocumentSignedDate: dateOnly(req.DocumentDate),
		FilePath:           path,
		FileSize:           size,
		ContentType:        req.ContentType,
		CreatedAt:          s.now(),
	}
	if err := uow.ContractDocumentRepository().Create(ctx, &doc); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toContractDocResponse(&doc), nil
}

func (s *documentService) ListContractDocuments(ctx context.Context, contractId uint) ([]*dto.ContractDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.ContractDocumentRepository().ListByContractId(ctx, contractId)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContractDocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toContractDocResponse(d))
	}
	return out, nil
}

func (s *documentService) DownloadContractDocument(ctx context.Context, id uint) (*dto.DocumentDownload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.ContractDocumentRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperr.NotFound("contract document %d not found", id)
	}
	if !s.store.Exists(doc.FilePath) {
		return nil, apperr.NotFound("stored file for document %d is missing", id)
	}
	return &dto.DocumentDownload{
		FilePath:    doc.FilePath,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
	}, nil
}

func (s *documentService) DeleteContractDocument(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	doc, err := uow.ContractDocumentRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return apperr.NotFound("contract document %d not found", id)
	}
	if err := uow.ContractDocumentRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.removeFileBestEffort(doc.FilePath)
	return nil
}

// UploadTerminationDocument records a document for the termination
// pipeline. It also flips the open Terminate submission's has_document
// flag and, for the two gating documents, remembers the stored path on
// the contract row.
func (s *documentService) UploadTerminationDocument(ctx context.Context, req *dto.UploadDocumentRequest, file io.Reader) (*dto.TerminationDocumentResponse, error) {
	name, err := s.validateDocumentMeta(req.DocumentName, req.DocumentDate, req.ContentType)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	c, err := uow.ContractRepository().FindById(ctx, req.ContractId)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %d not found", req.ContractId)
	}

	path, size, err := s.store.Save(c.ContractID, constant.DocumentKindTermination, req.FileName, file)
	if err != nil {
		return nil, apperr.Internal("failed to store document", err)
	}

	doc := entity.TerminationDocument{
		ContractId:   c.Id,
		FileName:     req.FileName,
		DocumentName: name,
		DocumentDate: dateOnly(req.DocumentDate),
		FilePath:     path,
		FileSize:     size,
		ContentType:  req.ContentType,
		CreatedAt:    s.now(),
	}
	if err := uow.TerminationDocumentRepository().Create(ctx, &doc); err != nil {
		return nil, err
	}
	if err := s.afterTerminationDocument(ctx, uow, c, &doc); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toTerminationDocResponse(&doc), nil
}

// CloneToTerminationDocument copies an existing contract document's
// bytes into the termination namespace. After cloning the two rows and
// files are fully independent.
func (s *documentService) CloneToTerminationDocument(ctx context.Context, req *dto.CloneDocumentRequest) (*dto.TerminationDocumentResponse, error) {
	if dateOnly(req.DocumentDate).After(dateOnly(s.now())) {
		return nil, apperr.Validation("document date cannot be in the future")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	c, err := uow.ContractRepository().FindById(ctx, req.ContractId)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %d not found", req.ContractId)
	}

	src, err := uow.ContractDocumentRepository().FindById(ctx, req.ContractDocumentId)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, apperr.NotFound("contract document %d not found", req.ContractDocumentId)
	}
	if src.ContractId != c.Id {
		return nil, apperr.Validation("contract document %d does not belong to contract %s", src.Id, c.ContractID)
	}
	if !s.store.Exists(src.FilePath) {
		return nil, apperr.NotFound("stored file for document %d is missing", src.Id)
	}

	path, size, err := s.store.Copy(src.FilePath, c.ContractID, constant.DocumentKindTermination)
	if err != nil {
		return nil, apperr.Internal("failed to copy document", err)
	}

	doc := entity.TerminationDocument{
		ContractId:   c.Id,
		FileName:     src.FileName,
		DocumentName: src.CustomDocumentName,
		DocumentDate: dateOnly(req.DocumentDate),
		FilePath:     path,
		FileSize:     size,
		ContentType:  src.ContentType,
		CreatedAt:    s.now(),
	}
	if err := uow.TerminationDocumentRepository().Create(ctx, &doc); err != nil {
		return nil, err
	}
	if err := s.afterTerminationDocument(ctx, uow, c, &doc); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toTerminationDocResponse(&doc), nil
}

func (s *documentService) ListTerminationDocuments(ctx context.Context, contractId uint) ([]*dto.TerminationDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.TerminationDocumentRepository().ListByContractId(ctx, contractId)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TerminationDocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toTerminationDocResponse(d))
	}
	return out, nil
}

func (s *documentService) UpdateTerminationDocument(ctx context.Context, req *dto.UpdateTerminationDocumentRequest) (*dto.TerminationDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	doc, err := uow.TerminationDocumentRepository().FindById(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperr.NotFound("termination document %d not found", req.Id)
	}

	if req.DocumentName != nil {
		name := strings.TrimSpace(*req.DocumentName)
		if name == "" || !documentNamePattern.MatchString(name) {
			return nil, apperr.Validation("document name can only contain letters, numbers, spaces, and the characters: - | &")
		}
		doc.DocumentName = name
	}
	if req.DocumentDate != nil {
		if dateOnly(*req.DocumentDate).After(dateOnly(s.now())) {
			return nil, apperr.Validation("document date cannot be in the future")
		}
		doc.DocumentDate = dateOnly(*req.DocumentDate)
	}

	if err := uow.TerminationDocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toTerminationDocResponse(doc), nil
}

func (s *documentService) DownloadTerminationDocument(ctx context.Context, id uint) (*dto.DocumentDownload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.TerminationDocumentRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperr.NotFound("termination document %d not found", id)
	}
	if !s.store.Exists(doc.FilePath) {
		return nil, apperr.NotFound("stored file for document %d is missing", id)
	}
	return &dto.DocumentDownload{
		FilePath:    doc.FilePath,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
	}, nil
}

// DeleteTerminationDocument removes the row first; the file removal is
// best effort since the database is authoritative.
func (s *documentService) DeleteTerminationDocument(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	doc, err := uow.TerminationDocumentRepository().FindById(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return apperr.NotFound("termination document %d not found", id)
	}
	if err := uow.TerminationDocumentRepository().Delete(ctx, id); err != nil {
		return err
	}

	c, err := uow.ContractRepository().FindById(ctx, doc.ContractId)
	if err != nil {
		return err
	}
	if c != nil {
		changed := false
		if c.TerminationLetterPath != nil && *c.TerminationLetterPath == doc.FilePath {
			c.TerminationLetterPath = nil
			changed = true
		}
		if c.FinalInvoicePath != nil && *c.FinalInvoicePath == doc.FilePath {
			c.FinalInvoicePath = nil
			changed = true
		}
		if changed {
			if err := uow.ContractRepository().Update(ctx, c); err != nil {
				return err
			}
		}
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.removeFileBestEffort(doc.FilePath)
	return nil
}

// afterTerminationDocument flips the open Terminate submission's
// has_document flag and records the gating-document paths.
func (s *documentService) afterTerminationDocument(ctx context.Context, uow unitofwork.UnitOfWork, c *entity.Contract, doc *entity.TerminationDocument) error {
	pending, err := uow.ContractUpdateRepository().FindPendingByContractId(ctx, c.Id)
	if err != nil {
		return err
	}
	if pending != nil && !pending.HasDocument {
		pending.HasDocument = true
		if err := uow.ContractUpdateRepository().Update(ctx, pending); err != nil {
			return err
		}
	}

	changed := false
	switch doc.DocumentName {
	case constant.TerminationLetterName:
		c.TerminationLetterPath = &doc.FilePath
		changed = true
	case constant.FinalInvoiceName:
		c.FinalInvoicePath = &doc.FilePath
		changed = true
	}
	if changed {
		return uow.ContractRepository().Update(ctx, c)
	}
	return nil
}

func (s *documentService) validateDocumentMeta(name string, docDate time.Time, contentType string) (string, error) {
	if contentType != constant.PDFContentType {
		return "", apperr.Validation("only PDF documents are accepted")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperr.Validation("document name cannot be empty")
	}
	if !documentNamePattern.MatchString(trimmed) {
		return "", apperr.Validation("document name can only contain letters, numbers, spaces, and the characters: - | &")
	}
	if dateOnly(docDate).After(dateOnly(s.now())) {
		return "", apperr.Validation("document date cannot be in the future")
	}
	return trimmed, nil
}

func (s *documentService) removeFileBestEffort(path string) {
	if err := s.store.Remove(path); err != nil {
		s.log.Warn("document_service", "failed to remove stored file", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}

func toContractDocResponse(d *entity.ContractDocument) *dto.ContractDocumentResponse {
	return &dto.ContractDocumentResponse{
		Id:                 d.Id,
		ContractId:         d.ContractId,
		FileName:           d.FileName,
		CustomDocumentName: d.CustomDocumentName,
		DocumentSignedDate: d.DocumentSignedDate,
		FileSize:           d.FileSize,
		ContentType:        d.ContentType,
		CreatedAt:          d.CreatedAt,
	}
}

func toTerminationDocResponse(d *entity.TerminationDocument) *dto.TerminationDocumentResponse {
	return &dto.TerminationDocumentResponse{
		Id:           d.Id,
		ContractId:   d.ContractId,
		FileName:     d.FileName,
		DocumentName: d.DocumentName,
		DocumentDate: d.DocumentDate,
		FileSize:     d.FileSize,
		ContentType:  d.ContentType,
		CreatedAt:    d.CreatedAt,
	}
}
