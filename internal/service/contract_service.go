package service

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/lifecycle"
	"contractdesk-be/internal/pkg/apperr"
	"contractdesk-be/internal/pkg/logger"
	contractrepo "contractdesk-be/internal/repository/contract"
	"contractdesk-be/internal/repository/unitofwork"
)

var descriptionPattern = regexp.MustCompile(`^[a-zA-Z0-9\s/\-&():% #]+$`)

type IContractService interface {
	Create(ctx context.Context, actor string, req *dto.CreateContractRequest) (*dto.ContractResponse, error)
	Update(ctx context.Context, actor string, req *dto.UpdateContractRequest) (*dto.ContractResponse, error)
	Show(ctx context.Context, id uint) (*dto.ContractResponse, error)
	ShowByContractID(ctx context.Context, contractID string) (*dto.ContractResponse, error)
	List(ctx context.Context, req *dto.ContractFilterRequest) (*dto.ContractListResponse, error)
	SweepExpired(ctx context.Context) (*dto.ExpirySweepResponse, error)
	Extend(ctx context.Context, actor string, req *dto.ExtendContractRequest) (*dto.ContractResponse, error)
	SavePendingTermination(ctx context.Context, actor string, req *dto.SavePendingTerminationRequest) (*dto.ContractResponse, error)
	Terminate(ctx context.Context, actor string, req *dto.TerminateContractRequest) (*dto.ContractResponse, error)
	CancelTermination(ctx context.Context, actor string, id uint) (*dto.ContractResponse, error)
}

type contractService struct {
	uowFactory       unitofwork.RepositoryFactory
	identifiers      IIdentifierService
	publisherService IPublisherService
	log              logger.ILogger
	now              func() time.Time
}

func NewContractService(
	uowFactory unitofwork.RepositoryFactory,
	identifiers IIdentifierService,
	publisherService IPublisherService,
	log logger.ILogger,
	now func() time.Time,
) IContractService {
	if now == nil {
		now = time.Now
	}
	return &contractService{
		uowFactory:       uowFactory,
		identifiers:      identifiers,
		publisherService: publisherService,
		log:              log,
		now:              now,
	}
}

func (s *contractService) Create(ctx context.Context, actor string, req *dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if err := validateContractFields(req.ContractDescription, req.StartDate, req.EndDate, req.AutomaticRenewal, req.RenewalPeriod); err != nil {
		return nil, err
	}
	if err := validateOwnership(req.ContractOwnerId, req.ContractOwnerBackupId, req.ContractOwnerManagerId); err != nil {
		return nil, err
	}
	if req.ContractAmount.IsNegative() || req.ContractAmount.IsZero() {
		return nil, apperr.Validation("contract_amount must be greater than zero")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	vendor, err := uow.VendorRepository().FindById(ctx, req.VendorId)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperr.NotFound("vendor %d not found", req.VendorId)
	}
	for _, userId := range []uint{req.ContractOwnerId, req.ContractOwnerBackupId, req.ContractOwnerManagerId} {
		user, err := uow.UserRepository().FindById(ctx, userId)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperr.NotFound("user %d not found", userId)
		}
	}

	contractID, err := s.identifiers.NextContractID(ctx, uow)
	if err != nil {
		return nil, err
	}

	nowTs := s.now()
	c := entity.Contract{
		ContractID:                contractID,
		VendorId:                  req.VendorId,
		Description:               strings.TrimSpace(req.ContractDescription),
		Type:                      req.ContractType,
		StartDate:                 dateOnly(req.StartDate),
		EndDate:                   dateOnly(req.EndDate),
		AutomaticRenewal:          req.AutomaticRenewal,
		RenewalPeriod:             req.RenewalPeriod,
		Department:                req.Department,
		Amount:                    req.ContractAmount,
		Currency:                  req.ContractCurrency,
		PaymentMethod:             req.PaymentMethod,
		TerminationNoticePeriod:   req.TerminationNoticePeriod,
		ExpirationNoticeFrequency: req.ExpirationNoticeFrequency,
		OwnerId:                   req.ContractOwnerId,
		BackupId:                  req.ContractOwnerBackupId,
		ManagerId:                 req.ContractOwnerManagerId,
		Status:                    lifecycle.StatusActive,
		LastModifiedBy:            &actor,
		LastModifiedDate:          &nowTs,
		Version:                   1,
		CreatedAt:                 nowTs,
	}

	if err := uow.ContractRepository().Create(ctx, &c); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, constant.EventContractCreated, c.ContractID)
	s.log.Info("contract_service", "contract created", map[string]interface{}{
		"contract_id": c.ContractID,
		"vendor_id":   c.VendorId,
	})

	return toContractResponse(&c), nil
}

func (s *contractService) Update(ctx context.Context, actor string, req *dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	if err := validateContractFields(req.ContractDescription, req.StartDate, req.EndDate, req.AutomaticRenewal, req.RenewalPeriod); err != nil {
		return nil, err
	}
	if err := validateOwnership(req.ContractOwnerId, req.ContractOwnerBackupId, req.ContractOwnerManagerId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	c, err := uow.ContractRepository().FindById(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %d not found", req.Id)
	}

	nowTs := s.now()
	c.Description = strings.TrimSpace(req.ContractDescription)
	c.Type = req.ContractType
	c.StartDate = dateOnly(req.StartDate)
	c.EndDate = dateOnly(req.EndDate)
	c.AutomaticRenewal = req.AutomaticRenewal
	c.RenewalPeriod = req.RenewalPeriod
	c.Department = req.Department
	c.Amount = req.ContractAmount
	c.Currency = req.ContractCurrency
	c.PaymentMethod = req.PaymentMethod
	c.TerminationNoticePeriod = req.TerminationNoticePeriod
	c.ExpirationNoticeFrequency = req.ExpirationNoticeFrequency
	c.OwnerId = req.ContractOwnerId
	c.BackupId = req.ContractOwnerBackupId
	c.ManagerId = req.ContractOwnerManagerId
	c.LastModifiedBy = &actor
	c.LastModifiedDate = &nowTs

	if err := uow.ContractRepository().Update(ctx, c); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toContractResponse(c), nil
}

func (s *contractService) Show(ctx context.Context, id uint) (*dto.ContractResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	c, err := uow.ContractRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %d not found", id)
	}
	return toContractResponse(c), nil
}

func (s *contractService) ShowByContractID(ctx context.Context, contractID string) (*dto.ContractResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	c, err := uow.ContractRepository().FindByContractID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %s not found", contractID)
	}
	return toContractResponse(c), nil
}

func (s *contractService) List(ctx context.Context, req *dto.ContractFilterRequest) (*dto.ContractListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	filter := contractrepo.ContractFilter{
		Status:     req.Status,
		Department: req.Department,
		VendorId:   req.VendorId,
		OwnerId:    req.OwnerId,
		Search:     req.Search,
		Skip:       req.Skip,
		Limit:      req.Limit,
	}
	items, total, err := uow.ContractRepository().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.ContractListResponse{Items: toContractResponses(items), Total: total}, nil
}

// SweepExpired flips Active contracts whose end date has passed to
// Expired, stamping the SYSTEM actor. Running it again with the same
// clock transitions nothing.
func (s *contractService) SweepExpired(ctx context.Context) (*dto.ExpirySweepResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	today := dateOnly(s.now())
	expired, err := uow.ContractRepository().ListActiveEndingBefore(ctx, today)
	if err != nil {
		return nil, err
	}

	res := &dto.ExpirySweepResponse{}
	nowTs := s.now()
	actor := constant.SystemActor
	for _, c := range expired {
		next, err := lifecycle.Next(c.Status, lifecycle.EventExpire)
		if err != nil {
			return nil, err
		}
		c.Status = next
		c.LastModifiedBy = &actor
		c.LastModifiedDate = &nowTs
		if err := uow.ContractRepository().Update(ctx, c); err != nil {
			return nil, err
		}
		res.Transitioned++
		res.ContractIDs = append(res.ContractIDs, c.ContractID)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if res.Transitioned > 0 {
		s.log.Info("contract_service", "expiry sweep transitioned contracts", map[string]interface{}{
			"count": res.Transitioned,
		})
		for _, contractID := range res.ContractIDs {
			s.publishEvent(ctx, constant.EventContractExpired, contractID)
		}
	}
	return res, nil
}

// Extend pushes the end date forward and reactivates the contract. The
// new end date must be strictly later than the stored one; an Expired
// contract becomes Active again.
func (s *contractService) Extend(ctx context.Context, actor string, req *dto.ExtendContractRequest) (*dto.ContractResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	c, err := uow.ContractRepository().FindById(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %d not found", req.Id)
	}

	newEnd := dateOnly(req.NewEndDate)
	if !newEnd.After(c.EndDate) {
		return nil, apperr.StateConflict("new end date must be later than the current end date")
	}
	next, err := lifecycle.Next(c.Status, lifecycle.EventExtend)
	if err != nil {
		return nil, err
	}

	nowTs := s.now()
	c.EndDate = newEnd
	c.Status = next
	c.LastModifiedBy = &actor
	c.LastModifiedDate = &nowTs
	if err := uow.ContractRepository().Update(ctx, c); err != nil {
		return nil, err
	}

	if err := s.completePendingUpdate(ctx, uow, c.Id); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, constant.EventContractExtended, c.ContractID)
	return toContractResponse(c), nil
}

// SavePendingTermination parks the contract in the termination pipeline
// until the required documents arrive.
func (s *contractService) SavePendingTermination(ctx context.Context, actor string, req *dto.SavePendingTerminationRequest) (*dto.ContractResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	c, err := uow.ContractRepository().FindById(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %d not found", req.Id)
	}

	next, err := lifecycle.Next(c.Status, lifecycle.EventRequestTermination)
	if err != nil {
		return nil, err
	}

	nowTs := s.now()
	termination := constant.TerminationYes
	termDate := dateOnly(req.TerminationDate)
	c.Status = next
	c.Termination = &termination
	c.TerminationDate = &termDate
	c.LastModifiedBy = &actor
	c.LastModifiedDate = &nowTs
	if err := uow.ContractRepository().Update(ctx, c); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toContractResponse(c), nil
}

// Terminate finalizes the termination. Both the termination letter and
// the final invoice must already be recorded as PDF termination
// documents.
func (s *contractService) Terminate(ctx context.Context, actor string, req *dto.TerminateContractRequest) (*dto.ContractResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	c, err := uow.ContractRepository().FindById(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %d not found", req.Id)
	}

	docs, err := uow.TerminationDocumentRepository().ListByContractId(ctx, c.Id)
	if err != nil {
		return nil, err
	}
	var hasLetter, hasInvoice bool
	for _, d := range docs {
		if d.ContentType != constant.PDFContentType {
			continue
		}
		switch d.DocumentName {
		case constant.TerminationLetterName:
			hasLetter = true
		case constant.FinalInvoiceName:
			hasInvoice = true
		}
	}
	if !hasLetter || !hasInvoice {
		return nil, apperr.StateConflict("termination requires a termination letter and a final invoice in PDF format")
	}

	next, err := lifecycle.Next(c.Status, lifecycle.EventFinalize)
	if err != nil {
		return nil, err
	}

	nowTs := s.now()
	termination := constant.TerminationYes
	termDate := dateOnly(nowTs)
	if req.TerminationDate != nil {
		termDate = dateOnly(*req.TerminationDate)
	} else if c.TerminationDate != nil {
		termDate = *c.TerminationDate
	}
	c.Status = next
	c.Termination = &termination
	c.TerminationDate = &termDate
	c.LastModifiedBy = &actor
	c.LastModifiedDate = &nowTs
	if err := uow.ContractRepository().Update(ctx, c); err != nil {
		return nil, err
	}

	if err := s.completePendingUpdate(ctx, uow, c.Id); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, constant.EventContractTerminated, c.ContractID)
	s.log.Info("contract_service", "contract terminated", map[string]interface{}{
		"contract_id": c.ContractID,
	})
	return toContractResponse(c), nil
}

func (s *contractService) CancelTermination(ctx context.Context, actor string, id uint) (*dto.ContractResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	c, err := uow.ContractRepository().FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %d not found", id)
	}

	next, err := lifecycle.Next(c.Status, lifecycle.EventCancelTermination)
	if err != nil {
		return nil, err
	}

	nowTs := s.now()
	termination := constant.TerminationNo
	c.Status = next
	c.Termination = &termination
	c.TerminationDate = nil
	c.LastModifiedBy = &actor
	c.LastModifiedDate = &nowTs
	if err := uow.ContractRepository().Update(ctx, c); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toContractResponse(c), nil
}

func (s *contractService) completePendingUpdate(ctx context.Context, uow unitofwork.UnitOfWork, contractId uint) error {
	pending, err := uow.ContractUpdateRepository().FindPendingByContractId(ctx, contractId)
	if err != nil || pending == nil {
		return err
	}
	pending.Status = constant.UpdateStatusCompleted
	return uow.ContractUpdateRepository().Update(ctx, pending)
}

func (s *contractService) publishEvent(ctx context.Context, eventType, contractID string) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.ContractEventMessage{
		Type:       eventType,
		ContractID: contractID,
		OccurredAt: s.now(),
	})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("contract_service", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func validateContractFields(description string, startDate, endDate time.Time, automaticRenewal string, renewalPeriod *string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return apperr.Validation("please indicate the contract description")
	}
	if !descriptionPattern.MatchString(trimmed) {
		return apperr.Validation("contract description can only contain letters, digits and the characters: / - & ( ) : %% #")
	}
	if !dateOnly(endDate).After(dateOnly(startDate)) {
		return apperr.Validation("contract end date must be after start date")
	}
	if automaticRenewal == constant.AutomaticRenewalYes && renewalPeriod == nil {
		return apperr.Validation("renewal period is required when automatic renewal is Yes")
	}
	if automaticRenewal == constant.AutomaticRenewalNo && renewalPeriod != nil {
		return apperr.Validation("renewal period should not be provided when automatic renewal is No")
	}
	return nil
}

func validateOwnership(ownerId, backupId, managerId uint) error {
	if backupId == ownerId {
		return apperr.Validation("contract owner backup must be different from contract owner")
	}
	if managerId == ownerId {
		return apperr.Validation("contract owner manager must be different from contract owner")
	}
	if managerId == backupId {
		return apperr.Validation("contract owner manager must be different from contract owner backup")
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	return &dto.ContractResponse{
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
		LastModifiedBy:            c.LastModifiedBy,
		LastModifiedDate:          c.LastModifiedDate,
		Version:                   c.Version,
		CreatedAt:                 c.CreatedAt,
		UpdatedAt:                 c.UpdatedAt,
	}
}

func toContractResponses(items []*entity.Contract) []*dto.ContractResponse {
	out := make([]*dto.ContractResponse, 0, len(items))
	for _, c := range items {
		out = append(out, toContractResponse(c))
	}
	return out
}
