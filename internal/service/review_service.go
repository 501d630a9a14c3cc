package service

import (
	"context"
	"encoding/json"
	"time"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/lifecycle"
	"contractdesk-be/internal/pkg/apperr"
	"contractdesk-be/internal/pkg/logger"
	"contractdesk-be/internal/repository/unitofwork"
)

// IReviewService runs the manager/admin review workflow and the queue
// projections that feed the operator worklists.
type IReviewService interface {
	Submit(ctx context.Context, userId uint, req *dto.SubmitUpdateRequest) (*dto.ContractUpdateResponse, error)
	Return(ctx context.Context, req *dto.ReturnUpdateRequest) (*dto.ContractUpdateResponse, error)
	Resubmit(ctx context.Context, userId uint, req *dto.ResubmitUpdateRequest) (*dto.ContractUpdateResponse, error)
	Complete(ctx context.Context, updateId uint) (*dto.ContractUpdateResponse, error)
	History(ctx context.Context, contractId uint) ([]*dto.ContractUpdateResponse, error)
	Stage(ctx context.Context, contractId uint) (*dto.WorkflowStageResponse, error)

	QueueNoDocuments(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error)
	QueueNeedingReview(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error)
	QueueRequiringAttention(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error)
	QueuePendingAdminReview(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error)
	QueueAwaitingTerminationDocument(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error)
	QueueTerminated(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error)
}

type reviewService struct {
	uowFactory           unitofwork.RepositoryFactory
	publisherService     IPublisherService
	log                  logger.ILogger
	now                  func() time.Time
	reviewHorizonDays    int
	attentionHorizonDays int
}

func NewReviewService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
	now func() time.Time,
	reviewHorizonDays int,
	attentionHorizonDays int,
) IReviewService {
	if now == nil {
		now = time.Now
	}
	if reviewHorizonDays <= 0 {
		reviewHorizonDays = constant.DefaultReviewHorizonDays
	}
	if attentionHorizonDays <= 0 {
		attentionHorizonDays = constant.DefaultAttentionHorizonDays
	}
	return &reviewService{
		uowFactory:           uowFactory,
		publisherService:     publisherService,
		log:                  log,
		now:                  now,
		reviewHorizonDays:    reviewHorizonDays,
		attentionHorizonDays: attentionHorizonDays,
	}
}

// Submit records a manager decision as a fresh PendingReview row. Only
// the contract's owner, backup or manager may submit, and only one
// review can be open at a time.
func (s *reviewService) Submit(ctx context.Context, userId uint, req *dto.SubmitUpdateRequest) (*dto.ContractUpdateResponse, error) {
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
	if c.Status != lifecycle.StatusActive && c.Status != lifecycle.StatusExpired {
		return nil, apperr.StateConflict("contract %s is not open for review decisions", c.ContractID)
	}
	if userId != c.OwnerId && userId != c.BackupId && userId != c.ManagerId {
		return nil, apperr.Validation("user %d is not the owner, backup or manager of contract %s", userId, c.ContractID)
	}

	pending, err := uow.ContractUpdateRepository().FindPendingByContractId(ctx, c.Id)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, apperr.StateConflict("contract %s already has a review pending", c.ContractID)
	}

	nowTs := s.now()
	update := entity.ContractUpdate{
		ContractId:               c.Id,
		Status:                   constant.UpdateStatusPendingReview,
		ResponseProvidedByUserId: &userId,
		ResponseDate:             &nowTs,
		Decision:                 &req.Decision,
		DecisionComments:         req.DecisionComments,
		CreatedAt:                nowTs,
	}
	if err := uow.ContractUpdateRepository().Create(ctx, &update); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.log.Info("review_service", "review submitted", map[string]interface{}{
		"contract_id": c.ContractID,
		"decision":    req.Decision,
	})
	return toUpdateResponse(&update), nil
}

// Return sends a pending submission back to the manager, snapshotting
// the contract fields the manager saw so the revision form can be
// pre-populated.
func (s *reviewService) Return(ctx context.Context, req *dto.ReturnUpdateRequest) (*dto.ContractUpdateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	update, err := uow.ContractUpdateRepository().FindById(ctx, req.UpdateId)
	if err != nil {
		return nil, err
	}
	if update == nil {
		return nil, apperr.NotFound("contract update %d not found", req.UpdateId)
	}
	if update.Status != constant.UpdateStatusPendingReview {
		return nil, apperr.StateConflict("only pending submissions can be returned")
	}

	c, err := uow.ContractRepository().FindById(ctx, update.ContractId)
	if err != nil {
		return nil, err
	}

	nowTs := s.now()
	update.Status = constant.UpdateStatusReturned
	update.ReturnedDate = &nowTs
	update.ReturnedReason = &req.ReturnedReason
	update.AdminComments = req.AdminComments
	if c != nil {
		vendor, err := uow.VendorRepository().FindById(ctx, c.VendorId)
		if err != nil {
			return nil, err
		}
		if vendor != nil {
			update.InitialVendorName = &vendor.VendorName
		}
		update.InitialContractType = &c.Type
		update.InitialDescription = &c.Description
		endDate := c.EndDate
		update.InitialExpirationDate = &endDate
	}
	if err := uow.ContractUpdateRepository().Update(ctx, update); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if c != nil {
		s.publishEvent(ctx, constant.EventReviewReturned, c.ContractID)
	}
	return toUpdateResponse(update), nil
}

// Resubmit answers a returned submission with a corrected one. The
// returned row is closed as Updated and a new PendingReview row is
// created pointing back at it.
func (s *reviewService) Resubmit(ctx context.Context, userId uint, req *dto.ResubmitUpdateRequest) (*dto.ContractUpdateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	previous, err := uow.ContractUpdateRepository().FindById(ctx, req.UpdateId)
	if err != nil {
		return nil, err
	}
	if previous == nil {
		return nil, apperr.NotFound("contract update %d not found", req.UpdateId)
	}
	if previous.Status != constant.UpdateStatusReturned {
		return nil, apperr.StateConflict("only returned submissions can be resubmitted")
	}

	hasDocument := previous.HasDocument
	if req.Decision == constant.DecisionTerminate {
		docs, err := uow.TerminationDocumentRepository().ListByContractId(ctx, previous.ContractId)
		if err != nil {
			return nil, err
		}
		hasDocument = len(docs) > 0
		if !hasDocument {
			return nil, apperr.StateConflict("a Terminate resubmission requires a termination document")
		}
	}

	nowTs := s.now()
	previous.Status = constant.UpdateStatusUpdated
	if err := uow.ContractUpdateRepository().Update(ctx, previous); err != nil {
		return nil, err
	}

	update := entity.ContractUpdate{
		ContractId:               previous.ContractId,
		Status:                   constant.UpdateStatusPendingReview,
		ResponseProvidedByUserId: &userId,
		ResponseDate:             &nowTs,
		HasDocument:              hasDocument,
		Decision:                 &req.Decision,
		DecisionComments:         req.DecisionComments,
		PreviousUpdateId:         &previous.Id,
		CorrectionDate:           &nowTs,
		CreatedAt:                nowTs,
	}
	if err := uow.ContractUpdateRepository().Create(ctx, &update); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toUpdateResponse(&update), nil
}

func (s *reviewService) Complete(ctx context.Context, updateId uint) (*dto.ContractUpdateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	update, err := uow.ContractUpdateRepository().FindById(ctx, updateId)
	if err != nil {
		return nil, err
	}
	if update == nil {
		return nil, apperr.NotFound("contract update %d not found", updateId)
	}
	update.Status = constant.UpdateStatusCompleted
	if err := uow.ContractUpdateRepository().Update(ctx, update); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return toUpdateResponse(update), nil
}

func (s *reviewService) History(ctx context.Context, contractId uint) ([]*dto.ContractUpdateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	updates, err := uow.ContractUpdateRepository().ListByContractId(ctx, contractId)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContractUpdateResponse, 0, len(updates))
	for _, u := range updates {
		out = append(out, toUpdateResponse(u))
	}
	return out, nil
}

// Stage derives the contract's workbasket from its status plus the
// latest review row.
func (s *reviewService) Stage(ctx context.Context, contractId uint) (*dto.WorkflowStageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	c, err := uow.ContractRepository().FindById(ctx, contractId)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("contract %d not found", contractId)
	}

	latest, err := uow.ContractUpdateRepository().FindLatestByContractId(ctx, contractId)
	if err != nil {
		return nil, err
	}
	var review *lifecycle.ReviewState
	if latest != nil {
		decision := ""
		if latest.Decision != nil {
			decision = *latest.Decision
		}
		review = &lifecycle.ReviewState{
			Status:      latest.Status,
			Decision:    decision,
			HasDocument: latest.HasDocument,
			Returned:    latest.ReturnedDate != nil,
		}
	}
	stage := lifecycle.Classify(c.Status, review)
	return &dto.WorkflowStageResponse{ContractID: c.ContractID, Stage: string(stage)}, nil
}

func (s *reviewService) QueueNoDocuments(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, total, err := uow.ContractRepository().ListWithoutDocuments(ctx, skip, limit)
	return queueResponse(items, total, err)
}

func (s *reviewService) QueueNeedingReview(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	today := dateOnly(s.now())
	horizon := today.AddDate(0, 0, s.reviewHorizonDays)
	items, total, err := uow.ContractRepository().ListNeedingReview(ctx, today, horizon, skip, limit)
	return queueResponse(items, total, err)
}

func (s *reviewService) QueueRequiringAttention(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	horizon := dateOnly(s.now()).AddDate(0, 0, s.attentionHorizonDays)
	items, total, err := uow.ContractRepository().ListRequiringAttention(ctx, horizon, skip, limit)
	return queueResponse(items, total, err)
}

func (s *reviewService) QueuePendingAdminReview(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, total, err := uow.ContractRepository().ListPendingAdminReview(ctx, skip, limit)
	return queueResponse(items, total, err)
}

func (s *reviewService) QueueAwaitingTerminationDocument(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, total, err := uow.ContractRepository().ListAwaitingTerminationDocument(ctx, skip, limit)
	return queueResponse(items, total, err)
}

func (s *reviewService) QueueTerminated(ctx context.Context, skip, limit int) (*dto.ContractListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, total, err := uow.ContractRepository().ListTerminated(ctx, skip, limit)
	return queueResponse(items, total, err)
}

func (s *reviewService) publishEvent(ctx context.Context, eventType, contractID string) {
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
		s.log.Warn("review_service", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func queueResponse(items []*entity.Contract, total int64, err error) (*dto.ContractListResponse, error) {
	if err != nil {
		return nil, err
	}
	return &dto.ContractListResponse{Items: toContractResponses(items), Total: total}, nil
}

func toUpdateResponse(u *entity.ContractUpdate) *dto.ContractUpdateResponse {
	return &dto.ContractUpdateResponse{
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
		CreatedAt:                u.CreatedAt,
	}
}
