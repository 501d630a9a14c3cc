package service

import (
	"context"
	"encoding/json"
	"log"

	"contractdesk-be/internal/constant"
	"contractdesk-be/internal/dto"
	"contractdesk-be/internal/entity"
	"contractdesk-be/internal/pkg/mailer"
	contractrepo "contractdesk-be/internal/repository/contract"
	"contractdesk-be/internal/repository/unitofwork"
	"contractdesk-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// INotificationService fans contract events out to websocket clients and
// email, and records them for the activity feed. It is the sole consumer
// of the contract events topic.
type INotificationService interface {
	Consume(ctx context.Context) error
	RecentActivity(ctx context.Context, limit int) ([]*dto.ContractEventResponse, error)
}

type notificationService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	eventRepo  contractrepo.ContractEventRepository
	hub        *websocket.Hub
	mailer     mailer.IEmailService
}

func NewNotificationService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	eventRepo contractrepo.ContractEventRepository,
	hub *websocket.Hub,
	emailService mailer.IEmailService,
) INotificationService {
	return &notificationService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		eventRepo:  eventRepo,
		hub:        hub,
		mailer:     emailService,
	}
}

func (ns *notificationService) Consume(ctx context.Context) error {
	messages, err := ns.pubSub.Subscribe(ctx, ns.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ns.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ns *notificationService) processMessage(ctx context.Context, msg *message.Message) {
	var event dto.ContractEventMessage
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		log.Printf("[ERROR] Failed to unmarshal contract event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if ns.hub != nil {
		ns.hub.Broadcast(event)
	}

	if ns.eventRepo != nil {
		record := entity.ContractEvent{
			EventType:  event.Type,
			ContractID: event.ContractID,
			Payload:    msg.Payload,
			OccurredAt: event.OccurredAt,
		}
		if err := ns.eventRepo.Create(ctx, &record); err != nil {
			log.Printf("[ERROR] Failed to record event %s for %s: %v", event.Type, event.ContractID, err)
		}
	}

	switch event.Type {
	case constant.EventContractExpired:
		ns.notifyExpired(ctx, event)
	case constant.EventReviewReturned:
		ns.notifyReturned(ctx, event)
	}

	msg.Ack()
}

// RecentActivity returns the newest recorded events, newest first.
func (ns *notificationService) RecentActivity(ctx context.Context, limit int) ([]*dto.ContractEventResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	events, err := ns.eventRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContractEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, &dto.ContractEventResponse{
			Id:         e.Id,
			Type:       e.EventType,
			ContractID: e.ContractID,
			OccurredAt: e.OccurredAt,
		})
	}
	return out, nil
}

// notifyExpired mails the contract owner that the sweep expired their
// contract. Mail failures are logged and swallowed; the event was
// already delivered to the websocket feed.
func (ns *notificationService) notifyExpired(ctx context.Context, event dto.ContractEventMessage) {
	if ns.mailer == nil {
		return
	}
	uow := ns.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.ContractRepository().FindByContractID(ctx, event.ContractID)
	if err != nil || c == nil {
		log.Printf("[ERROR] Contract %s not found for expiry notice: %v", event.ContractID, err)
		return
	}
	owner, err := uow.UserRepository().FindById(ctx, c.OwnerId)
	if err != nil || owner == nil {
		log.Printf("[ERROR] Owner %d not found for contract %s: %v", c.OwnerId, event.ContractID, err)
		return
	}
	if err := ns.mailer.SendExpiryNotice(owner.Email, c.ContractID, c.EndDate.Format("2006-01-02")); err != nil {
		log.Printf("[ERROR] Failed to send expiry notice for %s: %v", c.ContractID, err)
	}
}

// notifyReturned mails the manager whose submission the admin returned.
func (ns *notificationService) notifyReturned(ctx context.Context, event dto.ContractEventMessage) {
	if ns.mailer == nil {
		return
	}
	uow := ns.uowFactory.NewUnitOfWork(ctx)

	c, err := uow.ContractRepository().FindByContractID(ctx, event.ContractID)
	if err != nil || c == nil {
		log.Printf("[ERROR] Contract %s not found for return notice: %v", event.ContractID, err)
		return
	}
	latest, err := uow.ContractUpdateRepository().FindLatestByContractId(ctx, c.Id)
	if err != nil || latest == nil {
		log.Printf("[ERROR] No review found for contract %s: %v", event.ContractID, err)
		return
	}
	if latest.Status != constant.UpdateStatusReturned || latest.ResponseProvidedByUserId == nil {
		return
	}
	submitter, err := uow.UserRepository().FindById(ctx, *latest.ResponseProvidedByUserId)
	if err != nil || submitter == nil {
		log.Printf("[ERROR] Submitter not found for contract %s: %v", event.ContractID, err)
		return
	}
	reason := ""
	if latest.ReturnedReason != nil {
		reason = *latest.ReturnedReason
	}
	if err := ns.mailer.SendReviewReturned(submitter.Email, c.ContractID, reason); err != nil {
		log.Printf("[ERROR] Failed to send return notice for %s: %v", c.ContractID, err)
	}
}
