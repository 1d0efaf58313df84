package service

import (
	"context"
	"fmt"
	"time"

	"hireup-be/internal/constant"
	"hireup-be/internal/entity"
	"hireup-be/internal/pkg/logger"
	"hireup-be/internal/pkg/mailer"
	"hireup-be/internal/repository/unitofwork"
	"hireup-be/pkg/events"
	pkgNats "hireup-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationDelivery pushes real-time updates to company dashboards.
// Implemented by the websocket hub.
type NotificationDelivery interface {
	Send(companyID uuid.UUID, notification entity.Notification)
}

// NotifierService consumes domain events from NATS and turns them into
// persisted notifications, dashboard pushes and candidate emails.
type NotifierService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber *pkgNats.Subscriber
	delivery   NotificationDelivery
	mail       mailer.IEmailService
	logger     logger.ILogger
}

func NewNotifierService(
	uowFactory unitofwork.RepositoryFactory,
	sub *pkgNats.Subscriber,
	delivery NotificationDelivery,
	mail mailer.IEmailService,
	log logger.ILogger,
) *NotifierService {
	return &NotifierService{
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		mail:       mail,
		logger:     log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotifierService) Start() {
	err := s.subscriber.Subscribe("hiring.>", "notifier-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotifierService", "Failed to start notifier subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotifierService", "Notifier started, listening to hiring.>", nil)
}

func (s *NotifierService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	companyId, ok := parseUUID(payload["company_id"])
	if !ok {
		s.logger.Warn("NotifierService", "Event without company_id, skipping", map[string]interface{}{"type": event.EventType()})
		return nil
	}

	var title, message string
	jobTitle, _ := payload["job_title"].(string)

	switch event.EventType() {
	case constant.EventApplicationSubmitted:
		title = "New application"
		message = fmt.Sprintf("A new application arrived for %s", jobTitle)

	case constant.EventApplicationStatusChanged:
		toStatus, _ := payload["to_status"].(string)
		title = "Application updated"
		message = fmt.Sprintf("An application for %s moved to %s", jobTitle, toStatus)
		s.notifyCandidate(payload, jobTitle, toStatus)

	case constant.EventRankingCompleted:
		source, _ := payload["source"].(string)
		title = "Ranking completed"
		message = fmt.Sprintf("Candidate ranking for %s finished (%s)", jobTitle, source)

	default:
		// Unknown event types are acked, a retry will not help.
		return nil
	}

	notification := entity.Notification{
		Id:        uuid.New(),
		CompanyId: companyId,
		TypeCode:  event.EventType(),
		Title:     title,
		Message:   message,
		Metadata:  payload,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, &notification); err != nil {
		s.logger.Error("NotifierService", "Failed to persist notification", map[string]interface{}{"error": err})
		return err // NATS will redeliver
	}

	if s.delivery != nil {
		s.delivery.Send(companyId, notification)
	}

	return nil
}

// notifyCandidate emails the applicant on terminal post-interview outcomes.
func (s *NotifierService) notifyCandidate(payload map[string]interface{}, jobTitle, toStatus string) {
	if s.mail == nil {
		return
	}
	email, _ := payload["candidate_email"].(string)
	name, _ := payload["candidate_name"].(string)
	if email == "" {
		return
	}

	var err error
	switch toStatus {
	case constant.StatusOffer:
		err = s.mail.SendOfferEmail(email, name, jobTitle)
	case constant.StatusRejectedPost, constant.StatusRejectedPre:
		err = s.mail.SendRejectionEmail(email, name, jobTitle)
	default:
		return
	}
	if err != nil {
		s.logger.Warn("NotifierService", "Failed to send candidate email", map[string]interface{}{"error": err.Error()})
	}
}

func parseUUID(v interface{}) (uuid.UUID, bool) {
	str, ok := v.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
