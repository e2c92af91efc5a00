package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mentoria-be/internal/dto"
	"mentoria-be/internal/entity"
	"mentoria-be/internal/pkg/logger"
	"mentoria-be/internal/repository/contract"
	"mentoria-be/internal/repository/specification"
	"mentoria-be/internal/repository/unitofwork"
	"mentoria-be/pkg/events"
	pktNats "mentoria-be/pkg/nats"

	"github.com/google/uuid"
)

// notificationRule says who hears about an event and how it reads.
type notificationRule struct {
	recipients []string // payload keys holding user ids; "admins" means every admin
	entityType string
	entityKey  string
	title      string
	message    func(payload map[string]interface{}) string
}

var notificationRules = map[string]notificationRule{
	events.BookingConfirmed: {
		recipients: []string{"mentee_id", "mentor_id"},
		entityType: "meeting",
		entityKey:  "meeting_id",
		title:      "Booking confirmed",
		message: func(p map[string]interface{}) string {
			return fmt.Sprintf("Your session %q is booked. The mentor will share a location soon.", p["plan_title"])
		},
	},
	events.MeetingLocationUpdated: {
		recipients: []string{"mentee_id"},
		entityType: "meeting",
		entityKey:  "meeting_id",
		title:      "Session scheduled",
		message: func(p map[string]interface{}) string {
			return fmt.Sprintf("Your session %q now has a meeting link.", p["plan_title"])
		},
	},
	events.MeetingStatusChanged: {
		recipients: []string{"mentee_id"},
		entityType: "meeting",
		entityKey:  "meeting_id",
		title:      "Session updated",
		message: func(p map[string]interface{}) string {
			return fmt.Sprintf("Your session %q is now %v.", p["plan_title"], p["status"])
		},
	},
	events.ComplaintFiled: {
		recipients: []string{"admins"},
		entityType: "complaint",
		entityKey:  "complaint_id",
		title:      "New complaint",
		message: func(p map[string]interface{}) string {
			return "A mentee filed a complaint that needs review."
		},
	},
	events.ComplaintUpdated: {
		recipients: []string{"mentee_id"},
		entityType: "complaint",
		entityKey:  "complaint_id",
		title:      "Complaint updated",
		message: func(p map[string]interface{}) string {
			return fmt.Sprintf("Your complaint is now %v.", p["status"])
		},
	},
}

// NotificationDelivery pushes a stored notification to the user's open
// connections. The websocket hub implements it.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification *dto.NotificationResponse)
}

type NotificationService struct {
	repo       contract.NotificationRepository
	uowFactory unitofwork.RepositoryFactory
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(
	repo contract.NotificationRepository,
	uowFactory unitofwork.RepositoryFactory,
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		repo:       repo,
		uowFactory: uowFactory,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus. Without a subscriber the service
// only serves reads.
func (s *NotificationService) Start() {
	if s.subscriber == nil {
		s.logger.Warn("NotificationService", "No event bus, notification worker disabled", nil)
		return
	}
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.HandleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

// HandleEvent stores one in-app notification per recipient. Returning an
// error makes the bus redeliver the event.
func (s *NotificationService) HandleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "events.")
	rule, ok := notificationRules[typeCode]
	if !ok {
		s.logger.Debug("NotificationService", fmt.Sprintf("No notification rule for '%s'", typeCode), nil)
		return nil
	}

	recipients, err := s.resolveRecipients(ctx, rule, event)
	if err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Error resolving recipients for %s", typeCode), map[string]interface{}{"error": err.Error()})
		return err
	}

	payload := event.Payload()
	var entityID *uuid.UUID
	if id, err := uuid.Parse(events.StringField(event, rule.entityKey)); err == nil {
		entityID = &id
	}
	metadata := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		metadata[k] = v
	}
	if entityID != nil {
		metadata["action_url"] = fmt.Sprintf("/%ss/%s", rule.entityType, entityID)
	}

	for _, userID := range recipients {
		notif := &entity.Notification{
			Id:         uuid.New(),
			UserId:     userID,
			TypeCode:   typeCode,
			EntityType: rule.entityType,
			EntityId:   entityID,
			Title:      rule.title,
			Message:    rule.message(payload),
			Metadata:   metadata,
			CreatedAt:  time.Now(),
		}
		if err := s.repo.Create(ctx, notif); err != nil {
			s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err.Error()})
			return err
		}
		if s.delivery != nil {
			s.delivery.Send(userID, toNotificationResponse(notif))
		}
	}
	return nil
}

func (s *NotificationService) resolveRecipients(ctx context.Context, rule notificationRule, event events.Event) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	add := func(id uuid.UUID) {
		if id != uuid.Nil && !seen[id] {
			seen[id] = true
			userIDs = append(userIDs, id)
		}
	}

	for _, key := range rule.recipients {
		if key == "admins" {
			uow := s.uowFactory.NewUnitOfWork(ctx)
			admins, err := uow.UserRepository().FindAll(ctx,
				specification.Filter("role", string(entity.UserRoleAdmin)),
				specification.Filter("status", string(entity.UserStatusActive)),
			)
			if err != nil {
				return nil, err
			}
			for _, u := range admins {
				add(u.Id)
			}
			continue
		}
		if id, err := uuid.Parse(events.StringField(event, key)); err == nil {
			add(id)
		} else {
			s.logger.Warn("NotificationService", fmt.Sprintf("Event %s has no %s", event.EventType(), key), nil)
		}
	}
	return userIDs, nil
}

// GetNotifications fetches notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) (*dto.NotificationListResponse, error) {
	limit, offset = pageBounds(limit, offset)
	list, total, err := s.repo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{Items: items, Total: total, Unread: unread}, nil
}

// MarkAsRead marks one of the user's notifications as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	ok, err := s.repo.MarkAsRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllAsRead marks all notifications as read for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		Id:         n.Id,
		TypeCode:   n.TypeCode,
		EntityType: n.EntityType,
		EntityId:   n.EntityId,
		Title:      n.Title,
		Message:    n.Message,
		Metadata:   n.Metadata,
		IsRead:     n.IsRead,
		CreatedAt:  n.CreatedAt,
	}
}
